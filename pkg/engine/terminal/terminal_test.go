package terminal

import "testing"

func TestCellScale(t *testing.T) {
	cases := []struct {
		cols, margin, width, want int
	}{
		{48, 5, 101, 2},
		{48, 5, 100, 1},
		{48, 5, 80, 1},
		{10, 0, 20, 2},
	}
	for _, c := range cases {
		if got := CellScale(c.cols, c.margin, c.width); got != c.want {
			t.Errorf("CellScale(%d, %d, %d) = %d, want %d", c.cols, c.margin, c.width, got, c.want)
		}
	}
}

func TestGetSize_FallsBackWhenNotATerminal(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %dx%d, want positive", w, h)
	}
}
