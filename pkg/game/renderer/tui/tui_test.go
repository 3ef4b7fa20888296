package tui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gookit/color"

	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

func renderPlain(t *testing.T, d *generator.Dungeon, width int) []string {
	t.Helper()
	var buf bytes.Buffer
	r := NewWithWriter(&buf, width)
	r.Init()
	r.RenderDungeon(d)
	return strings.Split(color.ClearCode(buf.String()), "\n")
}

func findRow(lines []string, row int) string {
	prefix := fmt.Sprintf("%-*d", rowLabelWidth, row)
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) && len(l) > rowLabelWidth {
			return l[rowLabelWidth:]
		}
	}
	return ""
}

func TestRenderDungeon_DoublesCellsWhenWide(t *testing.T) {
	d, err := generator.Generate(config.Default(), 5)
	if err != nil {
		t.Fatal(err)
	}

	lines := renderPlain(t, d, 200)
	for _, row := range []int{0, 10, d.Grid.Rows() - 1} {
		var want strings.Builder
		for _, tile := range d.Grid.Row(row) {
			want.WriteRune(tile.Symbol())
			want.WriteRune(tile.Symbol())
		}
		if got := findRow(lines, row); got != want.String() {
			t.Errorf("row %d = %q, want %q", row, got, want.String())
		}
	}

	narrow := renderPlain(t, d, 60)
	if got := findRow(narrow, 0); len(got) != d.Grid.Cols() {
		t.Errorf("narrow row has %d cells, want %d", len(got), d.Grid.Cols())
	}
}

func TestRenderDungeon_SummaryAndRuler(t *testing.T) {
	d, err := generator.Generate(config.Default(), 5)
	if err != nil {
		t.Fatal(err)
	}
	lines := renderPlain(t, d, 200)
	out := strings.Join(lines, "\n")

	if !strings.Contains(out, "SEED: 5") {
		t.Errorf("summary missing seed:\n%s", out[:200])
	}
	ruler := strings.TrimSpace(lines[6])
	if !strings.HasPrefix(ruler, "0       4       8") {
		t.Errorf("ruler = %q", ruler)
	}
}

func TestRenderDungeon_Warnings(t *testing.T) {
	d, err := generator.Generate(config.Default(), 5)
	if err != nil {
		t.Fatal(err)
	}
	d.Diagnostics.IntersectingTunnels = 2
	d.Diagnostics.DisconnectedRooms = []int{4}

	out := strings.Join(renderPlain(t, d, 200), "\n")
	if !strings.Contains(out, "WARN_INTERSECTING_TUNNELS: 2") {
		t.Error("missing intersecting tunnel warning")
	}
	if !strings.Contains(out, "WARN_DISCONNECTED_ROOMS: [4]") {
		t.Error("missing disconnected room warning")
	}
}

func TestStyleText_KeepsText(t *testing.T) {
	r := NewWithWriter(&bytes.Buffer{}, 80)
	r.Init()
	for _, s := range []renderer.TextStyle{renderer.StyleNormal, renderer.StyleHeading, renderer.StyleWarning} {
		if got := color.ClearCode(r.StyleText("abc", s)); got != "abc" {
			t.Errorf("StyleText(%d) = %q", s, got)
		}
	}
}
