package world

// Direction is a cardinal direction. The order is clockwise from North.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// rowCol offsets per direction, in grid (row, col) order
var directionDeltas = [...][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// AllDirections returns the four directions clockwise from North
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.valid() {
		return "Unknown"
	}
	return directionNames[d]
}

// Opposite returns the direction facing the other way
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the row and column step for d; (0, 0) for unknown values
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.valid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Sliver returns the 1-cell-deep strip of r along its edge facing d
func (d Direction) Sliver(r Rect) Rect {
	switch d {
	case North:
		r.Bottom = r.Top + 1
	case East:
		r.Left = r.Right - 1
	case South:
		r.Top = r.Bottom - 1
	case West:
		r.Right = r.Left + 1
	}
	return r
}
