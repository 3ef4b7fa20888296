package world

// Grid is a fixed-size tile map addressed by (row, col).
type Grid struct {
	tiles []Tile
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions, filled with TileSolid
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.tiles = make([]Tile, rows*cols)

	for i := range g.tiles {
		g.tiles[i] = TileSolid
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Bounds returns the whole grid as a rectangle
func (g *Grid) Bounds() Rect {
	return Rect{Left: 0, Top: 0, Right: g.cols, Bottom: g.rows}
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the tile at the given position, or TileSolid if out of bounds
func (g *Grid) Get(row, col int) Tile {
	if !g.IsValidPosition(row, col) {
		return TileSolid
	}
	return g.tiles[row*g.cols+col]
}

// Set writes a tile. Returns false if the position is out of bounds.
func (g *Grid) Set(row, col int, tile Tile) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.tiles[row*g.cols+col] = tile
	return true
}

// Fill writes tile into every cell of r that lies inside the grid
func (g *Grid) Fill(r Rect, tile Tile) {
	for row := r.Top; row < r.Bottom; row++ {
		for col := r.Left; col < r.Right; col++ {
			g.Set(row, col, tile)
		}
	}
}

// FillLineH writes a horizontal run on row from startCol to endCol (exclusive).
// The first cell gets first, the last cell gets last and everything between gets
// tile. A single-cell run takes last.
func (g *Grid) FillLineH(tile Tile, startCol, endCol, row int, first, last Tile) {
	end := endCol - startCol - 1
	for i, col := 0, startCol; col < endCol; i, col = i+1, col+1 {
		g.Set(row, col, lineTile(i, end, tile, first, last))
	}
}

// FillLineV writes a vertical run on col from startRow to endRow (exclusive).
// Overrides work as in FillLineH.
func (g *Grid) FillLineV(tile Tile, startRow, endRow, col int, first, last Tile) {
	end := endRow - startRow - 1
	for i, row := 0, startRow; row < endRow; i, row = i+1, row+1 {
		g.Set(row, col, lineTile(i, end, tile, first, last))
	}
}

func lineTile(i, end int, tile, first, last Tile) Tile {
	switch i {
	case end:
		return last
	case 0:
		return first
	default:
		return tile
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, tile Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.tiles[row*g.cols+col])
		}
	}
}

// Count returns how many cells hold tile
func (g *Grid) Count(tile Tile) int {
	n := 0
	for _, t := range g.tiles {
		if t == tile {
			n++
		}
	}
	return n
}

// Row returns a copy of one row of tiles, or nil if out of bounds
func (g *Grid) Row(row int) []Tile {
	if row < 0 || row >= g.rows {
		return nil
	}
	out := make([]Tile, g.cols)
	copy(out, g.tiles[row*g.cols:(row+1)*g.cols])
	return out
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Equal reports whether both grids have the same size and tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.tiles {
		if other.tiles[i] != t {
			return false
		}
	}
	return true
}

// String renders the grid with the default symbols, one line per row
func (g *Grid) String() string {
	buf := make([]rune, 0, g.rows*(g.cols+1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			buf = append(buf, g.tiles[row*g.cols+col].Symbol())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
