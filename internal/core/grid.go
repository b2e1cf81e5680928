package core

// Grid stores a 2D field of cell states in row-major order.
type Grid struct {
	Rows, Cols int
	cells      []bool
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]bool, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (r, c).
func (g *Grid) Index(r, c int) int { return r*g.Cols + c }

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Get returns the cell state at (r, c).
func (g *Grid) Get(r, c int) bool { return g.cells[r*g.Cols+c] }

// Set writes the cell state at (r, c).
func (g *Grid) Set(r, c int, alive bool) { g.cells[r*g.Cols+c] = alive }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.Rows + g.Rows) % g.Rows
	c = (c%g.Cols + g.Cols) % g.Cols
	return r, c
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.Rows, g.Cols)
	copy(out.cells, g.cells)
	return out
}

// CountAlive returns the number of live cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}
