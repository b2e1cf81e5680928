// Package life implements Conway's Game of Life over a boolean grid, with
// either a bounded board or a toroidal one.
package life

import "golife/internal/core"

// NewBoard returns a rows×cols board where each cell is independently alive
// with probability density.
func NewBoard(rows, cols int, density float64, rng *core.RNG) *core.Grid {
	board := core.NewGrid(rows, cols)
	core.FillDensity(rng.Source(), board.Cells(), density)
	return board
}

// Next returns the next generation of board under Conway's rules. All cells
// update against the previous generation; the input board is not mutated.
// With torus set, row and column indices wrap independently; otherwise a
// neighbor outside the board is simply not counted.
func Next(board *core.Grid, torus bool) *core.Grid {
	next := core.NewGrid(board.Rows, board.Cols)
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			n := countNeighbors(board, r, c, torus)
			if board.Get(r, c) {
				next.Set(r, c, n == 2 || n == 3)
			} else {
				next.Set(r, c, n == 3)
			}
		}
	}
	return next
}

func countNeighbors(board *core.Grid, r, c int, torus bool) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if torus {
				nr, nc = board.Wrap(nr, nc)
			} else if !board.InBounds(nr, nc) {
				continue
			}
			if board.Get(nr, nc) {
				n++
			}
		}
	}
	return n
}
