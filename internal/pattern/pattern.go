// Package pattern provides the named-pattern library and the coordinate
// transforms used to rotate, flip, and extract cell patterns.
package pattern

import (
	"encoding/json"
	"fmt"
	"sort"

	"golife/internal/core"
)

// Cell is one (row, col) offset of a pattern.
type Cell struct {
	Row int
	Col int
}

// MarshalJSON encodes the cell as a [row, col] pair.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("pattern cell: %w", err)
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// Pattern is a set of cell offsets, normalized so the minimum row and column
// are both zero and cells are ordered row-major.
type Pattern []Cell

// Normalize shifts the cells so the minimum row and column are zero and
// returns them sorted row-major. The input is not modified.
func Normalize(p Pattern) Pattern {
	if len(p) == 0 {
		return Pattern{}
	}
	minR, minC := p[0].Row, p[0].Col
	for _, c := range p[1:] {
		if c.Row < minR {
			minR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
	}
	out := make(Pattern, len(p))
	for i, c := range p {
		out[i] = Cell{Row: c.Row - minR, Col: c.Col - minC}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Rotate returns the pattern rotated clockwise by angle degrees
// (0, 90, 180, or 270), re-anchored at the origin. Other angles return the
// pattern unchanged.
func Rotate(p Pattern, angle int) Pattern {
	if len(p) == 0 || angle == 0 {
		return Normalize(p)
	}
	out := make(Pattern, len(p))
	switch angle {
	case 90:
		for i, c := range p {
			out[i] = Cell{Row: c.Col, Col: -c.Row}
		}
	case 180:
		for i, c := range p {
			out[i] = Cell{Row: -c.Row, Col: -c.Col}
		}
	case 270:
		for i, c := range p {
			out[i] = Cell{Row: -c.Col, Col: c.Row}
		}
	default:
		return Normalize(p)
	}
	return Normalize(out)
}

// Flip mirrors the pattern horizontally about its own width. Applying it
// twice reproduces the input.
func Flip(p Pattern) Pattern {
	if len(p) == 0 {
		return Pattern{}
	}
	maxC := p[0].Col
	for _, c := range p[1:] {
		if c.Col > maxC {
			maxC = c.Col
		}
	}
	out := make(Pattern, len(p))
	for i, c := range p {
		out[i] = Cell{Row: c.Row, Col: maxC - c.Col}
	}
	return Normalize(out)
}

// Transform applies the placement transforms in their fixed order: flip
// first, then rotation.
func Transform(p Pattern, rotation int, flipped bool) Pattern {
	if flipped {
		p = Flip(p)
	}
	return Rotate(p, rotation)
}

// Extract collects the board's live cells as a pattern anchored at the
// origin. An empty board yields an empty pattern.
func Extract(board *core.Grid) Pattern {
	var cells Pattern
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			if board.Get(r, c) {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return Normalize(cells)
}
