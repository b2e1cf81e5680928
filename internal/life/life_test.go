package life

import (
	"testing"

	"golife/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFrom(rows, cols int, cells [][2]int) *core.Grid {
	g := core.NewGrid(rows, cols)
	for _, rc := range cells {
		g.Set(rc[0], rc[1], true)
	}
	return g
}

func TestAllDeadStaysDead(t *testing.T) {
	board := core.NewGrid(6, 6)
	for _, torus := range []bool{false, true} {
		next := Next(board, torus)
		assert.Zero(t, next.CountAlive())
	}
}

func TestLoneCellDies(t *testing.T) {
	for _, torus := range []bool{false, true} {
		board := boardFrom(5, 5, [][2]int{{2, 2}})
		next := Next(board, torus)
		assert.Zero(t, next.CountAlive())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	board := boardFrom(5, 5, [][2]int{{1, 2}, {2, 2}, {3, 2}})

	gen1 := Next(board, false)
	want := boardFrom(5, 5, [][2]int{{2, 1}, {2, 2}, {2, 3}})
	assert.Equal(t, want.Cells(), gen1.Cells())

	gen2 := Next(gen1, false)
	assert.Equal(t, board.Cells(), gen2.Cells())
}

func TestNextDoesNotMutateInput(t *testing.T) {
	board := boardFrom(5, 5, [][2]int{{1, 2}, {2, 2}, {3, 2}})
	snapshot := board.Clone()

	Next(board, false)
	Next(board, true)

	assert.Equal(t, snapshot.Cells(), board.Cells())
}

// An edge-hugging vertical blinker loses its would-be horizontal arm outside
// the bounded board and goes extinct, while the same seed on a torus wraps
// the arm to the far column and keeps oscillating.
func TestEdgeBlinkerBoundedVersusTorus(t *testing.T) {
	seed := [][2]int{{0, 0}, {1, 0}, {2, 0}}

	bounded := boardFrom(5, 5, seed)
	bounded = Next(bounded, false)
	assert.Equal(t, 2, bounded.CountAlive())
	bounded = Next(bounded, false)
	assert.Zero(t, bounded.CountAlive())

	torus := boardFrom(5, 5, seed)
	gen1 := Next(torus, true)
	want := boardFrom(5, 5, [][2]int{{1, 4}, {1, 0}, {1, 1}})
	assert.Equal(t, want.Cells(), gen1.Cells())

	gen2 := Next(gen1, true)
	assert.Equal(t, torus.Cells(), gen2.Cells())
}

// A glider translates by (+1, +1) every four generations; on a torus that
// holds across the right edge, reappearing wrapped at column zero.
func TestGliderWrapsOnTorus(t *testing.T) {
	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

	board := core.NewGrid(8, 8)
	for _, rc := range glider {
		board.Set(rc[0], 5+rc[1], true)
	}
	require.Equal(t, 5, board.CountAlive())

	for i := 0; i < 4; i++ {
		board = Next(board, true)
	}

	want := core.NewGrid(8, 8)
	for _, rc := range glider {
		wr, wc := want.Wrap(1+rc[0], 6+rc[1])
		want.Set(wr, wc, true)
	}
	assert.Equal(t, want.Cells(), board.Cells())
}

func TestNewBoardDensityExtremes(t *testing.T) {
	rng := core.NewRNG(42)
	assert.Zero(t, NewBoard(10, 10, 0, rng).CountAlive())

	rng = core.NewRNG(42)
	assert.Equal(t, 100, NewBoard(10, 10, 1, rng).CountAlive())
}

func TestNewBoardDeterministicForSeed(t *testing.T) {
	a := NewBoard(12, 12, 0.3, core.NewRNG(7))
	b := NewBoard(12, 12, 0.3, core.NewRNG(7))
	assert.Equal(t, a.Cells(), b.Cells())
}
