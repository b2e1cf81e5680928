package pattern

import (
	"testing"

	"golife/internal/core"

	"github.com/stretchr/testify/assert"
)

var glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

func TestNormalizeAnchorsAtOrigin(t *testing.T) {
	p := Pattern{{5, 7}, {4, 9}, {6, 7}}
	got := Normalize(p)
	assert.Equal(t, Pattern{{0, 2}, {1, 0}, {2, 0}}, got)
	// input untouched
	assert.Equal(t, Pattern{{5, 7}, {4, 9}, {6, 7}}, p)
}

func TestRotateQuarterTurns(t *testing.T) {
	p := Pattern{{0, 0}, {0, 1}, {0, 2}} // horizontal bar
	vertical := Pattern{{0, 0}, {1, 0}, {2, 0}}

	assert.Equal(t, Normalize(p), Rotate(p, 0))
	assert.Equal(t, vertical, Rotate(p, 90))
	assert.Equal(t, Normalize(p), Rotate(p, 180))
	assert.Equal(t, vertical, Rotate(p, 270))
}

func TestFourRotationsAreIdentity(t *testing.T) {
	for _, p := range []Pattern{glider, {{0, 0}}, {{0, 0}, {1, 2}, {3, 1}}} {
		got := Normalize(p)
		for i := 0; i < 4; i++ {
			got = Rotate(got, 90)
		}
		assert.Equal(t, Normalize(p), got)
	}
}

func TestFlipIsInvolution(t *testing.T) {
	for _, p := range []Pattern{glider, {}, {{0, 0}, {0, 3}, {2, 1}}} {
		assert.Equal(t, Normalize(p), Flip(Flip(p)))
	}
}

func TestFlipMirrorsColumns(t *testing.T) {
	p := Pattern{{0, 0}, {1, 0}, {1, 2}}
	assert.Equal(t, Pattern{{0, 2}, {1, 0}, {1, 2}}, Flip(p))
}

func TestTransformFlipsBeforeRotating(t *testing.T) {
	// An L shape distinguishes the order of the two transforms.
	l := Pattern{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
	got := Transform(l, 90, true)
	want := Rotate(Flip(l), 90)
	assert.Equal(t, want, got)
	assert.NotEqual(t, Flip(Rotate(l, 90)), got)
}

func TestEmptyPatternTransforms(t *testing.T) {
	assert.Empty(t, Rotate(nil, 90))
	assert.Empty(t, Flip(nil))
	assert.Empty(t, Normalize(nil))
}

func TestExtractNormalizesBoardCells(t *testing.T) {
	board := core.NewGrid(8, 8)
	board.Set(3, 4, true)
	board.Set(3, 5, true)
	board.Set(4, 4, true)

	got := Extract(board)
	assert.Equal(t, Pattern{{0, 0}, {0, 1}, {1, 0}}, got)
}

func TestExtractEmptyBoard(t *testing.T) {
	assert.Empty(t, Extract(core.NewGrid(4, 4)))
}
