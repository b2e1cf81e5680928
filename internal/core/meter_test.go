package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateMeter(t *testing.T) {
	var m RateMeter
	assert.Zero(t, m.PerSecond())

	m.Tick()
	assert.Zero(t, m.PerSecond(), "one tick is not a rate yet")

	time.Sleep(2 * time.Millisecond)
	m.Tick()
	assert.Greater(t, m.PerSecond(), 0.0)
}
