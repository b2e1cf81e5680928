package core

import "time"

// RateMeter tracks how often Tick is called, smoothed over recent ticks.
type RateMeter struct {
	last time.Time
	avg  time.Duration
}

const meterSmoothing = 0.2

// Tick records one event and updates the smoothed interval.
func (m *RateMeter) Tick() {
	now := time.Now()
	if m.last.IsZero() {
		m.last = now
		return
	}
	delta := now.Sub(m.last)
	m.last = now
	if m.avg == 0 {
		m.avg = delta
		return
	}
	m.avg = time.Duration(float64(m.avg)*(1-meterSmoothing) + float64(delta)*meterSmoothing)
}

// PerSecond returns the smoothed tick rate, or zero before two ticks.
func (m *RateMeter) PerSecond() float64 {
	if m.avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(m.avg)
}
