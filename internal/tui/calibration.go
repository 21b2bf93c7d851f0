package tui

import "sync"

// Calibration is the live cells-per-millimeter ratio of the terminal
// canvas. The layout engine reads it at drag start; the TUI writes it on
// every resize. Shared between goroutines, so access is locked.
type Calibration struct {
	mu    sync.Mutex
	ratio float64
}

// NewCalibration starts at one cell per millimeter until the first
// resize measurement arrives.
func NewCalibration() *Calibration {
	return &Calibration{ratio: 1}
}

// Set records a freshly measured ratio.
func (c *Calibration) Set(ratio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ratio > 0 {
		c.ratio = ratio
	}
}

// PixelsPerMillimeter implements layout.Calibrator.
func (c *Calibration) PixelsPerMillimeter() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ratio
}
