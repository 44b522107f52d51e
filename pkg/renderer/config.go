package renderer

import "runtime"

// Config holds image and scheduling settings. Zero fields select defaults.
type Config struct {
	Width           int
	Height          int
	TileSize        int // Edge length of the square tiles handed to workers
	Workers         int // Number of goroutines, runtime.NumCPU() when zero
	SamplesPerPixel int // Jittered samples per pixel, one centered sample when zero
}

// DefaultConfig returns the settings used by the render command
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          300,
		TileSize:        32,
		Workers:         runtime.NumCPU(),
		SamplesPerPixel: 1,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Width <= 0 {
		c.Width = defaults.Width
	}
	if c.Height <= 0 {
		c.Height = defaults.Height
	}
	if c.TileSize <= 0 {
		c.TileSize = defaults.TileSize
	}
	if c.Workers <= 0 {
		c.Workers = defaults.Workers
	}
	if c.SamplesPerPixel <= 0 {
		c.SamplesPerPixel = defaults.SamplesPerPixel
	}
	return c
}
