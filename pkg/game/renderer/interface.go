package renderer

import (
	"context"

	"scanmaze/pkg/engine/input"
	"scanmaze/pkg/engine/matrix"
)

// Status is the operator-facing state shown next to the panel
type Status struct {
	MazeID    string
	Maze      int
	Exits     int
	Heading   string
	Display   bool
	Indicator bool
	Message   string
}

// Source is what a backend shows and where it sends operator input.
// All methods are safe to call from the backend's goroutine.
type Source interface {
	// Frame returns the image currently lit on the panel
	Frame() matrix.Image

	// Status returns the latest status line values
	Status() Status

	// Dispatch queues an operator intent without blocking
	Dispatch(in input.Intent)
}

// Backend defines the interface for panel display backends.
// Implementations include the ANSI terminal, tcell and Ebiten.
type Backend interface {
	// Name identifies the backend in logs and configuration
	Name() string

	// Run shows src until ctx is cancelled or the operator quits.
	// Ebiten requires Run on the main goroutine.
	Run(ctx context.Context, src Source) error
}
