package renderer

import (
	"context"
	"log"
	"time"
)

// Headless is a backend without a display that logs status periodically
type Headless struct {
	Interval time.Duration
}

// Name returns the backend name
func (h *Headless) Name() string {
	return "headless"
}

// Run logs the status on every interval until ctx is cancelled
func (h *Headless) Run(ctx context.Context, src Source) error {
	interval := h.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last Status
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s := src.Status()
			if s == last {
				continue
			}
			last = s
			log.Printf("[PANEL] [INFO] maze %d (%s) exits=%d heading=%s display=%t lit=%d",
				s.Maze, s.MazeID, s.Exits, s.Heading, s.Display, src.Frame().LitCount())
		}
	}
}
