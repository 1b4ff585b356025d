package gameplay

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	engineinput "scanmaze/pkg/engine/input"
	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/renderer"
	"scanmaze/pkg/game/state"
)

// DefaultPoll is how often the loop checks its timers
const DefaultPoll = 5 * time.Millisecond

// Loop is the main context: it polls the navigator, renders when something
// changed and the frame store will take a frame, and applies operator input.
// It implements renderer.Source for the display backends.
type Loop struct {
	game     *state.Game
	nav      *Navigator
	walls    *renderer.WallRenderer
	clock    Clock
	controls Controls
	poll     time.Duration

	dirty   bool
	intents chan engineinput.Intent
	status  atomic.Pointer[renderer.Status]
}

// NewLoop wires the main context together
func NewLoop(g *state.Game, nav *Navigator, walls *renderer.WallRenderer, clock Clock, controls Controls) *Loop {
	l := &Loop{
		game:     g,
		nav:      nav,
		walls:    walls,
		clock:    clock,
		controls: controls,
		poll:     DefaultPoll,
		dirty:    true,
		intents:  make(chan engineinput.Intent, 16),
	}
	l.publish()
	return l
}

// SetPoll changes the polling interval
func (l *Loop) SetPoll(d time.Duration) {
	if d > 0 {
		l.poll = d
	}
}

// Step runs one poll: advance the navigator, then render if needed.
// It returns true when a frame was committed.
func (l *Loop) Step() bool {
	if l.nav.Tick(l.game, l.clock.Now()) {
		l.dirty = true
	}

	committed := false
	if l.dirty && l.walls.Render(l.game.Grid, &l.game.Player) {
		l.dirty = false
		committed = true
	}

	l.publish()
	return committed
}

// Handle applies one intent immediately
func (l *Loop) Handle(in engineinput.Intent) {
	if ProcessIntent(l.game, in, l.controls) {
		l.dirty = true
	}
	l.publish()
}

// Run polls until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	log.Printf("[LOOP] [INFO] started, polling every %s", l.poll)
	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	l.Step()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[LOOP] [INFO] stopped after %d frames, %d exits", l.walls.Frames(), l.game.ExitsReached)
			return nil
		case in := <-l.intents:
			l.Handle(in)
		case <-ticker.C:
			l.Step()
		}
	}
}

// Frame returns the image currently lit on the panel
func (l *Loop) Frame() matrix.Image {
	return l.controls.frame()
}

// Status returns the latest published status
func (l *Loop) Status() renderer.Status {
	return *l.status.Load()
}

// Dispatch queues an intent for the loop goroutine; it never blocks
func (l *Loop) Dispatch(in engineinput.Intent) {
	select {
	case l.intents <- in:
	default:
		log.Printf("[LOOP] [WARN] input queue full, dropping %s", engineinput.ActionName(in.Action))
	}
}

func (l *Loop) publish() {
	g := l.game
	l.status.Store(&renderer.Status{
		MazeID:    g.MazeID.String()[:8],
		Maze:      g.MazesGenerated,
		Exits:     g.ExitsReached,
		Heading:   g.Player.Heading.String(),
		Display:   l.controls.displayEnabled(),
		Indicator: l.controls.indicatorLit(),
		Message:   g.LastMessage(),
	})
}
