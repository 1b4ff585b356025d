// Package gameplay drives the walker through the maze.
package gameplay

import (
	"log"
	"time"

	"github.com/leonelquinteros/gotext"

	"scanmaze/pkg/engine/world"
	"scanmaze/pkg/game/renderer"
	"scanmaze/pkg/game/state"
	"scanmaze/pkg/game/view"
)

// Config holds the navigator's timings and animation steps
type Config struct {
	DecisionDelay  time.Duration
	AnimationDelay time.Duration
	ExitPause      time.Duration
	TurnStep       int
	ZoomStep       int
}

// DefaultConfig returns the panel's stock timings
func DefaultConfig() Config {
	return Config{
		DecisionDelay:  1000 * time.Millisecond,
		AnimationDelay: 100 * time.Millisecond,
		ExitPause:      500 * time.Millisecond,
		TurnStep:       4,
		ZoomStep:       1,
	}
}

// Phase is the navigator state derived from the player
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTurning
	PhaseWalking
	PhaseExiting // walking out through the exit
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseTurning:
		return "Turning"
	case PhaseWalking:
		return "Walking"
	case PhaseExiting:
		return "Exiting"
	default:
		return "Idle"
	}
}

// PhaseOf returns the phase a player is in
func PhaseOf(p *state.Player) Phase {
	switch {
	case p.Rotation != state.RotationNone:
		return PhaseTurning
	case p.Moving && p.Exiting:
		return PhaseExiting
	case p.Moving:
		return PhaseWalking
	default:
		return PhaseIdle
	}
}

// Navigator is the walker's state machine. It keeps no state of its own;
// everything lives in the game.
type Navigator struct {
	cfg   Config
	width int // turn completes when the shear reaches the screen width
	inset int // walk completes when the zoom reaches one inset
}

// NewNavigator creates a navigator for a screen projection. Steps below one
// are raised to one so every animation tick makes progress.
func NewNavigator(cfg Config, persp renderer.Perspective) *Navigator {
	cfg.TurnStep = max(cfg.TurnStep, 1)
	cfg.ZoomStep = max(cfg.ZoomStep, 1)
	return &Navigator{cfg: cfg, width: persp.Width, inset: persp.Inset}
}

// Config returns the navigator's configuration
func (n *Navigator) Config() Config {
	return n.cfg
}

// CanMove checks if the cell one step from p in direction d is open
func CanMove(grid *world.Grid, p world.Point, d world.Direction) bool {
	return !view.IsWall(grid, p.Step(d, 1))
}

// Decide applies the right-hand rule: right, straight, left, else turn right
// to start turning around. A player that just turned walks on if it can, so
// an open right side does not always win: after a right turn into a cell
// whose right is open again, the walker steps forward instead of spinning.
func Decide(grid *world.Grid, p *state.Player) (rot state.Rotation, walk bool) {
	pos := p.Position()
	open := func(d world.Direction) bool { return CanMove(grid, pos, d) }

	switch {
	case p.Committed && open(p.Heading):
		return state.RotationNone, true
	case open(p.Heading.TurnRight()):
		return state.RotationRight, false
	case open(p.Heading):
		return state.RotationNone, true
	case open(p.Heading.TurnLeft()):
		return state.RotationLeft, false
	default:
		return state.RotationRight, false
	}
}

// Tick advances the state machine to now and reports whether the view changed
func (n *Navigator) Tick(g *state.Game, now time.Time) bool {
	p := &g.Player
	switch {
	case p.Rotation != state.RotationNone:
		return n.turn(g, now)
	case p.Moving:
		return n.walk(g, now)
	default:
		return n.decide(g, now)
	}
}

func (n *Navigator) decide(g *state.Game, now time.Time) bool {
	if now.Before(g.Timers.NextDecision) {
		return false
	}
	g.Timers.NextDecision = now.Add(n.cfg.DecisionDelay)
	g.Timers.NextAnimation = now.Add(n.cfg.AnimationDelay)

	p := &g.Player
	rot, walk := Decide(g.Grid, p)
	if walk {
		p.Moving = true
		p.MoveDir = p.Heading
		p.MoveProgress = 0
		p.Committed = false
		p.Exiting = view.Look(g.Grid, p.Heading, p.Row, p.Col).Exit
		return true
	}

	p.Rotation = rot
	p.TurnProgress = 0
	p.Committed = true
	return true
}

func (n *Navigator) turn(g *state.Game, now time.Time) bool {
	if now.Before(g.Timers.NextAnimation) {
		return false
	}
	g.Timers.NextAnimation = now.Add(n.cfg.AnimationDelay)

	p := &g.Player
	p.TurnProgress = min(p.TurnProgress+n.cfg.TurnStep, n.width)
	if p.TurnProgress >= n.width {
		p.Heading = p.Rotation.Apply(p.Heading)
		p.Rotation = state.RotationNone
		p.TurnProgress = 0
	}
	return true
}

func (n *Navigator) walk(g *state.Game, now time.Time) bool {
	p := &g.Player

	// Holding at the exit before the next maze
	if p.Exiting && !g.Timers.PauseUntil.IsZero() {
		if now.Before(g.Timers.PauseUntil) {
			return false
		}
		n.finishExit(g, now)
		return true
	}

	if now.Before(g.Timers.NextAnimation) {
		return false
	}
	g.Timers.NextAnimation = now.Add(n.cfg.AnimationDelay)

	p.MoveProgress += n.cfg.ZoomStep
	if p.Exiting {
		if p.MoveProgress >= 2*n.inset {
			p.MoveProgress = 2 * n.inset
			g.Timers.PauseUntil = now.Add(n.cfg.ExitPause)
		}
		return true
	}

	if p.MoveProgress >= n.inset {
		dr, dc := p.MoveDir.Delta()
		p.Row += dr
		p.Col += dc
		p.Moving = false
		p.MoveProgress = 0
	}
	return true
}

func (n *Navigator) finishExit(g *state.Game, now time.Time) {
	g.ExitsReached++
	log.Printf("[NAV] [INFO] exit reached at %d,%d in maze %s", g.Player.Row, g.Player.Col, g.MazeID)

	g.Regenerate()
	g.Timers = state.Timers{NextDecision: now.Add(n.cfg.DecisionDelay)}
	logMessage(g, "EXIT_REACHED", g.ExitsReached)
}

// dynamicGet is used for runtime translation key lookups
var dynamicGet = gotext.Get

// logMessage adds a translated status message to the game
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(dynamicGet(key, a...))
}
