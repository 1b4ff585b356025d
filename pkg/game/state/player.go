package state

import (
	"scanmaze/pkg/engine/world"
)

// Rotation is the turn currently being animated
type Rotation int

// Rotations
const (
	RotationNone Rotation = iota
	RotationLeft
	RotationRight
)

// String returns the rotation name
func (r Rotation) String() string {
	switch r {
	case RotationLeft:
		return "Left"
	case RotationRight:
		return "Right"
	default:
		return "None"
	}
}

// Apply returns the heading after the rotation completes
func (r Rotation) Apply(d world.Direction) world.Direction {
	switch r {
	case RotationLeft:
		return d.TurnLeft()
	case RotationRight:
		return d.TurnRight()
	default:
		return d
	}
}

// Player is the walker's position and animation state.
// At most one of Rotation and Moving is active at a time.
type Player struct {
	Row     int
	Col     int
	Heading world.Direction

	Rotation     Rotation
	TurnProgress int

	Moving       bool
	MoveDir      world.Direction
	MoveProgress int

	// Exiting is set when the current walk leaves through the exit
	Exiting bool
	// Committed means the last decision was a turn, so the next one walks on if it can
	Committed bool
}

// Idle reports whether no animation is in flight
func (p *Player) Idle() bool {
	return p.Rotation == RotationNone && !p.Moving
}

// Position returns the player's cell
func (p *Player) Position() world.Point {
	return world.Point{Row: p.Row, Col: p.Col}
}
