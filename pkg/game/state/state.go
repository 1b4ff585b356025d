package state

import (
	"log"
	"time"

	"github.com/google/uuid"

	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/engine/world"
	"scanmaze/pkg/game/generator"
)

// InitialHeading is the heading the walker faces in every new maze
const InitialHeading = world.North

// Timers holds the polled deadlines of the navigation loop
type Timers struct {
	NextDecision  time.Time
	NextAnimation time.Time
	PauseUntil    time.Time
}

// Game is the context shared by the navigator, projector and renderer
type Game struct {
	Grid   *world.Grid
	Player Player
	Frames *matrix.FrameStore
	Timers Timers

	Generator generator.GridGenerator
	Layout    generator.Layout
	MazeID    uuid.UUID

	MazesGenerated int
	ExitsReached   int

	Messages []string
}

// NewGame creates a game with a freshly generated maze
func NewGame(rows, cols int, frames *matrix.FrameStore, gen generator.GridGenerator) *Game {
	g := &Game{
		Grid:      world.NewGrid(rows, cols),
		Frames:    frames,
		Generator: gen,
		Messages:  make([]string, 0),
	}
	g.Regenerate()
	return g
}

// Regenerate carves a new maze in place and moves the player to its start
func (g *Game) Regenerate() {
	g.Layout = g.Generator.Generate(g.Grid, generator.DefaultStart)
	g.MazeID = uuid.New()
	g.MazesGenerated++

	log.Printf("[MAZE] [INFO] maze %s: %s %dx%d, %d iterations, start %v, exit %v",
		g.MazeID, g.Generator.Name(), g.Grid.Cols(), g.Grid.Rows(),
		g.Layout.Iterations, g.Layout.Start, g.Layout.Exit)

	g.ResetPlayer()
}

// ResetPlayer puts the player on the layout start facing the initial heading
func (g *Game) ResetPlayer() {
	g.Player = Player{
		Row:     g.Layout.Start.Row,
		Col:     g.Layout.Start.Col,
		Heading: InitialHeading,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// LastMessage returns the newest message or an empty string
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}
