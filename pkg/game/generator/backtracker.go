package generator

import (
	"log"
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"scanmaze/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with randomized recursive
// backtracking on a two-cell lattice, then opens one exit in the border
type BacktrackerGenerator struct {
	rng *rand.Rand

	// limit caps carving iterations; zero means four per grid cell
	limit int
}

// NewBacktracker creates a generator drawing from rng
func NewBacktracker(rng *rand.Rand) *BacktrackerGenerator {
	return &BacktrackerGenerator{rng: rng}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate carves a new maze into grid starting from start
func (g *BacktrackerGenerator) Generate(grid *world.Grid, start world.Point) Layout {
	rows, cols := grid.Rows(), grid.Cols()

	// Carving must stay off the outer ring
	if !grid.IsPlayablePosition(start.Row, start.Col) {
		start = DefaultStart
	}

	grid.Fill()

	carved := stack.New[world.Point]()
	current := start
	grid.Carve(current.Row, current.Col)
	carved.Push(current)

	steps := world.AllDirections()
	limit := g.limit
	if limit <= 0 {
		limit = rows * cols * 4
	}
	iterations := 0

	for carved.Size() > 0 && iterations < limit {
		iterations++

		g.rng.Shuffle(len(steps), func(i, j int) {
			steps[i], steps[j] = steps[j], steps[i]
		})

		moved := false
		for _, dir := range steps {
			next := current.Step(dir, 2)
			if !grid.IsPlayablePosition(next.Row, next.Col) || !grid.Get(next.Row, next.Col) {
				continue
			}

			between := current.Step(dir, 1)
			grid.Carve(between.Row, between.Col)
			grid.Carve(next.Row, next.Col)
			carved.Push(current)
			current = next
			moved = true
			break
		}

		if !moved {
			current = carved.Pop()
		}
	}

	layout := Layout{
		Start:      start,
		Iterations: iterations,
		Truncated:  carved.Size() > 0,
	}
	if layout.Truncated {
		log.Printf("[MAZE] [WARN] carving stopped at iteration bound %d with %d cells still stacked", limit, carved.Size())
	}

	// Open the exit on the east wall of the first interior row
	grid.Carve(1, cols-2)
	grid.Carve(1, cols-1)
	layout.Exit = world.Point{Row: 1, Col: cols - 1}

	return layout
}
