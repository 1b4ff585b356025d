package generator

import (
	"github.com/zyedidia/generic/mapset"

	"scanmaze/pkg/engine/world"
)

// MinSize is the smallest maze edge that still has an interior inside the ring
const MinSize = 5

// DefaultStart is where carving begins and where the walker spawns
var DefaultStart = world.Point{Row: 1, Col: 1}

// Layout describes the outcome of one generation pass
type Layout struct {
	Start      world.Point
	Exit       world.Point
	Iterations int
	Truncated  bool // carving hit the iteration bound before the stack emptied
}

// GridGenerator is an interface for maze generation algorithms.
// Generate rewrites grid in place.
type GridGenerator interface {
	Generate(grid *world.Grid, start world.Point) Layout
	Name() string
}

// IsExitPosition reports whether a cell lies on the outer ring, regardless
// of whether it is carved
func IsExitPosition(grid *world.Grid, row, col int) bool {
	return grid.IsOnPerimeter(row, col)
}

// Reachable returns every passage cell connected to start through passages
func Reachable(grid *world.Grid, start world.Point) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	if !grid.IsValidPosition(start.Row, start.Col) || grid.Get(start.Row, start.Col) {
		return visited
	}

	queue := []world.Point{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			n := current.Step(dir, 1)
			if !grid.IsValidPosition(n.Row, n.Col) || grid.Get(n.Row, n.Col) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return visited
}

// CountPassages returns the number of carved cells
func CountPassages(grid *world.Grid) int {
	return grid.Rows()*grid.Cols() - grid.WallCount()
}
