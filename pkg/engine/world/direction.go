package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// directionInfo holds the lookup row for one direction
type directionInfo struct {
	name     string
	left     Direction
	right    Direction
	opposite Direction
	rowDelta int
	colDelta int
}

// directions is indexed by Direction; every rotation is a table lookup
var directions = [...]directionInfo{
	North: {name: "North", left: West, right: East, opposite: South, rowDelta: -1},
	East:  {name: "East", left: North, right: South, opposite: West, colDelta: 1},
	South: {name: "South", left: East, right: West, opposite: North, rowDelta: 1},
	West:  {name: "West", left: South, right: North, opposite: East, colDelta: -1},
}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directions[d].name
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// TurnLeft returns the direction 90 degrees counter-clockwise
func (d Direction) TurnLeft() Direction {
	if !d.IsValid() {
		return d
	}
	return directions[d].left
}

// TurnRight returns the direction 90 degrees clockwise
func (d Direction) TurnRight() Direction {
	if !d.IsValid() {
		return d
	}
	return directions[d].right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return directions[d].opposite
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	info := directions[d]
	return info.rowDelta, info.colDelta
}

// Point is a row/column position in a grid
type Point struct {
	Row int
	Col int
}

// Step returns the point n cells away in direction d
func (p Point) Step(d Direction, n int) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr*n, Col: p.Col + dc*n}
}
