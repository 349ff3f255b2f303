package maze

import "fmt"

// Direction is a compass direction relating two orthogonally aligned positions.
type Direction uint8

const (
	// North points toward decreasing Row.
	North Direction = iota
	// South points toward increasing Row.
	South
	// East points toward increasing Column.
	East
	// West points toward decreasing Column.
	West
)

// directionNames is indexed by Direction; keep in constant order.
var directionNames = [...]string{"North", "South", "East", "West"}

// Directions returns the four valid directions in canonical order
// (North, South, East, West). The slice is freshly allocated.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}

// Opposite returns the direction pointing back the other way.
// It panics on an invalid Direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic(fmt.Sprintf("maze: Opposite of invalid %v", d))
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}
