package maze

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Cell is a single grid node: its own Position and the positions of the
// neighbors it is linked to, at most one per Direction.
//
// Fields are exported for direct access. Grid.Link is the only operation
// that writes Neighbors; a later write to the same Direction replaces the
// earlier one.
type Cell struct {
	// Pos is the cell's coordinate and its key in the owning Grid.
	Pos Position

	// Neighbors maps a direction to the linked neighbor lying that way.
	Neighbors map[Direction]Position
}

// NewCell returns an unlinked Cell at p.
// Complexity: O(1).
func NewCell(p Position) *Cell {
	return &Cell{
		Pos:       p,
		Neighbors: make(map[Direction]Position, 4),
	}
}

// Neighbor returns the position linked in direction d, if any.
func (c *Cell) Neighbor(d Direction) (Position, bool) {
	p, ok := c.Neighbors[d]
	return p, ok
}

// Linked reports whether c records a neighbor in direction d.
func (c *Cell) Linked(d Direction) bool {
	_, ok := c.Neighbors[d]
	return ok
}

// Links returns the directions in which c has a neighbor, in canonical
// order (North, South, East, West).
// Complexity: O(k log k), k ≤ 4.
func (c *Cell) Links() []Direction {
	dirs := maps.Keys(c.Neighbors)
	slices.Sort(dirs)
	return dirs
}

// Degree returns the number of linked neighbors (0..4).
func (c *Cell) Degree() int {
	return len(c.Neighbors)
}

// String renders c as "(c,r)[East:(c,r) ...]" with links in canonical order.
func (c *Cell) String() string {
	var b strings.Builder
	b.WriteString(c.Pos.String())
	b.WriteByte('[')
	for i, d := range c.Links() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.String())
		b.WriteByte(':')
		b.WriteString(c.Neighbors[d].String())
	}
	b.WriteByte(']')
	return b.String()
}
