package maze

import "fmt"

// Position is a (Column, Row) grid coordinate. It is a comparable value and
// serves as the map key identifying a Cell. Positions are not validated
// against any grid when built; bounds are checked by Grid at lookup time.
type Position struct {
	Column int
	Row    int
}

// NewPosition returns the Position at the given column and row.
// Complexity: O(1).
func NewPosition(column, row int) Position {
	return Position{Column: column, Row: row}
}

// Step returns the coordinate one unit away from p in direction d.
// The result may lie outside any grid. It panics on an invalid Direction.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		return Position{Column: p.Column, Row: p.Row - 1}
	case South:
		return Position{Column: p.Column, Row: p.Row + 1}
	case East:
		return Position{Column: p.Column + 1, Row: p.Row}
	case West:
		return Position{Column: p.Column - 1, Row: p.Row}
	}
	panic(fmt.Sprintf("maze: Step toward invalid %v", d))
}

// String implements fmt.Stringer as "(column,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// TryDirectionFrom returns the direction in which p2 lies as seen from p1.
//
// Only the sign of the difference matters: p1 and p2 must share exactly one
// axis, and any non-zero distance along the other axis qualifies.
//
//	Column(p1) < Column(p2), same Row    → East
//	Column(p1) > Column(p2), same Row    → West
//	Row(p1)    > Row(p2),    same Column → North
//	Row(p1)    < Row(p2),    same Column → South
//
// Identical or diagonal pairs return an error wrapping ErrInvalidPair.
// Complexity: O(1).
func TryDirectionFrom(p1, p2 Position) (Direction, error) {
	switch {
	case p1.Row == p2.Row && p1.Column < p2.Column:
		return East, nil
	case p1.Row == p2.Row && p1.Column > p2.Column:
		return West, nil
	case p1.Column == p2.Column && p1.Row > p2.Row:
		return North, nil
	case p1.Column == p2.Column && p1.Row < p2.Row:
		return South, nil
	}
	return 0, fmt.Errorf("DirectionFrom(%v, %v): %w", p1, p2, ErrInvalidPair)
}

// DirectionFrom is TryDirectionFrom for callers that have already guaranteed
// orthogonal alignment. A violated contract panics with an error wrapping
// ErrInvalidPair; it is not meant to be recovered.
func DirectionFrom(p1, p2 Position) Direction {
	d, err := TryDirectionFrom(p1, p2)
	if err != nil {
		panic(err)
	}
	return d
}
