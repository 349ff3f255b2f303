// errors.go — sentinel errors shared by Grid, Cell and the coordinate model.
//
// Error policy:
//   - Only package-level sentinels are exposed; call sites attach context
//     with %w and callers branch with errors.Is.
//   - ErrInvalidPair marks a contract violation. DirectionFrom and Link
//     panic with it; TryDirectionFrom returns it for callers that want to
//     pre-validate adjacency.
//   - ErrCellNotFound and ErrNoNeighbor are ordinary, recoverable absences.

package maze

import "errors"

var (
	// ErrInvalidPair indicates two positions that are not on a common axis
	// (identical or diagonal), so no compass direction relates them.
	ErrInvalidPair = errors.New("maze: invalid coordinate pair")

	// ErrCellNotFound indicates a position outside the populated grid.
	ErrCellNotFound = errors.New("maze: cell not found")

	// ErrNoNeighbor indicates that a cell records no link in the requested direction.
	ErrNoNeighbor = errors.New("maze: no neighbor in direction")
)
