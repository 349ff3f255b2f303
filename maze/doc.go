// Package maze models the skeleton of a maze: a rectangular grid of cells in
// which each cell links to at most one neighbor per compass direction.
//
// What:
//
//   - Position is a (Column, Row) coordinate and the unique key of a Cell.
//   - Direction is one of North, South, East, West. Row 0 is the northernmost
//     row; increasing Row points South and increasing Column points East.
//   - Cell stores its Position and a Direction → Position neighbor mapping.
//   - Grid owns width×height cells, created once at construction, and links
//     them symmetrically with Link.
//   - Traversal views (EachRow, EachColumn, EachCell, RandomCells) are lazy
//     cursors over the grid; Rows, Columns, Cells and Sample wrap them as
//     range-over-func sequences.
//
// Why:
//
//   - Maze generators (spanning-tree carvers, random walks) need exactly this:
//     a fixed cell set, a symmetric linking primitive and several visit orders.
//     No generator is shipped here; callers drive Link themselves.
//
// Complexity:
//
//   - NewGrid:           O(W×H) time and memory.
//   - Link, Cell, Neighbor: O(1) expected (map lookups).
//   - EachRow/EachColumn: O(W) or O(H) per step; EachCell/RandomCells: O(1) per step.
//
// Errors:
//
//   - ErrInvalidPair:  positions not on a common axis (contract violation, panics).
//   - ErrCellNotFound: position outside the grid.
//   - ErrNoNeighbor:   no link recorded in the requested direction.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation. Do not call Link, or edit a
//	Cell's Neighbors, while a traversal view over the same Grid is in use.
package maze
