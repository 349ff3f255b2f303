// File: grid.go
// Role: Grid construction, the symmetric Link primitive and indexed access.
// Determinism:
//   - Cells are keyed by Position; every view walks them by coordinate, never
//     by map order.

package maze

import (
	"fmt"
	"strings"
)

// Grid owns every Cell of a width×height rectangle, keyed by Position.
// The cell set is fixed at construction: cells are never added or removed,
// only their neighbor links change.
type Grid struct {
	width  int // column count
	height int // row count
	cells  map[Position]*Cell
}

// NewGrid builds a grid of the given column and row counts with every cell
// present and unlinked. Zero (or negative, treated as zero) dimensions yield
// an empty grid.
// Complexity: O(W×H) time and memory.
func NewGrid(columns, rows int) *Grid {
	columns, rows = max(columns, 0), max(rows, 0)
	g := &Grid{
		width:  columns,
		height: rows,
		cells:  make(map[Position]*Cell, columns*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			p := Position{Column: c, Row: r}
			g.cells[p] = NewCell(p)
		}
	}
	return g
}

// Width returns the column count.
func (g *Grid) Width() int { return g.width }

// Height returns the row count.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width()×Height().
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) Contains(p Position) bool {
	return p.Column >= 0 && p.Column < g.width && p.Row >= 0 && p.Row < g.height
}

// Link records p1 and p2 as neighbors of each other: p1 gains p2 in the
// direction DirectionFrom(p1, p2) and p2 gains p1 in the opposite one.
// Linking the same pair again leaves the grid unchanged.
//
// A position absent from the grid is skipped without error, so only the
// present side (if any) is updated. Positions that are not on a common
// axis violate the contract and panic with ErrInvalidPair before anything
// is written.
// Complexity: O(1).
func (g *Grid) Link(p1, p2 Position) {
	d1 := DirectionFrom(p1, p2)
	d2 := DirectionFrom(p2, p1)
	if c, ok := g.cells[p1]; ok {
		c.Neighbors[d1] = p2
	}
	if c, ok := g.cells[p2]; ok {
		c.Neighbors[d2] = p1
	}
}

// Linked reports whether p1 records p2 as its neighbor. It returns false
// for absent or misaligned positions and never panics.
func (g *Grid) Linked(p1, p2 Position) bool {
	d, err := TryDirectionFrom(p1, p2)
	if err != nil {
		return false
	}
	c, ok := g.cells[p1]
	if !ok {
		return false
	}
	n, ok := c.Neighbors[d]
	return ok && n == p2
}

// Cell returns the cell stored at p. The pointer is the grid's own cell, so
// edits to its Neighbors are visible through the grid.
// Returns an error wrapping ErrCellNotFound if p is outside the grid.
// Complexity: O(1).
func (g *Grid) Cell(p Position) (*Cell, error) {
	c, ok := g.cells[p]
	if !ok {
		return nil, fmt.Errorf("Cell(%v) in %dx%d grid: %w", p, g.width, g.height, ErrCellNotFound)
	}
	return c, nil
}

// MustCell is Cell for positions the caller knows to be in range.
// It panics with an error wrapping ErrCellNotFound otherwise.
func (g *Grid) MustCell(p Position) *Cell {
	c, err := g.Cell(p)
	if err != nil {
		panic(err)
	}
	return c
}

// Neighbor resolves the position p links to in direction d and returns the
// cell stored there.
//
// Errors:
//   - ErrCellNotFound: p is outside the grid, or the recorded neighbor is.
//   - ErrNoNeighbor:   p has no link in direction d.
func (g *Grid) Neighbor(p Position, d Direction) (*Cell, error) {
	c, err := g.Cell(p)
	if err != nil {
		return nil, err
	}
	np, ok := c.Neighbors[d]
	if !ok {
		return nil, fmt.Errorf("Neighbor(%v, %v): %w", p, d, ErrNoNeighbor)
	}
	n, err := g.Cell(np)
	if err != nil {
		return nil, fmt.Errorf("Neighbor(%v, %v): %w", p, d, err)
	}
	return n, nil
}

// String renders the grid for diagnostics: a header with the dimensions,
// then one "row N:" line per row listing each cell in column order.
func (g *Grid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grid{columns: %d, rows: %d}", g.width, g.height)
	r := 0
	for row := range g.Rows() {
		fmt.Fprintf(&b, "\nrow %d:", r)
		r++
		for _, c := range row {
			b.WriteByte(' ')
			b.WriteString(c.String())
		}
	}
	return b.String()
}
