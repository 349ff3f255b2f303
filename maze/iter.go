// File: iter.go
// Role: lazy, read-only traversal views over a Grid.
// Determinism:
//   - RowIter, ColumnIter and CellIter visit coordinates in a fixed order.
//   - RandomIter is deterministic only for a fixed Source (see WithSeed).
// Concurrency:
//   - A view holds the *Grid, not a copy. Links must not change while a view
//     is in use. Dropping a view early has no side effect.

package maze

import "iter"

// RowIter yields the rows of a Grid, row 0 first. Each row is the slice of
// cells at columns 0..Width()-1 for that row index.
type RowIter struct {
	g   *Grid
	row int
}

// EachRow returns a fresh row-major cursor; call it again to restart.
func (g *Grid) EachRow() *RowIter {
	return &RowIter{g: g}
}

// Next returns the next row, or false after Height() rows.
// Complexity: O(W) per call.
func (it *RowIter) Next() ([]*Cell, bool) {
	if it.row >= it.g.height {
		return nil, false
	}
	out := make([]*Cell, 0, it.g.width)
	for c := 0; c < it.g.width; c++ {
		out = append(out, it.g.cells[Position{Column: c, Row: it.row}])
	}
	it.row++
	return out, true
}

// ColumnIter yields the columns of a Grid, column 0 first. Each column is
// the slice of cells at rows 0..Height()-1 for that column index.
type ColumnIter struct {
	g   *Grid
	col int
}

// EachColumn returns a fresh column-major cursor.
func (g *Grid) EachColumn() *ColumnIter {
	return &ColumnIter{g: g}
}

// Next returns the next column, or false after Width() columns.
// Complexity: O(H) per call.
func (it *ColumnIter) Next() ([]*Cell, bool) {
	if it.col >= it.g.width {
		return nil, false
	}
	out := make([]*Cell, 0, it.g.height)
	for r := 0; r < it.g.height; r++ {
		out = append(out, it.g.cells[Position{Column: it.col, Row: r}])
	}
	it.col++
	return out, true
}

// CellIter yields every cell once in row-major element order:
// (0,0), (1,0), …, (W-1,0), (0,1), … It is the flattening of RowIter.
type CellIter struct {
	g        *Grid
	col, row int
}

// EachCell returns a fresh full-enumeration cursor.
func (g *Grid) EachCell() *CellIter {
	return &CellIter{g: g}
}

// Next returns the next cell, or false after Len() cells.
// Complexity: O(1) per call.
func (it *CellIter) Next() (*Cell, bool) {
	if it.g.width == 0 || it.row >= it.g.height {
		return nil, false
	}
	c := it.g.cells[Position{Column: it.col, Row: it.row}]
	it.col++
	if it.col >= it.g.width {
		it.col = 0
		it.row++
	}
	return c, true
}

// RandomIter yields exactly Len() cells, each picked by drawing an
// independent uniform column and row. Draws are with replacement: a cell
// may appear more than once and some cells may not appear at all.
type RandomIter struct {
	g        *Grid
	src      Source
	produced int
}

// RandomCells returns a fresh random-sample cursor. Without options it draws
// from a clock-seeded source.
func (g *Grid) RandomCells(opts ...SampleOption) *RandomIter {
	cfg := newSampleConfig(opts...)
	return &RandomIter{g: g, src: cfg.src}
}

// Next returns the next sampled cell, or false once Len() cells were produced.
// Complexity: O(1) per call.
func (it *RandomIter) Next() (*Cell, bool) {
	if it.produced >= it.g.Len() {
		return nil, false
	}
	p := Position{
		Column: it.src.Intn(it.g.width),
		Row:    it.src.Intn(it.g.height),
	}
	it.produced++
	return it.g.cells[p], true
}

// Rows is EachRow as a range-over-func sequence.
func (g *Grid) Rows() iter.Seq[[]*Cell] {
	return func(yield func([]*Cell) bool) {
		it := g.EachRow()
		for row, ok := it.Next(); ok; row, ok = it.Next() {
			if !yield(row) {
				return
			}
		}
	}
}

// Columns is EachColumn as a range-over-func sequence.
func (g *Grid) Columns() iter.Seq[[]*Cell] {
	return func(yield func([]*Cell) bool) {
		it := g.EachColumn()
		for col, ok := it.Next(); ok; col, ok = it.Next() {
			if !yield(col) {
				return
			}
		}
	}
}

// Cells is EachCell as a range-over-func sequence.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		it := g.EachCell()
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Sample is RandomCells as a range-over-func sequence. Each range over the
// returned sequence starts a new cursor; with WithSeed every pass repeats
// the same draws, with WithRand passes continue the shared source.
func (g *Grid) Sample(opts ...SampleOption) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		it := g.RandomCells(opts...)
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
