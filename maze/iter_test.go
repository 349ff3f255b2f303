package maze_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/mazes/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positions maps cells to their coordinates for readable comparisons.
func positions(cells []*maze.Cell) []maze.Position {
	out := make([]maze.Position, len(cells))
	for i, c := range cells {
		out[i] = c.Pos
	}
	return out
}

// constSource always draws the same value, forcing repeated samples.
type constSource int

func (s constSource) Intn(n int) int { return int(s) % n }

//----------------------------------------------------------------------------//
// Row-major and column-major views
//----------------------------------------------------------------------------//

// TestEachRow_TwoByTwo expects [[(0,0) (1,0)] [(0,1) (1,1)]] and then exhaustion.
func TestEachRow_TwoByTwo(t *testing.T) {
	g := maze.NewGrid(2, 2)
	it := g.EachRow()

	r0, ok := it.Next()
	require.True(t, ok, "row 0 missing")
	assert.Equal(t, []*maze.Cell{g.MustCell(maze.NewPosition(0, 0)), g.MustCell(maze.NewPosition(1, 0))}, r0)

	r1, ok := it.Next()
	require.True(t, ok, "row 1 missing")
	assert.Equal(t, []*maze.Cell{g.MustCell(maze.NewPosition(0, 1)), g.MustCell(maze.NewPosition(1, 1))}, r1)

	_, ok = it.Next()
	assert.False(t, ok, "extra row")
	_, ok = it.Next()
	assert.False(t, ok, "cursor must stay exhausted")
}

// TestEachRow_NonSquare checks row and column counts on a 3×2 grid.
func TestEachRow_NonSquare(t *testing.T) {
	g := maze.NewGrid(3, 2)
	var rows [][]maze.Position
	for row := range g.Rows() {
		rows = append(rows, positions(row))
	}
	want := [][]maze.Position{
		{{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 2, Row: 0}},
		{{Column: 0, Row: 1}, {Column: 1, Row: 1}, {Column: 2, Row: 1}},
	}
	assert.Equal(t, want, rows)
}

func TestEachColumn_NonSquare(t *testing.T) {
	g := maze.NewGrid(3, 2)
	it := g.EachColumn()
	var cols [][]maze.Position
	for col, ok := it.Next(); ok; col, ok = it.Next() {
		cols = append(cols, positions(col))
	}
	want := [][]maze.Position{
		{{Column: 0, Row: 0}, {Column: 0, Row: 1}},
		{{Column: 1, Row: 0}, {Column: 1, Row: 1}},
		{{Column: 2, Row: 0}, {Column: 2, Row: 1}},
	}
	assert.Equal(t, want, cols)
	assert.Len(t, slices.Collect(g.Columns()), 3)
}

// TestRows_ZeroWidth yields Height() empty rows and no columns.
func TestRows_ZeroWidth(t *testing.T) {
	g := maze.NewGrid(0, 2)
	rows := slices.Collect(g.Rows())
	require.Len(t, rows, 2)
	assert.Empty(t, rows[0])
	assert.Empty(t, slices.Collect(g.Columns()))
	assert.Empty(t, slices.Collect(g.Cells()))
}

//----------------------------------------------------------------------------//
// Full enumeration
//----------------------------------------------------------------------------//

// TestEachCell_RowMajorCoverage checks every coordinate appears exactly once
// in row-major order, and that the view equals the flattened row view.
func TestEachCell_RowMajorCoverage(t *testing.T) {
	const w, h = 4, 3
	g := maze.NewGrid(w, h)

	var got []maze.Position
	it := g.EachCell()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		got = append(got, c.Pos)
	}
	require.Len(t, got, w*h)
	for i, p := range got {
		assert.Equal(t, maze.NewPosition(i%w, i/w), p, "index %d", i)
	}

	var flat []maze.Position
	for row := range g.Rows() {
		flat = append(flat, positions(row)...)
	}
	assert.Equal(t, flat, got)
}

// TestCells_Restartable ranges twice and stops one pass early.
func TestCells_Restartable(t *testing.T) {
	g := maze.NewGrid(2, 2)
	seq := g.Cells()
	first := positions(slices.Collect(seq))
	second := positions(slices.Collect(seq))
	assert.Equal(t, first, second)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

//----------------------------------------------------------------------------//
// Random sample
//----------------------------------------------------------------------------//

// TestRandomCells_CountAndBounds: always Len() items, all in range.
func TestRandomCells_CountAndBounds(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {5, 3}, {1, 7}} {
		g := maze.NewGrid(dims[0], dims[1])
		it := g.RandomCells()
		cnt := 0
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			require.NotNil(t, c)
			assert.True(t, g.Contains(c.Pos), "sampled %v", c.Pos)
			cnt++
		}
		assert.Equal(t, g.Len(), cnt)
	}
}

// TestRandomCells_WithReplacement pins the source so that every draw hits
// the same cell; the view still yields Len() items.
func TestRandomCells_WithReplacement(t *testing.T) {
	g := maze.NewGrid(3, 3)
	got := positions(slices.Collect(g.Sample(maze.WithRand(constSource(1)))))
	require.Len(t, got, 9)
	for _, p := range got {
		assert.Equal(t, maze.NewPosition(1, 1), p)
	}
}

// TestRandomCells_Seeded: equal seeds give equal samples.
func TestRandomCells_Seeded(t *testing.T) {
	g := maze.NewGrid(6, 4)
	a := positions(slices.Collect(g.Sample(maze.WithSeed(7))))
	b := positions(slices.Collect(g.Sample(maze.WithSeed(7))))
	assert.Equal(t, a, b)
	assert.Len(t, a, 24)
}

// TestRandomCells_MathRand accepts a *math/rand.Rand as Source.
func TestRandomCells_MathRand(t *testing.T) {
	g := maze.NewGrid(4, 4)
	seq := g.Sample(maze.WithRand(rand.New(rand.NewSource(42))))
	assert.Len(t, slices.Collect(seq), 16)
}

func TestRandomCells_EmptyGrid(t *testing.T) {
	for _, g := range []*maze.Grid{maze.NewGrid(0, 0), maze.NewGrid(0, 3), maze.NewGrid(3, 0)} {
		_, ok := g.RandomCells().Next()
		assert.False(t, ok)
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { maze.WithRand(nil) })
}
