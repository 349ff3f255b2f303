// Package mazes is the home of a small maze-skeleton toolkit: a rectangular
// grid whose cells link to at most one neighbor per compass direction.
//
// What is here?
//
//	maze/       — Position, Direction, Cell and Grid; symmetric Link; row-major,
//	              column-major, full and random-sample traversal views
//	cmd/mazes/  — demo command: builds a 2×2 grid, carves one passage, prints it
//
// What is not (yet)?
//
//	Generators (binary tree, sidewinder, Aldous–Broder, Wilson) are left to
//	callers: each is a loop over a traversal view that calls Grid.Link.
//
// Quick ASCII example, a 2×2 grid after Link((0,0), (1,0)):
//
//	+---+---+
//	|       |
//	+---+---+
//	|   |   |
//	+---+---+
//
//	go get github.com/katalvlaran/mazes/maze
package mazes
