// Command mazes builds a small maze skeleton, links one passage and prints
// the grid's debug form. Dimensions and sampling are read from MAZE_*
// environment variables (or a .env file); see config.go.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/mazes/maze"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	if err := run(os.Stdout, cfg); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}

// run builds the grid described by cfg and writes its debug rendering to w.
// The (0,0)–(1,0) passage is carved only when both cells exist.
func run(w io.Writer, cfg Config) error {
	g := maze.NewGrid(cfg.Columns, cfg.Rows)
	p1, p2 := maze.NewPosition(0, 0), maze.NewPosition(1, 0)
	if g.Contains(p1) && g.Contains(p2) {
		g.Link(p1, p2)
	} else {
		log.Printf("[APP] [INFO] %dx%d grid too small to link %v-%v", cfg.Columns, cfg.Rows, p1, p2)
	}
	if _, err := fmt.Fprintf(w, "maze: %v\n", g); err != nil {
		return err
	}
	if !cfg.Sample {
		return nil
	}

	var opts []maze.SampleOption
	if cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(cfg.Seed))
	}
	var picks []string
	for c := range g.Sample(opts...) {
		picks = append(picks, c.Pos.String())
	}
	_, err := fmt.Fprintf(w, "sample: [%s]\n", strings.Join(picks, " "))
	return err
}
