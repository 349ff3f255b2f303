// File: options.go
// Role: functional options for the random-sample traversal view.
// Contract:
//   - Option constructors validate and panic on meaningless input (nil source).
//   - Determinism is explicit: pass WithSeed or WithRand to reproduce a sample.

package maze

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source draws uniform integers in [0, n). Both *golang.org/x/exp/rand.Rand
// and *math/rand.Rand satisfy it.
type Source interface {
	Intn(n int) int
}

// SampleOption customizes a random-sample view before it starts.
type SampleOption func(*sampleConfig)

type sampleConfig struct {
	src Source
}

// newSampleConfig applies opts over the default, a clock-seeded source.
func newSampleConfig(opts ...SampleOption) sampleConfig {
	cfg := sampleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return cfg
}

// WithRand supplies the source used to draw columns and rows.
// Panics on nil.
func WithRand(src Source) SampleOption {
	if src == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *sampleConfig) { c.src = src }
}

// WithSeed uses a deterministic source seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) SampleOption {
	return func(c *sampleConfig) {
		c.src = rand.New(rand.NewSource(seed))
	}
}
