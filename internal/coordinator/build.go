package coordinator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dbsmedya/gosynth/internal/config"
	"github.com/dbsmedya/gosynth/internal/generator"
	"github.com/dbsmedya/gosynth/internal/logger"
)

// ResolveSeed returns seed, or a time-based seed when seed is zero.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// FromConfig builds a Coordinator and registers every configured generator
// in declaration order. Generator i draws from its own source seeded with
// seed+i, so no random state is shared between generators.
func FromConfig(cfg *config.Config, seed int64, log *logger.Logger) (*Coordinator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	c := New(Options{
		Parallel: cfg.Execution.Parallel,
		Workers:  cfg.Execution.Workers,
	}, log)

	for i, gc := range cfg.Generators {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		gen, err := generator.FromConfig(gc, rng)
		if err != nil {
			return nil, err
		}
		if err := c.Register(gc.Name, gen); err != nil {
			return nil, fmt.Errorf("register generator %d: %w", i, err)
		}
	}

	return c, nil
}
