package cmd

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/linesim/linesim/sim"
)

// runReplications runs cfg n times with seeds cfg.Seed, cfg.Seed+1, ...
// on at most workers goroutines. Results are in seed order.
func runReplications(ctx context.Context, cfg sim.LineConfig, n, workers int) ([]*sim.RunResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", n)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]*sim.RunResult, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc := cfg
			rc.Stages = slices.Clone(cfg.Stages)
			rc.Seed = cfg.Seed + int64(i)
			res, err := sim.Run(rc)
			if err != nil {
				return fmt.Errorf("replication %d (seed %d): %w", i, rc.Seed, err)
			}
			logrus.Debugf("replication %d (seed %d) drained at t=%.2f", i, rc.Seed, res.Duration())
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
