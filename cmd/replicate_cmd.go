package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linesim/linesim/sim/report"
)

// replicateOptions is the flag state of the replicate command.
type replicateOptions struct {
	runOptions
	runs    int
	workers int
}

// executeReplicate runs independent replications and writes their
// aggregate report to out. The target must come from config, env or flags.
func executeReplicate(ctx context.Context, opts replicateOptions, e envOverrides, out io.Writer) error {
	cfg, err := resolveLineConfig(opts.runOptions, e)
	if err != nil {
		return err
	}
	if cfg.TargetUnits == 0 && !opts.targetSet {
		return errNoTarget
	}

	start := time.Now()
	results, err := runReplications(ctx, cfg, opts.runs, opts.workers)
	if err != nil {
		return err
	}
	wall := time.Since(start)
	logrus.Infof("%d replications finished in %s", len(results), wall)

	fmt.Fprintf(out, "Replicating production of %d %s over seeds %d..%d\n",
		cfg.TargetUnits, opts.unitLabel, cfg.Seed, cfg.Seed+int64(opts.runs)-1)
	textOpts := report.TextOptions{UnitLabel: opts.unitLabel, WallClock: wall}
	return report.WriteReplicationText(out, report.SummarizeReplications(results), textOpts)
}
