package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/linesim/linesim/sim"
	"github.com/linesim/linesim/sim/report"
	"github.com/linesim/linesim/sim/trace"
)

// runOptions is the flag state of the run command. The *Set fields record
// whether the flag was given explicitly.
type runOptions struct {
	configPath    string
	seed          int64
	seedSet       bool
	target        int64
	targetSet     bool
	traceLevel    string
	histogram     bool
	histStage     string
	histBins      int
	progress      bool
	resultsPath   string
	unitLabel     string
	noInteractive bool
}

// resolveLineConfig layers the line config: built-in line, then the config
// file, then the environment, then explicit flags.
func resolveLineConfig(opts runOptions, e envOverrides) (sim.LineConfig, error) {
	cfg := sim.DefaultLineConfig()
	if opts.configPath != "" {
		loaded, err := LoadLineConfig(opts.configPath)
		if err != nil {
			return sim.LineConfig{}, err
		}
		cfg = loaded
	}
	e.apply(&cfg)
	if opts.seedSet {
		cfg.Seed = opts.seed
	}
	if opts.targetSet {
		cfg.TargetUnits = opts.target
	}
	return cfg, nil
}

// executeRun performs one run and writes its report to out. A missing target
// is prompted for on in unless noInteractive is set. Progress goes to errOut.
func executeRun(opts runOptions, e envOverrides, in io.Reader, out, errOut io.Writer) error {
	cfg, err := resolveLineConfig(opts, e)
	if err != nil {
		return err
	}
	if cfg.TargetUnits == 0 && !opts.targetSet {
		if opts.noInteractive {
			return errNoTarget
		}
		if cfg.TargetUnits, err = PromptTarget(in, out, opts.unitLabel); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !trace.IsValidTraceLevel(opts.traceLevel) {
		return fmt.Errorf("unknown trace level %q", opts.traceLevel)
	}
	histStage := opts.histStage
	if histStage == "" {
		histStage = cfg.Stages[len(cfg.Stages)-1].Name
	}

	runID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{"run_id": runID, "seed": cfg.Seed})
	fmt.Fprintf(out, "Simulating production of %d %s, with %d %s per order.\n",
		cfg.TargetUnits, opts.unitLabel, cfg.UnitsPerOrder, opts.unitLabel)

	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(opts.traceLevel)})
	simOpts := []sim.Option{sim.WithTrace(st)}
	finishProgress := func() {}
	if opts.progress {
		bar := newProgressBar(errOut, cfg.TargetUnits, opts.unitLabel)
		finishProgress = func() { _ = bar.Finish() }
		simOpts = append(simOpts, sim.WithOrderCompleteHook(progressHook(bar)))
	}

	log.Info("Starting run")
	start := time.Now()
	res, err := sim.Run(cfg, simOpts...)
	if err != nil {
		return err
	}
	wall := time.Since(start)
	finishProgress()
	log.WithField("duration", res.Duration()).Infof("Run drained after %d events", res.EventsExecuted())

	textOpts := report.TextOptions{UnitLabel: opts.unitLabel, WallClock: wall}
	if err := report.WriteText(out, report.Summarize(res), textOpts); err != nil {
		return err
	}
	if opts.histogram {
		waits, ok := res.StageWaitsByName(histStage)
		if !ok {
			return fmt.Errorf("histogram: no stage named %q", histStage)
		}
		fmt.Fprintln(out)
		title := fmt.Sprintf("Wait Times at %s (simulated %.2f)", histStage, res.Duration())
		if err := report.WriteHistogram(out, title, report.Histogram(waits, opts.histBins), 40); err != nil {
			return err
		}
	}
	if st.Config.Enabled() {
		if err := report.WriteTraceSummary(out, trace.Summarize(st)); err != nil {
			return err
		}
	}

	resultsPath := opts.resultsPath
	if resultsPath == "" {
		resultsPath = e.ResultsPath
	}
	if resultsPath != "" {
		if err := report.SaveJSON(resultsPath, res, runID); err != nil {
			return err
		}
		log.Infof("Results written to %s", resultsPath)
	}
	return nil
}
