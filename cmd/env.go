package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/linesim/linesim/sim"
)

// envOverrides holds settings read from the environment. They override the
// line config file and are overridden by explicit flags.
type envOverrides struct {
	Seed        *int64 `env:"LINESIM_SEED"`
	TargetUnits *int64 `env:"LINESIM_TARGET_UNITS"`
	LogLevel    string `env:"LINESIM_LOG_LEVEL"`
	ResultsPath string `env:"LINESIM_RESULTS_PATH"`
}

func parseEnv() (envOverrides, error) {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return envOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

func (e envOverrides) apply(cfg *sim.LineConfig) {
	if e.Seed != nil {
		cfg.Seed = *e.Seed
	}
	if e.TargetUnits != nil {
		cfg.TargetUnits = *e.TargetUnits
	}
}
