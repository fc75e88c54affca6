package report

import (
	"testing"

	"github.com/linesim/linesim/sim"
	"github.com/stretchr/testify/require"
)

// twoOrderRun drains a one-station line (capacity 1, service exactly 10)
// fed with orders at t=0 and t=5: waits [0, 5], departures [10, 20].
func twoOrderRun(t *testing.T) *sim.RunResult {
	t.Helper()
	cfg := sim.LineConfig{
		Seed:             7,
		TargetUnits:      1,
		UnitsPerOrder:    1,
		InterArrivalMean: 15,
		Stages:           []sim.StageConfig{sim.NewStageConfig("Press", 1, 10, 0)},
	}
	s, err := sim.NewSimulator(cfg, sim.WithoutGenerator())
	require.NoError(t, err)
	s.InjectOrder(0)
	s.InjectOrder(5)
	return s.Run()
}

// emptyRun drains a line that never receives an order.
func emptyRun(t *testing.T) *sim.RunResult {
	t.Helper()
	cfg := sim.DefaultLineConfig()
	cfg.TargetUnits = 1000
	s, err := sim.NewSimulator(cfg, sim.WithoutGenerator())
	require.NoError(t, err)
	return s.Run()
}
