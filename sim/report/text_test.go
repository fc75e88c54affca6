package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/linesim/linesim/sim"
	"github.com/linesim/linesim/sim/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText_Sections(t *testing.T) {
	var buf bytes.Buffer

	err := WriteText(&buf, Summarize(twoOrderRun(t)), TextOptions{UnitLabel: "bottles", WallClock: 3 * time.Millisecond})

	require.NoError(t, err)
	out := buf.String()
	for _, want := range []string{
		"Simulation Ended",
		"Actual bottles produced:  2 (from 2 completed orders)",
		"Total simulation time:  20.00 min",
		"Wall-clock time:",
		"Orders processed by Press: 2",
		"Average wait for Press: 2.50 min",
		"Average cycle time: 12.50 min",
		"Press: estimated 100.00%, measured 100.00% (capacity 1)",
		"Press: 0/1 in use, 0 queued (peak queue 1)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteText_EmptyRun(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, Summarize(emptyRun(t)), TextOptions{}))

	out := buf.String()
	assert.Contains(t, out, "No orders recorded waiting for Mixing Station.")
	assert.Contains(t, out, "cycle time unavailable")
}

func TestWriteText_GroupsLargeNumbers(t *testing.T) {
	var buf bytes.Buffer
	s := &Summary{TargetUnits: 5000, OutputUnits: 6000, OrdersDeparted: 6}

	require.NoError(t, WriteText(&buf, s, TextOptions{}))

	assert.Contains(t, buf.String(), "Target units:           5,000")
}

func TestWriteReplicationText(t *testing.T) {
	cfg := sim.DefaultLineConfig()
	cfg.TargetUnits = 3000
	var results []*sim.RunResult
	for i := 0; i < 3; i++ {
		cfg.Seed = int64(100 + i)
		res, err := sim.Run(cfg)
		require.NoError(t, err)
		results = append(results, res)
	}
	var buf bytes.Buffer

	require.NoError(t, WriteReplicationText(&buf, SummarizeReplications(results), TextOptions{}))

	assert.Contains(t, buf.String(), "Replications (3 runs)")
	assert.Contains(t, buf.String(), "Packaging Station: wait")
}

func TestWriteReplicationText_Nil(t *testing.T) {
	assert.Error(t, WriteReplicationText(&bytes.Buffer{}, nil, TextOptions{}))
}

func TestWriteTraceSummary(t *testing.T) {
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents})
	cfg := sim.LineConfig{
		Seed:             1,
		TargetUnits:      1,
		UnitsPerOrder:    1,
		InterArrivalMean: 15,
		Stages:           []sim.StageConfig{sim.NewStageConfig("Press", 1, 10, 0)},
	}
	s, err := sim.NewSimulator(cfg, sim.WithoutGenerator(), sim.WithTrace(st))
	require.NoError(t, err)
	s.InjectOrder(0)
	s.InjectOrder(5)
	s.Run()
	var buf bytes.Buffer

	require.NoError(t, WriteTraceSummary(&buf, trace.Summarize(st)))

	out := buf.String()
	assert.Contains(t, out, "departure  2")
	assert.Contains(t, out, "Press: peak in use 1, peak queue 1")
	assert.Contains(t, out, "Longest wait: 5.00 (Order-2)")
}
