package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesim/linesim/sim"
)

func TestRunReplications_ConsecutiveSeedsInOrder(t *testing.T) {
	cfg := sim.DefaultLineConfig()
	cfg.Seed = 5
	cfg.TargetUnits = 3000

	results, err := runReplications(context.Background(), cfg, 3, 2)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, sim.SimulationKey(5+i), res.Key())

		// each replication equals a standalone run with the same seed
		solo := cfg
		solo.Seed = 5 + int64(i)
		want, err := sim.Run(solo)
		require.NoError(t, err)
		assert.Equal(t, want.DepartureTimes(), res.DepartureTimes())
	}
}

func TestRunReplications_InvalidInput_Error(t *testing.T) {
	cfg := sim.DefaultLineConfig()
	cfg.TargetUnits = 1000

	_, err := runReplications(context.Background(), cfg, 0, 1)
	assert.Error(t, err)

	cfg.TargetUnits = 0
	_, err = runReplications(context.Background(), cfg, 2, 1)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}

func TestRunReplications_CancelledContext_Error(t *testing.T) {
	cfg := sim.DefaultLineConfig()
	cfg.TargetUnits = 1000
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runReplications(ctx, cfg, 4, 1)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteReplicate_WritesAggregate(t *testing.T) {
	opts := replicateOptions{runOptions: baseRunOptions(), runs: 3, workers: 2}
	opts.target, opts.targetSet = 2000, true
	var out bytes.Buffer

	require.NoError(t, executeReplicate(context.Background(), opts, envOverrides{}, &out))

	assert.Contains(t, out.String(), "seeds 42..44")
	assert.Contains(t, out.String(), "Replications (3 runs)")
}

func TestExecuteReplicate_NoTarget_Error(t *testing.T) {
	opts := replicateOptions{runOptions: baseRunOptions(), runs: 2}

	err := executeReplicate(context.Background(), opts, envOverrides{}, &bytes.Buffer{})

	assert.ErrorIs(t, err, errNoTarget)
}
