package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleStageConfig returns a one-stage line with the given station shape.
func singleStageConfig(capacity int, mean, stddev float64) LineConfig {
	return LineConfig{
		Seed:             42,
		TargetUnits:      1,
		UnitsPerOrder:    1,
		InterArrivalMean: 15,
		Stages:           []StageConfig{NewStageConfig("Station", capacity, mean, stddev)},
	}
}

// defaultLine returns the bottling line with a target of n orders' output.
func defaultLine(orders int64) LineConfig {
	cfg := DefaultLineConfig()
	cfg.TargetUnits = orders * cfg.UnitsPerOrder
	return cfg
}

// requireInvariantPanic asserts that fn panics with an *InvariantViolation
// raised by op.
func requireInvariantPanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected an invariant panic in %s", op)
		v, ok := r.(*InvariantViolation)
		require.True(t, ok, "panic value %T is not *InvariantViolation", r)
		assert.Equal(t, op, v.Op)
	}()
	fn()
}

// fakeScheduler records Schedule calls without running them.
type fakeScheduler struct {
	now   float64
	calls []scheduledCall
}

type scheduledCall struct {
	at     float64
	kind   EventKind
	owner  string
	resume func()
}

func (f *fakeScheduler) Now() float64 { return f.now }

func (f *fakeScheduler) Schedule(at float64, kind EventKind, owner string, resume func()) {
	f.calls = append(f.calls, scheduledCall{at: at, kind: kind, owner: owner, resume: resume})
}
