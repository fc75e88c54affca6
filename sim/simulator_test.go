package sim

import (
	"testing"

	"github.com/linesim/linesim/sim/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulator_InvalidConfig_NoSimulator(t *testing.T) {
	cfg := singleStageConfig(1, 10, 0)
	cfg.TargetUnits = 0

	sim, err := NewSimulator(cfg)

	assert.Nil(t, sim)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSimulator_Schedule_IntoPast_Panics(t *testing.T) {
	sim, err := NewSimulator(singleStageConfig(1, 10, 0), WithoutGenerator())
	require.NoError(t, err)

	requireInvariantPanic(t, "schedule", func() {
		sim.Schedule(-1, EventArrival, "x", func() {})
	})
}

func TestSimulator_Schedule_FromContinuationIntoPast_Panics(t *testing.T) {
	sim, err := NewSimulator(singleStageConfig(1, 10, 0), WithoutGenerator())
	require.NoError(t, err)
	sim.Schedule(5, EventArrival, "x", func() {
		sim.Schedule(4.999, EventArrival, "y", func() {})
	})

	requireInvariantPanic(t, "schedule", func() { sim.Run() })
}

func TestSimulator_Schedule_NilContinuation_Panics(t *testing.T) {
	sim, err := NewSimulator(singleStageConfig(1, 10, 0), WithoutGenerator())
	require.NoError(t, err)

	requireInvariantPanic(t, "schedule", func() {
		sim.Schedule(1, EventArrival, "x", nil)
	})
}

func TestSimulator_SameTimeEvents_RunInSchedulingOrder(t *testing.T) {
	// GIVEN events scheduled out of time order, some sharing timestamps,
	// and a continuation that schedules two more events at an equal time
	sim, err := NewSimulator(singleStageConfig(1, 10, 0), WithoutGenerator())
	require.NoError(t, err)
	var got []string
	note := func(s string) func() { return func() { got = append(got, s) } }

	sim.Schedule(5, EventArrival, "a", note("a@5"))
	sim.Schedule(1, EventArrival, "b", func() {
		got = append(got, "b@1")
		sim.Schedule(5, EventArrival, "d", note("d@5"))
		sim.Schedule(5, EventArrival, "e", note("e@5"))
	})
	sim.Schedule(5, EventArrival, "c", note("c@5"))

	// WHEN the simulator runs
	res := sim.Run()

	// THEN ties resolve in insertion order
	assert.Equal(t, []string{"b@1", "a@5", "c@5", "d@5", "e@5"}, got)
	assert.Equal(t, 5.0, res.Duration())
	assert.Equal(t, 5, res.EventsExecuted())
}

func TestSimulator_StateMachine(t *testing.T) {
	sim, err := NewSimulator(singleStageConfig(1, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, StateIdle, sim.State())

	sim.Run()

	assert.Equal(t, StateDrained, sim.State())
	assert.Equal(t, 0, sim.Pending())
	assert.True(t, sim.Stats().Finalized())
	requireInvariantPanic(t, "run", func() { sim.Run() })
	requireInvariantPanic(t, "schedule", func() {
		sim.Schedule(sim.Now()+1, EventArrival, "late", func() {})
	})
	requireInvariantPanic(t, "inject order", func() { sim.InjectOrder(0) })
}

func TestRunState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "drained", StateDrained.String())
	assert.Equal(t, "unknown", RunState(9).String())
}

func TestSimulator_TwoOrdersContendForSingleStation(t *testing.T) {
	// GIVEN a single-slot station with a deterministic 10-unit service time
	// and orders arriving at t=0 and t=5
	sim, err := NewSimulator(singleStageConfig(1, 10, 0), WithoutGenerator())
	require.NoError(t, err)
	id1 := sim.InjectOrder(0)
	id2 := sim.InjectOrder(5)

	// WHEN the run drains
	res := sim.Run()

	// THEN order 1 is served 0→10 without waiting, order 2 waits 5→10 and is served 10→20
	assert.Equal(t, "Order-1", id1)
	assert.Equal(t, "Order-2", id2)
	assert.Equal(t, []float64{0, 5}, res.StageWaits(0))
	assert.Equal(t, []float64{0, 5}, res.ArrivalTimes())
	assert.Equal(t, []float64{10, 20}, res.DepartureTimes())
	assert.Equal(t, 20.0, res.Duration())
	assert.Equal(t, []int{2}, res.CompletedCounts())

	orders := res.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "Order-2", orders[1].ID)
	assert.Equal(t, 5.0, orders[1].ArrivalTime)
	assert.Equal(t, 20.0, orders[1].DepartureTime)
	assert.Equal(t, []float64{10}, orders[1].ServiceTimes)
	assert.Equal(t, 15.0, orders[1].CycleTime())

	// AND the station was busy the whole time and is empty at drain
	st := res.Stations()[0]
	assert.Equal(t, 0, st.InUse)
	assert.Equal(t, 0, st.QueueLen)
	assert.Equal(t, 1, st.PeakQueueLen)
	assert.InDelta(t, 1.0, st.Utilization(res.Duration()), 1e-12)
}

func TestSimulator_HandoffAndNewArrivalAtSameInstant_QueuedWaiterWins(t *testing.T) {
	// GIVEN order 2 queued since t=5 and order 3 arriving at t=10, the instant
	// order 1 releases the single slot
	sim, err := NewSimulator(singleStageConfig(1, 10, 0), WithoutGenerator())
	require.NoError(t, err)
	sim.InjectOrder(0)
	sim.InjectOrder(5)
	sim.InjectOrder(10)

	res := sim.Run()

	// THEN the slot passes to order 2 and order 3 queues behind it
	orders := res.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"Order-1", "Order-2", "Order-3"}, []string{orders[0].ID, orders[1].ID, orders[2].ID})
	assert.Equal(t, 5.0, orders[1].StageWaits[0])
	assert.Equal(t, 10.0, orders[2].StageWaits[0])
	assert.Equal(t, 30.0, res.Duration())
}

func TestSimulator_OrderHoldsOneSlotAtATime(t *testing.T) {
	// GIVEN a two-stage line traced at event level
	cfg := singleStageConfig(1, 3, 0)
	cfg.Stages = append(cfg.Stages, NewStageConfig("Second", 1, 4, 0))
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents})
	sim, err := NewSimulator(cfg, WithoutGenerator(), WithTrace(st))
	require.NoError(t, err)
	sim.InjectOrder(0)

	sim.Run()

	// THEN the first stage is released before the second is requested
	var steps []string
	for _, r := range st.ForOrder("Order-1") {
		steps = append(steps, string(r.Kind)+":"+r.Station)
	}
	assert.Equal(t, []string{
		"arrival:",
		"request:Station", "grant:Station", "release:Station",
		"request:Second", "grant:Second", "release:Second",
		"departure:",
	}, steps)
}

func TestSimulator_OrderCompleteHook_SeesEveryDeparture(t *testing.T) {
	var seen []string
	res, err := Run(defaultLine(5), WithOrderCompleteHook(func(rec OrderRecord) {
		seen = append(seen, rec.ID)
	}))
	require.NoError(t, err)

	require.Len(t, seen, res.CompletedOrders())
	for i, rec := range res.Orders() {
		assert.Equal(t, rec.ID, seen[i])
	}
}
