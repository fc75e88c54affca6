package sim

// RunResult is the read-only outcome of a drained run. Reporting code consumes
// it only through these accessors; every slice returned is a copy.
type RunResult struct {
	duration       float64
	config         LineConfig
	key            SimulationKey
	spawned        int
	eventsExecuted int
	generatorDone  bool
	generatorAt    float64
	stats          *Collector
	stations       []StationSnapshot
}

func newRunResult(sim *Simulator) *RunResult {
	res := &RunResult{
		duration:       sim.clock,
		config:         sim.config,
		key:            sim.rng.Key(),
		spawned:        sim.spawned,
		eventsExecuted: sim.eventsExecuted,
		stats:          sim.stats,
	}
	if sim.generator != nil {
		res.generatorDone, res.generatorAt = sim.generator.Stopped()
	}
	for _, st := range sim.stages {
		res.stations = append(res.stations, st.Pool.Snapshot(sim.clock))
	}
	return res
}

// Duration returns the simulated time at drain.
func (r *RunResult) Duration() float64 { return r.duration }

// Key returns the simulation key (seed) of the run.
func (r *RunResult) Key() SimulationKey { return r.key }

// Config returns a copy of the configuration the run used.
func (r *RunResult) Config() LineConfig {
	cfg := r.config
	cfg.Stages = append([]StageConfig(nil), r.config.Stages...)
	return cfg
}

// TargetUnits returns the configured output target.
func (r *RunResult) TargetUnits() int64 { return r.config.TargetUnits }

// OutputUnits returns the cumulative output of completed orders.
func (r *RunResult) OutputUnits() int64 { return r.stats.OutputUnits() }

// OrdersSpawned returns how many orders entered the line.
func (r *RunResult) OrdersSpawned() int { return r.spawned }

// EventsExecuted returns how many events the scheduler ran.
func (r *RunResult) EventsExecuted() int { return r.eventsExecuted }

// GeneratorStopped reports whether the generator exited its loop, and when.
// Both are zero for runs fed only by InjectOrder.
func (r *RunResult) GeneratorStopped() (bool, float64) { return r.generatorDone, r.generatorAt }

// StageNames returns the stage names in traversal order.
func (r *RunResult) StageNames() []string { return r.stats.StageNames() }

// ArrivalTimes returns the arrival timestamps, in arrival order.
func (r *RunResult) ArrivalTimes() []float64 { return r.stats.ArrivalTimes() }

// DepartureTimes returns the departure timestamps, in departure order.
func (r *RunResult) DepartureTimes() []float64 { return r.stats.DepartureTimes() }

// StageWaits returns the waits recorded at stage i, in grant order.
func (r *RunResult) StageWaits(i int) []float64 { return r.stats.StageWaits(i) }

// StageWaitsByName looks a stage up by name.
func (r *RunResult) StageWaitsByName(name string) ([]float64, bool) {
	for i, n := range r.stats.stageNames {
		if n == name {
			return r.stats.StageWaits(i), true
		}
	}
	return nil, false
}

// CompletedCounts returns how many orders each stage finished.
func (r *RunResult) CompletedCounts() []int { return r.stats.CompletedCounts() }

// CompletedOrders returns the number of orders that departed.
func (r *RunResult) CompletedOrders() int { return len(r.stats.departures) }

// Orders returns the records of completed orders, in departure order.
func (r *RunResult) Orders() []OrderRecord { return r.stats.Orders() }

// Stations returns each station's state at drain time.
func (r *RunResult) Stations() []StationSnapshot {
	return append([]StationSnapshot(nil), r.stations...)
}
