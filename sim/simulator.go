// sim/simulator.go
package sim

import (
	"math"
	"math/rand"

	"github.com/linesim/linesim/sim/trace"
	"github.com/sirupsen/logrus"
)

// RunState is the scheduler state machine: Idle → Running → Drained.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StateDrained
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDrained:
		return "drained"
	}
	return "unknown"
}

// Stage binds a stage definition to its station and service sampler.
type Stage struct {
	Index   int
	Config  StageConfig
	Pool    *ResourcePool
	service ServiceSampler
	rng     *rand.Rand
}

// Simulator is the core object that holds the virtual clock, the event queue,
// the stations and the statistics of one run. It is single-threaded: exactly
// one continuation executes at a time, so nothing here is locked.
type Simulator struct {
	clock   float64
	queue   *EventQueue
	nextSeq uint64
	state   RunState

	config    LineConfig
	rng       *PartitionedRNG
	stages    []*Stage
	stats     *Collector
	generator *OrderGenerator

	trace           *trace.SimulationTrace
	onOrderComplete func(OrderRecord)

	spawned        int
	eventsExecuted int
}

// Option customizes a Simulator at construction.
type Option func(*Simulator)

// WithTrace records every station step into st.
func WithTrace(st *trace.SimulationTrace) Option {
	return func(sim *Simulator) {
		if st != nil && st.Config.Enabled() {
			sim.trace = st
		}
	}
}

// WithOrderCompleteHook calls fn with the record of every departing order.
// fn runs inside the scheduler loop and must not block.
func WithOrderCompleteHook(fn func(OrderRecord)) Option {
	return func(sim *Simulator) {
		sim.onOrderComplete = fn
	}
}

// WithoutGenerator disables the order generator; orders enter only through
// InjectOrder.
func WithoutGenerator() Option {
	return func(sim *Simulator) {
		sim.generator = nil
	}
}

// NewSimulator validates cfg and builds an idle simulator. A configuration
// fault is returned before any state is created.
func NewSimulator(cfg LineConfig, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Stages = append([]StageConfig(nil), cfg.Stages...)

	sim := &Simulator{
		queue:  NewEventQueue(),
		state:  StateIdle,
		config: cfg,
		rng:    NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		stats:  NewCollector(cfg.StageNames()),
	}
	floor := cfg.serviceFloor()
	for i, sc := range cfg.Stages {
		sim.stages = append(sim.stages, &Stage{
			Index:   i,
			Config:  sc,
			Pool:    NewResourcePool(sc.Name, sc.Capacity, sim),
			service: NewGaussianServiceSampler(sc.ServiceMean, sc.ServiceStdDev, floor),
			rng:     sim.rng.ForSubsystem(SubsystemStage(i)),
		})
	}
	sim.generator = newOrderGenerator(sim,
		NewExponentialArrivalSampler(cfg.InterArrivalMean),
		sim.rng.ForSubsystem(SubsystemArrivals),
		cfg.TargetUnits)

	for _, opt := range opts {
		opt(sim)
	}
	return sim, nil
}

// Run builds a simulator for cfg and runs it to drain.
func Run(cfg LineConfig, opts ...Option) (*RunResult, error) {
	sim, err := NewSimulator(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return sim.Run(), nil
}

// Now returns the current virtual time.
func (sim *Simulator) Now() float64 {
	return sim.clock
}

// State returns the scheduler state.
func (sim *Simulator) State() RunState {
	return sim.state
}

// Stages returns the stage bindings in traversal order.
func (sim *Simulator) Stages() []*Stage {
	return sim.stages
}

// Stats returns the statistics collector.
func (sim *Simulator) Stats() *Collector {
	return sim.stats
}

// Pending returns the number of scheduled events not yet executed.
func (sim *Simulator) Pending() int {
	return sim.queue.Len()
}

// Schedule pushes a continuation to run at virtual time at. Scheduling into
// the past, or after the run has drained, is an engine defect and panics.
func (sim *Simulator) Schedule(at float64, kind EventKind, owner string, resume func()) {
	if sim.state == StateDrained {
		panic(invariantf("schedule", "%s(%s) scheduled after drain", kind, owner))
	}
	if math.IsNaN(at) || at < sim.clock {
		panic(invariantf("schedule", "%s(%s) at t=%v is before clock t=%v", kind, owner, at, sim.clock))
	}
	if resume == nil {
		panic(invariantf("schedule", "%s(%s) has no continuation", kind, owner))
	}
	sim.nextSeq++
	sim.queue.Schedule(&Event{
		time:   at,
		seq:    sim.nextSeq,
		kind:   kind,
		owner:  owner,
		resume: resume,
	})
}

// After schedules resume to run delay time units from now.
func (sim *Simulator) After(delay float64, kind EventKind, owner string, resume func()) {
	sim.Schedule(sim.clock+delay, kind, owner, resume)
}

// InjectOrder schedules an order to arrive at time at, bypassing the
// generator. Only valid before Run. Returns the order ID.
func (sim *Simulator) InjectOrder(at float64) string {
	if sim.state != StateIdle {
		panic(invariantf("inject order", "simulator is %s", sim.state))
	}
	return sim.spawnOrder(at).ID
}

func (sim *Simulator) spawnOrder(at float64) *Order {
	sim.spawned++
	o := newOrder(sim.spawned, at, len(sim.stages), sim.config.UnitsPerOrder)
	sim.Schedule(at, EventOrderStart, o.ID, func() { sim.startOrder(o) })
	return o
}

// Run drives the event loop until the queue is empty and returns the
// read-only result. The simulated duration is the clock at drain.
func (sim *Simulator) Run() *RunResult {
	if sim.state != StateIdle {
		panic(invariantf("run", "simulator is %s, want %s", sim.state, StateIdle))
	}
	sim.state = StateRunning
	logrus.Infof("Starting simulation: target=%d units, %d units/order, %d stages, seed=%d",
		sim.config.TargetUnits, sim.config.UnitsPerOrder, len(sim.stages), sim.config.Seed)

	if sim.generator != nil {
		sim.Schedule(sim.clock, EventGeneratorStart, generatorOwner, sim.generator.step)
	}

	for sim.queue.Len() > 0 {
		ev := sim.popNext()
		// advance the clock
		sim.clock = ev.time
		sim.eventsExecuted++
		logrus.Debugf("[t=%10.2f] Executing %s", sim.clock, ev)
		ev.resume()
	}

	sim.state = StateDrained
	sim.stats.Finalize()
	for _, st := range sim.stages {
		if st.Pool.InUse() != 0 || st.Pool.QueueLen() != 0 {
			logrus.Warnf("%s drained with %d in use and %d queued", st.Config.Name, st.Pool.InUse(), st.Pool.QueueLen())
		}
	}
	logrus.Infof("[t=%10.2f] Simulation drained after %d events", sim.clock, sim.eventsExecuted)
	return newRunResult(sim)
}

func (sim *Simulator) popNext() *Event {
	ev := sim.queue.PopNext()
	if ev == nil {
		panic(invariantf("pop", "event queue empty while the scheduler is %s", sim.state))
	}
	if ev.time < sim.clock {
		panic(invariantf("pop", "%s at t=%v would move the clock back from t=%v", ev, ev.time, sim.clock))
	}
	return ev
}
