// Tracks line-wide and per-stage statistics: arrivals, departures, wait times,
// processed counts and cumulative output.

package sim

// Collector accumulates the statistics of one run. Every sequence is
// append-only and every counter only grows. Once the scheduler drains, the
// collector is finalized and any further recording is an invariant violation.
// Accessors return copies, so reporting code can never mutate run state.
type Collector struct {
	stageNames     []string
	arrivals       []float64
	departures     []float64
	stageWaits     [][]float64
	stageCompleted []int
	outputUnits    int64
	orders         []OrderRecord
	finalized      bool
}

// NewCollector creates an empty collector for the given stages.
func NewCollector(stageNames []string) *Collector {
	names := append([]string(nil), stageNames...)
	waits := make([][]float64, len(names))
	for i := range waits {
		waits[i] = make([]float64, 0)
	}
	return &Collector{
		stageNames:     names,
		arrivals:       make([]float64, 0),
		departures:     make([]float64, 0),
		stageWaits:     waits,
		stageCompleted: make([]int, len(names)),
		orders:         make([]OrderRecord, 0),
	}
}

// RecordArrival appends an arrival timestamp.
func (c *Collector) RecordArrival(at float64) {
	c.mustBeOpen("record arrival")
	c.arrivals = append(c.arrivals, at)
}

// RecordWait appends the wait observed at a stage.
func (c *Collector) RecordWait(stage int, wait float64) {
	c.mustBeOpen("record wait")
	c.checkStage("record wait", stage)
	if wait < 0 {
		panic(invariantf("record wait", "stage %q: negative wait %v", c.stageNames[stage], wait))
	}
	c.stageWaits[stage] = append(c.stageWaits[stage], wait)
}

// RecordStageComplete bumps the processed counter of a stage.
func (c *Collector) RecordStageComplete(stage int) {
	c.mustBeOpen("record stage completion")
	c.checkStage("record stage completion", stage)
	c.stageCompleted[stage]++
}

// RecordDeparture stores the final record of an order, its departure time and
// its output.
func (c *Collector) RecordDeparture(rec OrderRecord) {
	c.mustBeOpen("record departure")
	c.departures = append(c.departures, rec.DepartureTime)
	c.outputUnits += rec.OutputUnits
	c.orders = append(c.orders, rec)
}

// Finalize freezes the collector.
func (c *Collector) Finalize() {
	c.finalized = true
}

// Finalized reports whether the collector is read-only.
func (c *Collector) Finalized() bool {
	return c.finalized
}

// OutputUnits returns the cumulative output of completed orders.
func (c *Collector) OutputUnits() int64 {
	return c.outputUnits
}

// StageNames returns the stage names in traversal order.
func (c *Collector) StageNames() []string {
	return append([]string(nil), c.stageNames...)
}

// ArrivalTimes returns a copy of the arrival timestamps, in arrival order.
func (c *Collector) ArrivalTimes() []float64 {
	return append([]float64(nil), c.arrivals...)
}

// DepartureTimes returns a copy of the departure timestamps, in departure order.
func (c *Collector) DepartureTimes() []float64 {
	return append([]float64(nil), c.departures...)
}

// StageWaits returns a copy of the waits recorded at stage i, in grant order.
func (c *Collector) StageWaits(i int) []float64 {
	c.checkStage("stage waits", i)
	return append([]float64(nil), c.stageWaits[i]...)
}

// CompletedCounts returns a copy of the per-stage processed counters.
func (c *Collector) CompletedCounts() []int {
	return append([]int(nil), c.stageCompleted...)
}

// Orders returns a copy of the completed order records, in departure order.
func (c *Collector) Orders() []OrderRecord {
	out := make([]OrderRecord, len(c.orders))
	for i, rec := range c.orders {
		out[i] = rec.clone()
	}
	return out
}

func (c *Collector) mustBeOpen(op string) {
	if c.finalized {
		panic(invariantf(op, "statistics collector is finalized"))
	}
}

func (c *Collector) checkStage(op string, i int) {
	if i < 0 || i >= len(c.stageNames) {
		panic(invariantf(op, "stage index %d out of range [0, %d)", i, len(c.stageNames)))
	}
}
