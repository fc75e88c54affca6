package sim

import (
	"fmt"

	"github.com/linesim/linesim/sim/trace"
	"github.com/sirupsen/logrus"
)

// OrderState is the lifecycle position of an order.
type OrderState string

const (
	OrderArrived   OrderState = "arrived"
	OrderQueued    OrderState = "queued"
	OrderInService OrderState = "in_service"
	OrderDeparted  OrderState = "departed"
)

// Order is one batch travelling front-to-back through the stages.
// It is owned by its own lifecycle until departure; afterwards only its
// OrderRecord survives inside the Collector.
type Order struct {
	ID            string
	Seq           int
	ArrivalTime   float64
	DepartureTime float64 // set once, at departure
	StageWaits    []float64
	ServiceTimes  []float64
	OutputUnits   int64
	State         OrderState

	stage       int     // index of the stage being requested or served
	requestTime float64 // clock value when the current stage was requested
}

func newOrder(seq int, arrival float64, stages int, units int64) *Order {
	return &Order{
		ID:           fmt.Sprintf("Order-%d", seq),
		Seq:          seq,
		ArrivalTime:  arrival,
		StageWaits:   make([]float64, stages),
		ServiceTimes: make([]float64, stages),
		OutputUnits:  units,
		State:        OrderArrived,
	}
}

// OrderRecord is the immutable record of a completed order.
type OrderRecord struct {
	ID            string
	Seq           int
	ArrivalTime   float64
	DepartureTime float64
	StageWaits    []float64
	ServiceTimes  []float64
	OutputUnits   int64
}

// CycleTime returns departure minus arrival.
func (r OrderRecord) CycleTime() float64 {
	return r.DepartureTime - r.ArrivalTime
}

// TotalWait returns the sum of all stage waits.
func (r OrderRecord) TotalWait() float64 {
	total := 0.0
	for _, w := range r.StageWaits {
		total += w
	}
	return total
}

// TotalService returns the sum of all sampled service times.
func (r OrderRecord) TotalService() float64 {
	total := 0.0
	for _, s := range r.ServiceTimes {
		total += s
	}
	return total
}

func (r OrderRecord) clone() OrderRecord {
	r.StageWaits = append([]float64(nil), r.StageWaits...)
	r.ServiceTimes = append([]float64(nil), r.ServiceTimes...)
	return r
}

func (o *Order) record() OrderRecord {
	return OrderRecord{
		ID:            o.ID,
		Seq:           o.Seq,
		ArrivalTime:   o.ArrivalTime,
		DepartureTime: o.DepartureTime,
		StageWaits:    append([]float64(nil), o.StageWaits...),
		ServiceTimes:  append([]float64(nil), o.ServiceTimes...),
		OutputUnits:   o.OutputUnits,
	}
}

// === Lifecycle ===
//
// Each order is an explicit state machine. Its two suspension points, a
// station grant and a service timer, are continuations the scheduler invokes
// later; an order never holds more than one station slot at a time.

// startOrder runs when the OrderStart event of a spawned order fires.
func (sim *Simulator) startOrder(o *Order) {
	sim.stats.RecordArrival(o.ArrivalTime)
	sim.record(trace.KindArrival, o, nil, 0)
	logrus.Infof("[t=%10.2f] %s (batch of %d units) arrives", sim.clock, o.ID, o.OutputUnits)
	sim.enterStage(o, 0)
}

// enterStage requests the station of stage idx, or departs after the last stage.
func (sim *Simulator) enterStage(o *Order, idx int) {
	if idx == len(sim.stages) {
		sim.depart(o)
		return
	}
	st := sim.stages[idx]
	o.stage = idx
	o.requestTime = sim.clock
	sim.record(trace.KindRequest, o, st.Pool, 0)
	granted := st.Pool.Request(o.requestTime, o.ID, func() { sim.seize(o, idx) })
	if granted {
		sim.seize(o, idx)
		return
	}
	o.State = OrderQueued
	sim.record(trace.KindQueued, o, st.Pool, 0)
}

// seize runs once the order holds a slot of stage idx.
func (sim *Simulator) seize(o *Order, idx int) {
	st := sim.stages[idx]
	wait := sim.clock - o.requestTime
	if wait < 0 {
		panic(invariantf("seize", "%s at %s: negative wait %v", o.ID, st.Config.Name, wait))
	}
	o.State = OrderInService
	o.StageWaits[idx] = wait
	sim.stats.RecordWait(idx, wait)
	sim.record(trace.KindGrant, o, st.Pool, wait)
	logrus.Infof("[t=%10.2f] %s seizes %s. Waited %.2f", sim.clock, o.ID, st.Config.Name, wait)

	service := st.service.Sample(st.rng)
	o.ServiceTimes[idx] = service
	sim.After(service, EventServiceDone, o.ID, func() { sim.finishStage(o, idx) })
}

// finishStage releases stage idx and moves on to the next stage.
func (sim *Simulator) finishStage(o *Order, idx int) {
	st := sim.stages[idx]
	st.Pool.Release()
	sim.stats.RecordStageComplete(idx)
	sim.record(trace.KindRelease, o, st.Pool, 0)
	logrus.Infof("[t=%10.2f] %s finishes %s", sim.clock, o.ID, st.Config.Name)
	sim.enterStage(o, idx+1)
}

func (sim *Simulator) depart(o *Order) {
	o.DepartureTime = sim.clock
	o.State = OrderDeparted
	rec := o.record()
	sim.stats.RecordDeparture(rec)
	sim.record(trace.KindDeparture, o, nil, 0)
	logrus.Infof("[t=%10.2f] %s departs. Time in system: %.2f. Total units: %d",
		sim.clock, o.ID, rec.CycleTime(), sim.stats.OutputUnits())
	if sim.onOrderComplete != nil {
		sim.onOrderComplete(rec.clone())
	}
}

func (sim *Simulator) record(kind trace.RecordKind, o *Order, pool *ResourcePool, wait float64) {
	if sim.trace == nil {
		return
	}
	rec := trace.StationRecord{
		Clock:   sim.clock,
		Kind:    kind,
		OrderID: o.ID,
		Wait:    wait,
	}
	if pool != nil {
		rec.Station = pool.Name()
		rec.InUse = pool.InUse()
		rec.Capacity = pool.Capacity()
		rec.QueueLen = pool.QueueLen()
	}
	sim.trace.Record(rec)
}
