package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

const generatorOwner = "generator"

// OrderGenerator is the single long-lived arrival process. Each iteration it
// compares cumulative output against the target, sleeps for an exponential
// gap and spawns an order. The comparison happens at the top of the loop and
// again on waking, so no order is spawned once the target has been met while
// the generator slept. Orders already spawned always run to completion: the
// run drains rather than stopping hard. The generator produces no output.
type OrderGenerator struct {
	sim       *Simulator
	arrivals  ArrivalSampler
	rng       *rand.Rand
	target    int64
	stopped   bool
	stoppedAt float64
}

func newOrderGenerator(sim *Simulator, arrivals ArrivalSampler, rng *rand.Rand, target int64) *OrderGenerator {
	return &OrderGenerator{
		sim:      sim,
		arrivals: arrivals,
		rng:      rng,
		target:   target,
	}
}

// step is the top of the generator loop.
func (g *OrderGenerator) step() {
	if g.targetReached() {
		return
	}
	gap := g.arrivals.SampleIAT(g.rng)
	g.sim.After(gap, EventArrival, generatorOwner, g.arrive)
}

// arrive runs when the inter-arrival gap elapses.
func (g *OrderGenerator) arrive() {
	if g.targetReached() {
		return
	}
	g.sim.spawnOrder(g.sim.clock)
	g.step()
}

func (g *OrderGenerator) targetReached() bool {
	produced := g.sim.stats.OutputUnits()
	if produced < g.target {
		return false
	}
	g.stopped = true
	g.stoppedAt = g.sim.clock
	logrus.Infof("[t=%10.2f] Generator stopping: %d/%d units produced, %d orders spawned",
		g.sim.clock, produced, g.target, g.sim.spawned)
	return true
}

// Stopped reports whether the generator has exited its loop, and when.
func (g *OrderGenerator) Stopped() (bool, float64) {
	return g.stopped, g.stoppedAt
}
