package sim

import "github.com/sirupsen/logrus"

// scheduler is the slice of the Simulator a ResourcePool needs: the current
// virtual time and the ability to hand a granted waiter back as an event.
type scheduler interface {
	Now() float64
	Schedule(at float64, kind EventKind, owner string, resume func())
}

// ResourcePool is a capacity-limited station (e.g. "Filling Line", capacity 2)
// with a FIFO waiting queue. Its counters are mutated only from continuations
// run by the single scheduler loop, so it carries no locks.
type ResourcePool struct {
	name     string
	capacity int
	inUse    int
	waitQ    WaitQueue
	sched    scheduler

	// time-weighted occupancy
	busyArea   float64
	lastChange float64

	grants       int
	peakQueueLen int
}

// NewResourcePool creates a station. capacity must be positive; config
// validation guarantees this for pools built by the Simulator.
func NewResourcePool(name string, capacity int, sched scheduler) *ResourcePool {
	if capacity <= 0 {
		panic(invariantf("new resource pool", "%s: capacity must be positive, got %d", name, capacity))
	}
	return &ResourcePool{
		name:       name,
		capacity:   capacity,
		sched:      sched,
		lastChange: sched.Now(),
	}
}

// Request asks for one slot at time at. It returns true when the slot is
// granted immediately; the caller continues without suspending. Otherwise the
// caller is queued and resume runs later, at the virtual time of the release
// that hands it the slot.
func (p *ResourcePool) Request(at float64, owner string, resume func()) bool {
	if p.inUse < p.capacity {
		p.accrue()
		p.inUse++
		p.grants++
		return true
	}
	p.waitQ.Enqueue(&waiter{owner: owner, requestedAt: at, resume: resume})
	if n := p.waitQ.Len(); n > p.peakQueueLen {
		p.peakQueueLen = n
	}
	logrus.Debugf("[t=%10.2f] %s queued at %s (queue=%d)", p.sched.Now(), owner, p.name, p.waitQ.Len())
	return false
}

// Release frees one slot. If a waiter is queued, the slot passes straight to
// the head of the queue and its continuation is scheduled at the current
// time: the handoff is instantaneous, so occupancy never dips.
func (p *ResourcePool) Release() {
	if p.inUse == 0 {
		panic(invariantf("release", "%s: released with no slot held", p.name))
	}
	p.accrue()
	p.inUse--
	if head := p.waitQ.Dequeue(); head != nil {
		p.inUse++
		p.grants++
		p.sched.Schedule(p.sched.Now(), EventGrant, head.owner, head.resume)
	}
}

func (p *ResourcePool) accrue() {
	now := p.sched.Now()
	p.busyArea += float64(p.inUse) * (now - p.lastChange)
	p.lastChange = now
}

// Name returns the station name.
func (p *ResourcePool) Name() string { return p.name }

// Capacity returns the number of parallel slots.
func (p *ResourcePool) Capacity() int { return p.capacity }

// InUse returns the number of slots currently held.
func (p *ResourcePool) InUse() int { return p.inUse }

// QueueLen returns the number of processes waiting for a slot.
func (p *ResourcePool) QueueLen() int { return p.waitQ.Len() }

// PeakQueueLen returns the longest queue observed.
func (p *ResourcePool) PeakQueueLen() int { return p.peakQueueLen }

// Grants returns how many slots have been handed out, immediate or queued.
func (p *ResourcePool) Grants() int { return p.grants }

// BusyTime returns the integral of in-use slots over [0, now]: slot-time
// units actually spent serving.
func (p *ResourcePool) BusyTime(now float64) float64 {
	return p.busyArea + float64(p.inUse)*(now-p.lastChange)
}

// Snapshot returns a read-only view of the station at time now.
func (p *ResourcePool) Snapshot(now float64) StationSnapshot {
	return StationSnapshot{
		Name:         p.name,
		Capacity:     p.capacity,
		InUse:        p.inUse,
		QueueLen:     p.waitQ.Len(),
		PeakQueueLen: p.peakQueueLen,
		Grants:       p.grants,
		BusyTime:     p.BusyTime(now),
	}
}

// StationSnapshot is the read-only state of a station.
type StationSnapshot struct {
	Name         string
	Capacity     int
	InUse        int
	QueueLen     int
	PeakQueueLen int
	Grants       int
	BusyTime     float64
}

// Utilization returns BusyTime as a fraction of capacity × duration,
// or 0 for an empty run.
func (s StationSnapshot) Utilization(duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return s.BusyTime / (float64(s.Capacity) * duration)
}
