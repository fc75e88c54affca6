package sim

import "fmt"

// EventKind labels an event for logging and tracing. It never influences
// ordering: two events at the same time run in scheduling order regardless
// of kind.
type EventKind string

const (
	// EventGeneratorStart starts the order generator at t=0.
	EventGeneratorStart EventKind = "GeneratorStart"
	// EventArrival wakes the generator after an inter-arrival gap.
	EventArrival EventKind = "Arrival"
	// EventOrderStart starts a freshly spawned order's lifecycle.
	EventOrderStart EventKind = "OrderStart"
	// EventGrant resumes a queued order after a station handoff.
	EventGrant EventKind = "Grant"
	// EventServiceDone resumes an order after its service time elapsed.
	EventServiceDone EventKind = "ServiceDone"
)

// Event is a continuation scheduled to run at a virtual time.
// seq is assigned by the Simulator when the event is scheduled and is used
// only to break ties between events sharing a timestamp.
type Event struct {
	time   float64
	seq    uint64
	kind   EventKind
	owner  string // order ID or "generator"
	resume func()
}

// Timestamp returns the virtual time at which the event fires.
func (e *Event) Timestamp() float64 {
	return e.time
}

// Seq returns the tie-breaking sequence number.
func (e *Event) Seq() uint64 {
	return e.seq
}

// Kind returns the event label.
func (e *Event) Kind() EventKind {
	return e.kind
}

// Owner returns the ID of the process the event resumes.
func (e *Event) Owner() string {
	return e.owner
}

func (e *Event) String() string {
	return fmt.Sprintf("%s(%s)#%d", e.kind, e.owner, e.seq)
}
