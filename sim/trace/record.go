// Package trace provides event-trace recording for production line runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// RecordKind identifies what happened to an order.
type RecordKind string

const (
	KindArrival   RecordKind = "arrival"
	KindRequest   RecordKind = "request"
	KindQueued    RecordKind = "queued"
	KindGrant     RecordKind = "grant"
	KindRelease   RecordKind = "release"
	KindDeparture RecordKind = "departure"
)

// StationRecord captures one lifecycle step of an order. Station is empty for
// arrivals and departures. InUse and QueueLen are the station's occupancy
// right after the step.
type StationRecord struct {
	Clock    float64
	Kind     RecordKind
	OrderID  string
	Station  string
	Wait     float64 // set on grants only
	InUse    int
	Capacity int
	QueueLen int
}
