package trace

// TraceLevel controls the verbosity of station tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every arrival, request, grant, release and departure.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether records should be collected.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelEvents
}

// SimulationTrace collects station records during a run, in execution order.
type SimulationTrace struct {
	Config  TraceConfig
	Records []StationRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:  config,
		Records: make([]StationRecord, 0),
	}
}

// Record appends a station record.
func (st *SimulationTrace) Record(record StationRecord) {
	st.Records = append(st.Records, record)
}

// ForOrder returns the records of one order, in execution order.
func (st *SimulationTrace) ForOrder(orderID string) []StationRecord {
	var out []StationRecord
	for _, r := range st.Records {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out
}
