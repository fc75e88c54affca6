package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalRecords   int
	KindCounts     map[RecordKind]int
	PeakQueueDepth map[string]int // station → longest queue seen
	PeakInUse      map[string]int // station → most slots held at once
	MaxWait        float64
	MaxWaitOrder   string
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindCounts:     make(map[RecordKind]int),
		PeakQueueDepth: make(map[string]int),
		PeakInUse:      make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalRecords = len(st.Records)
	for _, r := range st.Records {
		summary.KindCounts[r.Kind]++
		if r.Station == "" {
			continue
		}
		if r.QueueLen > summary.PeakQueueDepth[r.Station] {
			summary.PeakQueueDepth[r.Station] = r.QueueLen
		}
		if r.InUse > summary.PeakInUse[r.Station] {
			summary.PeakInUse[r.Station] = r.InUse
		}
		if r.Kind == KindGrant && r.Wait > summary.MaxWait {
			summary.MaxWait = r.Wait
			summary.MaxWaitOrder = r.OrderID
		}
	}
	return summary
}
