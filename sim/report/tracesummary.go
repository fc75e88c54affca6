package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/linesim/linesim/sim/trace"
)

// traceKinds fixes the print order of record kinds.
var traceKinds = []trace.RecordKind{
	trace.KindArrival, trace.KindRequest, trace.KindQueued,
	trace.KindGrant, trace.KindRelease, trace.KindDeparture,
}

// WriteTraceSummary renders the aggregate view of an event trace.
func WriteTraceSummary(w io.Writer, s *trace.TraceSummary) error {
	tw := &textWriter{w: w}
	tw.header("Trace Summary")
	tw.line(fmt.Sprintf("Records: %d", s.TotalRecords))
	for _, k := range traceKinds {
		if n := s.KindCounts[k]; n > 0 {
			tw.line(fmt.Sprintf("  %-10s %d", k, n))
		}
	}

	stations := make([]string, 0, len(s.PeakInUse))
	for name := range s.PeakInUse {
		stations = append(stations, name)
	}
	sort.Strings(stations)
	for _, name := range stations {
		tw.line(fmt.Sprintf("%s: peak in use %d, peak queue %d", name, s.PeakInUse[name], s.PeakQueueDepth[name]))
	}
	if s.MaxWaitOrder != "" {
		tw.line(fmt.Sprintf("Longest wait: %.2f (%s)", s.MaxWait, s.MaxWaitOrder))
	}
	return tw.err
}
