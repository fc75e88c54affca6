package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalRecords != 0 || len(summary.KindCounts) != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace where Order-2 queues behind Order-1 at a single mixer
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.Record(StationRecord{Clock: 0, Kind: KindArrival, OrderID: "Order-1"})
	st.Record(StationRecord{Clock: 0, Kind: KindGrant, OrderID: "Order-1", Station: "Mixing", InUse: 1, Capacity: 1})
	st.Record(StationRecord{Clock: 5, Kind: KindArrival, OrderID: "Order-2"})
	st.Record(StationRecord{Clock: 5, Kind: KindQueued, OrderID: "Order-2", Station: "Mixing", InUse: 1, Capacity: 1, QueueLen: 1})
	st.Record(StationRecord{Clock: 10, Kind: KindRelease, OrderID: "Order-1", Station: "Mixing", InUse: 1, Capacity: 1})
	st.Record(StationRecord{Clock: 10, Kind: KindGrant, OrderID: "Order-2", Station: "Mixing", Wait: 5, InUse: 1, Capacity: 1})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts, peaks and the longest wait are reported
	if summary.TotalRecords != 6 {
		t.Errorf("expected 6 records, got %d", summary.TotalRecords)
	}
	if summary.KindCounts[KindGrant] != 2 || summary.KindCounts[KindArrival] != 2 {
		t.Errorf("unexpected kind counts %v", summary.KindCounts)
	}
	if summary.PeakQueueDepth["Mixing"] != 1 {
		t.Errorf("expected peak queue 1, got %d", summary.PeakQueueDepth["Mixing"])
	}
	if summary.PeakInUse["Mixing"] != 1 {
		t.Errorf("expected peak in-use 1, got %d", summary.PeakInUse["Mixing"])
	}
	if summary.MaxWait != 5 || summary.MaxWaitOrder != "Order-2" {
		t.Errorf("expected max wait 5 by Order-2, got %v by %q", summary.MaxWait, summary.MaxWaitOrder)
	}
}
