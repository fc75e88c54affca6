// Package report turns a read-only sim.RunResult into summaries, text reports,
// histograms and JSON. Nothing here mutates simulation state.
package report

import (
	"sort"

	"github.com/linesim/linesim/sim"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StageSummary aggregates one stage of a run.
type StageSummary struct {
	Name        string
	Capacity    int
	ServiceMean float64
	Processed   int
	Waits       int
	MeanWait    float64
	P50Wait     float64
	P95Wait     float64
	MaxWait     float64

	// EstimatedUtilization is processed × mean service / (capacity × duration),
	// capped at 1. It ignores sampled variation.
	EstimatedUtilization float64
	// Utilization is the exact time-weighted occupancy of the station.
	Utilization float64

	InUseAtEnd   int
	QueueAtEnd   int
	PeakQueueLen int
}

// Summary aggregates a whole run.
type Summary struct {
	Seed           int64
	TargetUnits    int64
	OutputUnits    int64
	UnitsPerOrder  int64
	OrdersArrived  int
	OrdersDeparted int
	Duration       float64
	MeanCycleTime  float64
	P95CycleTime   float64
	MaxCycleTime   float64
	Stages         []StageSummary
}

// Summarize computes the summary of a drained run.
func Summarize(res *sim.RunResult) *Summary {
	cfg := res.Config()
	s := &Summary{
		Seed:           int64(res.Key()),
		TargetUnits:    res.TargetUnits(),
		OutputUnits:    res.OutputUnits(),
		UnitsPerOrder:  cfg.UnitsPerOrder,
		OrdersArrived:  len(res.ArrivalTimes()),
		OrdersDeparted: res.CompletedOrders(),
		Duration:       res.Duration(),
	}

	cycles := CycleTimes(res.Orders())
	s.MeanCycleTime = Mean(cycles)
	s.P95CycleTime = Percentile(cycles, 95)
	s.MaxCycleTime = Max(cycles)

	processed := res.CompletedCounts()
	stations := res.Stations()
	for i, name := range res.StageNames() {
		waits := res.StageWaits(i)
		st := stations[i]
		s.Stages = append(s.Stages, StageSummary{
			Name:                 name,
			Capacity:             st.Capacity,
			ServiceMean:          cfg.Stages[i].ServiceMean,
			Processed:            processed[i],
			Waits:                len(waits),
			MeanWait:             Mean(waits),
			P50Wait:              Percentile(waits, 50),
			P95Wait:              Percentile(waits, 95),
			MaxWait:              Max(waits),
			EstimatedUtilization: EstimatedUtilization(processed[i], cfg.Stages[i].ServiceMean, st.Capacity, res.Duration()),
			Utilization:          st.Utilization(res.Duration()),
			InUseAtEnd:           st.InUse,
			QueueAtEnd:           st.QueueLen,
			PeakQueueLen:         st.PeakQueueLen,
		})
	}
	return s
}

// CycleTimes returns departure minus arrival for each completed order.
func CycleTimes(orders []sim.OrderRecord) []float64 {
	out := make([]float64, len(orders))
	for i, o := range orders {
		out[i] = o.CycleTime()
	}
	return out
}

// EstimatedUtilization applies the mean-service estimate, capped at 1.
func EstimatedUtilization(processed int, serviceMean float64, capacity int, duration float64) float64 {
	if duration <= 0 || capacity <= 0 {
		return 0
	}
	u := float64(processed) * serviceMean / (float64(capacity) * duration)
	if u > 1 {
		return 1
	}
	return u
}

// Mean returns the arithmetic mean, or 0 for no data.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// Percentile returns the p-th percentile (0..100) using the empirical CDF,
// or 0 for no data.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	return stat.Quantile(p/100, stat.Empirical, sorted, nil)
}

// Max returns the largest value, or 0 for no data.
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return floats.Max(data)
}

// MeanStdDev returns the mean and sample standard deviation. The deviation
// is 0 when there are fewer than two values.
func MeanStdDev(data []float64) (float64, float64) {
	switch len(data) {
	case 0:
		return 0, 0
	case 1:
		return data[0], 0
	}
	return stat.MeanStdDev(data, nil)
}
