package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/linesim/linesim/sim"
)

// StationJSON is the exported state of one stage.
type StationJSON struct {
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Completed   int       `json:"completed"`
	Waits       []float64 `json:"waits"`
	InUse       int       `json:"in_use_at_end"`
	QueueLen    int       `json:"queue_len_at_end"`
	PeakQueue   int       `json:"peak_queue_len"`
	BusyTime    float64   `json:"busy_time"`
	Utilization float64   `json:"utilization"`
}

// OrderJSON is the exported record of one completed order.
type OrderJSON struct {
	ID            string    `json:"id"`
	ArrivalTime   float64   `json:"arrival_time"`
	DepartureTime float64   `json:"departure_time"`
	StageWaits    []float64 `json:"stage_waits"`
	ServiceTimes  []float64 `json:"service_times"`
}

// ResultsJSON is the file format written by WriteJSON.
type ResultsJSON struct {
	RunID          string        `json:"run_id,omitempty"`
	Seed           int64         `json:"seed"`
	TargetUnits    int64         `json:"target_units"`
	OutputUnits    int64         `json:"output_units"`
	Duration       float64       `json:"duration"`
	OrdersSpawned  int           `json:"orders_spawned"`
	OrdersComplete int           `json:"orders_completed"`
	EventsExecuted int           `json:"events_executed"`
	ArrivalTimes   []float64     `json:"arrival_times"`
	DepartureTimes []float64     `json:"departure_times"`
	Stations       []StationJSON `json:"stations"`
	Orders         []OrderJSON   `json:"orders"`
}

// NewResultsJSON flattens a run into its export form.
func NewResultsJSON(res *sim.RunResult, runID string) ResultsJSON {
	out := ResultsJSON{
		RunID:          runID,
		Seed:           int64(res.Key()),
		TargetUnits:    res.TargetUnits(),
		OutputUnits:    res.OutputUnits(),
		Duration:       res.Duration(),
		OrdersSpawned:  res.OrdersSpawned(),
		OrdersComplete: res.CompletedOrders(),
		EventsExecuted: res.EventsExecuted(),
		ArrivalTimes:   res.ArrivalTimes(),
		DepartureTimes: res.DepartureTimes(),
		Stations:       []StationJSON{},
		Orders:         []OrderJSON{},
	}
	counts := res.CompletedCounts()
	for i, st := range res.Stations() {
		out.Stations = append(out.Stations, StationJSON{
			Name:        st.Name,
			Capacity:    st.Capacity,
			Completed:   counts[i],
			Waits:       res.StageWaits(i),
			InUse:       st.InUse,
			QueueLen:    st.QueueLen,
			PeakQueue:   st.PeakQueueLen,
			BusyTime:    st.BusyTime,
			Utilization: st.Utilization(res.Duration()),
		})
	}
	for _, o := range res.Orders() {
		out.Orders = append(out.Orders, OrderJSON{
			ID:            o.ID,
			ArrivalTime:   o.ArrivalTime,
			DepartureTime: o.DepartureTime,
			StageWaits:    o.StageWaits,
			ServiceTimes:  o.ServiceTimes,
		})
	}
	return out
}

// WriteJSON encodes the run as indented JSON.
func WriteJSON(w io.Writer, res *sim.RunResult, runID string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewResultsJSON(res, runID))
}

// SaveJSON writes the run to path, replacing any existing file.
func SaveJSON(path string, res *sim.RunResult, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	if err := WriteJSON(f, res, runID); err != nil {
		f.Close()
		return fmt.Errorf("write results file: %w", err)
	}
	return f.Close()
}
