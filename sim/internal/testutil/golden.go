// Package testutil provides shared test infrastructure for the line simulator.
// It holds the golden dataset types and assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenStage is one station of a golden line. Service times are
// deterministic so expected outcomes can be worked out by hand.
type GoldenStage struct {
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	ServiceTime float64 `json:"service_time"`
}

// GoldenTestCase represents a single scenario from the golden dataset:
// a line fed with orders at fixed arrival times.
type GoldenTestCase struct {
	Name     string        `json:"name"`
	Stages   []GoldenStage `json:"stages"`
	Arrivals []float64     `json:"arrivals"`
	Metrics  GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected outcome of a golden scenario.
type GoldenMetrics struct {
	Duration       float64     `json:"duration"`
	DepartureTimes []float64   `json:"departure_times"`
	StageWaits     [][]float64 `json:"stage_waits"` // per stage, in grant order
	MeanCycleTime  float64     `json:"mean_cycle_time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertFloat64SliceEqual compares two slices element-wise with AssertFloat64Equal.
func AssertFloat64SliceEqual(t *testing.T, name string, want, got []float64, relTol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %d values %v, want %d values %v", name, len(got), got, len(want), want)
		return
	}
	for i := range want {
		AssertFloat64Equal(t, name, want[i], got[i], relTol)
	}
}
