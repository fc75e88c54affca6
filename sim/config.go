package sim

import "math"

// DefaultServiceTimeFloor is the smallest service time a stage may sample.
// Gaussian draws below it are clamped up to it.
const DefaultServiceTimeFloor = 0.1

// StageConfig describes one processing stage of the line.
type StageConfig struct {
	Name          string  `yaml:"name"`           // e.g. "Mixing Station"
	Capacity      int     `yaml:"capacity"`       // parallel slots (must be > 0)
	ServiceMean   float64 `yaml:"service_mean"`   // mean service time (must be > 0)
	ServiceStdDev float64 `yaml:"service_stddev"` // 0 = deterministic, never negative
}

// LineConfig is the immutable input of a run. It is threaded explicitly to the
// order generator and every sampler; nothing reads process-wide state.
type LineConfig struct {
	Seed             int64         `yaml:"seed"`
	TargetUnits      int64         `yaml:"target_units"`                 // cumulative output goal (must be > 0)
	UnitsPerOrder    int64         `yaml:"units_per_order"`              // output of one completed order (must be > 0)
	InterArrivalMean float64       `yaml:"interarrival_mean"`            // mean of the exponential inter-arrival gap
	ServiceTimeFloor float64       `yaml:"service_time_floor,omitempty"` // 0 = DefaultServiceTimeFloor
	Stages           []StageConfig `yaml:"stages"`
}

// NewStageConfig creates a StageConfig.
func NewStageConfig(name string, capacity int, mean, stddev float64) StageConfig {
	return StageConfig{
		Name:          name,
		Capacity:      capacity,
		ServiceMean:   mean,
		ServiceStdDev: stddev,
	}
}

// DefaultLineConfig returns the five-stage soft-drink bottling line:
// one mixing station, two filling lines, two cappers, two labelers and one
// packaging station, producing 1000 bottles per order. TargetUnits is left
// zero; callers must supply it.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		Seed:             42,
		UnitsPerOrder:    1000,
		InterArrivalMean: 15,
		ServiceTimeFloor: DefaultServiceTimeFloor,
		Stages: []StageConfig{
			NewStageConfig("Mixing Station", 1, 10, 2),
			NewStageConfig("Filling Line", 2, 8, 1),
			NewStageConfig("Capping Machine", 2, 5, 0.5),
			NewStageConfig("Labeling Machine", 2, 4, 0.5),
			NewStageConfig("Packaging Station", 1, 12, 2),
		},
	}
}

// Validate reports the first configuration fault, wrapped around
// ErrInvalidConfig. It does not mutate the config.
func (c *LineConfig) Validate() error {
	if c.TargetUnits <= 0 {
		return configErrorf("target_units must be positive, got %d", c.TargetUnits)
	}
	if c.UnitsPerOrder <= 0 {
		return configErrorf("units_per_order must be positive, got %d", c.UnitsPerOrder)
	}
	if !positiveFinite(c.InterArrivalMean) {
		return configErrorf("interarrival_mean must be positive and finite, got %v", c.InterArrivalMean)
	}
	if c.ServiceTimeFloor < 0 || math.IsNaN(c.ServiceTimeFloor) || math.IsInf(c.ServiceTimeFloor, 0) {
		return configErrorf("service_time_floor must be non-negative and finite, got %v", c.ServiceTimeFloor)
	}
	if len(c.Stages) == 0 {
		return configErrorf("at least one stage is required")
	}
	seen := make(map[string]bool, len(c.Stages))
	for i, st := range c.Stages {
		if st.Name == "" {
			return configErrorf("stage %d: name is required", i)
		}
		if seen[st.Name] {
			return configErrorf("stage %q: duplicate name", st.Name)
		}
		seen[st.Name] = true
		if st.Capacity <= 0 {
			return configErrorf("stage %q: capacity must be positive, got %d", st.Name, st.Capacity)
		}
		if !positiveFinite(st.ServiceMean) {
			return configErrorf("stage %q: service_mean must be positive and finite, got %v", st.Name, st.ServiceMean)
		}
		if st.ServiceStdDev < 0 || math.IsNaN(st.ServiceStdDev) || math.IsInf(st.ServiceStdDev, 0) {
			return configErrorf("stage %q: service_stddev must be non-negative and finite, got %v", st.Name, st.ServiceStdDev)
		}
	}
	return nil
}

// serviceFloor returns the effective service time floor.
func (c *LineConfig) serviceFloor() float64 {
	if c.ServiceTimeFloor == 0 {
		return DefaultServiceTimeFloor
	}
	return c.ServiceTimeFloor
}

// StageNames returns the stage names in traversal order.
func (c *LineConfig) StageNames() []string {
	names := make([]string, len(c.Stages))
	for i, st := range c.Stages {
		names[i] = st.Name
	}
	return names
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
