package sim

import (
	"math"
	"math/rand"
)

// minInterArrival keeps inter-arrival gaps strictly positive.
const minInterArrival = 1e-9

// ServiceSampler draws a stage's service time.
type ServiceSampler interface {
	// Sample returns a strictly positive duration.
	Sample(rng *rand.Rand) float64
}

// ArrivalSampler generates inter-arrival gaps for the order generator.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time. Always > 0.
	SampleIAT(rng *rand.Rand) float64
}

// GaussianServiceSampler produces normally distributed service times clamped
// to a positive floor.
type GaussianServiceSampler struct {
	mean, stdDev float64
	floor        float64
}

// NewGaussianServiceSampler creates a sampler. A non-positive floor falls back
// to DefaultServiceTimeFloor.
func NewGaussianServiceSampler(mean, stdDev, floor float64) *GaussianServiceSampler {
	if floor <= 0 {
		floor = DefaultServiceTimeFloor
	}
	return &GaussianServiceSampler{mean: mean, stdDev: stdDev, floor: floor}
}

func (s *GaussianServiceSampler) Sample(rng *rand.Rand) float64 {
	val := rng.NormFloat64()*s.stdDev + s.mean
	if math.IsNaN(val) || val < s.floor {
		return s.floor
	}
	return val
}

// ExponentialArrivalSampler generates exponentially distributed gaps
// (a Poisson arrival process).
type ExponentialArrivalSampler struct {
	mean float64
}

// NewExponentialArrivalSampler creates a sampler with the given mean gap.
func NewExponentialArrivalSampler(mean float64) *ExponentialArrivalSampler {
	return &ExponentialArrivalSampler{mean: mean}
}

func (s *ExponentialArrivalSampler) SampleIAT(rng *rand.Rand) float64 {
	iat := rng.ExpFloat64() * s.mean
	if math.IsNaN(iat) || iat < minInterArrival {
		return minInterArrival
	}
	return iat
}
