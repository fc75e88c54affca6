package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration fault reported by
// LineConfig.Validate. A run is refused before any simulator state exists.
var ErrInvalidConfig = errors.New("invalid line configuration")

// InvariantViolation is the panic value raised when the engine detects a
// logic defect: scheduling into the past, releasing an unheld station,
// popping an empty queue while work is expected. It is never returned as an
// ordinary error.
type InvariantViolation struct {
	Op     string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("sim: invariant violated in %s: %s", e.Op, e.Detail)
}

func invariantf(op, format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Op: op, Detail: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
