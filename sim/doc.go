// Package sim provides the discrete-event simulation engine for linesim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go, event_queue.go: events and the (time, seq) ordered queue
//   - simulator.go: the virtual clock, Schedule/After and the Run loop
//   - resource.go: capacity-limited stations with FIFO hand-off
//   - order.go: the order lifecycle state machine (request → wait → serve → release)
//   - generator.go: the arrival process that spawns orders until the target is met
//   - metrics.go, result.go: the statistics collector and the read-only RunResult
//
// # Execution Model
//
// The engine is single-threaded and cooperative. A process (an order, or the
// generator) suspends only in two ways: on a timer, by scheduling its
// continuation with After, or on a station, by leaving its continuation in the
// station's wait queue. Both end up as Events; among events at the same time,
// scheduling order decides, which makes a run fully reproducible from its seed.
//
// Logic defects (scheduling into the past, releasing an unheld station)
// panic with *InvariantViolation. Configuration faults are returned as errors
// wrapping ErrInvalidConfig before any state is created.
//
// Sub-packages:
//   - sim/trace/: optional per-step station trace
//   - sim/report/: summaries, text report, histograms and JSON export built on RunResult
package sim
