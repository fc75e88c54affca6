package report

import (
	"fmt"
	"io"

	"github.com/linesim/linesim/sim"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MeanStd is a mean with its sample standard deviation across runs.
type MeanStd struct {
	Mean   float64
	StdDev float64
}

// ReplicationSummary aggregates independent runs of the same line.
type ReplicationSummary struct {
	Runs        int
	Seeds       []int64
	Duration    MeanStd
	OutputUnits MeanStd
	CycleTime   MeanStd
	StageNames  []string
	StageWait   []MeanStd // per stage, mean of each run's mean wait
	Utilization []MeanStd // per stage, measured utilization
}

// SummarizeReplications aggregates runs, which must share one stage layout.
// Returns nil for no runs.
func SummarizeReplications(results []*sim.RunResult) *ReplicationSummary {
	if len(results) == 0 {
		return nil
	}
	names := results[0].StageNames()
	rs := &ReplicationSummary{
		Runs:        len(results),
		StageNames:  names,
		StageWait:   make([]MeanStd, len(names)),
		Utilization: make([]MeanStd, len(names)),
	}

	var durations, outputs, cycles []float64
	waits := make([][]float64, len(names))
	utils := make([][]float64, len(names))
	for _, res := range results {
		rs.Seeds = append(rs.Seeds, int64(res.Key()))
		durations = append(durations, res.Duration())
		outputs = append(outputs, float64(res.OutputUnits()))
		cycles = append(cycles, Mean(CycleTimes(res.Orders())))
		for i, st := range res.Stations() {
			waits[i] = append(waits[i], Mean(res.StageWaits(i)))
			utils[i] = append(utils[i], st.Utilization(res.Duration()))
		}
	}

	rs.Duration = meanStd(durations)
	rs.OutputUnits = meanStd(outputs)
	rs.CycleTime = meanStd(cycles)
	for i := range names {
		rs.StageWait[i] = meanStd(waits[i])
		rs.Utilization[i] = meanStd(utils[i])
	}
	return rs
}

func meanStd(data []float64) MeanStd {
	m, s := MeanStdDev(data)
	return MeanStd{Mean: m, StdDev: s}
}

// WriteReplicationText renders a replication summary.
func WriteReplicationText(w io.Writer, rs *ReplicationSummary, opts TextOptions) error {
	if rs == nil {
		return fmt.Errorf("no replications to report")
	}
	p := message.NewPrinter(language.English)
	tw := &textWriter{w: w}
	tu := opts.timeUnit()

	tw.header(p.Sprintf("Replications (%d runs)", rs.Runs))
	tw.line(p.Sprintf("Simulation time: %.2f ± %.2f %s", rs.Duration.Mean, rs.Duration.StdDev, tu))
	tw.line(p.Sprintf("Output %s:   %.0f ± %.0f", opts.unit(), rs.OutputUnits.Mean, rs.OutputUnits.StdDev))
	tw.line(p.Sprintf("Cycle time:      %.2f ± %.2f %s", rs.CycleTime.Mean, rs.CycleTime.StdDev, tu))
	for i, name := range rs.StageNames {
		tw.line(p.Sprintf("%s: wait %.2f ± %.2f %s, utilization %.2f%% ± %.2f%%", name,
			rs.StageWait[i].Mean, rs.StageWait[i].StdDev, tu,
			rs.Utilization[i].Mean*100, rs.Utilization[i].StdDev*100))
	}
	if opts.WallClock > 0 {
		tw.line(fmt.Sprintf("Wall-clock time: %s", opts.WallClock))
	}
	return tw.err
}
