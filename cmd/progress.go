package cmd

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/linesim/linesim/sim"
)

// newProgressBar tracks output units against the production target.
func newProgressBar(w io.Writer, target int64, unit string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(target,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Producing "+unit),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// progressHook advances bar by the output of each completed order. Orders
// still in flight when the target is reached push the count past the max;
// the bar ignores the overflow.
func progressHook(bar *progressbar.ProgressBar) func(sim.OrderRecord) {
	return func(rec sim.OrderRecord) {
		_ = bar.Add64(rec.OutputUnits)
	}
}
