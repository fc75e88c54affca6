package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	accent = lipgloss.Color("#5FAFFF")
	muted  = lipgloss.Color("#808080")
	warn   = lipgloss.Color("#FFAF00")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	warnStyle   = lipgloss.NewStyle().Foreground(warn)
	barStyle    = lipgloss.NewStyle().Foreground(accent)
)

// TextOptions controls text rendering.
type TextOptions struct {
	UnitLabel string        // "units" when empty
	TimeUnit  string        // "min" when empty
	WallClock time.Duration // omitted when zero
}

func (o TextOptions) unit() string {
	if o.UnitLabel == "" {
		return "units"
	}
	return o.UnitLabel
}

func (o TextOptions) timeUnit() string {
	if o.TimeUnit == "" {
		return "min"
	}
	return o.TimeUnit
}

// WriteText renders the end-of-run report.
func WriteText(w io.Writer, s *Summary, opts TextOptions) error {
	p := message.NewPrinter(language.English)
	tw := &textWriter{w: w}
	u, tu := opts.unit(), opts.timeUnit()

	tw.header("Simulation Ended")
	tw.line(p.Sprintf("Target %s:           %d", u, s.TargetUnits))
	tw.line(p.Sprintf("Actual %s produced:  %d (from %d completed orders)", u, s.OutputUnits, s.OrdersDeparted))
	if s.OutputUnits < s.TargetUnits {
		tw.styled(warnStyle, "Target not reached.")
	}
	tw.line(p.Sprintf("Total simulation time:  %.2f %s", s.Duration, tu))
	if opts.WallClock > 0 {
		tw.line(fmt.Sprintf("Wall-clock time:        %s", opts.WallClock.Round(time.Millisecond)))
	}

	tw.header("Order Summary")
	tw.line(p.Sprintf("Orders arrived:   %d", s.OrdersArrived))
	tw.line(p.Sprintf("Orders completed: %d", s.OrdersDeparted))
	for _, st := range s.Stages {
		tw.line(p.Sprintf("Orders processed by %s: %d", st.Name, st.Processed))
	}

	tw.header("Wait Time Statistics")
	for _, st := range s.Stages {
		if st.Waits == 0 {
			tw.styled(mutedStyle, fmt.Sprintf("No orders recorded waiting for %s.", st.Name))
			continue
		}
		tw.line(p.Sprintf("Average wait for %s: %.2f %s (p50 %.2f, p95 %.2f, max %.2f)",
			st.Name, st.MeanWait, tu, st.P50Wait, st.P95Wait, st.MaxWait))
	}

	tw.header("System Performance")
	if s.OrdersDeparted == 0 {
		tw.styled(mutedStyle, "No orders completed; cycle time unavailable.")
	} else {
		tw.line(p.Sprintf("Average cycle time: %.2f %s (p95 %.2f, max %.2f)",
			s.MeanCycleTime, tu, s.P95CycleTime, s.MaxCycleTime))
	}

	tw.header("Resource Utilization")
	for _, st := range s.Stages {
		tw.line(p.Sprintf("%s: estimated %.2f%%, measured %.2f%% (capacity %d)",
			st.Name, st.EstimatedUtilization*100, st.Utilization*100, st.Capacity))
	}

	tw.header("Resource State at End")
	for _, st := range s.Stages {
		tw.line(p.Sprintf("%s: %d/%d in use, %d queued (peak queue %d)",
			st.Name, st.InUseAtEnd, st.Capacity, st.QueueAtEnd, st.PeakQueueLen))
	}
	return tw.err
}

// textWriter keeps the first write error so callers check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}

func (t *textWriter) styled(style lipgloss.Style, s string) {
	t.line(style.Render(s))
}

func (t *textWriter) header(title string) {
	t.line("")
	t.styled(headerStyle, "--- "+title+" ---")
}
