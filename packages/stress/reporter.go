package stress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Reporter prints benchmark output
type Reporter struct {
	writer  io.Writer
	noColor bool

	green *color.Color
	red   *color.Color
	cyan  *color.Color
	bold  *color.Color
	dim   *color.Color
}

type ReporterOption func(*Reporter)

func WithWriter(w io.Writer) ReporterOption {
	return func(r *Reporter) {
		r.writer = w
	}
}

func WithNoColor(noColor bool) ReporterOption {
	return func(r *Reporter) {
		r.noColor = noColor
	}
}

func NewReporter(opts ...ReporterOption) *Reporter {
	r := &Reporter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.green = color.New(color.FgGreen)
	r.red = color.New(color.FgRed)
	r.cyan = color.New(color.FgCyan)
	r.bold = color.New(color.Bold)
	r.dim = color.New(color.Faint)
	if r.noColor {
		for _, c := range []*color.Color{r.green, r.red, r.cyan, r.bold, r.dim} {
			c.DisableColor()
		}
	}
	return r
}

// Header prints the target and run parameters
func (r *Reporter) Header(method, url string, cfg *Config) {
	r.cyan.Fprintf(r.writer, "Benchmarking %s %s\n", method, url)

	var details []string
	if cfg.Requests > 0 {
		details = append(details, fmt.Sprintf("Requests: %d", cfg.Requests))
	}
	if cfg.Duration > 0 {
		details = append(details, fmt.Sprintf("Duration: %s", cfg.Duration))
	}
	if cfg.Rate > 0 {
		details = append(details, fmt.Sprintf("Rate: %s req/s", formatFloat(cfg.Rate)))
	} else {
		details = append(details, "Rate: unpaced")
	}
	r.dim.Fprintf(r.writer, "%s\n\n", strings.Join(details, " | "))
}

// Summary prints the final statistics and threshold results. It returns
// false when any threshold failed.
func (r *Reporter) Summary(s *Summary, thresholds Thresholds) bool {
	r.bold.Fprintln(r.writer, "Summary")
	fmt.Fprintf(r.writer, "  Requests:  %d (%s ok, %s failed)\n",
		s.TotalRequests,
		r.green.Sprint(s.SuccessCount),
		r.errorCount(s.ErrorCount))
	fmt.Fprintf(r.writer, "  Duration:  %s\n", s.Duration.Round(1e6))
	fmt.Fprintf(r.writer, "  Rate:      %s req/s\n", formatFloat(s.RPS))
	fmt.Fprintf(r.writer, "  Latency:   min %s | p50 %s | p95 %s | p99 %s | max %s\n",
		s.Min, s.P50, s.P95, s.P99, s.Max)
	fmt.Fprintf(r.writer, "  Mean:      %s (stddev %s)\n", s.Mean.Round(1e3), s.StdDev.Round(1e3))
	if s.LastError != nil {
		fmt.Fprintf(r.writer, "  Last error: %s\n", r.red.Sprint(s.LastError))
	}

	if !thresholds.HasThresholds() {
		return true
	}

	passed := true
	fmt.Fprintln(r.writer)
	r.bold.Fprintln(r.writer, "Thresholds")
	for _, res := range s.Evaluate(thresholds) {
		mark := r.green.Sprint("✓")
		if !res.Passed {
			mark = r.red.Sprint("✗")
			passed = false
		}
		fmt.Fprintf(r.writer, "  %s %s %s (actual %s)\n", mark, res.Name, res.Expected, res.Actual)
	}
	return passed
}

func (r *Reporter) errorCount(n int64) string {
	if n == 0 {
		return r.dim.Sprint(n)
	}
	return r.red.Sprint(n)
}
