package stress

import (
	"strconv"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
)

// Metrics collects latencies in microseconds. Runs are sequential, so it
// is not safe for concurrent use.
type Metrics struct {
	histogram *hdrhistogram.Histogram
	total     int64
	errors    int64
	lastError error
	startTime time.Time
	endTime   time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		// 1us to 60s range, 3 significant digits
		histogram: hdrhistogram.New(minLatencyUs, maxLatencyUs, 3),
	}
}

func (m *Metrics) Start() {
	m.startTime = time.Now()
}

func (m *Metrics) Stop() {
	m.endTime = time.Now()
}

// Record records one call. Failed calls count toward the error rate and
// their latency is still recorded.
func (m *Metrics) Record(duration time.Duration, err error) {
	m.total++
	if err != nil {
		m.errors++
		m.lastError = err
	}

	latencyUs := duration.Microseconds()
	if latencyUs < minLatencyUs {
		latencyUs = minLatencyUs
	}
	if latencyUs > maxLatencyUs {
		latencyUs = maxLatencyUs
	}
	_ = m.histogram.RecordValue(latencyUs)
}

// Summary is the final report of a run
type Summary struct {
	Duration      time.Duration
	TotalRequests int64
	SuccessCount  int64
	ErrorCount    int64
	LastError     error

	RPS       float64
	ErrorRate float64

	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
}

func us(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}

func (m *Metrics) GetSummary() *Summary {
	duration := m.endTime.Sub(m.startTime)
	if m.endTime.IsZero() {
		duration = time.Since(m.startTime)
	}

	s := &Summary{
		Duration:      duration,
		TotalRequests: m.total,
		SuccessCount:  m.total - m.errors,
		ErrorCount:    m.errors,
		LastError:     m.lastError,
		P50:           us(m.histogram.ValueAtQuantile(50)),
		P95:           us(m.histogram.ValueAtQuantile(95)),
		P99:           us(m.histogram.ValueAtQuantile(99)),
		Min:           us(m.histogram.Min()),
		Max:           us(m.histogram.Max()),
		Mean:          time.Duration(m.histogram.Mean() * float64(time.Microsecond)),
		StdDev:        time.Duration(m.histogram.StdDev() * float64(time.Microsecond)),
	}
	if duration > 0 {
		s.RPS = float64(m.total) / duration.Seconds()
	}
	if m.total > 0 {
		s.ErrorRate = float64(m.errors) / float64(m.total)
	}
	return s
}

// Evaluate checks the summary against t, returning one result per
// configured threshold. A value equal to its limit passes.
func (s *Summary) Evaluate(t Thresholds) []ThresholdResult {
	var results []ThresholdResult
	latency := func(name string, limit, actual time.Duration) {
		if limit > 0 {
			results = append(results, ThresholdResult{
				Name:     name,
				Passed:   actual <= limit,
				Expected: "<= " + limit.String(),
				Actual:   actual.String(),
			})
		}
	}

	latency("p50", t.P50, s.P50)
	latency("p95", t.P95, s.P95)
	latency("p99", t.P99, s.P99)
	latency("max latency", t.MaxLatency, s.Max)

	if t.HasErrorRate() {
		results = append(results, ThresholdResult{
			Name:     "error rate",
			Passed:   s.ErrorRate <= t.ErrorRate,
			Expected: "<= " + formatPercent(t.ErrorRate),
			Actual:   formatPercent(s.ErrorRate),
		})
	}
	return results
}

func formatPercent(f float64) string {
	return formatFloat(f*100) + "%"
}

func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return strconv.Itoa(int(f))
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
