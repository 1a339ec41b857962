package clean

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// RunMetrics accumulates fill counters for one pipeline invocation. It is
// an explicit value returned by the pipeline rather than process-wide
// state, so repeated or concurrent runs never share counters. The adds
// are atomic because columns may be interpolated in parallel.
type RunMetrics struct {
	runID        string
	totalRows    int
	interpolated atomic.Int64
	fallback     atomic.Int64
	elapsed      time.Duration
}

// NewRunMetrics returns zeroed metrics stamped with a fresh run ID.
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{runID: uuid.NewString()}
}

func (m *RunMetrics) addInterpolated(n int) { m.interpolated.Add(int64(n)) }
func (m *RunMetrics) addFallback(n int)     { m.fallback.Add(int64(n)) }

// Metrics is the read-only snapshot of a completed run.
type Metrics struct {
	RunID        string        `json:"run_id"`
	TotalRows    int           `json:"total_rows"`
	Interpolated int           `json:"interpolated_values"`
	Fallback     int           `json:"fallback_values"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Snapshot freezes the current counter values.
func (m *RunMetrics) Snapshot() Metrics {
	return Metrics{
		RunID:        m.runID,
		TotalRows:    m.totalRows,
		Interpolated: int(m.interpolated.Load()),
		Fallback:     int(m.fallback.Load()),
		Elapsed:      m.elapsed,
	}
}

// Filled returns the total number of cells replaced during the run.
func (m Metrics) Filled() int { return m.Interpolated + m.Fallback }

// InterpolationRatio returns the share of filled cells produced by
// two-sided interpolation rather than a fallback, in [0,1].
func (m Metrics) InterpolationRatio() float64 {
	if m.Filled() == 0 {
		return 0
	}
	return float64(m.Interpolated) / float64(m.Filled())
}
