package clean

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Options controls pipeline behavior.
type Options struct {
	// MissingTokens overrides the recognized missing-value tokens.
	// Empty means DefaultMissingTokens.
	MissingTokens []string
	// HeaderKeywords drives the default header locator. Empty means
	// DefaultHeaderKeywords.
	HeaderKeywords []string
	// HeaderScanDepth bounds how many leading rows are scanned for a
	// header.
	HeaderScanDepth int
	// DefaultDataStart is the first data row when no header keyword
	// matches.
	DefaultDataStart int
	// SampleSize caps the rows profiled per column; interpolation always
	// covers the full table. 0 means unlimited.
	SampleSize int
	// RoundDigits for interpolated values.
	RoundDigits int
	// Workers >1 profiles and interpolates columns in parallel.
	Workers int
	// Locator replaces the keyword strategy entirely when set.
	Locator HeaderLocator
}

// DefaultOptions returns the settings used by the CLI when nothing is
// configured.
func DefaultOptions() Options {
	return Options{
		HeaderScanDepth:  10,
		DefaultDataStart: 5,
		SampleSize:       30000,
		RoundDigits:      3,
		Workers:          1,
	}
}

// Pipeline orchestrates profiling and interpolation across all columns of
// one in-memory table. It owns the table for the duration of Run and
// rewrites data cells in place.
type Pipeline struct {
	opts   Options
	cls    Classifier
	interp Interpolator
	locate HeaderLocator
	logger *zap.Logger
}

// NewPipeline builds a Pipeline. A nil logger is replaced with a no-op
// logger.
func NewPipeline(opts Options, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	cls := NewClassifier(opts.MissingTokens)
	locate := opts.Locator
	if locate == nil {
		keywords := opts.HeaderKeywords
		if len(keywords) == 0 {
			keywords = DefaultHeaderKeywords()
		}
		locate = KeywordHeaderLocator(keywords, opts.HeaderScanDepth, opts.DefaultDataStart)
	}
	return &Pipeline{
		opts:   opts,
		cls:    cls,
		interp: NewInterpolator(cls, opts.RoundDigits),
		locate: locate,
		logger: logger,
	}
}

// Result is the outcome of one successful run. Table aliases the input
// slice with data cells rewritten; rows before DataStart are untouched.
type Result struct {
	Table     [][]string
	Header    []string
	DataStart int
	Stats     map[int]ColumnStats
	Metrics   Metrics
}

// Run profiles every column on a bounded sample, then interpolates every
// numeric column over the full data rows. Only structural problems are
// errors; per-cell and per-column anomalies are absorbed into stats and
// counters.
func (p *Pipeline) Run(rows [][]string) (*Result, error) {
	return p.run(rows, true)
}

// ProfileTable runs the profiling phase only, leaving the table
// untouched.
func (p *Pipeline) ProfileTable(rows [][]string) (*Result, error) {
	return p.run(rows, false)
}

func (p *Pipeline) run(rows [][]string, interpolate bool) (*Result, error) {
	start := time.Now()

	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}

	header, dataStart := p.locate(rows)
	if len(header) == 0 {
		return nil, errors.New("could not locate a header row with any columns")
	}
	if dataStart > len(rows) {
		dataStart = len(rows)
	}
	data := rows[dataStart:]
	ncol := len(header)

	p.logger.Info("pipeline start",
		zap.Int("rows", len(rows)),
		zap.Int("columns", ncol),
		zap.Int("data_start", dataStart))

	metrics := NewRunMetrics()
	metrics.totalRows = len(rows)

	// Phase 1: profile all columns before any interpolation begins.
	stats := make([]ColumnStats, ncol)
	p.eachColumn(ncol, func(col int) {
		stats[col] = p.profileColumn(data, col)
		stats[col].Name = columnName(header, col)
	})

	numeric := 0
	for _, s := range stats {
		if s.IsNumeric {
			numeric++
		}
	}
	p.logger.Info("profiling complete", zap.Int("numeric_columns", numeric))

	// Phase 2: interpolate numeric columns over the full data rows.
	if interpolate {
		p.eachColumn(ncol, func(col int) {
			if !stats[col].IsNumeric {
				return
			}
			values := make([]string, len(data))
			for i, row := range data {
				if col < len(row) {
					values[i] = row[col]
				}
			}
			filled := p.interp.Interpolate(values, stats[col], metrics)
			for i, row := range data {
				if col < len(row) {
					row[col] = filled[i]
				}
			}
			p.logger.Debug("column interpolated",
				zap.Int("column", col),
				zap.String("name", stats[col].Name),
				zap.Float64("missing_ratio", stats[col].MissingRatio()))
		})
	}

	metrics.elapsed = time.Since(start)

	statsByCol := make(map[int]ColumnStats, ncol)
	for col, s := range stats {
		statsByCol[col] = s
	}

	snap := metrics.Snapshot()
	p.logger.Info("pipeline complete",
		zap.Int("interpolated", snap.Interpolated),
		zap.Int("fallback", snap.Fallback),
		zap.Duration("elapsed", snap.Elapsed))

	return &Result{
		Table:     rows,
		Header:    header,
		DataStart: dataStart,
		Stats:     statsByCol,
		Metrics:   snap,
	}, nil
}

// profileColumn gathers a bounded prefix sample of one column. Cells past
// the end of a short row are skipped during sampling, matching the
// profiler's view of the data to what was actually present.
func (p *Pipeline) profileColumn(data [][]string, col int) ColumnStats {
	limit := p.opts.SampleSize
	if limit <= 0 {
		limit = len(data)
	}
	values := make([]string, 0, min(limit, len(data)))
	for _, row := range data {
		if len(values) >= limit {
			break
		}
		if col < len(row) {
			values = append(values, row[col])
		}
	}
	return p.cls.Profile(values)
}

// eachColumn runs fn for every column index, either sequentially or on a
// bounded worker pool. Callers must touch only their own column.
func (p *Pipeline) eachColumn(n int, fn func(col int)) {
	workers := p.opts.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for col := 0; col < n; col++ {
			fn(col)
		}
		return
	}
	cols := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for col := range cols {
				fn(col)
			}
		}()
	}
	for col := 0; col < n; col++ {
		cols <- col
	}
	close(cols)
	wg.Wait()
}

func columnName(header []string, col int) string {
	if col < len(header) {
		if name := strings.TrimSpace(header[col]); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Column_%d", col)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
