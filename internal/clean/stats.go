package clean

import "sort"

// ColumnStats is an immutable statistical snapshot of one column. For
// non-numeric columns every numeric field is zero and IsNumeric is false.
type ColumnStats struct {
	Name         string  `json:"name"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Q1           float64 `json:"q1"`
	Q3           float64 `json:"q3"`
	MissingCount int     `json:"missing_count"`
	TotalCount   int     `json:"total_count"`
	IsNumeric    bool    `json:"is_numeric"`
}

// MissingRatio returns MissingCount/TotalCount, or 0 for an empty column.
func (s ColumnStats) MissingRatio() float64 {
	if s.TotalCount == 0 {
		return 0
	}
	return float64(s.MissingCount) / float64(s.TotalCount)
}

// IQR returns the interquartile range Q3-Q1.
func (s ColumnStats) IQR() float64 { return s.Q3 - s.Q1 }

// LowerBound returns the outlier floor Q1 - 1.5*IQR.
func (s ColumnStats) LowerBound() float64 { return s.Q1 - 1.5*s.IQR() }

// UpperBound returns the outlier ceiling Q3 + 1.5*IQR.
func (s ColumnStats) UpperBound() float64 { return s.Q3 + 1.5*s.IQR() }

// Profile computes descriptive statistics for a column of raw text
// values. A column counts as numeric only when strictly more than 10% of
// its values parse; everything else yields a zeroed non-numeric snapshot.
//
// Quartiles are floor-indexed order statistics (sorted[n/4] and
// sorted[3n/4]), not interpolated quantiles. Downstream bounds depend on
// this exact estimator, so it must not be swapped for a textbook one.
// As a consequence Q1 <= Median <= Q3 is not guaranteed for tiny n.
func (c Classifier) Profile(values []string) ColumnStats {
	nums := make([]float64, 0, len(values))
	missing := 0
	for _, v := range values {
		if f, ok := c.ParseNumeric(v); ok {
			nums = append(nums, f)
		} else {
			missing++
		}
	}

	total := len(values)
	if len(nums) == 0 || float64(len(nums)) <= float64(total)*0.1 {
		return ColumnStats{MissingCount: missing, TotalCount: total}
	}

	sort.Float64s(nums)
	n := len(nums)

	var sum float64
	for _, f := range nums {
		sum += f
	}
	mean := sum / float64(n)

	var median float64
	if n%2 == 1 {
		median = nums[n/2]
	} else {
		median = (nums[n/2-1] + nums[n/2]) / 2
	}

	q1Idx, q3Idx := n/4, 3*n/4
	if q1Idx >= n {
		q1Idx = n - 1
	}
	if q3Idx >= n {
		q3Idx = n - 1
	}

	return ColumnStats{
		Mean:         mean,
		Median:       median,
		Min:          nums[0],
		Max:          nums[n-1],
		Q1:           nums[q1Idx],
		Q3:           nums[q3Idx],
		MissingCount: missing,
		TotalCount:   total,
		IsNumeric:    true,
	}
}
