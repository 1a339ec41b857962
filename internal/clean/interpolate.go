package clean

import (
	"math"
	"sort"
	"strconv"
)

// Interpolator fills missing numeric cells one column at a time using
// neighbor-aware linear interpolation, clamped to the column's IQR
// bounds, with fill/median fallbacks when only one or zero anchors exist.
type Interpolator struct {
	cls    Classifier
	digits int
}

// NewInterpolator returns an Interpolator that rounds interpolated values
// to the given number of decimal digits (negative means no rounding).
func NewInterpolator(cls Classifier, digits int) Interpolator {
	return Interpolator{cls: cls, digits: digits}
}

// Interpolate returns the column with every missing cell replaced. The
// input slice is not modified. Non-numeric columns are returned as-is.
//
// Valid cells come back re-stringified from their parsed value, which
// normalizes formatting (unit suffixes and stray characters are dropped).
// Fill counts are accumulated into m.
func (ip Interpolator) Interpolate(values []string, stats ColumnStats, m *RunMetrics) []string {
	if !stats.IsNumeric {
		return values
	}

	parsed := make([]float64, len(values))
	valid := make([]bool, len(values))
	validPos := make([]int, 0, len(values))
	for i, v := range values {
		if f, ok := ip.cls.ParseNumeric(v); ok {
			parsed[i] = f
			valid[i] = true
			validPos = append(validPos, i)
		}
	}

	result := make([]string, len(values))

	if len(validPos) < 2 {
		// Too sparse to interpolate between anchors.
		fallback := formatFloat(stats.Median)
		for i := range values {
			if valid[i] {
				result[i] = formatFloat(parsed[i])
			} else {
				result[i] = fallback
				m.addFallback(1)
			}
		}
		return result
	}

	for i := range values {
		if valid[i] {
			result[i] = formatFloat(parsed[i])
			continue
		}

		// validPos is ordered, so the insertion point splits it into
		// left and right anchors.
		at := sort.SearchInts(validPos, i)
		hasLeft := at > 0
		hasRight := at < len(validPos)

		switch {
		case hasLeft && hasRight:
			left, right := validPos[at-1], validPos[at]
			vLeft, vRight := parsed[left], parsed[right]
			weight := float64(i-left) / float64(right-left)
			val := vLeft + weight*(vRight-vLeft)
			if val < stats.LowerBound() {
				val = math.Max(stats.LowerBound(), stats.Min)
			} else if val > stats.UpperBound() {
				val = math.Min(stats.UpperBound(), stats.Max)
			}
			result[i] = formatFloat(roundTo(val, ip.digits))
			m.addInterpolated(1)
		case hasLeft:
			result[i] = formatFloat(parsed[validPos[at-1]])
			m.addFallback(1)
		case hasRight:
			result[i] = formatFloat(parsed[validPos[at]])
			m.addFallback(1)
		default:
			// Unreachable with >=2 anchors, kept for safety.
			result[i] = formatFloat(stats.Median)
			m.addFallback(1)
		}
	}
	return result
}

func roundTo(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
