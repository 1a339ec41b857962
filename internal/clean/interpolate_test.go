package clean

import (
	"reflect"
	"testing"
)

func newTestInterpolator() Interpolator {
	return NewInterpolator(NewClassifier(nil), 3)
}

func TestInterpolateMidpointBetweenAnchors(t *testing.T) {
	// Valid at positions 2 and 8 (10.0 and 40.0); position 5 must become
	// 10 + (5-2)/(8-2)*(40-10) = 25.
	col := []string{"", "", "10.0", "", "", "", "", "", "40.0"}
	c := NewClassifier(nil)
	stats := c.Profile(col)
	if !stats.IsNumeric {
		t.Fatalf("fixture column should profile numeric")
	}

	m := NewRunMetrics()
	out := newTestInterpolator().Interpolate(col, stats, m)

	if out[5] != "25" {
		t.Fatalf("position 5 = %q, want 25", out[5])
	}
	// Leading run backward-fills from the first anchor.
	if out[0] != "10" || out[1] != "10" {
		t.Fatalf("leading fills = %q %q, want 10 10", out[0], out[1])
	}
	// Interior gaps are linear.
	want := []string{"10", "10", "10", "15", "20", "25", "30", "35", "40"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("out=%v, want %v", out, want)
	}

	snap := m.Snapshot()
	if snap.Interpolated != 5 || snap.Fallback != 2 {
		t.Fatalf("counts: interpolated=%d fallback=%d, want 5 and 2", snap.Interpolated, snap.Fallback)
	}
	if snap.Filled() != 7 {
		t.Fatalf("filled=%d, want 7 (total missing cells)", snap.Filled())
	}
}

func TestInterpolateTrailingForwardFill(t *testing.T) {
	col := []string{"5", "", "7", "", ""}
	c := NewClassifier(nil)
	stats := c.Profile(col)

	m := NewRunMetrics()
	out := newTestInterpolator().Interpolate(col, stats, m)

	if out[3] != "7" || out[4] != "7" {
		t.Fatalf("trailing cells = %q %q, want forward fill 7", out[3], out[4])
	}
	if out[1] != "6" {
		t.Fatalf("interior cell = %q, want 6", out[1])
	}
	snap := m.Snapshot()
	if snap.Interpolated != 1 || snap.Fallback != 2 {
		t.Fatalf("counts: %+v", snap)
	}
}

func TestInterpolateClampsToBounds(t *testing.T) {
	// Tight cluster plus one extreme anchor. The gap before the extreme
	// would interpolate to ~505, far above Q3+1.5*IQR, so it must clamp
	// to min(upper_bound, max).
	col := []string{"10", "11", "10", "11", "10", "11", "10", "11", "", "1000"}
	c := NewClassifier(nil)
	stats := c.Profile(col)
	if stats.UpperBound() >= 505 {
		t.Fatalf("fixture bounds too loose: upper=%v", stats.UpperBound())
	}

	m := NewRunMetrics()
	out := newTestInterpolator().Interpolate(col, stats, m)

	want := formatFloat(stats.UpperBound())
	if out[8] != want {
		t.Fatalf("clamped cell = %q, want %q", out[8], want)
	}
	if m.Snapshot().Interpolated != 1 {
		t.Fatalf("clamped fill still counts as interpolated")
	}
}

func TestInterpolateNonNumericUntouched(t *testing.T) {
	col := []string{"ok", "", "fine"}
	stats := ColumnStats{IsNumeric: false}

	m := NewRunMetrics()
	out := newTestInterpolator().Interpolate(col, stats, m)

	if !reflect.DeepEqual(out, col) {
		t.Fatalf("non-numeric column changed: %v", out)
	}
	if m.Snapshot().Filled() != 0 {
		t.Fatalf("non-numeric column must not count fills")
	}
}

func TestInterpolateDegenerateUsesMedianFallback(t *testing.T) {
	// One valid point among ten cells: every missing cell resolves to the
	// median fallback and none count as interpolated.
	col := []string{"", "", "", "42", "", "", "", "", "", ""}
	stats := ColumnStats{IsNumeric: true, Median: 42, TotalCount: 10, MissingCount: 9}

	m := NewRunMetrics()
	out := newTestInterpolator().Interpolate(col, stats, m)

	for i, v := range out {
		if v != "42" {
			t.Fatalf("cell %d = %q, want 42", i, v)
		}
	}
	snap := m.Snapshot()
	if snap.Interpolated != 0 || snap.Fallback != 9 {
		t.Fatalf("counts: interpolated=%d fallback=%d, want 0 and 9", snap.Interpolated, snap.Fallback)
	}
}

func TestInterpolateIdempotentOnValidColumn(t *testing.T) {
	col := []string{"1", "2.5", "3", "4.25"}
	c := NewClassifier(nil)
	stats := c.Profile(col)

	ip := newTestInterpolator()
	m := NewRunMetrics()
	once := ip.Interpolate(col, stats, m)
	twice := ip.Interpolate(once, c.Profile(once), m)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed a fully-valid column: %v vs %v", once, twice)
	}
	if m.Snapshot().Filled() != 0 {
		t.Fatalf("no fills expected on a fully-valid column")
	}
}

// No filled cell may land outside the column's IQR bounds.
func TestInterpolateBoundsProperty(t *testing.T) {
	col := []string{"3", "", "5", "-", "4", "n/a", "6", "", "5", "4", "", "3"}
	c := NewClassifier(nil)
	stats := c.Profile(col)

	m := NewRunMetrics()
	out := newTestInterpolator().Interpolate(col, stats, m)

	for i, v := range out {
		if c.IsMissing(col[i]) {
			f, ok := c.ParseNumeric(v)
			if !ok {
				t.Fatalf("filled cell %d is not numeric: %q", i, v)
			}
			if f < stats.LowerBound() || f > stats.UpperBound() {
				t.Fatalf("filled cell %d = %v outside [%v, %v]", i, f, stats.LowerBound(), stats.UpperBound())
			}
		}
	}
	if m.Snapshot().Filled() != 5 {
		t.Fatalf("filled=%d, want 5", m.Snapshot().Filled())
	}
}
