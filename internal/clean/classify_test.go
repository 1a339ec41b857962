package clean

import "testing"

func TestIsMissingTokens(t *testing.T) {
	c := NewClassifier(nil)
	missing := []string{
		"", "   ", "-", "--", "---", "----",
		"n/a", "NA", "Null", "NaN", "none",
		"MISSING", "unknown", "#N/A", "#null",
		"?", "nil", "Undefined", "blank",
		"  n/a  ", "\tNULL\t",
	}
	for _, v := range missing {
		if !c.IsMissing(v) {
			t.Fatalf("expected %q to be missing", v)
		}
	}
	present := []string{"0", "12.5", "ok", "-5", "n/a/b", "nan2"}
	for _, v := range present {
		if c.IsMissing(v) {
			t.Fatalf("expected %q to be present", v)
		}
	}
}

func TestIsMissingCustomTokens(t *testing.T) {
	c := NewClassifier([]string{"", "x"})
	if !c.IsMissing("X") {
		t.Fatalf("custom token should match case-insensitively")
	}
	if c.IsMissing("n/a") {
		t.Fatalf("default tokens should not apply with a custom set")
	}
}

func TestParseNumeric(t *testing.T) {
	c := NewClassifier(nil)
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{"-5.5", -5.5, true},
		{"+3", 3, true},
		{"1e3", 1000, true},
		{"72.4 °F", 72.4, true},
		{"1,013hPa", 1013, true},
		{" 42 ", 42, true},
		{"n/a", 0, false},
		{"", 0, false},
		{"abc", 0, false},   // empty residue
		{"1.2.3", 0, false}, // residue fails to parse
		{"e", 0, false},
	}
	for _, tc := range cases {
		got, ok := c.ParseNumeric(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseNumeric(%q): ok=%v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseNumeric(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
