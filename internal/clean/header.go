package clean

import "strings"

// DefaultHeaderKeywords returns the tokens used to recognize a sensor
// export's header row. Tuned for weather-station dumps; callers with
// other formats should configure their own list or supply a custom
// HeaderLocator.
func DefaultHeaderKeywords() []string {
	return []string{"temp", "hum", "date"}
}

// HeaderLocator finds the header row and the index of the first data row
// in a raw table. Rows before dataStart are metadata and are passed
// through untouched.
type HeaderLocator func(rows [][]string) (header []string, dataStart int)

// KeywordHeaderLocator builds the default locator strategy: the first of
// the leading scanDepth rows containing a keyword (case-folded substring
// match on any cell) is the header, and data starts on the next row. If
// no row matches, the widest scanned row is taken as the header and data
// starts at defaultStart.
func KeywordHeaderLocator(keywords []string, scanDepth, defaultStart int) HeaderLocator {
	if scanDepth <= 0 {
		scanDepth = 10
	}
	if defaultStart < 0 {
		defaultStart = 0
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	return func(rows [][]string) ([]string, int) {
		limit := scanDepth
		if limit > len(rows) {
			limit = len(rows)
		}
		for i := 0; i < limit; i++ {
			if rowHasKeyword(rows[i], lowered) {
				return rows[i], i + 1
			}
		}
		// No keyword hit: fall back to the widest leading row.
		var widest []string
		for i := 0; i < limit; i++ {
			if len(rows[i]) > len(widest) {
				widest = rows[i]
			}
		}
		start := defaultStart
		if start > len(rows) {
			start = len(rows)
		}
		return widest, start
	}
}

func rowHasKeyword(row []string, keywords []string) bool {
	for _, cell := range row {
		folded := strings.ToLower(cell)
		for _, k := range keywords {
			if k != "" && strings.Contains(folded, k) {
				return true
			}
		}
	}
	return false
}
