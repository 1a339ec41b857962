package clean

import (
	"strconv"
	"strings"
)

// DefaultMissingTokens returns the closed set of tokens recognized as
// missing data after trimming and case-folding. The set is part of the
// output contract: changing it changes which cells get filled.
func DefaultMissingTokens() []string {
	return []string{
		"", "-", "--", "---", "----",
		"n/a", "na", "null", "nan", "none",
		"missing", "unknown", "#n/a", "#null",
		"?", "nil", "undefined", "blank",
	}
}

// Classifier decides whether a raw field is missing and attempts numeric
// parsing. It carries no per-run state; the token set is fixed at
// construction.
type Classifier struct {
	tokens map[string]struct{}
}

// NewClassifier builds a Classifier over the given missing-value tokens.
// Tokens are matched after trimming and lowercasing, so they should be
// supplied lowercase. A nil or empty slice falls back to the defaults.
func NewClassifier(tokens []string) Classifier {
	if len(tokens) == 0 {
		tokens = DefaultMissingTokens()
	}
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return Classifier{tokens: set}
}

// IsMissing reports whether raw represents absent data: empty after
// trimming, or a member of the missing-token set.
func (c Classifier) IsMissing(raw string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return true
	}
	_, ok := c.tokens[cleaned]
	return ok
}

// ParseNumeric attempts to read raw as a float. Every character that is
// not a digit, '.', '-', '+', 'e' or 'E' is stripped before parsing, so
// values like "72.4 °F" or "1,013hPa" still parse. Returns false for
// missing values, empty residues, and unparseable residues.
func (c Classifier) ParseNumeric(raw string) (float64, bool) {
	if c.IsMissing(raw) {
		return 0, false
	}
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
			b.WriteRune(r)
		}
	}
	residue := b.String()
	if residue == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(residue, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
