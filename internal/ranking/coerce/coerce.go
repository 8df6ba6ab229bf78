// Package coerce converts the loosely typed fields of lead records into
// numbers and dates that scorers can rely on. Every function here is total:
// unparseable input yields the caller's default, never an error.
package coerce

import (
	"strconv"
	"strings"
	"time"
)

// Numeric converts a raw field value to a float64. Numbers pass through.
// Strings are cleaned of commas, currency symbols and a trailing percent
// sign, then a trailing K or M magnitude suffix is parsed as a multiplier,
// so "$1.2M" is 1,200,000 and "500K" is 500,000. Anything unparseable
// returns def.
func Numeric(raw interface{}, def float64) float64 {
	switch v := raw.(type) {
	case nil:
		return def
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return numericString(v, def)
	default:
		return def
	}
}

func numericString(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.Trim(s, "$€£ ")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	multiplier := 1.0
	if strings.HasSuffix(s, "M") {
		multiplier = 1e6
		s = s[:len(s)-1]
	} else if strings.HasSuffix(s, "K") {
		multiplier = 1e3
		s = s[:len(s)-1]
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f * multiplier
}

// Comparison is a parsed threshold expression such as "> $10M".
type Comparison struct {
	Op    byte // '>' or '<'
	Value float64
}

// ParseComparison parses a threshold expression of the form "> $10M" or
// "<$500K". The second return is false when the expression is absent or
// malformed.
func ParseComparison(expr string) (Comparison, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Comparison{}, false
	}

	op := expr[0]
	if op != '>' && op != '<' {
		return Comparison{}, false
	}

	rest := strings.TrimSpace(expr[1:])
	if rest == "" {
		return Comparison{}, false
	}

	sentinel := -1.0
	value := numericString(rest, sentinel)
	if value == sentinel {
		return Comparison{}, false
	}

	return Comparison{Op: op, Value: value}, true
}

// Satisfies reports whether n meets the comparison.
func (c Comparison) Satisfies(n float64) bool {
	if c.Op == '>' {
		return n > c.Value
	}
	return n < c.Value
}

// Date parses a YYYY-MM-DD date string. The second return is false for
// absent or malformed input.
func Date(raw interface{}) (time.Time, bool) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
