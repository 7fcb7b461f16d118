package mkbd

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// groupedDigits matches a number whose dots can only be thousands grouping,
// e.g. "25.000.000.000" in the Indonesian convention.
var groupedDigits = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// ParseAmount converts an arbitrary cell value into a rupiah Money.
//
// This is a total function: absent, non-numeric and unparseable cells all
// yield zero, never an error. Numeric cells pass through unchanged, so the
// parser is idempotent. Strings accept both plain ASCII numerals and the
// Indonesian convention of dot grouping with a decimal comma
// ("1.234.567,89"), with an optional Rp/IDR prefix and accounting-style
// parentheses for negatives.
func ParseAmount(cell any) Money {
	v, ok := parseAmountStrict(cell)
	if !ok {
		return IDR(0)
	}
	return v
}

// parseAmountStrict is ParseAmount without the zero default: the bool
// reports whether the cell actually carried a numeric value. The extraction
// pass needs the distinction to find the last parseable cell of a row.
func parseAmountStrict(cell any) (Money, bool) {
	switch v := cell.(type) {
	case Money:
		return v, true
	case decimal.Decimal:
		return IDR(v), true
	case float64:
		return IDR(v), true
	case float32:
		return IDR(v), true
	case int:
		return IDR(v), true
	case int32:
		return IDR(v), true
	case int64:
		return IDR(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return IDR(0), false
		}
		return IDR(d), true
	case string:
		return parseAmountString(v)
	default:
		return IDR(0), false
	}
}

func parseAmountString(s string) (Money, bool) {
	s = strings.TrimSpace(s)

	// accounting negatives: (1.000) means -1000
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}

	// strip currency markers and spacing, including non-breaking spaces
	lower := strings.ToLower(s)
	for _, prefix := range []string{"rp.", "rp", "idr"} {
		if strings.HasPrefix(lower, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, s)

	if s == "" || s == "-" {
		return IDR(0), false
	}

	switch {
	case strings.Contains(s, ".") && strings.Contains(s, ","):
		// dots group thousands, the comma is the decimal separator
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	case groupedDigits.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return IDR(0), false
	}
	if neg {
		d = d.Neg()
	}
	return IDR(d), true
}
