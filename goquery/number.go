package goquery

import (
	"strconv"
	"strings"
	"unicode"
)

// ParsePrice converts a localized currency string such as "₹1,299.00"
// into its numeric value. Only the currency glyph and group separators
// are dropped; the whole remainder must parse as a number, so text like
// "2 for ₹500.00" reports failure and the caller falls through to its
// next strategy.
func ParsePrice(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Sc, r) || r == ',' {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePercent converts a histogram cell such as "55%" into an integer
// percentage. Values outside [0,100] are parse failures, never clamped.
func ParsePercent(s string) (int, bool) {
	s = strings.TrimSuffix(CleanText(s), "%")
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > 100 {
		return 0, false
	}
	return v, true
}

// leadingFloat parses the first whitespace-separated token of s as a
// float, for summary text like "4.2 out of 5".
func leadingFloat(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// digitsOnly keeps the digit characters of s, discarding the grouping
// punctuation in counter text like "1,116 ratings".
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
