package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// CleanText normalizes text pulled out of markup: control and format
// runes (the source scatters directional marks through labels) become
// spaces, whitespace runs collapse to single spaces, and the result is
// trimmed. It never fails; empty input yields empty output.
func CleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// cleanLabel normalizes a key cell: CleanText plus any trailing colon
// the layout bakes into label text.
func cleanLabel(s string) string {
	s = strings.TrimSuffix(CleanText(s), ":")
	return strings.TrimSpace(s)
}

// nonEmptyText returns the cleaned text of the selection, reporting
// failure when the selection is empty or its text cleans to nothing.
func nonEmptyText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	text := CleanText(sel.Text())
	if text == "" {
		return "", false
	}
	return text, true
}
