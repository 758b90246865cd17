package goquery

import "github.com/PuerkitoBio/goquery"

// ExtractHighlights collects visible bullet text under the features
// panel. A missing panel yields an empty list, not an absent field.
func ExtractHighlights(doc *goquery.Document) []string {
	highlights := []string{}
	doc.Find("div#feature-bullets span.a-list-item").Each(func(_ int, sel *goquery.Selection) {
		if _, hidden := sel.Attr("hidden"); hidden {
			return
		}
		if text := CleanText(sel.Text()); text != "" {
			highlights = append(highlights, text)
		}
	})
	return highlights
}
