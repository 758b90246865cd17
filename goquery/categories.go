package goquery

import "github.com/PuerkitoBio/goquery"

// categoryStrategies locates the breadcrumb trail. The horizontal
// breadcrumb list is the common case; some layouts collapse the trail
// into expander panels instead.
var categoryStrategies = []strategy[[]string]{
	{Name: "breadcrumb-list", Fn: categoriesFromBreadcrumbs},
	{Name: "expander-panels", Fn: categoriesFromExpanderPanels},
}

func ExtractCategories(doc *goquery.Document) []string {
	categories, ok := firstOf(doc, categoryStrategies)
	if !ok {
		return []string{}
	}
	return categories
}

func categoriesFromBreadcrumbs(doc *goquery.Document) ([]string, bool) {
	var categories []string
	doc.Find("ul.a-unordered-list.a-horizontal.a-size-small").First().
		Find("a").Each(func(_ int, sel *goquery.Selection) {
		if text := CleanText(sel.Text()); text != "" {
			categories = append(categories, text)
		}
	})
	return categories, len(categories) > 0
}

// categoriesFromExpanderPanels scans collapsible breadcrumb panels,
// keeping child links that carry the breadcrumb layout class token.
// Matches from every panel are concatenated in document order.
func categoriesFromExpanderPanels(doc *goquery.Document) ([]string, bool) {
	var categories []string
	doc.Find("div.a-expander-content").Each(func(_ int, panel *goquery.Selection) {
		panel.Find("a.a-color-tertiary").Each(func(_ int, sel *goquery.Selection) {
			if text := CleanText(sel.Text()); text != "" {
				categories = append(categories, text)
			}
		})
	})
	return categories, len(categories) > 0
}
