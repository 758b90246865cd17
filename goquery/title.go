package goquery

import "github.com/PuerkitoBio/goquery"

// titleStrategies locates the product title. The primary #productTitle
// span comes first; constrained layouts render a compact heading
// instead.
var titleStrategies = []strategy[string]{
	{Name: "product-title", Fn: titleFromProductTitle},
	{Name: "compact-heading", Fn: titleFromCompactHeading},
}

func ExtractTitle(doc *goquery.Document) string {
	title, ok := firstOf(doc, titleStrategies)
	if !ok {
		return ""
	}
	return title
}

func titleFromProductTitle(doc *goquery.Document) (string, bool) {
	return nonEmptyText(doc.Find("span#productTitle").First())
}

func titleFromCompactHeading(doc *goquery.Document) (string, bool) {
	return nonEmptyText(doc.Find("h1#title span").First())
}
