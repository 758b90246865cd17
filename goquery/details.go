package goquery

import "github.com/PuerkitoBio/goquery"

// detailStrategies locates the product-details key/value panel. The
// first strategy that yields a non-empty map wins outright; later
// strategies never merge into an earlier result.
var detailStrategies = []strategy[map[string]string]{
	{Name: "detail-bullets-panel", Fn: detailsFromBulletPanel},
	{Name: "detail-bullet-lists", Fn: detailsFromBulletLists},
	{Name: "details-table", Fn: detailsFromKeyValueTable},
}

func ExtractProductDetails(doc *goquery.Document) map[string]string {
	details, ok := firstOf(doc, detailStrategies)
	if !ok {
		return map[string]string{}
	}
	return details
}

func detailsFromBulletPanel(doc *goquery.Document) (map[string]string, bool) {
	panel := doc.Find("div#detailBullets_feature_div")
	if panel.Length() == 0 {
		return nil, false
	}
	info := pairsFromListItems(panel.Find("span.a-list-item"))
	return info, len(info) > 0
}

func detailsFromBulletLists(doc *goquery.Document) (map[string]string, bool) {
	info := pairsFromListItems(doc.Find("ul.detail-bullet-list span.a-list-item"))
	return info, len(info) > 0
}

func detailsFromKeyValueTable(doc *goquery.Document) (map[string]string, bool) {
	info := specTable(doc, "table.a-keyvalue")
	return info, len(info) > 0
}

// pairsFromListItems reads label/value pairs from list items holding
// exactly two child spans. Items with any other shape are decorative
// and skipped.
func pairsFromListItems(items *goquery.Selection) map[string]string {
	info := make(map[string]string)
	items.Each(func(_ int, item *goquery.Selection) {
		spans := item.ChildrenFiltered("span")
		if spans.Length() != 2 {
			return
		}
		key := cleanLabel(spans.Eq(0).Text())
		value := CleanText(spans.Eq(1).Text())
		if key == "" || value == "" {
			return
		}
		info[key] = value
	})
	return info
}
