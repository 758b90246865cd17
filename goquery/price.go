package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The buy-box price ships as a JSON blob inside a hidden section rather
// than a visible element. Desktop and mobile templates key the blob
// differently; desktop is preferred.
const priceDataSelector = "div.twister-plus-buying-options-price-data"

var priceStrategies = []strategy[float64]{
	{Name: "desktop-buybox", Fn: priceFromBuyBox("desktop_buybox_group_1")},
	{Name: "mobile-buybox", Fn: priceFromBuyBox("mobile_buybox_group_1")},
}

func ExtractPrice(doc *goquery.Document) *float64 {
	price, ok := firstOf(doc, priceStrategies)
	if !ok {
		return nil
	}
	return &price
}

// priceFromBuyBox returns a strategy reading the display price from one
// buy-box group of the embedded pricing blob.
func priceFromBuyBox(group string) func(doc *goquery.Document) (float64, bool) {
	return func(doc *goquery.Document) (float64, bool) {
		raw := strings.TrimSpace(doc.Find(priceDataSelector).First().Text())
		if raw == "" {
			return 0, false
		}

		var blob map[string][]struct {
			DisplayPrice string `json:"displayPrice"`
		}
		if err := json.Unmarshal([]byte(raw), &blob); err != nil {
			return 0, false
		}

		for _, entry := range blob[group] {
			if price, ok := ParsePrice(entry.DisplayPrice); ok {
				return price, true
			}
		}
		return 0, false
	}
}
