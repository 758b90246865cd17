package goquery

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
	dibkb "github.com/dibkb/dibkb-scraper"
)

// Related-item carousel cards embed their metadata as an ad-feedback
// JSON attribute rather than structured child elements.
const adFeedbackAttr = "data-adfeedbackdetails"

// ExtractRelatedProducts scans the carousel for cards whose ad-feedback
// metadata parses. An item is admitted only when both its ASIN and its
// title are non-empty; everything else about it is best-effort.
func ExtractRelatedProducts(doc *goquery.Document) []dibkb.RelatedProduct {
	var related []dibkb.RelatedProduct
	doc.Find("li.a-carousel-card").Each(func(_ int, card *goquery.Selection) {
		raw, exists := card.Attr(adFeedbackAttr)
		if !exists {
			raw, exists = card.Find("[" + adFeedbackAttr + "]").First().Attr(adFeedbackAttr)
		}
		if !exists {
			return
		}

		var details struct {
			ASIN        string   `json:"asin"`
			Title       string   `json:"title"`
			PriceAmount *float64 `json:"priceAmount"`
			ImageURL    string   `json:"imageUrl"`
		}
		if err := json.Unmarshal([]byte(raw), &details); err != nil {
			return
		}

		asin := CleanText(details.ASIN)
		title := CleanText(details.Title)
		if asin == "" || title == "" {
			return
		}

		item := dibkb.RelatedProduct{
			ASIN:  asin,
			Title: title,
			Price: details.PriceAmount,
		}
		if id, ok := ImageID(details.ImageURL); ok {
			item.ImgID = id
		}
		related = append(related, item)
	})
	return related
}
