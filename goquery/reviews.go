package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	dibkb "github.com/dibkb/dibkb-scraper"
)

// reviewStrategies locates review containers through whichever
// structural marker the template exposes. The lightbox marker yields
// structured records; the inline marker only carries review body text.
var reviewStrategies = []strategy[[]dibkb.Review]{
	{Name: "lightbox", Fn: reviewsFromLightbox},
	{Name: "inline-body", Fn: reviewsFromInlineBodies},
}

func ExtractReviews(doc *goquery.Document) []dibkb.Review {
	reviews, ok := firstOf(doc, reviewStrategies)
	if !ok {
		return []dibkb.Review{}
	}
	return reviews
}

func reviewsFromLightbox(doc *goquery.Document) ([]dibkb.Review, bool) {
	containers := doc.Find("div.cr-lightbox-review-information")
	// The first container is a template duplicate of the summary card.
	if containers.Length() < 2 {
		return nil, false
	}

	var reviews []dibkb.Review
	containers.Slice(1, containers.Length()).Each(func(_ int, container *goquery.Selection) {
		var review dibkb.Review
		review.User = CleanText(container.Find("span.a-profile-name").First().Text())
		if rating, ok := nonEmptyText(container.Find("span.a-icon-alt").First()); ok {
			review.Rating = strings.Fields(rating)[0]
		}
		review.Title = CleanText(container.Find("h5.cr-lightbox-review-title").First().Text())
		review.Text = CleanText(container.Find("span.cr-lightbox-review-body").First().Text())
		review.Date = reviewDate(container.Find("span.cr-lightbox-review-origin").First().Text())
		reviews = append(reviews, review)
	})
	return reviews, len(reviews) > 0
}

func reviewsFromInlineBodies(doc *goquery.Document) ([]dibkb.Review, bool) {
	var reviews []dibkb.Review
	doc.Find("span[data-hook='review-body']").Each(func(_ int, sel *goquery.Selection) {
		if text := CleanText(sel.Text()); text != "" {
			reviews = append(reviews, dibkb.Review{Text: text})
		}
	})
	return reviews, len(reviews) > 0
}

// reviewDate strips the "Reviewed in ... on" preamble from review
// origin text, keeping the date itself.
func reviewDate(raw string) string {
	text := CleanText(raw)
	if idx := strings.Index(text, "on"); idx >= 0 {
		return strings.TrimSpace(text[idx+len("on"):])
	}
	return text
}
