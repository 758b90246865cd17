package goquery

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	dibkb "github.com/dibkb/dibkb-scraper"
)

// ratingStrategies locates the numeric rating summary. The data-hook
// summary element is primary; older layouts only expose the rating in
// the histogram link's title attribute.
var ratingStrategies = []strategy[float64]{
	{Name: "rating-out-of-text", Fn: ratingFromSummaryText},
	{Name: "histogram-link-title", Fn: ratingFromHistogramLink},
}

// ExtractRatings reads the rating summary and review count, then
// derives per-star stats from the histogram. Stats are only derived
// when the histogram passed its all-or-nothing validation.
func ExtractRatings(doc *goquery.Document) dibkb.Ratings {
	var result dibkb.Ratings

	if rating, ok := firstOf(doc, ratingStrategies); ok {
		result.Rating = &rating
	}
	if count, ok := reviewCount(doc); ok {
		result.ReviewCount = &count
	}

	if pct := ExtractRatingPercentage(doc); pct.Valid() {
		result.RatingStats = deriveRatingStats(pct, result.ReviewCount)
	}
	return result
}

func ratingFromSummaryText(doc *goquery.Document) (float64, bool) {
	text, ok := nonEmptyText(doc.Find("span[data-hook='rating-out-of-text']").First())
	if !ok {
		return 0, false
	}
	return leadingFloat(text)
}

// ratingFromHistogramLink reads the rating from the histogram link's
// title attribute, e.g. "4.2 out of 5 stars".
func ratingFromHistogramLink(doc *goquery.Document) (float64, bool) {
	title, exists := doc.Find("span.reviewCountTextLinkedHistogram").First().Attr("title")
	if !exists {
		return 0, false
	}
	return leadingFloat(CleanText(title))
}

// reviewCount reads the total review count, keeping digit characters
// only so grouped counts like "1,116 ratings" parse cleanly.
func reviewCount(doc *goquery.Document) (int, bool) {
	text, ok := nonEmptyText(doc.Find("span[data-hook='total-review-count']").First())
	if !ok {
		return 0, false
	}
	digits := digitsOnly(text)
	if digits == "" {
		return 0, false
	}
	count, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return count, true
}

// deriveRatingStats combines the validated histogram with the review
// count. Per star, count = floor(percentage * review_count / 100); the
// count is absent whenever the review count is.
func deriveRatingStats(pct dibkb.RatingPercentage, reviewCount *int) *dibkb.RatingStats {
	star := func(percentage *int) dibkb.StarRating {
		s := dibkb.StarRating{Percentage: percentage}
		if percentage != nil && reviewCount != nil {
			count := *percentage * *reviewCount / 100
			s.Count = &count
		}
		return s
	}
	return &dibkb.RatingStats{
		OneStar:   star(pct.OneStar),
		TwoStar:   star(pct.TwoStar),
		ThreeStar: star(pct.ThreeStar),
		FourStar:  star(pct.FourStar),
		FiveStar:  star(pct.FiveStar),
	}
}
