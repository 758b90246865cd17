package goquery

import (
	"github.com/PuerkitoBio/goquery"
	dibkb "github.com/dibkb/dibkb-scraper"
)

// The ratings histogram renders its cells with one obfuscated style
// class. The page carries two runs of cells with this class; the second
// run (cells six through ten) is the percentage column, listed in
// descending star order.
const histogramCellSelector = "span._cr-ratings-histogram_style_histogram-column-space__RKUAd"

// ExtractRatingPercentage reads the five percentage cells and validates
// them as a unit: if any cell is missing, unparseable, or out of range,
// all five come back absent. Partial histograms are untrustworthy, not
// partially useful.
func ExtractRatingPercentage(doc *goquery.Document) dibkb.RatingPercentage {
	cells := doc.Find(histogramCellSelector)
	if cells.Length() < 10 {
		return dibkb.RatingPercentage{}
	}

	values := make([]int, 0, 5)
	valid := true
	cells.Slice(5, 10).Each(func(_ int, cell *goquery.Selection) {
		v, ok := ParsePercent(cell.Text())
		if !ok {
			valid = false
			return
		}
		values = append(values, v)
	})
	if !valid || len(values) != 5 {
		return dibkb.RatingPercentage{}
	}

	// Markup lists five-star first; the record is ascending.
	return dibkb.RatingPercentage{
		FiveStar:  &values[0],
		FourStar:  &values[1],
		ThreeStar: &values[2],
		TwoStar:   &values[3],
		OneStar:   &values[4],
	}
}
