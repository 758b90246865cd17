// Package goquery implements product extraction on top of the goquery
// HTML library. Every field is located by an ordered chain of CSS
// selector strategies, so template drift in any one layout degrades a
// single field rather than the whole run.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	dibkb "github.com/dibkb/dibkb-scraper"
)

// Ensure Extractor implements dibkb.ProductExtractor at compile time.
var _ dibkb.ProductExtractor = (*Extractor)(nil)

// Extractor extracts structured product data from rendered page HTML.
// Extractor is stateless and safe for concurrent use by multiple
// goroutines.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and extracts the full product response.
// Empty or unparseable input yields the failure response; nothing else does.
func (e *Extractor) Extract(html string) *dibkb.ProductResponse {
	if strings.TrimSpace(html) == "" {
		return ErrorResponse()
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ErrorResponse()
	}
	return ExtractProduct(doc)
}

// ExtractProduct assembles the response from an already-parsed document.
// A nil document produces the failure response. With a document present, each
// field extractor recovers from missing or malformed markup on its own
// and assembly always completes; no field ever aborts the run.
func ExtractProduct(doc *goquery.Document) *dibkb.ProductResponse {
	if doc == nil {
		return ErrorResponse()
	}

	return &dibkb.ProductResponse{
		Product: dibkb.Product{
			Title:      ExtractTitle(doc),
			Price:      ExtractPrice(doc),
			ImageIDs:   ExtractImageIDs(doc),
			Categories: ExtractCategories(doc),
			Description: dibkb.Description{
				Highlights: ExtractHighlights(doc),
			},
			Specifications: dibkb.Specifications{
				Technical:  ExtractTechnicalInfo(doc),
				Additional: ExtractAdditionalInfo(doc),
				Details:    ExtractProductDetails(doc),
			},
			Ratings:         ExtractRatings(doc),
			Reviews:         ExtractReviews(doc),
			RelatedProducts: ExtractRelatedProducts(doc),
		},
	}
}

// ErrorResponse returns the documented shell for a missing document:
// Error set, Reviews empty, every other field in its absent form.
func ErrorResponse() *dibkb.ProductResponse {
	return &dibkb.ProductResponse{
		Product: dibkb.Product{
			Reviews: []dibkb.Review{},
		},
		Error: "failed to fetch page",
	}
}
