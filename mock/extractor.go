package mock

import dibkb "github.com/dibkb/dibkb-scraper"

var _ dibkb.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor is a mock implementation of dibkb.ProductExtractor.
type ProductExtractor struct {
	ExtractFn func(html string) *dibkb.ProductResponse
}

func (e *ProductExtractor) Extract(html string) *dibkb.ProductResponse {
	return e.ExtractFn(html)
}
