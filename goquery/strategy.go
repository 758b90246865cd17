package goquery

import "github.com/PuerkitoBio/goquery"

// A strategy is a single attempt to obtain a field's value: a tree query
// plus a transform into the field's type. It reports ok=false when the
// markup it targets is missing or unusable, which sends the caller to the
// next strategy in the chain.
type strategy[T any] struct {
	// Name identifies the template variant the strategy targets.
	Name string

	Fn func(doc *goquery.Document) (T, bool)
}

// firstOf runs strategies in order and returns the first successful
// result. Order encodes template preference: current, specific layouts
// first and legacy, general layouts last. When every strategy fails, the
// zero value is returned with ok=false and the caller substitutes the
// field's documented empty sentinel.
func firstOf[T any](doc *goquery.Document, strategies []strategy[T]) (T, bool) {
	for _, s := range strategies {
		if v, ok := s.Fn(doc); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
