package dibkb

// ProductResponse is the result of one extraction run. It is always
// structurally complete: every field carries either an extracted value or
// its documented empty form. Error is set only when no document was
// available at all.
type ProductResponse struct {
	Product Product `json:"product"`
	Error   string  `json:"error,omitempty"`
}

// Product holds every attribute extracted from a product page. Optional
// scalar fields are pointers; a nil pointer means the page did not yield
// the field.
type Product struct {
	Title           string           `json:"title,omitempty"`
	Price           *float64         `json:"price"`
	ImageIDs        []string         `json:"image_ids,omitempty"`
	Categories      []string         `json:"categories"`
	Description     Description      `json:"description"`
	Specifications  Specifications   `json:"specifications"`
	Ratings         Ratings          `json:"ratings"`
	Reviews         []Review         `json:"reviews"`
	RelatedProducts []RelatedProduct `json:"related_products,omitempty"`
}

// Description holds bullet-point feature text in page order. Highlights is
// empty, not nil, when the features panel is missing.
type Description struct {
	Highlights []string `json:"highlights"`
}

// Specifications holds three independently-sourced key/value tables. Keys
// are not guaranteed disjoint across the three maps; duplicates are kept
// as found, never merged.
type Specifications struct {
	Technical  map[string]string `json:"technical"`
	Additional map[string]string `json:"additional"`
	Details    map[string]string `json:"details"`
}

// Ratings summarizes the page's review data. Stats is absent unless the
// rating histogram passed its all-or-nothing validation.
type Ratings struct {
	Rating      *float64     `json:"rating"`
	ReviewCount *int         `json:"review_count"`
	RatingStats *RatingStats `json:"rating_stats,omitempty"`
}

// RatingPercentage holds the per-star histogram percentages in ascending
// star order. The histogram is all-or-nothing: if any of the five cells
// fails to parse or validate, all five are absent.
type RatingPercentage struct {
	OneStar   *int `json:"one_star"`
	TwoStar   *int `json:"two_star"`
	ThreeStar *int `json:"three_star"`
	FourStar  *int `json:"four_star"`
	FiveStar  *int `json:"five_star"`
}

// Valid reports whether all five percentages are present.
func (p RatingPercentage) Valid() bool {
	return p.OneStar != nil && p.TwoStar != nil && p.ThreeStar != nil &&
		p.FourStar != nil && p.FiveStar != nil
}

// StarRating pairs a histogram percentage with its derived approximate
// review count. Count is floor(percentage * review_count / 100) and is
// absent whenever either operand is.
type StarRating struct {
	Count      *int `json:"count"`
	Percentage *int `json:"percentage"`
}

// RatingStats holds per-star rating detail derived from the histogram and
// the total review count.
type RatingStats struct {
	OneStar   StarRating `json:"one_star"`
	TwoStar   StarRating `json:"two_star"`
	ThreeStar StarRating `json:"three_star"`
	FourStar  StarRating `json:"four_star"`
	FiveStar  StarRating `json:"five_star"`
}

// Review is a single customer review. Pages expose reviews through two
// different structural markers; the inline-body form fills only Text and
// leaves the remaining fields empty.
type Review struct {
	User   string `json:"user,omitempty"`
	Rating string `json:"rating,omitempty"`
	Title  string `json:"title,omitempty"`
	Text   string `json:"text,omitempty"`
	Date   string `json:"date,omitempty"`
}

// RelatedProduct is a related-item card from the product page carousel.
// An item is only admitted when both ASIN and Title are non-empty.
type RelatedProduct struct {
	ASIN  string   `json:"asin"`
	Title string   `json:"title"`
	Price *float64 `json:"price"`
	ImgID string   `json:"img_id"`
}
