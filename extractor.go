package dibkb

// ProductExtractor extracts structured product data from rendered product
// page HTML.
type ProductExtractor interface {
	// Extract parses the HTML and returns the extracted product response.
	// Missing or malformed page fields never surface as errors; each field
	// falls back to its documented empty form. Only empty or unparseable
	// input produces a response with Error set and an empty product shell.
	Extract(html string) *ProductResponse
}
