package goquery_test

import (
	"testing"

	"github.com/dibkb/dibkb-scraper/goquery"
	"github.com/stretchr/testify/assert"
)

func TestExtractTechnicalInfo(t *testing.T) {
	t.Parallel()

	t.Run("reads header and value per row", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
<table class="prodDetTable" id="productDetails_techSpec_section_1">
	<tr><th>Brand</th><td>Logitech</td></tr>
	<tr><th>Connectivity</th><td>USB receiver</td></tr>
</table>
</body></html>`)

		assert.Equal(t, map[string]string{
			"Brand":        "Logitech",
			"Connectivity": "USB receiver",
		}, goquery.ExtractTechnicalInfo(doc))
	})

	t.Run("skips rows missing either half", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
<table class="prodDetTable" id="productDetails_techSpec_section_1">
	<tr><th>Brand</th><td>Logitech</td></tr>
	<tr><th>Orphan header</th></tr>
	<tr><td>Orphan value</td></tr>
</table>
</body></html>`)

		assert.Equal(t, map[string]string{"Brand": "Logitech"}, goquery.ExtractTechnicalInfo(doc))
	})

	t.Run("empty map when the table is missing", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body></body></html>`)

		assert.Empty(t, goquery.ExtractTechnicalInfo(doc))
	})
}

func TestExtractAdditionalInfo(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><body>
<table class="prodDetTable" id="productDetails_detailBullets_sections1">
	<tr><th>ASIN</th><td>B00935MGKK</td></tr>
	<tr><th>Customer Reviews</th><td>4.2 out of 5 stars</td></tr>
</table>
</body></html>`)

	assert.Equal(t, map[string]string{
		"ASIN":             "B00935MGKK",
		"Customer Reviews": "4.2 out of 5 stars",
	}, goquery.ExtractAdditionalInfo(doc))
}

func TestSpecTables_AreIndependentlySourced(t *testing.T) {
	t.Parallel()

	// The same key may appear in both tables; neither extraction merges
	// or filters against the other.
	doc := mustParse(t, `<html><body>
<table class="prodDetTable" id="productDetails_techSpec_section_1">
	<tr><th>Weight</th><td>90 g</td></tr>
</table>
<table class="prodDetTable" id="productDetails_detailBullets_sections1">
	<tr><th>Weight</th><td>100 g (packed)</td></tr>
</table>
</body></html>`)

	assert.Equal(t, map[string]string{"Weight": "90 g"}, goquery.ExtractTechnicalInfo(doc))
	assert.Equal(t, map[string]string{"Weight": "100 g (packed)"}, goquery.ExtractAdditionalInfo(doc))
}
