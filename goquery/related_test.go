package goquery_test

import (
	"testing"

	"github.com/dibkb/dibkb-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRelatedProducts(t *testing.T) {
	t.Parallel()

	t.Run("admits items with asin and title from ad-feedback metadata", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
<ol class="a-carousel">
	<li class="a-carousel-card">
		<div data-adfeedbackdetails='{"asin":"B0ABCDEF12","title":"USB-C Hub","priceAmount":2499.0,"imageUrl":"https://m.media-amazon.com/images/I/61hubHUBhub._AC_UL320_.jpg"}'></div>
	</li>
	<li class="a-carousel-card">
		<div data-adfeedbackdetails='{"asin":"B0GHIJKL34","title":"Laptop Stand"}'></div>
	</li>
</ol>
</body></html>`)

		related := goquery.ExtractRelatedProducts(doc)
		require.Len(t, related, 2)

		assert.Equal(t, "B0ABCDEF12", related[0].ASIN)
		assert.Equal(t, "USB-C Hub", related[0].Title)
		require.NotNil(t, related[0].Price)
		assert.Equal(t, 2499.0, *related[0].Price)
		assert.Equal(t, "61hubHUBhub", related[0].ImgID)

		assert.Equal(t, "B0GHIJKL34", related[1].ASIN)
		assert.Nil(t, related[1].Price)
		assert.Empty(t, related[1].ImgID)
	})

	t.Run("rejects items missing asin or title", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
<li class="a-carousel-card"><div data-adfeedbackdetails='{"asin":"","title":"No ASIN"}'></div></li>
<li class="a-carousel-card"><div data-adfeedbackdetails='{"asin":"B0NOTITLE99","title":""}'></div></li>
<li class="a-carousel-card"><div data-adfeedbackdetails='{"asin":"B0KEEPME123","title":"Kept"}'></div></li>
</body></html>`)

		related := goquery.ExtractRelatedProducts(doc)
		require.Len(t, related, 1)
		assert.Equal(t, "B0KEEPME123", related[0].ASIN)
	})

	t.Run("rejects items whose metadata does not parse", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
<li class="a-carousel-card"><div data-adfeedbackdetails='{"asin":"B0BROKEN"'></div></li>
</body></html>`)

		assert.Empty(t, goquery.ExtractRelatedProducts(doc))
	})

	t.Run("reads metadata from the card element itself", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
<li class="a-carousel-card" data-adfeedbackdetails='{"asin":"B0ONCARD567","title":"On Card"}'></li>
</body></html>`)

		related := goquery.ExtractRelatedProducts(doc)
		require.Len(t, related, 1)
		assert.Equal(t, "B0ONCARD567", related[0].ASIN)
	})

	t.Run("no carousel yields no items", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body></body></html>`)

		assert.Empty(t, goquery.ExtractRelatedProducts(doc))
	})
}
