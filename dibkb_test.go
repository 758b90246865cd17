package dibkb_test

import (
	"testing"

	dibkb "github.com/dibkb/dibkb-scraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := dibkb.Errorf(dibkb.EINVALID, "product %q not found", "B00TEST")

	assert.Equal(t, dibkb.EINVALID, dibkb.ErrorCode(err))
	assert.Equal(t, "product \"B00TEST\" not found", dibkb.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dibkb.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dibkb.ErrorMessage(nil))
}

func TestProductURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.amazon.in/dp/B00935MGKK", dibkb.ProductURL("B00935MGKK"))
}

func TestRatingPercentage_Valid(t *testing.T) {
	t.Parallel()

	pct := func(v int) *int { return &v }

	t.Run("all five present", func(t *testing.T) {
		t.Parallel()

		p := dibkb.RatingPercentage{
			OneStar:   pct(7),
			TwoStar:   pct(8),
			ThreeStar: pct(10),
			FourStar:  pct(20),
			FiveStar:  pct(55),
		}
		assert.True(t, p.Valid())
	})

	t.Run("any missing star invalidates", func(t *testing.T) {
		t.Parallel()

		p := dibkb.RatingPercentage{
			OneStar:   pct(7),
			TwoStar:   pct(8),
			FourStar:  pct(20),
			FiveStar:  pct(55),
		}
		assert.False(t, p.Valid())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		t.Parallel()

		assert.False(t, dibkb.RatingPercentage{}.Valid())
	})
}
