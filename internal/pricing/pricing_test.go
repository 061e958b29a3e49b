package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-booking/internal/models"
	"ms-booking/internal/pricing"
)

func TestComputeWithoutPromo(t *testing.T) {
	cases := []struct {
		unitPrice int
		quantity  int
	}{
		{999, 1},
		{999, 4},
		{1299, 2},
		{0, 3},
	}

	for _, tc := range cases {
		b := pricing.Compute(tc.unitPrice, tc.quantity, nil)
		assert.Equal(t, tc.unitPrice*tc.quantity, b.Subtotal)
		assert.Equal(t, 0, b.Discount)
		assert.Equal(t, b.Subtotal+b.Taxes, b.Total)
	}
}

func TestComputePercentagePromo(t *testing.T) {
	rule := &models.PromoRule{Code: "SAVE10", Kind: models.PromoPercentage, Value: 10}

	b := pricing.Compute(1000, 1, rule)

	assert.Equal(t, 1000, b.Subtotal)
	assert.Equal(t, 100, b.Discount)
	assert.Equal(t, 54, b.Taxes) // round(900 * 0.06)
	assert.Equal(t, 954, b.Total)
}

func TestComputeFlatPromo(t *testing.T) {
	rule := &models.PromoRule{Code: "FLAT100", Kind: models.PromoFlat, Value: 100}

	b := pricing.Compute(1000, 1, rule)

	assert.Equal(t, 1000, b.Subtotal)
	assert.Equal(t, 100, b.Discount)
	assert.Equal(t, 54, b.Taxes)
	assert.Equal(t, 954, b.Total)
}

func TestComputeRoundsDiscountAndTaxes(t *testing.T) {
	rule := &models.PromoRule{Code: "SAVE10", Kind: models.PromoPercentage, Value: 10}

	b := pricing.Compute(999, 1, rule)

	assert.Equal(t, 999, b.Subtotal)
	assert.Equal(t, 100, b.Discount) // round(99.9)
	assert.Equal(t, 54, b.Taxes)     // round(899 * 0.06) = round(53.94)
	assert.Equal(t, 953, b.Total)
}

func TestFlatDiscountClampedAtSubtotal(t *testing.T) {
	rule := &models.PromoRule{Code: "BIG", Kind: models.PromoFlat, Value: 5000}

	b := pricing.Compute(999, 1, rule)

	assert.Equal(t, 999, b.Discount)
	assert.Equal(t, 0, b.Taxes)
	assert.Equal(t, 0, b.Total, "total must never go negative")
}

func TestDiscountNilRule(t *testing.T) {
	assert.Equal(t, 0, pricing.Discount(nil, 1000))
}
