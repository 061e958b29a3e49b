package pricing

import (
	"math"

	"ms-booking/internal/models"
)

// TaxRate is applied to the post-discount amount.
const TaxRate = 0.06

// Breakdown carries every computed amount for a checkout, in the same
// integer minor units as the catalog prices.
type Breakdown struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Taxes    int `json:"taxes"`
	Total    int `json:"total"`
}

// Discount returns the deduction a promo rule yields on a subtotal.
// A nil rule yields zero. The result is clamped to the subtotal so a
// flat rule larger than the cart can never push the total negative.
func Discount(rule *models.PromoRule, subtotal int) int {
	if rule == nil {
		return 0
	}

	var discount int
	switch rule.Kind {
	case models.PromoPercentage:
		discount = int(math.Round(float64(subtotal) * float64(rule.Value) / 100))
	case models.PromoFlat:
		discount = rule.Value
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// Compute builds the full price breakdown for a booking.
func Compute(unitPrice, quantity int, rule *models.PromoRule) Breakdown {
	subtotal := unitPrice * quantity
	discount := Discount(rule, subtotal)
	taxes := int(math.Round(float64(subtotal-discount) * TaxRate))

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Taxes:    taxes,
		Total:    subtotal - discount + taxes,
	}
}
