package promo

import (
	"fmt"
	"ms-booking/internal/models"
	"ms-booking/internal/pricing"
)

// Table is the static promo catalog. Rules are configured once at
// startup and never mutated.
type Table struct {
	rules map[string]models.PromoRule
}

// NewTable returns the storefront's promo table.
func NewTable() *Table {
	return &Table{
		rules: map[string]models.PromoRule{
			"SAVE10": {
				Code:        "SAVE10",
				Kind:        models.PromoPercentage,
				Value:       10,
				Description: "10% off",
			},
			"FLAT100": {
				Code:        "FLAT100",
				Kind:        models.PromoFlat,
				Value:       100,
				Description: "100 off",
			},
		},
	}
}

// Lookup returns the rule for a code, or nil when the code is unknown.
// An unknown code is not an error anywhere in the checkout flow.
func (t *Table) Lookup(code string) *models.PromoRule {
	rule, ok := t.rules[code]
	if !ok {
		return nil
	}
	return &rule
}

// Service answers the standalone promo-validation check. It has no side
// effects and does not bind the discount to any booking; checkout
// re-supplies the code and the discount is re-derived there.
type Service struct {
	table *Table
}

func NewService(table *Table) *Service {
	return &Service{table: table}
}

func (s *Service) Validate(code string, subtotal int) models.PromoValidationResponse {
	rule := s.table.Lookup(code)
	if rule == nil {
		return models.PromoValidationResponse{
			Valid:    false,
			Discount: 0,
			Message:  "Invalid promo code",
		}
	}

	return models.PromoValidationResponse{
		Valid:    true,
		Discount: pricing.Discount(rule, subtotal),
		Message:  fmt.Sprintf("Promo code applied: %s", rule.Description),
	}
}
