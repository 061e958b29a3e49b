package models

type PromoKind string

const (
	PromoPercentage PromoKind = "percentage"
	PromoFlat       PromoKind = "flat"
)

// PromoRule is keyed by its code. For percentage rules Value is 0-100;
// for flat rules it is an absolute deduction in minor units.
type PromoRule struct {
	Code        string    `json:"code"`
	Kind        PromoKind `json:"kind"`
	Value       int       `json:"value"`
	Description string    `json:"description"`
}

type PromoValidationRequest struct {
	Code     string `json:"code"`
	Subtotal int    `json:"subtotal"`
}

type PromoValidationResponse struct {
	Valid    bool   `json:"valid"`
	Discount int    `json:"discount"`
	Message  string `json:"message"`
}
