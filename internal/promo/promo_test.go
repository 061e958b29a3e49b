package promo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-booking/internal/models"
	"ms-booking/internal/promo"
)

func TestLookupKnownCodes(t *testing.T) {
	table := promo.NewTable()

	save10 := table.Lookup("SAVE10")
	assert.NotNil(t, save10)
	assert.Equal(t, models.PromoPercentage, save10.Kind)
	assert.Equal(t, 10, save10.Value)

	flat100 := table.Lookup("FLAT100")
	assert.NotNil(t, flat100)
	assert.Equal(t, models.PromoFlat, flat100.Kind)
	assert.Equal(t, 100, flat100.Value)
}

func TestLookupUnknownCode(t *testing.T) {
	table := promo.NewTable()
	assert.Nil(t, table.Lookup("NOPE"))
	assert.Nil(t, table.Lookup(""))
}

func TestValidateKnownCode(t *testing.T) {
	svc := promo.NewService(promo.NewTable())

	resp := svc.Validate("SAVE10", 1000)

	assert.True(t, resp.Valid)
	assert.Equal(t, 100, resp.Discount)
	assert.Equal(t, "Promo code applied: 10% off", resp.Message)
}

func TestValidateFlatCode(t *testing.T) {
	svc := promo.NewService(promo.NewTable())

	resp := svc.Validate("FLAT100", 1000)

	assert.True(t, resp.Valid)
	assert.Equal(t, 100, resp.Discount)
}

func TestValidateUnknownCode(t *testing.T) {
	svc := promo.NewService(promo.NewTable())

	resp := svc.Validate("EXPIRED50", 1000)

	assert.False(t, resp.Valid)
	assert.Equal(t, 0, resp.Discount)
	assert.Equal(t, "Invalid promo code", resp.Message)
}
