package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a confirmed reservation. Catalog fields are denormalized at
// creation time so later catalog edits never alter historical bookings.
type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID             string    `bun:"id,pk" json:"id"`
	ExperienceID   string    `bun:"experience_id,notnull" json:"experienceId"`
	ExperienceName string    `bun:"experience_name,notnull" json:"experienceName"`
	SlotID         string    `bun:"slot_id,notnull" json:"slotId"`
	Date           string    `bun:"date,notnull" json:"date"`
	Time           string    `bun:"time,notnull" json:"time"`
	Quantity       int       `bun:"quantity,notnull" json:"quantity"`
	FullName       string    `bun:"full_name,notnull" json:"fullName"`
	Email          string    `bun:"email,notnull" json:"email"`
	PromoCode      string    `bun:"promo_code,nullzero" json:"promoCode,omitempty"`
	Subtotal       int       `bun:"subtotal,notnull" json:"subtotal"`
	Discount       int       `bun:"discount,notnull" json:"discount"`
	Taxes          int       `bun:"taxes,notnull" json:"taxes"`
	Total          int       `bun:"total,notnull" json:"total"`
	Status         string    `bun:"status,notnull" json:"status"`
	CreatedAt      time.Time `bun:"created_at,notnull" json:"createdAt"`
}

type BookingRequest struct {
	ExperienceID string `json:"experienceId"`
	SlotID       string `json:"slotId"`
	Quantity     int    `json:"quantity"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PromoCode    string `json:"promoCode,omitempty"`
}
