package db

import (
	"context"

	"github.com/uptrace/bun"

	"ms-booking/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- EXPERIENCES ----------------

// ListExperiences returns catalog summaries for the listing page. Slot
// detail is never included here.
func (d *DB) ListExperiences(ctx context.Context) ([]models.ExperienceSummary, error) {
	var experiences []models.Experience
	err := d.Bun.NewSelect().
		Model(&experiences).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ExperienceSummary, len(experiences))
	for i, exp := range experiences {
		summaries[i] = exp.Summary()
	}
	return summaries, nil
}

// GetExperienceByID returns one experience together with its full slot
// sequence. The caller sees sql.ErrNoRows when the id is unknown.
func (d *DB) GetExperienceByID(ctx context.Context, id string) (*models.ExperienceWithSlots, error) {
	var experience models.Experience
	err := d.Bun.NewSelect().
		Model(&experience).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	var slots []models.Slot
	err = d.Bun.NewSelect().
		Model(&slots).
		Where("experience_id = ?", id).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.Slot{}
	}

	return &models.ExperienceWithSlots{
		Experience: experience,
		Slots:      slots,
	}, nil
}

// ---------------- SLOTS ----------------

// DecrementSlotAvailability takes quantity units from a slot in place.
// The WHERE guard keeps the available counter non-negative even when two
// bookings race; it reports false when the slot lacks capacity.
func (d *DB) DecrementSlotAvailability(ctx context.Context, slotID string, quantity int) (bool, error) {
	res, err := d.Bun.NewUpdate().
		Model((*models.Slot)(nil)).
		Set("available = available - ?", quantity).
		Where("id = ? AND available >= ?", slotID, quantity).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// RestoreSlotAvailability returns quantity units to a slot, capped at
// the slot's fixed capacity.
func (d *DB) RestoreSlotAvailability(ctx context.Context, slotID string, quantity int) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Slot)(nil)).
		Set("available = MIN(available + ?, total)", quantity).
		Where("id = ?", slotID).
		Exec(ctx)
	return err
}

// ---------------- BOOKINGS ----------------

// CreateBooking appends a booking record. Bookings are never updated
// apart from their status, and never deleted.
func (d *DB) CreateBooking(ctx context.Context, booking models.Booking) error {
	_, err := d.Bun.NewInsert().Model(&booking).Exec(ctx)
	return err
}

func (d *DB) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (d *DB) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("email = ?", email).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// UpdateBookingStatus flips a booking's status (confirmed → cancelled).
func (d *DB) UpdateBookingStatus(ctx context.Context, id, status string) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Booking)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
