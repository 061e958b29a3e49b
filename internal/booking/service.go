package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ms-booking/internal/logger"
	"ms-booking/internal/models"
	"ms-booking/internal/pricing"
	"ms-booking/internal/promo"
)

type Store interface {
	GetExperienceByID(ctx context.Context, id string) (*models.ExperienceWithSlots, error)
	DecrementSlotAvailability(ctx context.Context, slotID string, quantity int) (bool, error)
	RestoreSlotAvailability(ctx context.Context, slotID string, quantity int) error
	CreateBooking(ctx context.Context, booking models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) error
}

type SlotLock interface {
	Lock(ctx context.Context, slotID, token string) (bool, error)
	Unlock(ctx context.Context, slotID, token string) error
}

type EventPublisher interface {
	PublishBookingCreated(booking models.Booking) error
	PublishBookingCancelled(booking models.Booking) error
}

type Service struct {
	Store  Store
	Lock   SlotLock
	Events EventPublisher
	Promos *promo.Table
	Logger *logger.Logger
}

func NewService(store Store, lock SlotLock, events EventPublisher, promos *promo.Table, log *logger.Logger) *Service {
	return &Service{
		Store:  store,
		Lock:   lock,
		Events: events,
		Promos: promos,
		Logger: log,
	}
}

// CreateBooking runs the checkout sequence: validate, price, take slot
// capacity, append the booking. Validation is fail-fast and no slot
// mutation happens until every check has passed.
func (s *Service) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if req.ExperienceID == "" || req.SlotID == "" || req.Quantity <= 0 ||
		req.FullName == "" || req.Email == "" {
		return nil, ErrMissingFields
	}

	experience, err := s.Store.GetExperienceByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("lookup experience %s: %w", req.ExperienceID, err)
	}

	var slot *models.Slot
	for i := range experience.Slots {
		if experience.Slots[i].ID == req.SlotID {
			slot = &experience.Slots[i]
			break
		}
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	if slot.Available < req.Quantity {
		return nil, ErrInsufficientAvailability
	}

	// Unknown promo codes degrade to zero discount, they are not errors.
	rule := s.Promos.Lookup(req.PromoCode)
	breakdown := pricing.Compute(experience.Price, req.Quantity, rule)

	bookingID := uuid.NewString()

	locked, err := s.Lock.Lock(ctx, slot.ID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("lock slot %s: %w", slot.ID, err)
	}
	if !locked {
		return nil, ErrSlotLocked
	}
	defer func() {
		if err := s.Lock.Unlock(ctx, slot.ID, bookingID); err != nil {
			s.Logger.Warn("BOOKING", fmt.Sprintf("failed to unlock slot %s: %v", slot.ID, err))
		}
	}()

	taken, err := s.Store.DecrementSlotAvailability(ctx, slot.ID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("decrement slot %s: %w", slot.ID, err)
	}
	if !taken {
		return nil, ErrInsufficientAvailability
	}

	booking := models.Booking{
		ID:             bookingID,
		ExperienceID:   experience.ID,
		ExperienceName: experience.Name,
		SlotID:         slot.ID,
		Date:           slot.Date,
		Time:           slot.Time,
		Quantity:       req.Quantity,
		FullName:       req.FullName,
		Email:          req.Email,
		PromoCode:      req.PromoCode,
		Subtotal:       breakdown.Subtotal,
		Discount:       breakdown.Discount,
		Taxes:          breakdown.Taxes,
		Total:          breakdown.Total,
		Status:         models.BookingStatusConfirmed,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Store.CreateBooking(ctx, booking); err != nil {
		// Give the capacity back; the decrement already happened.
		if restoreErr := s.Store.RestoreSlotAvailability(ctx, slot.ID, req.Quantity); restoreErr != nil {
			s.Logger.Error("BOOKING", fmt.Sprintf("failed to restore slot %s after insert error: %v", slot.ID, restoreErr))
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.Logger.LogBooking("CREATE", booking.ID, fmt.Sprintf("%s x%d for %s", booking.ExperienceName, booking.Quantity, booking.Email))

	if err := s.Events.PublishBookingCreated(booking); err != nil {
		s.Logger.Warn("KAFKA", fmt.Sprintf("publish booking created: %v", err))
	}

	return &booking, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Store.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("lookup booking %s: %w", id, err)
	}
	return booking, nil
}

func (s *Service) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return nil, ErrMissingFields
	}
	return s.Store.GetBookingsByEmail(ctx, email)
}

// CancelBooking flips a booking to cancelled and returns its capacity
// to the slot, capped at the slot's total.
func (s *Service) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.Store.UpdateBookingStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", id, err)
	}

	if err := s.Store.RestoreSlotAvailability(ctx, booking.SlotID, booking.Quantity); err != nil {
		s.Logger.Error("BOOKING", fmt.Sprintf("failed to restore slot %s on cancel: %v", booking.SlotID, err))
	}

	booking.Status = models.BookingStatusCancelled
	s.Logger.LogBooking("CANCEL", booking.ID, fmt.Sprintf("released %d seat(s) on slot %s", booking.Quantity, booking.SlotID))

	if err := s.Events.PublishBookingCancelled(*booking); err != nil {
		s.Logger.Warn("KAFKA", fmt.Sprintf("publish booking cancelled: %v", err))
	}

	return booking, nil
}
