package booking

import "errors"

var (
	ErrMissingFields            = errors.New("missing required fields")
	ErrExperienceNotFound       = errors.New("experience not found")
	ErrSlotNotFound             = errors.New("slot not found")
	ErrInsufficientAvailability = errors.New("not enough slots available")
	ErrSlotLocked               = errors.New("slot is being booked by someone else")
	ErrBookingNotFound          = errors.New("booking not found")
	ErrAlreadyCancelled         = errors.New("booking already cancelled")
)
