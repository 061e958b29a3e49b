package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-booking/internal/booking"
	"ms-booking/internal/logger"
	"ms-booking/internal/models"
	"ms-booking/internal/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
}

type PromoValidator interface {
	Validate(code string, subtotal int) models.PromoValidationResponse
}

type VoucherGenerator interface {
	Generate(booking models.Booking) ([]byte, error)
}

type Handler struct {
	Bookings BookingService
	Promo    PromoValidator
	Voucher  VoucherGenerator
	Logger   *logger.Logger
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Bookings.CreateBooking(r.Context(), req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrMissingFields):
		utils.Error(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, booking.ErrExperienceNotFound):
		utils.Error(w, http.StatusNotFound, "Experience not found")
	case errors.Is(err, booking.ErrSlotNotFound):
		utils.Error(w, http.StatusNotFound, "Slot not found")
	case errors.Is(err, booking.ErrInsufficientAvailability):
		utils.Error(w, http.StatusBadRequest, "Not enough slots available")
	case errors.Is(err, booking.ErrSlotLocked):
		utils.Error(w, http.StatusConflict, "Slot is being booked, try again")
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.Error(w, http.StatusNotFound, "Booking not found")
	case errors.Is(err, booking.ErrAlreadyCancelled):
		utils.Error(w, http.StatusBadRequest, "Booking already cancelled")
	default:
		h.Logger.Error("API", fmt.Sprintf("booking request failed: %v", err))
		utils.Error(w, http.StatusInternalServerError, "Failed to create booking")
	}
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	found, err := h.Bookings.GetBooking(r.Context(), bookingID)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, found)
}

// ListBookings returns the bookings for the email given in the query
// string, newest first.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	bookings, err := h.Bookings.GetBookingsByEmail(r.Context(), email)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, bookings)
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	cancelled, err := h.Bookings.CancelBooking(r.Context(), bookingID)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, cancelled)
}

func (h *Handler) GetVoucher(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	found, err := h.Bookings.GetBooking(r.Context(), bookingID)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	png, err := h.Voucher.Generate(*found)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("generate voucher for %s: %v", bookingID, err))
		utils.Error(w, http.StatusInternalServerError, "Failed to generate voucher")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ValidatePromo is the standalone promo check used by the checkout page
// before the booking is placed. An unknown code is a normal valid=false
// response, not an error.
func (h *Handler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req models.PromoValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Code == "" || req.Subtotal <= 0 {
		utils.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	utils.JSON(w, http.StatusOK, h.Promo.Validate(req.Code, req.Subtotal))
}
