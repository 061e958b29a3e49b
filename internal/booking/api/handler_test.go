package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-booking/internal/booking"
	"ms-booking/internal/booking/api"
	"ms-booking/internal/booking/voucher"
	"ms-booking/internal/logger"
	"ms-booking/internal/models"
	"ms-booking/internal/pricing"
	"ms-booking/internal/promo"
)

// StubBookingService simulates the booking service against a fixed
// catalog: experience "1" with slot "s1-1" (4 seats at 999).
type StubBookingService struct {
	bookings map[string]*models.Booking
	promos   *promo.Table
}

func NewStubBookingService() *StubBookingService {
	return &StubBookingService{
		bookings: make(map[string]*models.Booking),
		promos:   promo.NewTable(),
	}
}

func (s *StubBookingService) CreateBooking(_ context.Context, req models.BookingRequest) (*models.Booking, error) {
	if req.ExperienceID == "" || req.SlotID == "" || req.Quantity <= 0 ||
		req.FullName == "" || req.Email == "" {
		return nil, booking.ErrMissingFields
	}
	if req.ExperienceID != "1" {
		return nil, booking.ErrExperienceNotFound
	}
	if req.SlotID != "s1-1" {
		return nil, booking.ErrSlotNotFound
	}
	if req.Quantity > 4 {
		return nil, booking.ErrInsufficientAvailability
	}

	breakdown := pricing.Compute(999, req.Quantity, s.promos.Lookup(req.PromoCode))
	b := &models.Booking{
		ID:             "b-1",
		ExperienceID:   req.ExperienceID,
		ExperienceName: "Kayaking",
		SlotID:         req.SlotID,
		Date:           "2025-10-22",
		Time:           "07:00 am",
		Quantity:       req.Quantity,
		FullName:       req.FullName,
		Email:          req.Email,
		PromoCode:      req.PromoCode,
		Subtotal:       breakdown.Subtotal,
		Discount:       breakdown.Discount,
		Taxes:          breakdown.Taxes,
		Total:          breakdown.Total,
		Status:         models.BookingStatusConfirmed,
	}
	s.bookings[b.ID] = b
	return b, nil
}

func (s *StubBookingService) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return b, nil
}

func (s *StubBookingService) GetBookingsByEmail(_ context.Context, email string) ([]models.Booking, error) {
	result := []models.Booking{}
	for _, b := range s.bookings {
		if b.Email == email {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (s *StubBookingService) CancelBooking(_ context.Context, id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, booking.ErrAlreadyCancelled
	}
	b.Status = models.BookingStatusCancelled
	return b, nil
}

func setupRouter(svc *StubBookingService) *chi.Mux {
	handler := &api.Handler{
		Bookings: svc,
		Promo:    promo.NewService(promo.NewTable()),
		Voucher:  voucher.NewGenerator("test-secret"),
		Logger:   logger.NewLogger(),
	}

	r := chi.NewRouter()
	r.Post("/api/v1/bookings", handler.CreateBooking)
	r.Get("/api/v1/bookings", handler.ListBookings)
	r.Get("/api/v1/bookings/{bookingId}", handler.GetBooking)
	r.Delete("/api/v1/bookings/{bookingId}", handler.CancelBooking)
	r.Get("/api/v1/bookings/{bookingId}/voucher", handler.GetVoucher)
	r.Post("/api/v1/promo/validate", handler.ValidatePromo)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	rec := postJSON(t, router, "/api/v1/bookings", models.BookingRequest{
		ExperienceID: "1",
		SlotID:       "s1-1",
		Quantity:     2,
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
		PromoCode:    "FLAT100",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Kayaking", created.ExperienceName)
	assert.Equal(t, 1998, created.Subtotal)
	assert.Equal(t, 100, created.Discount)
	assert.Equal(t, 114, created.Taxes) // round(1898 * 0.06)
	assert.Equal(t, 2012, created.Total)
}

func TestCreateBookingEndpointMissingEmail(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	rec := postJSON(t, router, "/api/v1/bookings", models.BookingRequest{
		ExperienceID: "1",
		SlotID:       "s1-1",
		Quantity:     1,
		FullName:     "Asha Rao",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
}

func TestCreateBookingEndpointUnknownExperience(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	rec := postJSON(t, router, "/api/v1/bookings", models.BookingRequest{
		ExperienceID: "404",
		SlotID:       "s1-1",
		Quantity:     1,
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Experience not found"}`, rec.Body.String())
}

func TestCreateBookingEndpointSoldOut(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	rec := postJSON(t, router, "/api/v1/bookings", models.BookingRequest{
		ExperienceID: "1",
		SlotID:       "s1-1",
		Quantity:     9,
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Not enough slots available"}`, rec.Body.String())
}

func TestCreateBookingEndpointInvalidBody(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingEndpoint(t *testing.T) {
	svc := NewStubBookingService()
	router := setupRouter(svc)

	postJSON(t, router, "/api/v1/bookings", models.BookingRequest{
		ExperienceID: "1",
		SlotID:       "s1-1",
		Quantity:     1,
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var found models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Equal(t, "b-1", found.ID)
}

func TestGetBookingEndpointNotFound(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}

func TestCancelBookingEndpoint(t *testing.T) {
	svc := NewStubBookingService()
	router := setupRouter(svc)

	postJSON(t, router, "/api/v1/bookings", models.BookingRequest{
		ExperienceID: "1",
		SlotID:       "s1-1",
		Quantity:     1,
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/b-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cancelled models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cancelled))
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestGetVoucherEndpoint(t *testing.T) {
	svc := NewStubBookingService()
	router := setupRouter(svc)

	postJSON(t, router, "/api/v1/bookings", models.BookingRequest{
		ExperienceID: "1",
		SlotID:       "s1-1",
		Quantity:     1,
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-1/voucher", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestValidatePromoEndpoint(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	rec := postJSON(t, router, "/api/v1/promo/validate", models.PromoValidationRequest{
		Code:     "SAVE10",
		Subtotal: 1000,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PromoValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, 100, resp.Discount)
}

func TestValidatePromoEndpointUnknownCode(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	rec := postJSON(t, router, "/api/v1/promo/validate", models.PromoValidationRequest{
		Code:     "NOPE",
		Subtotal: 1000,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PromoValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, 0, resp.Discount)
	assert.Equal(t, "Invalid promo code", resp.Message)
}

func TestValidatePromoEndpointMissingFields(t *testing.T) {
	router := setupRouter(NewStubBookingService())

	rec := postJSON(t, router, "/api/v1/promo/validate", models.PromoValidationRequest{
		Code: "SAVE10",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
}
