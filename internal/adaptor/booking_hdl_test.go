package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"autohub-service/internal/dto/request"
	"autohub-service/internal/dto/response"
	"autohub-service/internal/usecase"
	"autohub-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingCreatedResponse), args.Error(1)
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) ListAllBookings(ctx context.Context) ([]response.BookingDetailResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingDetailResponse), args.Error(1)
}

func (m *MockBookingService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingDetailResponse), args.Error(1)
}

func (m *MockBookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	args := m.Called(ctx, bookingID, req)
	return args.Error(0)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func newBookingRequest(t *testing.T, method, target string, body any, userID uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if userID != uuid.Nil {
		req = req.WithContext(utils.SetUserContext(req.Context(), userID, "user"))
	}
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var envelope utils.Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestCreateBookingHandler(t *testing.T) {
	service := new(MockBookingService)
	handler := NewBookingHandler(service, zap.NewNop())
	userID := uuid.New()
	bookingID := uuid.New().String()

	service.On("CreateBooking", mock.Anything, userID, mock.AnythingOfType("*request.CreateBookingRequest")).
		Return(&response.BookingCreatedResponse{ID: bookingID}, nil)

	req := newBookingRequest(t, http.MethodPost, "/api/bookings", request.CreateBookingRequest{
		BookingType: "washing",
		ServiceID:   strPtr(uuid.New().String()),
		BookingDate: "2026-03-12",
		BookingTime: "10:00",
	}, userID)

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.Equal(t, bookingID, envelope.Data.(map[string]any)["id"])
}

func TestCreateBookingHandler_NoAuthContext(t *testing.T) {
	handler := NewBookingHandler(new(MockBookingService), zap.NewNop())

	req := newBookingRequest(t, http.MethodPost, "/api/bookings", request.CreateBookingRequest{}, uuid.Nil)

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandler_InvalidBody(t *testing.T) {
	handler := NewBookingHandler(new(MockBookingService), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{broken"))
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "user"))

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandler_ValidationFailure(t *testing.T) {
	handler := NewBookingHandler(new(MockBookingService), zap.NewNop())

	// booking_type missing entirely.
	req := newBookingRequest(t, http.MethodPost, "/api/bookings", map[string]string{
		"booking_date": "2026-03-12",
	}, uuid.New())

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
	assert.NotNil(t, envelope.Errors)
}

func TestUpdateBookingStatusHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"already processed", fmt.Errorf("wrapped: %w", usecase.ErrAlreadyProcessed), http.StatusConflict},
		{"not found", fmt.Errorf("wrapped: %w", usecase.ErrNotFound), http.StatusNotFound},
		{"invalid payload", fmt.Errorf("wrapped: %w", usecase.ErrInvalidPayload), http.StatusBadRequest},
		{"storage failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(MockBookingService)
			handler := NewBookingHandler(service, zap.NewNop())

			service.On("UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything).Return(tc.err)

			req := newBookingRequest(t, http.MethodPut, "/api/bookings/abc", request.UpdateBookingStatusRequest{
				Status: "accepted",
			}, uuid.New())

			rec := httptest.NewRecorder()
			handler.UpdateBookingStatus(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestUpdateBookingStatusHandler_InvalidStatusValue(t *testing.T) {
	service := new(MockBookingService)
	handler := NewBookingHandler(service, zap.NewNop())

	req := newBookingRequest(t, http.MethodPut, "/api/bookings/abc", request.UpdateBookingStatusRequest{
		Status: "cancelled",
	}, uuid.New())

	rec := httptest.NewRecorder()
	handler.UpdateBookingStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUserBookingsHandler(t *testing.T) {
	service := new(MockBookingService)
	handler := NewBookingHandler(service, zap.NewNop())
	userID := uuid.New()

	service.On("ListUserBookings", mock.Anything, userID).Return([]response.BookingDetailResponse{}, nil)

	req := newBookingRequest(t, http.MethodGet, "/api/user/bookings", nil, userID)

	rec := httptest.NewRecorder()
	handler.GetUserBookings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func strPtr(s string) *string {
	return &s
}
