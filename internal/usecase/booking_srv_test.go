package usecase

import (
	"context"
	"testing"
	"time"

	"autohub-service/internal/data/entity"
	"autohub-service/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestBookingService(t *testing.T) (*mockRepos, *bookingService) {
	t.Helper()

	mocks, repo := newMockRepos()
	svc := NewBookingService(repo, zap.NewNop()).(*bookingService)

	// Pin the clock so date validation is deterministic.
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	}

	return mocks, svc
}

func strPtr(s string) *string {
	return &s
}

func TestCreateBooking_Rental(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	userID := uuid.New()
	carID := uuid.New()

	mocks.car.On("FindByID", mock.Anything, carID).Return(&entity.Car{
		Base:        entity.Base{ID: carID},
		Name:        "Toyota",
		Model:       "Avanza",
		PricePerDay: 350000,
	}, nil)

	var created *entity.Booking
	mocks.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).Return(nil)

	var notified *entity.Notification
	mocks.notification.On("Create", mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notified = args.Get(1).(*entity.Notification)
		}).Return(nil)

	mocks.profile.On("BackfillContact", mock.Anything, userID, "Budi Santoso", "08123456789").Return(nil)

	resp, err := svc.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		BookingType:   "rental",
		CarID:         strPtr(carID.String()),
		BookingDate:   "2026-03-10",
		Location:      "Jakarta Selatan",
		CustomerName:  "Budi Santoso",
		ContactNumber: "08123456789",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, created.ID.String(), resp.ID)

	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.Equal(t, entity.BookingTypeRental, created.Type)
	assert.Equal(t, &carID, created.CarID)
	assert.Nil(t, created.ProductID)
	assert.Nil(t, created.ServiceID)
	assert.Equal(t, "Toyota Avanza", created.ServiceName)
	assert.Equal(t, 350000.0, created.TotalAmount)
	assert.Nil(t, created.BookingTime)
	assert.Equal(t, "Jakarta Selatan", *created.Location)

	assert.Equal(t, userID, notified.UserID)
	assert.Equal(t, "Booking Submitted Successfully!", notified.Title)
	assert.Contains(t, notified.Message, "Toyota Avanza")

	mocks.profile.AssertExpectations(t)
}

func TestCreateBooking_Service(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	userID := uuid.New()
	serviceID := uuid.New()

	mocks.service.On("FindByID", mock.Anything, serviceID).Return(&entity.Service{
		Base:  entity.Base{ID: serviceID},
		Name:  "Premium Wash",
		Price: 75000,
	}, nil)

	var created *entity.Booking
	mocks.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).Return(nil)
	mocks.notification.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		BookingType: "washing",
		ServiceID:   strPtr(serviceID.String()),
		BookingDate: "2026-03-12",
		BookingTime: "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, &serviceID, created.ServiceID)
	assert.Equal(t, "Premium Wash", created.ServiceName)
	assert.Equal(t, 75000.0, created.TotalAmount)
	assert.Equal(t, "10:00", *created.BookingTime)
	assert.Nil(t, created.Location)
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	_, svc := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), uuid.Nil, &request.CreateBookingRequest{
		BookingType: "washing",
		BookingDate: "2026-03-12",
	})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateBooking_PastDate(t *testing.T) {
	_, svc := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "rental",
		CarID:       strPtr(uuid.New().String()),
		BookingDate: "2026-03-09",
		Location:    "Bandung",
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_TodayIsAccepted(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	serviceID := uuid.New()

	mocks.service.On("FindByID", mock.Anything, serviceID).Return(&entity.Service{
		Base: entity.Base{ID: serviceID}, Name: "Engine Check", Price: 150000,
	}, nil)
	mocks.booking.On("Create", mock.Anything, mock.Anything).Return(nil)
	mocks.notification.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "garage",
		ServiceID:   strPtr(serviceID.String()),
		BookingDate: "2026-03-10",
		BookingTime: "16:00",
	})

	assert.NoError(t, err)
}

func TestCreateBooking_RentalRequiresLocation(t *testing.T) {
	_, svc := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "rental",
		CarID:       strPtr(uuid.New().String()),
		BookingDate: "2026-03-12",
		BookingTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrMissingSchedule)
}

func TestCreateBooking_ServiceRequiresTime(t *testing.T) {
	_, svc := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "pickup",
		ServiceID:   strPtr(uuid.New().String()),
		BookingDate: "2026-03-12",
	})

	assert.ErrorIs(t, err, ErrMissingSchedule)
}

func TestCreateBooking_ExactlyOneReference(t *testing.T) {
	_, svc := newTestBookingService(t)

	// No reference at all.
	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "washing",
		BookingDate: "2026-03-12",
		BookingTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	// Two references.
	_, err = svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "washing",
		ServiceID:   strPtr(uuid.New().String()),
		ProductID:   strPtr(uuid.New().String()),
		BookingDate: "2026-03-12",
		BookingTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestCreateBooking_TypeReferenceMismatch(t *testing.T) {
	_, svc := newTestBookingService(t)

	// A rental pointing at a product is rejected before any lookup.
	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "rental",
		ProductID:   strPtr(uuid.New().String()),
		BookingDate: "2026-03-12",
		Location:    "Surabaya",
	})

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestCreateBooking_ReferencedCarMissing(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	carID := uuid.New()

	mocks.car.On("FindByID", mock.Anything, carID).Return(nil, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "rental",
		CarID:       strPtr(carID.String()),
		BookingDate: "2026-03-12",
		Location:    "Medan",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBooking_NotificationFailureIsSwallowed(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	productID := uuid.New()

	mocks.product.On("FindByID", mock.Anything, productID).Return(&entity.Product{
		Base: entity.Base{ID: productID}, Name: "All-Season Tires", Price: 1200000,
	}, nil)
	mocks.booking.On("Create", mock.Anything, mock.Anything).Return(nil)
	mocks.notification.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	resp, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BookingType: "product",
		ProductID:   strPtr(productID.String()),
		BookingDate: "2026-03-12",
		BookingTime: "11:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestUpdateBookingStatus_Accepted(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	bookingID := uuid.New()
	userID := uuid.New()
	notes := strPtr("Please arrive 15 minutes early")

	mocks.booking.On("UpdateStatus", mock.Anything, bookingID, entity.BookingStatusAccepted, notes).
		Return(true, nil)
	mocks.booking.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		Base:        entity.Base{ID: bookingID},
		UserID:      userID,
		ServiceName: "Premium Wash",
		Status:      entity.BookingStatusAccepted,
		AdminNotes:  notes,
	}, nil)

	var notified *entity.Notification
	mocks.notification.On("Create", mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notified = args.Get(1).(*entity.Notification)
		}).Return(nil)

	err := svc.UpdateBookingStatus(context.Background(), bookingID.String(), &request.UpdateBookingStatusRequest{
		Status:     "accepted",
		AdminNotes: notes,
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, notified.UserID)
	assert.Equal(t, "Booking Accepted", notified.Title)
	assert.Contains(t, notified.Message, "Premium Wash")
	assert.Contains(t, notified.Message, "Please arrive 15 minutes early")
}

func TestUpdateBookingStatus_Rejected(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	bookingID := uuid.New()

	mocks.booking.On("UpdateStatus", mock.Anything, bookingID, entity.BookingStatusRejected, (*string)(nil)).
		Return(true, nil)
	mocks.booking.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		Base:        entity.Base{ID: bookingID},
		UserID:      uuid.New(),
		ServiceName: "Toyota Avanza",
		Status:      entity.BookingStatusRejected,
	}, nil)

	var notified *entity.Notification
	mocks.notification.On("Create", mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notified = args.Get(1).(*entity.Notification)
		}).Return(nil)

	err := svc.UpdateBookingStatus(context.Background(), bookingID.String(), &request.UpdateBookingStatusRequest{
		Status: "rejected",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Booking Rejected", notified.Title)
}

func TestUpdateBookingStatus_AlreadyProcessed(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	bookingID := uuid.New()

	mocks.booking.On("UpdateStatus", mock.Anything, bookingID, entity.BookingStatusAccepted, (*string)(nil)).
		Return(false, nil)
	mocks.booking.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		Base:   entity.Base{ID: bookingID},
		Status: entity.BookingStatusRejected,
	}, nil)

	err := svc.UpdateBookingStatus(context.Background(), bookingID.String(), &request.UpdateBookingStatusRequest{
		Status: "accepted",
	})

	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	mocks.notification.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	bookingID := uuid.New()

	mocks.booking.On("UpdateStatus", mock.Anything, bookingID, entity.BookingStatusCompleted, (*string)(nil)).
		Return(false, nil)
	mocks.booking.On("FindByID", mock.Anything, bookingID).Return(nil, nil)

	err := svc.UpdateBookingStatus(context.Background(), bookingID.String(), &request.UpdateBookingStatusRequest{
		Status: "completed",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	_, svc := newTestBookingService(t)

	err := svc.UpdateBookingStatus(context.Background(), uuid.New().String(), &request.UpdateBookingStatusRequest{
		Status: "cancelled",
	})

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestGetBookingByID_InvalidID(t *testing.T) {
	_, svc := newTestBookingService(t)

	_, err := svc.GetBookingByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestListUserBookings_Unauthenticated(t *testing.T) {
	_, svc := newTestBookingService(t)

	_, err := svc.ListUserBookings(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestListUserBookings_ReturnsDetails(t *testing.T) {
	mocks, svc := newTestBookingService(t)
	userID := uuid.New()

	mocks.booking.On("FindByUserIDDetailed", mock.Anything, userID).Return([]*entity.BookingDetail{
		{
			Booking: entity.Booking{
				Base:        entity.Base{ID: uuid.New()},
				UserID:      userID,
				Type:        entity.BookingTypeRental,
				ServiceName: "Toyota Avanza",
				Status:      entity.BookingStatusPending,
			},
			CarName:  strPtr("Toyota"),
			CarModel: strPtr("Avanza"),
		},
	}, nil)

	details, err := svc.ListUserBookings(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, "Toyota", *details[0].CarName)
}
