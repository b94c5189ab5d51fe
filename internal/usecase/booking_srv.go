package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autohub-service/internal/data/entity"
	"autohub-service/internal/data/repository"
	"autohub-service/internal/dto/request"
	"autohub-service/internal/dto/response"
	"autohub-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListAllBookings(ctx context.Context) ([]response.BookingDetailResponse, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	bookingType := entity.BookingType(req.BookingType)

	bookingDate, err := time.ParseInLocation("2006-01-02", req.BookingDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: booking_date must be YYYY-MM-DD", ErrInvalidPayload)
	}

	// Day-truncated local "today"; earlier dates are rejected, today is fine.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if bookingDate.Before(today) {
		return nil, ErrInvalidDate
	}

	var bookingTime *string
	var location *string
	if bookingType == entity.BookingTypeRental {
		// Rentals carry a pickup location instead of a time slot.
		if strings.TrimSpace(req.Location) == "" {
			return nil, fmt.Errorf("%w: pickup location is required for rental bookings", ErrMissingSchedule)
		}
		loc := req.Location
		location = &loc
	} else {
		if strings.TrimSpace(req.BookingTime) == "" {
			return nil, fmt.Errorf("%w: booking date and time are required", ErrMissingSchedule)
		}
		t := req.BookingTime
		bookingTime = &t
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		Type:        bookingType,
		BookingDate: bookingDate,
		BookingTime: bookingTime,
		Location:    location,
		Status:      entity.BookingStatusPending,
	}

	if req.CustomerNotes != "" {
		notes := req.CustomerNotes
		booking.CustomerNotes = &notes
	}

	// Resolve the reference, the price snapshot and the display-name snapshot
	// server-side. The client never supplies total_amount.
	if err := s.resolveReference(ctx, booking, req); err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("booking_type", req.BookingType),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("booking_type", string(bookingType)),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	// Acknowledgement is advisory: a failed insert is logged, never surfaced.
	s.emitNotification(ctx, userID,
		"Booking Submitted Successfully!",
		fmt.Sprintf("Your booking for %s has been submitted and is pending admin approval. You will be notified once it's confirmed.", booking.ServiceName),
	)

	// Best-effort contact backfill from the booking form.
	if req.CustomerName != "" || req.ContactNumber != "" {
		if err := s.repo.Profile.BackfillContact(ctx, userID, req.CustomerName, req.ContactNumber); err != nil {
			s.log.Warn("Failed to backfill profile contact",
				zap.Error(err),
				zap.String("user_id", userID.String()),
			)
		}
	}

	return &response.BookingCreatedResponse{ID: booking.ID.String()}, nil
}

// resolveReference enforces the exactly-one-of rule and fills CarID/ProductID/
// ServiceID, ServiceName and TotalAmount from the referenced catalog row.
func (s *bookingService) resolveReference(ctx context.Context, booking *entity.Booking, req *request.CreateBookingRequest) error {
	refs := 0
	if req.CarID != nil {
		refs++
	}
	if req.ProductID != nil {
		refs++
	}
	if req.ServiceID != nil {
		refs++
	}
	if refs != 1 {
		return fmt.Errorf("%w: exactly one of car_id, product_id, service_id must be set", ErrInvalidPayload)
	}

	switch booking.Type {
	case entity.BookingTypeRental:
		if req.CarID == nil {
			return fmt.Errorf("%w: rental bookings require car_id", ErrInvalidPayload)
		}
		carID, err := uuid.Parse(*req.CarID)
		if err != nil {
			return fmt.Errorf("%w: invalid car_id", ErrInvalidPayload)
		}
		car, err := s.repo.Car.FindByID(ctx, carID)
		if err != nil {
			return fmt.Errorf("resolve car %s: %w", carID.String(), err)
		}
		if car == nil {
			return fmt.Errorf("%w: car %s", ErrNotFound, carID.String())
		}
		booking.CarID = &carID
		booking.ServiceName = strings.TrimSpace(car.Name + " " + car.Model)
		booking.TotalAmount = car.PricePerDay

	case entity.BookingTypeProduct:
		if req.ProductID == nil {
			return fmt.Errorf("%w: product bookings require product_id", ErrInvalidPayload)
		}
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return fmt.Errorf("%w: invalid product_id", ErrInvalidPayload)
		}
		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			return fmt.Errorf("resolve product %s: %w", productID.String(), err)
		}
		if product == nil {
			return fmt.Errorf("%w: product %s", ErrNotFound, productID.String())
		}
		booking.ProductID = &productID
		booking.ServiceName = product.Name
		booking.TotalAmount = product.Price

	default: // garage, washing, pickup
		if req.ServiceID == nil {
			return fmt.Errorf("%w: %s bookings require service_id", ErrInvalidPayload, booking.Type)
		}
		serviceID, err := uuid.Parse(*req.ServiceID)
		if err != nil {
			return fmt.Errorf("%w: invalid service_id", ErrInvalidPayload)
		}
		service, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil {
			return fmt.Errorf("resolve service %s: %w", serviceID.String(), err)
		}
		if service == nil {
			return fmt.Errorf("%w: service %s", ErrNotFound, serviceID.String())
		}
		booking.ServiceID = &serviceID
		booking.ServiceName = service.Name
		booking.TotalAmount = service.Price
	}

	return nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID", ErrInvalidPayload)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListAllBookings(ctx context.Context) ([]response.BookingDetailResponse, error) {
	details, err := s.repo.Booking.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return toDetailResponses(details), nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	details, err := s.repo.Booking.FindByUserIDDetailed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	return toDetailResponses(details), nil
}

func toDetailResponses(details []*entity.BookingDetail) []response.BookingDetailResponse {
	responses := make([]response.BookingDetailResponse, len(details))
	for i, d := range details {
		responses[i] = response.BookingDetailToResponse(d)
	}
	return responses
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID", ErrInvalidPayload)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	status := entity.BookingStatus(req.Status)

	// Guarded update: applies only while the booking is pending, or re-applies
	// the same terminal status (overwriting admin_notes and updated_at).
	// A concurrent admin who lost the race gets ErrAlreadyProcessed instead of
	// silently overwriting the first decision.
	applied, err := s.repo.Booking.UpdateStatus(ctx, id, status, req.AdminNotes)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	if !applied {
		booking, err := s.repo.Booking.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		if booking == nil {
			return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
		return fmt.Errorf("%w: booking is already %s", ErrAlreadyProcessed, booking.Status)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	// Tell the requester what happened to their booking.
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		s.log.Warn("Skipping transition notification, booking unreadable after update",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil
	}

	title, message := transitionNotification(booking)
	s.emitNotification(ctx, booking.UserID, title, message)

	return nil
}

func transitionNotification(booking *entity.Booking) (title, message string) {
	switch booking.Status {
	case entity.BookingStatusAccepted:
		title = "Booking Accepted"
		message = fmt.Sprintf("Good news! Your booking for %s has been accepted.", booking.ServiceName)
	case entity.BookingStatusRejected:
		title = "Booking Rejected"
		message = fmt.Sprintf("Unfortunately your booking for %s has been rejected.", booking.ServiceName)
	default:
		title = "Booking Completed"
		message = fmt.Sprintf("Your booking for %s has been completed. Thank you!", booking.ServiceName)
	}

	if booking.AdminNotes != nil && *booking.AdminNotes != "" {
		message += " Note: " + *booking.AdminNotes
	}

	return title, message
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID", ErrInvalidPayload)
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
		return fmt.Errorf("delete booking: %w", err)
	}

	return nil
}

// emitNotification persists a user-facing event message. Failures are logged
// and swallowed: notifications never roll back the operation that caused them.
func (s *bookingService) emitNotification(ctx context.Context, userID uuid.UUID, title, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		UserID:  userID,
		Title:   title,
		Message: message,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to emit notification",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("title", title),
		)
	}
}
