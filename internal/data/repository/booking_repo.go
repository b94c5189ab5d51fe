package repository

import (
	"context"
	"fmt"

	"autohub-service/internal/data/entity"
	"autohub-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAllDetailed(ctx context.Context) ([]*entity.BookingDetail, error)
	FindByUserIDDetailed(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, adminNotes *string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, booking_type, car_id, product_id, service_id,
		                      service_name, booking_date, booking_time, location, total_amount,
		                      status, customer_notes, admin_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.Type,
		booking.CarID,
		booking.ProductID,
		booking.ServiceID,
		booking.ServiceName,
		booking.BookingDate,
		booking.BookingTime,
		booking.Location,
		booking.TotalAmount,
		booking.Status,
		booking.CustomerNotes,
		booking.AdminNotes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, booking_type, car_id, product_id, service_id, service_name,
		       booking_date, booking_time, location, total_amount, status,
		       customer_notes, admin_notes, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Type,
		&booking.CarID,
		&booking.ProductID,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.Location,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CustomerNotes,
		&booking.AdminNotes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

// detailQuery outer-joins profile and catalog display fields. LEFT JOIN keeps
// bookings whose referenced row has since been deleted; those fields scan as nil.
const detailQuery = `
	SELECT b.id, b.user_id, b.booking_type, b.car_id, b.product_id, b.service_id,
	       b.service_name, b.booking_date, b.booking_time, b.location, b.total_amount,
	       b.status, b.customer_notes, b.admin_notes, b.created_at, b.updated_at,
	       p.full_name, p.phone, p.email,
	       c.name, c.model, pr.name, s.name
	FROM bookings b
	LEFT JOIN profiles p ON p.id = b.user_id
	LEFT JOIN cars c ON c.id = b.car_id
	LEFT JOIN products pr ON pr.id = b.product_id
	LEFT JOIN services s ON s.id = b.service_id
`

func (r *bookingRepository) FindAllDetailed(ctx context.Context) ([]*entity.BookingDetail, error) {
	query := detailQuery + ` ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

func (r *bookingRepository) FindByUserIDDetailed(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := detailQuery + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

func scanBookingDetails(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	var details []*entity.BookingDetail
	for rows.Next() {
		var d entity.BookingDetail
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Type,
			&d.CarID,
			&d.ProductID,
			&d.ServiceID,
			&d.ServiceName,
			&d.BookingDate,
			&d.BookingTime,
			&d.Location,
			&d.TotalAmount,
			&d.Status,
			&d.CustomerNotes,
			&d.AdminNotes,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.CustomerName,
			&d.CustomerPhone,
			&d.CustomerEmail,
			&d.CarName,
			&d.CarModel,
			&d.ProductName,
			&d.CatalogName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking detail row: %w", err)
		}
		details = append(details, &d)
	}

	return details, rows.Err()
}

// UpdateStatus applies a transition only when the booking is still pending or
// already carries the target status (idempotent re-apply). Returns false when
// no row matched, so the caller can tell not-found from already-processed.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, adminNotes *string) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $2, admin_notes = $3, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', $2)
	`

	result, err := r.db.Exec(ctx, query, id, status, adminNotes)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update booking status %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
