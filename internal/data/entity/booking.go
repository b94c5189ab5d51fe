package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

type BookingType string

const (
	BookingTypeRental  BookingType = "rental"
	BookingTypeProduct BookingType = "product"
	BookingTypeGarage  BookingType = "garage"
	BookingTypeWashing BookingType = "washing"
	BookingTypePickup  BookingType = "pickup"
)

// Booking references exactly one of CarID/ProductID/ServiceID depending on Type.
// The creation service enforces that; the columns themselves are nullable so
// list views can outer-join whichever side is set.
type Booking struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	Type          BookingType   `db:"booking_type"`
	CarID         *uuid.UUID    `db:"car_id"`
	ProductID     *uuid.UUID    `db:"product_id"`
	ServiceID     *uuid.UUID    `db:"service_id"`
	ServiceName   string        `db:"service_name"`
	BookingDate   time.Time     `db:"booking_date"`
	BookingTime   *string       `db:"booking_time"`
	Location      *string       `db:"location"`
	TotalAmount   float64       `db:"total_amount"`
	Status        BookingStatus `db:"status"`
	CustomerNotes *string       `db:"customer_notes"`
	AdminNotes    *string       `db:"admin_notes"`
}

// BookingDetail is a booking row enriched with display fields from the
// referenced profile and catalog rows. Enrichment fields are pointers:
// a deleted related row leaves them nil instead of dropping the booking.
type BookingDetail struct {
	Booking
	CustomerName  *string `db:"customer_name"`
	CustomerPhone *string `db:"customer_phone"`
	CustomerEmail *string `db:"customer_email"`
	CarName       *string `db:"car_name"`
	CarModel      *string `db:"car_model"`
	ProductName   *string `db:"product_name"`
	CatalogName   *string `db:"catalog_name"`
}
