package response

import (
	"time"

	"autohub-service/internal/data/entity"
)

type BookingCreatedResponse struct {
	ID string `json:"id"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	BookingType   entity.BookingType   `json:"booking_type"`
	CarID         *string              `json:"car_id,omitempty"`
	ProductID     *string              `json:"product_id,omitempty"`
	ServiceID     *string              `json:"service_id,omitempty"`
	ServiceName   string               `json:"service_name"`
	BookingDate   string               `json:"booking_date"`
	BookingTime   *string              `json:"booking_time,omitempty"`
	Location      *string              `json:"location,omitempty"`
	TotalAmount   float64              `json:"total_amount"`
	Status        entity.BookingStatus `json:"status"`
	CustomerNotes *string              `json:"customer_notes,omitempty"`
	AdminNotes    *string              `json:"admin_notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// BookingDetailResponse adds display fields joined from the referenced
// profile and catalog rows. Fields stay null when the related row is gone.
type BookingDetailResponse struct {
	BookingResponse
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	CarName       *string `json:"car_name,omitempty"`
	CarModel      *string `json:"car_model,omitempty"`
	ProductName   *string `json:"product_name,omitempty"`
	CatalogName   *string `json:"catalog_service_name,omitempty"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		UserID:        b.UserID.String(),
		BookingType:   b.Type,
		ServiceName:   b.ServiceName,
		BookingDate:   b.BookingDate.Format("2006-01-02"),
		BookingTime:   b.BookingTime,
		Location:      b.Location,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		CustomerNotes: b.CustomerNotes,
		AdminNotes:    b.AdminNotes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CarID != nil {
		s := b.CarID.String()
		resp.CarID = &s
	}
	if b.ProductID != nil {
		s := b.ProductID.String()
		resp.ProductID = &s
	}
	if b.ServiceID != nil {
		s := b.ServiceID.String()
		resp.ServiceID = &s
	}

	return resp
}

func BookingDetailToResponse(d *entity.BookingDetail) BookingDetailResponse {
	return BookingDetailResponse{
		BookingResponse: BookingToResponse(&d.Booking),
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerEmail:   d.CustomerEmail,
		CarName:         d.CarName,
		CarModel:        d.CarModel,
		ProductName:     d.ProductName,
		CatalogName:     d.CatalogName,
	}
}
