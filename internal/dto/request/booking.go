package request

// CreateBookingRequest carries the customer's booking submission. The price
// and the service name snapshot are resolved server-side from the referenced
// catalog row; the client cannot supply them.
type CreateBookingRequest struct {
	BookingType   string  `json:"booking_type" validate:"required,oneof=rental product garage washing pickup"`
	CarID         *string `json:"car_id,omitempty" validate:"omitempty,uuid4"`
	ProductID     *string `json:"product_id,omitempty" validate:"omitempty,uuid4"`
	ServiceID     *string `json:"service_id,omitempty" validate:"omitempty,uuid4"`
	BookingDate   string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime   string  `json:"booking_time,omitempty"`
	Location      string  `json:"location,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
	ContactNumber string  `json:"contact_number,omitempty"`
	CustomerNotes string  `json:"customer_notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=accepted rejected completed"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}
