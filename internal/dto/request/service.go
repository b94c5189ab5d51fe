package request

type SaveServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Duration    string  `json:"duration,omitempty"`
	Type        string  `json:"type" validate:"required,oneof=garage washing pickup detailing engine_oil foglight"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
