package request

type SaveCarRequest struct {
	Name         string  `json:"name" validate:"required"`
	Model        string  `json:"model,omitempty"`
	Year         int     `json:"year,omitempty"`
	PricePerDay  float64 `json:"price_per_day" validate:"required,gt=0"`
	Capacity     int     `json:"capacity,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	FuelType     string  `json:"fuel_type,omitempty"`
	Location     string  `json:"location,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	Description  string  `json:"description,omitempty"`
	IsAvailable  *bool   `json:"is_available,omitempty"`
}
