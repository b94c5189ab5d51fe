package request

type SaveProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity,omitempty"`
	Category      string  `json:"category,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
