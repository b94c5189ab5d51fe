package response

import (
	"time"

	"autohub-service/internal/data/entity"
)

type CarResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	PricePerDay  float64   `json:"price_per_day"`
	Capacity     int       `json:"capacity"`
	Transmission string    `json:"transmission"`
	FuelType     string    `json:"fuel_type"`
	Location     string    `json:"location"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Duration    string             `json:"duration"`
	Type        entity.ServiceType `json:"type"`
	ImageURL    string             `json:"image_url"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
}

func CarToResponse(c *entity.Car) CarResponse {
	return CarResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Model:        c.Model,
		Year:         c.Year,
		PricePerDay:  c.PricePerDay,
		Capacity:     c.Capacity,
		Transmission: c.Transmission,
		FuelType:     c.FuelType,
		Location:     c.Location,
		ImageURL:     c.ImageURL,
		Description:  c.Description,
		IsAvailable:  c.IsAvailable,
		CreatedAt:    c.CreatedAt,
	}
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Type:        s.Type,
		ImageURL:    s.ImageURL,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}
