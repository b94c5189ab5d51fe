package entity

type Car struct {
	Base
	Name         string  `db:"name"`
	Model        string  `db:"model"`
	Year         int     `db:"year"`
	PricePerDay  float64 `db:"price_per_day"`
	Capacity     int     `db:"capacity"`
	Transmission string  `db:"transmission"`
	FuelType     string  `db:"fuel_type"`
	Location     string  `db:"location"`
	ImageURL     string  `db:"image_url"`
	Description  string  `db:"description"`
	IsAvailable  bool    `db:"is_available"`
}
