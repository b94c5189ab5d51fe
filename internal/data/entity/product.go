package entity

type Product struct {
	Base
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	Price         float64 `db:"price"`
	StockQuantity int     `db:"stock_quantity"`
	Category      string  `db:"category"`
	ImageURL      string  `db:"image_url"`
	IsActive      bool    `db:"is_active"`
}
