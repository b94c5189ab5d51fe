package entity

type ServiceType string

const (
	ServiceTypeGarage    ServiceType = "garage"
	ServiceTypeWashing   ServiceType = "washing"
	ServiceTypePickup    ServiceType = "pickup"
	ServiceTypeDetailing ServiceType = "detailing"
	ServiceTypeEngineOil ServiceType = "engine_oil"
	ServiceTypeFoglight  ServiceType = "foglight"
)

// Service is a catalog entry for garage work, washing packages, pickups and
// the other workshop offerings. Bookings snapshot its name and price at
// creation time, so renaming or deleting a service never rewrites history.
type Service struct {
	Base
	Name        string      `db:"name"`
	Description string      `db:"description"`
	Price       float64     `db:"price"`
	Duration    string      `db:"duration"`
	Type        ServiceType `db:"type"`
	ImageURL    string      `db:"image_url"`
	IsActive    bool        `db:"is_active"`
}
