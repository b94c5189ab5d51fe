package repository

import (
	"autohub-service/pkg/database"

	"go.uber.org/zap"
)

// Repository groups every repository behind one handle so services can reach
// related stores (a booking touches profiles, catalogs and notifications).
type Repository struct {
	Booking      BookingRepository
	Notification NotificationRepository
	Profile      ProfileRepository
	Car          CarRepository
	Product      ProductRepository
	Service      ServiceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:      NewBookingRepository(db, log),
		Notification: NewNotificationRepository(db, log),
		Profile:      NewProfileRepository(db, log),
		Car:          NewCarRepository(db, log),
		Product:      NewProductRepository(db, log),
		Service:      NewServiceRepository(db, log),
	}
}
