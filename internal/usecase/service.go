package usecase

import (
	"autohub-service/internal/data/repository"
	"autohub-service/pkg/utils"

	"go.uber.org/zap"
)

// Service groups all application services for wiring.
type Service struct {
	Auth         AuthService
	Booking      BookingService
	Notification NotificationService
	Profile      ProfileService
	Car          CarService
	Product      ProductService
	Catalog      CatalogService
}

func NewService(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, logger),
		Booking:      NewBookingService(repo, logger),
		Notification: NewNotificationService(repo, logger),
		Profile:      NewProfileService(repo, logger),
		Car:          NewCarService(repo, logger),
		Product:      NewProductService(repo, logger),
		Catalog:      NewCatalogService(repo, logger),
	}
}
