package adaptor

import (
	"errors"
	"net/http"

	"autohub-service/internal/usecase"
	"autohub-service/pkg/utils"

	"go.uber.org/zap"
)

// Handler groups all HTTP handlers for wiring.
type Handler struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
	Profile      *ProfileHandler
	Car          *CarHandler
	Product      *ProductHandler
	Catalog      *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Profile:      NewProfileHandler(service.Profile, log),
		Car:          NewCarHandler(service.Car, log),
		Product:      NewProductHandler(service.Product, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
	}
}

// handleServiceError maps domain errors to HTTP responses. Anything that is
// not a known domain error is a server fault and gets a generic 500 so
// storage details never leak to the client.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidPayload),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrMissingSchedule):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyProcessed),
		errors.Is(err, usecase.ErrEmailTaken):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
