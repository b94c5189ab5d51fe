package adaptor

import (
	"encoding/json"
	"net/http"

	"autohub-service/internal/dto/request"
	"autohub-service/internal/usecase"
	"autohub-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CarHandler struct {
	service usecase.CarService
	log     *zap.Logger
}

func NewCarHandler(service usecase.CarService, log *zap.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log.With(zap.String("handler", "car")),
	}
}

// GetCars handles GET /api/cars
func (h *CarHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.ListAvailableCars(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list cars")
		return
	}

	utils.ResponseSuccess(w, "success", cars)
}

// GetCar handles GET /api/cars/{id}
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	car, err := h.service.GetCarByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get car")
		return
	}

	utils.ResponseSuccess(w, "success", car)
}

// CreateCar handles POST /api/cars (admin)
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req request.SaveCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	car, err := h.service.CreateCar(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create car")
		return
	}

	utils.ResponseCreated(w, "Car created", car)
}

// UpdateCar handles PUT /api/cars/{id} (admin)
func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	var req request.SaveCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	car, err := h.service.UpdateCar(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update car")
		return
	}

	utils.ResponseSuccess(w, "Car updated", car)
}

// DeleteCar handles DELETE /api/cars/{id} (admin)
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCar(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete car")
		return
	}

	utils.ResponseSuccess(w, "Car deleted", nil)
}
