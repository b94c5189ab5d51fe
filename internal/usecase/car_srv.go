package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autohub-service/internal/data/entity"
	"autohub-service/internal/data/repository"
	"autohub-service/internal/dto/request"
	"autohub-service/internal/dto/response"
	"autohub-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CarService interface {
	ListAvailableCars(ctx context.Context) ([]response.CarResponse, error)
	GetCarByID(ctx context.Context, carID string) (*response.CarResponse, error)
	CreateCar(ctx context.Context, req *request.SaveCarRequest) (*response.CarResponse, error)
	UpdateCar(ctx context.Context, carID string, req *request.SaveCarRequest) (*response.CarResponse, error)
	DeleteCar(ctx context.Context, carID string) error
}

type carService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCarService(repo *repository.Repository, log *zap.Logger) CarService {
	return &carService{
		repo: repo,
		log:  log.With(zap.String("service", "car")),
	}
}

func (s *carService) ListAvailableCars(ctx context.Context) ([]response.CarResponse, error) {
	cars, err := s.repo.Car.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	responses := make([]response.CarResponse, len(cars))
	for i, c := range cars {
		responses[i] = response.CarToResponse(c)
	}

	return responses, nil
}

func (s *carService) GetCarByID(ctx context.Context, carID string) (*response.CarResponse, error) {
	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid car ID", ErrInvalidPayload)
	}

	car, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	resp := response.CarToResponse(car)
	return &resp, nil
}

func applyCarRequest(car *entity.Car, req *request.SaveCarRequest) {
	car.Name = req.Name
	car.Model = req.Model
	car.Year = req.Year
	car.PricePerDay = req.PricePerDay
	car.Capacity = req.Capacity
	car.Transmission = req.Transmission
	car.FuelType = req.FuelType
	car.Location = req.Location
	car.ImageURL = req.ImageURL
	car.Description = req.Description
	car.IsAvailable = req.IsAvailable == nil || *req.IsAvailable
}

func (s *carService) CreateCar(ctx context.Context, req *request.SaveCarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	car := &entity.Car{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyCarRequest(car, req)

	if err := s.repo.Car.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.log.Info("Car created", zap.String("car_id", car.ID.String()), zap.String("name", car.Name))

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) UpdateCar(ctx context.Context, carID string, req *request.SaveCarRequest) (*response.CarResponse, error) {
	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid car ID", ErrInvalidPayload)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	car, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	applyCarRequest(car, req)
	car.UpdatedAt = time.Now()

	if err := s.repo.Car.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) DeleteCar(ctx context.Context, carID string) error {
	id, err := uuid.Parse(carID)
	if err != nil {
		return fmt.Errorf("%w: invalid car ID", ErrInvalidPayload)
	}

	if err := s.repo.Car.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("%w: car %s", ErrNotFound, carID)
		}
		return fmt.Errorf("delete car: %w", err)
	}

	return nil
}
