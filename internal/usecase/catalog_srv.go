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

// CatalogService manages the workshop service catalog (garage, washing,
// pickup, detailing, engine oil, foglight offerings).
type CatalogService interface {
	ListActiveServices(ctx context.Context) ([]response.ServiceResponse, error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	CreateService(ctx context.Context, req *request.SaveServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID string, req *request.SaveServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListActiveServices(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	responses := make([]response.ServiceResponse, len(services))
	for i, svc := range services {
		responses[i] = response.ServiceToResponse(svc)
	}

	return responses, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID", ErrInvalidPayload)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("%w: service %s", ErrNotFound, serviceID)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func applyServiceRequest(service *entity.Service, req *request.SaveServiceRequest) {
	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.Duration = req.Duration
	service.Type = entity.ServiceType(req.Type)
	service.ImageURL = req.ImageURL
	service.IsActive = req.IsActive == nil || *req.IsActive
}

func (s *catalogService) CreateService(ctx context.Context, req *request.SaveServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyServiceRequest(service, req)

	if err := s.repo.Service.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created", zap.String("service_id", service.ID.String()), zap.String("name", service.Name))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req *request.SaveServiceRequest) (*response.ServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID", ErrInvalidPayload)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("%w: service %s", ErrNotFound, serviceID)
	}

	applyServiceRequest(service, req)
	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return fmt.Errorf("%w: invalid service ID", ErrInvalidPayload)
	}

	// Bookings keep their service_name snapshot, so deleting a catalog entry
	// never rewrites booking history.
	if err := s.repo.Service.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("%w: service %s", ErrNotFound, serviceID)
		}
		return fmt.Errorf("delete service: %w", err)
	}

	return nil
}
