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

type ProductService interface {
	ListActiveProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.SaveProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.SaveProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) ListActiveProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	responses := make([]response.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = response.ProductToResponse(p)
	}

	return responses, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", ErrInvalidPayload)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func applyProductRequest(product *entity.Product, req *request.SaveProductRequest) {
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.Category = req.Category
	product.ImageURL = req.ImageURL
	product.IsActive = req.IsActive == nil || *req.IsActive
}

func (s *productService) CreateProduct(ctx context.Context, req *request.SaveProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyProductRequest(product, req)

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created", zap.String("product_id", product.ID.String()), zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.SaveProductRequest) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", ErrInvalidPayload)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}

	applyProductRequest(product, req)
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("%w: invalid product ID", ErrInvalidPayload)
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}
