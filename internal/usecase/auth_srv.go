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
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.TokenResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.Profile.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	profile := &entity.Profile{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         entity.RoleUser,
	}

	if err := s.repo.Profile.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info("User registered", zap.String("user_id", profile.ID.String()))

	token, err := utils.GenerateToken(s.config.JWT, profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &response.TokenResponse{Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.repo.Profile.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.config.JWT, profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &response.TokenResponse{Token: token}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	profile, err := s.repo.Profile.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, userID.String())
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	profile, err := s.repo.Profile.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, userID.String())
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}
