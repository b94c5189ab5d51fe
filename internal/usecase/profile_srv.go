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

// ProfileService is the admin surface over user accounts.
type ProfileService interface {
	ListProfiles(ctx context.Context) ([]response.ProfileResponse, error)
	GetProfile(ctx context.Context, profileID string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, profileID string, req *request.AdminUpdateProfileRequest) (*response.ProfileResponse, error)
	DeleteProfile(ctx context.Context, profileID string) error
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) ListProfiles(ctx context.Context) ([]response.ProfileResponse, error) {
	profiles, err := s.repo.Profile.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	responses := make([]response.ProfileResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = response.ProfileToResponse(p)
	}

	return responses, nil
}

func (s *profileService) GetProfile(ctx context.Context, profileID string) (*response.ProfileResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid profile ID", ErrInvalidPayload)
	}

	profile, err := s.repo.Profile.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, profileID)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profileID string, req *request.AdminUpdateProfileRequest) (*response.ProfileResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid profile ID", ErrInvalidPayload)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, utils.FormatValidationErrors(errs))
	}

	profile, err := s.repo.Profile.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, profileID)
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Role != "" {
		profile.Role = entity.UserRole(req.Role)
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated by admin",
		zap.String("profile_id", profileID),
		zap.String("role", string(profile.Role)),
	)

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, profileID string) error {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return fmt.Errorf("%w: invalid profile ID", ErrInvalidPayload)
	}

	if err := s.repo.Profile.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("%w: profile %s", ErrNotFound, profileID)
		}
		return fmt.Errorf("delete profile: %w", err)
	}

	return nil
}
