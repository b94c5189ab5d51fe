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

// ProfileHandler is the admin surface over user accounts.
type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// GetProfiles handles GET /api/profiles (admin)
func (h *ProfileHandler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListProfiles(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list profiles")
		return
	}

	utils.ResponseSuccess(w, "success", profiles)
}

// GetProfile handles GET /api/profiles/{id} (admin)
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfile handles PUT /api/profiles/{id} (admin)
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.AdminUpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

// DeleteProfile handles DELETE /api/profiles/{id} (admin)
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProfile(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete profile")
		return
	}

	utils.ResponseSuccess(w, "Profile deleted", nil)
}
