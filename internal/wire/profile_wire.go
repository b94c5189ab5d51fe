package wire

import (
	"autohub-service/internal/adaptor"
	"autohub-service/pkg/middleware"
	"autohub-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/profiles", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Get("/", profileHandler.GetProfiles)
		r.Get("/{id}", profileHandler.GetProfile)
		r.Put("/{id}", profileHandler.UpdateProfile)
		r.Delete("/{id}", profileHandler.DeleteProfile)
	})
}
