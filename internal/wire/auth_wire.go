package wire

import (
	"autohub-service/internal/adaptor"
	"autohub-service/pkg/middleware"
	"autohub-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// GET /api/auth/profile - Caller's own profile
		r.Get("/api/auth/profile", authHandler.GetProfile)

		// PUT /api/auth/profile - Update caller's own profile
		r.Put("/api/auth/profile", authHandler.UpdateProfile)
	})
}
