package wire

import (
	"autohub-service/internal/adaptor"
	"autohub-service/pkg/middleware"
	"autohub-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All notification routes are scoped to the authenticated caller.
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Get("/", notificationHandler.GetNotifications)
		r.Get("/unread-count", notificationHandler.GetUnreadCount)
		r.Put("/read-all", notificationHandler.MarkAllRead)
		r.Put("/{id}/read", notificationHandler.MarkRead)
		r.Delete("/", notificationHandler.DeleteAll)
	})
}
