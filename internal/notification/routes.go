// internal/notification/routes.go

package notifications

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	// Protected routes
	api := router.PathPrefix("/api/v1/notifications").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetNotifications).Methods("GET")
	api.HandleFunc("/read-all", handler.MarkAllAsRead).Methods("PUT")
	api.HandleFunc("/{id}/read", handler.MarkAsRead).Methods("PUT")
}
