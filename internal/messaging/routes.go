// internal/messaging/routes.go

package messaging

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
)

// RegisterRoutes registers all messaging routes
func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/messages").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/threads", handler.GetThreads).Methods("GET")
	api.HandleFunc("/threads/{id}", handler.GetThread).Methods("GET")
	api.HandleFunc("/threads/{id}/messages", handler.SendMessage).Methods("POST")
}
