// internal/stories/routes.go

package stories

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	// Protected routes
	api := router.PathPrefix("/api/v1/stories").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetRail).Methods("GET")
	api.HandleFunc("/{id}", handler.GetStory).Methods("GET")
	api.HandleFunc("/{id}/view", handler.ViewStory).Methods("POST")
}
