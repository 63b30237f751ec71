// internal/profile/routes.go

package profile

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
)

// RegisterRoutes registers profile routes
func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Profile management
	api.HandleFunc("/profile", handler.GetMyProfile).Methods("GET")
	api.HandleFunc("/profile", handler.UpdateProfile).Methods("PUT")
	api.HandleFunc("/profile/avatar", handler.UploadAvatar).Methods("POST")

	// Discovery & Search
	api.HandleFunc("/users/{id}/profile", handler.GetUserProfile).Methods("GET")
	api.HandleFunc("/search/users", handler.SearchUsers).Methods("GET")
}
