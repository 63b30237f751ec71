// internal/posts/routes.go
package posts

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	// Protected routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Feed operations - MUST COME BEFORE {id} routes!
	api.HandleFunc("/posts/feed", handler.GetFeed).Methods("GET")
	api.HandleFunc("/posts/explore", handler.GetExplore).Methods("GET")
	api.HandleFunc("/posts/mine", handler.GetMyPosts).Methods("GET")

	api.HandleFunc("/posts", handler.CreatePost).Methods("POST")
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods("GET")

	// Toggles
	api.HandleFunc("/posts/{id}/like", handler.LikePost).Methods("POST")
	api.HandleFunc("/posts/{id}/save", handler.SavePost).Methods("POST")

	// User posts
	api.HandleFunc("/users/{id}/posts", handler.GetUserPosts).Methods("GET")
}
