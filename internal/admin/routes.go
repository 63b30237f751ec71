// internal/admin/routes.go

package admin

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/admin").Subrouter()
	api.Use(authMiddleware.Authenticate, authMiddleware.RequireAdmin)

	api.HandleFunc("/stats", handler.GetStats).Methods("GET")
	api.HandleFunc("/users", handler.GetUsers).Methods("GET")
	api.HandleFunc("/users/{id}/ban", handler.ToggleBan).Methods("POST")
	api.HandleFunc("/posts/{id}", handler.DeletePost).Methods("DELETE")
	api.HandleFunc("/reports", handler.GetReports).Methods("GET")
	api.HandleFunc("/reports/{id}/resolve", handler.ResolveReport).Methods("POST")
	api.HandleFunc("/reports/{id}/dismiss", handler.DismissReport).Methods("POST")
}
