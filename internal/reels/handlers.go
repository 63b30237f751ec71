// internal/reels/handlers.go

package reels

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetReels(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.List(), http.StatusOK)
}

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/reels").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetReels).Methods("GET")
}
