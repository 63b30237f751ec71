// internal/notification/handlers.go

package notifications

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNotifications retrieves the grouped notification list
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.List(), http.StatusOK)
}

// MarkAsRead marks a notification as read
func (h *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.MarkAsRead(mux.Vars(r)["id"]), http.StatusOK)
}

// MarkAllAsRead marks every notification as read
func (h *Handler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.MarkAllAsRead(), http.StatusOK)
}
