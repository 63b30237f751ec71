// internal/messaging/handlers.go

package messaging

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetThreads lists conversations with their counterparts
func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.ListThreads(r.Context()), http.StatusOK)
}

// GetThread opens a conversation and marks it read
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.service.OpenThread(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorResponse(w, "Thread not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, thread, http.StatusOK)
}

// SendMessage appends a message to a conversation
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SendMessageRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := h.service.Send(r.Context(), user, mux.Vars(r)["id"], &req)
	utils.SuccessResponse(w, resp, http.StatusOK)
}
