// internal/caption/handlers.go

package caption

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
)

type Handler struct {
	generator *Generator
}

func NewHandler(generator *Generator) *Handler {
	return &Handler{generator: generator}
}

// Generate returns a suggested caption
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	text, err := h.generator.Generate(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredential):
			utils.ErrorResponse(w, err.Error(), http.StatusServiceUnavailable)
		case errors.Is(err, ErrBusy):
			utils.ErrorResponse(w, err.Error(), http.StatusConflict)
		default:
			utils.ErrorResponse(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	utils.SuccessResponse(w, map[string]string{"caption": text}, http.StatusOK)
}

// Status reports whether a caption is being generated
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, map[string]bool{"busy": h.generator.Busy()}, http.StatusOK)
}

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/caption").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.Generate).Methods("POST")
	api.HandleFunc("/status", handler.Status).Methods("GET")
}
