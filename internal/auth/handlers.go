// internal/auth/handlers.go

package auth

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
)

// Handler holds dependencies for auth endpoints
type Handler struct {
	service    Service
	middleware *Middleware
}

// NewHandler creates a new auth handler
func NewHandler(service Service, middleware *Middleware) *Handler {
	return &Handler{
		service:    service,
		middleware: middleware,
	}
}

// RegisterRoutes registers all auth routes with the router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	auth := router.PathPrefix("/api/auth").Subrouter()

	// Public routes
	auth.HandleFunc("/submit", h.Submit).Methods("POST")
	auth.HandleFunc("/signin", h.withView(ViewLogin)).Methods("POST")
	auth.HandleFunc("/signup", h.withView(ViewSignup)).Methods("POST")
	auth.HandleFunc("/forgot-password", h.withView(ViewForgot)).Methods("POST")

	// Protected routes
	protected := auth.NewRoute().Subrouter()
	protected.Use(h.middleware.Authenticate)
	protected.HandleFunc("/logout", h.Logout).Methods("POST")
	protected.HandleFunc("/me", h.Me).Methods("GET")
}

// Submit dispatches on the form's view
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	h.dispatch(w, r, &req)
}

func (h *Handler) withView(view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		req.View = view
		h.dispatch(w, r, &req)
	}
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, req *AuthRequest) {
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch req.View {
	case ViewForgot:
		resp, err := h.service.ForgotPassword(r.Context(), req)
		if err != nil {
			h.failed(w, err)
			return
		}
		utils.SuccessResponse(w, resp, http.StatusOK)

	case ViewSignup:
		resp, err := h.service.Signup(r.Context(), req)
		if err != nil {
			h.failed(w, err)
			return
		}
		utils.SuccessResponse(w, resp, http.StatusCreated)

	default:
		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			h.failed(w, err)
			return
		}
		utils.SuccessResponse(w, resp, http.StatusOK)
	}
}

func (h *Handler) failed(w http.ResponseWriter, err error) {
	if err == context.Canceled || err == context.DeadlineExceeded {
		utils.ErrorResponse(w, "Request cancelled", http.StatusRequestTimeout)
		return
	}
	utils.ErrorResponse(w, err.Error(), http.StatusInternalServerError)
}

// Logout ends the session
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	utils.MessageResponse(w, "Logged out successfully", http.StatusOK)
}

// Me returns the session user
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.SuccessResponse(w, user, http.StatusOK)
}
