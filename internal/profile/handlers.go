// internal/profile/handlers.go

package profile

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
)

// Handler handles profile HTTP requests
type Handler struct {
	service Service
	maxSize int64
}

// NewHandler creates a new profile handler
func NewHandler(service Service, maxUploadSize int64) *Handler {
	return &Handler{
		service: service,
		maxSize: maxUploadSize,
	}
}

// GetMyProfile gets the current user's profile
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.SuccessResponse(w, h.service.GetMyProfile(r.Context(), user), http.StatusOK)
}

// GetUserProfile gets another user's profile
func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetUserProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorResponse(w, "User not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, profile, http.StatusOK)
}

// UpdateProfile replaces the current user's profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	utils.SuccessResponse(w, h.service.UpdateProfile(r.Context(), user, &req), http.StatusOK)
}

// UploadAvatar handles profile photo upload
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		utils.ErrorResponse(w, "File too large or invalid form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.ErrorResponse(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	updated, err := h.service.UploadAvatar(r.Context(), user, file, header.Filename, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.SuccessResponse(w, updated, http.StatusOK)
}

// SearchUsers matches usernames containing the "q" query parameter
func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.SearchUsers(r.Context(), r.URL.Query().Get("q")), http.StatusOK)
}
