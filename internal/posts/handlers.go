// internal/posts/handlers.go
package posts

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
)

type Handler struct {
	service *Service
	maxSize int64
}

func NewHandler(service *Service, maxUploadSize int64) *Handler {
	return &Handler{service: service, maxSize: maxUploadSize}
}

// CreatePost accepts JSON or a multipart form with an optional "image" file
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseMultipartForm(h.maxSize); err != nil && err != http.ErrNotMultipart {
			utils.ErrorResponse(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		req.Caption = r.FormValue("caption")
		req.Location = r.FormValue("location")
		req.ImageURL = r.FormValue("imageUrl")

		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			url, err := h.service.UploadImage(file, header.Filename, header.Header.Get("Content-Type"), header.Size)
			if err != nil {
				switch {
				case errors.Is(err, ErrFileTooLarge), errors.Is(err, ErrFileTypeInvalid):
					utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
				default:
					utils.ErrorResponse(w, "Failed to upload image", http.StatusInternalServerError)
				}
				return
			}
			req.ImageURL = url
		}
	}

	post := h.service.Create(r.Context(), user, &req)
	utils.SuccessResponse(w, post, http.StatusCreated)
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Feed(), http.StatusOK)
}

func (h *Handler) GetExplore(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Explore(), http.StatusOK)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorResponse(w, "Post not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, post, http.StatusOK)
}

// LikePost toggles the like. An unknown id is not an error.
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	utils.SuccessResponse(w, ToggleResponse{PostID: id, Post: h.service.ToggleLike(id)}, http.StatusOK)
}

func (h *Handler) SavePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	utils.SuccessResponse(w, ToggleResponse{PostID: id, Post: h.service.ToggleSave(id)}, http.StatusOK)
}

// GetMyPosts backs the profile grid
func (h *Handler) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.SuccessResponse(w, h.service.UserPosts(user.ID), http.StatusOK)
}

func (h *Handler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.UserPosts(mux.Vars(r)["id"]), http.StatusOK)
}
