// internal/stories/handlers.go

package stories

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

// GetRail retrieves the stories rail
func (h *Handler) GetRail(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Rail(), http.StatusOK)
}

// GetStory retrieves a specific story
func (h *Handler) GetStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.service.GetStory(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorResponse(w, "Story not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, story, http.StatusOK)
}

// ViewStory marks a story as viewed
func (h *Handler) ViewStory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	utils.SuccessResponse(w, map[string]interface{}{
		"storyId": id,
		"story":   h.service.MarkViewed(id),
	}, http.StatusOK)
}
