// internal/admin/handlers.go

package admin

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Stats(r.Context()), http.StatusOK)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Users(r.Context(), r.URL.Query().Get("q")), http.StatusOK)
}

func (h *Handler) ToggleBan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	utils.SuccessResponse(w, ActionResponse{ID: id, User: h.service.ToggleBan(r.Context(), id)}, http.StatusOK)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.service.DeletePost(r.Context(), id)
	utils.SuccessResponse(w, ActionResponse{ID: id}, http.StatusOK)
}

func (h *Handler) GetReports(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Reports(r.Context()), http.StatusOK)
}

func (h *Handler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, state.ReportResolved)
}

func (h *Handler) DismissReport(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, state.ReportDismissed)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, status state.ReportStatus) {
	id := mux.Vars(r)["id"]
	utils.SuccessResponse(w, ActionResponse{ID: id, Report: h.service.SetReportStatus(r.Context(), id, status)}, http.StatusOK)
}
