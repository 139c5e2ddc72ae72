package tracker

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) SaveLog(w http.ResponseWriter, r *http.Request) {
	var l SymptomLog
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if l.AnonymousID == "" || l.LogDate == "" {
		http.Error(w, "Missing anonymous_id or log_date", http.StatusBadRequest)
		return
	}

	if err := h.repo.Save(r.Context(), &l); err != nil {
		http.Error(w, "Failed to save log", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"id": l.ID.String()})
}

func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	anonymousID := r.URL.Query().Get("anonymous_id")
	if anonymousID == "" {
		http.Error(w, "Missing anonymous_id", http.StatusBadRequest)
		return
	}

	logs, err := h.repo.ListByAnonymousID(r.Context(), anonymousID, 0)
	if err != nil {
		http.Error(w, "Failed to list logs", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []SymptomLog{}
	}

	json.NewEncoder(w).Encode(logs)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/tracker/logs", h.SaveLog)
	r.Get("/tracker/logs", h.ListLogs)
}
