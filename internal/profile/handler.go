package profile

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

func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if p.AnonymousID == "" {
		http.Error(w, "Missing anonymous_id", http.StatusBadRequest)
		return
	}

	// Upsert against any existing row for this anonymous id.
	if existing, err := h.repo.GetByAnonymousID(r.Context(), p.AnonymousID); err == nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}

	if err := h.repo.Save(r.Context(), &p); err != nil {
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"id": p.ID.String()})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	anonymousID := r.URL.Query().Get("anonymous_id")
	if anonymousID == "" {
		http.Error(w, "Missing anonymous_id", http.StatusBadRequest)
		return
	}

	p, err := h.repo.GetByAnonymousID(r.Context(), anonymousID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(p)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/profile", h.SaveProfile)
	r.Get("/profile", h.GetProfile)
}
