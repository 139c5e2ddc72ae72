package assessment

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wise-backend/internal/analysis"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type RunAssessmentRequest struct {
	AnonymousID string             `json:"anonymous_id"`
	Answers     analysis.AnswerSet `json:"answers"`
	ReportDate  string             `json:"report_date"`
}

type RunAssessmentResponse struct {
	AssessmentID string                  `json:"assessment_id"`
	Result       analysis.AnalysisResult `json:"result"`
}

func (h *Handler) RunAssessment(w http.ResponseWriter, r *http.Request) {
	var req RunAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Answers == nil {
		req.Answers = analysis.AnswerSet{}
	}

	a, err := h.svc.RunAssessment(r.Context(), req.AnonymousID, req.Answers, req.ReportDate)
	if err != nil {
		http.Error(w, "Assessment failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(RunAssessmentResponse{
		AssessmentID: a.ID.String(),
		Result:       a.Result,
	})
}

func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid assessment ID", http.StatusBadRequest)
		return
	}

	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Assessment not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(a)
}

func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	anonymousID := r.URL.Query().Get("anonymous_id")
	if anonymousID == "" {
		http.Error(w, "Missing anonymous_id", http.StatusBadRequest)
		return
	}

	list, err := h.svc.ListByAnonymousID(r.Context(), anonymousID)
	if err != nil {
		http.Error(w, "Failed to list assessments", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Assessment{}
	}

	json.NewEncoder(w).Encode(list)
}

func (h *Handler) ExplainAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid assessment ID", http.StatusBadRequest)
		return
	}

	text, err := h.svc.ExplainResult(r.Context(), id)
	if err != nil {
		http.Error(w, "Explanation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"explanation": text})
}

func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid assessment ID", http.StatusBadRequest)
		return
	}

	pdf, err := h.svc.Report(r.Context(), id)
	if err != nil {
		http.Error(w, "Report generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=wise_report_%s.pdf", id))
	w.Write(pdf)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/assessment", h.RunAssessment)
	r.Get("/assessment", h.ListAssessments)
	r.Get("/assessment/{id}", h.GetAssessment)
	r.Post("/assessment/{id}/explain", h.ExplainAssessment)
	r.Get("/assessment/{id}/report", h.DownloadReport)
}
