package assessment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"wise-backend/internal/analysis"
	"wise-backend/internal/profile"
)

// Explainer turns a stored result into patient-friendly prose. The result is
// read-only prompt context; the explainer's output is never fed back into the
// engine.
type Explainer interface {
	ExplainResult(ctx context.Context, result analysis.AnalysisResult, userAge int) (string, error)
}

// ReportGenerator renders a stored assessment as a clinical PDF.
type ReportGenerator interface {
	ClinicalReport(a Assessment, p *profile.Profile) ([]byte, error)
}

type Service interface {
	RunAssessment(ctx context.Context, anonymousID string, answers analysis.AnswerSet, reportDate string) (*Assessment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	ListByAnonymousID(ctx context.Context, anonymousID string) ([]Assessment, error)
	ExplainResult(ctx context.Context, id uuid.UUID) (string, error)
	Report(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type service struct {
	repo      Repository
	profiles  profile.Repository
	engine    *analysis.Engine
	explainer Explainer
	reports   ReportGenerator
}

func NewService(repo Repository, profiles profile.Repository, engine *analysis.Engine, explainer Explainer, reports ReportGenerator) Service {
	return &service{
		repo:      repo,
		profiles:  profiles,
		engine:    engine,
		explainer: explainer,
		reports:   reports,
	}
}

// RunAssessment runs the engine over the submitted answers and persists the
// submission together with its result.
func (s *service) RunAssessment(ctx context.Context, anonymousID string, answers analysis.AnswerSet, reportDate string) (*Assessment, error) {
	if reportDate == "" {
		reportDate = time.Now().Format("2006-01-02")
	}

	// The profile is optional context; a missing one only disables the
	// profile-age fallback.
	var prof *profile.Profile
	if anonymousID != "" {
		if p, err := s.profiles.GetByAnonymousID(ctx, anonymousID); err == nil {
			prof = p
		}
	}

	result := s.engine.Analyze(answers, prof, reportDate)

	a := &Assessment{
		ID:           uuid.New(),
		AnonymousID:  anonymousID,
		Answers:      answers,
		Result:       result,
		SelectedDate: reportDate,
		CreatedAt:    time.Now(),
	}
	if prof != nil {
		a.ProfileID = uuid.NullUUID{UUID: prof.ID, Valid: true}
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByAnonymousID(ctx context.Context, anonymousID string) ([]Assessment, error) {
	return s.repo.ListByAnonymousID(ctx, anonymousID, 0)
}

// ExplainResult asks the AI explainer for patient-friendly prose about a
// stored result.
func (s *service) ExplainResult(ctx context.Context, id uuid.UUID) (string, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	age := s.assessmentAge(ctx, a)
	text, err := s.explainer.ExplainResult(ctx, a.Result, age)
	if err != nil {
		return "", fmt.Errorf("explain result: %w", err)
	}
	return text, nil
}

// Report renders the stored assessment as a clinical PDF.
func (s *service) Report(ctx context.Context, id uuid.UUID) ([]byte, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var prof *profile.Profile
	if a.AnonymousID != "" {
		if p, err := s.profiles.GetByAnonymousID(ctx, a.AnonymousID); err == nil {
			prof = p
		}
	}
	return s.reports.ClinicalReport(*a, prof)
}

func (s *service) assessmentAge(ctx context.Context, a *Assessment) int {
	if raw, ok := a.Answers["age_selection"]; ok && len(raw) > 0 {
		if n, err := strconv.Atoi(raw[0]); err == nil && n > 0 {
			return n
		}
	}
	if a.AnonymousID != "" {
		if p, err := s.profiles.GetByAnonymousID(ctx, a.AnonymousID); err == nil && p.Age > 0 {
			return p.Age
		}
	}
	return 0
}
