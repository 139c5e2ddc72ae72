package report

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wise-backend/internal/analysis"
	"wise-backend/internal/assessment"
	"wise-backend/internal/catalog"
	"wise-backend/internal/profile"
)

func fontAvailable(s *Service) bool {
	for _, path := range s.fontPaths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func fixtureAssessment() assessment.Assessment {
	return assessment.Assessment{
		ID:          uuid.New(),
		AnonymousID: "anon-1",
		Result: analysis.AnalysisResult{
			TriageStatus: analysis.TriageSoon,
			RankedConditions: []analysis.RankedCondition{
				{
					Condition: catalog.Condition{
						ID:                "endometriosis_wise",
						Name:              "Endometriosis",
						Severity:          catalog.SeveritySoon,
						ProviderQuestions: []string{"Could my cyclical bowel pain be linked to endometriosis?"},
						RelevantTests:     []string{"Specialized Pelvic MRI"},
					},
					Probability: 78,
					Explanation: "Symptoms: Severe menstrual cramps | Age: 34 | Matched 3 clinical criteria",
				},
			},
			RedFlagMessages: []string{"Heavy bleeding requires an anemia workup (CBC and iron studies)."},
			Summary:         "Your symptoms suggest conditions that should be evaluated soon.",
			ReportDate:      "2026-02-16",
		},
		SelectedDate: "2026-02-16",
	}
}

func TestClinicalReport(t *testing.T) {
	svc := NewService()
	if !fontAvailable(svc) {
		t.Skip("DejaVuSans.ttf not installed")
	}

	prof := &profile.Profile{Name: "Test Patient", Age: 34}
	pdf, err := svc.ClinicalReport(fixtureAssessment(), prof)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output does not look like a PDF")
}

func TestClinicalReport_NoProfile(t *testing.T) {
	svc := NewService()
	if !fontAvailable(svc) {
		t.Skip("DejaVuSans.ttf not installed")
	}

	pdf, err := svc.ClinicalReport(fixtureAssessment(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestClinicalReport_EmptyResult(t *testing.T) {
	svc := NewService()
	if !fontAvailable(svc) {
		t.Skip("DejaVuSans.ttf not installed")
	}

	a := assessment.Assessment{
		ID: uuid.New(),
		Result: analysis.AnalysisResult{
			TriageStatus: analysis.TriageRoutine,
			Summary:      "No specific conditions were identified.",
			ReportDate:   "2026-02-16",
		},
	}
	pdf, err := svc.ClinicalReport(a, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestClinicalReport_MissingFont(t *testing.T) {
	svc := &Service{fontPaths: []string{"/nonexistent/font.ttf"}}

	_, err := svc.ClinicalReport(fixtureAssessment(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font")
}
