package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"wise-backend/internal/assessment"
	"wise-backend/internal/profile"
)

// Service renders stored assessments as clinical PDF reports for the user to
// bring to a provider. It reads rankedConditions, redFlagMessages, and the
// summary verbatim; it never reinterprets them.
type Service struct {
	fontPaths []string
}

func NewService() *Service {
	return &Service{
		// DejaVuSans is bundled in the server image; try the common distro
		// locations.
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

func (s *Service) ClinicalReport(a assessment.Assessment, p *profile.Profile) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF. Please ensure ttf-dejavu is installed. Last error: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}

	// Header
	pdf.Cell(nil, "WISE Clinical Assessment Report")
	pdf.Br(30)

	// Patient info
	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Report date: %s", a.Result.ReportDate))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Generated: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	if p != nil {
		pdf.Cell(nil, fmt.Sprintf("Patient: %s (age %d)", p.Name, p.Age))
		pdf.Br(15)
	}
	pdf.Cell(nil, fmt.Sprintf("Triage level: %s", a.Result.TriageStatus))
	pdf.Br(25)

	// Summary
	if err := s.writeSection(&pdf, "Assessment Summary"); err != nil {
		return nil, err
	}
	if err := s.writeBody(&pdf, a.Result.Summary); err != nil {
		return nil, err
	}
	pdf.Br(10)

	// Ranked differential
	if err := s.writeSection(&pdf, "Possible Conditions"); err != nil {
		return nil, err
	}
	if len(a.Result.RankedConditions) == 0 {
		if err := s.writeBody(&pdf, "- No specific conditions were identified."); err != nil {
			return nil, err
		}
	}
	for _, rc := range a.Result.RankedConditions {
		line := fmt.Sprintf("- %s (%d%% match, %s)", rc.Condition.Name, rc.Probability, rc.Condition.Severity)
		if err := s.writeBody(&pdf, line); err != nil {
			return nil, err
		}
		if rc.Explanation != "" {
			if err := s.writeBody(&pdf, "  "+rc.Explanation); err != nil {
				return nil, err
			}
		}
	}
	pdf.Br(10)

	// Red flags
	if len(a.Result.RedFlagMessages) > 0 {
		if err := s.writeSection(&pdf, "Safety Alerts"); err != nil {
			return nil, err
		}
		for _, msg := range a.Result.RedFlagMessages {
			if err := s.writeBody(&pdf, "- "+msg); err != nil {
				return nil, err
			}
		}
		pdf.Br(10)
	}

	// Provider prep, from the top-ranked condition's advisory text.
	if len(a.Result.RankedConditions) > 0 {
		top := a.Result.RankedConditions[0].Condition
		if len(top.ProviderQuestions) > 0 {
			if err := s.writeSection(&pdf, "Questions for Your Provider"); err != nil {
				return nil, err
			}
			for _, q := range top.ProviderQuestions {
				if err := s.writeBody(&pdf, "- "+q); err != nil {
					return nil, err
				}
			}
			pdf.Br(10)
		}
		if len(top.RelevantTests) > 0 {
			if err := s.writeSection(&pdf, "Tests to Discuss"); err != nil {
				return nil, err
			}
			for _, t := range top.RelevantTests {
				if err := s.writeBody(&pdf, "- "+t); err != nil {
					return nil, err
				}
			}
			pdf.Br(10)
		}
	}

	// Disclaimer footer
	pdf.SetY(800)
	if err := pdf.SetFont("DejaVu", "", 9); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "This report is an educational screening summary, not a diagnosis. A clinician makes the final assessment.")

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Service) writeSection(pdf *gopdf.GoPdf, title string) error {
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, title)
	pdf.Br(15)
	return nil
}

func (s *Service) writeBody(pdf *gopdf.GoPdf, text string) error {
	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return err
	}
	lines, _ := pdf.SplitText(text, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(12)
	}
	return nil
}
