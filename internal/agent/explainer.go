package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wise-backend/internal/analysis"
)

const geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models"

const defaultModel = "gemini-2.0-flash-exp"

// GeminiClient explains assessment results in patient-friendly language. The
// AnalysisResult is read-only prompt context; generated text is never fed
// back into the analysis engine.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: geminiAPIURL,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   struct {
		Temperature     float64 `json:"temperature"`
		TopP            float64 `json:"topP"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) ExplainResult(ctx context.Context, result analysis.AnalysisResult, userAge int) (string, error) {
	prompt := buildExplainPrompt(result, userAge)

	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	reqBody.Config.Temperature = 0.7
	reqBody.Config.TopP = 0.9
	reqBody.Config.MaxOutputTokens = 500

	jsonBody, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(body))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func buildExplainPrompt(result analysis.AnalysisResult, userAge int) string {
	var top, others string
	if len(result.RankedConditions) > 0 {
		rc := result.RankedConditions[0]
		top = fmt.Sprintf("%s (%d%% match)", rc.Condition.Name, rc.Probability)
	}
	if len(result.RankedConditions) > 1 {
		names := make([]string, 0, 2)
		for _, rc := range result.RankedConditions[1:] {
			names = append(names, rc.Condition.Name)
			if len(names) == 2 {
				break
			}
		}
		others = strings.Join(names, ", ")
	}

	var b strings.Builder
	b.WriteString("You are a compassionate women's health educator explaining medical assessment results.\n\n")
	b.WriteString("USER'S ASSESSMENT RESULTS:\n")
	fmt.Fprintf(&b, "- Triage Level: %s\n", result.TriageStatus)
	fmt.Fprintf(&b, "- Top Condition: %s\n", top)
	fmt.Fprintf(&b, "- Other Possibilities: %s\n", others)
	fmt.Fprintf(&b, "- Red Flags: %s\n", strings.Join(result.RedFlagMessages, "; "))
	if userAge > 0 {
		fmt.Fprintf(&b, "- User Age: %d\n", userAge)
	} else {
		b.WriteString("- User Age: not provided\n")
	}
	b.WriteString(`
TASK: Explain these results in clear, empathetic language that:
1. Helps the patient understand what these findings mean
2. Explains why this condition is suspected (based on symptoms)
3. Reassures while being honest
4. Clarifies next steps based on triage level
5. Avoids medical jargon or explains terms simply

Keep response under 250 words. Be warm and supportive. Make clear this is
not a diagnosis and a clinician makes the final call.`)
	return b.String()
}
