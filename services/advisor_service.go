// services/advisor_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// TextGenerator is the narrow seam to the external model: prompt in, text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FallbackFeedback is shown whenever the external model is unavailable. The
// feature is best-effort; failures never reach the user as errors.
const FallbackFeedback = "Keep sipping water steadily through the day. Small, regular amounts beat large ones at once. Aim to finish your daily goal before the evening."

const maxFeedbackRunes = 600

type hfGenerator struct {
	client   *http.Client
	token    string
	model    string
	endpoint string
}

// NewHFGenerator builds the HuggingFace Inference API client from the
// environment (HUGGINGFACE_TOKEN, optional HF_MODEL).
func NewHFGenerator() TextGenerator {
	model := os.Getenv("HF_MODEL")
	if model == "" {
		model = "google/flan-t5-small"
	}
	return &hfGenerator{
		client: &http.Client{Timeout: 8 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  model,
	}
}

func (g *hfGenerator) url() string {
	if g.endpoint != "" {
		return g.endpoint
	}
	return fmt.Sprintf("https://api-inference.huggingface.co/models/%s", g.model)
}

func (g *hfGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.token == "" {
		return "", fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 128,
			"temperature":    0.3,
		},
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", g.url(), bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")
	// Ensure HF loads cold models instead of returning a "loading" error
	req.Header.Set("x-wait-for-model", "true")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return "", fmt.Errorf("decode hf response error: %w", err)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty response from hf")
	}
	return hfOut[0].GeneratedText, nil
}

type AdvisorService struct {
	gen     TextGenerator
	timeout time.Duration
}

func NewAdvisorService(gen TextGenerator) *AdvisorService {
	return &AdvisorService{gen: gen, timeout: 5 * time.Second}
}

// Feedback produces hydration commentary for today's progress and the recent
// daily series. It never returns an error: any failure falls back to a static
// message so the UI stays responsive.
func (a *AdvisorService) Feedback(ctx context.Context, today *TodayProgress, week []PeriodSummary) string {
	prompt := buildAdvisorPrompt(today, week)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("advisor: falling back: %v", err)
		return FallbackFeedback
	}
	out = sanitizeFeedback(out)
	if out == "" {
		log.Printf("advisor: falling back: empty reply")
		return FallbackFeedback
	}
	return out
}

func buildAdvisorPrompt(today *TodayProgress, week []PeriodSummary) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly hydration coach.\n")
	sb.WriteString(fmt.Sprintf(
		"Today the user drank %.0f ml of water in %d entries against a daily goal of %.0f ml.\n",
		today.ConsumedML, today.Count, today.GoalML,
	))

	if len(week) > 0 {
		sb.WriteString("Daily totals for recent days:\n")
		for _, d := range week {
			sb.WriteString(fmt.Sprintf("- %s: %.0f ml (%d entries)\n", d.Period, d.TotalML, d.Count))
		}
	} else {
		sb.WriteString("There is no earlier history.\n")
	}

	sb.WriteString("\nGive a short, encouraging assessment of their hydration and one practical tip. Two or three sentences, plain text, no lists.")
	return sb.String()
}

// sanitizeFeedback normalizes model output for display: collapses whitespace,
// strips leading bullets and truncates overly long replies.
func sanitizeFeedback(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•* \t"))
		if line != "" {
			parts = append(parts, line)
		}
	}
	out := strings.Join(parts, " ")

	if runes := []rune(out); len(runes) > maxFeedbackRunes {
		out = strings.TrimSpace(string(runes[:maxFeedbackRunes])) + "…"
	}
	return out
}
