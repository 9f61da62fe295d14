package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func todayFixture() *TodayProgress {
	return &TodayProgress{Date: "2026-03-02", ConsumedML: 1200, GoalML: 2000, Count: 2}
}

func TestFeedbackReturnsModelReply(t *testing.T) {
	svc := NewAdvisorService(&stubGenerator{reply: "Nice pace, keep it up."})
	out := svc.Feedback(context.Background(), todayFixture(), nil)
	assert.Equal(t, "Nice pace, keep it up.", out)
}

func TestFeedbackFallsBackOnError(t *testing.T) {
	svc := NewAdvisorService(&stubGenerator{err: errors.New("model unavailable")})
	out := svc.Feedback(context.Background(), todayFixture(), nil)
	assert.Equal(t, FallbackFeedback, out)
}

func TestFeedbackFallsBackOnBlankReply(t *testing.T) {
	svc := NewAdvisorService(&stubGenerator{reply: "  \n\n  "})
	out := svc.Feedback(context.Background(), todayFixture(), nil)
	assert.Equal(t, FallbackFeedback, out)
}

func TestBuildAdvisorPrompt(t *testing.T) {
	week := []PeriodSummary{
		{Period: "2026-03-01", TotalML: 1800, Count: 3},
		{Period: "2026-03-02", TotalML: 1200, Count: 2},
	}
	prompt := buildAdvisorPrompt(todayFixture(), week)
	assert.Contains(t, prompt, "1200 ml")
	assert.Contains(t, prompt, "goal of 2000 ml")
	assert.Contains(t, prompt, "2026-03-01: 1800 ml (3 entries)")

	prompt = buildAdvisorPrompt(todayFixture(), nil)
	assert.Contains(t, prompt, "no earlier history")
}

func TestSanitizeFeedback(t *testing.T) {
	in := "- Drink more water.\n* Spread it out.\n\n  Keep going!  "
	assert.Equal(t, "Drink more water. Spread it out. Keep going!", sanitizeFeedback(in))

	long := strings.Repeat("a", maxFeedbackRunes+50)
	out := sanitizeFeedback(long)
	assert.Equal(t, maxFeedbackRunes+1, len([]rune(out)))
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestHFGeneratorSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.Header.Get("x-wait-for-model"))
		w.Write([]byte(`[{"generated_text":"Great hydration today."}]`))
	}))
	defer srv.Close()

	g := &hfGenerator{
		client:   &http.Client{Timeout: 2 * time.Second},
		token:    "test-token",
		endpoint: srv.URL,
	}
	out, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Great hydration today.", out)
}

func TestHFGeneratorAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model overloaded"}`))
	}))
	defer srv.Close()

	g := &hfGenerator{
		client:   &http.Client{Timeout: 2 * time.Second},
		token:    "test-token",
		endpoint: srv.URL,
	}
	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestHFGeneratorEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := &hfGenerator{
		client:   &http.Client{Timeout: 2 * time.Second},
		token:    "test-token",
		endpoint: srv.URL,
	}
	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)
}

func TestHFGeneratorRequiresToken(t *testing.T) {
	g := &hfGenerator{client: http.DefaultClient}
	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)
}
