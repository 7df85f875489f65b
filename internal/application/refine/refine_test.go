package refine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"

	"promptforge-api/internal/domain/entity"
	apperrors "promptforge-api/pkg/errors"
)

func TestGenerateQuestions_Order(t *testing.T) {
	got := GenerateQuestions(entity.PromptAnalysis{
		Subject:        "a lighthouse",
		Style:          entity.Unspecified,
		Mood:           "noir",
		AmbiguityScore: 0.6,
	})
	if len(got) != 4 {
		t.Fatalf("expected 4 questions, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], `"a lighthouse"`) {
		t.Errorf("first question should quote the subject: %q", got[0])
	}
	if !strings.HasPrefix(got[1], "What visual style") {
		t.Errorf("unexpected second question %q", got[1])
	}
	if !strings.HasPrefix(got[2], "Is there a specific time of day") {
		t.Errorf("unexpected third question %q", got[2])
	}
	if !strings.HasPrefix(got[3], "What will this be used for?") {
		t.Errorf("unexpected last question %q", got[3])
	}
}

func TestGenerateQuestions_Thresholds(t *testing.T) {
	base := entity.PromptAnalysis{Style: "cinematic", Mood: "calm"}

	cases := []struct {
		score float64
		want  int
	}{
		{0.0, 1},
		{0.3, 1},
		{0.31, 2},
		{0.5, 2},
		{0.51, 3},
		{1.0, 3},
	}
	for _, tc := range cases {
		a := base
		a.AmbiguityScore = tc.score
		if got := GenerateQuestions(a); len(got) != tc.want {
			t.Errorf("score %.2f: expected %d questions, got %d", tc.score, tc.want, len(got))
		}
	}
}

func TestGenerateQuestions_FullyAmbiguous(t *testing.T) {
	got := GenerateQuestions(entity.PromptAnalysis{
		Subject:        "dog",
		Style:          entity.Unspecified,
		Mood:           entity.Unspecified,
		AmbiguityScore: 0.9,
	})
	if len(got) != 5 {
		t.Errorf("expected 5 questions, got %d", len(got))
	}
}

func TestClampAmbiguity(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0.4: 0.4, 2: 1, math.Inf(1): 1}
	for in, want := range cases {
		if got := entity.ClampAmbiguity(in); got != want {
			t.Errorf("ClampAmbiguity(%v) = %v, want %v", in, got, want)
		}
	}
	if got := entity.ClampAmbiguity(math.NaN()); got != 0.5 {
		t.Errorf("ClampAmbiguity(NaN) = %v, want 0.5", got)
	}
}

func TestParseAnalysis_Defaults(t *testing.T) {
	a, err := ParseAnalysis(schema.AssistantMessage("```json\n{\"subject\":\"dog\",\"technicalDetails\":[\"4k\",3],\"ambiguityScore\":\"high\"}\n```", nil), "a dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Intent != "a dog" {
		t.Errorf("intent should default to input, got %q", a.Intent)
	}
	if a.Subject != "dog" || a.Style != entity.Unspecified || a.Mood != entity.Unspecified {
		t.Errorf("unexpected fields: %+v", a)
	}
	if len(a.TechnicalDetails) != 1 || a.TechnicalDetails[0] != "4k" {
		t.Errorf("unexpected technical details %v", a.TechnicalDetails)
	}
	if a.AmbiguityScore != 0.5 {
		t.Errorf("expected default ambiguity 0.5, got %v", a.AmbiguityScore)
	}
}

func TestParseAnalysis_ClampsScore(t *testing.T) {
	a, err := ParseAnalysis(schema.AssistantMessage(`{"ambiguityScore": 7}`, nil), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.AmbiguityScore != 1 {
		t.Errorf("expected clamped score 1, got %v", a.AmbiguityScore)
	}
}

func TestParseAnalysis_Malformed(t *testing.T) {
	for name, msg := range map[string]*schema.Message{
		"nil":       nil,
		"empty":     schema.AssistantMessage("   ", nil),
		"prose":     schema.AssistantMessage("I cannot help with that.", nil),
		"truncated": schema.AssistantMessage(`{"subject": "dog"`, nil),
	} {
		_, err := ParseAnalysis(msg, "dog")
		if !errors.Is(err, apperrors.ErrAnalysisUnavailable) {
			t.Errorf("%s: expected analysis unavailable, got %v", name, err)
		}
	}
}
