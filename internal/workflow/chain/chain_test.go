package chain

import (
	"context"
	"errors"
	"strings"
	"testing"

	wfmodel "promptforge-api/internal/workflow/model"
	"promptforge-api/internal/workflow/port/porttest"
	apperrors "promptforge-api/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestAnalysisChain_Invoke(t *testing.T) {
	fake := porttest.NewChatModel(porttest.Reply{Content: `{"subject":"dog"}`})
	factory := &porttest.Factory{Model: fake}
	c := NewAnalysisChain(factory)

	msg, err := c.Invoke(context.Background(), &wfmodel.AnalysisInput{
		Input:     "dog",
		Provider:  "anthropic",
		MaxTokens: intPtr(1024),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != `{"subject":"dog"}` {
		t.Errorf("unexpected content %q", msg.Content)
	}
	if len(fake.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fake.Calls))
	}
	call := fake.Calls[0]
	if len(call.Messages) != 2 || !strings.Contains(call.Messages[1].Content, `"dog"`) {
		t.Errorf("unexpected messages: %+v", call.Messages)
	}
	if call.MaxTokens == nil || *call.MaxTokens != 1024 {
		t.Errorf("expected max tokens 1024, got %v", call.MaxTokens)
	}
	if len(factory.Providers) != 1 || factory.Providers[0] != "anthropic" {
		t.Errorf("unexpected providers %v", factory.Providers)
	}
}

func TestAnalysisChain_ResponseFormatFallback(t *testing.T) {
	fake := porttest.NewChatModel(
		porttest.Reply{Err: errors.New("400 Bad Request: response_format is not supported")},
		porttest.Reply{Content: `{"subject":"dog"}`},
	)
	c := NewAnalysisChain(&porttest.Factory{Model: fake})

	msg, err := c.Invoke(context.Background(), &wfmodel.AnalysisInput{Input: "dog", JSONResponseFormat: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != `{"subject":"dog"}` || fake.CallCount() != 2 {
		t.Errorf("expected fallback retry, got %d calls", fake.CallCount())
	}
}

func TestAnalysisChain_NoFallbackForOtherErrors(t *testing.T) {
	fake := porttest.NewChatModel(porttest.Reply{Err: errors.New("503 overloaded")})
	c := NewAnalysisChain(&porttest.Factory{Model: fake})

	if _, err := c.Invoke(context.Background(), &wfmodel.AnalysisInput{Input: "dog", JSONResponseFormat: true}); err == nil {
		t.Fatal("expected error")
	}
	if fake.CallCount() != 1 {
		t.Errorf("expected a single call, got %d", fake.CallCount())
	}
}

func TestAnalysisChain_CredentialMissingNotWrapped(t *testing.T) {
	c := NewAnalysisChain(&porttest.Factory{Err: apperrors.ErrCredentialMissing})
	_, err := c.Invoke(context.Background(), &wfmodel.AnalysisInput{Input: "dog"})
	if err != apperrors.ErrCredentialMissing {
		t.Errorf("expected credential error unchanged, got %v", err)
	}
}

func TestRefinementChain_Invoke(t *testing.T) {
	fake := porttest.NewChatModel(porttest.Reply{Content: "  a regal golden retriever  "})
	c := NewRefinementChain(&porttest.Factory{Model: fake})

	msg, err := c.Invoke(context.Background(), &wfmodel.RefinementInput{
		Input:    "dog",
		Platform: "midjourney",
		Draft:    "dog --v 6.1",
		Answers:  []wfmodel.QAPair{{Question: "Mood?", Answer: "joyful"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != "  a regal golden retriever  " {
		t.Errorf("chain should return raw content, got %q", msg.Content)
	}
	user := fake.Calls[0].Messages[1].Content
	if !strings.HasPrefix(user, "Refine and enhance this creative prompt for midjourney:\n\n") {
		t.Errorf("unexpected user message %q", user)
	}
	if !strings.Contains(user, "Q: Mood?\nA: joyful") {
		t.Errorf("answers missing from %q", user)
	}
}

func TestBuildRefinementContext(t *testing.T) {
	got := BuildRefinementContext(&wfmodel.RefinementInput{
		Input:    "dog",
		Platform: "kling",
		Draft:    "Scene: dog\nMotion: x",
		Answers: []wfmodel.QAPair{
			{Question: "A?", Answer: "one"},
			{Question: "B?", Answer: "   "},
			{Question: "C?", Answer: "three"},
		},
	})
	want := "Original user input: \"dog\"\n\n" +
		"Target platform: kling\n\n" +
		"Assembled prompt with presets: \"Scene: dog\nMotion: x\"\n\n" +
		"Additional context from user:\nQ: A?\nA: one\n\nQ: C?\nA: three"
	if got != want {
		t.Errorf("unexpected context:\n%s\nwant:\n%s", got, want)
	}

	got = BuildRefinementContext(&wfmodel.RefinementInput{
		Input:    "dog",
		Platform: "kling",
		Answers:  []wfmodel.QAPair{{Question: "A?", Answer: ""}},
	})
	if strings.Contains(got, "Additional context") {
		t.Errorf("blank answers should not add a context section: %q", got)
	}
}
