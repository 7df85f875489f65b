package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestRegistry_AnalysisTemplate(t *testing.T) {
	r := NewRegistry()
	tpl, err := r.ChatTemplate(PromptAnalysisV1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs, err := tpl.Format(context.Background(), map[string]any{"input": "dog"})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != schema.System || !strings.Contains(msgs[0].Content, "ambiguityScore") {
		t.Errorf("unexpected system message: %+v", msgs[0])
	}
	want := "Analyze this creative prompt and return structured JSON:\n\n\"dog\""
	if msgs[1].Role != schema.User || msgs[1].Content != want {
		t.Errorf("unexpected user message: %q", msgs[1].Content)
	}

	again, err := r.ChatTemplate(PromptAnalysisV1)
	if err != nil || again == nil {
		t.Fatalf("cached template lookup failed: %v", err)
	}
}

func TestRegistry_RefinementTemplate(t *testing.T) {
	tpl, err := NewRegistry().ChatTemplate(PromptRefinementV1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msgs, err := tpl.Format(context.Background(), map[string]any{
		"platform":      "midjourney",
		"context_block": "Original user input: \"dog\"",
	})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "Refine and enhance this creative prompt for midjourney:\n\nOriginal user input: \"dog\""
	if msgs[1].Content != want {
		t.Errorf("unexpected user message: %q", msgs[1].Content)
	}
	if !strings.HasPrefix(msgs[0].Content, "You are PromptForge, an elite creative prompt engineering expert.") {
		t.Errorf("unexpected system message: %q", msgs[0].Content)
	}
}

func TestRegistry_UnknownPrompt(t *testing.T) {
	if _, err := NewRegistry().ChatTemplate("nope"); err == nil {
		t.Error("expected error for unknown prompt id")
	}
}
