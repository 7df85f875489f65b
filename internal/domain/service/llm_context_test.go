package service

import (
	"context"
	"testing"
)

func TestWorkflowProvider(t *testing.T) {
	ctx := WithWorkflowProvider(context.Background(), " prompt_analysis ", "anthropic")
	if got := WorkflowFromContext(ctx); got != "prompt_analysis" {
		t.Errorf("unexpected workflow %q", got)
	}
	if got := ProviderFromContext(ctx); got != "anthropic" {
		t.Errorf("unexpected provider %q", got)
	}

	empty := WithWorkflowProvider(context.Background(), "", "  ")
	if WorkflowFromContext(empty) != "unknown" || ProviderFromContext(empty) != "unknown" {
		t.Error("blank values should fall back to unknown")
	}
}
