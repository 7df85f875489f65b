package prompt

import (
	"errors"
	"strings"
	"testing"

	"promptforge-api/internal/application/platform"
	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
	apperrors "promptforge-api/pkg/errors"
)

func TestBuildBasePrompt_Order(t *testing.T) {
	got := BuildBasePrompt(entity.PromptAnalysis{
		Intent:           "a portrait of an old sailor",
		Subject:          "old sailor",
		Style:            "oil painting",
		Mood:             "melancholic",
		TechnicalDetails: []string{"close-up", "", "rim light"},
	})
	want := "old sailor, a portrait of an old sailor, oil painting, melancholic mood, close-up, rim light"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildBasePrompt_OmitsPlaceholders(t *testing.T) {
	got := BuildBasePrompt(entity.PromptAnalysis{
		Intent:  "dog",
		Subject: "dog",
		Style:   entity.Unspecified,
		Mood:    entity.Unspecified,
	})
	if got != "dog" {
		t.Errorf("expected %q, got %q", "dog", got)
	}

	got = BuildBasePrompt(entity.PromptAnalysis{
		Intent:  "draw something",
		Subject: entity.Unspecified,
		Style:   "anime",
		Mood:    "",
	})
	if got != "draw something, anime" {
		t.Errorf("unexpected base prompt %q", got)
	}
}

func TestBuilder_BuildPrompt(t *testing.T) {
	registry, err := platform.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	b := NewBuilder(registry)
	sel := preset.NewResolver(preset.MustLoadCatalog(), nil).Bind(entity.PresetSelection{
		entity.CategoryLighting:     {"lt-golden"},
		entity.CategoryAspectRatios: {"ar-3-2"},
	})
	analysis := entity.PromptAnalysis{Intent: "fox", Subject: "fox", Style: "photorealistic", Mood: "calm"}

	got, err := b.BuildPrompt(analysis, sel, entity.PlatformMidjourney)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fox, photorealistic, calm mood, golden hour lighting --v 6.1 --ar 3:2" {
		t.Errorf("unexpected prompt %q", got)
	}

	got, err = b.BuildPrompt(analysis, sel, entity.PlatformStableDiffusion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "Positive:\n(masterpiece:1.2), (best quality:1.2), fox, photorealistic") {
		t.Errorf("unexpected prompt %q", got)
	}

	if _, err := b.BuildPrompt(analysis, sel, "dall-e"); !errors.Is(err, apperrors.ErrUnknownPlatform) {
		t.Errorf("expected unknown platform, got %v", err)
	}
}
