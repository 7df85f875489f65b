package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cloudwego/eino/components/model"

	"promptforge-api/internal/config"
	"promptforge-api/internal/workflow/port/porttest"
	apperrors "promptforge-api/pkg/errors"
)

func newTestFactory(providers map[string]config.ProviderConfig) (*EinoFactory, *int) {
	cfg := &config.Config{LLM: config.LLMConfig{DefaultProvider: "anthropic", Providers: providers}}
	f := NewEinoFactory(cfg)
	builds := 0
	f.build = func(_ context.Context, _ config.ProviderConfig) (model.BaseChatModel, error) {
		builds++
		return porttest.NewChatModel(), nil
	}
	return f, &builds
}

func TestEinoFactory_CredentialMissing(t *testing.T) {
	f, builds := newTestFactory(map[string]config.ProviderConfig{
		"anthropic": {Model: "claude-sonnet-4-20250514"},
	})

	_, err := f.Get(context.Background(), "")
	if !errors.Is(err, apperrors.ErrCredentialMissing) {
		t.Fatalf("expected credential missing, got %v", err)
	}
	if *builds != 0 {
		t.Errorf("no client should be built without a key")
	}
	if f.HasCredential("") {
		t.Error("HasCredential should be false")
	}
}

func TestEinoFactory_CachesClients(t *testing.T) {
	f, builds := newTestFactory(map[string]config.ProviderConfig{
		"anthropic": {APIKey: "k", Model: "claude-sonnet-4-20250514"},
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.Get(context.Background(), "anthropic"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if *builds != 1 {
		t.Errorf("expected a single build, got %d", *builds)
	}
	if f.ModelName("") != "claude-sonnet-4-20250514" {
		t.Errorf("unexpected model name %q", f.ModelName(""))
	}
	if !f.HasCredential("anthropic") {
		t.Error("HasCredential should be true")
	}
}

func TestEinoFactory_UnknownProvider(t *testing.T) {
	f, _ := newTestFactory(map[string]config.ProviderConfig{})
	_, err := f.Get(context.Background(), "mystery")
	if err == nil || errors.Is(err, apperrors.ErrCredentialMissing) {
		t.Errorf("expected a plain config error, got %v", err)
	}
}
