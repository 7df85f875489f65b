package refine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"promptforge-api/internal/domain/entity"
	wfnode "promptforge-api/internal/workflow/node"
	apperrors "promptforge-api/pkg/errors"
)

// defaultAmbiguity 模型未给出有效模糊度时的取值
const defaultAmbiguity = 0.5

// ParseAnalysis 将分析模型的输出解析为 PromptAnalysis，并补齐缺省字段
func ParseAnalysis(msg *schema.Message, input string) (entity.PromptAnalysis, error) {
	text, ok := wfnode.MessageText(msg)
	if !ok {
		return entity.PromptAnalysis{}, apperrors.ErrAnalysisUnavailable.WithDetail("no text response received from analysis model")
	}

	dec := json.NewDecoder(strings.NewReader(wfnode.ExtractJSONObject(text)))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return entity.PromptAnalysis{}, apperrors.ErrAnalysisUnavailable.WithError(fmt.Errorf("malformed analysis json: %w", err))
	}
	if raw == nil {
		return entity.PromptAnalysis{}, apperrors.ErrAnalysisUnavailable.WithDetail("analysis json is not an object")
	}

	return entity.PromptAnalysis{
		Intent:           stringField(raw, "intent", input),
		Subject:          stringField(raw, "subject", entity.Unspecified),
		Style:            stringField(raw, "style", entity.Unspecified),
		Mood:             stringField(raw, "mood", entity.Unspecified),
		TechnicalDetails: stringsField(raw, "technicalDetails"),
		AmbiguityScore:   ambiguityField(raw),
	}, nil
}

func stringField(raw map[string]any, key, fallback string) string {
	s, ok := raw[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

func stringsField(raw map[string]any, key string) []string {
	out := make([]string, 0)
	items, ok := raw[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func ambiguityField(raw map[string]any) float64 {
	n, ok := raw["ambiguityScore"].(json.Number)
	if !ok {
		return defaultAmbiguity
	}
	f, err := n.Float64()
	if err != nil {
		return defaultAmbiguity
	}
	return entity.ClampAmbiguity(f)
}
