// Package chain 基于 Eino compose 编排提示词分析与精炼的 LLM 调用
package chain

import (
	"strings"

	openaiopts "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	workflowprompt "promptforge-api/internal/workflow/prompt"
)

var defaultPromptRegistry = workflowprompt.NewRegistry()

// 工作流名称，用于 LLM 指标与追踪标签
const (
	WorkflowAnalysis   = "prompt_analysis"
	WorkflowRefinement = "prompt_refinement"
)

func buildModelOptions(modelName string, temperature *float32, maxTokens *int, jsonObject bool) []model.Option {
	opts := make([]model.Option, 0, 4)
	if temperature != nil {
		opts = append(opts, model.WithTemperature(*temperature))
	}
	if maxTokens != nil {
		opts = append(opts, model.WithMaxTokens(*maxTokens))
	}
	if m := strings.TrimSpace(modelName); m != "" {
		opts = append(opts, model.WithModel(m))
	}
	if jsonObject {
		opts = append(opts, openaiopts.WithExtraFields(map[string]any{
			"response_format": map[string]any{"type": "json_object"},
		}))
	}
	return opts
}
