// Package prompt 将结构化分析结果组装为平台格式的提示词草稿
package prompt

import (
	"strings"

	"promptforge-api/internal/application/platform"
	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
)

// Builder 提示词组装器
type Builder struct {
	registry *platform.Registry
}

// NewBuilder 创建提示词组装器
func NewBuilder(registry *platform.Registry) *Builder {
	return &Builder{registry: registry}
}

// BuildBasePrompt 按固定顺序拼接：主体、意图、风格、情绪、技术细节
// 主体优先，部分平台对靠前的 token 权重更高
func BuildBasePrompt(analysis entity.PromptAnalysis) string {
	parts := make([]string, 0, 4+len(analysis.TechnicalDetails))

	if isSpecified(analysis.Subject) {
		parts = append(parts, analysis.Subject)
	}
	if analysis.Intent != "" && analysis.Intent != analysis.Subject {
		parts = append(parts, analysis.Intent)
	}
	if isSpecified(analysis.Style) {
		parts = append(parts, analysis.Style)
	}
	if isSpecified(analysis.Mood) {
		parts = append(parts, analysis.Mood+" mood")
	}
	for _, detail := range analysis.TechnicalDetails {
		if strings.TrimSpace(detail) != "" {
			parts = append(parts, detail)
		}
	}
	return strings.Join(parts, ", ")
}

func isSpecified(s string) bool {
	return s != "" && s != entity.Unspecified
}

// BuildPrompt 组装基础提示词并交给目标平台适配器格式化
func (b *Builder) BuildPrompt(analysis entity.PromptAnalysis, sel preset.Selection, id entity.PlatformID) (string, error) {
	base := BuildBasePrompt(analysis)
	adapter, err := b.registry.Get(id)
	if err != nil {
		return "", err
	}
	return adapter.FormatPrompt(base, sel), nil
}
