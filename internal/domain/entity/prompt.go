// Package entity 定义领域实体
package entity

import "time"

// Unspecified 分析结果中缺失字段的占位值
const Unspecified = "unspecified"

// PromptAnalysis 对原始输入的结构化分析，仅在单次请求内存在
type PromptAnalysis struct {
	Intent           string   `json:"intent"`
	Subject          string   `json:"subject"`
	Style            string   `json:"style"`
	Mood             string   `json:"mood"`
	TechnicalDetails []string `json:"technicalDetails"`
	AmbiguityScore   float64  `json:"ambiguityScore"`
}

// ClampAmbiguity 将模糊度限制在 [0,1]
func ClampAmbiguity(score float64) float64 {
	switch {
	case score != score: // NaN
		return 0.5
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

// RefinedPromptMetadata 精炼结果元数据
type RefinedPromptMetadata struct {
	OriginalInput       string   `json:"originalInput"`
	PresetsApplied      []string `json:"presetsApplied"`
	RefinementTimestamp string   `json:"refinementTimestamp"`
	ModelUsed           string   `json:"modelUsed"`
}

// RefinedPrompt 精炼结果
type RefinedPrompt struct {
	Platform       PlatformID            `json:"platform"`
	Prompt         string                `json:"prompt"`
	NegativePrompt string                `json:"negativePrompt,omitempty"`
	Parameters     map[string]any        `json:"parameters"`
	Metadata       RefinedPromptMetadata `json:"metadata"`
}

// FormatTimestamp 以 ISO-8601 (UTC, 毫秒精度) 格式化时间
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
