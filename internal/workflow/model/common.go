package model

import "time"

// LLMUsageMeta 单次 LLM 调用的用量信息
type LLMUsageMeta struct {
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	GeneratedAt      time.Time
}
