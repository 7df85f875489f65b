package node

import (
	"time"

	"github.com/cloudwego/eino/schema"

	wfmodel "promptforge-api/internal/workflow/model"
)

// UsageFromMessage 从模型响应中提取用量信息
func UsageFromMessage(msg *schema.Message, provider, model string) wfmodel.LLMUsageMeta {
	meta := wfmodel.LLMUsageMeta{
		Provider:    provider,
		Model:       model,
		GeneratedAt: time.Now().UTC(),
	}
	if msg != nil && msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
		meta.PromptTokens = msg.ResponseMeta.Usage.PromptTokens
		meta.CompletionTokens = msg.ResponseMeta.Usage.CompletionTokens
	}
	return meta
}
