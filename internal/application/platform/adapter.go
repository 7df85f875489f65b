package platform

import (
	"strings"

	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
)

// Adapter 平台适配器：平台数据 + 两个纯函数
// 以 PlatformID 为键做变体分发，适配器之间不共享可变状态
type Adapter struct {
	Platform              entity.PlatformID
	SupportedAspectRatios []string

	format func(base string, sel preset.Selection) string
	params func(sel preset.Selection) map[string]any

	// negative 双提示词平台的固定负面提示词
	negative string
}

// FormatPrompt 将基础提示词与已解析片段渲染为平台惯用格式
func (a *Adapter) FormatPrompt(base string, sel preset.Selection) string {
	return a.format(base, sel)
}

// BuildParameters 根据预设选择生成平台参数
func (a *Adapter) BuildParameters(sel preset.Selection) map[string]any {
	return a.params(sel)
}

// NegativePrompt 返回固定负面提示词，不支持的平台返回空串
func (a *Adapter) NegativePrompt() string {
	return a.negative
}

// aspectRatioOr 返回首个受支持的画幅，否则返回平台默认画幅
func (a *Adapter) aspectRatioOr(sel preset.Selection, fallback string) string {
	if ar, ok := sel.AspectRatio(a.SupportedAspectRatios); ok {
		return ar
	}
	return fallback
}

// joinParts 丢弃空白片段后以 sep 连接
func joinParts(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// visual 基础提示词 + 片段，逗号连接
func visual(base string, sel preset.Selection) string {
	return joinParts(", ", append([]string{base}, sel.Fragments()...)...)
}

// sentences 基础提示词 + 片段，句号连接（对话式平台）
func sentences(base string, sel preset.Selection) string {
	return joinParts(". ", append([]string{base}, sel.Fragments()...)...)
}
