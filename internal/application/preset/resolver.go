package preset

import (
	"fmt"
	"slices"
	"strings"

	"promptforge-api/internal/domain/entity"
	apperrors "promptforge-api/pkg/errors"
)

// Resolver 单次请求的预设解析器：先查目录，再查请求随附的自定义预设
type Resolver struct {
	catalog *Catalog
	custom  map[entity.PresetCategoryID]map[string]entity.Preset
}

// NewResolver 创建解析器，custom 可以为 nil
func NewResolver(catalog *Catalog, custom entity.CustomPresets) *Resolver {
	r := &Resolver{
		catalog: catalog,
		custom:  make(map[entity.PresetCategoryID]map[string]entity.Preset, len(custom)),
	}
	for category, presets := range custom {
		byID := make(map[string]entity.Preset, len(presets))
		for _, p := range presets {
			if _, dup := byID[p.ID]; !dup {
				byID[p.ID] = p
			}
		}
		r.custom[category] = byID
	}
	return r
}

func (r *Resolver) lookup(category entity.PresetCategoryID, id string) (entity.Preset, bool) {
	if r.catalog != nil {
		if p, ok := r.catalog.Lookup(category, id); ok {
			return p, true
		}
	}
	p, ok := r.custom[category][id]
	return p, ok
}

// ResolveFragments 按规范分类顺序与选择顺序收集非画幅分类的提示词片段
// 找不到的 ID 静默跳过
func (r *Resolver) ResolveFragments(sel entity.PresetSelection) []string {
	fragments := make([]string, 0)
	for _, category := range entity.PresetCategoryIDs() {
		if category.UsesValue() {
			continue
		}
		for _, id := range sel[category] {
			p, ok := r.lookup(category, id)
			if !ok {
				continue
			}
			if frag := strings.TrimSpace(p.PromptFragment); frag != "" {
				fragments = append(fragments, frag)
			}
		}
	}
	return fragments
}

// ResolveAspectRatio 返回第一个被平台支持的已选画幅（先到先得，而非最佳匹配）
func (r *Resolver) ResolveAspectRatio(sel entity.PresetSelection, supported []string) (string, bool) {
	for _, id := range sel[entity.CategoryAspectRatios] {
		p, ok := r.lookup(entity.CategoryAspectRatios, id)
		if !ok {
			continue
		}
		if slices.Contains(supported, p.Value) {
			return p.Value, true
		}
	}
	return "", false
}

// Bind 将解析器与一次选择绑定，供平台适配器使用
func (r *Resolver) Bind(sel entity.PresetSelection) Selection {
	return Selection{resolver: r, ids: sel}
}

// Selection 绑定了解析器的预设选择
type Selection struct {
	resolver *Resolver
	ids      entity.PresetSelection
}

// IDs 返回原始选择
func (s Selection) IDs() entity.PresetSelection {
	return s.ids
}

// Fragments 返回已解析的提示词片段
func (s Selection) Fragments() []string {
	if s.resolver == nil {
		return []string{}
	}
	return s.resolver.ResolveFragments(s.ids)
}

// AspectRatio 返回平台支持的首个已选画幅
func (s Selection) AspectRatio(supported []string) (string, bool) {
	if s.resolver == nil {
		return "", false
	}
	return s.resolver.ResolveAspectRatio(s.ids, supported)
}

// NormalizeCustom 校验并规范化请求随附的自定义预设
// 载荷缺失时以 label 兜底；两者皆空视为参数错误
func NormalizeCustom(custom entity.CustomPresets) (entity.CustomPresets, error) {
	out := make(entity.CustomPresets, len(custom))
	for category, presets := range custom {
		if !category.IsValid() {
			continue
		}
		normalized := make([]entity.Preset, 0, len(presets))
		for i, p := range presets {
			p.ID = strings.TrimSpace(p.ID)
			if p.ID == "" {
				return nil, apperrors.ErrInvalidParam.WithDetail(
					fmt.Sprintf("customPresets.%s[%d]: id is required", category, i))
			}
			label := strings.TrimSpace(p.Label)
			if category.UsesValue() {
				p.Value = strings.TrimSpace(p.Value)
				if p.Value == "" {
					p.Value = label
				}
				p.PromptFragment = ""
			} else {
				p.PromptFragment = strings.TrimSpace(p.PromptFragment)
				if p.PromptFragment == "" {
					p.PromptFragment = label
				}
				p.Value = ""
			}
			if p.Payload(category) == "" {
				return nil, apperrors.ErrInvalidParam.WithDetail(
					fmt.Sprintf("customPresets.%s[%d]: %s has no payload", category, i, p.ID))
			}
			normalized = append(normalized, p)
		}
		if len(normalized) > 0 {
			out[category] = normalized
		}
	}
	return out, nil
}
