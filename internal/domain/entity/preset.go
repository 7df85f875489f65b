// Package entity 定义领域实体
package entity

import "strings"

// PresetCategoryID 预设分类标识
type PresetCategoryID string

const (
	CategoryAspectRatios  PresetCategoryID = "aspectRatios"
	CategoryLighting      PresetCategoryID = "lighting"
	CategoryCameras       PresetCategoryID = "cameras"
	CategoryFilmStocks    PresetCategoryID = "filmStocks"
	CategoryAtmospheres   PresetCategoryID = "atmospheres"
	CategoryArtStyles     PresetCategoryID = "artStyles"
	CategoryCompositions  PresetCategoryID = "compositions"
	CategoryColorPalettes PresetCategoryID = "colorPalettes"
)

// PresetCategoryIDs 返回封闭的分类集合（规范顺序）
func PresetCategoryIDs() []PresetCategoryID {
	return []PresetCategoryID{
		CategoryAspectRatios,
		CategoryLighting,
		CategoryCameras,
		CategoryFilmStocks,
		CategoryAtmospheres,
		CategoryArtStyles,
		CategoryCompositions,
		CategoryColorPalettes,
	}
}

// IsValid 检查分类是否属于封闭集合
func (id PresetCategoryID) IsValid() bool {
	for _, c := range PresetCategoryIDs() {
		if c == id {
			return true
		}
	}
	return false
}

// UsesValue 画幅分类使用 Value，其余分类使用 PromptFragment
func (id PresetCategoryID) UsesValue() bool {
	return id == CategoryAspectRatios
}

// Preset 预设选项
type Preset struct {
	ID             string `json:"id" yaml:"id"`
	Label          string `json:"label" yaml:"label"`
	Description    string `json:"description" yaml:"description"`
	Value          string `json:"value,omitempty" yaml:"value,omitempty"`
	PromptFragment string `json:"promptFragment,omitempty" yaml:"prompt_fragment,omitempty"`
}

// Payload 返回分类对应的载荷字段
func (p Preset) Payload(category PresetCategoryID) string {
	if category.UsesValue() {
		return p.Value
	}
	return p.PromptFragment
}

// PresetCategory 预设分类
type PresetCategory struct {
	ID      PresetCategoryID `json:"id" yaml:"id"`
	Name    string           `json:"name" yaml:"name"`
	Icon    string           `json:"icon" yaml:"icon"`
	Presets []Preset         `json:"presets" yaml:"presets"`
}

// PresetSelection 分类 -> 已选预设 ID（保持选择顺序）
type PresetSelection map[PresetCategoryID][]string

// Normalize 去除空白 ID 与重复 ID（保留首次出现），丢弃空分类
func (s PresetSelection) Normalize() PresetSelection {
	out := make(PresetSelection, len(s))
	for category, ids := range s {
		seen := make(map[string]struct{}, len(ids))
		kept := make([]string, 0, len(ids))
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			kept = append(kept, id)
		}
		if len(kept) > 0 {
			out[category] = kept
		}
	}
	return out
}

// Applied 按规范分类顺序与选择顺序展开为 "category:id" 列表
// 包含未能解析的 ID：记录的是用户意图而非解析结果
func (s PresetSelection) Applied() []string {
	applied := make([]string, 0)
	for _, category := range PresetCategoryIDs() {
		for _, id := range s[category] {
			applied = append(applied, string(category)+":"+id)
		}
	}
	return applied
}

// CustomPresets 请求随附的自定义预设
type CustomPresets map[PresetCategoryID][]Preset
