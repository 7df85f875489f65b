package dto

import (
	"fmt"
	"strings"

	"promptforge-api/internal/application/refine"
	"promptforge-api/internal/domain/entity"
	apperrors "promptforge-api/pkg/errors"
)

// RefineRequest 提示词精炼请求
type RefineRequest struct {
	Input         string                          `json:"input"`
	Platform      string                          `json:"platform"`
	Presets       map[string][]string             `json:"presets,omitempty"`
	CustomPresets map[string][]CustomPresetRequest `json:"customPresets,omitempty"`
	Answers       map[string]string               `json:"answers,omitempty"`
}

// CustomPresetRequest 请求随附的自定义预设
type CustomPresetRequest struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	Description    string `json:"description,omitempty"`
	Value          string `json:"value,omitempty"`
	PromptFragment string `json:"promptFragment,omitempty"`
}

// Validate 边界校验：input 非空白，platform 属于封闭集合
func (r *RefineRequest) Validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return apperrors.ErrInvalidParam.WithDetail("input is required")
	}
	platform := entity.PlatformID(strings.TrimSpace(r.Platform))
	if platform == "" {
		return apperrors.ErrInvalidParam.WithDetail("platform is required")
	}
	if !platform.IsValid() {
		return apperrors.ErrInvalidParam.WithDetail(fmt.Sprintf("unsupported platform: %s", r.Platform))
	}
	return nil
}

// ToRefineRequest 转换为流水线请求
func (r *RefineRequest) ToRefineRequest() refine.Request {
	req := refine.Request{
		Input:    strings.TrimSpace(r.Input),
		Platform: entity.PlatformID(strings.TrimSpace(r.Platform)),
		Answers:  r.Answers,
	}

	if len(r.Presets) > 0 {
		req.Presets = make(entity.PresetSelection, len(r.Presets))
		for category, ids := range r.Presets {
			req.Presets[entity.PresetCategoryID(category)] = ids
		}
	}

	if len(r.CustomPresets) > 0 {
		req.CustomPresets = make(entity.CustomPresets, len(r.CustomPresets))
		for category, items := range r.CustomPresets {
			presets := make([]entity.Preset, 0, len(items))
			for _, item := range items {
				presets = append(presets, entity.Preset{
					ID:             item.ID,
					Label:          item.Label,
					Description:    item.Description,
					Value:          item.Value,
					PromptFragment: item.PromptFragment,
				})
			}
			req.CustomPresets[entity.PresetCategoryID(category)] = presets
		}
	}
	return req
}
