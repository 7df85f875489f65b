package platform

import (
	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
)

func newFirefly() *Adapter {
	a := &Adapter{
		Platform:              entity.PlatformFirefly,
		SupportedAspectRatios: []string{"1:1", "16:9", "9:16", "4:3", "3:4", "4:5", "3:2"},
		format:                sentences,
	}
	a.params = func(sel preset.Selection) map[string]any {
		return map[string]any{
			"aspect_ratio":     a.aspectRatioOr(sel, "1:1"),
			"content_type":     "art",
			"visual_intensity": "medium",
			"style_strength":   "medium",
			"locale":           "en-US",
		}
	}
	return a
}

func newNanoBanana() *Adapter {
	a := &Adapter{
		Platform:              entity.PlatformNanoBanana,
		SupportedAspectRatios: []string{"1:1", "16:9", "9:16", "4:3", "3:4", "4:5", "3:2"},
		format:                sentences,
	}
	a.params = func(sel preset.Selection) map[string]any {
		return map[string]any{
			"aspect_ratio":              a.aspectRatioOr(sel, "1:1"),
			"model":                     "pro-v2",
			"resolution":                "2048x2048",
			"mode":                      "generate",
			"style_reference":           nil,
			"conversational_refinement": true,
		}
	}
	return a
}

func newGrok() *Adapter {
	a := &Adapter{
		Platform:              entity.PlatformGrok,
		SupportedAspectRatios: []string{"3:2", "2:3", "1:1"},
		format:                visual,
	}
	a.params = func(sel preset.Selection) map[string]any {
		return map[string]any{
			"aspect_ratio":            a.aspectRatioOr(sel, "3:2"),
			"photorealistic_strength": "high",
		}
	}
	return a
}

func newGemini() *Adapter {
	a := &Adapter{
		Platform:              entity.PlatformGemini,
		SupportedAspectRatios: []string{"1:1", "16:9", "9:16", "3:4", "4:3"},
		format:                visual,
	}
	a.params = func(sel preset.Selection) map[string]any {
		return map[string]any{
			"model":             "imagen-3",
			"aspect_ratio":      a.aspectRatioOr(sel, "1:1"),
			"output_format":     "png",
			"safety_filter":     "standard",
			"person_generation": "allow",
		}
	}
	return a
}
