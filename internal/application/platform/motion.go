package platform

import (
	"strings"

	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
)

// 视频平台的结构化块：只有第一行随输入变化，其余为固定的镜头语言
const (
	runwayMotionLine = "[Motion] Smooth, cinematic motion with natural movement"
	runwayCameraLine = "[Camera] Slow dolly forward with subtle parallax"

	klingMotionLine = "Motion: Fluid natural movement, smooth transitions"
	klingCameraLine = "Camera: Cinematic camera work with gradual panning"

	veo3CameraLine = "[Camera] Cinematic camera movement at 24fps"
	veo3AudioLine  = "[Audio] Ambient sound design matching the visual mood"
)

func newRunway() *Adapter {
	a := &Adapter{
		Platform:              entity.PlatformRunway,
		SupportedAspectRatios: []string{"16:9", "9:16", "1:1", "2.39:1"},
	}
	a.format = func(base string, sel preset.Selection) string {
		return strings.Join([]string{
			"[Visual] " + visual(base, sel),
			runwayMotionLine,
			runwayCameraLine,
		}, "\n")
	}
	a.params = func(sel preset.Selection) map[string]any {
		return map[string]any{
			"aspect_ratio":     a.aspectRatioOr(sel, "16:9"),
			"duration":         "10s",
			"motion_intensity": "medium",
			"interpolation":    true,
		}
	}
	return a
}

func newKling() *Adapter {
	a := &Adapter{
		Platform:              entity.PlatformKling,
		SupportedAspectRatios: []string{"16:9", "9:16", "1:1"},
	}
	a.format = func(base string, sel preset.Selection) string {
		return strings.Join([]string{
			"Scene: " + visual(base, sel),
			klingMotionLine,
			klingCameraLine,
		}, "\n")
	}
	a.params = func(sel preset.Selection) map[string]any {
		return map[string]any{
			"aspect_ratio":   a.aspectRatioOr(sel, "16:9"),
			"duration":       "5s",
			"mode":           "standard",
			"creativity":     0.5,
			"camera_control": "auto",
		}
	}
	return a
}

func newVeo3() *Adapter {
	a := &Adapter{
		Platform:              entity.PlatformVeo3,
		SupportedAspectRatios: []string{"16:9", "9:16"},
	}
	a.format = func(base string, sel preset.Selection) string {
		return strings.Join([]string{
			"[Scene] " + visual(base, sel),
			veo3CameraLine,
			veo3AudioLine,
		}, "\n")
	}
	a.params = func(sel preset.Selection) map[string]any {
		return map[string]any{
			"aspect_ratio":     a.aspectRatioOr(sel, "16:9"),
			"resolution":       "1080p",
			"fps":              24,
			"duration":         "6s",
			"mode":             "text-to-video",
			"audio_generation": true,
			"dialogue_enabled": false,
			"reference_image":  nil,
		}
	}
	return a
}
