package platform

import (
	"strings"

	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
)

// StableDiffusionNegativePrompt 固定的质量/瑕疵排除列表，不随用户输入变化
var StableDiffusionNegativePrompt = strings.Join([]string{
	"(worst quality:1.4)",
	"(low quality:1.4)",
	"blurry",
	"jpeg artifacts",
	"watermark",
	"text",
	"logo",
	"deformed",
	"disfigured",
	"bad anatomy",
	"extra limbs",
}, ", ")

// stableDiffusionQualityTokens 正向提示词的高权重前缀
var stableDiffusionQualityTokens = []string{"(masterpiece:1.2)", "(best quality:1.2)"}

type resolution struct {
	width, height int
}

var stableDiffusionResolutions = map[string]resolution{
	"1:1":    {1024, 1024},
	"16:9":   {1344, 768},
	"9:16":   {768, 1344},
	"4:3":    {1152, 896},
	"3:4":    {896, 1152},
	"2:3":    {832, 1216},
	"3:2":    {1216, 832},
	"4:5":    {896, 1088},
	"5:4":    {1088, 896},
	"21:9":   {1536, 640},
	"2.39:1": {1536, 640},
}

func newStableDiffusion() *Adapter {
	a := &Adapter{
		Platform: entity.PlatformStableDiffusion,
		SupportedAspectRatios: []string{
			"1:1", "16:9", "9:16", "4:3", "3:4", "2:3", "3:2",
			"4:5", "5:4", "21:9", "2.39:1",
		},
		negative: StableDiffusionNegativePrompt,
	}

	a.format = func(base string, sel preset.Selection) string {
		segments := append(append([]string{}, stableDiffusionQualityTokens...), base)
		positive := joinParts(", ", append(segments, sel.Fragments()...)...)
		return "Positive:\n" + positive + "\n\nNegative:\n" + StableDiffusionNegativePrompt
	}

	a.params = func(sel preset.Selection) map[string]any {
		res := resolution{1024, 1024}
		if ar, ok := sel.AspectRatio(a.SupportedAspectRatios); ok {
			if r, known := stableDiffusionResolutions[ar]; known {
				res = r
			}
		}
		return map[string]any{
			"width":     res.width,
			"height":    res.height,
			"steps":     30,
			"cfg_scale": 7.5,
			"sampler":   "DPM++ 2M Karras",
		}
	}
	return a
}
