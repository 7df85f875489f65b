package platform

import (
	"fmt"
	"strings"

	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
)

// midjourneyParamOrder 参数后缀的固定输出顺序
var midjourneyParamOrder = []string{"v", "ar"}

func newMidjourney() *Adapter {
	a := &Adapter{
		Platform: entity.PlatformMidjourney,
		SupportedAspectRatios: []string{
			"1:1", "16:9", "9:16", "4:3", "3:4", "2:3", "3:2",
			"4:5", "5:4", "7:4", "4:7", "21:9", "2.39:1",
		},
	}

	a.params = func(sel preset.Selection) map[string]any {
		params := map[string]any{"v": "6.1"}
		if ar, ok := sel.AspectRatio(a.SupportedAspectRatios); ok {
			params["ar"] = ar
		}
		return params
	}

	a.format = func(base string, sel preset.Selection) string {
		prompt := visual(base, sel)
		if suffix := midjourneySuffix(a.params(sel)); suffix != "" {
			prompt = prompt + " " + suffix
		}
		return prompt
	}
	return a
}

// midjourneySuffix 渲染 --key value 参数后缀
func midjourneySuffix(params map[string]any) string {
	parts := make([]string, 0, len(params))
	for _, key := range midjourneyParamOrder {
		if v, ok := params[key]; ok {
			parts = append(parts, fmt.Sprintf("--%s %v", key, v))
		}
	}
	return strings.Join(parts, " ")
}
