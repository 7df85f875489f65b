package refine

import (
	"fmt"

	"promptforge-api/internal/domain/entity"
)

// questionRule 独立的判定规则：命中时返回问题文本
type questionRule func(a entity.PromptAnalysis) (string, bool)

// questionRules 固定顺序的澄清问题规则
var questionRules = []questionRule{
	// 场景
	func(a entity.PromptAnalysis) (string, bool) {
		if a.AmbiguityScore <= 0.5 {
			return "", false
		}
		return fmt.Sprintf(`Your prompt "%s" is quite open-ended. Can you describe the specific scene, setting, or context you envision?`, a.Subject), true
	},
	// 风格
	func(a entity.PromptAnalysis) (string, bool) {
		if isSpecified(a.Style) {
			return "", false
		}
		return "What visual style are you going for? (e.g., photorealistic, painterly, anime, cinematic)", true
	},
	// 情绪
	func(a entity.PromptAnalysis) (string, bool) {
		if isSpecified(a.Mood) {
			return "", false
		}
		return "What mood or feeling should the image evoke? (e.g., peaceful, dramatic, eerie, joyful)", true
	},
	// 时间/季节/环境
	func(a entity.PromptAnalysis) (string, bool) {
		if a.AmbiguityScore <= 0.3 {
			return "", false
		}
		return "Is there a specific time of day, season, or environment you want for this scene?", true
	},
	// 用途，总是提问
	func(entity.PromptAnalysis) (string, bool) {
		return "What will this be used for? (social media, print, wallpaper, portfolio, etc.)", true
	},
}

// GenerateQuestions 按规则顺序收集所有命中的澄清问题（纯函数，不调用模型）
func GenerateQuestions(a entity.PromptAnalysis) []string {
	questions := make([]string, 0, len(questionRules))
	for _, rule := range questionRules {
		if q, ok := rule(a); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

func isSpecified(s string) bool {
	return s != "" && s != entity.Unspecified
}
