// Package entity 定义领域实体
package entity

// PlatformID 目标生成平台标识
type PlatformID string

const (
	PlatformMidjourney      PlatformID = "midjourney"
	PlatformStableDiffusion PlatformID = "stable-diffusion"
	PlatformRunway          PlatformID = "runway"
	PlatformKling           PlatformID = "kling"
	PlatformFirefly         PlatformID = "firefly"
	PlatformVeo3            PlatformID = "veo3"
	PlatformNanoBanana      PlatformID = "nano-banana"
	PlatformGrok            PlatformID = "grok"
	PlatformGemini          PlatformID = "gemini"
)

// PlatformIDs 返回封闭的平台标识集合（展示顺序）
func PlatformIDs() []PlatformID {
	return []PlatformID{
		PlatformMidjourney,
		PlatformStableDiffusion,
		PlatformRunway,
		PlatformKling,
		PlatformFirefly,
		PlatformVeo3,
		PlatformNanoBanana,
		PlatformGrok,
		PlatformGemini,
	}
}

// IsValid 检查平台标识是否属于封闭集合
func (id PlatformID) IsValid() bool {
	for _, p := range PlatformIDs() {
		if p == id {
			return true
		}
	}
	return false
}

// PlatformType 平台媒体类型
type PlatformType string

const (
	PlatformTypeImage PlatformType = "image"
	PlatformTypeVideo PlatformType = "video"
	PlatformTypeBoth  PlatformType = "both"
)

// Platform 平台描述，进程启动时加载一次
type Platform struct {
	ID          PlatformID   `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Type        PlatformType `json:"type" yaml:"type"`
	Description string       `json:"description" yaml:"description"`
}
