package platform

import (
	"fmt"

	"promptforge-api/internal/domain/entity"
	apperrors "promptforge-api/pkg/errors"
)

// Descriptor 平台描述 + 适配器能力，供目录接口输出
type Descriptor struct {
	entity.Platform
	SupportedAspectRatios []string `json:"supportedAspectRatios"`
}

// Registry 平台适配器注册表，构造后只读
type Registry struct {
	catalog  *Catalog
	adapters map[entity.PlatformID]*Adapter
}

// DefaultAdapters 返回全部内置适配器
func DefaultAdapters() []*Adapter {
	return []*Adapter{
		newMidjourney(),
		newStableDiffusion(),
		newRunway(),
		newKling(),
		newFirefly(),
		newVeo3(),
		newNanoBanana(),
		newGrok(),
		newGemini(),
	}
}

// NewRegistry 创建注册表，并校验平台目录与适配器一一对应
func NewRegistry(catalog *Catalog, adapters ...*Adapter) (*Registry, error) {
	if catalog == nil {
		return nil, fmt.Errorf("platform: catalog is required")
	}

	r := &Registry{
		catalog:  catalog,
		adapters: make(map[entity.PlatformID]*Adapter, len(adapters)),
	}
	for _, a := range adapters {
		if a == nil || a.format == nil || a.params == nil {
			return nil, fmt.Errorf("platform: incomplete adapter")
		}
		if _, dup := r.adapters[a.Platform]; dup {
			return nil, fmt.Errorf("platform: adapter %s registered twice", a.Platform)
		}
		if _, ok := catalog.Get(a.Platform); !ok {
			return nil, fmt.Errorf("platform: adapter %s has no catalog entry", a.Platform)
		}
		r.adapters[a.Platform] = a
	}
	for _, p := range catalog.Platforms() {
		if _, ok := r.adapters[p.ID]; !ok {
			return nil, fmt.Errorf("platform: catalog entry %s has no adapter", p.ID)
		}
	}
	return r, nil
}

// NewDefaultRegistry 使用内置目录与内置适配器创建注册表
func NewDefaultRegistry() (*Registry, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return NewRegistry(catalog, DefaultAdapters()...)
}

// Get 获取平台适配器
// 通过边界校验的 ID 不应失败，失败意味着目录与注册表不一致
func (r *Registry) Get(id entity.PlatformID) (*Adapter, error) {
	a, ok := r.adapters[id]
	if !ok {
		return nil, apperrors.ErrUnknownPlatform.WithDetail(string(id))
	}
	return a, nil
}

// Has 检查平台是否已注册
func (r *Registry) Has(id entity.PlatformID) bool {
	_, ok := r.adapters[id]
	return ok
}

// Descriptors 返回平台描述（目录顺序）
func (r *Registry) Descriptors() []Descriptor {
	platforms := r.catalog.Platforms()
	out := make([]Descriptor, 0, len(platforms))
	for _, p := range platforms {
		a := r.adapters[p.ID]
		out = append(out, Descriptor{
			Platform:              p,
			SupportedAspectRatios: append([]string(nil), a.SupportedAspectRatios...),
		})
	}
	return out
}
