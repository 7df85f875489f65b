// Package preset 提供预设目录加载与预设解析
package preset

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"promptforge-api/internal/domain/entity"
)

//go:embed data/presets.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Categories []entity.PresetCategory `yaml:"categories"`
}

// Catalog 预设目录，构造后只读
type Catalog struct {
	categories []entity.PresetCategory
	index      map[entity.PresetCategoryID]map[string]entity.Preset
}

// LoadCatalog 加载内置预设目录
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// MustLoadCatalog 加载内置预设目录，失败时 panic
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog 解析并校验 YAML 预设目录
func ParseCatalog(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("preset: catalog payload is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("preset: decode catalog: %w", err)
	}
	if err := validateCategories(file.Categories); err != nil {
		return nil, err
	}

	return newCatalog(file.Categories), nil
}

func newCatalog(categories []entity.PresetCategory) *Catalog {
	byID := make(map[entity.PresetCategoryID]entity.PresetCategory, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	c := &Catalog{
		categories: make([]entity.PresetCategory, 0, len(categories)),
		index:      make(map[entity.PresetCategoryID]map[string]entity.Preset, len(categories)),
	}
	// 统一按规范分类顺序存放
	for _, id := range entity.PresetCategoryIDs() {
		cat := byID[id]
		c.categories = append(c.categories, cat)
		presets := make(map[string]entity.Preset, len(cat.Presets))
		for _, p := range cat.Presets {
			presets[p.ID] = p
		}
		c.index[id] = presets
	}
	return c
}

// validateCategories 校验：封闭分类集合中每个分类恰好出现一次，分类内 ID 唯一，载荷字段符合分类语义
func validateCategories(categories []entity.PresetCategory) error {
	seen := make(map[entity.PresetCategoryID]struct{}, len(categories))
	for _, cat := range categories {
		if !cat.ID.IsValid() {
			return fmt.Errorf("preset: unknown category %q", cat.ID)
		}
		if _, dup := seen[cat.ID]; dup {
			return fmt.Errorf("preset: category %q declared twice", cat.ID)
		}
		seen[cat.ID] = struct{}{}

		ids := make(map[string]struct{}, len(cat.Presets))
		for _, p := range cat.Presets {
			if strings.TrimSpace(p.ID) == "" {
				return fmt.Errorf("preset: %s: preset id is required", cat.ID)
			}
			if _, dup := ids[p.ID]; dup {
				return fmt.Errorf("preset: %s: duplicate preset id %q", cat.ID, p.ID)
			}
			ids[p.ID] = struct{}{}
			if err := validatePayload(cat.ID, p); err != nil {
				return err
			}
		}
	}
	for _, id := range entity.PresetCategoryIDs() {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("preset: category %q is missing", id)
		}
	}
	return nil
}

func validatePayload(category entity.PresetCategoryID, p entity.Preset) error {
	if category.UsesValue() {
		if strings.TrimSpace(p.Value) == "" {
			return fmt.Errorf("preset: %s/%s: value is required", category, p.ID)
		}
		if p.PromptFragment != "" {
			return fmt.Errorf("preset: %s/%s: prompt_fragment is not allowed", category, p.ID)
		}
		return nil
	}
	if strings.TrimSpace(p.PromptFragment) == "" {
		return fmt.Errorf("preset: %s/%s: prompt_fragment is required", category, p.ID)
	}
	if p.Value != "" {
		return fmt.Errorf("preset: %s/%s: value is not allowed", category, p.ID)
	}
	return nil
}

// Categories 返回按规范顺序排列的分类副本
func (c *Catalog) Categories() []entity.PresetCategory {
	out := make([]entity.PresetCategory, len(c.categories))
	for i, cat := range c.categories {
		cat.Presets = append([]entity.Preset(nil), cat.Presets...)
		out[i] = cat
	}
	return out
}

// Lookup 按分类与 ID 查找目录预设
func (c *Catalog) Lookup(category entity.PresetCategoryID, id string) (entity.Preset, bool) {
	p, ok := c.index[category][id]
	return p, ok
}
