// Package platform 提供目标平台目录与平台适配器
package platform

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"promptforge-api/internal/domain/entity"
)

//go:embed data/platforms.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Platforms []entity.Platform `yaml:"platforms"`
}

// Catalog 平台目录，构造后只读
type Catalog struct {
	platforms []entity.Platform
	byID      map[entity.PlatformID]entity.Platform
}

// LoadCatalog 加载内置平台目录
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// MustLoadCatalog 加载内置平台目录，失败时 panic
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog 解析并校验 YAML 平台目录
func ParseCatalog(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("platform: catalog payload is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("platform: decode catalog: %w", err)
	}

	c := &Catalog{
		platforms: make([]entity.Platform, 0, len(file.Platforms)),
		byID:      make(map[entity.PlatformID]entity.Platform, len(file.Platforms)),
	}
	for _, p := range file.Platforms {
		if !p.ID.IsValid() {
			return nil, fmt.Errorf("platform: unknown platform id %q", p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("platform: platform %q declared twice", p.ID)
		}
		switch p.Type {
		case entity.PlatformTypeImage, entity.PlatformTypeVideo, entity.PlatformTypeBoth:
		default:
			return nil, fmt.Errorf("platform: %s: invalid type %q", p.ID, p.Type)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("platform: %s: name is required", p.ID)
		}
		c.platforms = append(c.platforms, p)
		c.byID[p.ID] = p
	}
	return c, nil
}

// Platforms 返回目录中的平台（展示顺序）
func (c *Catalog) Platforms() []entity.Platform {
	return append([]entity.Platform(nil), c.platforms...)
}

// Get 按 ID 获取平台描述
func (c *Catalog) Get(id entity.PlatformID) (entity.Platform, bool) {
	p, ok := c.byID[id]
	return p, ok
}
