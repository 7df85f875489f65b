package preset

import (
	"strings"
	"testing"

	"promptforge-api/internal/domain/entity"
)

func TestLoadCatalog_EmbeddedIsValid(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cats := c.Categories()
	want := entity.PresetCategoryIDs()
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i, cat := range cats {
		if cat.ID != want[i] {
			t.Errorf("category %d: expected %s, got %s", i, want[i], cat.ID)
		}
		if len(cat.Presets) == 0 {
			t.Errorf("category %s has no presets", cat.ID)
		}
		for _, p := range cat.Presets {
			if p.Payload(cat.ID) == "" {
				t.Errorf("%s/%s has empty payload", cat.ID, p.ID)
			}
		}
	}

	p, ok := c.Lookup(entity.CategoryLighting, "lt-golden")
	if !ok || p.PromptFragment != "golden hour lighting" {
		t.Errorf("unexpected lookup result: %+v, %v", p, ok)
	}
	ar, ok := c.Lookup(entity.CategoryAspectRatios, "ar-16-9")
	if !ok || ar.Value != "16:9" {
		t.Errorf("unexpected aspect ratio lookup: %+v, %v", ar, ok)
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	c := MustLoadCatalog()
	cats := c.Categories()
	cats[0].Presets[0].Value = "mutated"

	again := c.Categories()
	if again[0].Presets[0].Value == "mutated" {
		t.Error("catalog was mutated through returned slice")
	}
}

func TestParseCatalog_Rejects(t *testing.T) {
	full := func(extra string) string {
		var b strings.Builder
		b.WriteString("categories:\n")
		for _, id := range entity.PresetCategoryIDs() {
			b.WriteString("  - id: " + string(id) + "\n    name: x\n    icon: x\n    presets:\n")
			if id.UsesValue() {
				b.WriteString("      - { id: a, label: a, description: a, value: \"1:1\" }\n")
			} else {
				b.WriteString("      - { id: a, label: a, description: a, prompt_fragment: frag }\n")
			}
		}
		b.WriteString(extra)
		return b.String()
	}

	if _, err := ParseCatalog([]byte(full(""))); err != nil {
		t.Fatalf("baseline catalog should parse: %v", err)
	}

	cases := map[string]string{
		"empty":              "",
		"duplicate category": full("  - id: lighting\n    name: x\n    icon: x\n    presets: []\n"),
		"unknown category":   full("  - id: weather\n    name: x\n    icon: x\n    presets: []\n"),
		"missing category":   "categories:\n  - id: lighting\n    name: x\n    icon: x\n    presets: []\n",
		"unknown field":      full("extra: true\n"),
	}
	for name, payload := range cases {
		if _, err := ParseCatalog([]byte(payload)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseCatalog_PayloadInvariant(t *testing.T) {
	base := func(lighting string) string {
		var b strings.Builder
		b.WriteString("categories:\n")
		for _, id := range entity.PresetCategoryIDs() {
			b.WriteString("  - id: " + string(id) + "\n    name: x\n    icon: x\n    presets:\n")
			switch {
			case id == entity.CategoryLighting:
				b.WriteString(lighting)
			case id.UsesValue():
				b.WriteString("      - { id: a, label: a, description: a, value: \"1:1\" }\n")
			default:
				b.WriteString("      - { id: a, label: a, description: a, prompt_fragment: frag }\n")
			}
		}
		return b.String()
	}

	bad := []string{
		"      - { id: a, label: a, description: a }\n",
		"      - { id: a, label: a, description: a, value: x }\n",
		"      - { id: a, label: a, description: a, prompt_fragment: f }\n      - { id: a, label: b, description: b, prompt_fragment: g }\n",
	}
	for i, lighting := range bad {
		if _, err := ParseCatalog([]byte(base(lighting))); err == nil {
			t.Errorf("case %d: expected payload validation error", i)
		}
	}
}
