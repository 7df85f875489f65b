package platform

import (
	"slices"
	"strings"
	"testing"

	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/domain/entity"
)

func bind(sel entity.PresetSelection) preset.Selection {
	return preset.NewResolver(preset.MustLoadCatalog(), nil).Bind(sel)
}

func mustAdapter(t *testing.T, id entity.PlatformID) *Adapter {
	t.Helper()
	r, err := NewDefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	a, err := r.Get(id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return a
}

func TestStableDiffusion_RoundTrip(t *testing.T) {
	a := mustAdapter(t, entity.PlatformStableDiffusion)

	got := a.FormatPrompt("a fox in snow", bind(nil))

	positive, negative, found := strings.Cut(got, "\n\nNegative:\n")
	if !found {
		t.Fatalf("missing Negative section: %q", got)
	}
	wantPositive := "Positive:\n(masterpiece:1.2), (best quality:1.2), a fox in snow"
	if positive != wantPositive {
		t.Errorf("expected positive %q, got %q", wantPositive, positive)
	}
	wantNegative := "(worst quality:1.4), (low quality:1.4), blurry, jpeg artifacts, watermark, text, logo, deformed, disfigured, bad anatomy, extra limbs"
	if negative != wantNegative {
		t.Errorf("expected negative %q, got %q", wantNegative, negative)
	}
	if a.NegativePrompt() != wantNegative {
		t.Errorf("NegativePrompt mismatch: %q", a.NegativePrompt())
	}
}

func TestStableDiffusion_Parameters(t *testing.T) {
	a := mustAdapter(t, entity.PlatformStableDiffusion)

	params := a.BuildParameters(bind(entity.PresetSelection{
		entity.CategoryAspectRatios: {"ar-16-9"},
	}))
	if params["width"] != 1344 || params["height"] != 768 {
		t.Errorf("unexpected resolution: %v x %v", params["width"], params["height"])
	}
	if params["steps"] != 30 || params["cfg_scale"] != 7.5 || params["sampler"] != "DPM++ 2M Karras" {
		t.Errorf("unexpected defaults: %v", params)
	}

	params = a.BuildParameters(bind(nil))
	if params["width"] != 1024 || params["height"] != 1024 {
		t.Errorf("expected default 1024x1024, got %v x %v", params["width"], params["height"])
	}
}

func TestMotionPlatforms_StaticLines(t *testing.T) {
	selections := []entity.PresetSelection{
		nil,
		{entity.CategoryLighting: {"lt-neon"}, entity.CategoryCameras: {"cl-85mm", "cl-wide"}},
		{entity.CategoryAtmospheres: {"at-foggy"}, entity.CategoryAspectRatios: {"ar-9-16"}},
	}
	bases := []string{"", "a lighthouse at dusk", "city street, rain"}

	for _, id := range []entity.PlatformID{entity.PlatformRunway, entity.PlatformKling, entity.PlatformVeo3} {
		a := mustAdapter(t, id)
		var second, third string
		for i, sel := range selections {
			for _, base := range bases {
				lines := strings.Split(a.FormatPrompt(base, bind(sel)), "\n")
				if len(lines) != 3 {
					t.Fatalf("%s: expected 3 lines, got %d", id, len(lines))
				}
				if i == 0 && second == "" {
					second, third = lines[1], lines[2]
					continue
				}
				if lines[1] != second || lines[2] != third {
					t.Errorf("%s: structural lines varied: %q / %q", id, lines[1], lines[2])
				}
			}
		}
	}
}

func TestRunway_FirstLineCarriesFragments(t *testing.T) {
	a := mustAdapter(t, entity.PlatformRunway)
	got := a.FormatPrompt("a lighthouse", bind(entity.PresetSelection{
		entity.CategoryLighting: {"lt-moonlight"},
	}))
	first := strings.SplitN(got, "\n", 2)[0]
	if first != "[Visual] a lighthouse, soft moonlight" {
		t.Errorf("unexpected first line: %q", first)
	}
}

func TestMidjourney_Suffix(t *testing.T) {
	a := mustAdapter(t, entity.PlatformMidjourney)

	got := a.FormatPrompt("a cat", bind(entity.PresetSelection{
		entity.CategoryAspectRatios: {"ar-16-9"},
		entity.CategoryArtStyles:    {"as-oil"},
	}))
	if got != "a cat, oil painting style --v 6.1 --ar 16:9" {
		t.Errorf("unexpected prompt: %q", got)
	}

	got = a.FormatPrompt("a cat", bind(nil))
	if got != "a cat --v 6.1" {
		t.Errorf("unexpected prompt without aspect ratio: %q", got)
	}

	params := a.BuildParameters(bind(nil))
	if _, ok := params["ar"]; ok {
		t.Error("ar should be absent when nothing resolves")
	}
	if params["v"] != "6.1" {
		t.Errorf("expected v=6.1, got %v", params["v"])
	}
}

func TestConversationalPlatforms_PeriodSeparator(t *testing.T) {
	sel := bind(entity.PresetSelection{entity.CategoryLighting: {"lt-studio"}})
	for _, id := range []entity.PlatformID{entity.PlatformFirefly, entity.PlatformNanoBanana} {
		got := mustAdapter(t, id).FormatPrompt("a portrait", sel)
		if got != "a portrait. studio lighting" {
			t.Errorf("%s: unexpected prompt %q", id, got)
		}
	}
}

func TestAdapters_EmptyPartsDropped(t *testing.T) {
	got := mustAdapter(t, entity.PlatformGrok).FormatPrompt("", bind(entity.PresetSelection{
		entity.CategoryLighting: {"lt-neon"},
	}))
	if got != "neon lighting" {
		t.Errorf("unexpected prompt: %q", got)
	}
}

func TestAdapters_DefaultAspectRatio(t *testing.T) {
	want := map[entity.PlatformID]string{
		entity.PlatformRunway:     "16:9",
		entity.PlatformKling:      "16:9",
		entity.PlatformVeo3:       "16:9",
		entity.PlatformFirefly:    "1:1",
		entity.PlatformNanoBanana: "1:1",
		entity.PlatformGrok:       "3:2",
		entity.PlatformGemini:     "1:1",
	}
	// 21:9 is unsupported on every platform listed here
	sel := bind(entity.PresetSelection{entity.CategoryAspectRatios: {"ar-21-9"}})
	for id, ar := range want {
		a := mustAdapter(t, id)
		params := a.BuildParameters(sel)
		if params["aspect_ratio"] != ar {
			t.Errorf("%s: expected default %s, got %v", id, ar, params["aspect_ratio"])
		}
	}
}

func TestAdapters_AspectRatioAlwaysSupported(t *testing.T) {
	r, err := NewDefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	ids := []string{"ar-1-1", "ar-16-9", "ar-9-16", "ar-4-3", "ar-3-2", "ar-21-9", "ar-2-3"}
	for _, d := range r.Descriptors() {
		a, _ := r.Get(d.ID)
		for i := range ids {
			params := a.BuildParameters(bind(entity.PresetSelection{entity.CategoryAspectRatios: ids[i:]}))
			ar, ok := params["aspect_ratio"].(string)
			if !ok {
				continue
			}
			if !slices.Contains(a.SupportedAspectRatios, ar) {
				t.Errorf("%s: %s is not a supported ratio", d.ID, ar)
			}
		}
	}
}

func TestVeo3_Parameters(t *testing.T) {
	params := mustAdapter(t, entity.PlatformVeo3).BuildParameters(bind(entity.PresetSelection{
		entity.CategoryAspectRatios: {"ar-9-16"},
	}))
	if params["aspect_ratio"] != "9:16" || params["fps"] != 24 || params["reference_image"] != nil {
		t.Errorf("unexpected params: %v", params)
	}
	if v, ok := params["reference_image"]; !ok || v != nil {
		t.Error("reference_image should be present and null")
	}
}
