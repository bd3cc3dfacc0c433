package derive

import (
	"context"
	"errors"
	stdimage "image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/palette"
	"github.com/jmylchreest/tonal/internal/scheme"
	"github.com/jmylchreest/tonal/internal/wallpaper"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// noWallpaper keeps tests independent of the desktop they run on.
var noWallpaper = wallpaper.ResolverFunc(func(context.Context, bool) (string, error) {
	return "", wallpaper.ErrUnsupportedDesktop
})

func newTestDeriver(opts ...Option) *Deriver {
	return New(append([]Option{WithResolver(noWallpaper)}, opts...)...)
}

func writePNG(t *testing.T, c color.Color) string {
	t.Helper()
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, 64, 48))
	for y := range 48 {
		for x := range 64 {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Parameters
		want Parameters
	}{
		{
			name: "in range",
			in:   Parameters{Scheme: "vibrant", Harmony: 0.3, HarmonizeThreshold: 90, ForegroundBoost: 0.2, Size: 64, Contrast: 0.5},
			want: Parameters{Scheme: "vibrant", Harmony: 0.3, HarmonizeThreshold: 90, ForegroundBoost: 0.2, Size: 64, Contrast: 0.5},
		},
		{
			name: "above range",
			in:   Parameters{Scheme: "vibrant", Harmony: 5, HarmonizeThreshold: 400, ForegroundBoost: 2, Size: 64, Contrast: 3},
			want: Parameters{Scheme: "vibrant", Harmony: 1, HarmonizeThreshold: 180, ForegroundBoost: 1, Size: 64, Contrast: 1},
		},
		{
			name: "below range",
			in:   Parameters{Scheme: "vibrant", Harmony: -1, HarmonizeThreshold: -10, ForegroundBoost: -0.5, Size: -3, Contrast: -7},
			want: Parameters{Scheme: "vibrant", Harmony: 0, HarmonizeThreshold: 0, ForegroundBoost: 0, Size: image.DefaultSize, Contrast: -1},
		},
		{
			name: "defaults",
			in:   Parameters{Harmony: math.NaN()},
			want: Parameters{Scheme: DefaultScheme, Size: image.DefaultSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamped()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Clamped() = %+v, want %+v", got, tt.want)
			}
			if again := got.Clamped(); !reflect.DeepEqual(again, got) {
				t.Errorf("Clamped() is not idempotent: %+v", again)
			}
		})
	}
}

func TestPaletteEndToEnd(t *testing.T) {
	p, err := newTestDeriver().Palette(context.Background(), Parameters{
		Color:  "#6750A4",
		Scheme: "tonal-spot",
	})
	if err != nil {
		t.Fatalf("Palette error: %v", err)
	}

	for _, role := range []string{"primary", "on-primary", "surface", "background"} {
		c, ok := p[role]
		if !ok {
			t.Errorf("missing %q", role)
			continue
		}
		if !hexPattern.MatchString(c.Hex()) {
			t.Errorf("%s = %q is not #rrggbb", role, c.Hex())
		}
	}

	want := scheme.Generate(0xff6750a4, scheme.TonalSpot).Light
	if len(p) != len(want) {
		t.Errorf("palette has %d entries, want %d", len(p), len(want))
	}
	for name, c := range want {
		if p[name] != c {
			t.Errorf("%s = %s, want %s", name, p[name].Hex(), c.Hex())
		}
	}
}

func TestPaletteDarkMode(t *testing.T) {
	p, err := newTestDeriver().Palette(context.Background(), Parameters{Color: "#6750a4", DarkMode: true})
	if err != nil {
		t.Fatalf("Palette error: %v", err)
	}
	if got := colour.LstarFromARGB(p["surface"]); got > 10 {
		t.Errorf("dark surface tone = %.1f, expected a dark surface", got)
	}
}

func TestPaletteErrors(t *testing.T) {
	tests := []struct {
		name   string
		params Parameters
		want   error
	}{
		{name: "no source", params: Parameters{}, want: ErrMissingColorSource},
		{name: "bad colour", params: Parameters{Color: "#zzzzzz"}, want: colour.ErrInvalidColorFormat},
		{name: "bad variant", params: Parameters{Color: "#6750a4", Scheme: "pastel"}, want: scheme.ErrInvalidSchemeVariant},
		{name: "bad base palette", params: Parameters{Color: "#6750a4", BasePalette: map[string]string{"fg": "nope"}}, want: colour.ErrInvalidColorFormat},
		{name: "missing image", params: Parameters{Image: "/definitely/not/here.png"}, want: image.ErrImageDecode},
		{name: "wallpaper unavailable", params: Parameters{Image: WallpaperSentinel}, want: wallpaper.ErrUnsupportedDesktop},
		{name: "unknown dispatch role", params: Parameters{Color: "#6750a4", MaterialDispatch: map[string]string{"accent": "nope"}}, want: palette.ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestDeriver().Palette(context.Background(), tt.params)
			if !errors.Is(err, tt.want) {
				t.Errorf("Palette error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPaletteClampIdempotence(t *testing.T) {
	base := map[string]string{"red": "#cc3333", "green": "#33aa55", "blue": "#3355cc"}
	run := func(harmony, threshold, boost float64) palette.Palette {
		t.Helper()
		p, err := newTestDeriver().Palette(context.Background(), Parameters{
			Color:              "#6750a4",
			BasePalette:        base,
			Harmony:            harmony,
			HarmonizeThreshold: threshold,
			ForegroundBoost:    boost,
		})
		if err != nil {
			t.Fatalf("Palette error: %v", err)
		}
		return p
	}

	if a, b := run(5, 35, 0.2), run(1, 35, 0.2); !reflect.DeepEqual(a, b) {
		t.Error("harmony 5 differs from harmony 1")
	}
	if a, b := run(0.5, -10, 0.2), run(0.5, 0, 0.2); !reflect.DeepEqual(a, b) {
		t.Error("threshold -10 differs from threshold 0")
	}
	if a, b := run(0.5, 35, 9), run(0.5, 35, 1); !reflect.DeepEqual(a, b) {
		t.Error("boost 9 differs from boost 1")
	}
}

func TestPaletteComposerOverwrites(t *testing.T) {
	p, err := newTestDeriver().Palette(context.Background(), Parameters{
		Color:       "#6750a4",
		BasePalette: map[string]string{"primary": "#112233", "accent": "#112233"},
	})
	if err != nil {
		t.Fatalf("Palette error: %v", err)
	}
	want := scheme.Generate(0xff6750a4, scheme.TonalSpot).Light["primary"]
	if p["primary"] != want {
		t.Errorf("primary = %s, want scheme value %s", p["primary"].Hex(), want.Hex())
	}
	if _, ok := p["accent"]; !ok {
		t.Error("caller entry accent was removed")
	}
}

func TestPaletteDispatch(t *testing.T) {
	p, err := newTestDeriver().Palette(context.Background(), Parameters{
		Color:            "#6750a4",
		BasePalette:      map[string]string{"accent": "#112233"},
		MaterialDispatch: map[string]string{"accent": "tertiary", "border": "outline"},
	})
	if err != nil {
		t.Fatalf("Palette error: %v", err)
	}
	if p["accent"] != p["tertiary"] {
		t.Errorf("accent = %s, want tertiary %s", p["accent"].Hex(), p["tertiary"].Hex())
	}
	if p["border"] != p["outline"] {
		t.Errorf("border = %s, want outline %s", p["border"].Hex(), p["outline"].Hex())
	}
}

type fakeGenerator struct {
	theme   scheme.Theme
	source  colour.ARGB
	variant scheme.Variant
}

func (g *fakeGenerator) Generate(source colour.ARGB, variant scheme.Variant) scheme.Theme {
	g.source, g.variant = source, variant
	return g.theme
}

func TestPaletteHarmonizesTowardsKeyColour(t *testing.T) {
	key := colour.NewHCT(120, 40, 50).ARGB()
	gen := &fakeGenerator{theme: scheme.Theme{
		KeyColor: key,
		Light:    scheme.RoleColors{"primary": key},
		Dark:     scheme.RoleColors{"primary": 0xff000000},
	}}
	design := colour.NewHCT(30, 40, 50).ARGB()

	res, err := newTestDeriver(WithGenerator(gen)).Derive(context.Background(), Parameters{
		Color:              "#ff8800",
		Scheme:             "fruit-salad",
		BasePalette:        map[string]string{"accent": design.Hex()},
		Harmony:            1,
		HarmonizeThreshold: 20,
		ForegroundBoost:    0.5,
	})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if gen.source != 0xffff8800 || gen.variant != scheme.FruitSalad {
		t.Errorf("generator got %s %v", gen.source.Hex(), gen.variant)
	}
	if res.Source != 0xffff8800 {
		t.Errorf("Source = %s", res.Source.Hex())
	}

	accent := colour.HCTFromARGB(res.Palette["accent"])
	if d := colour.DifferenceDegrees(accent.Hue(), 50); d > 3 {
		t.Errorf("accent hue = %.1f, want 50", accent.Hue())
	}
	if math.Abs(accent.Tone()-25) > 1 {
		t.Errorf("accent tone = %.1f, want 25", accent.Tone())
	}
	if res.Palette["primary"] != key {
		t.Errorf("primary = %s, want light scheme value", res.Palette["primary"].Hex())
	}
}

func TestPaletteFromImage(t *testing.T) {
	path := writePNG(t, color.NRGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff})

	res, err := newTestDeriver().Derive(context.Background(), Parameters{Image: path, Color: "#ff0000"})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if res.ImagePath != path {
		t.Errorf("ImagePath = %q, want %q", res.ImagePath, path)
	}
	// The image wins over the literal colour.
	if d := colour.DifferenceDegrees(colour.HCTFromARGB(res.Source).Hue(), colour.HCTFromARGB(0xff2060c0).Hue()); d > 2 {
		t.Errorf("Source = %s, want close to #2060c0", res.Source.Hex())
	}
}

func TestPaletteFromImageDirectory(t *testing.T) {
	path := writePNG(t, color.NRGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff})

	res, err := newTestDeriver().Derive(context.Background(), Parameters{Image: filepath.Dir(path)})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if res.ImagePath != path {
		t.Errorf("ImagePath = %q, want %q", res.ImagePath, path)
	}
}

func TestPaletteFromWallpaper(t *testing.T) {
	path := writePNG(t, color.NRGBA{R: 0x30, G: 0xa0, B: 0x50, A: 0xff})

	var gotDark bool
	resolver := wallpaper.ResolverFunc(func(_ context.Context, dark bool) (string, error) {
		gotDark = dark
		return path, nil
	})

	res, err := New(WithResolver(resolver)).Derive(context.Background(), Parameters{Image: WallpaperSentinel, DarkMode: true})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if !gotDark {
		t.Error("resolver was not asked for the dark wallpaper")
	}
	if res.ImagePath != path {
		t.Errorf("ImagePath = %q, want %q", res.ImagePath, path)
	}
}

func TestPaletteGreyImage(t *testing.T) {
	path := writePNG(t, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})

	_, err := newTestDeriver().Palette(context.Background(), Parameters{Image: path})
	if err == nil {
		t.Fatal("Palette of a grey image succeeded")
	}
}

func TestBlend(t *testing.T) {
	got, err := Blend("#FF0000", "#0000FF", 0.5)
	if err != nil {
		t.Fatalf("Blend error: %v", err)
	}
	if !hexPattern.MatchString(got) {
		t.Fatalf("Blend = %q is not #rrggbb", got)
	}
	again, _ := Blend("#FF0000", "#0000FF", 0.5)
	if got != again {
		t.Errorf("Blend is not deterministic: %s then %s", got, again)
	}

	red := colour.HCTFromARGB(0xffff0000).Hue()
	blue := colour.HCTFromARGB(0xff0000ff).Hue()
	hue := colour.HCTFromARGB(colour.MustParseHex(got)).Hue()
	arc := colour.DifferenceDegrees(red, blue)
	if d := colour.DifferenceDegrees(hue, red) + colour.DifferenceDegrees(hue, blue); d > arc+2 {
		t.Errorf("Blend hue %.1f is not between red %.1f and blue %.1f", hue, red, blue)
	}

	clamped, _ := Blend("#ff0000", "#0000ff", 7)
	one, _ := Blend("#ff0000", "#0000ff", 1)
	if clamped != one {
		t.Errorf("Blend(alpha 7) = %s, want Blend(alpha 1) = %s", clamped, one)
	}

	if _, err := Blend("red", "#0000ff", 0.5); !errors.Is(err, colour.ErrInvalidColorFormat) {
		t.Errorf("Blend invalid error = %v", err)
	}
}
