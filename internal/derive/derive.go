// Package derive is the palette derivation pipeline: it finds a source
// colour, generates a tonal scheme from it, harmonizes the caller's palette
// towards the scheme and merges the two.
package derive

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/extract"
	"github.com/jmylchreest/tonal/internal/harmonize"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/palette"
	"github.com/jmylchreest/tonal/internal/scheme"
	"github.com/jmylchreest/tonal/internal/wallpaper"
)

// ErrMissingColorSource is returned when neither an image nor a colour is
// given.
var ErrMissingColorSource = errors.New("neither color nor image was provided: impossible to determine the palette")

// Deriver runs the derivation pipeline. The zero value is not usable; use
// New.
type Deriver struct {
	loader    image.Loader
	extractor extract.Extractor
	generator scheme.Generator
	resolver  wallpaper.Resolver
	logger    hclog.Logger
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithLoader sets the image loader.
func WithLoader(l image.Loader) Option {
	return func(d *Deriver) { d.loader = l }
}

// WithExtractor fixes the key colour extractor, overriding
// Parameters.Algorithm.
func WithExtractor(e extract.Extractor) Option {
	return func(d *Deriver) { d.extractor = e }
}

// WithGenerator fixes the scheme generator, overriding Parameters.Contrast.
func WithGenerator(g scheme.Generator) Option {
	return func(d *Deriver) { d.generator = g }
}

// WithResolver sets the wallpaper resolver used for WallpaperSentinel.
func WithResolver(r wallpaper.Resolver) Option {
	return func(d *Deriver) { d.resolver = r }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(d *Deriver) { d.logger = l }
}

// New returns a Deriver with the file loader, the platform wallpaper
// resolver and a null logger unless overridden.
func New(opts ...Option) *Deriver {
	d := &Deriver{}
	for _, opt := range opts {
		opt(d)
	}
	if d.loader == nil {
		d.loader = image.NewFileLoader()
	}
	if d.resolver == nil {
		d.resolver = wallpaper.Detect()
	}
	if d.logger == nil {
		d.logger = hclog.NewNullLogger()
	}
	return d
}

// Result is the outcome of a derivation.
type Result struct {
	Palette palette.Palette
	// Source is the colour the scheme was generated from.
	Source colour.ARGB
	// ImagePath is the image the source was extracted from, if any.
	ImagePath string
	Theme     scheme.Theme
}

// Palette derives the palette described by params.
func (d *Deriver) Palette(ctx context.Context, params Parameters) (palette.Palette, error) {
	res, err := d.Derive(ctx, params)
	if err != nil {
		return nil, err
	}
	return res.Palette, nil
}

// Derive derives the palette described by params and reports the
// intermediate source colour and theme.
func (d *Deriver) Derive(ctx context.Context, params Parameters) (Result, error) {
	p := params.Clamped()

	variant, err := scheme.ParseVariant(p.Scheme)
	if err != nil {
		return Result{}, err
	}

	base, err := palette.Parse(p.BasePalette)
	if err != nil {
		return Result{}, fmt.Errorf("invalid base palette: %w", err)
	}

	source, imagePath, err := d.sourceColor(ctx, p)
	if err != nil {
		return Result{}, err
	}
	d.logger.Debug("source colour", "hex", source.Hex(), "image", imagePath)

	generator := d.generator
	if generator == nil {
		generator = scheme.MaterialGenerator{ContrastLevel: p.Contrast}
	}
	theme := generator.Generate(source, variant)
	d.logger.Debug("generated scheme", "variant", variant, "key", theme.KeyColor.Hex(), "dark", p.DarkMode)

	harmonize.Apply(base, theme.KeyColor, harmonize.Options{
		Harmony:   p.Harmony,
		Threshold: p.HarmonizeThreshold,
		Boost:     p.ForegroundBoost,
		Dark:      p.DarkMode,
	})

	roles := theme.Roles(p.DarkMode)
	out := palette.Compose(base, roles)
	if err := palette.Dispatch(out, roles, p.MaterialDispatch); err != nil {
		return Result{}, err
	}

	return Result{Palette: out, Source: source, ImagePath: imagePath, Theme: theme}, nil
}

// sourceColor returns the scheme source: the key colour of the image when
// one is given, otherwise the literal colour.
func (d *Deriver) sourceColor(ctx context.Context, p Parameters) (colour.ARGB, string, error) {
	if p.Image == "" {
		if p.Color == "" {
			return 0, "", ErrMissingColorSource
		}
		c, err := colour.ParseHex(p.Color)
		if err != nil {
			return 0, "", fmt.Errorf("invalid color argument: %w", err)
		}
		return c, "", nil
	}

	path := p.Image
	if path == WallpaperSentinel {
		resolved, err := d.resolver.Resolve(ctx, p.DarkMode)
		if err != nil {
			return 0, "", err
		}
		d.logger.Debug("resolved wallpaper", "path", resolved)
		path = resolved
	}

	path, err := image.ResolveImagePath(path)
	if err != nil {
		return 0, "", err
	}

	img, err := d.loader.Load(path)
	if err != nil {
		return 0, "", err
	}
	buf := image.Prepare(img, p.Size)
	d.logger.Trace("prepared image", "path", path, "width", buf.Width, "height", buf.Height)

	extractor := d.extractor
	if extractor == nil {
		extractor, err = extract.NewExtractor(extract.Algorithm(p.Algorithm))
		if err != nil {
			return 0, "", err
		}
	}

	c, err := extractor.Extract(buf)
	if err != nil {
		return 0, "", fmt.Errorf("%s: %w", path, err)
	}
	return c, path, nil
}

// Palette derives a palette with a default Deriver.
func Palette(ctx context.Context, params Parameters) (palette.Palette, error) {
	return New().Palette(ctx, params)
}

// Blend moves a's hue towards b's by alpha (clamped to 0-1) and returns the
// result as "#rrggbb". a's chroma and tone are kept.
func Blend(a, b string, alpha float64) (string, error) {
	from, err := colour.ParseHex(a)
	if err != nil {
		return "", err
	}
	to, err := colour.ParseHex(b)
	if err != nil {
		return "", err
	}
	return colour.BlendHue(from, to, clamp(0, 1, alpha)).Hex(), nil
}
