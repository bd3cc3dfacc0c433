package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/derive"
	"github.com/jmylchreest/tonal/internal/output"
	"github.com/jmylchreest/tonal/internal/scheme"
	"github.com/jmylchreest/tonal/internal/wallpaper"
)

func newDeriveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a palette from a colour, an image or the wallpaper",
		Long: `Derive a Material You palette.

The source colour is taken from --image when given (a file, a directory of
images to pick from at random, or "wallpaper" for the current desktop
wallpaper), otherwise from --color. Colours given with --palette or
--palette-file are harmonized towards the generated scheme, then every
scheme role (primary, on-primary, surface, ...) is added to the output.

Examples:
  # Tonal spot scheme from a colour
  tonal derive --color '#6750a4'

  # Dark vibrant scheme from the current wallpaper, as JSON
  tonal derive --image wallpaper --dark --scheme vibrant --format json

  # Harmonize a terminal palette and alias scheme roles
  tonal derive -i ~/Pictures/wall.jpg -p red=#cc241d -p green=#98971a --dispatch accent=tertiary

  # Write a Lua table for a Neovim config
  tonal derive -c '#ff8800' -f lua -o ~/.config/nvim/lua/palette.lua`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDerive(cmd)
		},
	}

	defaults := derive.DefaultParameters()
	flags := cmd.Flags()
	flags.StringP("image", "i", "", `image file, directory, or "wallpaper"`)
	flags.StringP("color", "c", "", "source colour (#rrggbb)")
	flags.StringP("scheme", "s", defaults.Scheme, fmt.Sprintf("scheme variant %v", scheme.VariantNames()))
	flags.BoolP("dark", "d", false, "use the dark scheme")
	flags.Float64("harmony", defaults.Harmony, "fraction of the hue difference to rotate palette colours by (0-1)")
	flags.Float64("harmonize-threshold", defaults.HarmonizeThreshold, "maximum hue rotation in degrees (0-180)")
	flags.Float64("fg-boost", defaults.ForegroundBoost, "tone boost for harmonized colours (0-1)")
	flags.Int("size", defaults.Size, "working size for image sources")
	flags.Float64("contrast", 0, "scheme contrast level (-1 to 1)")
	flags.StringToStringP("palette", "p", nil, "palette colour to harmonize (name=#rrggbb)")
	flags.String("palette-file", "", "JSON file of palette colours to harmonize")
	flags.StringToString("dispatch", nil, "copy a scheme role into a palette name (name=role)")
	flags.StringP("algorithm", "a", "", "quantizer for image sources (celebi, kmeans, dominant, prominent)")
	flags.StringP("format", "f", string(output.FormatHex), "output format (hex, json, lua)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.Bool("preview", false, "show colour swatches on stderr")

	return cmd
}

func (a *app) runDerive(cmd *cobra.Command) error {
	format, err := output.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return err
	}

	params, err := a.parameters()
	if err != nil {
		return err
	}

	d := derive.New(derive.WithLogger(a.logger), derive.WithResolver(a.resolver()))
	res, err := d.Derive(cmd.Context(), params)
	if err != nil {
		return err
	}
	a.logger.Info("derived palette", "source", res.Source.Hex(), "image", res.ImagePath, "colours", res.Palette.Len())

	renderer := output.NewRenderer(output.NewTemplateLoader(output.DefaultTemplateDir()), a.logger)
	stdout := cmd.OutOrStdout()

	if path := a.v.GetString("output"); path != "" {
		if err := writeFile(path, func(w io.Writer) error {
			return renderer.Render(w, format, res.Palette)
		}); err != nil {
			return err
		}
		a.logger.Debug("wrote palette", "path", path, "format", format)
		// Swatches stand in for the palette when it went to a file.
		if output.IsTerminal(stdout) {
			return output.Preview(stdout, res.Palette)
		}
	} else if err := renderer.Render(stdout, format, res.Palette); err != nil {
		return err
	}

	if a.v.GetBool("preview") {
		return output.Preview(cmd.ErrOrStderr(), res.Palette)
	}
	return nil
}

// parameters assembles the derivation parameters from flags, environment
// and config file. Entries of --palette override --palette-file.
func (a *app) parameters() (derive.Parameters, error) {
	var p derive.Parameters
	if err := a.v.Unmarshal(&p); err != nil {
		return p, fmt.Errorf("invalid configuration: %w", err)
	}

	if path := a.v.GetString("palette_file"); path != "" {
		base, err := readPaletteFile(path)
		if err != nil {
			return p, err
		}
		maps.Copy(base, p.BasePalette)
		p.BasePalette = base
	}
	return p, nil
}

func (a *app) resolver() wallpaper.Resolver {
	if path := a.v.GetString("wallpaper_plugin"); path != "" {
		a.logger.Debug("using wallpaper plugin", "path", path)
		return wallpaper.NewPluginResolver(path, a.logger)
	}
	return wallpaper.Detect()
}

func readPaletteFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return entries, nil
}

// writeFile writes through a temporary file in the same directory and
// renames it into place.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - output directory needs standard permissions
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tonal-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil { // #nosec G302 - palettes are not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
