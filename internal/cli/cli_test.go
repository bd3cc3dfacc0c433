package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/cli"
	"github.com/jmylchreest/tonal/internal/derive"
	"github.com/jmylchreest/tonal/internal/scheme"
	"github.com/jmylchreest/tonal/internal/wallpaper"
)

// isolate points the config directory at an empty temporary directory and
// returns it.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func deriveJSON(t *testing.T, args ...string) map[string]string {
	t.Helper()
	out, stderr, err := run(t, append([]string{"derive", "--format", "json"}, args...)...)
	if err != nil {
		t.Fatalf("derive %v error: %v\n%s", args, err, stderr)
	}
	var p map[string]string
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("derive output is not JSON: %v\n%s", err, out)
	}
	return p
}

func TestDeriveJSON(t *testing.T) {
	isolate(t)
	p := deriveJSON(t, "--color", "#6750a4")

	want := scheme.Generate(0xff6750a4, scheme.TonalSpot).Light
	if len(p) != len(want) {
		t.Errorf("got %d colours, want %d", len(p), len(want))
	}
	for _, role := range []string{"primary", "on-primary", "surface", "background"} {
		if p[role] != want[role].Hex() {
			t.Errorf("%s = %s, want %s", role, p[role], want[role].Hex())
		}
	}
}

func TestDeriveHex(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "derive", "-c", "#6750a4", "--dark")
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}
	line := regexp.MustCompile(`^[a-z-]+ #[0-9a-f]{6}$`)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for _, l := range lines {
		if !line.MatchString(l) {
			t.Errorf("unexpected line %q", l)
		}
	}
	want := "primary " + scheme.Generate(0xff6750a4, scheme.TonalSpot).Dark["primary"].Hex()
	if !strings.Contains(out, want+"\n") {
		t.Errorf("output does not contain %q", want)
	}
}

func TestDerivePaletteAndDispatch(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "base.json")
	if err := os.WriteFile(file, []byte(`{"red": "#cc241d", "green": "#98971a"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	p := deriveJSON(t,
		"--color", "#6750a4",
		"--palette-file", file,
		"-p", "green=#00ff00",
		"-p", "blue=#458588",
		"--dispatch", "border=outline",
	)

	for _, name := range []string{"red", "green", "blue"} {
		if _, ok := p[name]; !ok {
			t.Errorf("missing palette colour %q", name)
		}
	}
	if p["border"] != p["outline"] {
		t.Errorf("border = %s, want outline %s", p["border"], p["outline"])
	}

	fromFile := deriveJSON(t, "--color", "#6750a4", "--palette-file", file)
	if p["green"] == fromFile["green"] {
		t.Error("--palette did not override --palette-file")
	}
	if p["red"] != fromFile["red"] {
		t.Errorf("red = %s, want %s", p["red"], fromFile["red"])
	}
}

func TestDeriveConfigFile(t *testing.T) {
	dir := isolate(t)
	config := `scheme = "vibrant"
dark = true

[dispatch]
border = "outline"
`
	if err := os.MkdirAll(filepath.Join(dir, "tonal"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tonal", "config.toml"), []byte(config), 0o600); err != nil {
		t.Fatal(err)
	}

	fromConfig := deriveJSON(t, "--color", "#6750a4")
	want := scheme.Generate(0xff6750a4, scheme.Vibrant).Dark
	if fromConfig["primary"] != want["primary"].Hex() {
		t.Errorf("primary = %s, want dark vibrant %s", fromConfig["primary"], want["primary"].Hex())
	}
	if fromConfig["border"] != want["outline"].Hex() {
		t.Errorf("border = %s, want %s", fromConfig["border"], want["outline"].Hex())
	}

	// Flags win over the config file.
	fromFlag := deriveJSON(t, "--color", "#6750a4", "--scheme", "monochrome")
	if fromFlag["primary"] != scheme.Generate(0xff6750a4, scheme.Monochrome).Dark["primary"].Hex() {
		t.Errorf("--scheme did not override the config file")
	}
}

func TestDeriveExplicitConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("scheme: fruit-salad\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := deriveJSON(t, "--config", path, "--color", "#6750a4")
	if p["primary"] != scheme.Generate(0xff6750a4, scheme.FruitSalad).Light["primary"].Hex() {
		t.Errorf("primary = %s, want fruit-salad value", p["primary"])
	}

	if _, _, err := run(t, "derive", "--config", filepath.Join(dir, "missing.toml"), "--color", "#6750a4"); err == nil {
		t.Error("missing --config file was accepted")
	}
}

func TestDeriveEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TONAL_SCHEME", "neutral")
	t.Setenv("TONAL_COLOR", "#6750a4")

	p := deriveJSON(t)
	if p["primary"] != scheme.Generate(0xff6750a4, scheme.Neutral).Light["primary"].Hex() {
		t.Errorf("primary = %s, want neutral value", p["primary"])
	}
}

func TestDeriveErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no source", []string{"derive"}, derive.ErrMissingColorSource},
		{"bad scheme", []string{"derive", "-c", "#6750a4", "-s", "pastel"}, scheme.ErrInvalidSchemeVariant},
		{"wallpaper plugin", []string{"derive", "-i", "wallpaper", "--wallpaper-plugin", "/nonexistent/plugin"}, wallpaper.ErrWallpaperUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, tt.args...); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, _, err := run(t, "derive", "-c", "#6750a4", "-f", "xml"); err == nil {
		t.Error("unknown format was accepted")
	}
	if _, _, err := run(t, "derive", "-c", "#6750a4", "extra"); err == nil {
		t.Error("positional argument was accepted")
	}
}

func TestDeriveOutputFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "out", "palette.lua")

	out, _, err := run(t, "derive", "-c", "#6750a4", "-f", "lua", "-o", path)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing when writing to a file", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "-- generated by tonal\nreturn {\n") {
		t.Errorf("lua output = %q", data)
	}
	if !strings.Contains(string(data), `["on-primary"] = "#`) {
		t.Errorf("lua output has no on-primary entry:\n%s", data)
	}
}

func TestDerivePreview(t *testing.T) {
	isolate(t)
	out, stderr, err := run(t, "derive", "-c", "#6750a4", "--preview")
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}
	if !strings.Contains(stderr, "on-primary") || !strings.Contains(out, "on-primary") {
		t.Errorf("preview missing from stderr:\n%s", stderr)
	}
}

func TestBlend(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "blend", "#ff0000", "#0000ff", "--alpha", "0.5")
	if err != nil {
		t.Fatalf("blend error: %v", err)
	}
	want, _ := derive.Blend("#ff0000", "#0000ff", 0.5)
	if out != want+"\n" {
		t.Errorf("blend = %q, want %q", out, want)
	}

	if _, _, err := run(t, "blend", "#ff0000"); err == nil {
		t.Error("blend with one colour succeeded")
	}
	if _, _, err := run(t, "blend", "nope", "#0000ff"); err == nil {
		t.Error("blend with an invalid colour succeeded")
	}
}

func TestWallpaperPlugin(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "wallpaper", "--wallpaper-plugin", "/nonexistent/plugin")
	if !errors.Is(err, wallpaper.ErrWallpaperUnavailable) {
		t.Errorf("error = %v, want ErrWallpaperUnavailable", err)
	}
}

func TestSchemes(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "schemes")
	if err != nil {
		t.Fatalf("schemes error: %v", err)
	}
	if !strings.Contains(out, "tonal-spot*") {
		t.Errorf("default scheme not marked:\n%s", out)
	}
	for _, name := range scheme.VariantNames() {
		if !strings.Contains(out, name) {
			t.Errorf("scheme %q not listed", name)
		}
	}
}

func TestTemplates(t *testing.T) {
	dir := isolate(t)
	location := filepath.Join(dir, "templates")

	out, _, err := run(t, "templates", "dump", "lua.tmpl", "-l", location)
	if err != nil {
		t.Fatalf("templates dump error: %v", err)
	}
	if strings.TrimSpace(out) != filepath.Join(location, "lua.tmpl") {
		t.Errorf("dump output = %q", out)
	}

	out, _, err = run(t, "templates", "list", "-l", location)
	if err != nil {
		t.Fatalf("templates list error: %v", err)
	}
	if !strings.Contains(out, filepath.Join(location, "lua.tmpl")) || !strings.Contains(out, "embedded") {
		t.Errorf("list output:\n%s", out)
	}

	if _, _, err := run(t, "templates", "dump", "lua.tmpl", "-l", location); err == nil {
		t.Error("dump over an existing template without --force succeeded")
	}
	if _, _, err := run(t, "templates", "dump", "nope.tmpl", "-l", location); err == nil {
		t.Error("dump of an unknown template succeeded")
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "tonal version ") {
		t.Errorf("version output = %q", out)
	}
}
