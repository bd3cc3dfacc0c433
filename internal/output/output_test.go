package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/palette"
)

func testPalette() palette.Palette {
	return palette.Palette{
		"primary":    0xff6750a4,
		"on-primary": 0xffffffff,
		"end":        0xff000000,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"hex", FormatHex, false},
		{"JSON", FormatJSON, false},
		{" lua ", FormatLua, false},
		{"yaml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestWriteHex(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatHex, testPalette()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	want := "end #000000\non-primary #ffffff\nprimary #6750a4\n"
	if buf.String() != want {
		t.Errorf("hex output = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, testPalette()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["primary"] != "#6750a4" || got["on-primary"] != "#ffffff" || len(got) != 3 {
		t.Errorf("json output = %v", got)
	}
}

func TestWriteLua(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatLua, testPalette()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"return {\n",
		`  primary = "#6750a4",`,
		`  ["on-primary"] = "#ffffff",`,
		`  ["end"] = "#000000",`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("lua output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("lua output does not close the table:\n%s", out)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("xml"), testPalette()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write error = %v, want ErrUnknownFormat", err)
	}
}

func TestLuaKey(t *testing.T) {
	tests := map[string]string{
		"primary":    "primary",
		"_private":   "_private",
		"on-primary": `["on-primary"]`,
		"1st":        `["1st"]`,
		"nil":        `["nil"]`,
		`a"b`:        `["a\"b"]`,
	}
	for in, want := range tests {
		if got := luaKey(in); got != want {
			t.Errorf("luaKey(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestTemplateOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "{{ range .Entries }}{{ .Name }}={{ hexNoHash .Hex | toUpper }};{{ end }}"
	if err := os.WriteFile(filepath.Join(dir, "hex.tmpl"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r := NewRenderer(NewTemplateLoader(dir), nil)
	if err := r.Render(&buf, FormatHex, palette.Palette{"primary": 0xff6750a4}); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := buf.String(); got != "primary=6750A4;" {
		t.Errorf("custom output = %q", got)
	}

	// Formats without an override fall back to the embedded template.
	buf.Reset()
	if err := r.Render(&buf, FormatLua, palette.Palette{"primary": 0xff6750a4}); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), `primary = "#6750a4"`) {
		t.Errorf("embedded lua output = %q", buf.String())
	}
}

func TestTemplateLoaderDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	l := NewTemplateLoader(dir)

	names, err := l.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if strings.Join(names, ",") != "hex.tmpl,lua.tmpl" {
		t.Errorf("List() = %v", names)
	}

	path, err := l.Dump("lua.tmpl", false)
	if err != nil {
		t.Fatalf("Dump error: %v", err)
	}
	if _, fromCustom, err := l.Load("lua.tmpl"); err != nil || !fromCustom {
		t.Errorf("Load after Dump: fromCustom=%v err=%v", fromCustom, err)
	}
	if _, err := l.Dump("lua.tmpl", false); err == nil {
		t.Errorf("Dump over %s without force succeeded", path)
	}
	if _, err := l.Dump("lua.tmpl", true); err != nil {
		t.Errorf("Dump with force error: %v", err)
	}
	if _, err := NewTemplateLoader("").Dump("lua.tmpl", false); err == nil {
		t.Error("Dump without a directory succeeded")
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	if err := Preview(&buf, testPalette()); err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Preview wrote %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "#6750a4") || !strings.HasSuffix(lines[2], "primary") {
		t.Errorf("Preview line = %q", lines[2])
	}
	if IsTerminal(&buf) {
		t.Error("IsTerminal(buffer) = true")
	}
}

func TestTextOn(t *testing.T) {
	if textOn(0xff000000) != 0xffffffff {
		t.Error("text on black is not white")
	}
	if textOn(0xffffffff) != 0xff000000 {
		t.Error("text on white is not black")
	}
}
