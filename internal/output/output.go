// Package output serializes derived palettes.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/palette"
)

// ErrUnknownFormat is returned for an output format that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output serialization.
type Format string

// Supported formats.
const (
	FormatHex  Format = "hex"
	FormatJSON Format = "json"
	FormatLua  Format = "lua"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatHex, FormatJSON, FormatLua}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("%w: %q (supported: hex, json, lua)", ErrUnknownFormat, name)
	}
	return f, nil
}

// Entry is one palette colour as seen by templates.
type Entry struct {
	Name string
	Hex  string
}

type templateData struct {
	Title   string
	Entries []Entry
}

// Renderer writes palettes in any supported format.
type Renderer struct {
	loader *TemplateLoader
	logger hclog.Logger
}

// NewRenderer returns a Renderer that loads templates through loader. A nil
// loader uses the embedded templates only.
func NewRenderer(loader *TemplateLoader, logger hclog.Logger) *Renderer {
	if loader == nil {
		loader = NewTemplateLoader("")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Renderer{loader: loader, logger: logger}
}

// Render writes p to w in format f.
func (r *Renderer) Render(w io.Writer, f Format, p palette.Palette) error {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatHex, FormatLua:
		return r.renderTemplate(w, string(f)+".tmpl", p)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func (r *Renderer) renderTemplate(w io.Writer, filename string, p palette.Palette) error {
	content, fromCustom, err := r.loader.Load(filename)
	if err != nil {
		return err
	}
	if fromCustom {
		r.logger.Debug("using custom template", "path", r.loader.CustomPath(filename))
	}

	tmpl, err := template.New(filename).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", filename, err)
	}

	data := templateData{Title: "generated by tonal"}
	for _, name := range p.Keys() {
		data.Entries = append(data.Entries, Entry{Name: name, Hex: p[name].Hex()})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", filename, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// Write renders p with the embedded templates.
func Write(w io.Writer, f Format, p palette.Palette) error {
	return NewRenderer(nil, nil).Render(w, f, p)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"luaKey":    luaKey,
		"hexNoHash": func(hex string) string { return strings.TrimPrefix(hex, "#") },
		"toUpper":   strings.ToUpper,
		"toLower":   strings.ToLower,
	}
}

var luaIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var luaKeywords = []string{
	"and", "break", "do", "else", "elseif", "end", "false", "for", "function", "goto",
	"if", "in", "local", "nil", "not", "or", "repeat", "return", "then", "true", "until", "while",
}

// luaKey returns name as a Lua table key: bare when it is an identifier,
// bracketed and quoted otherwise.
func luaKey(name string) string {
	if luaIdentifier.MatchString(name) && !slices.Contains(luaKeywords, name) {
		return name
	}
	return "[" + strconv.Quote(name) + "]"
}
