package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/palette"
)

const swatchWidth = 11

// Preview writes one colour swatch per palette entry, labelled with the
// hex code and the entry name. Colours are dropped when w is not a colour
// terminal.
func Preview(w io.Writer, p palette.Palette) error {
	r := lipgloss.NewRenderer(w)
	for _, name := range p.Keys() {
		c := p[name]
		swatch := r.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(textOn(c).Hex())).
			Width(swatchWidth).
			Align(lipgloss.Center).
			Render(c.Hex())
		if _, err := fmt.Fprintf(w, "%s  %s\n", swatch, name); err != nil {
			return err
		}
	}
	return nil
}

// textOn returns black or white, whichever reads better on c.
func textOn(c colour.ARGB) colour.ARGB {
	if colour.LstarFromARGB(c) < 60 {
		return 0xffffffff
	}
	return 0xff000000
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
