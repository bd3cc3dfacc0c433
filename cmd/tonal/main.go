// Tonal - Material You palettes from colours and wallpapers
//
// Tonal derives a tonal colour scheme from a colour, an image or the
// current desktop wallpaper and harmonizes your own palette towards it.
package main

import (
	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	cli.Execute()
}
