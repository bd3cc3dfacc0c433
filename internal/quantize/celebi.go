package quantize

import "github.com/jmylchreest/tonal/internal/colour"

// MaxColors is the cluster budget used when extracting a key colour.
const MaxColors = 128

// Celebi quantizes pixels with Wu's method and refines the result with
// WSMeans, after M. E. Celebi, "Improving the performance of k-means for
// color quantization". Non-opaque pixels are ignored. The result is
// deterministic for a given input.
func Celebi(pixels []colour.ARGB, maxColors int) Result {
	maxColors = min(maxColors, 256)
	pixels = opaque(pixels)
	wu := Wu(pixels, maxColors)
	return WSMeans(pixels, wu, maxColors)
}
