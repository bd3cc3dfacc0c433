package quantize

import (
	"fmt"
	"image"
	"math"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/jmylchreest/tonal/internal/colour"
)

// KMeans clusters the opaque pixels in L*a*b* with muesli/kmeans. Cluster
// seeding is random, so repeated runs may differ slightly.
func KMeans(pixels []colour.ARGB, k int) (Result, error) {
	counts := Map(pixels)
	if len(counts) == 0 || k <= 0 {
		return Result{}, nil
	}

	dataset := make(clusters.Observations, 0, len(pixels))
	for _, p := range pixels {
		if !p.IsOpaque() {
			continue
		}
		lab := toLab(p)
		dataset = append(dataset, clusters.Coordinates{lab[0], lab[1], lab[2]})
	}

	km, err := kmeans.NewWithOptions(0.01, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create kmeans partitioner: %w", err)
	}
	cc, err := km.Partition(dataset, min(k, len(counts)))
	if err != nil {
		return nil, fmt.Errorf("kmeans partition failed: %w", err)
	}

	out := make(Result, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		out[fromLab(labPoint{c.Center[0], c.Center[1], c.Center[2]})] += len(c.Observations)
	}
	return out, nil
}

// Dominant uses cenkalti/dominantcolor, which clusters a downscaled copy of
// the image. Weights are converted to populations relative to the image
// area.
func Dominant(img image.Image, n int) Result {
	b := img.Bounds()
	area := float64(b.Dx() * b.Dy())

	out := make(Result)
	for _, c := range dominantcolor.FindWeight(img, n) {
		argb := colour.FromRGB(c.RGBA.R, c.RGBA.G, c.RGBA.B)
		out[argb] += max(1, int(math.Round(c.Weight*area)))
	}
	return out
}

// Prominent uses EdlinOrg/prominentcolor k-means without cropping. Pixels
// matching its default background masks (pure white, black and green
// screens) are skipped by the library.
func Prominent(img image.Image, k int) (Result, error) {
	items, err := prominentcolor.KmeansWithAll(k, img, prominentcolor.ArgumentNoCropping, prominentcolor.DefaultSize, prominentcolor.GetDefaultMasks())
	if err != nil {
		return nil, fmt.Errorf("prominentcolor failed: %w", err)
	}

	out := make(Result, len(items))
	for _, item := range items {
		argb := colour.FromRGB(uint8(item.Color.R), uint8(item.Color.G), uint8(item.Color.B))
		out[argb] += item.Cnt
	}
	return out, nil
}
