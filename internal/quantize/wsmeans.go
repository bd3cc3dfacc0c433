package quantize

import (
	"math"
	"math/rand/v2"

	"github.com/jmylchreest/tonal/internal/colour"
)

const (
	wsmeansMaxIterations = 10
	wsmeansMinMovement   = 3.0
	wsmeansSeed          = 0x42688
)

// WSMeans refines startingClusters with weighted k-means in L*a*b*. Each
// distinct pixel colour is a point weighted by its count. When no starting
// clusters are given, maxColors clusters are seeded pseudo-randomly from a
// fixed seed, so results are reproducible.
func WSMeans(pixels []colour.ARGB, startingClusters []colour.ARGB, maxColors int) Result {
	counts := make(map[colour.ARGB]int)
	var (
		points  []labPoint
		weights []int
		order   []colour.ARGB
	)
	for _, p := range pixels {
		if _, seen := counts[p]; !seen {
			order = append(order, p)
			points = append(points, toLab(p))
		}
		counts[p]++
	}
	for _, p := range order {
		weights = append(weights, counts[p])
	}

	pointCount := len(points)
	clusterCount := min(maxColors, pointCount)
	if len(startingClusters) > 0 {
		clusterCount = min(clusterCount, len(startingClusters))
	}
	if clusterCount <= 0 {
		return Result{}
	}

	rng := rand.New(rand.NewPCG(wsmeansSeed, wsmeansSeed))

	clusters := make([]labPoint, 0, clusterCount)
	for _, c := range startingClusters[:min(len(startingClusters), clusterCount)] {
		clusters = append(clusters, toLab(c))
	}
	for len(clusters) < clusterCount {
		clusters = append(clusters, labPoint{
			rng.Float64() * 100,
			rng.Float64()*200 - 100,
			rng.Float64()*200 - 100,
		})
	}

	assignments := make([]int, pointCount)
	for i := range assignments {
		assignments[i] = rng.IntN(clusterCount)
	}

	between := make([][]float64, clusterCount)
	for i := range between {
		between[i] = make([]float64, clusterCount)
	}
	populations := make([]int, clusterCount)

	for iteration := range wsmeansMaxIterations {
		for i := range clusterCount {
			for j := i + 1; j < clusterCount; j++ {
				d := clusters[i].distance(clusters[j])
				between[i][j] = d
				between[j][i] = d
			}
		}

		moved := 0
		for i, point := range points {
			previous := assignments[i]
			previousDistance := point.distance(clusters[previous])
			minimum := previousDistance
			next := -1
			for j := range clusterCount {
				// Triangle inequality: j cannot be closer than the current cluster.
				if between[previous][j] >= 4*previousDistance {
					continue
				}
				if d := point.distance(clusters[j]); d < minimum {
					minimum = d
					next = j
				}
			}
			if next != -1 {
				change := math.Abs(math.Sqrt(minimum) - math.Sqrt(previousDistance))
				if change > wsmeansMinMovement {
					moved++
					assignments[i] = next
				}
			}
		}
		if moved == 0 && iteration != 0 {
			break
		}

		sums := make([]labPoint, clusterCount)
		clear(populations)
		for i, point := range points {
			c := assignments[i]
			w := float64(weights[i])
			populations[c] += weights[i]
			sums[c][0] += point[0] * w
			sums[c][1] += point[1] * w
			sums[c][2] += point[2] * w
		}
		for i := range clusters {
			n := float64(populations[i])
			if n == 0 {
				clusters[i] = labPoint{}
				continue
			}
			clusters[i] = labPoint{sums[i][0] / n, sums[i][1] / n, sums[i][2] / n}
		}
	}

	out := make(Result, clusterCount)
	for i, cluster := range clusters {
		if populations[i] == 0 {
			continue
		}
		// Clusters that round to the same sRGB colour are merged.
		out[fromLab(cluster)] += populations[i]
	}
	return out
}
