package quantize

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

const (
	wuIndexBits  = 5
	wuIndexCount = 1<<wuIndexBits + 1 // 33
	wuTotalSize  = wuIndexCount * wuIndexCount * wuIndexCount
)

type direction int

const (
	dirRed direction = iota
	dirGreen
	dirBlue
)

type box struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

// wu holds the cumulative moments of a colour histogram. Index 0 on every
// axis is a zero border so box sums need no bounds checks.
type wu struct {
	weights  []int64
	momentsR []int64
	momentsG []int64
	momentsB []int64
	moments  []float64
	cubes    []box
}

// Wu quantizes pixels with Wu's variance-minimising box cutting. It returns
// at most maxColors colours in cube order. Non-opaque pixels are ignored.
func Wu(pixels []colour.ARGB, maxColors int) []colour.ARGB {
	if maxColors <= 0 {
		return nil
	}
	q := &wu{
		weights:  make([]int64, wuTotalSize),
		momentsR: make([]int64, wuTotalSize),
		momentsG: make([]int64, wuTotalSize),
		momentsB: make([]int64, wuTotalSize),
		moments:  make([]float64, wuTotalSize),
	}
	q.histogram(Map(pixels))
	q.cumulate()
	count := q.createBoxes(maxColors)
	return q.results(count)
}

func wuIndex(r, g, b int) int {
	return r<<(wuIndexBits*2) + r<<(wuIndexBits+1) + r + g<<wuIndexBits + g + b
}

func (q *wu) histogram(counts Result) {
	const shift = 8 - wuIndexBits
	for c, n := range counts {
		r, g, b := int64(c.Red()), int64(c.Green()), int64(c.Blue())
		count := int64(n)
		i := wuIndex(int(r>>shift)+1, int(g>>shift)+1, int(b>>shift)+1)
		q.weights[i] += count
		q.momentsR[i] += count * r
		q.momentsG[i] += count * g
		q.momentsB[i] += count * b
		q.moments[i] += float64(count) * float64(r*r+g*g+b*b)
	}
}

// cumulate turns the histogram into 3D prefix sums.
func (q *wu) cumulate() {
	for r := 1; r < wuIndexCount; r++ {
		var (
			area  [wuIndexCount]int64
			areaR [wuIndexCount]int64
			areaG [wuIndexCount]int64
			areaB [wuIndexCount]int64
			area2 [wuIndexCount]float64
		)
		for g := 1; g < wuIndexCount; g++ {
			var line, lineR, lineG, lineB int64
			var line2 float64
			for b := 1; b < wuIndexCount; b++ {
				i := wuIndex(r, g, b)
				line += q.weights[i]
				lineR += q.momentsR[i]
				lineG += q.momentsG[i]
				lineB += q.momentsB[i]
				line2 += q.moments[i]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := wuIndex(r-1, g, b)
				q.weights[i] = q.weights[prev] + area[b]
				q.momentsR[i] = q.momentsR[prev] + areaR[b]
				q.momentsG[i] = q.momentsG[prev] + areaG[b]
				q.momentsB[i] = q.momentsB[prev] + areaB[b]
				q.moments[i] = q.moments[prev] + area2[b]
			}
		}
	}
}

func (q *wu) createBoxes(maxColors int) int {
	q.cubes = make([]box, maxColors)
	q.cubes[0] = box{r1: wuIndexCount - 1, g1: wuIndexCount - 1, b1: wuIndexCount - 1}
	variances := make([]float64, maxColors)

	generated := maxColors
	next := 0
	for i := 1; i < maxColors; i++ {
		if q.cut(&q.cubes[next], &q.cubes[i]) {
			variances[next] = q.boxVariance(q.cubes[next])
			variances[i] = q.boxVariance(q.cubes[i])
		} else {
			variances[next] = 0
			i--
		}

		next = 0
		best := variances[0]
		for j := 1; j <= i; j++ {
			if variances[j] > best {
				best = variances[j]
				next = j
			}
		}
		if best <= 0 {
			generated = i + 1
			break
		}
	}
	return generated
}

func (q *wu) results(count int) []colour.ARGB {
	out := make([]colour.ARGB, 0, count)
	for _, cube := range q.cubes[:count] {
		weight := volume(cube, q.weights)
		if weight <= 0 {
			continue
		}
		r := math.Round(float64(volume(cube, q.momentsR)) / float64(weight))
		g := math.Round(float64(volume(cube, q.momentsG)) / float64(weight))
		b := math.Round(float64(volume(cube, q.momentsB)) / float64(weight))
		out = append(out, colour.FromRGB(uint8(r), uint8(g), uint8(b)))
	}
	return out
}

func (q *wu) boxVariance(cube box) float64 {
	if cube.vol <= 1 {
		return 0
	}
	dr := float64(volume(cube, q.momentsR))
	dg := float64(volume(cube, q.momentsG))
	db := float64(volume(cube, q.momentsB))
	xx := volume(cube, q.moments)
	hypotenuse := dr*dr + dg*dg + db*db
	return xx - hypotenuse/float64(volume(cube, q.weights))
}

func (q *wu) cut(one, two *box) bool {
	wholeR := volume(*one, q.momentsR)
	wholeG := volume(*one, q.momentsG)
	wholeB := volume(*one, q.momentsB)
	wholeW := volume(*one, q.weights)

	cutR, maxR := q.maximize(*one, dirRed, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	cutG, maxG := q.maximize(*one, dirGreen, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	cutB, maxB := q.maximize(*one, dirBlue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	var dir direction
	switch {
	case maxR >= maxG && maxR >= maxB:
		if cutR < 0 {
			return false
		}
		dir = dirRed
	case maxG >= maxR && maxG >= maxB:
		dir = dirGreen
	default:
		dir = dirBlue
	}

	two.r1, two.g1, two.b1 = one.r1, one.g1, one.b1
	switch dir {
	case dirRed:
		one.r1 = cutR
		two.r0, two.g0, two.b0 = one.r1, one.g0, one.b0
	case dirGreen:
		one.g1 = cutG
		two.r0, two.g0, two.b0 = one.r0, one.g1, one.b0
	case dirBlue:
		one.b1 = cutB
		two.r0, two.g0, two.b0 = one.r0, one.g0, one.b1
	}

	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return true
}

func (q *wu) maximize(cube box, dir direction, first, last int, wholeR, wholeG, wholeB, wholeW int64) (int, float64) {
	bottomR := bottom(cube, dir, q.momentsR)
	bottomG := bottom(cube, dir, q.momentsG)
	bottomB := bottom(cube, dir, q.momentsB)
	bottomW := bottom(cube, dir, q.weights)

	best := 0.0
	cut := -1
	for i := first; i < last; i++ {
		halfR := bottomR + top(cube, dir, i, q.momentsR)
		halfG := bottomG + top(cube, dir, i, q.momentsG)
		halfB := bottomB + top(cube, dir, i, q.momentsB)
		halfW := bottomW + top(cube, dir, i, q.weights)
		if halfW == 0 {
			continue
		}
		temp := sumSquares(halfR, halfG, halfB) / float64(halfW)

		halfR = wholeR - halfR
		halfG = wholeG - halfG
		halfB = wholeB - halfB
		halfW = wholeW - halfW
		if halfW == 0 {
			continue
		}
		temp += sumSquares(halfR, halfG, halfB) / float64(halfW)

		if temp > best {
			best = temp
			cut = i
		}
	}
	return cut, best
}

func sumSquares(r, g, b int64) float64 {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return fr*fr + fg*fg + fb*fb
}

type moment interface {
	~int64 | ~float64
}

func volume[T moment](c box, m []T) T {
	return m[wuIndex(c.r1, c.g1, c.b1)] -
		m[wuIndex(c.r1, c.g1, c.b0)] -
		m[wuIndex(c.r1, c.g0, c.b1)] +
		m[wuIndex(c.r1, c.g0, c.b0)] -
		m[wuIndex(c.r0, c.g1, c.b1)] +
		m[wuIndex(c.r0, c.g1, c.b0)] +
		m[wuIndex(c.r0, c.g0, c.b1)] -
		m[wuIndex(c.r0, c.g0, c.b0)]
}

func bottom(c box, dir direction, m []int64) int64 {
	switch dir {
	case dirRed:
		return -m[wuIndex(c.r0, c.g1, c.b1)] +
			m[wuIndex(c.r0, c.g1, c.b0)] +
			m[wuIndex(c.r0, c.g0, c.b1)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	case dirGreen:
		return -m[wuIndex(c.r1, c.g0, c.b1)] +
			m[wuIndex(c.r1, c.g0, c.b0)] +
			m[wuIndex(c.r0, c.g0, c.b1)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	default:
		return -m[wuIndex(c.r1, c.g1, c.b0)] +
			m[wuIndex(c.r1, c.g0, c.b0)] +
			m[wuIndex(c.r0, c.g1, c.b0)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	}
}

func top(c box, dir direction, pos int, m []int64) int64 {
	switch dir {
	case dirRed:
		return m[wuIndex(pos, c.g1, c.b1)] -
			m[wuIndex(pos, c.g1, c.b0)] -
			m[wuIndex(pos, c.g0, c.b1)] +
			m[wuIndex(pos, c.g0, c.b0)]
	case dirGreen:
		return m[wuIndex(c.r1, pos, c.b1)] -
			m[wuIndex(c.r1, pos, c.b0)] -
			m[wuIndex(c.r0, pos, c.b1)] +
			m[wuIndex(c.r0, pos, c.b0)]
	default:
		return m[wuIndex(c.r1, c.g1, pos)] -
			m[wuIndex(c.r1, c.g0, pos)] -
			m[wuIndex(c.r0, c.g1, pos)] +
			m[wuIndex(c.r0, c.g0, pos)]
	}
}
