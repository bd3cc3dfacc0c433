// Package extract picks the key colour of an image: the pixels are
// quantized into weighted clusters which are then scored.
package extract

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/quantize"
)

var (
	// ErrEmptyImage is returned when the pixel buffer has no pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrNoDominantColor is returned when no cluster survives scoring.
	ErrNoDominantColor = errors.New("no dominant color found")
)

// Extractor defines the interface for key colour extraction.
type Extractor interface {
	// Extract returns the highest scoring colour of buf.
	Extract(buf *image.PixelBuffer) (colour.ARGB, error)
}

// Algorithm represents the quantization algorithm type.
type Algorithm string

const (
	// AlgorithmCelebi uses Wu quantization refined by weighted k-means.
	// It is the default and fully deterministic.
	AlgorithmCelebi Algorithm = "celebi"

	// AlgorithmKMeans uses k-means clustering in L*a*b*.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominant uses dominant colour clustering on a thumbnail.
	AlgorithmDominant Algorithm = "dominant"

	// AlgorithmProminent uses k-means++ with background masking.
	AlgorithmProminent Algorithm = "prominent"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = AlgorithmCelebi

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmCelebi,
		AlgorithmKMeans,
		AlgorithmDominant,
		AlgorithmProminent,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
// An empty name selects DefaultAlgorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case "", AlgorithmCelebi:
		return &ScoringExtractor{quantize: func(buf *image.PixelBuffer) (quantize.Result, error) {
			return quantize.Celebi(buf.Pix, quantize.MaxColors), nil
		}}, nil
	case AlgorithmKMeans:
		return &ScoringExtractor{quantize: func(buf *image.PixelBuffer) (quantize.Result, error) {
			return quantize.KMeans(buf.Pix, quantize.MaxColors)
		}}, nil
	case AlgorithmDominant:
		return &ScoringExtractor{quantize: func(buf *image.PixelBuffer) (quantize.Result, error) {
			return quantize.Dominant(buf, quantize.MaxColors), nil
		}}, nil
	case AlgorithmProminent:
		return &ScoringExtractor{quantize: func(buf *image.PixelBuffer) (quantize.Result, error) {
			return quantize.Prominent(buf, 16)
		}}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ScoringExtractor quantizes a buffer and returns the best scored colour.
type ScoringExtractor struct {
	quantize func(*image.PixelBuffer) (quantize.Result, error)
	options  ScoreOptions
}

// Extract implements Extractor.
func (e *ScoringExtractor) Extract(buf *image.PixelBuffer) (colour.ARGB, error) {
	ranked, err := e.Rank(buf)
	if err != nil {
		return 0, err
	}
	return ranked[0], nil
}

// Rank returns the scored candidates, best first. It never returns an
// empty slice without an error.
func (e *ScoringExtractor) Rank(buf *image.PixelBuffer) ([]colour.ARGB, error) {
	if buf == nil || buf.Len() == 0 {
		return nil, ErrEmptyImage
	}

	populations, err := e.quantize(buf)
	if err != nil {
		return nil, fmt.Errorf("quantization failed: %w", err)
	}

	opts := e.options
	if opts.Desired == 0 {
		opts = DefaultScoreOptions()
	}
	ranked := Score(populations, opts)
	if len(ranked) == 0 {
		return nil, ErrNoDominantColor
	}
	return ranked, nil
}
