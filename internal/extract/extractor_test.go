package extract

import (
	"errors"
	"slices"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/quantize"
)

func buffer(counts map[colour.ARGB]int) *image.PixelBuffer {
	var pix []colour.ARGB
	for _, c := range []colour.ARGB{0xffff0000, 0xff0000ff, 0xff808080, 0x00000000, 0xff00ff00} {
		for range counts[c] {
			pix = append(pix, c)
		}
	}
	return &image.PixelBuffer{Width: len(pix), Height: 1, Pix: pix}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		populations quantize.Result
		opts        ScoreOptions
		want        []colour.ARGB
	}{
		{
			name:        "empty",
			populations: quantize.Result{},
			opts:        DefaultScoreOptions(),
			want:        nil,
		},
		{
			name:        "greys are filtered",
			populations: quantize.Result{0xff808080: 100, 0xff202020: 30},
			opts:        DefaultScoreOptions(),
			want:        nil,
		},
		{
			name:        "population decides",
			populations: quantize.Result{0xffff0000: 100, 0xff0000ff: 50},
			opts:        DefaultScoreOptions(),
			want:        []colour.ARGB{0xffff0000, 0xff0000ff},
		},
		{
			name:        "rare hue is filtered",
			populations: quantize.Result{0xffff0000: 1000, 0xff0000ff: 5},
			opts:        DefaultScoreOptions(),
			want:        []colour.ARGB{0xffff0000},
		},
		{
			name:        "desired limits output",
			populations: quantize.Result{0xffff0000: 100, 0xff0000ff: 50},
			opts:        ScoreOptions{Desired: 1, Filter: true},
			want:        []colour.ARGB{0xffff0000},
		},
		{
			name:        "filter disabled keeps greys",
			populations: quantize.Result{0xff808080: 100},
			opts:        ScoreOptions{Desired: 4, Filter: false},
			want:        []colour.ARGB{0xff808080},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.populations, tt.opts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	populations := quantize.Result{}
	for i := range 64 {
		c := colour.FromRGB(uint8(i*37), uint8(255-i*11), uint8(i*53))
		populations[c] = 10 + i%7
	}

	first := Score(populations, DefaultScoreOptions())
	for range 20 {
		if got := Score(populations, DefaultScoreOptions()); !slices.Equal(got, first) {
			t.Fatalf("Score() = %v, previously %v", got, first)
		}
	}
}

func TestScoreSeparatesHues(t *testing.T) {
	// Two near-identical reds and a blue: the second red is too close in hue.
	populations := quantize.Result{0xffff0000: 100, 0xfff00000: 90, 0xff0000ff: 80}

	got := Score(populations, DefaultScoreOptions())
	if len(got) != 2 || got[1] != 0xff0000ff {
		t.Errorf("Score() = %v, expected one red followed by blue", got)
	}
}

func TestNewExtractor(t *testing.T) {
	for _, alg := range append(ValidAlgorithms(), "") {
		if _, err := NewExtractor(alg); err != nil {
			t.Errorf("NewExtractor(%q) unexpected error: %v", alg, err)
		}
	}
	if _, err := NewExtractor("mediancut"); err == nil {
		t.Error("Expected error for unknown algorithm")
	}
	if IsValidAlgorithm("mediancut") {
		t.Error("IsValidAlgorithm(mediancut) = true")
	}
}

func TestExtract(t *testing.T) {
	extractor, err := NewExtractor(AlgorithmCelebi)
	if err != nil {
		t.Fatalf("NewExtractor() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		buf     *image.PixelBuffer
		want    colour.ARGB
		wantErr error
	}{
		{name: "nil buffer", buf: nil, wantErr: ErrEmptyImage},
		{name: "no pixels", buf: &image.PixelBuffer{}, wantErr: ErrEmptyImage},
		{name: "grey image", buf: buffer(map[colour.ARGB]int{0xff808080: 50}), wantErr: ErrNoDominantColor},
		{name: "transparent image", buf: buffer(map[colour.ARGB]int{0x00000000: 50}), wantErr: ErrNoDominantColor},
		{name: "red dominates", buf: buffer(map[colour.ARGB]int{0xffff0000: 100, 0xff0000ff: 40, 0xff808080: 60}), want: 0xffff0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.buf)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %s, want %s", got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestExtractEveryAlgorithm(t *testing.T) {
	buf := buffer(map[colour.ARGB]int{0xffff0000: 100, 0xff0000ff: 40})

	for _, alg := range ValidAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			extractor, err := NewExtractor(alg)
			if err != nil {
				t.Fatalf("NewExtractor(%q) unexpected error: %v", alg, err)
			}
			got, err := extractor.Extract(buf)
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			// kmeans clusters in L*a*b*, so allow for rounding on the way back.
			if got.Red() < 250 || got.Green() > 5 || got.Blue() > 5 {
				t.Errorf("Extract() = %s, want red", got.Hex())
			}
		})
	}
}
