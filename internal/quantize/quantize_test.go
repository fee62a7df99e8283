package quantize

import (
	"image"
	"image/color"
	"maps"
	"testing"

	"github.com/jmylchreest/tonal/internal/hct"
)

// gradient returns a w x h image sweeping red horizontally and blue vertically.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / max(w-1, 1)), G: 40, B: uint8(y * 255 / max(h-1, 1)), A: 255})
		}
	}
	return img
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "default", modify: func(*Config) {}},
		{name: "zero colors", modify: func(c *Config) { c.MaxColors = 0 }, wantErr: true},
		{name: "too many colors", modify: func(c *Config) { c.MaxColors = 257 }, wantErr: true},
		{name: "zero iterations", modify: func(c *Config) { c.MaxIterations = 0 }, wantErr: true},
		{name: "zero samples", modify: func(c *Config) { c.MaxSamples = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuantizeFewColorsIsExact(t *testing.T) {
	pixels := []uint32{0xffff0000, 0xffff0000, 0xff00ff00, 0xff0000ff, 0xff0000ff, 0xff0000ff}
	res, err := Quantize(pixels, DefaultConfig())
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}
	want := map[uint32]int{0xffff0000: 2, 0xff00ff00: 1, 0xff0000ff: 3}
	if !maps.Equal(res.Populations, want) {
		t.Errorf("Populations = %v, want %v", res.Populations, want)
	}

	swatches := res.Swatches()
	if swatches[0].Argb != 0xff0000ff || swatches[2].Argb != 0xff00ff00 {
		t.Errorf("Swatches() = %v, want blue first and green last", swatches)
	}
}

func TestQuantizeIgnoresTranslucentPixels(t *testing.T) {
	res, err := Quantize([]uint32{0x80ff0000, 0xff00ff00}, DefaultConfig())
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}
	if len(res.Populations) != 1 || res.Populations[0xff00ff00] != 1 {
		t.Errorf("Populations = %v, want only the opaque green", res.Populations)
	}

	if _, err := Quantize([]uint32{0x00000000}, DefaultConfig()); err == nil {
		t.Error("Quantize() of fully transparent pixels error = nil")
	}
}

func TestQuantizeClusters(t *testing.T) {
	img := gradient(64, 64)
	cfg := DefaultConfig()
	cfg.MaxColors = 8
	cfg.Seed = 42

	pixels := SamplePixels(img, cfg.MaxSamples)
	first, err := Quantize(pixels, cfg)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}
	if n := len(first.Populations); n == 0 || n > cfg.MaxColors {
		t.Errorf("len(Populations) = %d, want 1..%d", n, cfg.MaxColors)
	}
	if got := first.Total(); got != len(pixels) {
		t.Errorf("Total() = %d, want %d", got, len(pixels))
	}
	for argb := range first.Populations {
		if !hct.IsOpaque(argb) {
			t.Errorf("cluster %#08x is not opaque", argb)
		}
	}

	second, err := Quantize(pixels, cfg)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}
	if !maps.Equal(first.Populations, second.Populations) {
		t.Errorf("Quantize() with the same seed differs: %v vs %v", first.Populations, second.Populations)
	}
}

func TestQuantizeImage(t *testing.T) {
	if _, err := QuantizeImage(nil, DefaultConfig()); err == nil {
		t.Error("QuantizeImage(nil) error = nil")
	}
	res, err := QuantizeImage(gradient(10, 10), DefaultConfig())
	if err != nil {
		t.Fatalf("QuantizeImage() error = %v", err)
	}
	if res.Total() != 100 {
		t.Errorf("Total() = %d, want 100", res.Total())
	}
}

func TestSamplePixels(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxSamples int
		want       int
	}{
		{name: "small image keeps every pixel", w: 10, h: 10, maxSamples: 1000, want: 100},
		{name: "large image is capped", w: 200, h: 200, maxSamples: 1000, want: 1000},
		{name: "empty image", w: 0, h: 0, maxSamples: 1000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SamplePixels(gradient(tt.w, tt.h), tt.maxSamples)
			if len(got) != tt.want {
				t.Errorf("len(SamplePixels()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSamplePixelsUnpremultiplies(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	got := SamplePixels(img, 10)[0]
	if hct.Alpha(got) != 128 {
		t.Errorf("Alpha() = %d, want 128", hct.Alpha(got))
	}
	if r := hct.Red(got); r < 198 || r > 201 {
		t.Errorf("Red() = %d, want about 200", r)
	}
}
