package quantize

import (
	"image"
	"math"

	"github.com/jmylchreest/tonal/internal/hct"
)

// SamplePixels returns the image's pixels as ARGB values. Images larger than
// maxSamples pixels are sampled on a regular grid.
func SamplePixels(img image.Image, maxSamples int) []uint32 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height
	if totalPixels <= 0 {
		return nil
	}

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]uint32, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, argbAt(img, x, y))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

func argbAt(img image.Image, x, y int) uint32 {
	r, g, b, a := img.At(x, y).RGBA()
	// RGBA is alpha-premultiplied; undo it so translucent pixels keep their hue.
	if a > 0 && a < 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return uint32(a>>8)<<24 | hct.ArgbFromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))&0x00ffffff
}
