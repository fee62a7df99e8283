package quantize

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand"
	"path/filepath"
	"slices"
	"time"
)

// SeedMode determines how the random seed for k-means initialisation is generated.
type SeedMode string

const (
	// SeedContent derives the seed from the image pixels (default).
	SeedContent SeedMode = "content"
	// SeedFilepath derives the seed from the absolute image path.
	SeedFilepath SeedMode = "filepath"
	// SeedManual uses a caller supplied value.
	SeedManual SeedMode = "manual"
	// SeedRandom varies every run.
	SeedRandom SeedMode = "random"
)

// SeedModes returns the valid seed modes.
func SeedModes() []SeedMode {
	return []SeedMode{SeedContent, SeedFilepath, SeedManual, SeedRandom}
}

// ParseSeedMode converts a string to a SeedMode.
func ParseSeedMode(s string) (SeedMode, error) {
	mode := SeedMode(s)
	if slices.Contains(SeedModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, filepath, manual, random)", s)
}

// Seed returns the k-means seed for img according to mode.
// path is only consulted for SeedFilepath and value only for SeedManual.
func Seed(mode SeedMode, img image.Image, path string, value *int64) (int64, error) {
	switch mode {
	case SeedContent, "":
		return ContentSeed(img)
	case SeedFilepath:
		return FilepathSeed(path)
	case SeedManual:
		if value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *value, nil
	case SeedRandom:
		// #nosec G404 -- non-deterministic on purpose
		return time.Now().UnixNano() + int64(rand.Intn(1000000)), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", mode)
	}
}

// ContentSeed hashes the image dimensions and a grid of its pixels so that the
// same picture always quantises the same way, wherever it lives on disk.
func ContentSeed(img image.Image) (int64, error) {
	if img == nil {
		return 0, fmt.Errorf("image cannot be nil")
	}

	bounds := img.Bounds()
	hasher := sha256.New()

	dimBytes := make([]byte, 8)
	binary.LittleEndian.PutUint32(dimBytes[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions are non-negative
	binary.LittleEndian.PutUint32(dimBytes[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions are non-negative
	hasher.Write(dimBytes)

	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	pixelBytes := make([]byte, 4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			pixelBytes[0] = byte(r >> 8)
			pixelBytes[1] = byte(g >> 8)
			pixelBytes[2] = byte(b >> 8)
			pixelBytes[3] = byte(a >> 8)
			hasher.Write(pixelBytes)
		}
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])), nil // #nosec G115 -- hash bits reinterpreted
}

// FilepathSeed hashes the absolute form of path.
func FilepathSeed(path string) (int64, error) {
	if path == "" {
		return 0, fmt.Errorf("image path cannot be empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	hash := sha256.Sum256([]byte(absPath))
	return int64(binary.LittleEndian.Uint64(hash[:8])), nil // #nosec G115 -- hash bits reinterpreted
}
