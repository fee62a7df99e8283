// Package image loads seed images from disk and prepares them for quantisation.
package image

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	_ "github.com/gen2brain/avif" // Register AVIF format
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// DefaultMaxPixels is the pixel count images are scaled down to before
// quantisation. Larger inputs add time without changing the result.
const DefaultMaxPixels = 128 * 128

// sniffLen is the number of header bytes filetype needs to identify a file.
const sniffLen = 261

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct {
	maxPixels int
}

// NewFileLoader creates a FileLoader that downsamples to DefaultMaxPixels.
func NewFileLoader() *FileLoader {
	return &FileLoader{maxPixels: DefaultMaxPixels}
}

// WithMaxPixels sets the downsampling target. Zero or less disables downsampling.
func (l *FileLoader) WithMaxPixels(n int) *FileLoader {
	l.maxPixels = n
	return l
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, AVIF, BMP, TIFF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if err := sniff(file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return Downscale(img, l.maxPixels), nil
}

// sniff checks the file header and rewinds the reader.
func sniff(r io.ReadSeeker) error {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("failed to read image header: %w", err)
	}
	kind, err := filetype.Match(head[:n])
	if err != nil {
		return fmt.Errorf("failed to identify file type: %w", err)
	}
	if kind == filetype.Unknown || !filetype.IsImage(head[:n]) {
		return fmt.Errorf("not an image file")
	}
	if !slices.Contains(SupportedImageExtensions(), "."+kind.Extension) {
		return fmt.Errorf("unsupported image format: %s", kind.MIME.Value)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind image file: %w", err)
	}
	return nil
}

// Downscale resizes img so that it holds at most maxPixels pixels, keeping
// the aspect ratio. Images already within the limit are returned unchanged.
func Downscale(img image.Image, maxPixels int) image.Image {
	if maxPixels <= 0 {
		return img
	}
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total <= maxPixels {
		return img
	}
	scale := math.Sqrt(float64(maxPixels) / float64(total))
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)
	return transform.Resize(img, w, h, transform.Linear)
}

// ValidateImagePath checks that path is a directory or a decodable image file.
func ValidateImagePath(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file or directory not found: %s", path)
		}
		return fmt.Errorf("failed to access image path: %w", err)
	}
	if info.IsDir() {
		return nil
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	return nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif", ".bmp", ".tif", ".tiff"}
}

func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages scans a directory and returns all valid image files.
// It does not recurse into subdirectories, but follows symlinks.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// Stat follows symlinks; broken ones are skipped.
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}
	return imageFiles, nil
}

// SelectRandomImage selects a random image from a list of image paths.
func SelectRandomImage(imagePaths []string) (string, error) {
	if len(imagePaths) == 0 {
		return "", fmt.Errorf("image path list is empty")
	}

	randomIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(imagePaths))))
	if err != nil {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		return imagePaths[binary.LittleEndian.Uint64(buf[:])%uint64(len(imagePaths))], nil
	}
	return imagePaths[randomIndex.Int64()], nil
}

// ResolveImagePath returns path unchanged when it is a file, or a random image
// from it when it is a directory.
func ResolveImagePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	imageFiles, err := ScanDirectoryForImages(path)
	if err != nil {
		return "", err
	}
	return SelectRandomImage(imageFiles)
}

// GetImageDimensions returns the width and height of an image without fully loading it.
func GetImageDimensions(path string) (width, height int, err error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}
	return config.Width, config.Height, nil
}
