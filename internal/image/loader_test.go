package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	large := filepath.Join(dir, "large.png")
	text := filepath.Join(dir, "notes.png")
	writePNG(t, small, 16, 8)
	writePNG(t, large, 400, 200)
	if err := os.WriteFile(text, []byte("definitely not a picture"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantW   int
		wantH   int
		wantErr string
	}{
		{name: "small image is unchanged", path: small, wantW: 16, wantH: 8},
		{name: "large image is downscaled", path: large, wantW: 181, wantH: 90},
		{name: "empty path", path: "", wantErr: "cannot be empty"},
		{name: "missing file", path: filepath.Join(dir, "missing.png"), wantErr: "not found"},
		{name: "directory", path: dir, wantErr: "is a directory"},
		{name: "not an image", path: text, wantErr: "not an image"},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := loader.Load(tt.path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Load() size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFileLoaderWithoutDownscale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.png")
	writePNG(t, path, 300, 100)
	img, err := NewFileLoader().WithMaxPixels(0).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 100 {
		t.Errorf("Load() size = %dx%d, want 300x100", b.Dx(), b.Dy())
	}
}

func TestDownscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1000, 10))
	got := Downscale(img, 100)
	if b := got.Bounds(); b.Dx()*b.Dy() > 100 || b.Dy() < 1 {
		t.Errorf("Downscale() size = %dx%d, want at most 100 pixels", b.Dx(), b.Dy())
	}
	if Downscale(img, 20000) != image.Image(img) {
		t.Error("Downscale() within the limit returned a copy")
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 2, 2)
	writePNG(t, filepath.Join(dir, "b.PNG"), 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("ScanDirectoryForImages() = %v, want 2 files", files)
	}

	if _, err := ScanDirectoryForImages(t.TempDir()); err == nil {
		t.Error("ScanDirectoryForImages() of an empty directory error = nil")
	}
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.png")
	writePNG(t, path, 2, 2)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "file", input: path, want: path},
		{name: "directory with one image", input: dir, want: path},
		{name: "missing", input: filepath.Join(dir, "nope"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveImagePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveImagePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveImagePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectRandomImage(t *testing.T) {
	if _, err := SelectRandomImage(nil); err == nil {
		t.Error("SelectRandomImage(nil) error = nil")
	}
	paths := []string{"a.png", "b.png"}
	got, err := SelectRandomImage(paths)
	if err != nil || (got != "a.png" && got != "b.png") {
		t.Errorf("SelectRandomImage() = %q, %v", got, err)
	}
}

func TestValidateImagePathAndDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	writePNG(t, path, 12, 7)

	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath(file) error = %v", err)
	}
	if err := ValidateImagePath(dir); err != nil {
		t.Errorf("ValidateImagePath(dir) error = %v", err)
	}
	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath(\"\") error = nil")
	}

	w, h, err := GetImageDimensions(path)
	if err != nil || w != 12 || h != 7 {
		t.Errorf("GetImageDimensions() = %d, %d, %v, want 12, 7", w, h, err)
	}
}
