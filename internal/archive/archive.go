// Package archive bundles exported files into a single .tar.xz so a theme
// can be shared or restored in one piece.
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// DefaultMaxSize bounds the decompressed size Read accepts.
const DefaultMaxSize = 64 << 20

// ErrSizeLimit is returned when an archive decompresses past its limit.
var ErrSizeLimit = errors.New("decompression size limit exceeded")

// Write writes files as a tar stream compressed with xz. Entries are sorted
// by name and carry a fixed timestamp so identical themes archive identically.
func Write(w io.Writer, files map[string][]byte, modTime time.Time) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		data := files[name]
		header := &tar.Header{
			Name:    name,
			Mode:    0o644,
			Size:    int64(len(data)),
			ModTime: modTime,
			Format:  tar.FormatPAX,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return nil
}

// WriteFile creates path and writes the archive to it.
func WriteFile(filename string, files map[string][]byte, modTime time.Time) (err error) {
	f, err := os.Create(filename) // #nosec G304 - archive path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close archive: %w", cerr)
		}
	}()
	return Write(f, files, modTime)
}

// Read decompresses a .tar.xz stream into memory. Directories are skipped
// and entries with unsafe names are rejected.
func Read(r io.Reader, maxBytes int64) (map[string][]byte, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	tr := tar.NewReader(&limitedReader{r: xzr, remaining: maxBytes})

	files := make(map[string][]byte)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return files, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := ValidateName(header.Name); err != nil {
			return nil, err
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Name, err)
		}
		files[header.Name] = data
	}
}

// ReadFile reads the archive at filename with DefaultMaxSize.
func ReadFile(filename string) (map[string][]byte, error) {
	f, err := os.Open(filename) // #nosec G304 - archive path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()
	return Read(f, DefaultMaxSize)
}

// ValidateName rejects entry names that could escape an extraction directory.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty file path")
	}
	if path.IsAbs(name) || strings.HasPrefix(name, "\\") {
		return fmt.Errorf("absolute paths in archives are not allowed: %s", name)
	}
	for _, part := range strings.Split(strings.ReplaceAll(name, "\\", "/"), "/") {
		if part == ".." {
			return fmt.Errorf("file path contains directory traversal (..): %s", name)
		}
	}
	return nil
}

// limitedReader fails once more than remaining bytes have been read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
