package image

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmylchreest/tonal/internal/version"
)

const (
	// DefaultFetchTimeout bounds a remote image download.
	DefaultFetchTimeout = 30 * time.Second

	// MaxRemoteBytes is the largest remote image accepted.
	MaxRemoteBytes = 64 << 20
)

// CacheOptions configures DownloadAndCache.
type CacheOptions struct {
	// CacheDir defaults to DefaultCacheDir().
	CacheDir string
	// Refresh downloads again even when the URL is already cached.
	Refresh bool
	// Timeout defaults to DefaultFetchTimeout.
	Timeout time.Duration
	// Client defaults to a client with Timeout.
	Client *http.Client
}

// IsRemote reports whether path is an http(s) URL.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// DefaultCacheDir returns the user cache directory for downloaded images.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		dir = filepath.Join(home, ".cache")
	}
	return filepath.Join(dir, "tonal", "images"), nil
}

// cacheName derives a stable file name from url: a hash of the URL plus
// the extension of its path, if it looks like one.
func cacheName(url string) string {
	sum := sha256.Sum256([]byte(url))
	name := hex.EncodeToString(sum[:16])

	p := url
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	ext := strings.ToLower(path.Ext(p))
	if !isImageFile("x" + ext) {
		ext = ".img"
	}
	return name + ext
}

// DownloadAndCache fetches the image at url into the cache and returns the
// local path. A cached copy is reused unless opts.Refresh is set. Responses
// that are not a supported image are rejected before anything is written.
func DownloadAndCache(ctx context.Context, url string, opts CacheOptions) (string, error) {
	if !IsRemote(url) {
		return "", fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	dir := opts.CacheDir
	if dir == "" {
		d, err := DefaultCacheDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	cached := filepath.Join(dir, cacheName(url))
	if !opts.Refresh {
		if _, err := os.Stat(cached); err == nil {
			return cached, nil
		}
	}

	data, err := fetch(ctx, url, opts)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	if err := sniff(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%s: %w", url, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp := cached + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp, cached); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	return cached, nil
}

func fetch(ctx context.Context, url string, opts CacheOptions) ([]byte, error) {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultFetchTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "tonal/"+version.Version)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxRemoteBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > MaxRemoteBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxRemoteBytes)
	}
	return data, nil
}
