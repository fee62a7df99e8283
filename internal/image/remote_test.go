package image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func TestIsRemote(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"https://example.com/a.png", true},
		{"http://example.com/a.png", true},
		{"ftp://example.com/a.png", false},
		{"/home/me/a.png", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.path); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCacheName(t *testing.T) {
	a := cacheName("https://example.com/wall.PNG?size=large")
	if !strings.HasSuffix(a, ".png") {
		t.Errorf("cacheName() = %q, want .png suffix", a)
	}
	if b := cacheName("https://example.com/wall.PNG?size=large"); a != b {
		t.Errorf("cacheName() not stable: %q != %q", a, b)
	}
	if c := cacheName("https://example.com/image"); !strings.HasSuffix(c, ".img") {
		t.Errorf("cacheName() without extension = %q, want .img suffix", c)
	}
}

func TestDownloadAndCache(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.png")
	writePNG(t, src, 32, 32)
	body, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/wall.png":
			if !strings.HasPrefix(r.UserAgent(), "tonal/") {
				t.Errorf("User-Agent = %q, want tonal/...", r.UserAgent())
			}
			_, _ = w.Write(body)
		case "/page.html":
			_, _ = w.Write([]byte("<html><body>not an image</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	opts := CacheOptions{CacheDir: t.TempDir(), Client: srv.Client()}

	path, err := DownloadAndCache(ctx, srv.URL+"/wall.png", opts)
	if err != nil {
		t.Fatalf("DownloadAndCache() error = %v", err)
	}
	if _, err := NewFileLoader().Load(path); err != nil {
		t.Errorf("cached image does not load: %v", err)
	}

	again, err := DownloadAndCache(ctx, srv.URL+"/wall.png", opts)
	if err != nil || again != path {
		t.Errorf("second DownloadAndCache() = %q, %v, want %q", again, err, path)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1 (cached)", got)
	}

	opts.Refresh = true
	if _, err := DownloadAndCache(ctx, srv.URL+"/wall.png", opts); err != nil {
		t.Fatalf("DownloadAndCache(Refresh) error = %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hit %d times after refresh, want 2", got)
	}

	errorCases := []struct {
		name string
		url  string
		want string
	}{
		{name: "not found", url: srv.URL + "/missing.png", want: "404"},
		{name: "not an image", url: srv.URL + "/page.html", want: "not an image"},
		{name: "bad scheme", url: "file:///etc/passwd", want: "invalid URL"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DownloadAndCache(ctx, tt.url, opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("DownloadAndCache(%s) error = %v, want it to contain %q", tt.url, err, tt.want)
			}
		})
	}

	entries, _ := os.ReadDir(opts.CacheDir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".part") || strings.HasSuffix(e.Name(), ".html") {
			t.Errorf("unexpected cache entry %s", e.Name())
		}
	}
}
