package output

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	files := map[string][]byte{
		"b.conf":        []byte("b"),
		"a.conf":        []byte("a"),
		"sub/theme.css": []byte("css"),
	}

	written, err := WriteFiles(dir, files, WriteOptions{})
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.conf"),
		filepath.Join(dir, "b.conf"),
		filepath.Join(dir, "sub", "theme.css"),
	}
	if !slices.Equal(written, want) {
		t.Errorf("WriteFiles() = %v, want %v", written, want)
	}
	got, err := os.ReadFile(filepath.Join(dir, "sub", "theme.css"))
	if err != nil || string(got) != "css" {
		t.Errorf("sub/theme.css = %q, %v", got, err)
	}
}

func TestWriteFilesDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	written, err := WriteFiles(dir, map[string][]byte{"a.conf": []byte("a")}, WriteOptions{DryRun: true})
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if len(written) != 0 {
		t.Errorf("WriteFiles(DryRun) = %v, want nothing written", written)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("dry run created %s", dir)
	}
}

func TestWriteFilesBackup(t *testing.T) {
	tests := []struct {
		name       string
		backup     bool
		wantBackup bool
	}{
		{name: "overwrite", backup: false, wantBackup: false},
		{name: "backup", backup: true, wantBackup: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "a.conf")
			if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
				t.Fatal(err)
			}

			if _, err := WriteFiles(dir, map[string][]byte{"a.conf": []byte("new")}, WriteOptions{Backup: tt.backup}); err != nil {
				t.Fatalf("WriteFiles() error = %v", err)
			}
			if got, _ := os.ReadFile(path); string(got) != "new" {
				t.Errorf("a.conf = %q, want new", got)
			}
			old, err := os.ReadFile(path + ".backup")
			if tt.wantBackup && string(old) != "old" {
				t.Errorf("a.conf.backup = %q, %v, want old", old, err)
			}
			if !tt.wantBackup && err == nil {
				t.Error("a.conf.backup exists without Backup")
			}
		})
	}
}
