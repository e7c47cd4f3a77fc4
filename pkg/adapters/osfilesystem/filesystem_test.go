package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "summary.md")

	if err := fs.WriteFile(testPath, []byte("# Summary")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "# Summary" {
		t.Errorf("expected %q, got %q", "# Summary", data)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "reports", "2024", "run.md")

	if err := fs.WriteFile(testPath, []byte("test")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "clip.mp4")
	if err := os.WriteFile(testPath, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{testPath, true},
		{tmpDir, true},
		{filepath.Join(tmpDir, "nonexistent.mp4"), false},
	}

	for _, tt := range tests {
		exists, err := fs.Exists(tt.path)
		if err != nil {
			t.Fatalf("Exists(%s) failed: %v", tt.path, err)
		}
		if exists != tt.want {
			t.Errorf("Exists(%s) = %v, want %v", tt.path, exists, tt.want)
		}
	}
}

func TestFileSystem_ModTimeAndSize(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(testPath, []byte("0123456789"), 0644); err != nil {
		t.Fatal(err)
	}

	mtime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(testPath, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	got, err := fs.ModTime(testPath)
	if err != nil {
		t.Fatalf("ModTime failed: %v", err)
	}
	if !got.Equal(mtime) {
		t.Errorf("expected %v, got %v", mtime, got)
	}

	size, err := fs.Size(testPath)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 10 {
		t.Errorf("expected size 10, got %d", size)
	}
}

func TestFileSystem_ModTimeErrors(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	if _, err := fs.ModTime(filepath.Join(tmpDir, "missing.mp4")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := fs.ModTime(tmpDir); err == nil {
		t.Error("expected error for directory")
	}
}
