package watcher

import (
	"os"
	"path/filepath"
	"testing"

	"placements/internal/config"
)

func TestSourceStamp(t *testing.T) {
	tmp := t.TempDir()
	inputPath := filepath.Join(tmp, "placements.xlsx")
	photoDir := filepath.Join(tmp, "photos")
	if err := os.WriteFile(inputPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(photoDir, 0o755); err != nil {
		t.Fatal(err)
	}

	s := NewService(nil, config.Config{InputPath: inputPath, PhotoDir: photoDir})
	before, err := s.sourceStamp()
	if err != nil {
		t.Fatal(err)
	}
	again, err := s.sourceStamp()
	if err != nil {
		t.Fatal(err)
	}
	if before != again {
		t.Fatal("stamp changed without source changes")
	}

	if err := os.WriteFile(filepath.Join(photoDir, "131cs001.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	after, err := s.sourceStamp()
	if err != nil {
		t.Fatal(err)
	}
	if after == before {
		t.Fatal("stamp did not change after new photo")
	}
}

func TestSourceStampMissingInput(t *testing.T) {
	s := NewService(nil, config.Config{InputPath: filepath.Join(t.TempDir(), "nope.xlsx")})
	if _, err := s.sourceStamp(); err == nil {
		t.Fatal("expected error")
	}
}
