package photos

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names []string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, []string{
		"131cs001_john.jpg",
		"131CS002.PNG",
		"131cs003 jane.jpeg",
		"notes.txt",
		"readme",
	})

	idx, err := BuildIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 3 {
		t.Fatalf("len=%d", len(idx))
	}
	if got := idx.Lookup("131CS001"); got != "131cs001_john.jpg" {
		t.Fatalf("photo=%q", got)
	}
	if got := idx.Lookup("131CS002"); got != "131CS002.PNG" {
		t.Fatalf("photo=%q", got)
	}
	if got := idx.Lookup("131CS999"); got != "" {
		t.Fatalf("photo=%q", got)
	}
}

func TestBuildIndexLastWins(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, []string{"131cs001_a.jpg", "131cs001_b.jpg"})

	idx, err := BuildIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := idx.Lookup("131CS001"); got != "131cs001_b.jpg" {
		t.Fatalf("photo=%q", got)
	}
}

func TestBuildIndexEmptyDir(t *testing.T) {
	idx, err := BuildIndex(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 0 {
		t.Fatalf("len=%d", len(idx))
	}
}

func TestBuildIndexMissingDir(t *testing.T) {
	if _, err := BuildIndex(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error")
	}
}
