package storage

import (
	"path/filepath"
	"testing"
)

func TestRunsRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if err := db.InsertRun("trace-1", "/data/a.xlsx", 42, 30, 12, 15.5); err != nil {
		t.Fatal(err)
	}
	if err := db.InsertRun("trace-2", "/data/b.xlsx", 10, 1, 0, 3); err != nil {
		t.Fatal(err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs=%d", len(runs))
	}
	if runs[0].TraceID != "trace-2" {
		t.Fatalf("order wrong: %+v", runs[0])
	}
	if runs[1].Total != 42 || runs[1].WithPhotos != 30 || runs[1].WithLogos != 12 {
		t.Fatalf("unexpected row: %+v", runs[1])
	}

	runs, err = db.ListRuns(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs=%d", len(runs))
	}
}

func TestMetadata(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	value, err := db.GetMetadata("last_run")
	if err != nil {
		t.Fatal(err)
	}
	if value != nil {
		t.Fatalf("value=%v", *value)
	}

	if err := db.SetMetadata("last_run", "2026-08-31T00:00:00Z"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata("last_run", "2026-08-31T01:00:00Z"); err != nil {
		t.Fatal(err)
	}

	value, err = db.GetMetadata("last_run")
	if err != nil {
		t.Fatal(err)
	}
	if value == nil || *value != "2026-08-31T01:00:00Z" {
		t.Fatalf("value=%v", value)
	}
}
