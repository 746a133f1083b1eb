package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"placements/internal"
	"placements/internal/config"
	"placements/internal/photos"
	"placements/internal/storage"
)

type RunService struct {
	db  *storage.DB
	cfg config.Config
}

func NewRunService(db *storage.DB, cfg config.Config) *RunService {
	return &RunService{db: db, cfg: cfg}
}

type RunResult struct {
	Document   internal.Document
	WithPhotos int
	WithLogos  int
}

// BuildDocument runs the extract and build stages without writing output.
func (s *RunService) BuildDocument(inputPath, photoDir string) (RunResult, error) {
	table, err := LoadTable(inputPath, s.cfg.SheetName)
	if err != nil {
		return RunResult{}, err
	}

	idx, err := photos.BuildIndex(photoDir)
	if err != nil {
		return RunResult{}, err
	}

	records, err := NewBuilder(idx).Build(table)
	if err != nil {
		return RunResult{}, err
	}

	result := RunResult{Document: internal.Document{Students: records, Total: len(records)}}
	for _, rec := range records {
		if rec.Photo != "" {
			result.WithPhotos++
		}
		if rec.Logo != "" {
			result.WithLogos++
		}
	}
	return result, nil
}

// Run executes the whole pipeline and overwrites the JSON document at
// outputPath. A summary row lands in the run history when a database is
// attached.
func (s *RunService) Run(inputPath, photoDir, outputPath string) (RunResult, error) {
	start := time.Now()

	result, err := s.BuildDocument(inputPath, photoDir)
	if err != nil {
		return RunResult{}, err
	}
	if err := WriteDocument(result.Document, outputPath); err != nil {
		return RunResult{}, err
	}

	if s.db != nil {
		_ = s.db.InsertRun(traceID(), inputPath, result.Document.Total, result.WithPhotos, result.WithLogos, float64(time.Since(start).Milliseconds()))
		_ = s.db.SetMetadata("last_run", time.Now().UTC().Format(time.RFC3339))
	}
	return result, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
