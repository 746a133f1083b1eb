package watcher

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"placements/internal/config"
	"placements/internal/pipeline"
	"placements/internal/storage"
)

// Service re-runs the export whenever the placement sheet or the photo
// directory changes, polling on a fixed interval.
type Service struct {
	db  *storage.DB
	cfg config.Config
}

func NewService(db *storage.DB, cfg config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

func (s *Service) Run(ctx context.Context) error {
	lastStamp := ""
	for {
		stamp, err := s.sourceStamp()
		if err != nil {
			fmt.Printf("watch cycle error: %v\n", err)
		} else if stamp != lastStamp {
			svc := pipeline.NewRunService(s.db, s.cfg)
			result, err := svc.Run(s.cfg.InputPath, s.cfg.PhotoDir, s.cfg.OutputPath)
			if err != nil {
				fmt.Printf("watch cycle error: %v\n", err)
			} else {
				lastStamp = stamp
				fmt.Printf("watch cycle done students=%d photos=%d logos=%d output=%s\n",
					result.Document.Total, result.WithPhotos, result.WithLogos, s.cfg.OutputPath)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.WatchIntervalSec) * time.Second):
		}
	}
}

// sourceStamp fingerprints the inputs: sheet mtime and size plus the name
// and mtime of every photo directory entry.
func (s *Service) sourceStamp() (string, error) {
	info, err := os.Stat(s.cfg.InputPath)
	if err != nil {
		return "", err
	}
	parts := []string{fmt.Sprintf("%d:%d", info.ModTime().UnixNano(), info.Size())}

	entries, err := os.ReadDir(s.cfg.PhotoDir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%d", entry.Name(), fi.ModTime().UnixNano()))
	}
	return strings.Join(parts, "|"), nil
}
