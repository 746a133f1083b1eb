package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"placements/internal/config"
	"placements/internal/photos"
	"placements/internal/pipeline"
	"placements/internal/storage"
	"placements/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.InputPath, "placement sheet (.xlsx, .csv, .html)")
		photoDir := fs.String("photos", cfg.PhotoDir, "photo directory")
		out := fs.String("out", cfg.OutputPath, "output json path")
		_ = fs.Parse(os.Args[2:])
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		svc := pipeline.NewRunService(db, cfg)
		result, err := svc.Run(*input, *photoDir, *out)
		must(err)
		fmt.Printf("run done students=%d photos=%d logos=%d output=%s\n",
			result.Document.Total, result.WithPhotos, result.WithLogos, *out)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.InputPath, "placement sheet (.xlsx, .csv, .html)")
		photoDir := fs.String("photos", cfg.PhotoDir, "photo directory")
		out := fs.String("out", cfg.XLSXReportPath, "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		svc := pipeline.NewRunService(nil, cfg)
		result, err := svc.BuildDocument(*input, *photoDir)
		must(err)
		must(pipeline.ExportRecordsToXLSX(result.Document.Students, *out))
		fmt.Printf("exported %d rows to %s\n", result.Document.Total, *out)
	case "photos:index":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", cfg.PhotoDir, "photo directory")
		_ = fs.Parse(os.Args[2:])
		idx, err := photos.BuildIndex(*dir)
		must(err)
		ids := make([]string, 0, len(idx))
		for id := range idx {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("%s\t%s\n", id, idx[id])
		}
		fmt.Printf("%d photos indexed\n", len(idx))
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max rows")
		_ = fs.Parse(os.Args[2:])
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		runs, err := db.ListRuns(*limit)
		must(err)
		for _, r := range runs {
			fmt.Printf("%d\t%s\tstudents=%d photos=%d logos=%d %.0fms\t%s\t%s\n",
				r.ID, r.CreatedAt, r.Total, r.WithPhotos, r.WithLogos, r.TotalMs, r.TraceID, r.InputPath)
		}
	case "watch":
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		s := watcher.NewService(db, cfg)
		must(s.Run(context.Background()))
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: placements <command>")
	fmt.Println("commands:")
	fmt.Println("  run --input=./data/placements.xlsx --photos=./data/photos --out=./out/data.json")
	fmt.Println("  export:xlsx --input=... --photos=... --out=./out/placements.xlsx")
	fmt.Println("  photos:index --dir=./data/photos")
	fmt.Println("  runs:list --limit=20")
	fmt.Println("  watch")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
