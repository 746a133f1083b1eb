package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	InputPath      string
	PhotoDir       string
	OutputPath     string
	XLSXReportPath string
	DBPath         string

	SheetName        string
	WatchIntervalSec int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		InputPath:      getEnv("INPUT_PATH", filepath.Join(cwd, "data", "placements.xlsx")),
		PhotoDir:       getEnv("PHOTO_DIR", filepath.Join(cwd, "data", "photos")),
		OutputPath:     getEnv("OUTPUT_PATH", filepath.Join(cwd, "out", "data.json")),
		XLSXReportPath: getEnv("XLSX_REPORT_PATH", filepath.Join(cwd, "out", "placements.xlsx")),
		DBPath:         getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		SheetName:        getEnv("SHEET_NAME", ""),
		WatchIntervalSec: getEnvInt("WATCH_INTERVAL_SEC", 30),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
