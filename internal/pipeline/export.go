package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"placements/internal"
)

// WriteDocument serializes the full document as indented JSON and replaces
// whatever is at outputPath.
func WriteDocument(doc internal.Document, outputPath string) error {
	blob, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, blob, 0o644)
}

// ExportRecordsToXLSX writes the built records as a spreadsheet report, one
// header row plus one row per student.
func ExportRecordsToXLSX(records []internal.StudentRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"sno", "id", "name", "company", "salary", "photo", "logo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, rec.SNo)
		set(2, rec.ID)
		set(3, rec.Name)
		set(4, rec.Company)
		set(5, rec.Salary)
		set(6, rec.Photo)
		set(7, rec.Logo)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
