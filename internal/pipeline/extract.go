package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// Table is an ordered set of data rows under named column headers. The
// header row is the first non-empty row of the source.
type Table struct {
	Headers []string
	Rows    [][]string
}

// LoadTable reads a placement sheet from disk, dispatching on the file
// extension. Supported formats: xlsx/xls, csv, and single-table html
// exports. sheetName selects a worksheet for xlsx input; empty means the
// first sheet.
func LoadTable(path, sheetName string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path, sheetName)
	case ".xls":
		return nil, fmt.Errorf("legacy .xls not supported, re-save as .xlsx: %s", path)
	case ".csv":
		return loadCSV(path)
	case ".html", ".htm":
		return loadHTMLTable(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", path)
	}
}

func loadXLSX(path, sheetName string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet not found: %s", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return tableFromRows(path, rows)
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return tableFromRows(path, rows)
}

func loadHTMLTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in %s", path)
	}

	rows := [][]string{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cell.Text())
		})
		rows = append(rows, cells)
	})
	return tableFromRows(path, rows)
}

func tableFromRows(path string, rows [][]string) (*Table, error) {
	out := &Table{}
	for _, row := range rows {
		cells := trimCells(row)
		if rowEmpty(cells) {
			continue
		}
		if out.Headers == nil {
			out.Headers = cells
			continue
		}
		out.Rows = append(out.Rows, cells)
	}
	if out.Headers == nil {
		return nil, fmt.Errorf("no header row in %s", path)
	}
	return out, nil
}

// FindColumn returns the index of the first header matching any probe:
// exact matches (after trimming, case-insensitive) are preferred over
// substring containment, so a "Name" header beats "Company Name".
func (t *Table) FindColumn(probes ...string) int {
	for i, h := range t.Headers {
		for _, probe := range probes {
			if strings.EqualFold(strings.TrimSpace(h), probe) {
				return i
			}
		}
	}
	return t.FindColumnContaining(probes...)
}

// FindColumnContaining returns the index of the first header containing any
// probe, case-insensitive, with no preference for exact matches. A sheet
// carrying both a "Salary (LPA)" and a "Stipend" header resolves to
// whichever comes first.
func (t *Table) FindColumnContaining(probes ...string) int {
	for i, h := range t.Headers {
		lower := strings.ToLower(h)
		for _, probe := range probes {
			if strings.Contains(lower, strings.ToLower(probe)) {
				return i
			}
		}
	}
	return -1
}

// Cell returns the trimmed cell at idx, or "" when the row is short or the
// column was not found. Sheet readers drop trailing empty cells, so rows
// are often narrower than the header.
func (t *Table) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func rowEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
