package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTableHTML(t *testing.T) {
	html := `<html><body><table>
<tr><th>H.T.No.</th><th>Name</th><th>Company Name</th><th>Salary</th></tr>
<tr><td>131cs001</td><td>John</td><td>Deloitte</td><td>4.5</td></tr>
</table></body></html>`
	path := filepath.Join(t.TempDir(), "input.html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Headers) != 4 || len(table.Rows) != 1 {
		t.Fatalf("headers=%v rows=%d", table.Headers, len(table.Rows))
	}
	if got := table.Cell(table.Rows[0], 0); got != "131cs001" {
		t.Fatalf("id cell=%q", got)
	}
}

func TestLoadTableHTMLNoTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.html")
	if err := os.WriteFile(path, []byte("<html><body><p>nothing</p></body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(path, ""); err == nil {
		t.Fatal("expected error for missing table")
	}
}
