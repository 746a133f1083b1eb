package pipeline

import (
	"fmt"

	"placements/internal"
	"placements/internal/logos"
	"placements/internal/photos"
	"placements/internal/util"
)

var (
	idProbes      = []string{"h.t.no", "htno", "roll no", "id"}
	nameProbes    = []string{"name"}
	companyProbes = []string{"company"}
	salaryProbes  = []string{"salary", "stipend"}
)

type Builder struct {
	photos photos.Index
}

func NewBuilder(idx photos.Index) *Builder {
	return &Builder{photos: idx}
}

// Build turns every data row into a StudentRecord in source order. The ID
// and Name columns must exist; a missing Company column just yields empty
// companies. A cell-level miss (blank name, unknown company, unmatched
// photo) is never an error, the field defaults to its zero value.
func (b *Builder) Build(table *Table) ([]internal.StudentRecord, error) {
	idCol := table.FindColumn(idProbes...)
	if idCol < 0 {
		return nil, fmt.Errorf("no ID column among headers: %v", table.Headers)
	}
	nameCol := table.FindColumn(nameProbes...)
	if nameCol < 0 {
		return nil, fmt.Errorf("no Name column among headers: %v", table.Headers)
	}
	salaryCol := table.FindColumnContaining(salaryProbes...)
	if salaryCol < 0 {
		return nil, fmt.Errorf("no Salary or Stipend column among headers: %v", table.Headers)
	}
	companyCol := table.FindColumn(companyProbes...)

	out := make([]internal.StudentRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		id := util.NormalizeID(table.Cell(row, idCol))
		company := table.Cell(row, companyCol)
		out = append(out, internal.StudentRecord{
			SNo:     i + 1,
			ID:      id,
			Name:    table.Cell(row, nameCol),
			Company: company,
			Salary:  util.ParseSalary(table.Cell(row, salaryCol)),
			Photo:   b.photos.Lookup(id),
			Logo:    logos.Resolve(company),
		})
	}
	return out, nil
}
