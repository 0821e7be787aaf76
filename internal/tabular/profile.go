package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnProfile summarizes one column of a loaded dataset.
type ColumnProfile struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // numeric|categorical|text|empty
	NullCount   int      `json:"null_count"`
	UniqueCount int      `json:"unique_count"`
	HasNumbers  bool     `json:"has_numbers"`
	Samples     []string `json:"samples"`
}

// Profile describes the shape of a dataset.
type Profile struct {
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnProfile `json:"columns"`
	IsSurvey    bool            `json:"is_taam"`
}

const (
	maxUniqueTracked = 10000
	sampleValues     = 5
)

// Profile walks the table once and classifies every column. A column is
// numeric only when all of its non-null values parse as numbers;
// low-cardinality string columns count as categorical.
func (t *Table) Profile() *Profile {
	type colAcc struct {
		nonNull int
		numCnt  int
		txtCnt  int
		uniq    map[string]struct{}
		samples []string
	}
	ncol := len(t.Columns)
	accs := make([]*colAcc, ncol)
	for i := range accs {
		accs[i] = &colAcc{uniq: make(map[string]struct{})}
	}
	for _, row := range t.Rows {
		for j := 0; j < ncol; j++ {
			v := strings.TrimSpace(row[j])
			if v == "" {
				continue
			}
			a := accs[j]
			a.nonNull++
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				a.numCnt++
			} else {
				a.txtCnt++
			}
			if len(a.uniq) < maxUniqueTracked { // guard memory
				a.uniq[v] = struct{}{}
			}
			if len(a.samples) < sampleValues {
				a.samples = append(a.samples, v)
			}
		}
	}

	p := &Profile{RowCount: len(t.Rows), ColumnCount: ncol, IsSurvey: IsSurvey(t.Columns)}
	for j, a := range accs {
		kind := "text"
		switch {
		case a.nonNull == 0:
			kind = "empty"
		case a.txtCnt == 0:
			kind = "numeric"
		case len(a.uniq) <= 10 || len(a.uniq)*5 <= len(t.Rows):
			kind = "categorical"
		}
		p.Columns = append(p.Columns, ColumnProfile{
			Name:        t.Columns[j],
			Kind:        kind,
			NullCount:   len(t.Rows) - a.nonNull,
			UniqueCount: len(a.uniq),
			HasNumbers:  kind == "numeric",
			Samples:     a.samples,
		})
	}
	return p
}

// NumericColumns lists columns whose values all parse as numbers.
func (p *Profile) NumericColumns() []string {
	var out []string
	for _, c := range p.Columns {
		if c.Kind == "numeric" {
			out = append(out, c.Name)
		}
	}
	return out
}

// CategoricalColumns lists discrete and free-text columns; either can
// back the category axis of a chart.
func (p *Profile) CategoricalColumns() []string {
	var out []string
	for _, c := range p.Columns {
		if c.Kind == "categorical" || c.Kind == "text" {
			out = append(out, c.Name)
		}
	}
	return out
}

// Markdown renders the profile as a compact bracketed-section report.
func (p *Profile) Markdown(name string) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", p.RowCount))
	b.WriteString(fmt.Sprintf("Columns: %d\n", p.ColumnCount))
	b.WriteString(fmt.Sprintf("Survey data: %v\n\n", p.IsSurvey))
	b.WriteString("[SCHEMA]\n")
	for _, c := range p.Columns {
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, unique %d)", c.Name, c.Kind, p.RowCount-c.NullCount, c.UniqueCount))
		if len(c.Samples) > 0 {
			b.WriteString(fmt.Sprintf(" — e.g. %s", strings.Join(c.Samples, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}
