// Package tabular loads survey exports from CSV and XLSX files into a
// width-aligned in-memory table with canonical column names.
package tabular

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Table is one loaded dataset: canonical column names plus data rows,
// every row aligned to the header width.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// reader loads raw rows from one on-disk format.
type reader interface {
	canRead(path string) bool
	read(path string) ([][]string, error)
}

var readers []reader

func register(r reader) {
	readers = append(readers, r)
}

func init() {
	register(csvReader{})
	register(xlsxReader{})
}

// ErrUnsupported indicates the file has no registered reader.
var ErrUnsupported = errors.New("unsupported dataset format")

// Load reads a dataset file, canonicalizes its header, and aligns every
// row to the header width. Rows with no content at all are dropped.
func Load(path string) (*Table, error) {
	for _, r := range readers {
		if r.canRead(path) {
			rows, err := r.read(path)
			if err != nil {
				return nil, err
			}
			return build(filepath.Base(path), rows)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
}

func build(name string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no header row", name)
	}
	t := &Table{Name: name, Columns: CanonicalizeHeaders(rows[0])}
	width := len(t.Columns)
	for _, row := range rows[1:] {
		if len(row) != width {
			// pad or truncate to header width
			tmp := make([]string, width)
			copy(tmp, row)
			row = tmp
		}
		if emptyRow(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Records converts rows to maps keyed by column name. Blank cells are
// omitted so callers can tell unanswered questions from answered ones.
func (t *Table) Records() []map[string]string {
	out := make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for j, col := range t.Columns {
			v := strings.TrimSpace(row[j])
			if v == "" {
				continue
			}
			rec[col] = v
		}
		out[i] = rec
	}
	return out
}
