package tabular

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadCSV(t *testing.T) {
	lines := []string{
		"Q8_Price Importance,Q9,Question 10,favorite color,Q8",
		"completely,often,very,blue,5",
		"  ,  ,  ,  ,  ",
		"slightly,never,neutral",
		"3,4,5,green,2,EXTRA",
	}
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.Name != "survey.csv" {
		t.Fatalf("name = %q", tab.Name)
	}
	wantCols := []string{"q8", "q9", "q10", "favorite_color", "q8_2"}
	if !reflect.DeepEqual(tab.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", tab.Columns, wantCols)
	}
	// whitespace-only row dropped, short row padded, long row truncated
	if len(tab.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tab.Rows))
	}
	for i, row := range tab.Rows {
		if len(row) != len(wantCols) {
			t.Fatalf("row %d width = %d, want %d", i, len(row), len(wantCols))
		}
	}
	if tab.Rows[1][3] != "" || tab.Rows[2][3] != "green" {
		t.Fatalf("unexpected rows: %v", tab.Rows)
	}
}

func TestRecordsOmitBlanks(t *testing.T) {
	tab := &Table{
		Columns: []string{"q8", "q9", "q10"},
		Rows: [][]string{
			{"completely", " often ", ""},
			{"", "never", "neutral"},
		},
	}
	recs := tab.Records()
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0]["q9"] != "often" {
		t.Fatalf("q9 = %q, want trimmed value", recs[0]["q9"])
	}
	if _, ok := recs[0]["q10"]; ok {
		t.Fatal("blank cell should be omitted")
	}
	if len(recs[1]) != 2 {
		t.Fatalf("record 1 has %d keys, want 2", len(recs[1]))
	}
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "notes.docx"))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of empty file should fail")
	}
}

func writeXLSX(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create xlsx: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeXLSX(t, map[string]string{
		"xl/workbook.xml": `<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
			`<sheets><sheet name="Data" sheetId="1" r:id="rId1"/></sheets></workbook>`,
		"xl/_rels/workbook.xml.rels": `<Relationships>` +
			`<Relationship Id="rId1" Target="worksheets/data.xml"/>` +
			`</Relationships>`,
		"xl/sharedStrings.xml": `<sst><si><t>Q8</t></si><si><t>Q9</t></si>` +
			`<si><t>completely</t></si><si><t>often</t></si></sst>`,
		"xl/worksheets/data.xml": `<worksheet><sheetData>` +
			`<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c><c r="C1" t="inlineStr"><is><t>Age</t></is></c></row>` +
			`<row r="2"><c r="A2" t="s"><v>2</v></c><c r="B2" t="s"><v>3</v></c><c r="C2"><v>25</v></c></row>` +
			`<row r="3"><c r="A3"><v>4</v></c><c r="C3"><v>31</v></c></row>` +
			`</sheetData></worksheet>`,
	})

	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	wantCols := []string{"q8", "q9", "age"}
	if !reflect.DeepEqual(tab.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", tab.Columns, wantCols)
	}
	wantRows := [][]string{
		{"completely", "often", "25"},
		{"4", "", "31"}, // sparse row keeps the gap
	}
	if !reflect.DeepEqual(tab.Rows, wantRows) {
		t.Fatalf("rows = %v, want %v", tab.Rows, wantRows)
	}
}

func TestLoadXLSXSheetFallback(t *testing.T) {
	// No workbook or relationships: the reader falls back to sheet1.xml.
	// Cells without references place sequentially.
	path := writeXLSX(t, map[string]string{
		"xl/worksheets/sheet1.xml": `<worksheet><sheetData>` +
			`<row><c t="inlineStr"><is><t>Q8</t></is></c><c t="inlineStr"><is><t>Q9</t></is></c></row>` +
			`<row><c><v>5</v></c><c><v>3</v></c></row>` +
			`</sheetData></worksheet>`,
	})

	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(tab.Columns, []string{"q8", "q9"}) {
		t.Fatalf("columns = %v", tab.Columns)
	}
	if !reflect.DeepEqual(tab.Rows, [][]string{{"5", "3"}}) {
		t.Fatalf("rows = %v", tab.Rows)
	}
}
