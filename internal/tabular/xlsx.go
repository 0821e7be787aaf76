package tabular

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type xlsxReader struct{}

func (xlsxReader) canRead(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xlsx")
}

// read extracts the first worksheet of the workbook. Survey exports are
// single-sheet files, so sheet selection is not exposed.
func (xlsxReader) read(path string) ([][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}

	target := firstSheetPath(
		zipEntry(zr, "xl/workbook.xml"),
		zipEntry(zr, "xl/_rels/workbook.xml.rels"),
	)
	sheetXML := zipEntry(zr, target)
	if len(sheetXML) == 0 {
		return nil, fmt.Errorf("no worksheet in %s", filepath.Base(path))
	}

	sc := newSheetScanner(sheetXML, sharedStrings(zipEntry(zr, "xl/sharedStrings.xml")))
	var rows [][]string
	for {
		row, ok := sc.next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func zipEntry(zr *zip.Reader, name string) []byte {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil
		}
		defer rc.Close()
		b := new(bytes.Buffer)
		_, _ = b.ReadFrom(rc)
		return b.Bytes()
	}
	return nil
}

// firstSheetPath resolves the workbook's first sheet to its ZIP entry,
// falling back to the conventional sheet1.xml location. Relationship
// targets may carry a leading slash or omit the xl/ prefix.
func firstSheetPath(workbookXML, relsXML []byte) string {
	if rid := firstSheetRID(workbookXML); rid != "" {
		if rel, ok := sheetRelationships(relsXML)[rid]; ok {
			rel = strings.TrimPrefix(rel, "/")
			if !strings.HasPrefix(rel, "xl/") {
				rel = "xl/" + rel
			}
			return rel
		}
	}
	return "xl/worksheets/sheet1.xml"
}

func firstSheetRID(data []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "sheet" {
			for _, a := range se.Attr {
				if a.Name.Local == "id" { // r:id
					return a.Value
				}
			}
			return ""
		}
	}
}

func sheetRelationships(data []byte) map[string]string {
	out := map[string]string{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var id, target string
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "Id":
				id = a.Value
			case "Target":
				target = a.Value
			}
		}
		if id != "" && target != "" {
			out[id] = target
		}
	}
}

func sharedStrings(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out []string
	var buf strings.Builder
	var inT bool
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		switch se := tok.(type) {
		case xml.StartElement:
			switch se.Name.Local {
			case "si":
				buf.Reset()
			case "t":
				inT = true
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "t":
				inT = false
			case "si":
				out = append(out, buf.String())
			}
		case xml.CharData:
			if inT {
				buf.Write([]byte(se))
			}
		}
	}
}

type sheetScanner struct {
	dec    *xml.Decoder
	shared []string
}

func newSheetScanner(data []byte, shared []string) *sheetScanner {
	return &sheetScanner{dec: xml.NewDecoder(bytes.NewReader(data)), shared: shared}
}

// next returns the cells of the next row. Cells are placed by their
// reference so gaps in sparse rows stay empty.
func (s *sheetScanner) next() ([]string, bool) {
	var row []string
	var width int
	inRow := false
	for {
		tok, err := s.dec.Token()
		if err != nil {
			return nil, false
		}
		switch se := tok.(type) {
		case xml.StartElement:
			switch {
			case se.Name.Local == "row":
				inRow = true
				row = nil
				width = 0
			case inRow && se.Name.Local == "c":
				var ref, typ string
				for _, a := range se.Attr {
					switch a.Name.Local {
					case "r":
						ref = a.Value
					case "t":
						typ = a.Value
					}
				}
				idx := columnIndex(ref)
				if idx < 0 {
					// cell without a reference, place after the last one
					idx = len(row)
				}
				if idx+1 > width {
					width = idx + 1
				}
				if len(row) <= idx {
					tmp := make([]string, idx+1)
					copy(tmp, row)
					row = tmp
				}
				row[idx] = s.cellValue(typ)
			}
		case xml.EndElement:
			if se.Name.Local == "row" {
				if len(row) < width {
					tmp := make([]string, width)
					copy(tmp, row)
					row = tmp
				}
				return row, true
			}
		}
	}
}

// cellValue consumes tokens until the cell closes, capturing <v> for
// plain cells and <is><t> for inline strings. Shared-string cells store
// an index into the shared table.
func (s *sheetScanner) cellValue(typ string) string {
	var val string
	for {
		tok, err := s.dec.Token()
		if err != nil {
			return val
		}
		switch se := tok.(type) {
		case xml.StartElement:
			if se.Name.Local == "v" || se.Name.Local == "t" {
				val = s.innerText(se.Name.Local)
			}
		case xml.EndElement:
			if se.Name.Local == "c" {
				if typ == "s" {
					if i := sharedIndex(val); i >= 0 && i < len(s.shared) {
						return s.shared[i]
					}
					return ""
				}
				return val
			}
		}
	}
}

func (s *sheetScanner) innerText(tag string) string {
	var sb strings.Builder
	for {
		tok, err := s.dec.Token()
		if err != nil {
			return sb.String()
		}
		if ed, ok := tok.(xml.EndElement); ok && ed.Name.Local == tag {
			return sb.String()
		}
		if cd, ok := tok.(xml.CharData); ok {
			sb.Write([]byte(cd))
		}
	}
}

// columnIndex converts a cell reference like "C12" to a 0-based column
// index, or -1 when the reference has no letter prefix.
func columnIndex(ref string) int {
	i := 0
	for i < len(ref) {
		c := ref[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			i++
			continue
		}
		break
	}
	if i == 0 {
		return -1
	}
	idx := 0
	for _, c := range strings.ToUpper(ref[:i]) {
		idx = idx*26 + int(c-'A'+1)
	}
	return idx - 1
}

func sharedIndex(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}
