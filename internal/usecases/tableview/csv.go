package tableview

import (
	"io"
	"strings"
)

// utf8BOM makes spreadsheet applications decode the file as UTF-8; the data
// carries Japanese category and tactic codes.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a BOM-prefixed CSV document. Every field is quoted, with
// embedded quotes doubled, so free-text memos cannot break the row format.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	if err := writeCSVLine(w, header); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeCSVLine(w, row); err != nil {
			return err
		}
	}

	return nil
}

func writeCSVLine(w io.Writer, fields []string) error {
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		quoted = append(quoted, `"`+strings.ReplaceAll(field, `"`, `""`)+`"`)
	}

	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
