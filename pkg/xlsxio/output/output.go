// Package output renders a streamed sheet to CSV or JSON.
package output

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/ukaji3/xlsxio-go/pkg/xlsxio"
)

// WriteCSV streams the remaining rows of r to w as CSV, one record per row.
// Memory stays bounded by the widest row.
func WriteCSV(w io.Writer, r *xlsxio.SheetReader) error {
	cw := csv.NewWriter(w)
	for r.AdvanceRow() {
		if err := cw.Write(readRow(r)); err != nil {
			return err
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON streams the remaining rows of r to w as a JSON array of string
// arrays. With pretty set, each row goes on its own indented line.
func WriteJSON(w io.Writer, r *xlsxio.SheetReader, pretty bool) error {
	opening, sep, closing := "[", ",", "]"
	if pretty {
		opening, sep, closing = "[\n  ", ",\n  ", "\n]"
	}
	if _, err := io.WriteString(w, opening); err != nil {
		return err
	}
	first := true
	for r.AdvanceRow() {
		if !first {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		first = false
		row, err := json.Marshal(readRow(r))
		if err != nil {
			return err
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(w, closing+"\n")
	return err
}

// readRow drains the current row into a string slice. Empty cells come back
// as empty strings; the end-of-row absence terminates the slice.
func readRow(r *xlsxio.SheetReader) []string {
	row := []string{}
	for {
		cell := r.NextCell()
		if !cell.Present() {
			break
		}
		text, _ := cell.AsString()
		row = append(row, text)
	}
	return row
}
