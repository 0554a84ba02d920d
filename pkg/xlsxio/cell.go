// Package xlsxio provides streaming read and write access to XLSX workbooks.
//
// Reading is cursor-based: a ReadSession enumerates sheets, and a SheetReader
// walks one sheet forward row-by-row and cell-by-cell without loading the
// sheet into memory. Writing is append-only: a WriteSession accumulates cells
// and row breaks and finalizes the archive on Close.
package xlsxio

import (
	"math"
	"strconv"
)

// Cell is the raw content of a single cell: either absent or the cell's
// text as stored in the archive. An empty cell carries empty text and is
// still present; the zero Cell is absent and is the end-of-row signal.
// Typed views are derived from the text on demand and never mutate the cell.
type Cell struct {
	raw     string
	present bool
}

// textCell returns a Cell holding the given text.
func textCell(s string) Cell {
	return Cell{raw: s, present: true}
}

// Present reports whether the cell holds any content.
func (c Cell) Present() bool {
	return c.present
}

// AsString returns the cell text verbatim.
// The second result is false when the cell is absent.
func (c Cell) AsString() (string, bool) {
	if !c.present {
		return "", false
	}
	return c.raw, true
}

// AsInt interprets the cell text as a base-10 integer.
// Text that does not parse yields no value; it is not an error, since
// spreadsheet columns routinely mix labels with numbers.
func (c Cell) AsInt() (int64, bool) {
	if !c.present {
		return 0, false
	}
	v, err := strconv.ParseInt(c.raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AsFloat interprets the cell text as a decimal or exponential number.
func (c Cell) AsFloat() (float64, bool) {
	if !c.present {
		return 0, false
	}
	v, err := strconv.ParseFloat(c.raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AsDatetime interprets the cell text as an Excel serial date number and
// returns it as Unix-epoch seconds. Negative serial values predate the
// format's epoch and yield no value, as do non-finite ones ("NaN", "Inf")
// that ParseFloat accepts but no archive stores as a date.
func (c Cell) AsDatetime() (int64, bool) {
	serial, ok := c.AsFloat()
	if !ok || serial < 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return 0, false
	}
	return SerialToUnix(serial), true
}
