// Package engine isolates the archive and XML handling behind a small
// capability interface. The rest of the module only sees sheet names, raw
// cell text, and row boundaries; the container format stays an
// implementation detail of this package.
package engine

// Book is an open workbook archive for reading.
type Book interface {
	// SheetNames returns the workbook's sheet names in workbook order.
	SheetNames() []string
	// OpenSheet returns a forward-only row cursor over the named sheet.
	OpenSheet(name string) (Rows, error)
	// Close releases the archive and all of its resources.
	Close() error
}

// Rows is a forward-only cursor over the rows of one sheet. Next advances to
// the next row; Cell yields the raw text of the next cell in the current row
// until the row is exhausted. Err reports a parse error that ended iteration
// early, as opposed to normal exhaustion.
type Rows interface {
	Next() bool
	Cell() (string, bool)
	Err() error
	Close() error
}

// Builder is a workbook archive under construction. Cells are staged into
// the current row of the active sheet; EndRow seals the row. Nothing is a
// valid archive until Finalize succeeds.
type Builder interface {
	AddSheet(name string) error
	WriteCell(text string) error
	EndRow() error
	Finalize() error
}
