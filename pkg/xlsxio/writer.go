package xlsxio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxio-go/pkg/xlsxio/engine"
)

// DefaultSheetName is used when Create is given an empty sheet name.
const DefaultSheetName = "Sheet1"

// WriteSession owns a workbook under construction. Cells append to the
// current row of the active sheet; NextRow seals the row; AddSheet seals the
// active sheet and starts a new one. The output only becomes a valid archive
// once Close succeeds: a session abandoned after append errors leaves a file
// whose content is undefined, though the handle is always released. Not safe
// for concurrent use.
type WriteSession struct {
	builder engine.Builder
	names   map[string]struct{}
	active  string
	row     int // rows emitted in the active sheet
	col     int // cells emitted in the current row
	closed  bool
}

// Create opens a write session on a new workbook at path whose first sheet
// is named sheet (DefaultSheetName when empty). Fails with ErrInvalidPath or
// ErrCannotCreateFile wrapped in an *OpenError; on failure nothing is left
// on disk.
func Create(path, sheet string) (*WriteSession, error) {
	if err := validateOutputPath(path); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if sheet == "" {
		sheet = DefaultSheetName
	}
	builder, err := engine.NewBuilder(path, sheet)
	if err != nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("%w: %v", ErrCannotCreateFile, err)}
	}
	return &WriteSession{
		builder: builder,
		names:   map[string]struct{}{sheet: {}},
		active:  sheet,
	}, nil
}

func validateOutputPath(path string) error {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return ErrInvalidPath
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return ErrInvalidPath
	}
	return nil
}

// ActiveSheet returns the name of the sheet currently receiving appends.
func (w *WriteSession) ActiveSheet() string {
	return w.active
}

// Row returns the number of rows emitted in the active sheet.
func (w *WriteSession) Row() int {
	return w.row
}

// Col returns the number of cells emitted in the current row.
func (w *WriteSession) Col() int {
	return w.col
}

// AddSheet seals the active sheet and makes a new sheet, appended at the end
// of the workbook, the active one. The row and cell cursors reset. Fails
// with ErrDuplicateSheetName if the name was already used; the comparison is
// case-insensitive because the engine resolves sheet names that way, and a
// case-only variant would silently target the existing sheet. The session
// stays usable after a rejected add.
func (w *WriteSession) AddSheet(name string) error {
	if w.closed {
		return ErrSessionClosed
	}
	for existing := range w.names {
		if strings.EqualFold(existing, name) {
			return &SheetError{Sheet: name, Op: "add", Err: ErrDuplicateSheetName}
		}
	}
	if err := w.builder.AddSheet(name); err != nil {
		return &SheetError{Sheet: name, Op: "add", Err: err}
	}
	w.names[name] = struct{}{}
	w.active = name
	w.row = 0
	w.col = 0
	return nil
}

// AddCellString appends one text cell to the current row.
func (w *WriteSession) AddCellString(v string) error {
	return w.addCell(v)
}

// AddCellInt appends one cell holding the base-10 representation of v.
func (w *WriteSession) AddCellInt(v int64) error {
	return w.addCell(strconv.FormatInt(v, 10))
}

// AddCellFloat appends one cell holding the shortest representation of v
// that parses back to the same value.
func (w *WriteSession) AddCellFloat(v float64) error {
	return w.addCell(strconv.FormatFloat(v, 'g', -1, 64))
}

// AddCellDatetime appends one cell holding the given Unix-epoch seconds as
// an Excel serial date number, the inverse of Cell.AsDatetime.
func (w *WriteSession) AddCellDatetime(unix int64) error {
	return w.addCell(strconv.FormatFloat(UnixToSerial(unix), 'g', -1, 64))
}

func (w *WriteSession) addCell(text string) error {
	if w.closed {
		return ErrSessionClosed
	}
	if err := w.builder.WriteCell(text); err != nil {
		return &SheetError{Sheet: w.active, Op: "write", Err: err}
	}
	w.col++
	return nil
}

// NextRow seals the current row and resets the cell cursor. Rows may have
// differing cell counts; no padding is inserted.
func (w *WriteSession) NextRow() error {
	if w.closed {
		return ErrSessionClosed
	}
	if err := w.builder.EndRow(); err != nil {
		return &SheetError{Sheet: w.active, Op: "write", Err: err}
	}
	w.row++
	w.col = 0
	return nil
}

// Close finalizes the archive: a partially-staged row is sealed, the active
// sheet is flushed, and the container metadata is written. Idempotent, and
// it releases the file handle even when finalization fails.
func (w *WriteSession) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.builder.Finalize()
}
