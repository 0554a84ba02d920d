package xlsxio

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/xlsxio-go/pkg/xlsxio/engine"
)

// Sheet describes one sheet of an open workbook.
type Sheet struct {
	// Name is the sheet name, unique and case-sensitive within a workbook.
	Name string
	// Index is the sheet's position in workbook order, 0-based.
	Index int
}

// ReadSession owns an open workbook and enumerates its sheets. At most one
// SheetReader is active per session; opening a sheet closes the previous
// reader. Sessions are not safe for concurrent use.
type ReadSession struct {
	book   engine.Book
	reader *SheetReader
	closed bool
}

// Open opens the workbook at path for streaming reads. Failures are
// classified as ErrFileNotFound, ErrNotAnArchive or ErrCorruptArchive and
// wrapped in an *OpenError. On failure no resources remain acquired.
func Open(path string) (*ReadSession, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &OpenError{Path: path, Err: ErrFileNotFound}
		}
		return nil, &OpenError{Path: path, Err: err}
	}
	book, err := engine.OpenBook(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: classifyOpenError(path, err)}
	}
	return &ReadSession{book: book}, nil
}

// classifyOpenError translates an engine open failure into the public error
// taxonomy. Files that are not ZIP containers get probed for the legacy
// binary .xls format to sharpen the diagnosis.
func classifyOpenError(path string, err error) error {
	if errors.Is(err, zip.ErrFormat) {
		if engine.IsLegacyWorkbook(path) {
			return fmt.Errorf("%w: legacy .xls workbook (OLE compound document)", ErrNotAnArchive)
		}
		return ErrNotAnArchive
	}
	return fmt.Errorf("%w: %v", ErrCorruptArchive, err)
}

// ListSheets returns the workbook's sheets in workbook order. No row data is
// consumed.
func (s *ReadSession) ListSheets() ([]Sheet, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	names := s.book.SheetNames()
	sheets := make([]Sheet, len(names))
	for i, name := range names {
		sheets[i] = Sheet{Name: name, Index: i}
	}
	return sheets, nil
}

// OpenSheet opens the named sheet for reading. The match is case-sensitive.
// A previously opened SheetReader is closed first. A miss leaves the session
// fully usable.
func (s *ReadSession) OpenSheet(name string) (*SheetReader, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	for _, have := range s.book.SheetNames() {
		if have == name {
			return s.openSheet(name)
		}
	}
	return nil, &SheetError{Sheet: name, Op: "open", Err: ErrSheetNotFound}
}

// OpenSheetAt opens the sheet at the given 0-based position.
func (s *ReadSession) OpenSheetAt(index int) (*SheetReader, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	names := s.book.SheetNames()
	if index < 0 || index >= len(names) {
		return nil, &SheetError{Sheet: fmt.Sprintf("#%d", index), Op: "open", Err: ErrSheetNotFound}
	}
	return s.openSheet(names[index])
}

// OpenFirstSheet opens the workbook's first sheet.
func (s *ReadSession) OpenFirstSheet() (*SheetReader, error) {
	return s.OpenSheetAt(0)
}

func (s *ReadSession) openSheet(name string) (*SheetReader, error) {
	if s.reader != nil {
		if err := s.reader.Close(); err != nil {
			return nil, &SheetError{Sheet: s.reader.name, Op: "close", Err: err}
		}
	}
	rows, err := s.book.OpenSheet(name)
	if err != nil {
		return nil, &SheetError{Sheet: name, Op: "open", Err: err}
	}
	s.reader = &SheetReader{session: s, name: name, rows: rows}
	return s.reader, nil
}

// Close releases the workbook and invalidates any open SheetReader.
// It is idempotent; every operation on the session afterwards fails with
// ErrSessionClosed.
func (s *ReadSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var err error
	if s.reader != nil {
		err = s.reader.Close()
		s.reader = nil
	}
	if closeErr := s.book.Close(); err == nil {
		err = closeErr
	}
	return err
}

type readerState int

const (
	stateBeforeFirstRow readerState = iota
	stateOnRow
	stateExhausted
)

// SheetReader is a forward-only cursor over the rows and cells of one sheet.
// It borrows its parent session's workbook handle and is invalidated when
// the session closes. Not safe for concurrent use.
type SheetReader struct {
	session *ReadSession
	name    string
	rows    engine.Rows
	state   readerState
	row     int // rows consumed
	col     int // cells consumed in the current row
	closed  bool
}

// Name returns the sheet name.
func (r *SheetReader) Name() string {
	return r.name
}

// Row returns the number of rows consumed so far.
func (r *SheetReader) Row() int {
	return r.row
}

// Col returns the number of cells consumed in the current row.
func (r *SheetReader) Col() int {
	return r.col
}

// AdvanceRow moves the cursor to the next row, resetting the cell cursor.
// It returns false once the sheet is exhausted; exhaustion is terminal and
// every later call also returns false. Use Err to distinguish a parse error
// from normal exhaustion.
func (r *SheetReader) AdvanceRow() bool {
	if r.closed || r.state == stateExhausted {
		return false
	}
	if !r.rows.Next() {
		r.state = stateExhausted
		return false
	}
	r.state = stateOnRow
	r.row++
	r.col = 0
	return true
}

// NextCell returns the next unconsumed cell of the current row and advances
// the cell cursor. Once the row's cells are exhausted it returns an absent
// Cell; that is the normal end-of-row signal, and the caller advances with
// AdvanceRow.
func (r *SheetReader) NextCell() Cell {
	if r.closed || r.state != stateOnRow {
		return Cell{}
	}
	text, ok := r.rows.Cell()
	if !ok {
		return Cell{}
	}
	r.col++
	return textCell(text)
}

// NextCellAsString reads the next cell as its verbatim text.
func (r *SheetReader) NextCellAsString() (string, bool) {
	return r.NextCell().AsString()
}

// NextCellAsInt reads the next cell as a base-10 integer. Unparseable text
// yields no value and the cursor still advances.
func (r *SheetReader) NextCellAsInt() (int64, bool) {
	return r.NextCell().AsInt()
}

// NextCellAsFloat reads the next cell as a floating-point number.
func (r *SheetReader) NextCellAsFloat() (float64, bool) {
	return r.NextCell().AsFloat()
}

// NextCellAsDatetime reads the next cell as an Excel serial date and returns
// Unix-epoch seconds.
func (r *SheetReader) NextCellAsDatetime() (int64, bool) {
	return r.NextCell().AsDatetime()
}

// Err returns the engine error that ended iteration early, if any. It never
// reports normal exhaustion.
func (r *SheetReader) Err() error {
	return r.rows.Err()
}

// Close releases the sheet-level engine resources. It is idempotent and is
// also triggered by the parent session's Close or by opening another sheet.
func (r *SheetReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.session != nil && r.session.reader == r {
		r.session.reader = nil
	}
	return r.rows.Close()
}
