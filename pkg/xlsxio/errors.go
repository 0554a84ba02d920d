package xlsxio

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNotAnArchive indicates the input file is not a ZIP container.
var ErrNotAnArchive = errors.New("not an xlsx archive")

// ErrCorruptArchive indicates the container opened but its workbook
// structure could not be parsed.
var ErrCorruptArchive = errors.New("corrupt xlsx archive")

// ErrSheetNotFound indicates the requested sheet name or position does not
// resolve within the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrDuplicateSheetName indicates a sheet with that name was already added
// to the write session.
var ErrDuplicateSheetName = errors.New("duplicate sheet name")

// ErrInvalidPath indicates the output path is not usable as a file name.
var ErrInvalidPath = errors.New("invalid output path")

// ErrCannotCreateFile indicates the output file could not be created.
var ErrCannotCreateFile = errors.New("cannot create output file")

// ErrSessionClosed indicates an operation on a session after Close.
var ErrSessionClosed = errors.New("session is closed")

// ErrReaderClosed indicates an operation on a sheet reader after it or its
// parent session was closed.
var ErrReaderClosed = errors.New("sheet reader is closed")

// OpenError wraps an open-time failure with the path involved.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// SheetError wraps a sheet-level failure with the sheet name and operation.
type SheetError struct {
	Sheet string
	Op    string // "open", "read", "write", "add"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %s: %v", e.Sheet, e.Op, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
