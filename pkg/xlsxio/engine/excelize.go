package engine

import (
	"os"

	"github.com/xuri/excelize/v2"
)

// defaultSheetName is the sheet excelize creates in a fresh workbook.
const defaultSheetName = "Sheet1"

// OpenBook opens the XLSX file at path for streaming reads.
func OpenBook(path string) (Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &book{f: f}, nil
}

type book struct {
	f *excelize.File
}

func (b *book) SheetNames() []string {
	return b.f.GetSheetList()
}

func (b *book) OpenSheet(name string) (Rows, error) {
	iter, err := b.f.Rows(name)
	if err != nil {
		return nil, err
	}
	return &rows{iter: iter}, nil
}

func (b *book) Close() error {
	return b.f.Close()
}

// rows adapts the excelize row iterator. The iterator yields one row of raw
// cell text at a time; cells are handed out one by one from the current row,
// so memory stays bounded by the widest row.
type rows struct {
	iter *excelize.Rows
	cur  []string
	col  int
	err  error
}

func (r *rows) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.iter.Next() {
		r.err = r.iter.Error()
		return false
	}
	cols, err := r.iter.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		r.err = err
		return false
	}
	r.cur = cols
	r.col = 0
	return true
}

func (r *rows) Cell() (string, bool) {
	if r.col >= len(r.cur) {
		return "", false
	}
	v := r.cur[r.col]
	r.col++
	return v, true
}

func (r *rows) Err() error {
	return r.err
}

func (r *rows) Close() error {
	return r.iter.Close()
}

// NewBuilder creates the output file at path and starts a workbook whose
// first sheet is named sheet. The file is created eagerly so path problems
// surface here, but it only becomes a valid archive once Finalize runs.
func NewBuilder(path, sheet string) (Builder, error) {
	out, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			abandon(f, out, path)
			return nil, err
		}
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		abandon(f, out, path)
		return nil, err
	}
	return &builder{f: f, out: out, path: path, sw: sw, row: 1}, nil
}

// abandon tears down a partially-built workbook so a failed open leaves
// nothing behind.
func abandon(f *excelize.File, out *os.File, path string) {
	_ = f.Close()
	_ = out.Close()
	_ = os.Remove(path)
}

type builder struct {
	f     *excelize.File
	out   *os.File
	path  string
	sw    *excelize.StreamWriter
	row   int // next row number in the active sheet, 1-based
	cells []interface{}
	done  bool
}

func (b *builder) AddSheet(name string) error {
	if err := b.sealSheet(); err != nil {
		return err
	}
	if _, err := b.f.NewSheet(name); err != nil {
		return err
	}
	sw, err := b.f.NewStreamWriter(name)
	if err != nil {
		return err
	}
	b.sw = sw
	b.row = 1
	return nil
}

func (b *builder) WriteCell(text string) error {
	b.cells = append(b.cells, text)
	return nil
}

func (b *builder) EndRow() error {
	ref, err := excelize.CoordinatesToCellName(1, b.row)
	if err != nil {
		return err
	}
	if err := b.sw.SetRow(ref, b.cells); err != nil {
		return err
	}
	b.row++
	b.cells = nil
	return nil
}

// sealSheet flushes a partially-staged row and ends streaming on the active
// sheet. The stream writer cannot be used again afterwards.
func (b *builder) sealSheet() error {
	if len(b.cells) > 0 {
		if err := b.EndRow(); err != nil {
			return err
		}
	}
	return b.sw.Flush()
}

func (b *builder) Finalize() error {
	if b.done {
		return nil
	}
	b.done = true
	err := b.sealSheet()
	if err == nil {
		err = b.f.Write(b.out)
	}
	if closeErr := b.out.Close(); err == nil {
		err = closeErr
	}
	_ = b.f.Close()
	return err
}
