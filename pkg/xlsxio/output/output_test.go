package output

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/xlsxio-go/pkg/xlsxio"
)

// buildWorkbook writes a small two-row workbook and returns its path.
func buildWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	w, err := xlsxio.Create(path, "Sheet1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	w.AddCellString("Name")
	w.AddCellString("Age")
	if err := w.NextRow(); err != nil {
		t.Fatalf("NextRow failed: %v", err)
	}
	w.AddCellString("Alice")
	w.AddCellInt(28)
	if err := w.NextRow(); err != nil {
		t.Fatalf("NextRow failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func openFirstSheet(t *testing.T, path string) (*xlsxio.ReadSession, *xlsxio.SheetReader) {
	t.Helper()
	session, err := xlsxio.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	reader, err := session.OpenFirstSheet()
	if err != nil {
		session.Close()
		t.Fatalf("OpenFirstSheet failed: %v", err)
	}
	return session, reader
}

func TestWriteCSV(t *testing.T) {
	path := buildWorkbook(t)
	session, reader := openFirstSheet(t, path)
	defer session.Close()

	var sb strings.Builder
	if err := WriteCSV(&sb, reader); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	expected := "Name,Age\nAlice,28\n"
	if sb.String() != expected {
		t.Errorf("WriteCSV output = %q, expected %q", sb.String(), expected)
	}
}

func TestWriteJSON(t *testing.T) {
	path := buildWorkbook(t)
	session, reader := openFirstSheet(t, path)
	defer session.Close()

	var sb strings.Builder
	if err := WriteJSON(&sb, reader, false); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	expected := `[["Name","Age"],["Alice","28"]]` + "\n"
	if sb.String() != expected {
		t.Errorf("WriteJSON output = %q, expected %q", sb.String(), expected)
	}
}

func TestWriteJSONPretty(t *testing.T) {
	path := buildWorkbook(t)
	session, reader := openFirstSheet(t, path)
	defer session.Close()

	var sb strings.Builder
	if err := WriteJSON(&sb, reader, true); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	expected := "[\n  [\"Name\",\"Age\"],\n  [\"Alice\",\"28\"]\n]\n"
	if sb.String() != expected {
		t.Errorf("WriteJSON pretty output = %q, expected %q", sb.String(), expected)
	}
}

func TestWriteCSVEmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	w, err := xlsxio.Create(path, "Sheet1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	session, reader := openFirstSheet(t, path)
	defer session.Close()

	var sb strings.Builder
	if err := WriteCSV(&sb, reader); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if sb.String() != "" {
		t.Errorf("WriteCSV on empty sheet = %q, expected empty output", sb.String())
	}
}
