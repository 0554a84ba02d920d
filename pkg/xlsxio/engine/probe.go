package engine

import (
	"os"

	"github.com/richardlehane/mscfb"
)

// IsLegacyWorkbook reports whether the file at path is an OLE compound
// document, the container of pre-2007 binary .xls workbooks. Used to give a
// precise diagnosis when a file fails to open as a ZIP archive.
func IsLegacyWorkbook(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	_, err = mscfb.New(f)
	return err == nil
}
