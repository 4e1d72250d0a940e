package xlsx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unidoc/unioffice/spreadsheet"
)

// SheetName is the name of the sheet written by Write and WriteFile.
const SheetName = "Sheet1"

// Write encodes t as a single-sheet workbook into w.
func Write(w io.Writer, t *Table) error {
	wb := spreadsheet.New()

	sheet := wb.AddSheet()
	sheet.SetName(SheetName)

	header := sheet.AddRow()
	for _, h := range t.Header {
		header.AddCell().SetString(h)
	}
	for _, cells := range t.Rows {
		row := sheet.AddRow()
		for i := range t.Header {
			cell := row.AddCell()
			if i >= len(cells) {
				continue
			}
			switch c := cells[i]; c.Kind {
			case Number:
				cell.SetNumber(c.Number)
			case Bool:
				cell.SetBool(c.Text == "1" || c.Text == "true" || c.Text == "TRUE")
			case String:
				cell.SetString(c.Text)
			}
		}
	}
	return wb.Save(w)
}

// WriteFile replaces the file at path with t.
//
// The workbook is written to a temporary file in the same directory then renamed
// over path, so a failure leaves any previous file untouched.
func WriteFile(path string, t *Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := Write(tmp, t); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode workbook %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write workbook %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace workbook %q: %w", path, err)
	}
	return nil
}
