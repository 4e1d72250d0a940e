package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// ReadFile reads the first sheet of the workbook at path.
func ReadFile(path string) (*Table, error) {
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %q: %w", path, err)
	}
	t, err := readWorkbook(wb)
	if err != nil {
		return nil, fmt.Errorf("could not read workbook %q: %w", path, err)
	}
	return t, nil
}

// Read reads the first sheet of the workbook in r/size.
func Read(r io.ReaderAt, size int64) (*Table, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, err
	}
	return readWorkbook(wb)
}

func readWorkbook(wb *spreadsheet.Workbook) (*Table, error) {
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheet")
	}

	t := &Table{}
	headerFound := false
	for _, row := range sheets[0].Rows() {
		cells := readRow(row)
		if isBlankRow(cells) {
			continue
		}
		if !headerFound {
			// The header is the first non blank row, trailing blank columns are dropped.
			for len(cells) > 0 && cells[len(cells)-1].IsBlank() {
				cells = cells[:len(cells)-1]
			}
			for _, c := range cells {
				t.Header = append(t.Header, strings.TrimSpace(c.String()))
			}
			headerFound = true
			continue
		}
		t.Append(cells...)
	}
	if !headerFound {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0].Name())
	}
	return t, nil
}

// readRow returns the cells of row positioned by column, rows are sparse.
func readRow(row spreadsheet.Row) []Cell {
	var cells []Cell
	for _, cell := range row.Cells() {
		colName, err := cell.Column()
		if err != nil {
			continue
		}
		colIdx := int(reference.ColumnToIndex(colName))
		for len(cells) <= colIdx {
			cells = append(cells, Cell{})
		}
		cells[colIdx] = readCell(cell)
	}
	return cells
}

func readCell(cell spreadsheet.Cell) Cell {
	switch {
	case cell.IsEmpty():
		return Cell{}
	case cell.IsBool():
		return Cell{Kind: Bool, Text: cell.GetString()}
	case cell.IsNumber():
		if f, err := cell.GetValueAsNumber(); err == nil {
			return N(f)
		}
	}
	s := cell.GetString()
	if s == "" {
		return Cell{}
	}
	return S(s)
}

func isBlankRow(cells []Cell) bool {
	for _, c := range cells {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}
