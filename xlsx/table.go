// Package xlsx reads and writes single-sheet spreadsheets as a header plus
// rows of typed cells.
package xlsx

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the type of value held by a Cell.
type Kind int

const (
	Blank Kind = iota
	String
	Number
	Bool
)

// Cell is a single spreadsheet value.
type Cell struct {
	Kind   Kind
	Text   string  // String and Bool cells
	Number float64 // Number cells
}

// S returns a string cell.
func S(s string) Cell { return Cell{Kind: String, Text: s} }

// N returns a number cell.
func N(f float64) Cell { return Cell{Kind: Number, Number: f} }

// IsBlank reports whether the cell holds no value, or only spaces.
func (c Cell) IsBlank() bool {
	return c.Kind == Blank || (c.Kind == String && strings.TrimSpace(c.Text) == "")
}

// String returns the cell as text. Numbers use the shortest representation.
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case Blank:
		return ""
	default:
		return c.Text
	}
}

// Float returns the numerical value of the cell, parsing text cells.
func (c Cell) Float() (float64, error) {
	if c.Kind == Number {
		return c.Number, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(c.String()), 64)
}

// excelEpoch is day zero of the 1900 date system, shifted for the 1900 leap year bug.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Time converts a number cell holding a spreadsheet date serial to a time.
// ok is false for non number cells.
func (c Cell) Time() (t time.Time, ok bool) {
	if c.Kind != Number {
		return time.Time{}, false
	}
	days, frac := math.Modf(c.Number)
	t = excelEpoch.AddDate(0, 0, int(days))
	return t.Add(time.Duration(math.Round(frac*86400)) * time.Second), true
}

// Serial returns the spreadsheet date serial of t, ignoring its location.
func Serial(t time.Time) float64 {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	h, min, s := t.Clock()
	return float64(day.Sub(excelEpoch)/(24*time.Hour)) + float64(h*3600+min*60+s)/86400
}

// Table is the content of a sheet: a header row followed by data rows.
// Every row has exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// NewTable returns an empty table with the given header.
func NewTable(header ...string) *Table { return &Table{Header: header} }

// Index returns the position of the column named 'name', or -1.
// Names are compared ignoring case and surrounding spaces.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// Append adds a row, padded or truncated to the header length.
func (t *Table) Append(cells ...Cell) {
	row := make([]Cell, len(t.Header))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }
