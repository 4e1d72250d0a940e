package recetario

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/recetario/date"
	"github.com/etnz/recetario/xlsx"
)

// Column names of the recipes file.
const (
	ColMealType    = "Comida"
	ColDish        = "Plato"
	ColIngredient  = "Ingrediente"
	ColDryQuantity = "Cantidad en seco"
	ColKey         = "Clave equivalencia"
	ColEquivalence = "Equivalencia"
	ColGroup       = "Grupo Ingrediente"
)

// HistoryColumns are the columns of the history file, in order.
var HistoryColumns = []string{"fecha", "hora", "comida", "plato", "ingrediente", "cantidad", "grupo_ingrediente"}

// columns maps column names to their index in t.
type columns map[string]int

func indexColumns(t *xlsx.Table, names ...string) (columns, error) {
	cols := make(columns, len(names))
	var missing []string
	for _, n := range names {
		i := t.Index(n)
		if i < 0 {
			missing = append(missing, n)
			continue
		}
		cols[n] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns %q in table with header %q", missing, t.Header)
	}
	return cols, nil
}

func (c columns) text(row []xlsx.Cell, name string) string {
	return strings.TrimSpace(row[c[name]].String())
}

// quantity decodes a quantity cell, blank cells are zero.
func (c columns) quantity(row []xlsx.Cell, name string) (Quantity, error) {
	cell := row[c[name]]
	switch {
	case cell.IsBlank():
		return Q(0), nil
	case cell.Kind == xlsx.Number:
		return Q(cell.Number), nil
	default:
		return ParseQuantity(cell.String())
	}
}

// DecodeCookbook decodes the recipes table.
func DecodeCookbook(t *xlsx.Table) (*Cookbook, error) {
	cols, err := indexColumns(t, ColMealType, ColDish, ColIngredient, ColDryQuantity, ColKey, ColGroup)
	if err != nil {
		return nil, err
	}
	lines := make([]RecipeLine, 0, t.Len())
	for i, row := range t.Rows {
		q, err := cols.quantity(row, ColDryQuantity)
		if err != nil {
			return nil, fmt.Errorf("recipe row %d: %w", i+2, err)
		}
		lines = append(lines, RecipeLine{
			MealType:    cols.text(row, ColMealType),
			Dish:        cols.text(row, ColDish),
			Ingredient:  cols.text(row, ColIngredient),
			DryQuantity: q,
			Key:         cols.text(row, ColKey),
			Group:       cols.text(row, ColGroup),
		})
	}
	return NewCookbook(lines...), nil
}

// DecodeEquivalences decodes the equivalences table.
func DecodeEquivalences(t *xlsx.Table) (*Equivalences, error) {
	cols, err := indexColumns(t, ColIngredient, ColKey, ColEquivalence, ColGroup)
	if err != nil {
		return nil, err
	}
	rows := make([]Equivalence, 0, t.Len())
	for i, row := range t.Rows {
		v, err := cols.quantity(row, ColEquivalence)
		if err != nil {
			return nil, fmt.Errorf("equivalence row %d: %w", i+2, err)
		}
		rows = append(rows, Equivalence{
			Ingredient: cols.text(row, ColIngredient),
			Key:        cols.text(row, ColKey),
			Value:      v,
			Group:      cols.text(row, ColGroup),
		})
	}
	return NewEquivalences(rows...), nil
}

// DecodeHistory decodes a history table. Every row must have a valid date.
//
// Dates and times are ISO strings, or spreadsheet serial numbers when the file
// was edited by a spreadsheet tool. A blank time is midnight, a blank quantity
// is zero. The grupo_ingrediente column is optional.
func DecodeHistory(t *xlsx.Table) (*History, error) {
	cols, err := indexColumns(t, HistoryColumns[:6]...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHistory, err)
	}
	group := t.Index("grupo_ingrediente")

	entries := make([]Entry, 0, t.Len())
	for i, row := range t.Rows {
		e, err := decodeEntry(cols, row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedHistory, i+2, err)
		}
		if group >= 0 {
			e.Group = strings.TrimSpace(row[group].String())
		}
		entries = append(entries, e)
	}
	return NewHistory(entries...), nil
}

func decodeEntry(cols columns, row []xlsx.Cell) (e Entry, err error) {
	if e.Date, err = decodeDate(row[cols["fecha"]]); err != nil {
		return e, err
	}
	if e.Time, err = decodeClock(row[cols["hora"]]); err != nil {
		return e, err
	}
	if e.Quantity, err = cols.quantity(row, "cantidad"); err != nil {
		return e, err
	}
	e.MealType = cols.text(row, "comida")
	e.Dish = cols.text(row, "plato")
	e.Ingredient = cols.text(row, "ingrediente")
	return e, nil
}

func decodeDate(c xlsx.Cell) (date.Date, error) {
	if t, ok := c.Time(); ok {
		return date.Of(t), nil
	}
	if c.IsBlank() {
		return date.Date{}, fmt.Errorf("missing date")
	}
	return date.Parse(strings.TrimSpace(c.String()))
}

func decodeClock(c xlsx.Cell) (date.Clock, error) {
	if c.IsBlank() {
		return date.Clock{}, nil
	}
	if c.Kind == xlsx.Number {
		// a time of day serial is the fraction of the day.
		_, frac := math.Modf(c.Number)
		return date.NewClock(0, 0, int(math.Round(frac*86400))), nil
	}
	return date.ParseClock(strings.TrimSpace(c.String()))
}

// EncodeHistory encodes entries as a history table.
func EncodeHistory(entries []Entry) *xlsx.Table {
	t := xlsx.NewTable(HistoryColumns...)
	for _, e := range entries {
		t.Append(
			xlsx.S(e.Date.String()),
			xlsx.S(e.Time.String()),
			xlsx.S(e.MealType),
			xlsx.S(e.Dish),
			xlsx.S(e.Ingredient),
			xlsx.N(e.Quantity.Float64()),
			xlsx.S(e.Group),
		)
	}
	return t
}
