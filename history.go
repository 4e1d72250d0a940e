package recetario

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/recetario/date"
)

// Entry is one ingredient of a cooked meal.
type Entry struct {
	Date       date.Date  `json:"fecha"`
	Time       date.Clock `json:"hora"`
	MealType   string     `json:"comida"`
	Dish       string     `json:"plato"`
	Ingredient string     `json:"ingrediente"`
	Quantity   Quantity   `json:"cantidad"`
	Group      string     `json:"grupo_ingrediente"`
}

// compareRecent orders entries most recent first.
func compareRecent(a, b Entry) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return b.Time.Compare(a.Time)
}

// History is the list of cooked meal entries, in file order.
type History struct {
	entries []Entry
}

// NewHistory returns a history made of entries.
func NewHistory(entries ...Entry) *History {
	return &History{entries: slices.Clone(entries)}
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the entries in file order.
func (h *History) Entries() []Entry { return slices.Clone(h.entries) }

// Append adds entries at the end.
func (h *History) Append(entries ...Entry) { h.entries = append(h.entries, entries...) }

// Sorted returns the entries most recent first. Entries at the same date and
// time keep their file order.
func (h *History) Sorted() []Entry {
	res := h.Entries()
	slices.SortStableFunc(res, compareRecent)
	return res
}

// Span returns the range between the oldest and the newest entry.
// ok is false for an empty history, there is no date range to filter on.
func (h *History) Span() (r date.Range, ok bool) {
	if len(h.entries) == 0 {
		return date.Range{}, false
	}
	r = date.Range{From: h.entries[0].Date, To: h.entries[0].Date}
	for _, e := range h.entries[1:] {
		if e.Date.Before(r.From) {
			r.From = e.Date
		}
		if e.Date.After(r.To) {
			r.To = e.Date
		}
	}
	return r, true
}

// distinct returns the sorted non empty values of field.
func (h *History) distinct(field func(Entry) string) []string {
	var res []string
	for _, e := range h.entries {
		if v := field(e); v != "" && !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return res
}

// MealTypes returns the sorted meal types present in the history.
func (h *History) MealTypes() []string { return h.distinct(func(e Entry) string { return e.MealType }) }

// Dishes returns the sorted dishes present in the history.
func (h *History) Dishes() []string { return h.distinct(func(e Entry) string { return e.Dish }) }

// Groups returns the sorted ingredient groups present in the history.
func (h *History) Groups() []string { return h.distinct(func(e Entry) string { return e.Group }) }

// Filter selects history entries. Criteria are combined with AND, an empty
// criterion selects everything.
type Filter struct {
	Range     date.Range // both ends included, zero means any date
	MealTypes []string
	Dishes    []string
	Groups    []string
}

// Match reports whether e satisfies every criteria of f.
func (f Filter) Match(e Entry) bool {
	if !(f.Range.From.IsZero() && f.Range.To.IsZero()) && !f.Range.Contains(e.Date) {
		return false
	}
	return in(f.MealTypes, e.MealType) && in(f.Dishes, e.Dish) && in(f.Groups, e.Group)
}

// in is true if set is empty or contains v.
func in(set []string, v string) bool { return len(set) == 0 || slices.Contains(set, v) }

// Filter returns the entries matching f, most recent first.
func (h *History) Filter(f Filter) []Entry {
	var res []Entry
	for _, e := range h.Sorted() {
		if f.Match(e) {
			res = append(res, e)
		}
	}
	return res
}

// Totals returns the grams of an ingredient group cooked per day, for entries matching f.
func (h *History) Totals(group string, f Filter) *date.History[Quantity] {
	f.Groups = []string{group}
	totals := new(date.History[Quantity])
	for _, e := range h.entries {
		if !f.Match(e) {
			continue
		}
		totals.Update(e.Date, func(prev Quantity, _ bool) Quantity { return prev.Add(e.Quantity) })
	}
	return totals
}

// Query evaluates a JSONPath expression over the entries, most recent first.
//
// Entries use the history file column names, for instance
//
//	$[?(@.plato=="Lentil Stew")].cantidad
func (h *History) Query(path string) (any, error) {
	data, err := json.Marshal(h.Sorted())
	if err != nil {
		return nil, fmt.Errorf("cannot encode history: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode history: %w", err)
	}
	res, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return res, nil
}

// Aggregate sums daily values per period, each total is dated at the start of its period.
func Aggregate(daily *date.History[Quantity], p date.Period) *date.History[Quantity] {
	res := new(date.History[Quantity])
	for day, q := range daily.Values() {
		res.Update(day.StartOf(p), func(prev Quantity, _ bool) Quantity { return prev.Add(q) })
	}
	return res
}
