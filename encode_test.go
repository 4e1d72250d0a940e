package recetario

import (
	"errors"
	"testing"

	"github.com/etnz/recetario/date"
	"github.com/etnz/recetario/xlsx"
)

func TestDecodeHistory(t *testing.T) {
	tab := xlsx.NewTable(HistoryColumns...)
	tab.Append(xlsx.S("2024-01-01"), xlsx.S("12:30:00"), xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Rice"), xlsx.N(80), xlsx.S("Cereales"))
	// as written back by a spreadsheet tool: serial date and time, text quantity.
	tab.Append(xlsx.N(45293), xlsx.N(0.5), xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Quinoa"), xlsx.S("96,5"), xlsx.S("Cereales"))
	// blank time and quantity.
	tab.Append(xlsx.S("2024-1-3"), xlsx.Cell{}, xlsx.S("Cena"), xlsx.S("Soup"), xlsx.S("Salt"))

	h, err := DecodeHistory(tab)
	if err != nil {
		t.Fatalf("DecodeHistory() error = %v", err)
	}
	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("DecodeHistory() has %d entries, want 3", len(entries))
	}

	tests := []struct {
		day, clock, quantity, group string
	}{
		{"2024-01-01", "12:30:00", "80", "Cereales"},
		{"2024-01-02", "12:00:00", "96.5", "Cereales"},
		{"2024-01-03", "00:00:00", "0", ""},
	}
	for i, tt := range tests {
		e := entries[i]
		if e.Date.String() != tt.day || e.Time.String() != tt.clock || e.Quantity.String() != tt.quantity || e.Group != tt.group {
			t.Errorf("entry %d = %v %v %v %q, want %v %v %v %q", i, e.Date, e.Time, e.Quantity, e.Group, tt.day, tt.clock, tt.quantity, tt.group)
		}
	}
}

func TestDecodeHistoryOptionalGroup(t *testing.T) {
	tab := xlsx.NewTable(HistoryColumns[:6]...)
	tab.Append(xlsx.S("2024-01-01"), xlsx.S("12:30"), xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Rice"), xlsx.N(80))
	h, err := DecodeHistory(tab)
	if err != nil {
		t.Fatalf("DecodeHistory() error = %v", err)
	}
	if e := h.Entries()[0]; e.Group != "" || e.Time != date.NewClock(12, 30, 0) {
		t.Errorf("DecodeHistory() = %+v", e)
	}
}

func TestDecodeHistoryMalformed(t *testing.T) {
	row := func(day, clock, quantity xlsx.Cell) *xlsx.Table {
		tab := xlsx.NewTable(HistoryColumns...)
		tab.Append(xlsx.S("2024-01-01"), xlsx.S("12:00:00"), xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Rice"), xlsx.N(80), xlsx.S("Cereales"))
		tab.Append(day, clock, xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Lentils"), quantity, xlsx.S("Legumbres"))
		return tab
	}
	tests := []struct {
		name string
		tab  *xlsx.Table
	}{
		{name: "bad date", tab: row(xlsx.S("not-a-date"), xlsx.S("12:00:00"), xlsx.N(60))},
		{name: "missing date", tab: row(xlsx.Cell{}, xlsx.S("12:00:00"), xlsx.N(60))},
		{name: "bad time", tab: row(xlsx.S("2024-01-02"), xlsx.S("noon"), xlsx.N(60))},
		{name: "bad quantity", tab: row(xlsx.S("2024-01-02"), xlsx.S("12:00:00"), xlsx.S("sixty"))},
		{name: "missing column", tab: xlsx.NewTable("fecha", "hora", "plato")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeHistory(tt.tab); !errors.Is(err, ErrMalformedHistory) {
				t.Errorf("DecodeHistory() error = %v, want ErrMalformedHistory", err)
			}
		})
	}
}

func TestEncodeHistory(t *testing.T) {
	h := testHistory()
	tab := EncodeHistory(h.Entries())
	if tab.Len() != h.Len() || len(tab.Header) != len(HistoryColumns) {
		t.Fatalf("EncodeHistory() = %d rows %q", tab.Len(), tab.Header)
	}
	if got := tab.Rows[0][0].String(); got != "2024-01-01" {
		t.Errorf("fecha = %q, want 2024-01-01", got)
	}
	if got := tab.Rows[0][1].String(); got != "12:00:00" {
		t.Errorf("hora = %q, want 12:00:00", got)
	}
	back, err := DecodeHistory(tab)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range back.Entries() {
		if want := h.Entries()[i]; e.Date != want.Date || e.Time != want.Time || !e.Quantity.Equal(want.Quantity) || e.Group != want.Group {
			t.Errorf("entry %d = %+v, want %+v", i, e, want)
		}
	}
}

func TestDecodeCookbookErrors(t *testing.T) {
	if _, err := DecodeCookbook(xlsx.NewTable(ColDish, ColIngredient)); err == nil {
		t.Errorf("DecodeCookbook() without columns succeeded")
	}
	tab := xlsx.NewTable(ColMealType, ColDish, ColIngredient, ColDryQuantity, ColKey, ColGroup)
	tab.Append(xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Rice"), xlsx.S("a lot"))
	if _, err := DecodeCookbook(tab); err == nil {
		t.Errorf("DecodeCookbook() with a bad quantity succeeded")
	}
}
