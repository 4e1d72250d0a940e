package recetario

import (
	"errors"
	"slices"
	"testing"
)

func TestConvert(t *testing.T) {
	e := testEquivalences()
	tests := []struct {
		name           string
		source, target string
		q              Quantity
		want           Quantity
		degenerate     bool
		wantErr        error
	}{
		{name: "ratio", source: "Rice", target: "Quinoa", q: Q(80), want: Q(96)},
		{name: "inverse ratio", source: "Quinoa", target: "Rice", q: Q(96), want: Q(80)},
		{name: "identity", source: "Lentils", target: "Lentils", q: Q(60), want: Q(60)},
		{name: "zero target", source: "Rice", target: "Couscous", q: Q(80), want: Q(0)},
		{name: "zero source", source: "Couscous", target: "Rice", q: Q(70), want: Q(0), degenerate: true},
		{name: "missing source", source: "Millet", target: "Rice", q: Q(10), wantErr: ErrNotFound},
		{name: "missing target", source: "Rice", target: "Millet", q: Q(10), wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := e.Convert(tt.source, tt.target, tt.q)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if c.Degenerate != tt.degenerate {
				t.Errorf("Convert().Degenerate = %v, want %v", c.Degenerate, tt.degenerate)
			}
			if !c.Target.Equal(tt.want) {
				t.Errorf("Convert().Target = %v, want %v", c.Target, tt.want)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	e := testEquivalences()
	for _, q := range []Quantity{Q(1), Q(33.3), Q(80), Q(123.45)} {
		there, err := e.Convert("Lentils", "Chickpeas", q)
		if err != nil {
			t.Fatal(err)
		}
		back, err := e.Convert("Chickpeas", "Lentils", there.Target.Round())
		if err != nil {
			t.Fatal(err)
		}
		// one rounding to the centigram, scaled by the ratio.
		if diff := back.Target.Sub(q); diff.GreaterThan(Q(0.01)) || diff.LessThan(Q(-0.01)) {
			t.Errorf("round trip of %v = %v", q, back.Target)
		}
	}
}

func TestTargets(t *testing.T) {
	e := testEquivalences()
	tests := []struct {
		source string
		all    bool
		want   []string
	}{
		{source: "Rice", want: []string{"Couscous", "Quinoa", "Rice"}},
		{source: "Rice", all: true, want: []string{"Couscous", "Oats", "Quinoa", "Rice"}},
		{source: "Lentils", want: []string{"Chickpeas", "Lentils"}},
	}
	for _, tt := range tests {
		got, err := e.Targets(tt.source, tt.all)
		if err != nil {
			t.Fatal(err)
		}
		var names []string
		for _, r := range got {
			names = append(names, r.Ingredient)
		}
		if !slices.Equal(names, tt.want) {
			t.Errorf("Targets(%q, %v) = %q, want %q", tt.source, tt.all, names, tt.want)
		}
	}

	if _, err := e.Targets("Millet", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Targets(Millet) error = %v, want ErrNotFound", err)
	}
}

func TestGroups(t *testing.T) {
	got := testEquivalences().Groups()
	if want := []string{"Cereales", "Legumbres"}; !slices.Equal(got, want) {
		t.Errorf("Groups() = %q, want %q", got, want)
	}
}

func TestNewEquivalencesFirstWins(t *testing.T) {
	e := NewEquivalences(
		Equivalence{Ingredient: "Rice", Key: "cereal", Value: Q(100)},
		Equivalence{Ingredient: "Rice", Key: "other", Value: Q(1)},
	)
	if e.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", e.Len())
	}
	if r, _ := e.Lookup("Rice"); r.Key != "cereal" {
		t.Errorf("Lookup(Rice).Key = %q, want cereal", r.Key)
	}
}
