package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestPlan(t *testing.T) {
	out := setup(t)
	if status := run(t, &planCmd{}, "-d", "Lentil Stew", "-s", "Rice=Quinoa"); status != subcommands.ExitSuccess {
		t.Fatalf("plan returned %v", status)
	}
	for _, want := range []string{"Quinoa", "96.00", "Lentils", "60.00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("plan output does not contain %q:\n%s", want, out)
		}
	}
}

func TestPlanErrors(t *testing.T) {
	setup(t)
	tests := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{args: nil, want: subcommands.ExitUsageError},
		{args: []string{"-d", "Pizza"}, want: subcommands.ExitFailure},
		{args: []string{"-d", "Lentil Stew", "-s", "Rice=Lentils"}, want: subcommands.ExitFailure},
	}
	for _, tt := range tests {
		if status := run(t, &planCmd{}, tt.args...); status != tt.want {
			t.Errorf("plan %q = %v, want %v", tt.args, status, tt.want)
		}
	}
}

func TestPlanMissingKitchen(t *testing.T) {
	setup(t)
	empty := t.TempDir()
	dataDir = &empty
	if status := run(t, &planCmd{}, "-d", "Lentil Stew"); status != subcommands.ExitFailure {
		t.Errorf("plan without reference data = %v, want ExitFailure", status)
	}
}

func TestCook(t *testing.T) {
	setup(t)
	if status := run(t, &cookCmd{}, "-d", "Lentil Stew", "-s", "Rice=Quinoa", "-date", "2024-01-01", "-time", "12:30"); status != subcommands.ExitSuccess {
		t.Fatalf("cook returned %v", status)
	}
	if status := run(t, &cookCmd{}, "-d", "Porridge", "-date", "2024-01-02", "-time", "08:00"); status != subcommands.ExitSuccess {
		t.Fatalf("cook returned %v", status)
	}

	h, err := OpenStore().Load()
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 3 {
		t.Fatalf("history has %d entries, want 3", h.Len())
	}
	first := h.Entries()[0]
	if first.Date.String() != "2024-01-01" || first.Time.String() != "12:30:00" || first.Ingredient != "Quinoa" || first.Quantity.Grams() != "96.00" || first.Group != "Cereales" || first.MealType != "Almuerzo" {
		t.Errorf("first entry = %+v", first)
	}
}

func TestCookFailureDoesNotSave(t *testing.T) {
	setup(t)
	if status := run(t, &cookCmd{}, "-d", "Pizza"); status != subcommands.ExitFailure {
		t.Errorf("cook Pizza = %v, want ExitFailure", status)
	}
	if status := run(t, &cookCmd{}, "-d", "Porridge", "-date", "yesterday"); status != subcommands.ExitUsageError {
		t.Errorf("cook with a bad date = %v, want ExitUsageError", status)
	}
	if _, err := os.Stat(OpenStore().Path); !os.IsNotExist(err) {
		t.Errorf("history file exists after failed cook: %v", err)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"-from", "Rice", "-to", "Quinoa", "-w", "80"}, want: []string{"96.00"}},
		{args: []string{"-from", "Rice"}, want: []string{"Quinoa", "120.00"}},
		{args: []string{"-from", "Rice", "-all", "-w", "80"}, want: []string{"Oats", "64.00"}},
	}
	for _, tt := range tests {
		out := setup(t)
		if status := run(t, &convertCmd{}, tt.args...); status != subcommands.ExitSuccess {
			t.Fatalf("convert %q returned %v", tt.args, status)
		}
		for _, want := range tt.want {
			if !strings.Contains(out.String(), want) {
				t.Errorf("convert %q output does not contain %q:\n%s", tt.args, want, out)
			}
		}
	}

	setup(t)
	if status := run(t, &convertCmd{}, "-from", "Millet"); status != subcommands.ExitFailure {
		t.Errorf("convert of an unknown ingredient = %v, want ExitFailure", status)
	}
}

func TestDishesAndGroups(t *testing.T) {
	out := setup(t)
	if status := run(t, &dishesCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("dishes returned %v", status)
	}
	if status := run(t, &groupsCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("groups returned %v", status)
	}
	for _, want := range []string{"Lentil Stew", "Porridge", "Legumbres", "Quinoa"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}
