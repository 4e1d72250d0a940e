package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/date"
	"google.golang.org/genai"
)

func testKitchen() *recetario.Kitchen {
	return &recetario.Kitchen{
		Cookbook: recetario.NewCookbook(
			recetario.RecipeLine{MealType: "Almuerzo", Dish: "Lentil Stew", Ingredient: "Rice", DryQuantity: recetario.Q(80), Key: "cereal", Group: "Cereales"},
			recetario.RecipeLine{MealType: "Almuerzo", Dish: "Lentil Stew", Ingredient: "Lentils", DryQuantity: recetario.Q(60), Key: "legume", Group: "Legumbres"},
			recetario.RecipeLine{MealType: "Desayuno", Dish: "Porridge", Ingredient: "Oats", DryQuantity: recetario.Q(40), Key: "flakes", Group: "Cereales"},
		),
		Equivalences: recetario.NewEquivalences(
			recetario.Equivalence{Ingredient: "Rice", Key: "cereal", Value: recetario.Q(100), Group: "Cereales"},
			recetario.Equivalence{Ingredient: "Quinoa", Key: "cereal", Value: recetario.Q(120), Group: "Cereales"},
			recetario.Equivalence{Ingredient: "Lentils", Key: "legume", Value: recetario.Q(90), Group: "Legumbres"},
		),
	}
}

func call(t *testing.T, lib Library, name string, args map[string]any) (output, errMsg string) {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
	if resp.ID != "1" || resp.Name != name {
		t.Errorf("%s response = %s/%s", name, resp.ID, resp.Name)
	}
	output, _ = resp.Response["output"].(string)
	errMsg, _ = resp.Response["error"].(string)
	return output, errMsg
}

func TestChefFunctions(t *testing.T) {
	store := recetario.NewHistoryStore(t.TempDir())
	lib := NewLibrary(ChefFunctions(testKitchen(), store))

	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr string
	}{
		{name: "Dishes", args: map[string]any{}, want: "Lentil Stew"},
		{name: "Dishes", args: map[string]any{"meal_type": "Desayuno"}, want: "Porridge"},
		{name: "Ingredients", args: map[string]any{}, want: "Quinoa"},
		{name: "Convert", args: map[string]any{"from": "Rice", "to": "Quinoa", "grams": 80.0}, want: "**96.00**"},
		{name: "Convert", args: map[string]any{"from": "Rice"}, want: "120.00"},
		{name: "Convert", args: map[string]any{"from": "Millet"}, wantErr: "not found"},
		{name: "Convert", args: map[string]any{}, wantErr: "missing argument"},
		{name: "Plan", args: map[string]any{
			"dish":          "Lentil Stew",
			"substitutions": []any{map[string]any{"ingredient": "Rice", "substitute": "Quinoa"}},
		}, want: "96.00"},
		{name: "Plan", args: map[string]any{"dish": "Pizza"}, wantErr: "unknown dish"},
		{name: "History", args: map[string]any{"query": "$"}, want: "not cooked anything"},
		{name: "Unknown", args: map[string]any{}, wantErr: "unknown function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errMsg := call(t, lib, tt.name, tt.args)
			if tt.wantErr != "" {
				if !strings.Contains(errMsg, tt.wantErr) {
					t.Errorf("%s(%v) error = %q, want %q", tt.name, tt.args, errMsg, tt.wantErr)
				}
				return
			}
			if errMsg != "" {
				t.Fatalf("%s(%v) error = %q", tt.name, tt.args, errMsg)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("%s(%v) = %q, want it to contain %q", tt.name, tt.args, out, tt.want)
			}
		})
	}
}

func TestHistoryFunc(t *testing.T) {
	store := recetario.NewHistoryStore(t.TempDir())
	_, err := store.Append(recetario.Entry{
		Date: date.New(2024, 1, 1), Time: date.NewClock(12, 0, 0),
		MealType: "Almuerzo", Dish: "Lentil Stew", Ingredient: "Quinoa", Quantity: recetario.Q(96), Group: "Cereales",
	})
	if err != nil {
		t.Fatal(err)
	}
	lib := NewLibrary(ChefFunctions(testKitchen(), store))
	out, errMsg := call(t, lib, "History", map[string]any{"query": `$[?(@.plato=="Lentil Stew")].fecha`})
	if errMsg != "" {
		t.Fatal(errMsg)
	}
	if out != `["2024-01-01"]` {
		t.Errorf("History() = %s, want [\"2024-01-01\"]", out)
	}
}

func TestExpertDeclarations(t *testing.T) {
	chef := NewChef(testKitchen(), recetario.NewHistoryStore(t.TempDir()))
	decls := NewDeclaration([]*Expert{chef, NewNutritionist()})
	if len(decls) != 2 || decls[0].Name != "Chef" || decls[1].Name != "Nutritionist" {
		t.Errorf("NewDeclaration() = %v", decls)
	}
	if got := len(chef.Config.Tools[0].FunctionDeclarations); got != 5 {
		t.Errorf("Chef has %d tools, want 5", got)
	}
}
