package recetario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/recetario/date"
	"github.com/etnz/recetario/xlsx"
)

func testEquivalences() *Equivalences {
	return NewEquivalences(
		Equivalence{Ingredient: "Rice", Key: "cereal", Value: Q(100), Group: "Cereales"},
		Equivalence{Ingredient: "Quinoa", Key: "cereal", Value: Q(120), Group: "Cereales"},
		Equivalence{Ingredient: "Couscous", Key: "cereal", Value: Q(0), Group: "Cereales"},
		Equivalence{Ingredient: "Oats", Key: "flakes", Value: Q(80), Group: "Cereales"},
		Equivalence{Ingredient: "Lentils", Key: "legume", Value: Q(90), Group: "Legumbres"},
		Equivalence{Ingredient: "Chickpeas", Key: "legume", Value: Q(95), Group: "Legumbres"},
	)
}

func testCookbook() *Cookbook {
	return NewCookbook(
		RecipeLine{MealType: "Almuerzo", Dish: "Lentil Stew", Ingredient: "Rice", DryQuantity: Q(80), Key: "cereal", Group: "Cereales"},
		RecipeLine{MealType: "Almuerzo", Dish: "Lentil Stew", Ingredient: "Lentils", DryQuantity: Q(60), Key: "legume", Group: "Legumbres"},
		RecipeLine{MealType: "Almuerzo", Dish: "Lentil Stew", Ingredient: "Carrot", DryQuantity: Q(50), Group: "Verduras"},
		RecipeLine{MealType: "Desayuno", Dish: "Porridge", Ingredient: "Oats", DryQuantity: Q(40), Key: "flakes", Group: "Cereales"},
		RecipeLine{MealType: "Almuerzo", Dish: "Couscous Salad", Ingredient: "Couscous", DryQuantity: Q(70), Key: "cereal", Group: "Cereales"},
	)
}

func testKitchen() *Kitchen {
	return &Kitchen{Cookbook: testCookbook(), Equivalences: testEquivalences()}
}

// writeKitchen writes the test reference files in dir.
func writeKitchen(t *testing.T, dir string) {
	t.Helper()
	recipes := xlsx.NewTable(ColMealType, ColDish, ColIngredient, ColDryQuantity, ColKey, ColGroup)
	for _, l := range testCookbook().lines {
		recipes.Append(xlsx.S(l.MealType), xlsx.S(l.Dish), xlsx.S(l.Ingredient), xlsx.N(l.DryQuantity.Float64()), xlsx.S(l.Key), xlsx.S(l.Group))
	}
	if err := xlsx.WriteFile(filepath.Join(dir, RecipesFile), recipes); err != nil {
		t.Fatal(err)
	}

	equivalences := xlsx.NewTable(ColIngredient, ColKey, ColEquivalence, ColGroup)
	for _, e := range testEquivalences().rows {
		equivalences.Append(xlsx.S(e.Ingredient), xlsx.S(e.Key), xlsx.N(e.Value.Float64()), xlsx.S(e.Group))
	}
	if err := xlsx.WriteFile(filepath.Join(dir, EquivalencesFile), equivalences); err != nil {
		t.Fatal(err)
	}
}

// entry is a short hand to create history entries in tests.
func entry(day, clock, dish, ingredient string, grams float64, group string) Entry {
	c, err := date.ParseClock(clock)
	if err != nil {
		panic(err)
	}
	return Entry{
		Date:       date.MustParse(day),
		Time:       c,
		MealType:   "Almuerzo",
		Dish:       dish,
		Ingredient: ingredient,
		Quantity:   Q(grams),
		Group:      group,
	}
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
