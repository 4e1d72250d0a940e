package recetario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/recetario/date"
	"github.com/etnz/recetario/xlsx"
	"go.uber.org/zap"
)

// Reference file names in the data directory.
const (
	RecipesFile      = "comidas.xlsx"
	EquivalencesFile = "equivalencias.xlsx"
)

// Kitchen is the read-only reference data: loaded once, then passed to every operation.
type Kitchen struct {
	Cookbook     *Cookbook
	Equivalences *Equivalences
}

// LoadKitchen reads the recipes and equivalences files from dataDir.
//
// It fails with ErrMissingReferenceData if either file does not exist.
func LoadKitchen(dataDir string, logger *zap.Logger) (*Kitchen, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	recipes, err := readReference(dataDir, RecipesFile)
	if err != nil {
		return nil, err
	}
	equivalences, err := readReference(dataDir, EquivalencesFile)
	if err != nil {
		return nil, err
	}

	k := new(Kitchen)
	if k.Cookbook, err = DecodeCookbook(recipes); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", RecipesFile, err)
	}
	if k.Equivalences, err = DecodeEquivalences(equivalences); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", EquivalencesFile, err)
	}
	logger.Debug("kitchen loaded",
		zap.String("dir", dataDir),
		zap.Int("recipeLines", k.Cookbook.Len()),
		zap.Int("equivalences", k.Equivalences.Len()))
	return k, nil
}

func readReference(dataDir, name string) (*xlsx.Table, error) {
	path := filepath.Join(dataDir, name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: make sure %q and %q are in the %q directory", ErrMissingReferenceData, RecipesFile, EquivalencesFile, dataDir)
	}
	return xlsx.ReadFile(path)
}

// Menu is a dish with the substitution choices applied.
type Menu struct {
	MealType string
	Dish     string
	Recipe   []RecipeLine
	Lines    []MenuLine
}

// Plan resolves every ingredient of dish with choices, keyed by original ingredient.
// Ingredients without a choice are kept.
func (k *Kitchen) Plan(dish string, choices map[string]Choice) (*Menu, error) {
	recipe := k.Cookbook.Recipe(dish)
	if len(recipe) == 0 {
		return nil, fmt.Errorf("%w %q", ErrUnknownDish, dish)
	}
	m := &Menu{MealType: recipe[0].MealType, Dish: dish, Recipe: recipe}

	used := 0
	for _, line := range recipe {
		choice, ok := choices[line.Ingredient]
		if ok {
			used++
		}
		ml, err := k.Equivalences.Resolve(line, choice)
		if err != nil {
			return nil, err
		}
		m.Lines = append(m.Lines, ml)
	}
	if used != len(choices) {
		for ingredient := range choices {
			if !containsIngredient(recipe, ingredient) {
				return nil, fmt.Errorf("%q is not an ingredient of %q: %w", ingredient, dish, ErrNotSubstitutable)
			}
		}
	}
	return m, nil
}

func containsIngredient(recipe []RecipeLine, ingredient string) bool {
	for _, l := range recipe {
		if l.Ingredient == ingredient {
			return true
		}
	}
	return false
}

// Warnings returns the conversion warnings of the menu.
func (m *Menu) Warnings() []string {
	var res []string
	for _, l := range m.Lines {
		if l.Warning != "" {
			res = append(res, l.Warning)
		}
	}
	return res
}

// Entries returns the history entries of cooking m at the given date and time.
func (m *Menu) Entries(on date.Date, at date.Clock) []Entry {
	entries := make([]Entry, 0, len(m.Lines))
	for _, l := range m.Lines {
		entries = append(entries, Entry{
			Date:       on,
			Time:       at,
			MealType:   m.MealType,
			Dish:       m.Dish,
			Ingredient: l.Ingredient,
			Quantity:   l.Quantity,
			Group:      l.Group,
		})
	}
	return entries
}
