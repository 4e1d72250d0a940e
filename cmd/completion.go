package cmd

import (
	"flag"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of rcp and its subcommands.
//
// Dish and ingredient flags are completed from the reference data, when it can be loaded.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands() {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	topics, _ := docs.GetAllTopics()
	root.Sub["topic"].Args = predict.Set(append([]string{"readme"}, topics...))
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		res[fl.Name] = flagPredictor(fl)
	})
	return res
}

func flagPredictor(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch fl.Name {
	case "i", "o":
		return predict.Files("*.xlsx")
	case "data-dir", "save-dir":
		return predict.Dirs("*")
	case "d":
		return fromKitchen(dishNames)
	case "from", "to":
		return fromKitchen(ingredientNames)
	case "p":
		return predict.Set{"daily", "weekly", "monthly", "yearly"}
	}
	return predict.Something
}

// fromKitchen predicts names read from the reference data.
func fromKitchen(names func(*recetario.Kitchen) []string) complete.Predictor {
	return complete.PredictFunc(func(string) []string {
		k, err := OpenKitchen()
		if err != nil {
			return nil
		}
		return names(k)
	})
}

func dishNames(k *recetario.Kitchen) []string { return k.Cookbook.Dishes("") }

func ingredientNames(k *recetario.Kitchen) []string {
	var res []string
	for _, g := range k.Equivalences.Groups() {
		for _, e := range k.Equivalences.InGroup(g) {
			res = append(res, e.Ingredient)
		}
	}
	return res
}
