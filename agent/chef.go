package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/docs"
	"github.com/etnz/recetario/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user plans meals from a personal cookbook. They want to know what to cook, how to
			replace an ingredient they are missing, and what they ate recently.
			Never invent a dish or a quantity: the Chef knows the cookbook, ask him.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewNutritionist returns an expert grounded on Google Search.
func NewNutritionist() *Expert {
	return &Expert{
		Name: "Nutritionist",
		Description: `This is an expert nutritionist.
		Very well aware of the nutritional value of ingredients, diets and healthy habits.
		Ask the Nutritionist whenever you need general or grounding information about food.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in nutrition. You leverage Google Search to ground your assertions
			about ingredients, calories, macro nutrients and diets.
			You know how to relate them to the user's request.
			`}}},
		},
	}
}

// NewChef returns the expert of the user's cookbook and history.
func NewChef(k *recetario.Kitchen, store *recetario.HistoryStore) *Expert {
	lib := ChefFunctions(k, store)
	return &Expert{
		Name: "Chef",
		Description: `This is the Chef. He knows the user's cookbook: dishes, ingredients, equivalences,
		and the history of the meals the user cooked.
		He can plan a dish with ingredient substitutions and convert quantities between equivalent ingredients.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the chef in charge of the user's cookbook.
				You know how to use the Tools to extract relevant information about dishes, ingredients and past meals.
				You are part of a team of experts, they might ask you questions with approximative names,
				check the list of dishes and ingredients to figure out what they meant.

				Quantities are grams of dry ingredients. Use the tools to compute them, never compute them yourself.
				` + must(docs.GetTopic("substitutions"))}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ChefFunctions returns the tools of the Chef.
func ChefFunctions(k *recetario.Kitchen, store *recetario.HistoryStore) []Function {
	return []Function{
		dishesFunc(k),
		groupsFunc(k),
		convertFunc(k),
		planFunc(k),
		historyFunc(store),
	}
}

func dishesFunc(k *recetario.Kitchen) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Dishes",
			Description: "Dishes lists the dishes of the cookbook, by meal type.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"meal_type": {
						Type:        genai.TypeString,
						Description: "Restrict the list to a meal type, for instance Desayuno or Almuerzo. Empty lists everything.",
					},
				},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown list of dishes per meal type."},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			mealType, err := stringArg(args, "meal_type", false)
			if err != nil {
				return "", err
			}
			return renderer.DishesMarkdown(k.Cookbook, mealType), nil
		},
	}
}

func groupsFunc(k *recetario.Kitchen) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Ingredients",
			Description: "Ingredients lists every known ingredient by group, with its equivalence key and value.",
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
			Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown table per ingredient group."},
		},
		Func: func(context.Context, map[string]any) (string, error) {
			return renderer.GroupsMarkdown(k.Equivalences), nil
		},
	}
}

func convertFunc(k *recetario.Kitchen) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Convert",
			Description: `Convert computes the grams of an ingredient equivalent to a quantity of another.
			Without 'to', it lists the conversions into every ingredient with the same equivalence key.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from":  {Type: genai.TypeString, Description: "The ingredient to convert from."},
					"to":    {Type: genai.TypeString, Description: "The ingredient to convert to."},
					"grams": {Type: genai.TypeNumber, Description: "The quantity to convert, the equivalence value of 'from' by default."},
				},
				Required: []string{"from"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The conversion in markdown."},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			from, err := stringArg(args, "from", true)
			if err != nil {
				return "", err
			}
			to, err := stringArg(args, "to", false)
			if err != nil {
				return "", err
			}
			source, ok := k.Equivalences.Lookup(from)
			if !ok {
				return "", fmt.Errorf("%q: %w", from, recetario.ErrNotFound)
			}
			q := source.Value
			if grams, ok, err := numberArg(args, "grams"); err != nil {
				return "", err
			} else if ok {
				q = recetario.Q(grams)
			}

			if to != "" {
				c, err := k.Equivalences.Convert(from, to, q)
				if err != nil {
					return "", err
				}
				return renderer.ConversionMarkdown(c), nil
			}
			targets, err := k.Equivalences.Targets(from, false)
			if err != nil {
				return "", err
			}
			var conversions []recetario.Conversion
			for _, t := range targets {
				c, err := k.Equivalences.Convert(from, t.Ingredient, q)
				if err != nil {
					return "", err
				}
				conversions = append(conversions, c)
			}
			return renderer.TargetsMarkdown(source, conversions), nil
		},
	}
}

func planFunc(k *recetario.Kitchen) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Plan",
			Description: `Plan returns the recipe of a dish, the substitution options of each ingredient,
			and the final menu once the substitutions are applied.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"dish": {Type: genai.TypeString, Description: "The dish, as listed by Dishes."},
					"substitutions": {
						Type:        genai.TypeArray,
						Description: "The ingredients to replace.",
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"ingredient": {Type: genai.TypeString, Description: "The ingredient of the recipe."},
								"substitute": {Type: genai.TypeString, Description: "One of the options of the ingredient."},
							},
							Required: []string{"ingredient", "substitute"},
						},
					},
				},
				Required: []string{"dish"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The recipe and the menu in markdown."},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			dish, err := stringArg(args, "dish", true)
			if err != nil {
				return "", err
			}
			choices, err := choicesArg(args["substitutions"])
			if err != nil {
				return "", err
			}
			m, err := k.Plan(dish, choices)
			if err != nil {
				return "", err
			}
			return renderer.PlanMarkdown(k.Equivalences, m), nil
		},
	}
}

// choicesArg decodes a list of {ingredient, substitute} objects.
func choicesArg(v any) (map[string]recetario.Choice, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("argument 'substitutions' is not a list as expected but %T", v)
	}
	choices := make(map[string]recetario.Choice, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("substitution is not an object as expected but %T", item)
		}
		ingredient, err := stringArg(obj, "ingredient", true)
		if err != nil {
			return nil, err
		}
		substitute, err := stringArg(obj, "substitute", true)
		if err != nil {
			return nil, err
		}
		if substitute == recetario.NoSubstitutionLabel {
			choices[ingredient] = recetario.NoSubstitution()
			continue
		}
		choices[ingredient] = recetario.Substitute(substitute)
	}
	return choices, nil
}

func historyFunc(store *recetario.HistoryStore) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History evaluates a JSONPath expression over the meals cooked by the user, most recent first.
			Each entry has the fields fecha (date YYYY-MM-DD), hora (time HH:MM:SS), comida (meal type),
			plato (dish), ingrediente, cantidad (grams) and grupo_ingrediente.
			For instance '$[?(@.plato=="Lentil Stew")].fecha' lists the dates the dish was cooked.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {Type: genai.TypeString, Description: "The JSONPath expression, '$' returns everything."},
				},
				Required: []string{"query"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The JSON result of the query."},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			query, err := stringArg(args, "query", true)
			if err != nil {
				return "", err
			}
			h, err := store.Load()
			if errors.Is(err, recetario.ErrEmptyHistory) {
				return "The user has not cooked anything yet.", nil
			}
			if err != nil {
				return "", err
			}
			res, err := h.Query(query)
			if err != nil {
				return "", err
			}
			data, err := json.Marshal(res)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
	}
}
