// Package seed holds the default collections written on first run.
package seed

import "github.com/idilsaglam/homelists/internal/model"

var checklistTexts = []string{
	"Check passport validity (must be valid for at least 6 months)",
	"Fill out the Cyprus visa application form",
	"Gather required documents (passport photos, bank statements, etc.)",
	"Book flight tickets",
	"Reserve accommodation",
	"Purchase travel insurance",
	"Schedule visa appointment at the Cyprus embassy/consulate",
	"Pay visa application fee",
	"Attend visa interview (if required)",
	"Wait for visa processing",
	"Collect passport with visa",
	"Make copies of all important documents",
	"Inform your bank about travel plans",
	"Check and pack necessary items for the trip",
}

// Checklist returns a fresh copy of the default visa checklist.
func Checklist() []model.ChecklistItem {
	out := make([]model.ChecklistItem, 0, len(checklistTexts))
	for i, text := range checklistTexts {
		out = append(out, model.ChecklistItem{ID: i + 1, Text: text})
	}
	return out
}

// Recipes returns a fresh copy of the default recipe book.
func Recipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:   1,
			Name: "Quinoa Buddha Bowl",
			Ingredients: []model.Ingredient{
				{Name: "Quinoa", Amount: 1, Unit: "cup"},
				{Name: "Chickpeas", Amount: 1, Unit: "can"},
				{Name: "Sweet potato", Amount: 1, Unit: "piece"},
				{Name: "Avocado", Amount: 1, Unit: "piece"},
				{Name: "Tahini", Amount: 2, Unit: "tbsp"},
			},
			Instructions: "Cook quinoa according to package. Roast chickpeas and cubed sweet potato at 200°C for 25 minutes. Slice avocado. Assemble bowls and drizzle with tahini.",
			Portions:     2,
		},
		{
			ID:   2,
			Name: "Classic Pancakes",
			Ingredients: []model.Ingredient{
				{Name: "Flour", Amount: 200, Unit: "g"},
				{Name: "Milk", Amount: 300, Unit: "ml"},
				{Name: "Eggs", Amount: 2, Unit: "piece"},
				{Name: "Sugar", Amount: 1, Unit: "tbsp"},
				{Name: "Butter", Amount: 30, Unit: "g"},
			},
			Instructions: "Whisk flour, sugar, milk and eggs into a smooth batter. Melt butter in a pan and cook ladlefuls of batter until golden on both sides.",
			Portions:     4,
		},
		{
			ID:   3,
			Name: "Halloumi Salad",
			Ingredients: []model.Ingredient{
				{Name: "Halloumi", Amount: 250, Unit: "g"},
				{Name: "Cherry tomatoes", Amount: 200, Unit: "g"},
				{Name: "Cucumber", Amount: 1, Unit: "piece"},
				{Name: "Olive oil", Amount: 2, Unit: "tbsp"},
				{Name: "Lemon", Amount: 0.5, Unit: "piece"},
			},
			Instructions: "Grill sliced halloumi until browned. Chop tomatoes and cucumber. Toss with olive oil and lemon juice, then top with the halloumi.",
			Portions:     2,
		},
	}
}
