package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Portion bounds enforced by the edit surface.
const (
	MinPortions = 1
	MaxPortions = 10
)

// Ingredient is one line of a recipe. Amount is per recipe, not per portion.
type Ingredient struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// Recipe keeps amount/portions constant for every ingredient across rescales.
type Recipe struct {
	ID           int          `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Instructions string       `json:"instructions" yaml:"instructions"`
	Portions     int          `json:"portions" yaml:"portions"`
}

func (r Recipe) EntityID() int { return r.ID }

// Clone copies r including its ingredient slice.
func (r Recipe) Clone() Recipe {
	if r.Ingredients != nil {
		r.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	}
	return r
}

// ValidatePortions checks n against the range the portion control allows.
func ValidatePortions(n int) error {
	if n < MinPortions || n > MaxPortions {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrPortionsOutOfRange, n, MinPortions, MaxPortions)
	}
	return nil
}

// Rescale returns a copy of r sized for portions. Every amount becomes
// amount*portions/r.Portions; r itself is left untouched.
func Rescale(r Recipe, portions int) (Recipe, error) {
	if r.Portions <= 0 {
		return Recipe{}, fmt.Errorf("rescale %q: %w (have %d)", r.Name, ErrInvalidPortions, r.Portions)
	}
	if portions <= 0 {
		return Recipe{}, fmt.Errorf("rescale %q: %w (target %d)", r.Name, ErrInvalidPortions, portions)
	}
	out := r.Clone()
	if portions == r.Portions {
		return out, nil
	}
	for i := range out.Ingredients {
		out.Ingredients[i].Amount = out.Ingredients[i].Amount * float64(portions) / float64(r.Portions)
	}
	out.Portions = portions
	return out, nil
}

// Replace swaps in edited for the entry with the same id.
func Replace(recipes []Recipe, edited Recipe) (out []Recipe, found bool) {
	out = make([]Recipe, len(recipes))
	for i, r := range recipes {
		if r.ID == edited.ID {
			r = edited.Clone()
			found = true
		}
		out[i] = r
	}
	return out, found
}

// AppendRecipe inserts r under the next free id, ignoring any id r carries.
func AppendRecipe(recipes []Recipe, r Recipe) ([]Recipe, Recipe) {
	r = r.Clone()
	r.ID = NextID(recipes)
	out := make([]Recipe, 0, len(recipes)+1)
	out = append(out, recipes...)
	return append(out, r), r
}

// SaveRecipe rescales edited to portions and stores it. The rescale is
// computed from edited.Portions, which must still hold the count the
// amounts were written for. An edited recipe with id 0 is new and gets
// appended with a fresh id.
func SaveRecipe(recipes []Recipe, edited Recipe, portions int) ([]Recipe, Recipe, error) {
	scaled, err := Rescale(edited, portions)
	if err != nil {
		return nil, Recipe{}, err
	}
	if scaled.ID == 0 {
		out, added := AppendRecipe(recipes, scaled)
		return out, added, nil
	}
	out, found := Replace(recipes, scaled)
	if !found {
		return nil, Recipe{}, fmt.Errorf("recipe %d: %w", scaled.ID, ErrNotFound)
	}
	return out, scaled, nil
}

// FormatAmount prints an amount with at most two decimals and no trailing zeros.
func FormatAmount(a float64) string {
	return strconv.FormatFloat(roundTo(a, 2), 'f', -1, 64)
}

func roundTo(a float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(a*p) / p
}

// String renders "1.5 cup Quinoa".
func (i Ingredient) String() string {
	if i.Unit == "" {
		return FormatAmount(i.Amount) + " " + i.Name
	}
	return FormatAmount(i.Amount) + " " + i.Unit + " " + i.Name
}

// ParseIngredient reads "name:amount[:unit]", e.g. "Quinoa:1:cup".
func ParseIngredient(s string) (Ingredient, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Ingredient{}, fmt.Errorf("ingredient %q: want name:amount[:unit]", s)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Ingredient{}, fmt.Errorf("ingredient %q: %w", s, ErrEmptyText)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Ingredient{}, fmt.Errorf("ingredient %q: amount: %w", s, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Ingredient{}, fmt.Errorf("ingredient %q: amount must be a positive number", s)
	}
	in := Ingredient{Name: name, Amount: amount}
	if len(parts) == 3 {
		in.Unit = strings.TrimSpace(parts[2])
	}
	return in, nil
}

// FormatIngredient is the inverse of ParseIngredient.
func FormatIngredient(i Ingredient) string {
	s := i.Name + ":" + strconv.FormatFloat(i.Amount, 'f', -1, 64)
	if i.Unit != "" {
		s += ":" + i.Unit
	}
	return s
}
