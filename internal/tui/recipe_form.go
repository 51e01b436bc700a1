package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/ui"
)

const (
	fieldName = iota
	fieldPortions
	fieldIngredients
	fieldInstructions
	fieldCount
)

// recipeForm edits one recipe. Ingredient amounts in the form are always
// for basePortions; the portion control only changes the target count and
// the scaled preview, and the rescale happens on save.
type recipeForm struct {
	id           int
	basePortions int
	portions     int

	name         textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	focus        int
	err          error
}

func newRecipeForm(r model.Recipe, width int) *recipeForm {
	f := &recipeForm{id: r.ID, basePortions: r.Portions, portions: r.Portions}

	f.name = textinput.New()
	f.name.Prompt = ""
	f.name.Placeholder = "Recipe name"
	f.name.CharLimit = 120
	f.name.SetValue(r.Name)

	lines := make([]string, 0, len(r.Ingredients))
	for _, in := range r.Ingredients {
		lines = append(lines, model.FormatIngredient(in))
	}
	f.ingredients = textarea.New()
	f.ingredients.Placeholder = "name:amount:unit, one per line"
	f.ingredients.ShowLineNumbers = false
	f.ingredients.CharLimit = 4000
	f.ingredients.SetHeight(6)
	f.ingredients.SetValue(strings.Join(lines, "\n"))

	f.instructions = textarea.New()
	f.instructions.Placeholder = "Instructions"
	f.instructions.ShowLineNumbers = false
	f.instructions.CharLimit = 4000
	f.instructions.SetHeight(4)
	f.instructions.SetValue(r.Instructions)

	f.setWidth(width)
	return f
}

func (f *recipeForm) isNew() bool { return f.id == 0 }

func (f *recipeForm) setWidth(w int) {
	if w < 20 {
		w = 20
	}
	f.name.Width = w
	f.ingredients.SetWidth(w)
	f.instructions.SetWidth(w)
}

func (f *recipeForm) focusCurrent() tea.Cmd {
	f.name.Blur()
	f.ingredients.Blur()
	f.instructions.Blur()
	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldIngredients:
		return f.ingredients.Focus()
	case fieldInstructions:
		return f.instructions.Focus()
	}
	return nil
}

func (f *recipeForm) setPortions(n int) {
	if model.ValidatePortions(n) != nil {
		return
	}
	f.portions = n
	if f.isNew() {
		f.basePortions = n
	}
}

func (f *recipeForm) update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if ok {
		switch km.String() {
		case "tab":
			f.focus = (f.focus + 1) % fieldCount
			return f.focusCurrent()
		case "shift+tab":
			f.focus = (f.focus + fieldCount - 1) % fieldCount
			return f.focusCurrent()
		}
		if f.focus == fieldPortions {
			switch km.String() {
			case "+", "=", "right", "up":
				f.setPortions(f.portions + 1)
			case "-", "left", "down":
				f.setPortions(f.portions - 1)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	case fieldInstructions:
		f.instructions, cmd = f.instructions.Update(msg)
	}
	return cmd
}

func (f *recipeForm) parseIngredients() ([]model.Ingredient, error) {
	var out []model.Ingredient
	for _, line := range strings.Split(f.ingredients.Value(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		in, err := model.ParseIngredient(line)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// draft is the recipe as typed, at basePortions.
func (f *recipeForm) draft() (model.Recipe, error) {
	ingredients, err := f.parseIngredients()
	if err != nil {
		return model.Recipe{}, err
	}
	return model.Recipe{
		ID:           f.id,
		Name:         strings.TrimSpace(f.name.Value()),
		Ingredients:  ingredients,
		Instructions: strings.TrimSpace(f.instructions.Value()),
		Portions:     f.basePortions,
	}, nil
}

func (f *recipeForm) preview() []string {
	d, err := f.draft()
	if err != nil {
		return []string{ui.Current().Error.Render(err.Error())}
	}
	scaled, err := model.Rescale(d, f.portions)
	if err != nil {
		return []string{ui.Current().Error.Render(err.Error())}
	}
	if len(scaled.Ingredients) == 0 {
		return []string{ui.Current().Muted.Render("(no ingredients)")}
	}
	out := make([]string, 0, len(scaled.Ingredients))
	for _, in := range scaled.Ingredients {
		out = append(out, "• "+in.String())
	}
	return out
}

func (f *recipeForm) view() string {
	t := ui.Current()
	label := func(field int, s string) string {
		if f.focus == field {
			return t.Accent.Render("▸ " + s)
		}
		return t.Muted.Render("  " + s)
	}
	title := "Edit recipe"
	if f.isNew() {
		title = "New recipe"
	}

	portions := fmt.Sprintf("- %2d +", f.portions)
	if f.focus == fieldPortions {
		portions = t.Selected.Render(portions)
	}
	if !f.isNew() && f.portions != f.basePortions {
		portions += t.Muted.Render(fmt.Sprintf("  (written for %d)", f.basePortions))
	}

	lines := []string{
		t.Title.Render(title),
		"",
		label(fieldName, "Name"),
		f.name.View(),
		label(fieldPortions, fmt.Sprintf("Portions (%d-%d)", model.MinPortions, model.MaxPortions)),
		portions,
		label(fieldIngredients, fmt.Sprintf("Ingredients for %d", f.basePortions)),
		f.ingredients.View(),
		label(fieldInstructions, "Instructions"),
		f.instructions.View(),
		"",
		t.Accent.Render(fmt.Sprintf("Scaled for %d", f.portions)),
	}
	lines = append(lines, f.preview()...)
	if f.err != nil {
		lines = append(lines, "", t.Error.Render("✖ "+f.err.Error()))
	}
	lines = append(lines, "", t.Help.Render("tab next field • +/- portions • ctrl+s save • esc cancel"))
	return strings.Join(lines, "\n")
}
