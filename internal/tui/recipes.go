package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/recipes"
	"github.com/idilsaglam/homelists/internal/ui"
)

type recipeItem struct{ model.Recipe }

func (i recipeItem) Title() string { return i.Name }
func (i recipeItem) Description() string {
	return fmt.Sprintf("%d portions · %d ingredients", i.Portions, len(i.Ingredients))
}
func (i recipeItem) FilterValue() string { return i.Name }

// RecipesModel is the recipe book: a list of recipes and an edit form
// opened over it.
type RecipesModel struct {
	svc     *recipes.Service
	recipes []model.Recipe
	list    list.Model

	form   *recipeForm
	status string
	err    error

	width, height int
}

var (
	editKey      = key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit"))
	newRecipeKey = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new recipe"))
)

func NewRecipes(svc *recipes.Service, rs []model.Recipe) RecipesModel {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(ui.Current().Accent.GetForeground())
	l := list.New(nil, d, 0, 0)
	l.Title = "Recipe Book"
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.SetStatusBarItemName("recipe", "recipes")
	l.FilterInput.Prompt = "/ "
	extra := func() []key.Binding { return []key.Binding{editKey, newRecipeKey, deleteKey} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := RecipesModel{svc: svc, list: l, width: 80, height: 24}
	m.setRecipes(rs)
	m.resize()
	return m
}

func (m RecipesModel) Recipes() []model.Recipe { return m.recipes }

// Editing reports whether the edit form is open.
func (m RecipesModel) Editing() bool { return m.form != nil }

func (m *RecipesModel) setRecipes(rs []model.Recipe) tea.Cmd {
	m.recipes = rs
	li := make([]list.Item, 0, len(rs))
	for _, r := range rs {
		li = append(li, recipeItem{r})
	}
	return m.list.SetItems(li)
}

func (m *RecipesModel) resize() {
	m.list.SetSize(m.width-4, m.height-4)
	if m.form != nil {
		m.form.setWidth(m.width - 8)
	}
}

// reload re-reads the book and keeps the cursor on recipe id when it is
// visible, otherwise near its previous position.
func (m *RecipesModel) reload(status string, id int) tea.Cmd {
	rs, err := m.svc.List()
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	m.status = status
	idx := m.list.Index()
	cmd := m.setRecipes(rs)
	if m.list.FilterState() == list.FilterApplied {
		// SetItems filters asynchronously; refilter now so indexes below
		// refer to the visible items.
		m.list.SetFilterText(m.list.FilterValue())
		cmd = nil
	}
	visible := m.list.VisibleItems()
	for i, it := range visible {
		if r, ok := it.(recipeItem); ok && id != 0 && r.ID == id {
			idx = i
			break
		}
	}
	if idx >= len(visible) {
		idx = len(visible) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	return cmd
}

func (m RecipesModel) Init() tea.Cmd { return nil }

func (m RecipesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch km.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.list.FilterState() == list.Unfiltered {
			return m, tea.Quit
		}
	case "enter", "e":
		if it, ok := m.list.SelectedItem().(recipeItem); ok {
			m.form = newRecipeForm(it.Recipe, m.width-8)
			m.err = nil
			return m, m.form.focusCurrent()
		}
		return m, nil
	case "a":
		m.form = newRecipeForm(model.Recipe{Portions: 2}, m.width-8)
		m.err = nil
		return m, m.form.focusCurrent()
	case "d":
		if it, ok := m.list.SelectedItem().(recipeItem); ok {
			if err := m.svc.Delete(it.ID); err != nil {
				m.err = err
				return m, nil
			}
			return m, m.reload("deleted "+it.Name, 0)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m RecipesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if ok {
		switch km.String() {
		case "esc":
			m.form = nil
			m.status = "edit cancelled"
			return m, nil
		case "ctrl+s":
			return m.saveForm()
		}
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m RecipesModel) saveForm() (tea.Model, tea.Cmd) {
	draft, err := m.form.draft()
	if err != nil {
		m.form.err = err
		return m, nil
	}
	saved, err := m.svc.Save(draft, m.form.portions)
	if err != nil {
		// The form stays open so the draft survives a failed write.
		m.form.err = err
		return m, nil
	}
	m.form = nil
	return m, m.reload("saved "+saved.Name, saved.ID)
}

func (m RecipesModel) View() string {
	t := ui.Current()
	var b strings.Builder
	if m.form != nil {
		b.WriteString(m.form.view())
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(t.Error.Render("✖ " + m.err.Error()))
	case m.status != "":
		b.WriteString(t.Success.Render(t.SymDone + " " + m.status))
	}
	return ui.Panel([]string{b.String()})
}
