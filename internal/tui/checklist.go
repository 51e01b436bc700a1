// Package tui holds the interactive Bubble Tea front ends of both apps.
// Every intent goes through the app's service, which persists the new
// collection before the view is refreshed.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/homelists/internal/checklist"
	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/ui"
)

// checkItem adapts model.ChecklistItem to list.Item.
type checkItem struct{ model.ChecklistItem }

func (i checkItem) FilterValue() string { return i.Text }

type checkDelegate struct{}

func (d checkDelegate) Height() int                               { return 1 }
func (d checkDelegate) Spacing() int                              { return 0 }
func (d checkDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d checkDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(checkItem)
	if !ok {
		return
	}
	t := ui.Current()
	text := it.Text
	if it.Completed {
		text = t.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, ui.Checkbox(it.Completed), text)
}

// ChecklistModel is the checklist list view with an inline add bar.
type ChecklistModel struct {
	svc   *checklist.Service
	items []model.ChecklistItem
	list  list.Model

	adding bool
	input  textinput.Model
	status string
	err    error

	width, height int
}

var (
	toggleKey = key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle"))
	addKey    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	deleteKey = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
)

// NewChecklist builds the model from the already initialized items.
func NewChecklist(svc *checklist.Service, items []model.ChecklistItem) ChecklistModel {
	l := list.New(nil, checkDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("step", "steps")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	extra := func() []key.Binding { return []key.Binding{toggleKey, addKey, deleteKey} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New checklist step..."
	ti.CharLimit = 200

	m := ChecklistModel{svc: svc, list: l, input: ti, width: 80, height: 24}
	m.setItems(items)
	m.resize()
	return m
}

// Items is the collection as last persisted.
func (m ChecklistModel) Items() []model.ChecklistItem { return m.items }

func (m *ChecklistModel) setItems(items []model.ChecklistItem) tea.Cmd {
	m.items = items
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, checkItem{it})
	}
	cmd := m.list.SetItems(li)

	t := ui.Current()
	done, pending := model.Progress(items)
	m.list.Title = fmt.Sprintf("Cyprus Visa Application Checklist   %s %d  %s %d  %s",
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Muted.Render(ui.ProgressBar(done, done+pending, 20)))
	return cmd
}

func (m *ChecklistModel) resize() {
	h := m.height - 4
	if m.adding {
		h -= 2
	}
	m.list.SetSize(m.width-4, h)
}

func (m ChecklistModel) selected() (model.ChecklistItem, bool) {
	it, ok := m.list.SelectedItem().(checkItem)
	return it.ChecklistItem, ok
}

// apply shows the result of a service call, keeping the cursor in place.
func (m *ChecklistModel) apply(items []model.ChecklistItem, err error, status string) tea.Cmd {
	if err != nil {
		m.err = err
		m.status = ""
		return nil
	}
	m.err = nil
	m.status = status
	idx := m.list.Index()
	cmd := m.setItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	return cmd
}

func (m ChecklistModel) Init() tea.Cmd { return nil }

func (m ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch km.String() {
	case "q", "esc", "ctrl+c":
		if km.String() == "esc" && m.list.FilterState() != list.Unfiltered {
			break
		}
		return m, tea.Quit
	case " ", "enter":
		if it, ok := m.selected(); ok {
			items, err := m.svc.Toggle(it.ID)
			status := "unchecked"
			if !it.Completed {
				status = "done: " + ui.Truncate(it.Text, 40)
			}
			return m, m.apply(items, err, status)
		}
		return m, nil
	case "d":
		if it, ok := m.selected(); ok {
			items, err := m.svc.Delete(it.ID)
			return m, m.apply(items, err, "removed")
		}
		return m, nil
	case "a":
		m.adding = true
		m.input.SetValue("")
		m.resize()
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ChecklistModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			items, added, err := m.svc.Add(m.input.Value())
			if errors.Is(err, model.ErrEmptyText) {
				m.err = errors.New("text cannot be empty")
				return m, nil
			}
			m.stopAdding()
			cmd := m.apply(items, err, "added")
			if err == nil {
				m.list.Select(model.Find(items, added.ID))
			}
			return m, cmd
		case "esc":
			m.stopAdding()
			m.err = nil
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChecklistModel) stopAdding() {
	m.adding = false
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m ChecklistModel) View() string {
	t := ui.Current()
	var b strings.Builder
	b.WriteString(m.list.View())
	if m.adding {
		b.WriteString("\n" + t.Accent.Render("Add step") + "\n" + m.input.View())
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
