package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/homelists/internal/checklist"
	"github.com/idilsaglam/homelists/internal/recipes"
)

// RunChecklist seeds if needed and blocks until the user quits.
func RunChecklist(svc *checklist.Service) error {
	items, err := svc.Init()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(NewChecklist(svc, items), tea.WithAltScreen()).Run()
	return err
}

func RunRecipes(svc *recipes.Service) error {
	rs, err := svc.Init()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(NewRecipes(svc, rs), tea.WithAltScreen()).Run()
	return err
}
