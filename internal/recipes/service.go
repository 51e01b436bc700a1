// Package recipes is the recipe book app. Editing a recipe's portion
// count rescales every ingredient amount proportionally.
package recipes

import (
	"fmt"
	"log"
	"strings"

	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/seed"
	"github.com/idilsaglam/homelists/internal/store"
)

// StoreKey is where the recipe book lives in the key-value store.
const StoreKey = "recipes"

type Service struct {
	recipes *store.Collection[model.Recipe]
}

func NewService(s store.Store) *Service {
	return &Service{recipes: store.NewCollection[model.Recipe](s, StoreKey)}
}

// Init returns the stored recipes, seeding the default book when empty.
func (s *Service) Init() ([]model.Recipe, error) {
	recipes, err := s.recipes.Load()
	if err != nil {
		return nil, err
	}
	if len(recipes) > 0 {
		return recipes, nil
	}
	log.Printf("recipes: empty store, seeding defaults")
	return s.Reset()
}

func (s *Service) Reset() ([]model.Recipe, error) {
	recipes := seed.Recipes()
	if err := s.recipes.Save(recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *Service) List() ([]model.Recipe, error) {
	return s.recipes.Load()
}

func (s *Service) Get(id int) (model.Recipe, error) {
	recipes, err := s.recipes.Load()
	if err != nil {
		return model.Recipe{}, err
	}
	i := model.Find(recipes, id)
	if i < 0 {
		return model.Recipe{}, fmt.Errorf("recipe %d: %w", id, model.ErrNotFound)
	}
	return recipes[i], nil
}

// Save stores edited rescaled to portions. edited.Portions must be the
// count its amounts were written for. A recipe with id 0 is added.
func (s *Service) Save(edited model.Recipe, portions int) (model.Recipe, error) {
	if err := model.ValidatePortions(portions); err != nil {
		return model.Recipe{}, err
	}
	if edited.ID == 0 {
		if err := checkNew(edited); err != nil {
			return model.Recipe{}, err
		}
	}
	recipes, err := s.recipes.Load()
	if err != nil {
		return model.Recipe{}, err
	}
	out, saved, err := model.SaveRecipe(recipes, edited, portions)
	if err != nil {
		return model.Recipe{}, err
	}
	if err := s.recipes.Save(out); err != nil {
		return model.Recipe{}, err
	}
	return saved, nil
}

// Scale rescales the stored recipe id to portions.
func (s *Service) Scale(id, portions int) (model.Recipe, error) {
	r, err := s.Get(id)
	if err != nil {
		return model.Recipe{}, err
	}
	return s.Save(r, portions)
}

// Add inserts r as written, under a fresh id.
func (s *Service) Add(r model.Recipe) (model.Recipe, error) {
	r.ID = 0
	if err := model.ValidatePortions(r.Portions); err != nil {
		return model.Recipe{}, err
	}
	return s.Save(r, r.Portions)
}

func (s *Service) Delete(id int) error {
	recipes, err := s.recipes.Load()
	if err != nil {
		return err
	}
	out, found := model.Delete(recipes, id)
	if !found {
		return fmt.Errorf("recipe %d: %w", id, model.ErrNotFound)
	}
	return s.recipes.Save(out)
}

func checkNew(r model.Recipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe name: %w", model.ErrEmptyText)
	}
	if r.Portions <= 0 {
		return fmt.Errorf("recipe %q: %w", r.Name, model.ErrInvalidPortions)
	}
	return nil
}
