// Package checklist is the visa checklist app: a seeded list of steps
// that can be ticked off, added to and pruned.
package checklist

import (
	"fmt"
	"log"
	"strings"

	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/seed"
	"github.com/idilsaglam/homelists/internal/store"
)

// StoreKey is where the checklist lives in the key-value store.
const StoreKey = "cyprusVisaTodos"

// Service applies user intents to the stored checklist. Every mutation
// loads the whole list, computes a new one and writes it back.
type Service struct {
	items *store.Collection[model.ChecklistItem]
}

func NewService(s store.Store) *Service {
	return &Service{items: store.NewCollection[model.ChecklistItem](s, StoreKey)}
}

// Init returns the stored checklist, writing the default one first if the
// store holds nothing usable.
func (s *Service) Init() ([]model.ChecklistItem, error) {
	items, err := s.items.Load()
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}
	log.Printf("checklist: empty store, seeding defaults")
	return s.Reset()
}

// Reset overwrites the checklist with the defaults.
func (s *Service) Reset() ([]model.ChecklistItem, error) {
	items := seed.Checklist()
	if err := s.items.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) List() ([]model.ChecklistItem, error) {
	return s.items.Load()
}

func (s *Service) Toggle(id int) ([]model.ChecklistItem, error) {
	items, err := s.items.Load()
	if err != nil {
		return nil, err
	}
	out, found := model.Toggle(items, id)
	if !found {
		return nil, fmt.Errorf("item %d: %w", id, model.ErrNotFound)
	}
	if err := s.items.Save(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Add(text string) ([]model.ChecklistItem, model.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, model.ChecklistItem{}, fmt.Errorf("add: %w", model.ErrEmptyText)
	}
	items, err := s.items.Load()
	if err != nil {
		return nil, model.ChecklistItem{}, err
	}
	out, added := model.AppendItem(items, text)
	if err := s.items.Save(out); err != nil {
		return nil, model.ChecklistItem{}, err
	}
	return out, added, nil
}

func (s *Service) Delete(id int) ([]model.ChecklistItem, error) {
	items, err := s.items.Load()
	if err != nil {
		return nil, err
	}
	out, found := model.Delete(items, id)
	if !found {
		return nil, fmt.Errorf("item %d: %w", id, model.ErrNotFound)
	}
	if err := s.items.Save(out); err != nil {
		return nil, err
	}
	return out, nil
}
