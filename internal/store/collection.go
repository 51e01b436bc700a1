package store

import (
	"encoding/json"
	"fmt"
	"log"
)

// Collection mirrors a slice of T stored wholesale under one key.
type Collection[T any] struct {
	s   Store
	key string
}

func NewCollection[T any](s Store, key string) *Collection[T] {
	return &Collection[T]{s: s, key: key}
}

func (c *Collection[T]) Key() string { return c.key }

// Load returns the stored collection. An absent key or a value that does
// not decode as a JSON array of T reads as an empty collection.
func (c *Collection[T]) Load() ([]T, error) {
	b, ok, err := c.s.Read(c.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}
	if !ok || len(b) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		log.Printf("store: %s holds malformed data, treating as empty: %v", c.key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the stored collection with items.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := c.s.Write(c.key, b); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}
