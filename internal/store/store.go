package store

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/shopping/internal/model"
)

// In-memory item storage. One owner, no locking: every caller runs
// inside a single event turn.

var (
	// ErrOutOfRange is returned when an index is outside 0..Len()-1.
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmptyName is returned by Rename when the new name is empty.
	ErrEmptyName = errors.New("empty name")
)

// Store owns the ordered item collection. Positions are dense and
// shift down by one after a Delete.
type Store struct {
	items []model.Item
}

// DefaultSeed returns the items a fresh list starts with.
func DefaultSeed() []model.Item {
	return []model.Item{
		{Name: "apples"},
		{Name: "oranges"},
		{Name: "milk", Checked: true},
		{Name: "bread"},
		{Name: "butter", Checked: true},
	}
}

// New returns a store holding a copy of seed.
func New(seed ...model.Item) *Store {
	items := make([]model.Item, len(seed))
	copy(items, seed)
	return &Store{items: items}
}

func (s *Store) Len() int { return len(s.items) }

// Add appends an unchecked item. Any name is accepted, empty included.
func (s *Store) Add(name string) {
	s.items = append(s.items, model.Item{Name: name})
}

func (s *Store) ToggleChecked(index int) error {
	if err := s.check(index); err != nil {
		return fmt.Errorf("toggle: %w", err)
	}
	s.items[index].Checked = !s.items[index].Checked
	return nil
}

func (s *Store) Delete(index int) error {
	if err := s.check(index); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Rename replaces the name at index. An empty name leaves the item
// untouched and reports ErrEmptyName.
func (s *Store) Rename(index int, name string) error {
	if err := s.check(index); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if name == "" {
		return fmt.Errorf("rename %d: %w", index, ErrEmptyName)
	}
	s.items[index].Name = name
	return nil
}

// Get returns the item at index.
func (s *Store) Get(index int) (model.Item, error) {
	if err := s.check(index); err != nil {
		return model.Item{}, err
	}
	return s.items[index], nil
}

// All returns a copy of the collection in store order.
func (s *Store) All() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Entries pairs every item with its own store index.
func (s *Store) Entries() []model.Entry {
	return s.Filter(nil)
}

// Filter returns the entries whose item satisfies keep, in store order.
// A nil predicate keeps everything. The store is not modified.
func (s *Store) Filter(keep func(model.Item) bool) []model.Entry {
	out := make([]model.Entry, 0, len(s.items))
	for i, it := range s.items {
		if keep == nil || keep(it) {
			out = append(out, model.Entry{Index: i, Item: it})
		}
	}
	return out
}

// Stats counts checked and pending items.
func (s *Store) Stats() (checked, pending int) {
	for _, it := range s.items {
		if it.Checked {
			checked++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: have %d, got %d", ErrOutOfRange, len(s.items), index)
	}
	return nil
}
