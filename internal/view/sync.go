// Package view keeps a rendered item list in step with the store.
//
// Every user action runs as one turn: resolve the acted-upon record to a
// store index, mutate the store, rebuild the whole rendering. Failures are
// logged and absorbed inside the turn.
package view

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/shopping/internal/model"
	"github.com/idilsaglam/shopping/internal/store"
)

type Option func(*Synchronizer)

func WithLogger(l *zap.Logger) Option {
	return func(s *Synchronizer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHideChecked sets the initial state of the hide-checked toggle.
func WithHideChecked(on bool) Option {
	return func(s *Synchronizer) { s.hideChecked = on }
}

type Synchronizer struct {
	store *store.Store
	sink  Sink
	log   *zap.Logger

	query       string
	hideChecked bool
	current     []Record
}

func New(st *store.Store, sink Sink, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		store: st,
		sink:  sink,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RenderAll renders the whole store, each record carrying its own index.
func (s *Synchronizer) RenderAll() {
	s.RenderFiltered(s.store.Entries())
}

// RenderFiltered renders a subset of the store. Records keep the store
// index of their entry. Any open edit boxes are closed.
func (s *Synchronizer) RenderFiltered(entries []model.Entry) {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		r := recordOf(e)
		r.Hidden = s.hideChecked && r.Checked
		records = append(records, r)
	}
	s.current = records
	s.publish()
}

// ResolveIndex returns the store index a record addresses.
func (s *Synchronizer) ResolveIndex(r Record) int { return r.StoreIndex }

// Search returns the entries whose name contains query, ignoring case.
// An empty query matches every item.
func (s *Synchronizer) Search(query string) []model.Entry {
	q := strings.ToLower(query)
	if q == "" {
		return s.store.Entries()
	}
	return s.store.Filter(func(it model.Item) bool {
		return strings.Contains(strings.ToLower(it.Name), q)
	})
}

// ---- input events ----

func (s *Synchronizer) SubmitNew(name string) {
	s.store.Add(name)
	s.log.Debug("item added", zap.String("name", name), zap.Int("len", s.store.Len()))
	s.refresh()
}

func (s *Synchronizer) ClickToggle(r Record) {
	idx := s.ResolveIndex(r)
	if err := s.store.ToggleChecked(idx); err != nil {
		s.absorb("toggle", idx, err)
	} else {
		s.log.Debug("item toggled", zap.Int("index", idx))
	}
	s.refresh()
}

func (s *Synchronizer) ClickDelete(r Record) {
	idx := s.ResolveIndex(r)
	if err := s.store.Delete(idx); err != nil {
		s.absorb("delete", idx, err)
	} else {
		s.log.Debug("item deleted", zap.Int("index", idx), zap.Int("len", s.store.Len()))
	}
	s.refresh()
}

// ClickEdit opens the edit box on the record. The store is untouched and
// nothing is re-rendered from it.
func (s *Synchronizer) ClickEdit(r Record) {
	idx := s.ResolveIndex(r)
	for i := range s.current {
		if s.current[i].StoreIndex == idx {
			s.current[i].Editing = true
			s.publish()
			return
		}
	}
	s.log.Warn("edit on a record that is not rendered", zap.Int("index", idx))
}

// SubmitEdit renames the item behind r. Empty text keeps the old name.
// Either way every edit box closes on the re-render.
func (s *Synchronizer) SubmitEdit(r Record, text string) {
	idx := s.ResolveIndex(r)
	if err := s.store.Rename(idx, text); err != nil {
		s.absorb("rename", idx, err)
	} else {
		s.log.Debug("item renamed", zap.Int("index", idx), zap.String("name", text))
	}
	s.refresh()
}

// SearchInput sets the active query and renders its results. The query
// stays active across later mutations until it is cleared.
func (s *Synchronizer) SearchInput(query string) {
	s.query = query
	s.refresh()
}

// HideChecked shows or hides records already checked in the current
// rendering. It filters the presentation only, never the store.
func (s *Synchronizer) HideChecked(on bool) {
	s.hideChecked = on
	for i := range s.current {
		s.current[i].Hidden = on && s.current[i].Checked
	}
	s.publish()
}

// ---- state ----

// Current returns a copy of the last rendering.
func (s *Synchronizer) Current() []Record {
	out := make([]Record, len(s.current))
	copy(out, s.current)
	return out
}

func (s *Synchronizer) Query() string       { return s.query }
func (s *Synchronizer) HidingChecked() bool { return s.hideChecked }
func (s *Synchronizer) Store() *store.Store { return s.store }

// Editing reports whether the record for a store index has its edit box open.
func (s *Synchronizer) Editing(index int) bool {
	for _, r := range s.current {
		if r.StoreIndex == index {
			return r.Editing
		}
	}
	return false
}

func (s *Synchronizer) refresh() {
	if s.query == "" {
		s.RenderAll()
		return
	}
	s.RenderFiltered(s.Search(s.query))
}

func (s *Synchronizer) publish() {
	if s.sink != nil {
		s.sink.Replace(s.Current())
	}
}

func (s *Synchronizer) absorb(op string, index int, err error) {
	if errors.Is(err, store.ErrEmptyName) {
		s.log.Debug("empty name ignored", zap.String("op", op), zap.Int("index", index))
		return
	}
	s.log.Warn("mutation rejected",
		zap.String("op", op),
		zap.Int("index", index),
		zap.Int("len", s.store.Len()),
		zap.Error(err),
	)
}
