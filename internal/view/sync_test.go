package view

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/shopping/internal/model"
	"github.com/idilsaglam/shopping/internal/store"
)

// recordingSink keeps every rendering it was handed.
type recordingSink struct {
	renders [][]Record
}

func (r *recordingSink) Replace(records []Record) { r.renders = append(r.renders, records) }

func (r *recordingSink) last(t *testing.T) []Record {
	t.Helper()
	if len(r.renders) == 0 {
		t.Fatal("nothing rendered")
	}
	return r.renders[len(r.renders)-1]
}

func newSync(t *testing.T, items []model.Item, opts ...Option) (*Synchronizer, *recordingSink, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	sink := &recordingSink{}
	opts = append([]Option{WithLogger(zap.New(core))}, opts...)
	s := New(store.New(items...), sink, opts...)
	s.RenderAll()
	return s, sink, logs
}

func displayNames(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.DisplayName
	}
	return out
}

func TestRenderAll_IndicesAndCaseFolding(t *testing.T) {
	_, sink, _ := newSync(t, []model.Item{{Name: "Apples"}, {Name: "MILK", Checked: true}})
	got := sink.last(t)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].StoreIndex != 0 || got[0].DisplayName != "apples" || got[0].Checked {
		t.Errorf("unexpected first record %+v", got[0])
	}
	if got[1].StoreIndex != 1 || got[1].DisplayName != "milk" || !got[1].Checked {
		t.Errorf("unexpected second record %+v", got[1])
	}
}

func TestRenderAll_StoredNameKeepsCase(t *testing.T) {
	s, _, _ := newSync(t, []model.Item{{Name: "Apples"}})
	if it, _ := s.Store().Get(0); it.Name != "Apples" {
		t.Fatalf("render changed the stored name to %q", it.Name)
	}
}

func TestSearch_CaseInsensitiveWithStoreIndex(t *testing.T) {
	s, _, _ := newSync(t, []model.Item{{Name: "apples"}, {Name: "milk"}, {Name: "oranges"}})

	got := s.Search("k")
	if len(got) != 1 || got[0].Index != 1 || got[0].Item.Name != "milk" {
		t.Fatalf("expected [(1, milk)], got %+v", got)
	}

	got = s.Search("APP")
	if len(got) != 1 || got[0].Index != 0 {
		t.Fatalf("expected [(0, apples)], got %+v", got)
	}

	all := s.Search("")
	if len(all) != 3 {
		t.Fatalf("empty query: expected 3 entries, got %d", len(all))
	}
	for i, e := range all {
		if e.Index != i {
			t.Fatalf("empty query: entry %d carries index %d", i, e.Index)
		}
	}
}

func TestFilteredDelete_AddressesStoreItem(t *testing.T) {
	s, sink, _ := newSync(t, store.DefaultSeed())

	s.SearchInput("o")
	rendered := sink.last(t)
	if want := []string{"oranges"}; len(rendered) != 1 || rendered[0].DisplayName != want[0] {
		t.Fatalf("expected %v, got %v", want, displayNames(rendered))
	}

	s.SearchInput("e")
	rendered = sink.last(t)
	if len(rendered) != 4 {
		t.Fatalf("expected 4 matches, got %v", displayNames(rendered))
	}
	second := rendered[1] // oranges, store index 1
	if second.StoreIndex != 1 {
		t.Fatalf("expected oranges at store index 1, got %+v", second)
	}

	third := rendered[2] // bread, store index 3
	s.ClickDelete(third)

	all := s.Store().All()
	for _, it := range all {
		if it.Name == "bread" {
			t.Fatalf("bread should have been deleted, store is %+v", all)
		}
	}
	if all[2].Name != "milk" {
		t.Fatalf("milk must survive the filtered delete, store is %+v", all)
	}

	// The query survives the mutation.
	got := displayNames(sink.last(t))
	want := []string{"apples", "oranges", "butter"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSearchInput_EmptyQueryRendersAll(t *testing.T) {
	s, sink, _ := newSync(t, store.DefaultSeed())
	s.SearchInput("milk")
	if n := len(sink.last(t)); n != 1 {
		t.Fatalf("expected 1 record, got %d", n)
	}
	s.SearchInput("")
	if n := len(sink.last(t)); n != 5 {
		t.Fatalf("expected 5 records, got %d", n)
	}
}

func TestEditStateMachine(t *testing.T) {
	s, sink, logs := newSync(t, store.DefaultSeed())

	r := sink.last(t)[3]
	s.ClickEdit(r)
	if !s.Editing(3) {
		t.Fatal("expected record 3 to be editing")
	}
	if got := sink.last(t)[3]; !got.Editing {
		t.Fatalf("edit mode not rendered: %+v", got)
	}
	if s.Store().Len() != 5 {
		t.Fatal("edit click must not mutate the store")
	}

	// Empty submit: back to viewing with the old name.
	s.SubmitEdit(r, "")
	if s.Editing(3) {
		t.Fatal("expected edit mode closed after submit")
	}
	if it, _ := s.Store().Get(3); it.Name != "bread" {
		t.Fatalf("empty edit renamed the item to %q", it.Name)
	}
	if logs.FilterMessage("empty name ignored").Len() != 1 {
		t.Fatalf("expected the empty edit to be logged")
	}

	// Non-empty submit renames exactly that item.
	s.ClickEdit(r)
	s.SubmitEdit(r, "Sourdough")
	all := s.Store().All()
	want := []string{"apples", "oranges", "milk", "Sourdough", "butter"}
	for i := range want {
		if all[i].Name != want[i] {
			t.Fatalf("expected %v, got %+v", want, all)
		}
	}
	if got := sink.last(t)[3]; got.DisplayName != "sourdough" || got.Editing {
		t.Fatalf("unexpected record after rename: %+v", got)
	}
}

func TestEdit_SeveralOpenUntilMutation(t *testing.T) {
	s, sink, _ := newSync(t, store.DefaultSeed())
	recs := sink.last(t)
	s.ClickEdit(recs[0])
	s.ClickEdit(recs[1])
	if !s.Editing(0) || !s.Editing(1) {
		t.Fatal("expected two edit boxes open")
	}
	s.ClickToggle(recs[4])
	if s.Editing(0) || s.Editing(1) {
		t.Fatal("a mutation re-render must close every edit box")
	}
}

func TestStaleRecord_IsAbsorbed(t *testing.T) {
	s, sink, logs := newSync(t, []model.Item{{Name: "a"}, {Name: "b"}})
	stale := sink.last(t)[1]

	s.ClickDelete(stale)
	before := len(sink.renders)
	s.ClickDelete(stale) // double click before the view caught up
	s.ClickToggle(stale)
	s.SubmitEdit(stale, "x")

	if s.Store().Len() != 1 {
		t.Fatalf("expected 1 item left, got %d", s.Store().Len())
	}
	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 3 {
		t.Fatalf("expected 3 warnings, got %d", n)
	}
	if len(sink.renders) != before+3 {
		t.Fatalf("each absorbed failure still re-renders")
	}
}

func TestHideChecked(t *testing.T) {
	s, sink, _ := newSync(t, store.DefaultSeed())

	s.HideChecked(true)
	got := Visible(sink.last(t))
	if want := []string{"apples", "oranges", "bread"}; len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, displayNames(got))
	}
	if s.Store().Len() != 5 {
		t.Fatal("hide-checked must not touch the store")
	}

	// Checking another item hides it too on the re-render.
	s.ClickToggle(sink.last(t)[0])
	if n := len(Visible(sink.last(t))); n != 2 {
		t.Fatalf("expected 2 visible records, got %d", n)
	}

	s.HideChecked(false)
	if n := len(Visible(sink.last(t))); n != 5 {
		t.Fatalf("expected all 5 visible, got %d", n)
	}
}

func TestWithHideChecked_AppliesToFirstRender(t *testing.T) {
	_, sink, _ := newSync(t, store.DefaultSeed(), WithHideChecked(true))
	if n := len(Visible(sink.last(t))); n != 3 {
		t.Fatalf("expected 3 visible records, got %d", n)
	}
}

func TestEndToEnd(t *testing.T) {
	s, sink, _ := newSync(t, store.DefaultSeed())

	s.SubmitNew("eggs")
	all := s.Store().All()
	if len(all) != 6 || all[5] != (model.Item{Name: "eggs"}) {
		t.Fatalf("unexpected store after add: %+v", all)
	}

	s.ClickDelete(sink.last(t)[0])
	all = s.Store().All()
	if len(all) != 5 || all[0].Name != "oranges" {
		t.Fatalf("unexpected store after delete: %+v", all)
	}

	before := s.Store().All()
	s.ClickToggle(sink.last(t)[0])
	after := s.Store().All()
	if after[0].Checked == before[0].Checked {
		t.Fatal("item 0 did not flip")
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i] {
			t.Fatalf("item %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}

	rendered := sink.last(t)
	for i, r := range rendered {
		if r.StoreIndex != i {
			t.Fatalf("record %d carries index %d", i, r.StoreIndex)
		}
	}
}

func TestClickEdit_RecordNotRendered(t *testing.T) {
	s, sink, logs := newSync(t, store.DefaultSeed())
	s.SearchInput("milk")
	renders := len(sink.renders)

	s.ClickEdit(Record{StoreIndex: 0, DisplayName: "apples"})   // in the store, filtered out
	s.ClickEdit(Record{StoreIndex: 9, DisplayName: "vanished"}) // not in the store at all

	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 2 {
		t.Fatalf("expected 2 warnings, got %d", n)
	}
	if len(sink.renders) != renders {
		t.Fatalf("edit on an unrendered record must not publish")
	}
	if s.Editing(0) || s.Editing(2) {
		t.Fatal("no edit box should be open")
	}
	if s.Store().Len() != 5 {
		t.Fatal("store must be untouched")
	}
}
