package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shopping/internal/ui"
	"github.com/idilsaglam/shopping/internal/view"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeSearch
)

// Sink is the render sink behind the list. It is shared by pointer
// because Bubble Tea copies the model on every Update.
type Sink struct {
	records []view.Record
	dirty   bool
}

func (s *Sink) Replace(records []view.Record) {
	s.records = records
	s.dirty = true
}

// Options tune the interactive list.
type Options struct {
	NameWidth int
}

// Model is the Bubble Tea model for the interactive list.
type Model struct {
	sync *view.Synchronizer
	sink *Sink
	keys keyMap
	opt  Options

	list list.Model
	ti   textinput.Model // shared by add, edit and search
	mode mode

	editRec view.Record // record whose edit box is focused
	status  string

	width, height int
}

// New wires a model to the synchronizer and renders the full store.
// The synchronizer must render into sink, as returned by NewSink.
func New(sync *view.Synchronizer, sink *Sink, opt Options) Model {
	keys := defaultKeyMap()

	l := list.New(nil, itemDelegate{width: opt.NameWidth}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.PrevPage.SetKeys("left", "pgup")
	l.KeyMap.NextPage.SetKeys("right", "pgdown")
	l.AdditionalShortHelpKeys = keys.help
	l.AdditionalFullHelpKeys = keys.help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		sync: sync,
		sink: sink,
		keys: keys,
		opt:  opt,
		list: l,
		ti:   ti,
	}
	sync.RenderAll()
	m.syncList()
	return m
}

// NewSink returns the sink a Synchronizer should render into.
func NewSink() *Sink { return &Sink{} }

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(sync *view.Synchronizer, sink *Sink, opt Options) error {
	p := tea.NewProgram(New(sync, sink, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles one message, then fits the list to whatever the
// footer needs now.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.resize()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	km, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(km, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeEdit:
		return m.updateEdit(msg)
	case modeSearch:
		return m.updateSearch(msg)
	}

	if !isKey {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.status = ""
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Toggle):
		if rec, ok := m.selected(); ok {
			m.sync.ClickToggle(rec)
		}

	case key.Matches(km, m.keys.Delete):
		if rec, ok := m.selected(); ok {
			m.sync.ClickDelete(rec)
		}

	case key.Matches(km, m.keys.Edit):
		if rec, ok := m.selected(); ok {
			m.sync.ClickEdit(rec)
			m.editRec = rec
			m.mode = modeEdit
			m.ti.SetValue("")
			m.ti.Placeholder = "edit item name"
			m.syncList()
			return m, m.ti.Focus()
		}

	case key.Matches(km, m.keys.Add):
		m.mode = modeAdd
		m.ti.SetValue("")
		m.ti.Placeholder = "New item name..."
		return m, m.ti.Focus()

	case key.Matches(km, m.keys.Search):
		m.mode = modeSearch
		m.ti.SetValue(m.sync.Query())
		m.ti.Placeholder = "search"
		m.ti.CursorEnd()
		return m, m.ti.Focus()

	case key.Matches(km, m.keys.Hide):
		m.sync.HideChecked(!m.sync.HidingChecked())

	case key.Matches(km, m.keys.Copy):
		m.copyPending()

	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.syncList()
	return m, nil
}

func (m Model) updateAdd(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			m.sync.SubmitNew(m.ti.Value())
			m.leaveInput()
			m.syncList()
			if n := len(m.list.Items()); n > 0 {
				m.list.Select(n - 1)
			}
			return m, nil
		case "esc":
			m.leaveInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// updateEdit has no cancel: the only way out is submit, and an empty
// submit keeps the old name.
func (m Model) updateEdit(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		m.sync.SubmitEdit(m.editRec, m.ti.Value())
		m.leaveInput()
		m.syncList()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// updateSearch re-renders on every keystroke. Enter keeps the query,
// esc clears it.
func (m Model) updateSearch(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			m.leaveInput()
			return m, nil
		case "esc":
			m.sync.SearchInput("")
			m.leaveInput()
			m.syncList()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if m.ti.Value() != m.sync.Query() {
		m.sync.SearchInput(m.ti.Value())
		m.syncList()
	}
	return m, cmd
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) selected() (view.Record, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return view.Record{}, false
	}
	return it.rec, true
}

// syncList copies the latest rendering into the list widget.
func (m *Model) syncList() {
	checked, pending := m.sync.Store().Stats()
	m.list.Title = ui.Header(checked, pending)
	if !m.sink.dirty {
		return
	}
	m.sink.dirty = false

	visible := view.Visible(m.sink.records)
	items := make([]list.Item, 0, len(visible))
	for _, r := range visible {
		items = append(items, listItem{rec: r})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) copyPending() {
	var b strings.Builder
	n := 0
	for _, r := range view.Visible(m.sink.records) {
		if r.Checked {
			continue
		}
		fmt.Fprintf(&b, "- [ ] %s\n", r.DisplayName)
		n++
	}
	if n == 0 {
		m.status = "nothing to copy"
		return
	}
	if err := writeClipboard(b.String()); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %d items", n)
}

// resize gives the list every row the panel frame and footer leave free.
func (m *Model) resize() {
	h := m.height - panelFrameHeight()
	if f := m.footer(); f != "" {
		h -= lipgloss.Height(f)
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 1 {
		w = 1
	}
	m.list.SetSize(w, h)
}

// panelFrameHeight is the number of rows ui.Panel adds around its content.
func panelFrameHeight() int {
	return lipgloss.Height(ui.Panel([]string{""})) - 1
}

// footer is everything drawn below the list: search hint, status line
// and the input box.
func (m Model) footer() string {
	var parts []string
	if q := m.sync.Query(); q != "" && m.mode != modeSearch {
		parts = append(parts, ui.Current().Muted.Render("search: "+q+"  (/ to change)"))
	}
	if m.status != "" {
		parts = append(parts, ui.Current().Accent.Render(m.status))
	}
	if m.mode != modeList {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ui.Current().BorderColor).Padding(0, 1)
		title := "Add new item"
		switch m.mode {
		case modeEdit:
			title = "Edit " + m.editRec.DisplayName
		case modeSearch:
			title = "Search"
		}
		parts = append(parts, bar.Render(title+"\n"+m.ti.View()))
	}
	return strings.Join(parts, "\n")
}

func (m Model) View() string {
	content := m.list.View()
	if f := m.footer(); f != "" {
		content += "\n" + f
	}
	return ui.Panel([]string{content})
}
