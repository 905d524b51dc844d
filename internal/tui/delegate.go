package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shopping/internal/ui"
	"github.com/idilsaglam/shopping/internal/view"
)

// listItem adapts a display record to bubbles/list.Item
type listItem struct {
	rec view.Record
}

func (i listItem) FilterValue() string { return i.rec.DisplayName }

// itemDelegate draws one record per line.
type itemDelegate struct {
	width int
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	line := ui.Line(it.rec, d.width)
	if it.rec.Editing {
		line += " " + ui.Current().Accent.Render("✎")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+line)
}
