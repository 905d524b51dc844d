package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/shopping/internal/view"
)

// PanelSink collects the latest rendering for printing as a panel.
type PanelSink struct {
	Records []view.Record
}

func (p *PanelSink) Replace(records []view.Record) { p.Records = records }

// Header shows live counts for a store.
func Header(checked, pending int) string {
	t := Current()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Shopping"),
		t.Success.Render(t.SymDone), checked,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), checked+pending,
	)
}

// Line renders one record; the leading number is its store index.
func Line(r view.Record, width int) string {
	t := Current()
	box := t.Muted.Render(t.BoxUnchecked)
	name := Truncate(r.DisplayName, width)
	if r.Checked {
		box = t.Success.Render(t.BoxChecked)
		name = t.Done.Render(name)
	}
	return fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", r.StoreIndex)), box, name)
}

// Lines renders the visible records, one per line.
func Lines(records []view.Record, width int) []string {
	visible := view.Visible(records)
	if len(visible) == 0 {
		return []string{Current().Muted.Render("no items")}
	}
	out := make([]string, 0, len(visible))
	for _, r := range visible {
		out = append(out, Line(r, width))
	}
	return out
}

// GroupLines splits the visible records into pending and checked sections.
func GroupLines(records []view.Record, width int) []string {
	var pend, done []view.Record
	for _, r := range view.Visible(records) {
		if r.Checked {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	t := Current()
	var lines []string
	section := func(title string, rs []view.Record) {
		lines = append(lines, t.Accent.Render(title))
		if len(rs) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			return
		}
		for _, r := range rs {
			lines = append(lines, Line(r, width))
		}
	}
	section("Pending", pend)
	lines = append(lines, "")
	section("Checked", done)
	return lines
}

// Checklist writes the visible records as a markdown task list.
func Checklist(records []view.Record) string {
	var b strings.Builder
	b.WriteString("# Shopping list\n\n")
	visible := view.Visible(records)
	if len(visible) == 0 {
		b.WriteString("_no items_\n")
		return b.String()
	}
	for _, r := range visible {
		mark := " "
		if r.Checked {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, r.DisplayName)
	}
	return b.String()
}
