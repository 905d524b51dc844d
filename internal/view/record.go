package view

import (
	"strings"

	"github.com/idilsaglam/shopping/internal/model"
)

// Record is one display-ready row. StoreIndex is the only address a
// mutation may use; the row's position in a rendered slice is not.
type Record struct {
	StoreIndex  int
	DisplayName string
	Checked     bool
	Editing     bool // name input and submit control are shown
	Hidden      bool // suppressed by the hide-checked toggle
}

// Sink receives a complete rendering and replaces whatever it showed before.
type Sink interface {
	Replace(records []Record)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(records []Record)

func (f SinkFunc) Replace(records []Record) { f(records) }

func recordOf(e model.Entry) Record {
	return Record{
		StoreIndex:  e.Index,
		DisplayName: strings.ToLower(e.Item.Name),
		Checked:     e.Item.Checked,
	}
}

// Visible drops records hidden by the hide-checked toggle.
func Visible(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}
