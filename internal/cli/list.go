package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shopping/internal/query"
	"github.com/idilsaglam/shopping/internal/ui"
	"github.com/idilsaglam/shopping/internal/view"
)

type listOptions struct {
	search      string
	where       string
	hideChecked bool
	group       bool
	markdown    bool
	json        bool
}

func newListCmd(app *App) *cobra.Command {
	opt := listOptions{}
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the list once",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runList(cmd, opt)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opt.search, "query", "q", "", "only items whose name contains this text (case-insensitive)")
	f.StringVarP(&opt.where, "where", "w", "", `only items matching an expression, e.g. 'checked' or 'name contains "an"'`)
	f.BoolVar(&opt.hideChecked, "hide-checked", false, "hide checked items")
	f.BoolVar(&opt.group, "group", false, "group output by pending/checked")
	f.BoolVar(&opt.markdown, "markdown", false, "print a markdown checklist")
	f.BoolVar(&opt.json, "json", false, "print the rendered records as JSON")
	return cmd
}

func (a *App) runList(cmd *cobra.Command, opt listOptions) error {
	if opt.search != "" && opt.where != "" {
		return fmt.Errorf("ls: use either --query or --where, not both")
	}

	sink := &ui.PanelSink{}
	sync := a.newSynchronizer(sink, opt.hideChecked || a.cfg.HideChecked)
	switch {
	case opt.search != "":
		sync.SearchInput(opt.search)
	case opt.where != "":
		q, err := query.Compile(opt.where)
		if err != nil {
			return err
		}
		entries, err := q.Select(sync.Store())
		if err != nil {
			return err
		}
		sync.RenderFiltered(entries)
	default:
		sync.RenderAll()
	}

	out := cmd.OutOrStdout()
	if opt.json {
		return writeJSON(out, view.Visible(sink.Records))
	}
	if opt.markdown {
		md, err := ui.RenderMarkdown(ui.Checklist(sink.Records), 80, !a.NoColor)
		if err != nil {
			return err
		}
		fmt.Fprint(out, md)
		return nil
	}

	checked, pending := sync.Store().Stats()
	lines := []string{
		ui.Header(checked, pending),
		ui.Current().Muted.Render(ui.ProgressBar(checked, checked+pending, 28)),
		"",
	}
	if opt.group {
		lines = append(lines, ui.GroupLines(sink.Records, a.cfg.NameWidth)...)
	} else {
		lines = append(lines, ui.Lines(sink.Records, a.cfg.NameWidth)...)
	}
	if n := len(view.Visible(sink.Records)); n != sync.Store().Len() {
		lines = append(lines, "", ui.Current().Muted.Render(fmt.Sprintf("showing %d of %d", n, sync.Store().Len())))
	}
	lines = append(lines, "", ui.Current().Muted.Render("Tip: run `shopping` for the interactive list"))
	fmt.Fprintln(out, ui.Panel(lines))
	return nil
}

type jsonRecord struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

func writeJSON(w io.Writer, records []view.Record) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		out = append(out, jsonRecord{Index: r.StoreIndex, Name: r.DisplayName, Checked: r.Checked})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
