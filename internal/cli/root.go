package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/shopping/internal/config"
	"github.com/idilsaglam/shopping/internal/logging"
	"github.com/idilsaglam/shopping/internal/store"
	"github.com/idilsaglam/shopping/internal/tui"
	"github.com/idilsaglam/shopping/internal/ui"
	"github.com/idilsaglam/shopping/internal/view"
)

var version = "0.1.0"

// App holds root flags and what PersistentPreRunE builds from them.
type App struct {
	ConfigPath string
	Theme      string
	LogFile    string
	Debug      bool
	NoColor    bool

	cfg *config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "shopping",
		Short:         "A tiny shopping list (TUI + one-shot listing)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  shopping

  # Print the list once
  shopping ls
  shopping ls --query an
  shopping ls --where '!checked && name startsWith "b"'
`),
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/shopping/config.yaml)")
	f.StringVar(&app.Theme, "theme", "", "colour theme: classic, neon or mono")
	f.StringVar(&app.LogFile, "log-file", "", "write logs to this file")
	f.BoolVar(&app.Debug, "debug", false, "log at debug level")
	f.BoolVar(&app.NoColor, "no-color", false, "disable colour output")

	cmd.AddCommand(newListCmd(app), newConfigCmd(app), newVersionCmd())
	return cmd
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.Theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.LogFile
	}
	if flags.Changed("debug") {
		cfg.Debug = a.Debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ui.SetTheme(cfg.Theme)
	if a.NoColor {
		ui.DisableColor()
	}

	log, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// newSynchronizer seeds a fresh store. Nothing survives between runs.
func (a *App) newSynchronizer(sink view.Sink, hideChecked bool) *view.Synchronizer {
	st := store.New(store.DefaultSeed()...)
	return view.New(st, sink,
		view.WithLogger(a.log),
		view.WithHideChecked(hideChecked),
	)
}

func (a *App) runTUI() error {
	sink := tui.NewSink()
	sync := a.newSynchronizer(sink, a.cfg.HideChecked)
	a.log.Info("starting interactive list", zap.Int("items", sync.Store().Len()))
	return tui.Run(sync, sink, tui.Options{NameWidth: a.cfg.NameWidth})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "shopping "+version)
		},
	}
}
