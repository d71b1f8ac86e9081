package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/reclist"
)

// App carries the state shared by all commands.
type App struct {
	ConfigPath string
	PrettyJSON bool
	LogLevel   string
	LogFormat  string

	Config Config
	Logger *reclist.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "reclist",
		Short:        "Sort, filter, page and select records from JSON files",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # First page of a file, ordered by name
  reclist view -f items.json --order name

  # Case-insensitive text search with highlighting
  reclist view -f items.jsonl.zst --filter "name like uni" --page-size 5

  # Numeric range over several files
  reclist view -f a.json -f b.json.gz --filter "price between 10,20" --order price:desc
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(app.ConfigPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = app.LogLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = app.LogFormat
		}
		logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		app.Config = cfg
		app.Logger = logger
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config file (default $HOME/.config/reclist/config.{toml,yaml})")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFormat, "log-format", "text", "Log format (text|json)")

	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), app.Config, app.PrettyJSON)
		},
	}
}
