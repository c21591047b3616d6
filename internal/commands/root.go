// Package commands implements the orgai command line.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/activitylog"
	"github.com/orgai-dev/orgai/internal/buildinfo"
	"github.com/orgai-dev/orgai/internal/config"
	"github.com/orgai-dev/orgai/internal/logging"
	"github.com/orgai-dev/orgai/internal/render"
	"github.com/orgai-dev/orgai/internal/storage"
)

// app is the state shared by every subcommand once the root pre-run has loaded
// configuration.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:     "orgai",
		Short:   "Track accounts and net worth across personal, business and cash holdings",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/orgai/config.yaml)")
	flags.String("data-dir", "", "data directory (default: $HOME/.orgai)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	_ = a.v.BindPFlag("data_dir", flags.Lookup("data-dir"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newAccountCommand(a))
	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newImportCommand(a))
	rootCmd.AddCommand(newExportCommand(a))
	rootCmd.AddCommand(newTxCommand(a))
	rootCmd.AddCommand(newLogCommand(a))
	rootCmd.AddCommand(newSettingsCommand(a))
	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) load(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	logger.Debug("configuration loaded", "data_dir", cfg.DataDir, "database", cfg.Database)
	return nil
}

// openStore opens (and migrates) the database, creating its directory if needed.
func (a *app) openStore(ctx context.Context) (*storage.SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(a.cfg.Database), 0o755); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}
	return storage.Open(ctx, a.cfg.Database)
}

// withService runs fn against an account service backed by the configured database,
// recording changes in the activity log.
func (a *app) withService(ctx context.Context, fn func(*accounts.Service, *storage.SQLiteStorage) error) error {
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := accounts.NewService(store, activitylog.New(a.cfg.DataDir), a.logger)
	return fn(svc, store)
}

func (a *app) settings() (*config.Settings, error) {
	return config.LoadSettings(a.cfg.SettingsPath())
}

// renderer builds a Renderer themed by the saved settings.
func (a *app) renderer(compact bool) (*render.Renderer, error) {
	s, err := a.settings()
	if err != nil {
		return nil, err
	}
	return render.New(render.Options{
		Palette: render.PaletteFor(s.Theme),
		Compact: compact || a.cfg.Display.Compact,
	}), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "orgai", buildinfo.String())
		},
	}
}
