package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/config"
	"github.com/orgai-dev/orgai/internal/storage"
)

func newInitCommand(a *app) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the data directory, database and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInit(cmd.Context(), cmd, sample)
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "load the demo portfolio into an empty database")

	return cmd
}

func (a *app) runInit(ctx context.Context, cmd *cobra.Command, sample bool) error {
	dirs := []string{
		a.cfg.DataDir,
		filepath.Join(a.cfg.DataDir, "import"),
		filepath.Join(a.cfg.DataDir, "import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Existing settings are left alone so init can be re-run.
	if _, err := os.Stat(a.cfg.SettingsPath()); os.IsNotExist(err) {
		if err := config.SaveSettings(a.cfg.SettingsPath(), config.DefaultSettings()); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	err := a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
		if !sample {
			return nil
		}
		existing, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			fmt.Fprintf(out, "Database already has %d accounts; sample data not loaded\n", len(existing))
			return nil
		}
		for _, acct := range accounts.SampleAccounts() {
			if _, err := svc.Create(ctx, accounts.InputFromAccount(acct)); err != nil {
				return fmt.Errorf("loading sample account %s: %w", acct.Name, err)
			}
		}
		fmt.Fprintf(out, "Loaded %d sample accounts\n", len(accounts.SampleAccounts()))
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Initialized orgai at %s\n", a.cfg.DataDir)
	return nil
}
