package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/storage"
)

func newExportCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every account as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
				accts, err := svc.List(ctx)
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					return accounts.WriteAccounts(cmd.OutOrStdout(), accts)
				}

				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				if err := accounts.WriteAccounts(f, accts); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("closing %s: %w", output, err)
				}
				a.logger.Info("accounts exported", "path", output, "count", len(accts))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
