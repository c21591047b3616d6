package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/importer"
	"github.com/orgai-dev/orgai/internal/storage"
)

func newImportCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import accounts from CSV files",
		Long: `Import accounts from CSV files. With no arguments every CSV in <data_dir>/import/
is imported and moved to import/processed/ afterwards. Named files are imported in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			files, fromInbox, err := a.importFiles(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, "Nothing to import")
				return nil
			}

			ctx := cmd.Context()
			return a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
				for _, f := range files {
					res, err := importer.ImportFile(ctx, svc, parser, f)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s (%s): %d created, %d skipped\n",
						f.Name, humanize.Bytes(uint64(f.Size)), len(res.Created), len(res.Skipped))
					for _, skip := range res.Skipped {
						fmt.Fprintf(out, "  row %d %q: %v\n", skip.Row, skip.Name, skip.Err)
					}
					if fromInbox {
						if err := importer.MarkProcessed(a.cfg.DataDir, f.Name); err != nil {
							return err
						}
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "orgai", "input format (orgai, chase)")

	return cmd
}

// importFiles resolves the files to import and whether they came from the import inbox.
func (a *app) importFiles(args []string) ([]importer.FileInfo, bool, error) {
	if len(args) == 0 {
		files, err := importer.Scan(a.cfg.DataDir)
		return files, true, err
	}

	files := make([]importer.FileInfo, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, false, fmt.Errorf("import file: %w", err)
		}
		files = append(files, importer.FileInfo{Name: filepath.Base(arg), Path: arg, Size: info.Size()})
	}
	return files, false, nil
}
