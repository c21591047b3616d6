package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/transactions"
)

const dateLayout = "2006-01-02"

func newTxCommand(a *app) *cobra.Command {
	txCmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Record income and expenses",
	}
	txCmd.AddCommand(newTxAddCommand(a))
	txCmd.AddCommand(newTxListCommand(a))
	txCmd.AddCommand(newTxRemoveCommand(a))
	return txCmd
}

func newTxAddCommand(a *app) *cobra.Command {
	var in transactions.Input
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date != "" {
				d, err := time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
				}
				in.Date = d
			}
			t, err := transactions.New(in, time.Now())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.InsertTransaction(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s %s [%s]\n", t.Type, t.Title, currency.Format(t.Amount), t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "what the transaction was")
	cmd.Flags().StringVar(&in.Subtitle, "subtitle", "", "optional detail line")
	cmd.Flags().StringVar(&in.Amount, "amount", "", "amount as a positive number")
	cmd.Flags().StringVar(&in.Type, "type", "expense", "income, expense or transfer")
	cmd.Flags().StringVar(&in.Icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: now)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTxListCommand(a *app) *cobra.Command {
	var filter string
	var compact bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.renderer(compact)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txns, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}
			shown := transactions.Filter(txns, transactions.ParseKind(filter))
			return r.Transactions(cmd.OutOrStdout(), shown,
				transactions.Income(txns), transactions.Expenses(txns), transactions.Net(txns))
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "all, income or expense")
	cmd.Flags().BoolVar(&compact, "compact", false, "abbreviate amounts")

	return cmd
}

func newTxRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", args[0])
			return nil
		},
	}
}
