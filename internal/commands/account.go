package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/model"
	"github.com/orgai-dev/orgai/internal/storage"
)

func newAccountCommand(a *app) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"accounts"},
		Short:   "Manage accounts",
	}
	accountCmd.AddCommand(newAccountAddCommand(a))
	accountCmd.AddCommand(newAccountEditCommand(a))
	accountCmd.AddCommand(newAccountRemoveCommand(a))
	accountCmd.AddCommand(newAccountListCommand(a))
	return accountCmd
}

// accountFlags registers the editable account fields on cmd.
func accountFlags(cmd *cobra.Command, in *accounts.AccountInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "account name")
	cmd.Flags().StringVar(&in.Balance, "balance", "", "current balance, e.g. 1500.25 or -3,258.74")
	cmd.Flags().StringVar(&in.Type, "type", "", "account type: "+joinTypes())
	cmd.Flags().StringVar(&in.Category, "category", "", "category: "+joinCategories())
	cmd.Flags().StringVar(&in.Icon, "icon", "", "icon name (default: the category's icon)")
	cmd.Flags().StringVar(&in.CreditLimit, "credit-limit", "", "credit limit for credit cards")
}

func joinTypes() string {
	var names []string
	for _, t := range model.AccountTypes() {
		names = append(names, strings.ToLower(string(t)))
	}
	return strings.Join(names, ", ")
}

func joinCategories() string {
	var names []string
	for _, c := range model.Categories() {
		names = append(names, fmt.Sprintf("%q", string(c)))
	}
	return strings.Join(names, ", ")
}

func newAccountAddCommand(a *app) *cobra.Command {
	var in accounts.AccountInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
				acct, err := svc.Create(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s) %s [%s]\n",
					acct.Name, acct.Type, acct.EffectiveCategory(), currency.Format(acct.Balance), acct.ID)
				return nil
			})
		},
	}

	accountFlags(cmd, &in)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newAccountEditCommand(a *app) *cobra.Command {
	var in accounts.AccountInput

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an account; omitted flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
				current, err := svc.Get(ctx, args[0])
				if err != nil {
					return err
				}

				merged := accounts.InputFromAccount(current)
				flags := cmd.Flags()
				if flags.Changed("name") {
					merged.Name = in.Name
				}
				if flags.Changed("balance") {
					merged.Balance = in.Balance
				}
				if flags.Changed("type") {
					merged.Type = in.Type
				}
				if flags.Changed("category") {
					merged.Category = in.Category
					// A new category brings its own default icon unless one is given.
					merged.Icon = ""
				}
				if flags.Changed("icon") {
					merged.Icon = in.Icon
				}
				if flags.Changed("credit-limit") {
					merged.CreditLimit = in.CreditLimit
				}

				acct, err := svc.Update(ctx, current.ID, merged)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", acct.Name, currency.Format(acct.Balance))
				return nil
			})
		},
	}

	accountFlags(cmd, &in)

	return cmd
}

func newAccountRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
				acct, err := svc.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if err := svc.Delete(ctx, acct.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", acct.Name)
				return nil
			})
		},
	}
}

func newAccountListCommand(a *app) *cobra.Command {
	var typeFilter string
	var compact bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List accounts, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var only model.AccountType
			if typeFilter != "" {
				t, ok := model.ParseAccountType(typeFilter)
				if !ok {
					return fmt.Errorf("%w: %q", accounts.ErrUnknownType, typeFilter)
				}
				only = t
			}

			r, err := a.renderer(compact)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
				accts, err := svc.List(ctx)
				if err != nil {
					return err
				}
				if only != "" {
					var filtered []model.Account
					for _, acct := range accts {
						if acct.Type == only {
							filtered = append(filtered, acct)
						}
					}
					accts = filtered
				}
				return r.Accounts(cmd.OutOrStdout(), accts)
			})
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "only show accounts of this type")
	cmd.Flags().BoolVar(&compact, "compact", false, "abbreviate amounts")

	return cmd
}

func newSummaryCommand(a *app) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show net worth, totals and the per-category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.renderer(compact)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return a.withService(ctx, func(svc *accounts.Service, _ *storage.SQLiteStorage) error {
				s, err := svc.Summary(ctx)
				if err != nil {
					return err
				}
				return r.Summary(cmd.OutOrStdout(), s)
			})
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "abbreviate amounts as $1.5M")

	return cmd
}
