package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/activitylog"
	"github.com/orgai-dev/orgai/internal/config"
	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/model"
	"github.com/orgai-dev/orgai/internal/networth"
)

// Options controls rendering.
type Options struct {
	Palette Palette
	Compact bool // abbreviate amounts as $1.5M
}

// Renderer writes styled tables.
type Renderer struct {
	opts    Options
	title   lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	gain    lipgloss.Style
	loss    lipgloss.Style
	neutral lipgloss.Style
}

// New returns a Renderer. A zero Palette falls back to the system theme.
func New(opts Options) *Renderer {
	if opts.Palette.Primary == nil {
		opts.Palette = PaletteFor(config.ThemeSystem)
	}
	p := opts.Palette
	return &Renderer{
		opts:    opts,
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		header:  lipgloss.NewStyle().Bold(true).Foreground(p.Secondary),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		gain:    lipgloss.NewStyle().Foreground(p.Success),
		loss:    lipgloss.NewStyle().Foreground(p.Error),
		neutral: lipgloss.NewStyle(),
	}
}

func (r *Renderer) money(d decimal.Decimal) string {
	if r.opts.Compact {
		return currency.FormatCompact(d)
	}
	return currency.Format(d)
}

// signed colors an amount by sign.
func (r *Renderer) signed(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return r.gain.Render(r.money(d))
	case d.IsNegative():
		return r.loss.Render(r.money(d))
	default:
		return r.neutral.Render(r.money(d))
	}
}

// table returns a borderless table whose columns are sized by visible width, so styled
// and plain cells line up.
func (r *Renderer) table(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().PaddingRight(2)
	header := r.header.PaddingRight(2)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	if len(headers) > 0 {
		t.Headers(headers...)
	}
	return t
}

func writeTable(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// Summary prints the headline figures followed by the per-category breakdown.
func (r *Renderer) Summary(w io.Writer, s networth.Summary) error {
	if _, err := fmt.Fprintln(w, r.title.Render(fmt.Sprintf("Net worth across %d accounts", s.AccountCount))); err != nil {
		return err
	}

	headline := r.table().Rows(
		[]string{"Net Worth", r.signed(s.NetWorth)},
		[]string{"Total Assets", r.gain.Render(r.money(s.TotalAssets))},
		[]string{"Total Liabilities", r.loss.Render(r.money(s.TotalLiabilities))},
		[]string{"Personal", r.signed(s.PersonalTotal)},
		[]string{"Business", r.signed(s.BusinessTotal)},
		[]string{"Cash", r.signed(s.CashTotal)},
		[]string{"Other Assets", r.gain.Render(r.money(s.AssetHoldingsTotal))},
		[]string{"Other Liabilities", r.loss.Render(r.money(s.LiabilityHoldingsTotal))},
	)
	if err := writeTable(w, headline); err != nil {
		return err
	}
	if len(s.Breakdown) == 0 {
		return nil
	}

	breakdown := r.table("Type", "Category", "Accounts", "Total")
	for _, line := range s.Breakdown {
		style := lipgloss.NewStyle().Foreground(r.opts.Palette.Color(line.Category.Color()))
		breakdown.Row(string(line.Type), style.Render(line.Category.DisplayName()),
			strconv.Itoa(line.Count), r.money(line.Total))
	}
	fmt.Fprintln(w)
	return writeTable(w, breakdown)
}

// Accounts prints one row per account. Credit cards show their available credit.
func (r *Renderer) Accounts(w io.Writer, accounts []model.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, r.muted.Render("No accounts yet. Add one with 'orgai account add'."))
		return err
	}

	t := r.table("ID", "Name", "Type", "Category", "Balance", "Available")
	for _, a := range accounts {
		available := ""
		if a.EffectiveCategory() == model.CategoryCreditCard && !a.CreditLimit.IsZero() {
			available = r.money(networth.AvailableCredit(a))
		}
		typeStyle := lipgloss.NewStyle().Foreground(r.opts.Palette.Color(a.Type.Color()))
		t.Row(r.muted.Render(a.ID), a.Name, typeStyle.Render(string(a.Type)),
			string(a.EffectiveCategory()), r.signed(a.Balance), available)
	}
	return writeTable(w, t)
}

// Transactions prints transactions with a footer of income, expenses and net.
func (r *Renderer) Transactions(w io.Writer, txns []model.Transaction, income, expenses, net decimal.Decimal) error {
	if len(txns) == 0 {
		_, err := fmt.Fprintln(w, r.muted.Render("No transactions."))
		return err
	}

	t := r.table("Date", "Title", "Type", "Amount", "ID")
	for _, txn := range txns {
		amount := r.money(txn.Amount)
		switch txn.Type {
		case model.TransactionIncome:
			amount = r.gain.Render("+" + amount)
		case model.TransactionExpense:
			amount = r.loss.Render("-" + amount)
		}
		title := txn.Title
		if txn.Subtitle != "" {
			title += " " + r.muted.Render("("+txn.Subtitle+")")
		}
		t.Row(txn.Date.Format("2006-01-02"), title, string(txn.Type), amount, r.muted.Render(txn.ID))
	}
	if err := writeTable(w, t); err != nil {
		return err
	}

	footer := r.table().Rows(
		[]string{"Income", r.gain.Render(r.money(income))},
		[]string{"Expenses", r.loss.Render(r.money(expenses))},
		[]string{"Net", r.signed(net)},
	)
	fmt.Fprintln(w)
	return writeTable(w, footer)
}

// Activity prints log entries newest first with relative times.
func (r *Renderer) Activity(w io.Writer, entries []activitylog.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, r.muted.Render("No activity yet"))
		return err
	}

	t := r.table("When", "Action", "Account", "Details")
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		t.Row(r.muted.Render(humanize.Time(e.Timestamp)), e.Action, e.AccountName, e.Details)
	}
	return writeTable(w, t)
}
