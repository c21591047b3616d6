package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

// InsertTransaction stores a transaction. Transactions are not linked to accounts.
func (s *SQLiteStorage) InsertTransaction(ctx context.Context, t model.Transaction) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, title, subtitle, amount, type, icon, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Subtitle, t.Amount.String(), string(t.Type), t.Icon, toNanos(t.Date),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction %s: %w", t.ID, err)
	}
	return nil
}

// ListTransactions returns every transaction, most recent date first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, subtitle, amount, type, icon, date
		FROM transactions
		ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var (
			t      model.Transaction
			amount string
			typ    string
			date   int64
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Subtitle, &amount, &typ, &t.Icon, &date); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("transaction %s: parsing amount %q: %w", t.ID, amount, err)
		}
		t.Type = model.TransactionType(typ)
		t.Date = fromNanos(date)
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return txns, nil
}

// DeleteTransaction removes the transaction with id.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction %s: %w", id, err)
	}
	return checkAffected(res, "transaction", id)
}
