package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

const accountColumns = `id, name, type, category, balance, credit_limit, icon, created_at, updated_at`

// ListAccounts returns every account, newest first.
func (s *SQLiteStorage) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount returns the account with id, or ErrNotFound.
func (s *SQLiteStorage) GetAccount(ctx context.Context, id string) (model.Account, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	return a, err
}

// InsertAccount stores a new account.
func (s *SQLiteStorage) InsertAccount(ctx context.Context, a model.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, string(a.Type), string(a.Category),
		a.Balance.String(), a.CreditLimit.String(), a.Icon,
		toNanos(a.CreatedAt), toNanos(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting account %s: %w", a.ID, err)
	}
	return nil
}

// UpdateAccount overwrites every column but id and created_at.
func (s *SQLiteStorage) UpdateAccount(ctx context.Context, a model.Account) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET name = ?, type = ?, category = ?, balance = ?, credit_limit = ?, icon = ?, updated_at = ?
		WHERE id = ?`,
		a.Name, string(a.Type), string(a.Category),
		a.Balance.String(), a.CreditLimit.String(), a.Icon,
		toNanos(a.UpdatedAt), a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account %s: %w", a.ID, err)
	}
	return checkAffected(res, "account", a.ID)
}

// DeleteAccount removes the account with id.
func (s *SQLiteStorage) DeleteAccount(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting account %s: %w", id, err)
	}
	return checkAffected(res, "account", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(sc scanner) (model.Account, error) {
	var (
		a                    model.Account
		typ, category        string
		balance, creditLimit string
		created, updated     int64
	)
	if err := sc.Scan(&a.ID, &a.Name, &typ, &category, &balance, &creditLimit, &a.Icon, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, err
		}
		return model.Account{}, fmt.Errorf("scanning account: %w", err)
	}

	var err error
	if a.Balance, err = decimal.NewFromString(balance); err != nil {
		return model.Account{}, fmt.Errorf("account %s: parsing balance %q: %w", a.ID, balance, err)
	}
	if a.CreditLimit, err = decimal.NewFromString(creditLimit); err != nil {
		return model.Account{}, fmt.Errorf("account %s: parsing credit limit %q: %w", a.ID, creditLimit, err)
	}
	a.Type = model.AccountType(typ)
	a.Category = model.Category(category)
	a.CreatedAt = fromNanos(created)
	a.UpdatedAt = fromNanos(updated)
	return a, nil
}
