package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a recorded transaction.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a manually recorded money movement. Transactions are not linked to
// accounts.
type Transaction struct {
	ID       string
	Title    string
	Subtitle string
	Amount   decimal.Decimal // always entered as a magnitude; Type carries direction
	Type     TransactionType
	Icon     string
	Date     time.Time
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionExpense
}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}
	return false
}

// DefaultIcon returns the icon used for quick-entry transactions of this type.
func (t TransactionType) DefaultIcon() string {
	switch t {
	case TransactionIncome:
		return "arrow.down.circle.fill"
	case TransactionExpense:
		return "arrow.up.circle.fill"
	case TransactionTransfer:
		return "arrow.left.arrow.right.circle.fill"
	default:
		return ""
	}
}
