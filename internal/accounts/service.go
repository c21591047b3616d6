package accounts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orgai-dev/orgai/internal/model"
	"github.com/orgai-dev/orgai/internal/networth"
)

// Store persists accounts. Get, Update and Delete report a missing id with an error the
// caller can match against the store's not-found sentinel.
type Store interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetAccount(ctx context.Context, id string) (model.Account, error)
	InsertAccount(ctx context.Context, a model.Account) error
	UpdateAccount(ctx context.Context, a model.Account) error
	DeleteAccount(ctx context.Context, id string) error
}

// Action names an account lifecycle event.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Recorder receives lifecycle events after they are committed.
type Recorder interface {
	Record(action Action, account model.Account, details string) error
}

// Service validates account changes and applies them to a Store.
type Service struct {
	store    Store
	recorder Recorder
	logger   *slog.Logger

	// mu serialises the read-check-write sequences so uniqueness holds.
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

// NewService creates a Service. recorder may be nil.
func NewService(store Store, recorder Recorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// List returns every account, newest first.
func (s *Service) List(ctx context.Context) ([]model.Account, error) {
	accts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accts, nil
}

// Get returns one account.
func (s *Service) Get(ctx context.Context, id string) (model.Account, error) {
	a, err := s.store.GetAccount(ctx, id)
	if err != nil {
		return model.Account{}, fmt.Errorf("getting account %s: %w", id, err)
	}
	return a, nil
}

// Create validates in and stores a new account.
func (s *Service) Create(ctx context.Context, in AccountInput) (model.Account, error) {
	p, err := parseInput(in)
	if err != nil {
		return model.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.List(ctx)
	if err != nil {
		return model.Account{}, err
	}
	if err := checkConflicts(p, existing, nil); err != nil {
		return model.Account{}, err
	}

	now := s.now().UTC()
	a := model.Account{
		ID:          s.newID(),
		Name:        p.name,
		Balance:     p.balance,
		Type:        p.accountType,
		Category:    p.category,
		Icon:        p.icon,
		CreditLimit: p.creditLimit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if a.Icon == "" {
		a.Icon = a.Category.DefaultIcon()
	}

	if err := s.store.InsertAccount(ctx, a); err != nil {
		return model.Account{}, fmt.Errorf("inserting account: %w", err)
	}
	s.logger.Info("account created", "id", a.ID, "name", a.Name, "type", a.Type, "category", a.Category)
	s.record(ActionCreate, a, "balance="+a.Balance.StringFixed(2))
	return a, nil
}

// Update replaces the editable fields of account id.
func (s *Service) Update(ctx context.Context, id string, in AccountInput) (model.Account, error) {
	p, err := parseInput(in)
	if err != nil {
		return model.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx, id)
	if err != nil {
		return model.Account{}, err
	}
	existing, err := s.List(ctx)
	if err != nil {
		return model.Account{}, err
	}
	if err := checkConflicts(p, existing, &current); err != nil {
		return model.Account{}, err
	}

	updated := current
	updated.Name = p.name
	updated.Balance = p.balance
	updated.Type = p.accountType
	updated.Category = p.category
	updated.CreditLimit = p.creditLimit
	switch {
	case p.icon != "":
		updated.Icon = p.icon
	case p.category != current.EffectiveCategory():
		updated.Icon = p.category.DefaultIcon()
	}
	updated.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateAccount(ctx, updated); err != nil {
		return model.Account{}, fmt.Errorf("updating account %s: %w", id, err)
	}
	s.logger.Info("account updated", "id", id, "name", updated.Name)
	s.record(ActionUpdate, updated, fmt.Sprintf("balance %s -> %s", current.Balance.StringFixed(2), updated.Balance.StringFixed(2)))
	return updated, nil
}

// Delete removes account id. Transactions are not linked to accounts, so nothing
// cascades.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("deleting account %s: %w", id, err)
	}
	s.logger.Info("account deleted", "id", id, "name", current.Name)
	s.record(ActionDelete, current, "")
	return nil
}

// Summary computes the net-worth figures over every stored account.
func (s *Service) Summary(ctx context.Context) (networth.Summary, error) {
	accts, err := s.List(ctx)
	if err != nil {
		return networth.Summary{}, err
	}
	return networth.Summarize(accts), nil
}

// record writes to the activity log. A failed write is logged and otherwise ignored;
// the account change has already been committed.
func (s *Service) record(action Action, a model.Account, details string) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(action, a, details); err != nil {
		s.logger.Warn("recording account activity", "action", action, "id", a.ID, "error", err)
	}
}
