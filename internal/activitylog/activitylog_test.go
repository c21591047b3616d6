package activitylog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/model"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:   testTime,
		Action:      "create",
		AccountID:   "0d8a9c8e-7a8f-4c43-9d0e-5f8f2b1c3a10",
		AccountName: "Visa, Platinum",
		Details:     "balance=-3258.74",
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	second := testEntry()
	second.Action = "delete"
	second.Details = ""
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "create", entries[0].Action)
	assert.Equal(t, "Visa, Platinum", entries[0].AccountName)
	assert.True(t, testTime.Equal(entries[0].Timestamp))
	assert.Equal(t, "delete", entries[1].Action)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "activity-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data[:len(Header)+1]), "header written once at the top")
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "activity-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")

	_, err = UnmarshalEntry([]string{"yesterday", "create", "id", "name", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestTimestampIsUTC(t *testing.T) {
	e := testEntry()
	e.Timestamp = testTime.In(time.FixedZone("PST", -8*60*60))
	assert.Equal(t, "2025-01-15T10:30:00Z", MarshalEntry(e)[colTimestamp])
}

func TestLogRecord(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	l.Now = func() time.Time { return testTime }

	a := model.Account{ID: "a1", Name: "Chase"}
	require.NoError(t, l.Record(accounts.ActionUpdate, a, "balance 1.00 -> 2.00"))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	got := entries[0]
	assert.True(t, testTime.Equal(got.Timestamp))
	assert.Equal(t, "update", got.Action)
	assert.Equal(t, "a1", got.AccountID)
	assert.Equal(t, "Chase", got.AccountName)
	assert.Equal(t, "balance 1.00 -> 2.00", got.Details)
}

type mapStore struct {
	accounts map[string]model.Account
}

func (m *mapStore) ListAccounts(context.Context) ([]model.Account, error) {
	var out []model.Account
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (m *mapStore) GetAccount(_ context.Context, id string) (model.Account, error) {
	return m.accounts[id], nil
}

func (m *mapStore) InsertAccount(_ context.Context, a model.Account) error {
	m.accounts[a.ID] = a
	return nil
}

func (m *mapStore) UpdateAccount(_ context.Context, a model.Account) error {
	m.accounts[a.ID] = a
	return nil
}

func (m *mapStore) DeleteAccount(_ context.Context, id string) error {
	delete(m.accounts, id)
	return nil
}

func TestLogAsServiceRecorder(t *testing.T) {
	dir := t.TempDir()
	svc := accounts.NewService(&mapStore{accounts: map[string]model.Account{}}, New(dir), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	a, err := svc.Create(ctx, accounts.AccountInput{Name: "Wallet", Balance: "20", Type: "Cash"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, a.ID, accounts.AccountInput{Name: "Wallet", Balance: "35.5", Type: "Cash"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, a.ID))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"create", "update", "delete"}, []string{entries[0].Action, entries[1].Action, entries[2].Action})
	assert.Equal(t, "balance=20.00", entries[0].Details)
	assert.Equal(t, "balance 20.00 -> 35.50", entries[1].Details)
	for _, e := range entries {
		assert.Equal(t, a.ID, e.AccountID)
		assert.Equal(t, "Wallet", e.AccountName)
	}
}
