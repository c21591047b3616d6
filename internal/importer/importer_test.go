package importer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/model"
)

const chaseHeader = "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"

const chaseCSV = chaseHeader +
	"DEBIT,01/22/2025,GITHUB *PRO SUBSCRIPTION,-4.00,ACH_DEBIT,4821.33,\n" +
	"CREDIT,01/22/2025,ACME CONSULTING INVOICE 1042,3500.00,ACH_CREDIT,4825.33,\n" +
	"DEBIT,01/03/2025,AWS,-12.10,ACH_DEBIT,1325.33,\n"

func TestChaseParser_Parse(t *testing.T) {
	p := &ChaseParser{}
	inputs, err := p.Parse("Chase Checking", strings.NewReader(chaseCSV))
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	assert.Equal(t, "Chase Checking", inputs[0].Name)
	assert.Equal(t, "4821.33", inputs[0].Balance)
	assert.Equal(t, "Personal", inputs[0].Type)
	assert.Equal(t, "Checking", inputs[0].Category)
}

func TestChaseParser_LatestDateWins(t *testing.T) {
	ascending := chaseHeader +
		"DEBIT,01/03/2025,AWS,-12.10,ACH_DEBIT,1325.33,\n" +
		"DEBIT,01/22/2025,GITHUB,-4.00,ACH_DEBIT,-40.25,\n"

	inputs, err := (&ChaseParser{}).Parse("x", strings.NewReader(ascending))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "-40.25", inputs[0].Balance)
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	inputs, err := p.Parse("x", strings.NewReader(chaseHeader))
	require.NoError(t, err)
	assert.Nil(t, inputs)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := chaseHeader + "DEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	_, err := (&ChaseParser{}).Parse("x", strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestChaseParser_BadBalance(t *testing.T) {
	csv := chaseHeader + "DEBIT,01/03/2025,desc,-4.00,ACH_DEBIT,lots,\n"
	_, err := (&ChaseParser{}).Parse("x", strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing balance")
}

func TestOrgaiParser_Parse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, accounts.WriteAccounts(&buf, accounts.SampleAccounts()))

	inputs, err := (&OrgaiParser{}).Parse("export", &buf)
	require.NoError(t, err)
	require.Len(t, inputs, 10)
	assert.Equal(t, "Bank of America", inputs[0].Name)
	assert.Equal(t, "1500", inputs[0].Balance)
	assert.Equal(t, "Credit Card", inputs[2].Category)
}

func TestRegistry_GetUnknown(t *testing.T) {
	assert.Nil(t, NewRegistry().Get("nope"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("CHASE"))
	assert.NotNil(t, r.Get("Orgai"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func writeImport(t *testing.T, dir, name, content string) {
	t.Helper()
	importPath := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, name), []byte(content), 0o644))
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "a.csv", "x")
	writeImport(t, dir, "B.CSV", "x")
	writeImport(t, dir, "notes.txt", "x")

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasSuffix(strings.ToLower(f.Name), ".csv"))
		assert.Equal(t, int64(1), f.Size)
	}
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "a.csv", "x")
	require.NoError(t, MarkProcessed(dir, "a.csv"))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "a.csv", "data")

	require.NoError(t, MarkProcessed(dir, "a.csv"))

	_, err := os.Stat(filepath.Join(dir, "import", "a.csv"))
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(filepath.Join(dir, "import", "processed", "a.csv"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

type fakeCreator struct {
	names map[string]bool
	fail  error
}

func (f *fakeCreator) Create(_ context.Context, in accounts.AccountInput) (model.Account, error) {
	if f.fail != nil {
		return model.Account{}, f.fail
	}
	if f.names[in.Name] {
		return model.Account{}, &accounts.ValidationError{Field: "name", Err: accounts.ErrDuplicateName}
	}
	f.names[in.Name] = true
	return model.Account{ID: in.Name, Name: in.Name, Balance: decimal.RequireFromString(in.Balance)}, nil
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "Chase Checking.csv", chaseCSV)
	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	creator := &fakeCreator{names: map[string]bool{}}
	res, err := ImportFile(context.Background(), creator, &ChaseParser{}, files[0])
	require.NoError(t, err)
	require.Len(t, res.Created, 1)
	assert.Equal(t, "Chase Checking", res.Created[0].Name)
	assert.Empty(t, res.Skipped)

	// importing the same file again trips the duplicate-name check
	res, err = ImportFile(context.Background(), creator, &ChaseParser{}, files[0])
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0].Err, accounts.ErrDuplicateName)
}

func TestImportFile_StoreFailureStops(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "c.csv", chaseCSV)
	files, err := Scan(dir)
	require.NoError(t, err)

	boom := errors.New("disk full")
	_, err = ImportFile(context.Background(), &fakeCreator{fail: boom}, &ChaseParser{}, files[0])
	assert.ErrorIs(t, err, boom)
}

func TestImportFile_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "bad.csv", "not,a,chase,file\n")
	files, err := Scan(dir)
	require.NoError(t, err)

	_, err = ImportFile(context.Background(), &fakeCreator{names: map[string]bool{}}, &ChaseParser{}, files[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing bad.csv as chase")
}
