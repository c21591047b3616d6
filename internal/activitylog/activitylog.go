// Package activitylog keeps an append-only CSV audit trail of account changes.
package activitylog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/model"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp   time.Time
	Action      string
	AccountID   string
	AccountName string
	Details     string
}

// Header is the CSV header for activity-log.csv.
const Header = "timestamp,action,account_id,account_name,details"

const (
	numFields      = 5
	logDir         = "logs"
	logFile        = "logs/activity-log.csv"
	colTimestamp   = 0
	colAction      = 1
	colAccountID   = 2
	colAccountName = 3
	colDetails     = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colAction] = e.Action
	row[colAccountID] = e.AccountID
	row[colAccountName] = e.AccountName
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:   ts,
		Action:      record[colAction],
		AccountID:   record[colAccountID],
		AccountName: record[colAccountName],
		Details:     record[colDetails],
	}, nil
}

// Append writes entries to <dataDir>/logs/activity-log.csv, creating the file and header if needed.
func Append(dataDir string, entries []Entry) error {
	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <dataDir>/logs/activity-log.csv.
// Returns an empty slice if the file does not exist.
func Read(dataDir string) ([]Entry, error) {
	path := filepath.Join(dataDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Log is an accounts.Recorder that appends to the activity log under DataDir.
type Log struct {
	DataDir string
	Now     func() time.Time

	mu sync.Mutex
}

// New returns a Log writing under dataDir.
func New(dataDir string) *Log {
	return &Log{DataDir: dataDir, Now: time.Now}
}

// Record appends one entry for an account change.
func (l *Log) Record(action accounts.Action, a model.Account, details string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return Append(l.DataDir, []Entry{{
		Timestamp:   now(),
		Action:      string(action),
		AccountID:   a.ID,
		AccountName: a.Name,
		Details:     details,
	}})
}
