// Package importer reads account snapshots from CSV files dropped into the data
// directory's import folder.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/model"
)

// Parser converts a CSV file into account inputs. source is the file name without its
// extension; parsers that cannot find an account name in the data use it instead.
type Parser interface {
	Parse(source string, r io.Reader) ([]accounts.AccountInput, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&OrgaiParser{})
	r.Register(&ChaseParser{})
	return r
}

const (
	importDir    = "import"
	processedDir = "import/processed"
)

// Scan returns CSV files in <dataDir>/import/. A missing directory yields no files.
func Scan(dataDir string) ([]FileInfo, error) {
	dir := filepath.Join(dataDir, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(dataDir, fileName string) error {
	src := filepath.Join(dataDir, importDir, fileName)
	dstDir := filepath.Join(dataDir, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// Creator is the part of accounts.Service the importer drives.
type Creator interface {
	Create(ctx context.Context, in accounts.AccountInput) (model.Account, error)
}

// RowError records an input the service rejected.
type RowError struct {
	Row  int // 1-based position among the parsed inputs
	Name string
	Err  error
}

// Result summarises one imported file.
type Result struct {
	File    string
	Created []model.Account
	Skipped []RowError
}

// ImportFile parses file with parser and creates each account through svc, so every
// row passes the same validation as a hand-entered account. Rows failing validation
// are skipped and reported; any other error stops the import.
func ImportFile(ctx context.Context, svc Creator, parser Parser, file FileInfo) (Result, error) {
	res := Result{File: file.Name}

	f, err := os.Open(file.Path)
	if err != nil {
		return res, fmt.Errorf("opening %s: %w", file.Name, err)
	}
	defer f.Close()

	source := strings.TrimSuffix(file.Name, filepath.Ext(file.Name))
	inputs, err := parser.Parse(source, f)
	if err != nil {
		return res, fmt.Errorf("parsing %s as %s: %w", file.Name, parser.Format(), err)
	}

	for i, in := range inputs {
		a, err := svc.Create(ctx, in)
		var verr *accounts.ValidationError
		switch {
		case errors.As(err, &verr):
			slog.Warn("skipping import row", "file", file.Name, "row", i+1, "name", in.Name, "error", err)
			res.Skipped = append(res.Skipped, RowError{Row: i + 1, Name: in.Name, Err: err})
		case err != nil:
			return res, fmt.Errorf("%s row %d: %w", file.Name, i+1, err)
		default:
			res.Created = append(res.Created, a)
		}
	}
	return res, nil
}
