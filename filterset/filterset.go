package filterset

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/boolean-maybe/tagq/expr"
)

var (
	// ErrDuplicateName indicates two entries in one file share a name
	ErrDuplicateName = errors.New("duplicate filter name")

	// ErrEmptyExpression indicates an entry with no expression text
	ErrEmptyExpression = errors.New("empty filter expression")
)

// File represents the YAML structure of a filters.yaml file
type File struct {
	Filters []filterFileConfig `yaml:"filters"`
}

// filterFileConfig is one entry as written in YAML
type filterFileConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Expr        string `yaml:"expr"`
}

// Filter is a named, compiled filter expression
type Filter struct {
	Name        string
	Description string
	Source      string          // expression text as written
	Expr        expr.Expression // parsed tree
	Index       int             // position in the file's filters list
}

// Set holds the filters of one file in file order
type Set struct {
	Path    string
	Filters []*Filter
	byName  map[string]*Filter
}

// Get returns the filter with the given name
func (s *Set) Get(name string) (*Filter, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Names returns filter names in file order
func (s *Set) Names() []string {
	names := make([]string, len(s.Filters))
	for i, f := range s.Filters {
		names[i] = f.Name
	}
	return names
}

// EntryError describes why one entry of a filter file failed to compile
type EntryError struct {
	Name  string
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("filter %q (index %d): %v", e.Name, e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Load reads and compiles a filter file.
// Entries without a name are skipped with a warning. Entries that fail are left out
// of the returned Set and reported together in the error, so a non-nil Set may come
// with a non-nil error.
func Load(path string, opts ...expr.Option) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filter file: %w", err)
	}
	return Parse(data, path, opts...)
}

// Parse compiles filter file content; source names it in log messages and errors
func Parse(data []byte, source string, opts ...expr.Option) (*Set, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse filter file %s: %w", source, err)
	}

	set := &Set{
		Path:   source,
		byName: make(map[string]*Filter, len(file.Filters)),
	}

	var errs []error
	for i, cfg := range file.Filters {
		if cfg.Name == "" {
			slog.Warn("skipping filter with no name", "file", source, "index", i)
			continue
		}

		f, err := compile(cfg, i, opts)
		if err == nil {
			if _, exists := set.byName[cfg.Name]; exists {
				err = ErrDuplicateName
			}
		}
		if err != nil {
			slog.Warn("failed to load filter", "file", source, "name", cfg.Name, "error", err)
			errs = append(errs, &EntryError{Name: cfg.Name, Index: i, Err: err})
			continue
		}

		set.Filters = append(set.Filters, f)
		set.byName[f.Name] = f
		slog.Debug("loaded filter", "file", source, "name", f.Name, "labels", len(expr.Labels(f.Expr)))
	}

	return set, errors.Join(errs...)
}

func compile(cfg filterFileConfig, index int, opts []expr.Option) (*Filter, error) {
	source := strings.TrimSpace(cfg.Expr)
	if source == "" {
		return nil, ErrEmptyExpression
	}

	tree, err := expr.ParseString(source, opts...)
	if err != nil {
		return nil, err
	}

	return &Filter{
		Name:        cfg.Name,
		Description: cfg.Description,
		Source:      source,
		Expr:        tree,
		Index:       index,
	}, nil
}
