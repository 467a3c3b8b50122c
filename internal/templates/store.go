package templates

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/output"
)

// Parse validates and decodes a templates document.
// A document missing any of the four bodies is rejected as a whole.
func Parse(data []byte) (*ProjectTemplates, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("%w: %s", oerrors.ErrValidation, strings.Join(msgs, "; "))
	}

	var t ProjectTemplates
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding templates: %w", err)
	}
	return &t, nil
}

// LoadFile reads and parses a templates file.
func LoadFile(path string) (*ProjectTemplates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, oerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Store holds the template set loaded at startup.
// When loading fails the store holds no templates and records why.
type Store struct {
	path      string
	templates *ProjectTemplates
	err       error
}

// Load reads path once and returns a Store. It never fails; callers check
// Templates for nil to detect an unavailable set.
func Load(path string) *Store {
	s := &Store{path: path}
	s.templates, s.err = LoadFile(path)
	if s.err != nil {
		output.Debug("templates unavailable", "path", path, "error", s.err)
	} else {
		output.Debug("templates loaded", "path", path)
	}
	return s
}

// NewStore returns a Store holding t. A nil t models an unavailable set.
func NewStore(t *ProjectTemplates) *Store {
	return &Store{templates: t}
}

// Templates returns the loaded set, or nil when unavailable.
func (s *Store) Templates() *ProjectTemplates {
	if s == nil {
		return nil
	}
	return s.templates
}

// Err returns the load failure, if any.
func (s *Store) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}
