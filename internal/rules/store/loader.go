package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"permitly/internal/rules"
)

// Loader reads a rule corpus from its source.
type Loader interface {
	Load(ctx context.Context) ([]rules.Rule, error)
}

// FileLoader reads a corpus file. The extraction pipeline emits JSON; YAML is
// accepted for hand-maintained corpora, selected by file extension.
type FileLoader struct {
	Path string
}

// Load reads and decodes the corpus file, validating id uniqueness.
func (l FileLoader) Load(_ context.Context) ([]rules.Rule, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read rule corpus: %w", err)
	}

	var corpus []rules.Rule
	switch strings.ToLower(filepath.Ext(l.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &corpus)
	default:
		err = json.Unmarshal(data, &corpus)
	}
	if err != nil {
		return nil, fmt.Errorf("decode rule corpus %s: %w", l.Path, err)
	}

	if len(corpus) == 0 {
		return nil, fmt.Errorf("rule corpus %s is empty", l.Path)
	}

	seen := make(map[string]struct{}, len(corpus))
	for i, r := range corpus {
		if r.ID == "" {
			return nil, fmt.Errorf("rule at index %d has no id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	return corpus, nil
}

// StaticLoader serves a fixed in-memory corpus. Used for the builtin baseline
// and in tests.
type StaticLoader []rules.Rule

func (l StaticLoader) Load(_ context.Context) ([]rules.Rule, error) {
	return l, nil
}
