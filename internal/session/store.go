package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/averycrespi/calculator-mcp/internal/calculator"

	"gopkg.in/yaml.v3"
)

// Store persists calculator snapshots between server runs
type Store interface {
	Load(ctx context.Context) (calculator.Snapshot, error)
	Save(ctx context.Context, snapshot calculator.Snapshot) error
}

// NopStore keeps nothing; Load always reports os.ErrNotExist
type NopStore struct{}

func (NopStore) Load(ctx context.Context) (calculator.Snapshot, error) {
	return calculator.Snapshot{}, os.ErrNotExist
}

func (NopStore) Save(ctx context.Context, snapshot calculator.Snapshot) error {
	return nil
}

// YAMLStore is a single-file store using YAML serialization
type YAMLStore struct {
	path string
}

// NewYAMLStore creates a YAMLStore, ensuring the parent directory exists
func NewYAMLStore(path string) (*YAMLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return &YAMLStore{path: path}, nil
}

// Path returns the snapshot file path
func (s *YAMLStore) Path() string {
	return s.path
}

func (s *YAMLStore) Load(ctx context.Context) (calculator.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return calculator.Snapshot{}, fmt.Errorf("snapshot %s: %w", s.path, os.ErrNotExist)
		}
		return calculator.Snapshot{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var snapshot calculator.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return calculator.Snapshot{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return snapshot, nil
}

// Save writes to a temporary file and renames it over the snapshot
func (s *YAMLStore) Save(ctx context.Context, snapshot calculator.Snapshot) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
