// Package groundtruth persists and validates the grading contracts
// (specs) that the engine scores reports against.
package groundtruth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"caliper/internal/grade"
)

// Store is the interface for ground-truth persistence.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (*grade.Spec, error)
	Save(ctx context.Context, s *grade.Spec) error
}

// FileStore implements Store using spec files in a directory. JSON and
// YAML are both accepted on load; Save writes indented JSON.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// specExts lists recognized spec file extensions in lookup order.
var specExts = []string{".json", ".yaml", ".yml"}

func (fs *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(fs.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list specs: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range specExts {
			if strings.HasSuffix(e.Name(), ext) {
				names = append(names, strings.TrimSuffix(e.Name(), ext))
				break
			}
		}
	}
	return names, nil
}

func (fs *FileStore) Load(_ context.Context, name string) (*grade.Spec, error) {
	for _, ext := range specExts {
		path := filepath.Join(fs.Dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadPath(path)
		}
	}
	return nil, fmt.Errorf("spec %q not found in %s", name, fs.Dir)
}

func (fs *FileStore) Save(_ context.Context, s *grade.Spec) error {
	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return fmt.Errorf("create spec dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal spec %q: %w", s.Name, err)
	}

	path := filepath.Join(fs.Dir, s.Name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write spec %q: %w", s.Name, err)
	}
	return nil
}

// LoadPath reads one spec file, deserializing by extension: .yaml/.yml
// as YAML, everything else as JSON.
func LoadPath(path string) (*grade.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load spec %s: %w", path, err)
	}

	var s grade.Spec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrMalformedSpec, path, err)
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrMalformedSpec, path, err)
		}
	}
	return &s, nil
}
