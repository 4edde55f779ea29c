package lessons

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrModuleNotFound = errors.New("learning module not found")

// FSLoader reads the lesson catalog from a directory holding index.yml
// plus one lesson file per module.
type FSLoader struct {
	root string
}

func NewFSLoader(root string) *FSLoader {
	return &FSLoader{root: root}
}

// ListModules returns the catalog ordered by each module's order field.
func (l *FSLoader) ListModules() ([]ModuleRef, error) {
	idx, err := l.loadIndex()
	if err != nil {
		return nil, err
	}
	modules := append([]ModuleRef(nil), idx.Modules...)
	sort.SliceStable(modules, func(i, j int) bool { return modules[i].Order < modules[j].Order })
	return modules, nil
}

// LoadModule resolves a module by name through the index and decodes
// its lesson file, lessons ordered.
func (l *FSLoader) LoadModule(name string) (*Module, error) {
	idx, err := l.loadIndex()
	if err != nil {
		return nil, err
	}
	var ref *ModuleRef
	for i := range idx.Modules {
		if idx.Modules[i].Name == name {
			ref = &idx.Modules[i]
			break
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
	}

	raw, err := os.ReadFile(filepath.Join(l.root, ref.File))
	if err != nil {
		return nil, fmt.Errorf("read lesson file for %s: %w", name, err)
	}
	var module Module
	if err := yaml.Unmarshal(raw, &module); err != nil {
		return nil, fmt.Errorf("parse lesson file for %s: %w", name, err)
	}
	if err := module.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lesson file for %s: %w", name, err)
	}
	sort.SliceStable(module.Lessons, func(i, j int) bool { return module.Lessons[i].Order < module.Lessons[j].Order })
	return &module, nil
}

func (l *FSLoader) loadIndex() (*Index, error) {
	raw, err := os.ReadFile(filepath.Join(l.root, "index.yml"))
	if err != nil {
		return nil, fmt.Errorf("read lesson index: %w", err)
	}
	var idx Index
	if err := yaml.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("parse lesson index: %w", err)
	}
	if err := idx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lesson index: %w", err)
	}
	return &idx, nil
}
