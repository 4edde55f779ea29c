package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FSLoader reads scenario definitions from a directory of YAML files,
// one scenario per file, keyed by file name without extension.
type FSLoader struct {
	root string
}

func NewLoader(root string) *FSLoader { return &FSLoader{root: root} }

// LoadScenario returns the named scenario, or nil when it does not exist
// or cannot be parsed. Malformed content never propagates as an error;
// a missing scenario and a broken one look the same to the caller.
func (l *FSLoader) LoadScenario(name string) *Definition {
	for _, ext := range []string{".yml", ".yaml"} {
		path := filepath.Join(l.root, name+ext)
		def, err := readDefinition(path)
		if err == nil {
			return def
		}
		if !os.IsNotExist(err) {
			return nil
		}
	}
	return nil
}

// ListScenarioNames returns the available scenario names in sorted order.
func (l *FSLoader) ListScenarioNames() []string {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)
	return names
}

func readDefinition(path string) (*Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def Definition
	if err := yaml.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	applyDefaults(&def)
	return &def, nil
}
