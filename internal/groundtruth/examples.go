package groundtruth

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"caliper/internal/grade"
)

//go:embed examples/*.yaml
var exampleFS embed.FS

// LoadExample reads a built-in example spec by name. These ship with the
// binary for smoke-testing a grading setup without authoring a spec.
func LoadExample(name string) (*grade.Spec, error) {
	data, err := exampleFS.ReadFile("examples/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("example spec %q not found (available: %s): %w",
			name, strings.Join(ListExamples(), ", "), err)
	}
	var s grade.Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse example spec %q: %w", name, err)
	}
	return &s, nil
}

// ListExamples returns the names of all embedded example specs, sorted.
func ListExamples() []string {
	entries, _ := exampleFS.ReadDir("examples")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}
