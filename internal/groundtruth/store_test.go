package groundtruth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"caliper/internal/grade"
)

func testSpec() *grade.Spec {
	return &grade.Spec{
		Name: "roundtrip",
		RequiredFindings: []grade.ChecklistItem{
			{Description: "finds the bug", Patterns: []string{"v38"}, Weight: 1.0},
		},
		NegativeChecks: []grade.ChecklistItem{
			{Description: "no frontend blame", Patterns: []string{"frontend bug"}, Weight: 1.0},
		},
		Weights: grade.Weights{RequiredFindings: 0.6, NegativeChecks: 0.4},
	}
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	ctx := context.Background()

	want := testSpec()
	if err := fs.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := fs.Load(ctx, "roundtrip")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_List(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	ctx := context.Background()

	if names, err := fs.List(ctx); err != nil || len(names) != 0 {
		t.Fatalf("List on empty dir = %v, %v", names, err)
	}

	for _, name := range []string{"alpha", "beta"} {
		s := testSpec()
		s.Name = name
		if err := fs.Save(ctx, s); err != nil {
			t.Fatal(err)
		}
	}
	// Non-spec files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("List = %v, want [alpha beta]", names)
	}
}

func TestFileStore_ListMissingDir(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nonexistent"))
	names, err := fs.List(context.Background())
	if err != nil || names != nil {
		t.Errorf("List on missing dir = %v, %v; want nil, nil", names, err)
	}
}

func TestLoadPath_YAMLAndJSONAgree(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "spec.yaml")
	yamlBody := `
name: sample
required_findings:
  - description: finds it
    patterns: ["v38"]
    weight: 1.0
weights:
  required_findings: 1.0
`
	if err := os.WriteFile(yamlPath, []byte(yamlBody), 0o644); err != nil {
		t.Fatal(err)
	}

	jsonPath := filepath.Join(dir, "spec.json")
	jsonBody := `{
  "name": "sample",
  "required_findings": [
    {"description": "finds it", "patterns": ["v38"], "weight": 1.0}
  ],
  "weights": {"required_findings": 1.0}
}`
	if err := os.WriteFile(jsonPath, []byte(jsonBody), 0o644); err != nil {
		t.Fatal(err)
	}

	fromYAML, err := LoadPath(yamlPath)
	if err != nil {
		t.Fatalf("LoadPath(yaml): %v", err)
	}
	fromJSON, err := LoadPath(jsonPath)
	if err != nil {
		t.Fatalf("LoadPath(json): %v", err)
	}
	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Errorf("YAML and JSON specs differ (-yaml +json):\n%s", diff)
	}

	report := "the v38 migration broke it and nothing else did, truly"
	if a, b := grade.Score(report, fromYAML), grade.Score(report, fromJSON); a.Reward != b.Reward {
		t.Errorf("YAML and JSON specs grade differently: %v vs %v", a.Reward, b.Reward)
	}
}

func TestLoadPath_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPath(path)
	if !errors.Is(err, ErrMalformedSpec) {
		t.Errorf("err = %v, want ErrMalformedSpec", err)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	if _, err := fs.Load(context.Background(), "ghost"); err == nil {
		t.Error("expected error for missing spec")
	}
}
