package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"caliper/internal/grade"
)

func TestEmitReward_Format(t *testing.T) {
	tests := []struct {
		reward float64
		want   string
	}{
		{0.65, "0.65\n"},
		{0.0, "0.00\n"},
		{1.0, "1.00\n"},
		{0.5, "0.50\n"},
	}
	dir := t.TempDir()
	for _, tc := range tests {
		dest := filepath.Join(dir, "reward.txt")
		if err := EmitReward(tc.reward, dest); err != nil {
			t.Fatalf("EmitReward(%v): %v", tc.reward, err)
		}
		data, err := os.ReadFile(dest)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != tc.want {
			t.Errorf("EmitReward(%v) wrote %q, want %q", tc.reward, data, tc.want)
		}
	}
}

func TestEmitReward_CreatesParentDirs(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out", "nested", "reward.txt")
	if err := EmitReward(0.42, dest); err != nil {
		t.Fatalf("EmitReward: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reward file not created: %v", err)
	}
	if string(data) != "0.42\n" {
		t.Errorf("content = %q", data)
	}
}

func TestEmitBreakdown(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "breakdown.json")
	res := grade.Result{
		Outcome: grade.OutcomeScored,
		Reward:  0.65,
		Categories: []grade.CategoryResult{
			{Name: grade.CategoryRequiredFindings, Earned: 0.5, Total: 1.0, Ratio: 0.5},
		},
	}
	if err := EmitBreakdown(res, dest); err != nil {
		t.Fatalf("EmitBreakdown: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"outcome": "scored"`, `"reward": 0.65`, `"required_findings"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("breakdown missing %q:\n%s", want, data)
		}
	}
}
