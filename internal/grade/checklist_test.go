package grade

import "testing"

const sampleReport = "The bug is in v38.go, function processPanelsV38, caused by an early continue."

func TestEvaluateCategory_MatchAny(t *testing.T) {
	doc := NewDocument(sampleReport)
	items := []ChecklistItem{
		{Description: "identifies v38 migration", Patterns: []string{"v38"}, Weight: 0.5},
		{Description: "mentions migrateOverrides", Patterns: []string{"migrateOverrides"}, Weight: 0.5},
	}

	res := EvaluateCategory(CategoryRequiredFindings, items, doc)
	if res.Ratio != 0.5 {
		t.Errorf("ratio = %v, want 0.5", res.Ratio)
	}
	if !res.Items[0].Satisfied || res.Items[1].Satisfied {
		t.Errorf("item satisfaction = %v/%v, want true/false", res.Items[0].Satisfied, res.Items[1].Satisfied)
	}
	if len(res.Items[0].Matched) != 1 || res.Items[0].Matched[0] != "v38" {
		t.Errorf("matched = %v, want [v38]", res.Items[0].Matched)
	}
}

func TestEvaluateCategory_MatchAnyMultiplePatterns(t *testing.T) {
	doc := NewDocument(sampleReport)
	items := []ChecklistItem{
		{Patterns: []string{"nothing here", "early continue"}, Weight: 1.0},
	}

	res := EvaluateCategory(CategoryFileReferences, items, doc)
	if res.Ratio != 1.0 {
		t.Errorf("ratio = %v, want 1.0 (second pattern matches)", res.Ratio)
	}
}

func TestEvaluateCategory_MatchAll(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   float64
	}{
		{"all steps present", "A happened and therefore B failed", 1.0},
		{"first step only", "A happened but nothing else", 0.0},
		{"second step only", "therefore B failed", 0.0},
		{"neither", "unrelated text", 0.0},
	}
	items := []ChecklistItem{
		{Patterns: []string{"A happened", "therefore B failed"}, Weight: 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := EvaluateCategory(CategoryCausalChain, items, NewDocument(tc.report))
			if res.Ratio != tc.want {
				t.Errorf("ratio = %v, want %v", res.Ratio, tc.want)
			}
		})
	}
}

func TestEvaluateCategory_NegativeChecks(t *testing.T) {
	items := []ChecklistItem{
		{Description: "does not blame the frontend", Patterns: []string{"frontend bug"}, Weight: 1.0},
	}

	clean := EvaluateCategory(CategoryNegativeChecks, items, NewDocument("backend migration issue"))
	if clean.Ratio != 1.0 {
		t.Errorf("clean report ratio = %v, want 1.0", clean.Ratio)
	}

	banned := EvaluateCategory(CategoryNegativeChecks, items, NewDocument("this is a frontend bug"))
	if banned.Ratio != 0.0 {
		t.Errorf("banned-phrase ratio = %v, want 0.0", banned.Ratio)
	}
	if len(banned.Items[0].Matched) != 1 {
		t.Errorf("expected the violating pattern to be recorded, got %v", banned.Items[0].Matched)
	}
}

func TestEvaluateCategory_EmptyCategoryBoundaries(t *testing.T) {
	doc := NewDocument(sampleReport)

	if r := EvaluateCategory(CategoryNegativeChecks, nil, doc); r.Ratio != 1.0 {
		t.Errorf("empty negative_checks ratio = %v, want 1.0", r.Ratio)
	}
	if r := EvaluateCategory(CategoryRequiredFindings, nil, doc); r.Ratio != 0.0 {
		t.Errorf("empty required_findings ratio = %v, want 0.0", r.Ratio)
	}
	if r := EvaluateCategory(CategoryFileReferences, nil, doc); r.Ratio != 0.0 {
		t.Errorf("empty file_references ratio = %v, want 0.0", r.Ratio)
	}
	if r := EvaluateCategory(CategoryCausalChain, nil, doc); r.Ratio != 0.0 {
		t.Errorf("empty causal_chain ratio = %v, want 0.0", r.Ratio)
	}
}

func TestEvaluateCategory_ZeroWeightItems(t *testing.T) {
	doc := NewDocument(sampleReport)
	items := []ChecklistItem{
		{Patterns: []string{"v38"}, Weight: 0},
	}

	// Matched but weightless: total weight 0 behaves like an empty category.
	if r := EvaluateCategory(CategoryRequiredFindings, items, doc); r.Ratio != 0.0 {
		t.Errorf("zero-weight required_findings ratio = %v, want 0.0", r.Ratio)
	}
	neg := []ChecklistItem{{Patterns: []string{"not present"}, Weight: 0}}
	if r := EvaluateCategory(CategoryNegativeChecks, neg, doc); r.Ratio != 1.0 {
		t.Errorf("zero-weight negative_checks ratio = %v, want 1.0", r.Ratio)
	}
}

func TestEvaluateCategory_MatchAllEmptyPatterns(t *testing.T) {
	doc := NewDocument(sampleReport)
	items := []ChecklistItem{
		{Description: "no patterns", Patterns: nil, Weight: 1.0},
	}
	// An item that asserts nothing earns nothing.
	res := EvaluateCategory(CategoryCausalChain, items, doc)
	if res.Ratio != 0.0 {
		t.Errorf("empty-pattern causal_chain ratio = %v, want 0.0", res.Ratio)
	}
}

func TestEvaluateCategory_PartialWeights(t *testing.T) {
	doc := NewDocument(sampleReport)
	items := []ChecklistItem{
		{Patterns: []string{"v38"}, Weight: 3.0},
		{Patterns: []string{"absent"}, Weight: 1.0},
	}
	res := EvaluateCategory(CategoryRequiredFindings, items, doc)
	if res.Ratio != 0.75 {
		t.Errorf("ratio = %v, want 0.75", res.Ratio)
	}
	if res.Earned != 3.0 || res.Total != 4.0 {
		t.Errorf("earned/total = %v/%v, want 3/4", res.Earned, res.Total)
	}
}
