package groundtruth

import (
	"fmt"

	"caliper/internal/grade"
)

// CheckResult is the completeness summary for one category: how much of
// it is fully authored and what is missing. Advisory only; completeness
// never affects grading.
type CheckResult struct {
	Category string
	Items    int
	Coverage float64  // fraction of items with description, patterns, and weight
	Ready    bool     // fully authored and carrying category weight
	Missing  []string // human-readable gaps
}

// Check reports per-category authoring completeness for gt status. A
// category is Ready when every item has a description, at least one
// pattern, and a positive weight, and the category itself is weighted.
func Check(s *grade.Spec) []CheckResult {
	return []CheckResult{
		checkCategory(grade.CategoryRequiredFindings, s.RequiredFindings, s.Weights.RequiredFindings),
		checkCategory(grade.CategoryFileReferences, s.FileReferences, s.Weights.FileReferences),
		checkCategory(grade.CategoryCausalChain, s.CausalChain, s.Weights.CausalChain),
		checkCategory(grade.CategoryNegativeChecks, s.NegativeChecks, s.Weights.NegativeChecks),
	}
}

func checkCategory(name string, items []grade.ChecklistItem, weight float64) CheckResult {
	r := CheckResult{Category: name, Items: len(items)}

	complete := 0
	for i, item := range items {
		gaps := 0
		if item.Description == "" {
			r.Missing = append(r.Missing, fmt.Sprintf("%s[%d]: no description", name, i))
			gaps++
		}
		if len(item.Patterns) == 0 {
			r.Missing = append(r.Missing, fmt.Sprintf("%s[%d]: no patterns", name, i))
			gaps++
		}
		if item.Weight <= 0 {
			r.Missing = append(r.Missing, fmt.Sprintf("%s[%d]: no weight", name, i))
			gaps++
		}
		if gaps == 0 {
			complete++
		}
	}

	if len(items) > 0 {
		r.Coverage = float64(complete) / float64(len(items))
	}
	if weight == 0 && name != grade.CategoryNegativeChecks {
		r.Missing = append(r.Missing, name+": category weight is zero")
	}

	r.Ready = len(r.Missing) == 0 && len(items) > 0
	return r
}
