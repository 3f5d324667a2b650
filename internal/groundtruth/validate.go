package groundtruth

import (
	"errors"
	"fmt"
	"math"

	"caliper/internal/grade"
)

// ErrMalformedSpec marks a ground-truth file that cannot be graded
// against: the engine emits a flagged 0.00 instead of a partial score.
var ErrMalformedSpec = errors.New("malformed ground-truth spec")

// weightSumTolerance is how far the four category weights may drift from
// 1.0 before gt validate warns. Drift is an editorial smell, not fatal:
// the aggregator applies weights as provided.
const weightSumTolerance = 0.01

// Violation is one schema problem found in a spec. Fatal violations make
// the spec ungradable; warnings are advisory.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Validation is the outcome of checking one spec.
type Validation struct {
	Violations []Violation `json:"violations,omitempty"`
	Warnings   []string    `json:"warnings,omitempty"`
}

// Valid reports whether the spec can be graded against.
func (v Validation) Valid() bool { return len(v.Violations) == 0 }

// Err returns a wrapped ErrMalformedSpec describing the first violation,
// or nil for a valid spec.
func (v Validation) Err() error {
	if v.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %s (%d violation(s))", ErrMalformedSpec, v.Violations[0], len(v.Violations))
}

// Validate checks a loaded spec against the schema contract: every item
// needs at least one pattern and a non-negative weight, and the category
// weights must be non-negative with at least one category weighted.
func Validate(s *grade.Spec) Validation {
	var val Validation

	categories := []struct {
		name  string
		items []grade.ChecklistItem
	}{
		{grade.CategoryRequiredFindings, s.RequiredFindings},
		{grade.CategoryFileReferences, s.FileReferences},
		{grade.CategoryCausalChain, s.CausalChain},
		{grade.CategoryNegativeChecks, s.NegativeChecks},
	}

	for _, cat := range categories {
		for i, item := range cat.items {
			field := fmt.Sprintf("%s[%d]", cat.name, i)
			if len(item.Patterns) == 0 {
				val.Violations = append(val.Violations, Violation{field, "empty pattern list"})
			}
			for j, p := range item.Patterns {
				if p == "" {
					val.Violations = append(val.Violations,
						Violation{fmt.Sprintf("%s.patterns[%d]", field, j), "empty pattern"})
				}
			}
			if item.Weight < 0 {
				val.Violations = append(val.Violations,
					Violation{field, fmt.Sprintf("negative weight %v", item.Weight)})
			}
		}
	}

	w := s.Weights
	for _, c := range []struct {
		name   string
		weight float64
	}{
		{grade.CategoryRequiredFindings, w.RequiredFindings},
		{grade.CategoryFileReferences, w.FileReferences},
		{grade.CategoryCausalChain, w.CausalChain},
		{grade.CategoryNegativeChecks, w.NegativeChecks},
	} {
		if c.weight < 0 {
			val.Violations = append(val.Violations,
				Violation{"weights." + c.name, fmt.Sprintf("negative weight %v", c.weight)})
		}
	}

	sum := w.RequiredFindings + w.FileReferences + w.CausalChain + w.NegativeChecks
	if sum == 0 {
		val.Violations = append(val.Violations,
			Violation{"weights", "all category weights are zero"})
	} else if math.Abs(sum-1.0) > weightSumTolerance {
		val.Warnings = append(val.Warnings,
			fmt.Sprintf("weights sum to %.2f, not 1.0; the total is still clamped to [0,1]", sum))
	}

	return val
}
