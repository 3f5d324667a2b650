// Package grade implements the deterministic report-grading engine.
// It matches a free-text investigation report against a weighted
// ground-truth checklist and produces a single reward in [0.0, 1.0].
// Scoring is a pure function of the report text and the spec: no
// randomness, no external state, no model in the loop.
package grade

// Category names as they appear in ground-truth files and logs.
const (
	CategoryRequiredFindings = "required_findings"
	CategoryFileReferences   = "file_references"
	CategoryCausalChain      = "causal_chain"
	CategoryNegativeChecks   = "negative_checks"
)

// ChecklistItem is one weighted, independently gradable expectation
// within a category. Description is diagnostic only and never scored.
type ChecklistItem struct {
	Description string   `json:"description" yaml:"description"`
	Patterns    []string `json:"patterns" yaml:"patterns"`
	Weight      float64  `json:"weight" yaml:"weight"`
}

// Weights is the per-spec distribution across the four categories.
// By editorial convention these sum to 1.0 (e.g. 0.40/0.30/0.20/0.10),
// but the aggregator takes them as provided and clamps the final total
// instead of renormalizing.
type Weights struct {
	RequiredFindings float64 `json:"required_findings" yaml:"required_findings"`
	FileReferences   float64 `json:"file_references" yaml:"file_references"`
	CausalChain      float64 `json:"causal_chain" yaml:"causal_chain"`
	NegativeChecks   float64 `json:"negative_checks" yaml:"negative_checks"`
}

// Spec is the full grading contract for one task: four checklist
// categories plus the category weight distribution. Loaded once per
// grading run and read-only for its duration.
type Spec struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// RequiredFindings and FileReferences use match-any semantics: an
	// item is credited when any of its patterns appears in the report.
	RequiredFindings []ChecklistItem `json:"required_findings" yaml:"required_findings"`
	FileReferences   []ChecklistItem `json:"file_references" yaml:"file_references"`

	// CausalChain uses match-all semantics: every pattern in the item
	// must appear somewhere in the report. Joint presence, not textual
	// order.
	CausalChain []ChecklistItem `json:"causal_chain" yaml:"causal_chain"`

	// NegativeChecks invert match-any: the item is credited when none
	// of its patterns are found. Penalizes stated wrong conclusions.
	NegativeChecks []ChecklistItem `json:"negative_checks" yaml:"negative_checks"`

	Weights Weights `json:"weights" yaml:"weights"`
}

// ItemResult is the advisory per-item outcome within a category.
type ItemResult struct {
	Description string   `json:"description"`
	Weight      float64  `json:"weight"`
	Satisfied   bool     `json:"satisfied"`
	Matched     []string `json:"matched,omitempty"` // patterns that fired (or, for negative checks, were found)
}

// CategoryResult holds one category's ratio and its item breakdown.
type CategoryResult struct {
	Name   string       `json:"name"`
	Earned float64      `json:"earned"`
	Total  float64      `json:"total"`
	Ratio  float64      `json:"ratio"`
	Items  []ItemResult `json:"items,omitempty"`
}

// Outcome classifies how a grading run ended. A forced zero from a
// missing or degenerate input is distinguishable from a genuine low
// score downstream.
type Outcome string

const (
	OutcomeScored        Outcome = "scored"
	OutcomeMissingReport Outcome = "missing_report"
	OutcomeTooShort      Outcome = "report_too_short"
	OutcomeMissingSpec   Outcome = "missing_spec"
	OutcomeMalformedSpec Outcome = "malformed_spec"
)

// Result is the full grading outcome: the reward plus the advisory
// category breakdown. Only the reward is contractual.
type Result struct {
	Outcome    Outcome          `json:"outcome"`
	Reward     float64          `json:"reward"`
	Categories []CategoryResult `json:"categories,omitempty"`
}

// Category returns the named category result, or nil when absent
// (short-circuited runs carry no breakdown).
func (r *Result) Category(name string) *CategoryResult {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i]
		}
	}
	return nil
}
