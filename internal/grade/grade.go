package grade

// Score grades a report against a ground-truth spec. It evaluates the
// four categories in their canonical order, aggregates by the spec's
// weights, and returns the reward with the advisory breakdown.
//
// Score is pure: identical inputs always yield an identical Result.
func Score(report string, spec *Spec) Result {
	doc := NewDocument(report)

	categories := []CategoryResult{
		EvaluateCategory(CategoryRequiredFindings, spec.RequiredFindings, doc),
		EvaluateCategory(CategoryFileReferences, spec.FileReferences, doc),
		EvaluateCategory(CategoryCausalChain, spec.CausalChain, doc),
		EvaluateCategory(CategoryNegativeChecks, spec.NegativeChecks, doc),
	}

	return Result{
		Outcome:    OutcomeScored,
		Reward:     Aggregate(spec.Weights, categories),
		Categories: categories,
	}
}

// ForcedZero builds the short-circuit result for runs that cannot be
// scored meaningfully (missing report, degenerate report, malformed
// spec). The reward file still receives a valid 0.00; the outcome keeps
// "never ran" distinguishable from "ran and scored poorly".
func ForcedZero(outcome Outcome) Result {
	return Result{Outcome: outcome, Reward: 0.0}
}
