package grade

// Policy selects the matching semantics applied to a checklist item.
type Policy int

const (
	// MatchAny credits an item when at least one pattern is found.
	MatchAny Policy = iota
	// MatchAll credits an item only when every pattern is found.
	MatchAll
	// MatchNone credits an item when no pattern is found (negative check).
	MatchNone
)

// policyFor maps a category name to its matching policy.
func policyFor(category string) Policy {
	switch category {
	case CategoryCausalChain:
		return MatchAll
	case CategoryNegativeChecks:
		return MatchNone
	default:
		return MatchAny
	}
}

// EvaluateCategory applies one policy across a category's weighted items
// and returns the earned/total ratio with the per-item breakdown.
//
// A zero-total category is vacuous: negative checks are trivially clean
// (ratio 1.0), every other category has nothing to credit (ratio 0.0).
func EvaluateCategory(name string, items []ChecklistItem, doc Document) CategoryResult {
	policy := policyFor(name)
	res := CategoryResult{Name: name, Items: make([]ItemResult, 0, len(items))}

	for _, item := range items {
		satisfied, matched := evaluateItem(item, policy, doc)
		res.Total += item.Weight
		if satisfied {
			res.Earned += item.Weight
		}
		res.Items = append(res.Items, ItemResult{
			Description: item.Description,
			Weight:      item.Weight,
			Satisfied:   satisfied,
			Matched:     matched,
		})
	}

	if res.Total > 0 {
		res.Ratio = res.Earned / res.Total
	} else if policy == MatchNone {
		res.Ratio = 1.0
	}
	return res
}

// evaluateItem returns whether one item is satisfied under the policy,
// plus the patterns that were found in the report (advisory; for
// negative checks these are the violations).
func evaluateItem(item ChecklistItem, policy Policy, doc Document) (bool, []string) {
	var found []string
	for _, raw := range item.Patterns {
		if CompilePattern(raw).Matches(doc) {
			found = append(found, raw)
		}
	}

	switch policy {
	case MatchAll:
		// An item with no patterns asserts nothing and earns nothing.
		return len(item.Patterns) > 0 && len(found) == len(item.Patterns), found
	case MatchNone:
		return len(found) == 0, found
	default:
		return len(found) > 0, found
	}
}
