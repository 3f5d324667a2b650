package grade

import "math"

// Aggregate combines the four category ratios into the final reward
// using the ground truth's weight distribution. Weights are applied as
// provided, with no renormalization; misconfigured weights that would
// push the total past 1.0 are clamped, and the result is rounded to two
// decimals for output stability.
func Aggregate(w Weights, categories []CategoryResult) float64 {
	total := 0.0
	for _, c := range categories {
		total += c.Ratio * weightFor(w, c.Name)
	}
	return Round2(Clamp01(total))
}

func weightFor(w Weights, category string) float64 {
	switch category {
	case CategoryRequiredFindings:
		return w.RequiredFindings
	case CategoryFileReferences:
		return w.FileReferences
	case CategoryCausalChain:
		return w.CausalChain
	case CategoryNegativeChecks:
		return w.NegativeChecks
	default:
		return 0
	}
}

// Clamp01 bounds v to [0.0, 1.0].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
