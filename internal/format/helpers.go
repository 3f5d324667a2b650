package format

import "fmt"

// FmtScore formats a reward or ratio with the same two-decimal precision
// as the emitted reward file.
func FmtScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FmtPercent formats a ratio in [0,1] as a whole percentage.
func FmtPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
