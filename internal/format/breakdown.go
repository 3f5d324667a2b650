package format

import (
	"strings"

	"caliper/internal/grade"
)

// Breakdown renders the advisory per-category table for one grading
// result: category ratios, per-item hits, and the final reward footer.
func Breakdown(res grade.Result, m Mode) string {
	var b strings.Builder

	cats := NewTable(m)
	cats.Header("Category", "Earned", "Total", "Ratio")
	for _, c := range res.Categories {
		cats.Row(c.Name, FmtScore(c.Earned), FmtScore(c.Total), FmtScore(c.Ratio))
	}
	cats.Footer("reward", "", "", FmtScore(res.Reward))
	cats.AlignRight(2, 3, 4)
	b.WriteString(cats.String())
	b.WriteString("\n")

	items := NewTable(m)
	items.Header("", "Item", "Weight", "Matched")
	for _, c := range res.Categories {
		for _, item := range c.Items {
			items.Row(
				BoolMark(item.Satisfied),
				Truncate(itemLabel(c.Name, item.Description), 60),
				FmtScore(item.Weight),
				Truncate(strings.Join(item.Matched, ", "), 40),
			)
		}
	}
	items.AlignRight(3)
	b.WriteString(items.String())
	b.WriteString("\n")

	return b.String()
}

func itemLabel(category, description string) string {
	if description == "" {
		return category
	}
	return category + ": " + description
}
