package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"caliper/internal/batch"
	"caliper/internal/format"
	"caliper/internal/report"
)

var gradeFlags struct {
	reportPath string
	specPath   string
	out        string
	breakdown  bool
	outFormat  string
}

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade one report against one ground-truth spec",
	Long: `Grade loads the ground-truth spec and the report, scores the report,
and writes the reward file. A missing or too-short report is a forced
zero, not an error: the reward file is written either way.`,
	RunE: runGrade,
}

func init() {
	f := gradeCmd.Flags()
	f.StringVar(&gradeFlags.reportPath, "report", "", "Path to the report file (required)")
	f.StringVar(&gradeFlags.specPath, "spec", "", "Path to the ground-truth spec, JSON or YAML (required)")
	f.StringVarP(&gradeFlags.out, "out", "o", "reward.txt", "Reward file path")
	f.BoolVar(&gradeFlags.breakdown, "breakdown", false, "Print the per-category breakdown")
	f.StringVar(&gradeFlags.outFormat, "format", "ascii", "Breakdown format (ascii, markdown)")
	_ = gradeCmd.MarkFlagRequired("report")
	_ = gradeCmd.MarkFlagRequired("spec")
}

func runGrade(cmd *cobra.Command, _ []string) error {
	res := batch.GradeTask(batch.Task{
		Name:       "grade",
		ReportPath: gradeFlags.reportPath,
		SpecPath:   gradeFlags.specPath,
		RewardPath: gradeFlags.out,
	})
	if res.Err != nil {
		return res.Err
	}

	fmt.Printf("%s (%s)\n", format.FmtScore(res.Result.Reward), res.Result.Outcome)
	if gradeFlags.breakdown && len(res.Result.Categories) > 0 {
		fmt.Println()
		fmt.Print(format.Breakdown(res.Result, format.ParseMode(gradeFlags.outFormat)))
	}
	return nil
}

// emitBreakdownFile writes the advisory JSON breakdown next to the reward
// when requested by batch mode.
func emitBreakdownFile(res batch.TaskResult, dest string) error {
	if dest == "" {
		return nil
	}
	return report.EmitBreakdown(res.Result, dest)
}
