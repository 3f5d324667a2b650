package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"caliper/internal/batch"
	"caliper/internal/format"
)

var batchFlags struct {
	dir           string
	parallel      int
	reportName    string
	specName      string
	outName       string
	breakdownName string
	outFormat     string
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Grade every report/spec pair under a directory",
	Long: `Batch walks the immediate subdirectories of --dir and grades each one
that contains a ground-truth spec. Pairs are independent, so they fan
out over --parallel workers. A summary table goes to stdout; every task
gets its reward file regardless of outcome.`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVarP(&batchFlags.dir, "dir", "d", ".", "Root directory of task subdirectories")
	f.IntVarP(&batchFlags.parallel, "parallel", "p", 4, "Number of parallel grading workers")
	f.StringVar(&batchFlags.reportName, "report-name", "report.md", "Report filename inside each task dir")
	f.StringVar(&batchFlags.specName, "spec-name", "ground_truth.json", "Spec filename inside each task dir (alternate extensions are tried)")
	f.StringVar(&batchFlags.outName, "out-name", "reward.txt", "Reward filename written inside each task dir")
	f.StringVar(&batchFlags.breakdownName, "breakdown-name", "", "If set, write a JSON breakdown with this filename per task")
	f.StringVar(&batchFlags.outFormat, "format", "ascii", "Summary table format (ascii, markdown)")
}

func runBatch(cmd *cobra.Command, _ []string) error {
	tasks, err := batch.Discover(batchFlags.dir, batchFlags.reportName, batchFlags.specName, batchFlags.outName)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no task directories with %s found under %s", batchFlags.specName, batchFlags.dir)
	}

	results := batch.Run(cmd.Context(), tasks, batchFlags.parallel)

	var failed int
	tb := format.NewTable(format.ParseMode(batchFlags.outFormat))
	tb.Header("Task", "Outcome", "Reward")
	var sum float64
	for _, r := range results {
		if r.Err != nil {
			failed++
			tb.Row(r.Task.Name, "error: "+r.Err.Error(), "-")
			continue
		}
		tb.Row(r.Task.Name, string(r.Result.Outcome), format.FmtScore(r.Result.Reward))
		sum += r.Result.Reward

		if batchFlags.breakdownName != "" {
			dest := filepath.Join(filepath.Dir(r.Task.RewardPath), batchFlags.breakdownName)
			if err := emitBreakdownFile(r, dest); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "write breakdown for %s: %v\n", r.Task.Name, err)
			}
		}
	}
	tb.Footer("mean", "", format.FmtScore(sum/float64(len(results))))
	tb.AlignRight(3)
	fmt.Println(tb.String())

	if failed > 0 {
		return fmt.Errorf("%d of %d tasks failed to emit", failed, len(results))
	}
	return nil
}
