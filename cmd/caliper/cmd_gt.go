package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"caliper/internal/format"
	"caliper/internal/grade"
	"caliper/internal/groundtruth"
)

var gtDataDir string

var gtCmd = &cobra.Command{
	Use:   "gt",
	Short: "Ground-truth spec management",
	Long:  "Manage ground-truth specs: list, inspect, validate.",
}

var gtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List specs in the data directory and the embedded examples",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := groundtruth.NewFileStore(gtDataDir)
		names, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Printf("No specs found in %s\n", gtDataDir)
		} else {
			fmt.Printf("Specs in %s:\n", gtDataDir)
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
		}
		fmt.Println("Embedded examples:")
		for _, n := range groundtruth.ListExamples() {
			fmt.Printf("  %s\n", n)
		}
		return nil
	},
}

var gtStatusCmd = &cobra.Command{
	Use:   "status <spec>",
	Short: "Show one spec's categories, item counts, and weights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpecByName(cmd, args[0])
		if err != nil {
			return err
		}

		weights := map[string]float64{
			grade.CategoryRequiredFindings: spec.Weights.RequiredFindings,
			grade.CategoryFileReferences:   spec.Weights.FileReferences,
			grade.CategoryCausalChain:      spec.Weights.CausalChain,
			grade.CategoryNegativeChecks:   spec.Weights.NegativeChecks,
		}

		checks := groundtruth.Check(spec)
		ready := 0
		tb := format.NewTable(format.ASCII)
		tb.Header("Category", "Items", "Weight", "Coverage", "Ready")
		for _, c := range checks {
			if c.Ready {
				ready++
			}
			tb.Row(c.Category, c.Items, format.FmtScore(weights[c.Category]),
				format.FmtPercent(c.Coverage), format.BoolMark(c.Ready))
		}
		tb.AlignRight(2, 3, 4)

		if spec.Name != "" {
			fmt.Printf("Spec: %s\n", spec.Name)
		}
		if spec.Description != "" {
			fmt.Println(spec.Description)
		}
		fmt.Println(tb.String())

		for _, c := range checks {
			for _, m := range c.Missing {
				fmt.Printf("  missing %s\n", m)
			}
		}
		fmt.Printf("\nTotal: %d categories, %d ready, %d need work\n",
			len(checks), ready, len(checks)-ready)

		v := groundtruth.Validate(spec)
		for _, w := range v.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		if !v.Valid() {
			for _, viol := range v.Violations {
				fmt.Printf("INVALID %s: %s\n", viol.Field, viol.Message)
			}
		}
		return nil
	},
}

var gtValidateCmd = &cobra.Command{
	Use:   "validate <spec>",
	Short: "Validate a spec and exit non-zero on violations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpecByName(cmd, args[0])
		if err != nil {
			return err
		}

		v := groundtruth.Validate(spec)
		for _, w := range v.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		if err := v.Err(); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

// loadSpecByName resolves a positional spec argument: an explicit file
// path wins, then the data directory, then the embedded examples.
func loadSpecByName(cmd *cobra.Command, name string) (*grade.Spec, error) {
	if spec, err := groundtruth.LoadPath(name); err == nil {
		return spec, nil
	}
	store := groundtruth.NewFileStore(gtDataDir)
	if spec, err := store.Load(cmd.Context(), name); err == nil {
		return spec, nil
	}
	return groundtruth.LoadExample(name)
}

func init() {
	gtCmd.PersistentFlags().StringVar(&gtDataDir, "data-dir", "specs", "Directory for ground-truth spec files")
	gtCmd.AddCommand(gtListCmd)
	gtCmd.AddCommand(gtStatusCmd)
	gtCmd.AddCommand(gtValidateCmd)
}
