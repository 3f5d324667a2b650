// Package batch grades many report/spec pairs concurrently. Each pair
// is an independent, stateless grading run, so tasks fan out over an
// errgroup worker pool with no shared mutable state beyond the results
// slice (one slot per task).
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"caliper/internal/grade"
	"caliper/internal/groundtruth"
	"caliper/internal/logging"
	"caliper/internal/report"
)

// Task names one report/spec pair and where its reward goes.
type Task struct {
	Name       string
	ReportPath string
	SpecPath   string
	RewardPath string
}

// TaskResult is the outcome of grading one task. Err is set only for
// environment failures (unreadable report, unwritable reward path);
// scoring short-circuits are normal outcomes carried in Result.
type TaskResult struct {
	Task   Task
	Result grade.Result
	Err    error
}

// GradeTask runs the full pipeline for one pair: load spec, validate,
// load report, score, emit. The reward file is written on every path
// that reaches emission, including forced zeros.
func GradeTask(t Task) TaskResult {
	res := TaskResult{Task: t}
	res.Result, res.Err = gradeOne(t)

	if err := report.EmitReward(res.Result.Reward, t.RewardPath); err != nil && res.Err == nil {
		res.Err = err
	}
	return res
}

// gradeOne resolves the pair to a grade.Result, mapping input failures
// to their forced-zero outcomes. The returned error is set only when a
// read failed for environment reasons; the forced zero stands either
// way, so a flaky filesystem never inflates a reward.
func gradeOne(t Task) (grade.Result, error) {
	spec, err := groundtruth.LoadPath(t.SpecPath)
	if err != nil {
		if errors.Is(err, groundtruth.ErrMalformedSpec) {
			return grade.ForcedZero(grade.OutcomeMalformedSpec), nil
		}
		return grade.ForcedZero(grade.OutcomeMissingSpec), nil
	}
	if val := groundtruth.Validate(spec); !val.Valid() {
		return grade.ForcedZero(grade.OutcomeMalformedSpec), nil
	}

	text, err := report.Load(t.ReportPath)
	if err != nil {
		if report.IsGuard(err) {
			return grade.ForcedZero(report.Outcome(err)), nil
		}
		return grade.ForcedZero(grade.OutcomeMissingReport), err
	}

	return grade.Score(text, spec), nil
}

// Discover walks the immediate subdirectories of root and returns one
// task per directory that contains the named spec file. The report may
// be absent; that is a gradable condition (forced zero), not a skip.
func Discover(root, reportName, specName, rewardName string) ([]Task, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read batch root %s: %w", root, err)
	}

	var tasks []Task
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		specPath, ok := findSpec(dir, specName)
		if !ok {
			continue
		}
		tasks = append(tasks, Task{
			Name:       e.Name(),
			ReportPath: filepath.Join(dir, reportName),
			SpecPath:   specPath,
			RewardPath: filepath.Join(dir, rewardName),
		})
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Name < tasks[j].Name })
	return tasks, nil
}

// findSpec resolves the spec file inside a task dir, trying the given
// name first and then the alternate extensions.
func findSpec(dir, specName string) (string, bool) {
	candidates := []string{specName}
	base := specName[:len(specName)-len(filepath.Ext(specName))]
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		candidates = append(candidates, base+ext)
	}
	for _, c := range candidates {
		path := filepath.Join(dir, c)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Run grades all tasks with up to parallel workers. Results come back in
// task order regardless of completion order; a canceled context leaves
// unstarted tasks with ctx.Err recorded.
func Run(ctx context.Context, tasks []Task, parallel int) []TaskResult {
	if parallel < 1 {
		parallel = 1
	}
	logger := logging.New("batch")
	logger.Info("grading batch", "tasks", len(tasks), "workers", parallel)

	results := make([]TaskResult, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = TaskResult{Task: task, Err: err}
				return nil
			}
			results[i] = GradeTask(task)
			r := results[i]
			if r.Err != nil {
				logger.Error("task failed", "task", task.Name, "error", r.Err)
			} else {
				logger.Info("task graded", "task", task.Name,
					"outcome", string(r.Result.Outcome), "reward", r.Result.Reward)
			}
			return nil
		})
	}
	_ = g.Wait() // per-task errors live in TaskResult.Err

	return results
}
