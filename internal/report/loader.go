// Package report handles the two file boundaries of a grading run: the
// agent report on the way in and the reward file on the way out.
package report

import (
	"errors"
	"fmt"
	"os"

	"caliper/internal/grade"
)

// MinReportBytes is the minimum report size treated as meaningful
// content. Anything below this is graded as if the producing agent never
// wrote a report.
const MinReportBytes = 50

var (
	// ErrMissingReport means the report file does not exist at the
	// expected path: the producing process never completed its task.
	ErrMissingReport = errors.New("report file missing")

	// ErrTooShort means the report exists but is below MinReportBytes.
	ErrTooShort = errors.New("report below minimum size")
)

// Load reads the report at path, enforcing the presence and minimum-size
// guards. Case folding is deferred to the pattern matcher; the raw text
// is returned as-is.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissingReport, path)
		}
		return "", fmt.Errorf("read report %s: %w", path, err)
	}
	if len(data) < MinReportBytes {
		return "", fmt.Errorf("%w: %d bytes < %d", ErrTooShort, len(data), MinReportBytes)
	}
	return string(data), nil
}

// IsGuard reports whether err is one of the report guard conditions
// (absent or undersized file) rather than an environment failure such
// as a permission error.
func IsGuard(err error) bool {
	return errors.Is(err, ErrMissingReport) || errors.Is(err, ErrTooShort)
}

// Outcome maps a report guard error to the forced-zero grading outcome
// it corresponds to.
func Outcome(err error) grade.Outcome {
	if errors.Is(err, ErrTooShort) {
		return grade.OutcomeTooShort
	}
	return grade.OutcomeMissingReport
}
