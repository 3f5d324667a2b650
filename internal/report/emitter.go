package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"caliper/internal/grade"
)

// EmitReward writes the reward as a fixed two-decimal string to dest,
// creating parent directories as needed. This file is the sole
// contractual output of a grading run: it must exist and hold a valid
// number even when scoring short-circuited, so downstream tooling never
// has to distinguish "no file" from "zero".
func EmitReward(reward float64, dest string) error {
	if dir := filepath.Dir(dest); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create reward dir: %w", err)
		}
	}
	content := fmt.Sprintf("%.2f\n", reward)
	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write reward %s: %w", dest, err)
	}
	return nil
}

// EmitBreakdown writes the advisory per-category breakdown as indented
// JSON next to the reward. Downstream consumers must never depend on it;
// a write failure here is reported but does not invalidate the reward.
func EmitBreakdown(res grade.Result, dest string) error {
	if dir := filepath.Dir(dest); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create breakdown dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	if err := os.WriteFile(dest, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write breakdown %s: %w", dest, err)
	}
	return nil
}
