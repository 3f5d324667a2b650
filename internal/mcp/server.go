// Package mcp exposes the grading engine as MCP tools over stdio, so an
// agent harness can score reports without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"

	"caliper/internal/grade"
	"caliper/internal/groundtruth"
	"caliper/internal/logging"
	"caliper/internal/report"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server. Grading is stateless: every tool call
// carries its own inputs and no session survives between calls.
type Server struct {
	MCPServer *sdkmcp.Server

	// SpecDir is the ground-truth store directory for name-based lookups.
	// Empty means only embedded example specs resolve by name.
	SpecDir string
}

// NewServer creates an MCP server with the grading tools registered.
func NewServer(specDir string) *Server {
	s := &Server{SpecDir: specDir}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "caliper", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "grade_report",
		Description: "Grade a free-text report against a ground-truth spec. Returns the reward in [0.0, 1.0] and the per-category breakdown. Optionally writes the reward file.",
	}, s.handleGradeReport)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "validate_spec",
		Description: "Validate a ground-truth spec: pattern lists, weights, weight-sum drift. Returns violations and warnings.",
	}, s.handleValidateSpec)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_specs",
		Description: "List ground-truth specs available in the configured store directory plus the embedded examples.",
	}, s.handleListSpecs)
}

// --- Tool input/output types ---

type gradeReportInput struct {
	ReportText string `json:"report_text,omitempty" jsonschema:"report text to grade (mutually exclusive with report_path)"`
	ReportPath string `json:"report_path,omitempty" jsonschema:"path to the report file"`
	SpecPath   string `json:"spec_path,omitempty" jsonschema:"path to the ground-truth spec (json or yaml)"`
	SpecName   string `json:"spec_name,omitempty" jsonschema:"spec name in the store directory or an embedded example"`
	RewardPath string `json:"reward_path,omitempty" jsonschema:"if set, the reward file is written here"`
}

type categoryOutput struct {
	Name   string  `json:"name"`
	Earned float64 `json:"earned"`
	Total  float64 `json:"total"`
	Ratio  float64 `json:"ratio"`
}

type gradeReportOutput struct {
	Outcome    string           `json:"outcome"`
	Reward     float64          `json:"reward"`
	Categories []categoryOutput `json:"categories,omitempty"`
}

type validateSpecInput struct {
	SpecPath string `json:"spec_path,omitempty" jsonschema:"path to the ground-truth spec (json or yaml)"`
	SpecName string `json:"spec_name,omitempty" jsonschema:"spec name in the store directory or an embedded example"`
}

type validateSpecOutput struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

type listSpecsInput struct{}

type listSpecsOutput struct {
	Store    []string `json:"store,omitempty"`
	Examples []string `json:"examples"`
}

// --- Tool handlers ---

func (s *Server) handleGradeReport(ctx context.Context, _ *sdkmcp.CallToolRequest, input gradeReportInput) (*sdkmcp.CallToolResult, gradeReportOutput, error) {
	logger := logging.New("mcp")

	spec, err := s.resolveSpec(ctx, input.SpecPath, input.SpecName)
	if err != nil {
		return nil, gradeReportOutput{}, err
	}

	var res grade.Result
	switch {
	case input.ReportText != "":
		if len(input.ReportText) < report.MinReportBytes {
			res = grade.ForcedZero(grade.OutcomeTooShort)
		} else {
			res = grade.Score(input.ReportText, spec)
		}
	case input.ReportPath != "":
		text, loadErr := report.Load(input.ReportPath)
		switch {
		case loadErr == nil:
			res = grade.Score(text, spec)
		case report.IsGuard(loadErr):
			res = grade.ForcedZero(report.Outcome(loadErr))
		default:
			return nil, gradeReportOutput{}, fmt.Errorf("read report: %w", loadErr)
		}
	default:
		return nil, gradeReportOutput{}, fmt.Errorf("one of report_text or report_path is required")
	}

	if input.RewardPath != "" {
		if err := report.EmitReward(res.Reward, input.RewardPath); err != nil {
			return nil, gradeReportOutput{}, fmt.Errorf("emit reward: %w", err)
		}
	}

	logger.Info("graded report", "outcome", res.Outcome, "reward", res.Reward)

	out := gradeReportOutput{Outcome: string(res.Outcome), Reward: res.Reward}
	for _, c := range res.Categories {
		out.Categories = append(out.Categories, categoryOutput{
			Name: c.Name, Earned: c.Earned, Total: c.Total, Ratio: c.Ratio,
		})
	}
	return nil, out, nil
}

func (s *Server) handleValidateSpec(ctx context.Context, _ *sdkmcp.CallToolRequest, input validateSpecInput) (*sdkmcp.CallToolResult, validateSpecOutput, error) {
	spec, err := s.resolveSpec(ctx, input.SpecPath, input.SpecName)
	if err != nil {
		return nil, validateSpecOutput{}, err
	}

	v := groundtruth.Validate(spec)
	out := validateSpecOutput{Valid: v.Valid()}
	for _, viol := range v.Violations {
		out.Violations = append(out.Violations, viol.Field+": "+viol.Message)
	}
	out.Warnings = append(out.Warnings, v.Warnings...)
	return nil, out, nil
}

func (s *Server) handleListSpecs(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listSpecsInput) (*sdkmcp.CallToolResult, listSpecsOutput, error) {
	out := listSpecsOutput{Examples: groundtruth.ListExamples()}
	if s.SpecDir != "" {
		store := &groundtruth.FileStore{Dir: s.SpecDir}
		names, err := store.List(ctx)
		if err != nil {
			return nil, listSpecsOutput{}, fmt.Errorf("list specs: %w", err)
		}
		out.Store = names
	}
	return nil, out, nil
}

// resolveSpec loads a spec from an explicit path, the store directory, or
// the embedded examples, in that order of precedence.
func (s *Server) resolveSpec(ctx context.Context, path, name string) (*grade.Spec, error) {
	switch {
	case path != "":
		return groundtruth.LoadPath(path)
	case name != "":
		if s.SpecDir != "" {
			store := &groundtruth.FileStore{Dir: s.SpecDir}
			if spec, err := store.Load(ctx, name); err == nil {
				return spec, nil
			}
		}
		return groundtruth.LoadExample(name)
	default:
		return nil, fmt.Errorf("one of spec_path or spec_name is required")
	}
}
