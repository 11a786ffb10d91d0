package server

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/output"
	"github.com/sessionctl/sessionctl/internal/platform"
	"github.com/sessionctl/sessionctl/internal/session"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// toolResult is the YAML body returned by the session tools.
type toolResult struct {
	OK       bool                  `yaml:"ok"`
	Action   string                `yaml:"action"`
	DryRun   bool                  `yaml:"dry_run,omitempty"`
	Output   string                `yaml:"output,omitempty"`
	Saved    []output.SessionEntry `yaml:"saved,omitempty"`
	Launched []output.SessionEntry `yaml:"launched,omitempty"`
	Moved    []output.SessionEntry `yaml:"moved,omitempty"`
	Skipped  []output.SessionEntry `yaml:"skipped,omitempty"`
	Error    string                `yaml:"error,omitempty"`
}

// resultToText serializes a toolResult to YAML for the MCP response.
func resultToText(result toolResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", result.OK, result.Action, result.Error)
	}
	return string(b)
}

func entries(records []model.WindowRecord) []output.SessionEntry {
	var out []output.SessionEntry
	for _, r := range records {
		out = append(out, output.SessionEntryFrom(r))
	}
	return out
}

// runPipeline locks the provider, runs fn against a fresh session manager and
// renders the outcome. Mutating runs invalidate the window cache.
func (s *Server) runPipeline(
	request mcp.CallToolRequest,
	action string,
	mutates bool,
	fn func(*session.Manager, *toolResult) error,
) (*mcp.CallToolResult, error) {
	dryRun := boolParam(request.GetArguments(), "dry_run", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	var out bytes.Buffer
	result := toolResult{Action: action, DryRun: dryRun}
	err := fn(s.manager(&out, dryRun), &result)
	result.Output = out.String()

	if mutates && !dryRun {
		s.cache.InvalidateAll()
	}
	if err != nil {
		s.log.Warn("tool failed", zap.String("tool", action), zap.Error(err))
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleListWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := boolParam(request.GetArguments(), "all", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.cache.ListWindows(ctx, s.provider.Reader, platform.ListOptions{All: all})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := yaml.Marshal(output.WindowEntries(windows, s.provider.Processes.CommandLine))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleSaveSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runPipeline(request, "save", false, func(m *session.Manager, r *toolResult) error {
		snap, err := m.Capture(ctx)
		if err != nil {
			return err
		}
		r.Saved = output.SessionEntries(snap)
		return nil
	})
}

func (s *Server) handleRestoreSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runPipeline(request, "restore", true, func(m *session.Manager, r *toolResult) error {
		report, err := m.Restore(ctx)
		r.Launched = entries(report.Launched)
		r.Skipped = entries(report.Skipped)
		return err
	})
}

func (s *Server) handleMoveWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runPipeline(request, "move", true, func(m *session.Manager, r *toolResult) error {
		report, err := m.Reposition(ctx)
		r.Moved = entries(report.Moved)
		r.Skipped = entries(report.Skipped)
		return err
	})
}

func (s *Server) handleShowSession(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runPipeline(request, "show", false, func(m *session.Manager, r *toolResult) error {
		snap, err := m.Load()
		if err != nil {
			return err
		}
		r.Saved = output.SessionEntries(snap)
		return nil
	})
}
