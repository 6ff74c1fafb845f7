package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/locator-cli/internal/driver"
	"github.com/mj1618/locator-cli/internal/locator"
	"github.com/mj1618/locator-cli/internal/output"
	"github.com/mj1618/locator-cli/internal/uia"
)

// mcpServer wraps the MCP server around one locator session. Tool handlers
// serialize on sessionMu: the engine is built for one caller at a time.
type mcpServer struct {
	session   *driver.Session
	sessionMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	Options   driver.Options
}

// newMCPServer creates and configures an MCP server with the locator tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	p, err := uia.NewProvider()
	if err != nil {
		return nil, err
	}
	session, err := driver.New(p, cfg.Options)
	if err != nil {
		return nil, err
	}

	s := &mcpServer{session: session}
	s.mcp = mcpserver.NewMCPServer(
		"locator-cli",
		"1.0.0",
	)
	s.registerTools()
	return s, nil
}

func (s *mcpServer) close() {
	s.session.Close()
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// snapshot_stats
	s.mcp.AddTool(
		mcp.NewTool("snapshot_stats",
			mcp.WithDescription("Rebuild the accessibility-tree snapshot and return capture statistics (node count, depth, build time)"),
		),
		s.handleSnapshotStats,
	)

	// locate
	s.mcp.AddTool(
		mcp.NewTool("locate",
			mcp.WithDescription("Generate a locator for an element, identified by a screen point or a runtime id"),
			mcp.WithNumber("x", mcp.Description("Screen X coordinate to hit-test")),
			mcp.WithNumber("y", mcp.Description("Screen Y coordinate to hit-test")),
			mcp.WithString("rtid", mcp.Description("Runtime id of a snapshot node (alternative to x/y)")),
		),
		s.handleLocate,
	)

	// eval
	s.mcp.AddTool(
		mcp.NewTool("eval",
			mcp.WithDescription("Evaluate a locator against the current snapshot's document mirror; returns all matches (0 matches is a normal empty result)"),
			mcp.WithString("path", mcp.Description("Locator expression"), mcp.Required()),
		),
		s.handleEval,
	)

	// resolve
	s.mcp.AddTool(
		mcp.NewTool("resolve",
			mcp.WithDescription("Resolve a locator to a live element handle through the full staleness protocol (auto-refresh on stale runtime ids)"),
			mcp.WithString("path", mcp.Description("Locator expression"), mcp.Required()),
		),
		s.handleResolve,
	)
}

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleSnapshotStats(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	start := time.Now()
	if err := s.session.Refresh(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	stats := snapshotStats(s.session.Snapshot(), time.Since(start))
	return mcp.NewToolResultText(resultToText(stats)), nil
}

func (s *mcpServer) handleLocate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x := intParam(params, "x", -1)
	y := intParam(params, "y", -1)
	rtid := stringParam(params, "rtid", "")

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	snap := s.session.Snapshot()
	var result output.LocateResult
	switch {
	case rtid != "":
		rec, _, ok := snap.RecordByRtID(rtid)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("no snapshot node with runtime id %s", rtid)), nil
		}
		result = output.LocateResult{Locator: locator.Generate(snap.Doc, rec.RtID), Node: rec}
	case x >= 0 && y >= 0:
		rec, _, ok := snap.HitTest(x, y)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("no element at (%d,%d)", x, y)), nil
		}
		result = output.LocateResult{Locator: locator.Generate(snap.Doc, rec.RtID), Node: rec}
	default:
		return mcp.NewToolResultError("either rtid or both x and y are required"), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleEval(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	result, err := locator.Eval(s.session.Snapshot().Doc, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.EvalResult{
		Locator: path,
		Count:   result.Count(),
		Matches: result.Matches,
	})), nil
}

func (s *mcpServer) handleResolve(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	el, err := s.session.ElementByLocator(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	node, err := s.session.Resolve(el)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(resolveResult(el, node))), nil
}

// Parameter extraction helpers for MCP argument maps

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that JSON may deliver untyped
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}
