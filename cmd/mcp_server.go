package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/vedux98/UX-Audit/internal/audit"
	"github.com/vedux98/UX-Audit/internal/figma"
	"github.com/vedux98/UX-Audit/internal/lighthouse"
	"github.com/vedux98/UX-Audit/internal/report"
	"github.com/vedux98/UX-Audit/internal/store"
	"github.com/vedux98/UX-Audit/internal/version"
)

// mcpServer wraps the MCP server with the audit engine, settings store,
// and document cache. Audits serialize on auditMu: the engine itself is
// single-threaded per invocation.
type mcpServer struct {
	store   *store.FileStore
	cache   *mcpDocCache
	auditMu sync.Mutex
	mcp     *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with the audit tools.
func newMCPServer(cfg MCPConfig, st *store.FileStore) (*mcpServer, error) {
	s := &mcpServer{
		store: st,
		cache: newMCPDocCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"uxaudit",
		version.Version,
	)

	s.registerTools()
	return s, nil
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
	// audit_file
	s.mcp.AddTool(
		mcp.NewTool("audit_file",
			mcp.WithDescription("Audit a design document export for accessibility and usability issues. Returns per-category 0-100 scores and a list of issues with remediation advice."),
			mcp.WithString("path", mcp.Description("Path to the document JSON export"), mcp.Required()),
			mcp.WithString("node", mcp.Description("Audit only the node with this ID")),
			mcp.WithString("page", mcp.Description("Audit every frame of the page with this name")),
			mcp.WithString("name", mcp.Description("Audit nodes whose name contains this text")),
		),
		s.handleAuditFile,
	)

	// audit_url
	s.mcp.AddTool(
		mcp.NewTool("audit_url",
			mcp.WithDescription("Audit a live URL through the remote lighthouse-style scoring service. Falls back to a static baseline when no API key is configured or the service is unreachable."),
			mcp.WithString("url", mcp.Description("URL to audit"), mcp.Required()),
		),
		s.handleAuditURL,
	)

	// render_report
	s.mcp.AddTool(
		mcp.NewTool("render_report",
			mcp.WithDescription("Audit a design document and return a rendered report artifact (markdown or html). PDF requests are served with markdown content."),
			mcp.WithString("path", mcp.Description("Path to the document JSON export"), mcp.Required()),
			mcp.WithString("node", mcp.Description("Audit only the node with this ID")),
			mcp.WithString("page", mcp.Description("Audit every frame of the page with this name")),
			mcp.WithString("format", mcp.Description("Export format: markdown, html, pdf (default from settings)")),
		),
		s.handleRenderReport,
	)

	// get_settings
	s.mcp.AddTool(
		mcp.NewTool("get_settings",
			mcp.WithDescription("Return the current audit settings"),
		),
		s.handleGetSettings,
	)

	// save_settings
	s.mcp.AddTool(
		mcp.NewTool("save_settings",
			mcp.WithDescription("Change audit settings and persist the snapshot"),
			mcp.WithBoolean("accessibility", mcp.Description("Enable accessibility checks")),
			mcp.WithBoolean("heuristics", mcp.Description("Enable heuristic checks")),
			mcp.WithBoolean("seo", mcp.Description("Enable SEO scoring (remote audits)")),
			mcp.WithBoolean("performance", mcp.Description("Enable performance scoring (remote audits)")),
			mcp.WithBoolean("includeRemediation", mcp.Description("Attach remediation advice to issues")),
			mcp.WithBoolean("includeScreenshots", mcp.Description("Embed annotated captures in reports")),
			mcp.WithString("exportFormat", mcp.Description("Report format: markdown, html, pdf")),
			mcp.WithString("apiKey", mcp.Description("Remote scoring service API key")),
		),
		s.handleSaveSettings,
	)
}

// resultToText serializes an audit result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *mcpServer) settings() (audit.Settings, error) {
	settings, err := store.LoadSettings(s.store)
	if err != nil {
		return audit.DefaultSettings(), err
	}
	if settings.APIKey == "" {
		settings.APIKey = os.Getenv("UXAUDIT_API_KEY")
	}
	return settings, nil
}

// selection resolves the audit roots for a tool call, mirroring the CLI
// selection flags.
func (s *mcpServer) selection(doc *figma.Document, params map[string]interface{}) ([]*figma.Node, error) {
	if nodeID := stringParam(params, "node", ""); nodeID != "" {
		n := doc.Node(nodeID)
		if n == nil {
			return nil, fmt.Errorf("no node with id %q", nodeID)
		}
		return []*figma.Node{n}, nil
	}
	if nameFilter := stringParam(params, "name", ""); nameFilter != "" {
		var selection []*figma.Node
		for _, n := range doc.FindByName(nameFilter) {
			if figma.IsAuditRoot(n) {
				selection = append(selection, n)
			}
		}
		if len(selection) == 0 {
			return nil, fmt.Errorf("no auditable node named like %q", nameFilter)
		}
		return selection, nil
	}

	var page *figma.Node
	if pageName := stringParam(params, "page", ""); pageName != "" {
		page = doc.Page(pageName)
		if page == nil {
			return nil, fmt.Errorf("no page named %q", pageName)
		}
	} else {
		pages := doc.Pages()
		if len(pages) == 0 {
			return nil, fmt.Errorf("document has no pages")
		}
		page = pages[0]
	}
	selection := figma.FrameRoots(page)
	if len(selection) == 0 {
		return nil, fmt.Errorf("page %q has no auditable frames", page.Name)
	}
	return selection, nil
}

func (s *mcpServer) handleAuditFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	settings, err := s.settings()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.cache.parse(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	selection, err := s.selection(doc, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.auditMu.Lock()
	result, err := audit.New(log).Audit(selection, settings)
	s.auditMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleAuditURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target := stringParam(params, "url", "")
	if target == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	settings, err := s.settings()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client := lighthouse.NewClient(log)
	result, err := client.Audit(ctx, target, settings)
	if err != nil {
		if !lighthouse.IsTransport(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		log.WithError(err).Warn("remote audit failed, using baseline result")
		result = lighthouse.Fallback(settings)
	}

	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleRenderReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	settings, err := s.settings()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if format := stringParam(params, "format", ""); format != "" {
		ef := audit.ExportFormat(format)
		if !ef.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unsupported export format: %s", format)), nil
		}
		settings.ExportFormat = ef
	}

	doc, err := s.cache.parse(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	selection, err := s.selection(doc, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.auditMu.Lock()
	result, err := audit.New(log).Audit(selection, settings)
	s.auditMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artifact, err := report.Render(result, displayNames(selection), settings, nil)
	if err != nil && !errors.Is(err, report.ErrPDFNotImplemented) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text := string(artifact.Content)
	if errors.Is(err, report.ErrPDFNotImplemented) {
		text = "NOTE: pdf export is not implemented yet; markdown content follows.\n\n" + text
	}
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleGetSettings(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	settings, err := s.settings()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(settings)), nil
}

func (s *mcpServer) handleSaveSettings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	settings, err := store.LoadSettings(s.store)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	settings.Accessibility = boolParam(params, "accessibility", settings.Accessibility)
	settings.Heuristics = boolParam(params, "heuristics", settings.Heuristics)
	settings.SEO = boolParam(params, "seo", settings.SEO)
	settings.Performance = boolParam(params, "performance", settings.Performance)
	settings.IncludeRemediation = boolParam(params, "includeRemediation", settings.IncludeRemediation)
	settings.IncludeScreenshots = boolParam(params, "includeScreenshots", settings.IncludeScreenshots)
	if format := stringParam(params, "exportFormat", ""); format != "" {
		ef := audit.ExportFormat(format)
		if !ef.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unsupported export format: %s", format)), nil
		}
		settings.ExportFormat = ef
	}
	if key, ok := params["apiKey"].(string); ok {
		settings.APIKey = key
	}

	if err := store.SaveSettings(s.store, settings); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(settings)), nil
}
