package mcp

import (
	"context"
	"encoding/json"
	"time"

	"agendas-mcp/internal/dataset"
	"agendas-mcp/internal/observability/metrics"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Version is reported to MCP clients during initialization.
var Version = "0.1.0"

// Options tunes the server.
type Options struct {
	EnableMermaidCharts bool
	Metrics             *metrics.DashboardMetrics
}

// Server exposes the dashboard aggregates as MCP tools.
type Server struct {
	store  *dataset.Store
	opts   Options
	server *sdk.Server
}

// NewServer creates a new MCP server over store.
func NewServer(store *dataset.Store, opts Options) *Server {
	s := &Server{
		store: store,
		opts:  opts,
		server: sdk.NewServer(&sdk.Implementation{
			Name:    "agendas-mcp",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Serve runs the MCP protocol over stdio until the client disconnects or ctx ends.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().Str("version", Version).Msg("Starting MCP server on stdio")
	return s.server.Run(ctx, &sdk.StdioTransport{})
}

// Connect serves one session over an arbitrary transport.
func (s *Server) Connect(ctx context.Context, t sdk.Transport) (*sdk.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

func (s *Server) observe(view string, start time.Time) {
	s.opts.Metrics.ObserveCompute("mcp", view, time.Since(start).Seconds())
}

func (s *Server) formatResult(data any) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

// textResult renders data as indented JSON followed by any extra blocks, such as charts.
func (s *Server) textResult(data any, extra ...string) *sdk.CallToolResult {
	content := []sdk.Content{&sdk.TextContent{Text: s.formatResult(data)}}
	for _, e := range extra {
		if e != "" {
			content = append(content, &sdk.TextContent{Text: e})
		}
	}
	return &sdk.CallToolResult{Content: content}
}
