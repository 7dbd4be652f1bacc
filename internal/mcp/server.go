package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"glpi-insights/internal/config"
	"glpi-insights/internal/ingest"
	"glpi-insights/internal/session"
	"glpi-insights/internal/ticket"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// ServerName identifies the tool server to MCP clients.
const ServerName = "glpi-insights"

// Server holds the state for the MCP server. A single user drives it, so one
// mutex serializes every tool call.
type Server struct {
	mu     sync.Mutex
	cfg    *config.AppConfig
	loader *ingest.Loader
	now    func() time.Time

	state session.State
	snap  *ticket.Snapshot
}

// NewServer creates a new MCP server reading tickets through loader.
func NewServer(cfg *config.AppConfig, loader *ingest.Loader) *Server {
	return &Server{
		cfg:    cfg,
		loader: loader,
		now:    time.Now,
		state:  session.New(),
	}
}

// Handler builds the MCP server with every tool registered.
func (s *Server) Handler(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil)
	s.registerTools(server)
	return server
}

// Start runs the stdio loop until the client disconnects or ctx is cancelled.
func (s *Server) Start(ctx context.Context, version string) error {
	log.Info().Str("session", s.state.ID).Msg("MCP Server starting Stdio loop")
	if err := s.Handler(version).Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}

// call adapts a handler to the SDK: the result is returned as JSON text content
// and handler errors become tool errors.
func call(name string, fn func() (interface{}, error)) (*mcp.CallToolResult, any, error) {
	res, err := fn()
	if err != nil {
		log.Warn().Err(err).Str("tool", name).Msg("Tool call failed")
		return nil, nil, err
	}
	out, err := json.Marshal(res)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode %s result: %w", name, err)
	}
	log.Debug().Str("tool", name).Int("bytes", len(out)).Msg("Tool call completed")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(out)}},
	}, nil, nil
}
