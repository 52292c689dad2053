package mcp

import (
	"github.com/ajikko/aji/api"
	"github.com/ajikko/aji/config"
	"github.com/ajikko/aji/favorites"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for aji
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer("aji", api.Version)

	client := api.NewClient(cfg.BaseURL, cfg.APIKey)
	store := favorites.NewStore(cfg.FavoritesPath)
	registerTools(s, client, store)

	return &Server{
		server: s,
	}, nil
}

// Run starts the MCP server
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, client *api.Client, store *favorites.Store) {
	s.AddTools(InitTools(client, store)...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
