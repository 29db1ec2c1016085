package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/partmatch-mcp/internal/batch"
	"github.com/dshills/partmatch-mcp/internal/classifier"
	"github.com/dshills/partmatch-mcp/internal/provider"
	"github.com/dshills/partmatch-mcp/internal/similarity"
	"github.com/dshills/partmatch-mcp/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "partmatch-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the database
	DefaultDBPath = "~/.partmatch"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp        *server.MCPServer
	storage    storage.Storage
	classifier *classifier.Classifier
	runner     *batch.Runner
}

// NewServer creates a new MCP server instance. rulesDir optionally points at
// a directory of YAML rule datasets loaded alongside the built-in providers.
func NewServer(dbPath, rulesDir string) (*Server, error) {
	// Expand home directory if needed
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".partmatch")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbFile := filepath.Join(dbPath, "partmatch.db")

	store, err := storage.NewSQLiteStorage(dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	providers := provider.Builtin()
	if rulesDir != "" {
		loaded, err := provider.LoadDatasetDir(rulesDir)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to load rule datasets from %s: %w", rulesDir, err)
		}
		providers = append(providers, loaded...)
	}

	// Stored cross-references become an in-memory equivalence set; the
	// scoring path never queries the database.
	xrefs, err := store.ListCrossReferences(context.Background())
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load cross-references: %w", err)
	}
	equivalences := classifier.NewEquivalenceSet()
	for _, x := range xrefs {
		equivalences.Add(x.MPNA, x.MPNB)
	}

	cls, err := classifier.New(classifier.Options{
		Providers: providers,
		CrossRefs: []similarity.CrossRef{equivalences},
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}
	for _, ruleErr := range cls.Report().RuleErrors {
		log.Printf("WARNING: rejected rule: %v", ruleErr)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:        mcpServer,
		storage:    store,
		classifier: cls,
		runner:     batch.New(cls, 0),
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.storage.Close() }()
	return server.ServeStdio(s.mcp)
}

// Close releases the server's storage without serving. Serve closes storage
// itself; Close is for callers that construct a Server and never serve it.
func (s *Server) Close() error {
	return s.storage.Close()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(classifyPartTool(), s.handleClassifyPart)
	s.mcp.AddTool(classifyBatchTool(), s.handleClassifyBatch)
	s.mcp.AddTool(comparePartsTool(), s.handleCompareParts)
	s.mcp.AddTool(listProfilesTool(), s.handleListProfiles)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
	return nil
}
