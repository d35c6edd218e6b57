package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/nfl-pool-service/internal/config"
	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
	"github.com/preston-bernstein/nfl-pool-service/internal/server"
)

const appVersion = "dev"

// StandingsArgs is the input schema for the pool_standings tool.
type StandingsArgs struct{}

// WeekArgs is the input schema for the pool_week tool.
type WeekArgs struct {
	Week int `json:"week,omitempty" jsonschema:"Week number (0 = current week)"`
}

// poolService produces the encoded standings and week payloads.
type poolService interface {
	StandingsJSON(ctx context.Context) (json.RawMessage, error)
	WeekJSON(ctx context.Context, week *int) (json.RawMessage, error)
}

func newServer(svc poolService) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "nfl-pool-mcp",
			Version: appVersion,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pool_standings",
		Description: "Season standings: each owner's total wins and per-team wins, plus unowned teams",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args StandingsArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(svc.StandingsJSON(ctx))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pool_week",
		Description: "Game grid for one week with the owner of each side and of the winner",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WeekArgs) (*mcp.CallToolResult, any, error) {
		var week *int
		if args.Week > 0 {
			week = &args.Week
		}
		return toolJSON(svc.WeekJSON(ctx, week))
	})

	return server
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// stdout carries the MCP stream; logs go to stderr.
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "nfl-pool-mcp",
		Version: appVersion,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeFn, err := server.NewPoolService(ctx, cfg, logger, metrics.NewRecorder())
	if err != nil {
		logger.Error("pool service setup failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = closeFn() }()

	if err := newServer(svc).Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("mcp server stopped", "error", err)
	}
}
