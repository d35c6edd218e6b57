package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/preston-bernstein/nfl-pool-service/internal/app/pool"
	"github.com/preston-bernstein/nfl-pool-service/internal/config"
	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
	"github.com/preston-bernstein/nfl-pool-service/internal/server"
)

type globalCmd struct {
	EnvFile string `help:"Dotenv file loaded before the environment." default:".env" type:"path"`
	JSON    bool   `help:"Print the raw JSON payload instead of a table."`
	Verbose bool   `short:"v" help:"Log provider and cache activity to stderr."`
}

type cli struct {
	globalCmd

	Standings standingsCmd `cmd:"" help:"Print season standings by owner."`
	Week      weekCmd      `cmd:"" help:"Print the game grid for a week."`
	Refresh   refreshCmd   `cmd:"" help:"Recompute and overwrite the cached standings and current week."`
}

// poolService is the slice of pool.Service the commands use.
type poolService interface {
	Standings(ctx context.Context) (pool.StandingsResponse, error)
	Week(ctx context.Context, week *int) (pool.WeekResponse, error)
	Refresh(ctx context.Context) error
}

// env carries the output stream and service constructor into command Run methods.
type env struct {
	out        io.Writer
	newService func(ctx context.Context, g *globalCmd) (poolService, func() error, error)
}

func loadService(ctx context.Context, g *globalCmd) (poolService, func() error, error) {
	cfg, err := config.LoadFiles(g.EnvFile)
	if err != nil {
		return nil, nil, err
	}
	level := "error"
	if g.Verbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{Level: level, Format: "text", Output: os.Stderr})
	svc, closeFn, err := server.NewPoolService(ctx, cfg, logger, metrics.NewRecorder())
	if err != nil {
		return nil, nil, err
	}
	return svc, closeFn, nil
}

func run(args []string, e *env, opts ...kong.Option) error {
	var spec cli
	opts = append([]kong.Option{
		kong.Name("poolctl"),
		kong.Description("Query the NFL pool standings and weekly game grid."),
		kong.UsageOnError(),
	}, opts...)
	parser, err := kong.New(&spec, opts...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&spec.globalCmd, e)
}

func main() {
	if err := run(os.Args[1:], &env{out: os.Stdout, newService: loadService}); err != nil {
		fmt.Fprintln(os.Stderr, "poolctl:", err)
		os.Exit(1)
	}
}
