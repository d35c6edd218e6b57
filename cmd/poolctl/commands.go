package main

import (
	"context"
	"encoding/json"
	"fmt"
)

type standingsCmd struct{}

func (c *standingsCmd) Run(g *globalCmd, e *env) error {
	ctx := context.Background()
	svc, closeFn, err := e.newService(ctx, g)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	resp, err := svc.Standings(ctx)
	if err != nil {
		return fmt.Errorf("standings: %w", err)
	}
	if g.JSON {
		return writeJSON(e, resp)
	}
	renderStandings(e.out, resp)
	return nil
}

type weekCmd struct {
	Week int `short:"w" help:"Week number. Zero or omitted selects the current week."`
}

func (c *weekCmd) Run(g *globalCmd, e *env) error {
	ctx := context.Background()
	svc, closeFn, err := e.newService(ctx, g)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	var week *int
	if c.Week > 0 {
		week = &c.Week
	}
	resp, err := svc.Week(ctx, week)
	if err != nil {
		return fmt.Errorf("week: %w", err)
	}
	if g.JSON {
		return writeJSON(e, resp)
	}
	renderWeek(e.out, resp)
	return nil
}

type refreshCmd struct{}

func (c *refreshCmd) Run(g *globalCmd, e *env) error {
	ctx := context.Background()
	svc, closeFn, err := e.newService(ctx, g)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	if err := svc.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	_, err = fmt.Fprintln(e.out, "cache refreshed")
	return err
}

func writeJSON(e *env, v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
