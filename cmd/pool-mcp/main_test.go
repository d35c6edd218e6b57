package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPool struct {
	err   error
	weeks []*int
}

func (s *stubPool) StandingsJSON(context.Context) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(`{"season":2024,"standings":[]}`), nil
}

func (s *stubPool) WeekJSON(_ context.Context, week *int) (json.RawMessage, error) {
	s.weeks = append(s.weeks, week)
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(`{"season":2024,"week":1,"games":[]}`), nil
}

func connect(t *testing.T, svc poolService) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	_, err := newServer(svc).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestToolsAreListed(t *testing.T) {
	session := connect(t, &stubPool{})
	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"pool_standings", "pool_week"}, names)
}

func TestStandingsTool(t *testing.T) {
	session := connect(t, &stubPool{})
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "pool_standings", Arguments: map[string]any{}})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"season":2024,"standings":[]}`, textOf(t, res))
}

func TestWeekToolMapsZeroToCurrentWeek(t *testing.T) {
	svc := &stubPool{}
	session := connect(t, svc)

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "pool_week", Arguments: map[string]any{"week": 4}})
	require.NoError(t, err)
	_, err = session.CallTool(context.Background(), &mcp.CallToolParams{Name: "pool_week", Arguments: map[string]any{}})
	require.NoError(t, err)

	require.Len(t, svc.weeks, 2)
	require.NotNil(t, svc.weeks[0])
	assert.Equal(t, 4, *svc.weeks[0])
	assert.Nil(t, svc.weeks[1])
}

func TestToolErrorsAreReportedInResult(t *testing.T) {
	res, _, err := toolJSON(nil, errors.New("upstream fetch failed"))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "error: upstream fetch failed", textOf(t, res))
}
