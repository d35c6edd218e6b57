package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
)

type scriptedProvider struct {
	calendarErr error
	matchupsErr error
	calls       int
}

func (s *scriptedProvider) Calendar(ctx context.Context) (Calendar, error) {
	s.calls++
	if s.calendarErr != nil {
		return Calendar{}, s.calendarErr
	}
	week := 3
	return Calendar{Entries: []CalendarEntry{{Label: "1"}}, CurrentWeek: &week}, nil
}

func (s *scriptedProvider) Matchups(ctx context.Context, start, end time.Time) ([]Matchup, error) {
	s.calls++
	if s.matchupsErr != nil {
		return nil, s.matchupsErr
	}
	return []Matchup{{Away: &Competitor{Abbreviation: "BUF"}}}, nil
}

func TestInstrumentedProviderRecordsSuccess(t *testing.T) {
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(&scriptedProvider{}, nil, rec, "espn")

	cal, err := p.Calendar(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cal.CurrentWeek == nil || *cal.CurrentWeek != 3 {
		t.Fatalf("expected calendar passthrough, got %+v", cal)
	}
	if _, err := p.Matchups(context.Background(), time.Time{}, time.Time{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if rec.ProviderCalls("espn") != 2 {
		t.Fatalf("expected 2 calls recorded, got %d", rec.ProviderCalls("espn"))
	}
	if rec.ProviderErrors("espn") != 0 {
		t.Fatalf("expected no errors recorded, got %d", rec.ProviderErrors("espn"))
	}
}

func TestInstrumentedProviderDoesNotRetry(t *testing.T) {
	rec := metrics.NewRecorder()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &scriptedProvider{matchupsErr: &FetchError{StatusCode: 503, URL: "http://upstream"}}
	p := NewInstrumentedProvider(inner, logger, rec, "espn")

	_, err := p.Matchups(context.Background(), time.Time{}, time.Time{})
	if _, ok := AsFetchError(err); !ok {
		t.Fatalf("expected fetch error to pass through, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", inner.calls)
	}
	if rec.ProviderErrors("espn") != 1 {
		t.Fatalf("expected error recorded, got %d", rec.ProviderErrors("espn"))
	}
	if !strings.Contains(buf.String(), "provider fetch failed") || !strings.Contains(buf.String(), "503") {
		t.Fatalf("expected failure log with status, got %s", buf.String())
	}
}

func TestInstrumentedProviderDefaultsName(t *testing.T) {
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(&scriptedProvider{calendarErr: errors.New("boom")}, nil, rec, "")

	if _, err := p.Calendar(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if rec.ProviderErrors("provider") != 1 {
		t.Fatalf("expected default provider name to be used")
	}
}
