package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/config"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/testutil"
)

func TestProviderFactoryBuildsFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: config.ProviderFixture})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	cal, err := prov.Calendar(context.Background())
	if err != nil || len(cal.Entries) == 0 {
		t.Fatalf("expected fixture calendar, got %+v err %v", cal, err)
	}
}

func TestProviderFactoryRecordsAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	prov := factory.wrap(config.Config{Provider: "stub"}, &testutil.StubProvider{Cal: testutil.SeasonCalendar(1, nil)})

	if _, err := prov.Calendar(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.ProviderCalls("stub"); got != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", got)
	}
}

func TestProviderFactoryWrapsBreakerWhenEnabled(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	stub := &testutil.StubProvider{CalendarErr: errors.New("upstream down")}
	cfg := config.Config{
		Provider: "stub",
		Upstream: config.UpstreamConfig{
			BreakerEnabled:  true,
			BreakerFailures: 2,
			BreakerTimeout:  time.Minute,
		},
	}
	prov := factory.wrap(cfg, stub)

	for i := 0; i < 2; i++ {
		if _, err := prov.Calendar(context.Background()); err == nil {
			t.Fatalf("expected upstream error")
		}
	}
	_, err := prov.Calendar(context.Background())
	if !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected open breaker error, got %v", err)
	}
	if stub.CalendarCalls() != 2 {
		t.Fatalf("expected open breaker to skip upstream, got %d calls", stub.CalendarCalls())
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("ESPN", nil); got != "espn" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", &testutil.StubProvider{}); got != "*testutil.stubprovider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
}
