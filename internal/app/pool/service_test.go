package pool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/cache"
	"github.com/preston-bernstein/nfl-pool-service/internal/ownership"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/testutil"
)

type serviceFixture struct {
	svc      *Service
	provider *testutil.StubProvider
	owners   *testutil.StaticOwnership
	store    *cache.MemoryStore
	clock    *testutil.Clock
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		provider: seasonProvider(),
		owners:   &testutil.StaticOwnership{Cfg: testutil.AliceRavens()},
		store:    cache.NewMemoryStore(),
		clock:    testutil.NewClock(testutil.Kickoff),
	}
	layer := cache.NewLayer(f.store, 5*time.Minute, cache.WithClock(f.clock.Now))
	f.svc = NewService(Options{
		Provider:  f.provider,
		Ownership: f.owners,
		Cache:     layer,
		Now:       f.clock.Now,
	})
	return f
}

func TestServiceStandingsPayload(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if resp.Season != 2024 || resp.Timezone != "America/New_York" {
		t.Fatalf("unexpected metadata %+v", resp)
	}
	if resp.GeneratedAt != "Sun Sep 22, 2024 1:05 PM EDT" {
		t.Fatalf("unexpected generatedAt %q", resp.GeneratedAt)
	}
	if resp.CacheTTLMinutes != 5 {
		t.Fatalf("expected 5 minute ttl, got %v", resp.CacheTTLMinutes)
	}
	if len(resp.Standings) != 1 || resp.Standings[0].TotalWins != 2 || resp.Standings[0].Teams[0].Code != "BAL" {
		t.Fatalf("unexpected standings %+v", resp.Standings)
	}
	if len(resp.Unowned) != 1 || resp.Unowned[0].Code != "CHI" {
		t.Fatalf("unexpected unowned %+v", resp.Unowned)
	}
}

func TestServiceStandingsCachedPayloadIsByteIdentical(t *testing.T) {
	f := newServiceFixture(t)

	first, err := f.svc.StandingsJSON(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	calls := f.provider.MatchupCalls()
	f.clock.Advance(4 * time.Minute)

	second, err := f.svc.StandingsJSON(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected byte-identical payloads\n%s\n%s", first, second)
	}
	if f.provider.MatchupCalls() != calls || f.provider.CalendarCalls() != 1 {
		t.Fatal("expected cached response without upstream fetches")
	}
	if f.owners.Loads() != 1 {
		t.Fatalf("expected ownership loaded only on miss, got %d", f.owners.Loads())
	}

	f.clock.Advance(2 * time.Minute)
	third, _ := f.svc.StandingsJSON(context.Background())
	if bytes.Equal(first, third) {
		t.Fatal("expected recomputation after expiry")
	}
}

func TestServiceMissingOwnershipSkipsCacheAndUpstream(t *testing.T) {
	store := cache.NewMemoryStore()
	p := seasonProvider()
	svc := NewService(Options{Provider: p, Cache: cache.NewLayer(store, time.Minute)})

	if _, err := svc.StandingsJSON(context.Background()); !errors.Is(err, ownership.ErrMissingConfiguration) {
		t.Fatalf("expected missing configuration, got %v", err)
	}
	if _, err := svc.WeekJSON(context.Background(), nil); !errors.Is(err, ownership.ErrMissingConfiguration) {
		t.Fatalf("expected missing configuration, got %v", err)
	}
	if err := svc.Refresh(context.Background()); !errors.Is(err, ownership.ErrMissingConfiguration) {
		t.Fatalf("expected missing configuration, got %v", err)
	}
	if p.CalendarCalls() != 0 || store.Len() != 0 {
		t.Fatal("expected no upstream or cache activity")
	}
}

func TestServiceUpstreamFailureIsNotCachedOrMasked(t *testing.T) {
	f := newServiceFixture(t)
	if _, err := f.svc.StandingsJSON(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	f.clock.Advance(10 * time.Minute)
	f.provider.MatchupErr = &providers.FetchError{StatusCode: 503, URL: "u"}

	payload, err := f.svc.StandingsJSON(context.Background())
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if payload != nil {
		t.Fatal("expected no stale payload on failure")
	}
}

func TestServiceOwnershipFetchErrorPropagates(t *testing.T) {
	f := newServiceFixture(t)
	f.owners.Err = &providers.FetchError{StatusCode: 404, URL: "pool.json"}

	_, err := f.svc.WeekJSON(context.Background(), testutil.IntPtr(1))
	if fe, ok := providers.AsFetchError(err); !ok || fe.StatusCode != 404 {
		t.Fatalf("expected ownership fetch error, got %v", err)
	}
}

func TestServiceWeekUnknownWeek(t *testing.T) {
	f := newServiceFixture(t)

	raw, err := f.svc.WeekJSON(context.Background(), testutil.IntPtr(99))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := generic["window"]; ok {
		t.Fatalf("expected no window metadata, got %s", raw)
	}
	if string(generic["games"]) != "[]" || string(generic["week"]) != "99" {
		t.Fatalf("unexpected payload %s", raw)
	}
}

func TestServiceWeekCachesPerParameter(t *testing.T) {
	f := newServiceFixture(t)

	auto, err := f.svc.Week(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if auto.Week != 3 || auto.Window == nil {
		t.Fatalf("expected auto week 3, got %+v", auto)
	}
	one, err := f.svc.Week(context.Background(), testutil.IntPtr(1))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if one.Week != 1 || len(one.Games) != 1 || one.Games[0].Away != "Ravens" {
		t.Fatalf("unexpected week 1 payload %+v", one)
	}
	_, _ = f.svc.Week(context.Background(), testutil.IntPtr(1))
	_, _ = f.svc.Week(context.Background(), nil)

	if f.store.Len() != 2 {
		t.Fatalf("expected week:auto and week:1 entries, got %d", f.store.Len())
	}
	if f.provider.CalendarCalls() != 2 {
		t.Fatalf("expected one resolve per distinct key, got %d", f.provider.CalendarCalls())
	}
}

func TestServiceRefreshOverwritesEntries(t *testing.T) {
	f := newServiceFixture(t)
	before, _ := f.svc.StandingsJSON(context.Background())

	f.clock.Advance(time.Minute)
	if err := f.svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	after, _ := f.svc.StandingsJSON(context.Background())
	if bytes.Equal(before, after) {
		t.Fatal("expected refreshed payload with a new generatedAt")
	}
	if f.store.Len() != 2 {
		t.Fatalf("expected standings and auto week cached, got %d", f.store.Len())
	}
}

func TestServiceWithoutCacheAlwaysRecomputes(t *testing.T) {
	p := seasonProvider()
	svc := NewService(Options{Provider: p, Ownership: &testutil.StaticOwnership{Cfg: testutil.AliceRavens()}})

	_, _ = svc.StandingsJSON(context.Background())
	_, _ = svc.StandingsJSON(context.Background())
	if p.CalendarCalls() != 2 {
		t.Fatalf("expected recomputation per request, got %d", p.CalendarCalls())
	}
}

func TestServiceUsesOwnershipTimezone(t *testing.T) {
	f := newServiceFixture(t)
	cfg := testutil.AliceRavens()
	cfg.Timezone = "America/Los_Angeles"
	f.owners.Cfg = cfg

	resp, err := f.svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if resp.Timezone != "America/Los_Angeles" || resp.GeneratedAt != "Sun Sep 22, 2024 10:05 AM PDT" {
		t.Fatalf("unexpected timezone rendering %+v", resp)
	}
}
