package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
	"github.com/preston-bernstein/nfl-pool-service/internal/testutil"
)

type countingCompute struct {
	calls   int
	payload string
	err     error
}

func (c *countingCompute) fn(ctx context.Context) (json.RawMessage, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return json.RawMessage(c.payload), nil
}

type failingStore struct {
	getErr error
	putErr error
}

func (f failingStore) Get(context.Context, string) (Entry, bool, error) {
	return Entry{}, false, f.getErr
}

func (f failingStore) Put(context.Context, string, Entry) error {
	return f.putErr
}

func TestLayerServesFreshHitWithoutRecomputing(t *testing.T) {
	now := testutil.Kickoff
	rec := metrics.NewRecorder()
	store := NewMemoryStore()
	layer := NewLayer(store, 5*time.Minute, WithClock(testutil.NowAt(now)), WithMetrics(rec))
	compute := &countingCompute{payload: `{"v":1}`}

	first, err := layer.GetOrCompute(context.Background(), StandingsKey, compute.fn)
	require.NoError(t, err)
	second, err := layer.GetOrCompute(context.Background(), StandingsKey, compute.fn)
	require.NoError(t, err)

	assert.Equal(t, 1, compute.calls)
	assert.Equal(t, string(first), string(second))
	assert.Equal(t, 1, rec.CacheMisses("standings"))
	assert.Equal(t, 1, rec.CacheHits("standings"))

	stored, ok, _ := store.Get(context.Background(), "pool:standings:season")
	require.True(t, ok)
	assert.Equal(t, now.Add(5*time.Minute).UnixMilli(), stored.ExpiresAtMs)
}

func TestLayerRecomputesAtExpiry(t *testing.T) {
	clock := testutil.NewClock(testutil.Kickoff)
	layer := NewLayer(NewMemoryStore(), time.Minute, WithClock(clock.Now))
	compute := &countingCompute{payload: `1`}

	_, _ = layer.GetOrCompute(context.Background(), "week:1", compute.fn)
	clock.Advance(time.Minute)
	_, _ = layer.GetOrCompute(context.Background(), "week:1", compute.fn)

	assert.Equal(t, 2, compute.calls, "entry is stale once now reaches expiresAtMs")
}

func TestLayerKeysAreIndependent(t *testing.T) {
	layer := NewLayer(NewMemoryStore(), time.Minute)
	a := &countingCompute{payload: `"a"`}
	b := &countingCompute{payload: `"b"`}

	got, _ := layer.GetOrCompute(context.Background(), WeekKey(nil), a.fn)
	other, _ := layer.GetOrCompute(context.Background(), "week:2", b.fn)

	assert.Equal(t, `"a"`, string(got))
	assert.Equal(t, `"b"`, string(other))
}

func TestLayerWithoutStoreAlwaysComputes(t *testing.T) {
	layer := NewLayer(nil, time.Minute)
	compute := &countingCompute{payload: `1`}

	for i := 0; i < 3; i++ {
		_, err := layer.GetOrCompute(context.Background(), StandingsKey, compute.fn)
		require.NoError(t, err)
	}
	_, err := layer.Refresh(context.Background(), StandingsKey, compute.fn)
	require.NoError(t, err)

	assert.Equal(t, 4, compute.calls)
	assert.False(t, layer.Enabled())

	var nilLayer *Layer
	assert.False(t, nilLayer.Enabled())
	assert.Zero(t, nilLayer.TTL())
}

func TestLayerDoesNotCacheOrMaskComputeErrors(t *testing.T) {
	clock := testutil.NewClock(testutil.Kickoff)
	store := NewMemoryStore()
	layer := NewLayer(store, time.Minute, WithClock(clock.Now))

	ok := &countingCompute{payload: `"stale"`}
	_, _ = layer.GetOrCompute(context.Background(), StandingsKey, ok.fn)
	clock.Advance(2 * time.Minute)

	boom := errors.New("upstream down")
	failing := &countingCompute{err: boom}
	payload, err := layer.GetOrCompute(context.Background(), StandingsKey, failing.fn)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, payload, "stale entries are never served on failure")
}

func TestLayerTreatsStoreErrorsAsMisses(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	store := failingStore{getErr: errors.New("read down"), putErr: errors.New("write down")}
	layer := NewLayer(store, time.Minute, WithLogger(logger), WithPrefix("test:"))
	compute := &countingCompute{payload: `{"ok":true}`}

	payload, err := layer.GetOrCompute(context.Background(), StandingsKey, compute.fn)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(payload))
	assert.True(t, strings.Contains(buf.String(), "cache read failed"))
	assert.True(t, strings.Contains(buf.String(), "cache write failed"))
	assert.True(t, strings.Contains(buf.String(), "test:standings:season"))
}

func TestLayerRefreshOverwritesFreshEntry(t *testing.T) {
	store := NewMemoryStore()
	layer := NewLayer(store, time.Hour)
	first := &countingCompute{payload: `1`}
	second := &countingCompute{payload: `2`}

	_, _ = layer.GetOrCompute(context.Background(), StandingsKey, first.fn)
	_, err := layer.Refresh(context.Background(), StandingsKey, second.fn)
	require.NoError(t, err)

	got, _ := layer.GetOrCompute(context.Background(), StandingsKey, first.fn)
	assert.Equal(t, "2", string(got))
	assert.Equal(t, 1, first.calls)
}
