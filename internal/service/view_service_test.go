package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Calendar/internal/cache"
	"Calendar/internal/daterange"
	dom "Calendar/internal/domain"
	"Calendar/internal/engine"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type fakeSource struct {
	mu      sync.Mutex
	records []dom.Record
	err     error
	calls   int
}

func (f *fakeSource) List(ctx context.Context) ([]dom.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]dom.Record(nil), f.records...), nil
}

type writableSource struct {
	fakeSource
	createErr error
}

func (w *writableSource) Create(ctx context.Context, r dom.Record) (dom.Record, error) {
	if w.createErr != nil {
		return dom.Record{}, w.createErr
	}
	if r.ID == "" {
		r.ID = "generated"
	}
	w.mu.Lock()
	w.records = append(w.records, r)
	w.mu.Unlock()
	return r, nil
}

type memStore struct {
	states map[string]engine.State
}

func newMemStore() *memStore { return &memStore{states: map[string]engine.State{}} }

func (m *memStore) Load(ctx context.Context, id string) (engine.State, bool, error) {
	s, ok := m.states[id]
	return s, ok, nil
}

func (m *memStore) Save(ctx context.Context, id string, s engine.State) error {
	m.states[id] = s
	return nil
}

func (m *memStore) Reset(ctx context.Context, id string) error {
	delete(m.states, id)
	return nil
}

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func sample() []dom.Record {
	return []dom.Record{
		{ID: "1", Name: "today", CreatedAt: at(2024, 6, 15)},
		{ID: "2", Name: "yesterday", CreatedAt: at(2024, 6, 14)},
		{ID: "3", Name: "week", CreatedAt: at(2024, 6, 9)},
		{ID: "4", Name: "old", CreatedAt: at(2023, 1, 1)},
		{ID: "5", Name: "broken"},
	}
}

func ids(rs []dom.Record) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func newService(src *fakeSource) (*ViewService, *memStore) {
	store := newMemStore()
	return NewViewService(daterange.NewCatalog(), src, nil, store, func() time.Time { return fixedNow }), store
}

func TestViewDefaultsToToday(t *testing.T) {
	svc, _ := newService(&fakeSource{records: sample()})

	snap, err := svc.View(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, dom.RangeToday, snap.Boundary.Key)
	assert.Equal(t, dom.RangeToday, snap.ActivePreset)
	assert.Equal(t, []string{"1"}, ids(snap.Items))
	assert.True(t, snap.AllTimeAvailable)
	require.NotNil(t, snap.Extent)
	assert.Equal(t, at(2023, 1, 1), snap.Extent.Earliest)
}

func TestSelectPresetPersists(t *testing.T) {
	svc, store := newService(&fakeSource{records: sample()})
	ctx := context.Background()

	snap, err := svc.SelectPreset(ctx, "s1", "last7Days")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(snap.Items))
	assert.Equal(t, dom.RangeLast7Days, store.states["s1"].Boundary.Key)

	snap, err = svc.View(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, dom.RangeLast7Days, snap.ActivePreset)

	// other sessions are unaffected
	snap, err = svc.View(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, dom.RangeToday, snap.ActivePreset)
}

func TestSelectPresetErrors(t *testing.T) {
	ctx := context.Background()

	svc, store := newService(&fakeSource{records: sample()})
	_, err := svc.SelectPreset(ctx, "s1", "fortnight")
	assert.True(t, errors.Is(err, ErrUnknownRange))

	svc, store = newService(&fakeSource{records: []dom.Record{{ID: "x"}}})
	_, err = svc.SelectPreset(ctx, "s1", "allTime")
	assert.True(t, errors.Is(err, ErrRangeUnavailable))
	assert.Empty(t, store.states)
}

func TestCustomSelection(t *testing.T) {
	svc, _ := newService(&fakeSource{records: sample()})
	ctx := context.Background()

	_, err := svc.SelectPreset(ctx, "s1", "yesterday")
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap, err := svc.SelectCustomEndpoint(ctx, "s1", "start", &start)
	require.NoError(t, err)
	assert.True(t, snap.PendingCustom)
	assert.Equal(t, dom.RangeCustom, snap.ActivePreset)
	assert.Equal(t, []string{"2"}, ids(snap.Items))

	end := time.Date(2024, 6, 9, 23, 59, 59, 0, time.UTC)
	snap, err = svc.SelectCustomEndpoint(ctx, "s1", "end", &end)
	require.NoError(t, err)
	assert.False(t, snap.PendingCustom)
	assert.Equal(t, []string{"3"}, ids(snap.Items))

	_, err = svc.SelectCustomEndpoint(ctx, "s1", "middle", &end)
	assert.True(t, errors.Is(err, ErrInvalidEndpoint))
}

func TestReset(t *testing.T) {
	svc, store := newService(&fakeSource{records: sample()})
	ctx := context.Background()

	_, err := svc.SelectPreset(ctx, "s1", "last30Days")
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, "s1"))
	assert.Empty(t, store.states)

	snap, err := svc.View(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, dom.RangeToday, snap.Boundary.Key)
}

func TestRanges(t *testing.T) {
	svc, _ := newService(&fakeSource{})
	ctx := context.Background()

	opts, err := svc.Ranges(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, opts, 7)

	byKey := map[dom.RangeKey]RangeOption{}
	for _, o := range opts {
		byKey[o.Key] = o
	}
	assert.True(t, byKey[dom.RangeToday].Selected)
	assert.Equal(t, "Last 7 Days", byKey[dom.RangeLast7Days].Label)
	assert.False(t, byKey[dom.RangeAllTime].Available)
	assert.Nil(t, byKey[dom.RangeAllTime].Boundary)
	assert.True(t, byKey[dom.RangeCustom].Available)
	assert.Nil(t, byKey[dom.RangeCustom].Boundary)
	require.NotNil(t, byKey[dom.RangeYesterday].Boundary)
	assert.Equal(t, at(2024, 6, 14).Day(), byKey[dom.RangeYesterday].Boundary.StartDate.Day())
}

func TestSourceFailure(t *testing.T) {
	svc, _ := newService(&fakeSource{err: errors.New("dial tcp: refused")})

	_, err := svc.View(context.Background(), "s1")
	assert.True(t, errors.Is(err, ErrSourceFailed))
}

func TestCreateRecord(t *testing.T) {
	ctx := context.Background()
	src := &writableSource{fakeSource: fakeSource{records: sample()}}
	svc := NewViewService(daterange.NewCatalog(), src, nil, newMemStore(), func() time.Time { return fixedNow })

	r, err := svc.CreateRecord(ctx, "", "  lamp ", at(2024, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, "lamp", r.Name)

	snap, err := svc.View(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "generated"}, ids(snap.Items))

	_, err = svc.CreateRecord(ctx, "", " ", at(2024, 6, 15))
	assert.True(t, errors.Is(err, ErrInvalidRecord))

	src.createErr = &pgconn.PgError{Code: "23505"}
	_, err = svc.CreateRecord(ctx, "1", "dup", at(2024, 6, 15))
	assert.True(t, errors.Is(err, ErrDuplicateRecord))
}

func TestCreateRecordReadOnly(t *testing.T) {
	svc, _ := newService(&fakeSource{})
	_, err := svc.CreateRecord(context.Background(), "", "x", fixedNow)
	assert.True(t, errors.Is(err, ErrReadOnlySource))
}

func TestRecordsAreCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	src := &fakeSource{records: sample()}
	svc := NewViewService(daterange.NewCatalog(), src, cache.NewRecordCache(rdb, time.Minute), newMemStore(),
		func() time.Time { return fixedNow })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		snap, err := svc.View(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, ids(snap.Items))
	}
	assert.Equal(t, 1, src.calls)

	require.NoError(t, svc.Reload(ctx))
	_, err := svc.View(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

type ctxSource struct {
	records []dom.Record
}

func (c ctxSource) List(ctx context.Context) ([]dom.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.records, nil
}

func TestSharedLoadIgnoresCallerCancellation(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	svc := NewViewService(daterange.NewCatalog(), ctxSource{records: sample()}, cache.NewRecordCache(rdb, time.Minute),
		newMemStore(), func() time.Time { return fixedNow })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := svc.View(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(snap.Items))
}
