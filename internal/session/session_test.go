package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dom "Calendar/internal/domain"
	"Calendar/internal/engine"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, time.Hour), mr
}

func TestStoreLifecycle(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx)
	require.NoError(t, err)
	assert.Len(t, id, 32)

	ok, err := s.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = s.Load(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	state := engine.State{
		Boundary: dom.Boundary{Key: dom.RangeCustom, StartDate: &start},
		Applied:  dom.NewBoundary(dom.RangeToday, start, start.Add(time.Hour)),
	}
	require.NoError(t, s.Save(ctx, id, state))

	got, ok, err := s.Load(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, dom.RangeCustom, got.Boundary.Key)
	assert.True(t, start.Equal(*got.Boundary.StartDate))
	assert.Nil(t, got.Boundary.EndDate)
	assert.Equal(t, dom.RangeToday, got.Applied.Key)

	require.NoError(t, s.Reset(ctx, id))
	_, ok, err = s.Load(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Hour)
	ok, err = s.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, id))
	ok, err := s.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := newTestStore(t)

	r := gin.New()
	r.Use(Ensure(s))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, IDFromContext(c)) })

	// no cookie: a session is created
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Body.String()
	require.NotEmpty(t, id)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, id, cookies[0].Value)
	assert.Equal(t, int(time.Hour.Seconds()), cookies[0].MaxAge)

	// known cookie: reused, no new cookie
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
	assert.Empty(t, w.Result().Cookies())

	// unknown cookie: replaced
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "stale", w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)
}

func TestEnsureCookieFollowsStoreTTL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	s := NewStore(rdb, 72*time.Hour)

	r := gin.New()
	r.Use(Ensure(s))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 72*60*60, cookies[0].MaxAge)

	mr.FastForward(71 * time.Hour)
	ok, err := s.Exists(context.Background(), cookies[0].Value)
	require.NoError(t, err)
	assert.True(t, ok)
}
