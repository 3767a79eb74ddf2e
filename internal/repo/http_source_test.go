package repo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRecordSourceList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "1", "name": "Chair", "createdAt": "2024-06-15T08:30:00.000Z"},
			{"id": 2, "name": "Desk", "createdAt": "2024-06-14"},
			{"id": "3", "name": "Lamp", "createdAt": "not a date"},
			{"id": "4", "name": "Rug", "createdAt": 1718438400000},
			{"id": "5", "name": "Mug"}
		]`))
	}))
	defer srv.Close()

	list, err := NewHTTPRecordSource(srv.URL, time.Second, time.UTC).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)

	assert.Equal(t, "1", list[0].ID)
	assert.True(t, time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC).Equal(list[0].CreatedAt))
	assert.Equal(t, "2", list[1].ID)
	assert.True(t, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC).Equal(list[1].CreatedAt))
	assert.False(t, list[2].HasTimestamp())
	assert.True(t, time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC).Equal(list[3].CreatedAt))
	assert.False(t, list[4].HasTimestamp())
}

func TestHTTPRecordSourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPRecordSource(srv.URL, time.Second, nil).List(context.Background())
	assert.ErrorContains(t, err, "unexpected status 503")
}

func TestHTTPRecordSourceBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPRecordSource(srv.URL, time.Second, nil).List(context.Background())
	assert.ErrorContains(t, err, "records decode")
}
