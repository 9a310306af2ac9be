package httpjson_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/httpjson"
	"go.trai.ch/digest/internal/core/domain"
)

func TestClient_Do(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		assert.Equal(t, "override", r.Header.Get("X-Extra"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	}))
	t.Cleanup(srv.Close)

	c := httpjson.New(srv.URL+"/", srv.Client(), http.Header{
		"Authorization": {"Bearer t"},
		"X-Extra":       {"default"},
	})
	assert.Equal(t, srv.URL, c.BaseURL())

	var out map[string]string
	err := c.Do(context.Background(), http.MethodPost, "/items", map[string]string{"name": "tower"}, &out,
		http.Header{"X-Extra": {"override"}})
	require.NoError(t, err)
	assert.Equal(t, "tower", out["echo"])
}

func TestClient_DoClassifiesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, transient: true},
		{name: "server error", status: http.StatusBadGateway, transient: true},
		{name: "client error", status: http.StatusNotFound, transient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", "1.5")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(" nope \n"))
			}))
			t.Cleanup(srv.Close)

			err := httpjson.New(srv.URL, srv.Client(), nil).Do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
			require.Error(t, err)

			var status *httpjson.StatusError
			require.ErrorAs(t, err, &status)
			assert.Equal(t, tt.status, status.Code)
			assert.Equal(t, "nope", status.Body)
			assert.Equal(t, tt.transient, status.Transient())

			if tt.transient {
				assert.ErrorIs(t, err, domain.ErrTransientRemote)
			} else {
				assert.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
			}

			delay, ok := httpjson.RetryAfter(err)
			assert.Equal(t, tt.status == http.StatusTooManyRequests, ok)
			if ok {
				assert.Equal(t, 1500*time.Millisecond, delay)
			}
		})
	}
}

func TestClient_DoCanceledIsNotTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := httpjson.New(srv.URL, srv.Client(), nil).Do(ctx, http.MethodGet, "/", nil, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrTransientRemote)
}
