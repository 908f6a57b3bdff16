package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skycast/internal/model"
)

// countingServer returns a test server and a pointer to its request count.
func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int64) {
	t.Helper()
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func geocodeHandler(lat, lng float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"geometry": map[string]any{"location": map[string]any{"lat": lat, "lng": lng}}},
			},
		})
	}
}

func TestResolve_AliasTable(t *testing.T) {
	// Any network call fails the test: alias hits must stay offline.
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "should not be called", http.StatusInternalServerError)
	})

	r := NewResolverWithURL(srv.URL, "test-key", zap.NewNop())

	for name, want := range aliases {
		coord, ok := r.Resolve(context.Background(), model.NamedLocation(name))
		require.True(t, ok, "alias %q should resolve", name)
		assert.Equal(t, want, coord, "alias %q", name)
	}
	assert.Zero(t, atomic.LoadInt64(calls), "alias hits must not reach the network")
}

func TestResolve_AliasNormalization(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "should not be called", http.StatusInternalServerError)
	})

	r := NewResolverWithURL(srv.URL, "test-key", zap.NewNop())

	tests := []string{"Tel Aviv", "TEL AVIV", "  tel aviv  ", "TLV", "Jerusalem"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			coord, ok := r.Resolve(context.Background(), model.NamedLocation(name))
			require.True(t, ok)
			assert.Equal(t, aliases[strings.TrimSpace(strings.ToLower(name))], coord)
		})
	}
	assert.Zero(t, atomic.LoadInt64(calls))
}

func TestResolve_CoordinatePassthrough(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "should not be called", http.StatusInternalServerError)
	})

	r := NewResolverWithURL(srv.URL, "test-key", zap.NewNop())

	coord, ok := r.Resolve(context.Background(), model.CoordLocation(51.5074, -0.1278))
	require.True(t, ok)
	assert.Equal(t, model.Coordinate{Lat: 51.5074, Lng: -0.1278}, coord)
	assert.Zero(t, atomic.LoadInt64(calls))
}

func TestResolve_GeocodeFallback(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		geocodeHandler(51.5074, -0.1278)(w, r)
	})

	r := NewResolverWithURL(srv.URL, "test-key", zap.NewNop())

	coord, ok := r.Resolve(context.Background(), model.NamedLocation("London"))
	require.True(t, ok)
	assert.Equal(t, model.Coordinate{Lat: 51.5074, Lng: -0.1278}, coord)
	assert.EqualValues(t, 1, atomic.LoadInt64(calls))
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Empty results",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
			},
		},
		{
			name: "Non-OK status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "forbidden", http.StatusForbidden)
			},
		},
		{
			name: "Malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			r := NewResolverWithURL(srv.URL, "test-key", zap.NewNop())
			_, ok := r.Resolve(context.Background(), model.NamedLocation("Nowhere"))
			assert.False(t, ok)
		})
	}

	t.Run("Transport error", func(t *testing.T) {
		srv := httptest.NewServer(geocodeHandler(0, 0))
		srv.Close() // connection refused from here on

		r := NewResolverWithURL(srv.URL, "test-key", zap.NewNop())
		_, ok := r.Resolve(context.Background(), model.NamedLocation("Nowhere"))
		assert.False(t, ok)
	})
}
