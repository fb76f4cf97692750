package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BossRush_Go/internal/simulation"
	"github.com/osse101/BossRush_Go/internal/testing/leaktest"
)

type fixedStatus struct{ status simulation.Status }

func (f fixedStatus) Snapshot() simulation.Status { return f.status }

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader("0123")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusServerRoutes(t *testing.T) {
	srv := NewStatusServer(0, fixedStatus{simulation.Status{RunID: "abc", Round: 2, Running: true}})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{PathHealthz, http.StatusOK, `"status":"ok"`},
		{PathStatus, http.StatusOK, `"run_id":"abc"`},
		{PathVersion, http.StatusOK, `"go_version"`},
		{PathMetrics, http.StatusOK, "bossrush_http_requests_total"},
		{"/swagger/doc.json", http.StatusOK, `"/games/odds/{team}"`},
		{"/swagger/doc.json", http.StatusOK, `"/status"`},
		{"/nope", http.StatusNotFound, `"error":"Resource not found."`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.contains)
		})
	}
}

func TestStatusServerReportsRound(t *testing.T) {
	srv := NewStatusServer(0, fixedStatus{simulation.Status{
		Round: 7,
		Teams: []simulation.TeamStatus{{Team: 1, Players: 4, Remaining: 3}},
	}})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathStatus, nil))

	var got simulation.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 7, got.Round)
	assert.Equal(t, 3, got.Teams[0].Remaining)
}

func TestServeAndStop(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewStatusServer(0, fixedStatus{})
	done := make(chan error, 1)
	go func() { done <- srv.Serve(l) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + l.Addr().String() + PathHealthz)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	assert.NoError(t, <-done)

	http.DefaultClient.CloseIdleConnections()
	checker.Check(2)
}
