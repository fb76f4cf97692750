package gameapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func TestFetchOdds(t *testing.T) {
	t.Run("decodes odds and keeps raw body", func(t *testing.T) {
		body := `{"data":[{"win_rate":0.5},{"win_rate":1}]}`
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/games/odds/2", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, body)
		})

		odds, err := client.FetchOdds(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, odds.Data, 2)
		assert.Equal(t, 0.5, *odds.Data[0].WinRate)
		assert.JSONEq(t, body, string(odds.Raw))
	})

	t.Run("non-2xx is no result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		odds, err := client.FetchOdds(context.Background(), 1)

		assert.Nil(t, odds)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoResult))
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("invalid json is no result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>")
		})

		_, err := client.FetchOdds(context.Background(), 1)

		assert.True(t, errors.Is(err, ErrNoResult))
		assert.Contains(t, err.Error(), ErrMsgFailedToDecode)
	})

	t.Run("unreachable server is no result", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewClient(url, time.Second).FetchOdds(context.Background(), 1)

		assert.True(t, errors.Is(err, ErrNoResult))
	})

	t.Run("cancelled context is visible", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":[]}`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchOdds(ctx, 1)

		assert.True(t, errors.Is(err, ErrNoResult))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestUpdateXP(t *testing.T) {
	t.Run("puts xp body", func(t *testing.T) {
		var got map[string]int
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/characters/7/xp", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, client.UpdateXP(context.Background(), 7, 175))
		assert.Equal(t, map[string]int{"XP": 175}, got)
	})

	t.Run("404 is no result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := client.UpdateXP(context.Background(), 99, 175)

		assert.True(t, errors.Is(err, ErrNoResult))
	})
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	client := NewClient("http://localhost:5000///", time.Second)
	assert.Equal(t, "http://localhost:5000", client.BaseURL)
	assert.Equal(t, time.Second, client.Client.Timeout)
}
