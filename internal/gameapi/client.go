package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/BossRush_Go/internal/domain"
	"github.com/osse101/BossRush_Go/internal/logger"
	"github.com/osse101/BossRush_Go/internal/metrics"
)

// ErrNoResult is wrapped by every error the client returns. Callers treat it
// as "the API gave us nothing usable" regardless of the underlying cause.
var ErrNoResult = errors.New(ErrMsgNoResult)

// Client is a typed client for the game HTTP API
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchOdds retrieves the boss win-rates for a team. The returned response
// keeps the raw body in Raw.
func (c *Client) FetchOdds(ctx context.Context, team int) (*domain.OddsResponse, error) {
	body, err := c.doRequest(ctx, OperationFetchOdds, http.MethodGet, fmt.Sprintf(PathOdds, team), nil)
	if err != nil {
		return nil, err
	}

	var odds domain.OddsResponse
	if err := json.Unmarshal(body, &odds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoResult, ErrMsgFailedToDecode, err)
	}
	odds.Raw = body

	return &odds, nil
}

// UpdateXP grants xp to a player
func (c *Client) UpdateXP(ctx context.Context, player, xp int) error {
	_, err := c.doRequest(ctx, OperationUpdateXP, http.MethodPut, fmt.Sprintf(PathPlayerXP, player), domain.XPUpdate{XP: xp})
	return err
}

// doRequest performs one HTTP request and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, operation, method, path string, body interface{}) (respBody []byte, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveAPICall(operation, time.Since(start).Seconds(), err)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgAPIRequestError, "operation", operation, "path", path, "error", err)
		}
	}()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNoResult, ErrMsgFailedToMarshal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.BaseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoResult, ErrMsgFailedToCreateReq, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.FromContext(ctx).Debug(LogMsgAPIRequest, "method", method, "url", url)

	resp, err := c.Client.Do(req)
	if err != nil {
		// Keep context errors visible to errors.Is alongside ErrNoResult
		return nil, fmt.Errorf("%w: %s: %w", ErrNoResult, ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoResult, ErrMsgFailedToReadBody, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %d from %s %s", ErrNoResult, ErrMsgUnexpectedStatus, resp.StatusCode, method, path)
	}

	return data, nil
}
