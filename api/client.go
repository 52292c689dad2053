package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ajikko/aji/log"
	"github.com/morikuni/failure/v2"
	"github.com/sethvargo/go-retry"
)

// Client talks to the Spoonacular API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an API client for the given endpoint and key
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: log.Transport(),
		},
	}
}

// WithHTTPClient sets a custom http.Client (for testing or custom timeouts)
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// get performs a GET request against path, decodes the JSON body into out.
// Transient failures (429 and 5xx) are retried with fibonacci backoff.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", c.apiKey)
	reqURL := c.baseURL + path + "?" + query.Encode()

	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return failure.Wrap(err)
		}
		req.Header.Set("User-Agent", "aji/"+Version)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(failure.New(ErrRequestFailed,
				failure.Message("Error connecting to Spoonacular API"),
				failure.Context{"endpoint": path, "error": err.Error()},
			))
		}
		defer resp.Body.Close()

		if err := c.checkStatus(resp, path); err != nil {
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return failure.Wrap(err)
		}
		return nil
	})
}

func (c *Client) checkStatus(resp *http.Response, path string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return failure.New(ErrUnauthorized,
			failure.Message("Spoonacular rejected the API key. Check SPOONACULAR_API_KEY."),
			failure.Context{"endpoint": path},
		)
	case resp.StatusCode == http.StatusPaymentRequired:
		return failure.New(ErrQuotaExceeded,
			failure.Message("Daily Spoonacular API quota exhausted. Try again tomorrow."),
			failure.Context{"endpoint": path},
		)
	case resp.StatusCode == http.StatusNotFound:
		return failure.New(ErrRecipeNotFound,
			failure.Message("Recipe not found"),
			failure.Context{"endpoint": path},
		)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		log.Warn("Transient API error, retrying", "status", resp.StatusCode, "endpoint", path)
		return retry.RetryableError(statusError(resp, path))
	default:
		return statusError(resp, path)
	}
}

func statusError(resp *http.Response, path string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
	return failure.New(ErrUnexpectedStatus,
		failure.Message(fmt.Sprintf("Spoonacular API returned HTTP %d", resp.StatusCode)),
		failure.Context{
			"endpoint": path,
			"status":   resp.Status,
			"body":     string(body),
		},
	)
}
