package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"nrclassify/internal/domain"
	"nrclassify/internal/loader"
)

// Client fetches record JSON from an HTTP endpoint serving one record
// per identifier at <base_url>/<ID>. It implements the Loader
// interface.
type Client struct {
	baseURL    string
	timeout    time.Duration
	client     *http.Client
	maxRetries int
}

// Config configures the HTTP record loader.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates an HTTP record loader from the configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing base URL for http loader")
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		timeout:    t,
		client:     &http.Client{Timeout: t},
		maxRetries: 5,
	}, nil
}

// Load fetches and decodes the record for id. A 404 maps to
// loader.ErrNotFound; 429 and 5xx responses are retried with backoff.
func (c *Client) Load(id string) (*domain.Record, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, id)
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.client.Get(url)
		if err != nil {
			if attempt < c.maxRetries {
				time.Sleep(retryDelay(attempt))
				continue
			}
			return nil, err
		}

		if resp.StatusCode == http.StatusNotFound {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("%s: %w", id, loader.ErrNotFound)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			// Respect Retry-After if provided
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil {
					_ = resp.Body.Close()
					time.Sleep(time.Duration(secs) * time.Second)
				} else {
					_ = resp.Body.Close()
					time.Sleep(retryDelay(attempt))
				}
			} else {
				_ = resp.Body.Close()
				time.Sleep(retryDelay(attempt))
			}
			if attempt < c.maxRetries {
				continue
			}
			return nil, fmt.Errorf("record fetch failed: %s", resp.Status)
		}

		if resp.StatusCode >= 300 {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("record fetch failed: %s", resp.Status)
		}

		payload, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			if attempt < c.maxRetries {
				time.Sleep(retryDelay(attempt))
				continue
			}
			return nil, err
		}
		var rec domain.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", id, err)
		}
		return &rec, nil
	}
	return nil, fmt.Errorf("record fetch failed: %s", id)
}

func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	base := 200 * time.Millisecond
	// exponential backoff capped at 5s
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
