// Package client talks to a running engine. Its chunked orchestrator mirrors
// what the browser UI does for large requests: one URL search, then detail
// slices with progress callbacks.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"profilescout-engine/internal/config"
	"profilescout-engine/internal/domain"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client

	// ChunkSize URLs go into each detail request; ChunkDelay spaces them.
	ChunkSize  int
	ChunkDelay time.Duration
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		// large chunks can take several minutes of actor time
		HTTP:       &http.Client{Timeout: 10 * time.Minute},
		ChunkSize:  50,
		ChunkDelay: 2 * time.Second,
	}
}

// NewFromConfig builds a client whose chunking follows the engine config's
// client section.
func NewFromConfig(baseURL string, cfg config.Config) *Client {
	c := New(baseURL)
	if cfg.Client.ChunkSize > 0 {
		c.ChunkSize = cfg.Client.ChunkSize
	}
	if cfg.Client.ChunkDelayMS >= 0 {
		c.ChunkDelay = time.Duration(cfg.Client.ChunkDelayMS) * time.Millisecond
	}
	return c
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
			Details string `json:"details"`
		}
		data, _ := io.ReadAll(res.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s (status %d): %s", apiErr.Message, res.StatusCode, apiErr.Details)
		}
		return fmt.Errorf("status %d from %s", res.StatusCode, path)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// SearchURLs asks the engine for all candidate profile URLs in one call.
func (c *Client) SearchURLs(ctx context.Context, criteria domain.SearchCriteria) ([]string, error) {
	var urls []string
	if err := c.postJSON(ctx, "/api/search-urls", criteria, &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// ScrapeDetails detail-processes one slice of URLs.
func (c *Client) ScrapeDetails(ctx context.Context, urls []string) ([]domain.NormalizedProfile, error) {
	var profiles []domain.NormalizedProfile
	body := map[string][]string{"profileUrls": urls}
	if err := c.postJSON(ctx, "/api/scrape-details", body, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Scrape runs the combined single-call pipeline; fine for small counts.
func (c *Client) Scrape(ctx context.Context, criteria domain.SearchCriteria) ([]domain.NormalizedProfile, error) {
	var profiles []domain.NormalizedProfile
	if err := c.postJSON(ctx, "/api/scrape", criteria, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// DownloadExcel fetches the xlsx rendering of profiles.
func (c *Client) DownloadExcel(ctx context.Context, profiles []domain.NormalizedProfile) ([]byte, error) {
	b, err := json.Marshal(map[string]any{"data": profiles})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/download/excel", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("excel download failed: status %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
