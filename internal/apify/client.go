// Package apify is a minimal client for the Apify v2 REST API: run an actor,
// wait for the run to reach a terminal state, read its default dataset.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"profilescout-engine/internal/scrape/util"
)

const DefaultBaseURL = "https://api.apify.com"

// Run states the API reports; everything past READY/RUNNING is terminal.
const (
	runSucceeded = "SUCCEEDED"
	runFailed    = "FAILED"
	runAborted   = "ABORTED"
	runTimedOut  = "TIMED-OUT"
)

type Run struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

func (r Run) terminal() bool {
	switch r.Status {
	case runSucceeded, runFailed, runAborted, runTimedOut:
		return true
	}
	return false
}

type Client struct {
	BaseURL    string
	Token      string
	RunTimeout time.Duration

	hc      *http.Client
	limiter *util.HostLimiter
	// poll interval between run-status checks; shortened in tests
	pollEvery time.Duration
}

func New(token string, reqPerSec float64, burst int) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Token:      token,
		RunTimeout: 5 * time.Minute,
		hc:         &http.Client{Timeout: 60 * time.Second},
		limiter:    util.NewHostLimiter(reqPerSec, burst),
		pollEvery:  2 * time.Second,
	}
}

// actorPath converts a "user/actor" ID into the user~actor form the API
// expects in URL paths.
func actorPath(actorID string) string {
	return strings.ReplaceAll(actorID, "/", "~")
}

// CallActor starts an actor run with the given input and blocks until the
// run reaches a terminal state. A run that ends in anything but SUCCEEDED is
// an error.
func (c *Client) CallActor(ctx context.Context, actorID string, input any) (Run, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return Run{}, err
	}

	u := fmt.Sprintf("%s/v2/acts/%s/runs?token=%s&waitForFinish=60",
		c.BaseURL, actorPath(actorID), url.QueryEscape(c.Token))

	var run Run
	if err := c.doJSON(ctx, http.MethodPost, u, body, &run); err != nil {
		return Run{}, fmt.Errorf("apify start actor %s: %w", actorID, err)
	}

	deadline := time.Now().Add(c.RunTimeout)
	for !run.terminal() {
		if time.Now().After(deadline) {
			return run, fmt.Errorf("apify run %s still %s after %s", run.ID, run.Status, c.RunTimeout)
		}
		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-time.After(c.pollEvery):
		}

		ru := fmt.Sprintf("%s/v2/actor-runs/%s?token=%s", c.BaseURL, run.ID, url.QueryEscape(c.Token))
		if err := c.doJSON(ctx, http.MethodGet, ru, nil, &run); err != nil {
			return run, fmt.Errorf("apify poll run %s: %w", run.ID, err)
		}
	}

	if run.Status != runSucceeded {
		return run, fmt.Errorf("apify run %s finished %s", run.ID, run.Status)
	}
	return run, nil
}

// DatasetItems lists a dataset's items as raw records. limit <= 0 means no
// cap.
func (c *Client) DatasetItems(ctx context.Context, datasetID string, limit int) ([]map[string]any, error) {
	u := fmt.Sprintf("%s/v2/datasets/%s/items?token=%s&clean=true",
		c.BaseURL, url.PathEscape(datasetID), url.QueryEscape(c.Token))
	if limit > 0 {
		u += "&limit=" + strconv.Itoa(limit)
	}

	var items []map[string]any
	if err := c.doRaw(ctx, u, &items); err != nil {
		return nil, fmt.Errorf("apify dataset %s: %w", datasetID, err)
	}
	return items, nil
}

// doJSON performs a request against an envelope endpoint ({"data": ...}).
func (c *Client) doJSON(ctx context.Context, method, u string, body []byte, out any) error {
	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return err
	}

	var rdr *bytes.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return fmt.Errorf("status %d", res.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

// doRaw performs a GET against an endpoint that returns a bare JSON array.
func (c *Client) doRaw(ctx context.Context, u string, out any) error {
	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return fmt.Errorf("status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
