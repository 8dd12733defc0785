// Package upstream implements the repository contracts against the external
// REST backend that owns all entity data. Requests are a single attempt with
// no retry; non-2xx responses other than 404 are surfaced verbatim.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/phillip/charity-admin-go/repository"
)

type Client struct {
	baseURL string
	token   string
	client  *http.Client
	log     *zap.SugaredLogger
}

func New(baseURL, token string, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{},
		log:     log,
	}
}

// Store exposes the typed per-entity views over this client.
func (c *Client) Store() repository.Store {
	return repository.Store{
		Causes:  causesClient{c},
		Events:  eventsClient{c},
		Gallery: galleryClient{c},
		Teams:   teamsClient{c},
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debugw("issuing upstream request", "method", method, "endpoint", endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach upstream: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", endpoint, repository.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Errorw("upstream rejection",
			"status", resp.StatusCode,
			"endpoint", endpoint,
			"body", string(respBody))
		return &repository.UpstreamError{Status: resp.StatusCode, Body: respBody}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal upstream response: %w", err)
		}
	}
	return nil
}
