// Package positions proxies the external job positions listing service.
package positions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a proxy client for the positions listing at url.
// An empty url is tolerated at construction; List fails until one is set.
func NewClient(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// List fetches the positions listing and returns the upstream JSON body as
// is; the payload shape belongs to the external service.
func (c *Client) List(ctx context.Context) (json.RawMessage, error) {

	if c.url == "" {
		return nil, fmt.Errorf("%w: positions API URL is not configured", common.ErrorPositionsUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorPositionsUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorPositionsUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", common.ErrorPositionsUnavailable, resp.StatusCode)
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrorPositionsUnavailable, err)
	}

	return body, nil
}
