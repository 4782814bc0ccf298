// Package client talks to the remote product-search API and falls back
// to the local catalog facade when the remote side is unreachable.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SaharHalili95/price-comparison-platform/pkg/catalog"
	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
)

// DefaultTimeout is the budget for a remote search round-trip.
const DefaultTimeout = 4 * time.Second

type Client struct {
	http    *http.Client
	baseURL string
	local   *catalog.Catalog
}

// New builds a search client. baseURL may be empty, in which case every
// search is served locally. local must not be nil.
func New(baseURL string, timeout time.Duration, local *catalog.Catalog) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		local:   local,
	}
}

// Search queries the remote API. On any failure (transport error,
// timeout, non-2xx status, malformed payload) the local catalog serves
// the results instead and the returned error describes why the remote
// side was skipped. The response is always usable.
func (c *Client) Search(ctx context.Context, query string) (models.SearchResponse, error) {
	if c.baseURL == "" {
		return c.localSearch(query), nil
	}

	remote, err := c.remoteSearch(ctx, query)
	if err != nil {
		return c.localSearch(query), fmt.Errorf("remote search unavailable: %w", err)
	}
	return remote, nil
}

func (c *Client) remoteSearch(ctx context.Context, query string) (models.SearchResponse, error) {
	searchURL := c.baseURL + "/api/products/search?query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return models.SearchResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.SearchResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.SearchResponse{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.SearchResponse{}, fmt.Errorf("malformed payload: %w", err)
	}
	return out, nil
}

func (c *Client) localSearch(query string) models.SearchResponse {
	products := c.local.Search(query)
	return models.SearchResponse{
		Query:        query,
		TotalResults: len(products),
		Products:     products,
	}
}
