// Package catalog fetches the online theme catalogs. Each catalog URL
// serves a JSON array of theme records.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/model"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "hyprtheme/1.0"

// maxCatalogSize bounds how much of a response body is read.
const maxCatalogSize = 8 << 20

// HTTPClient fetches catalogs over HTTP.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a catalog client with the given timeout and user agent.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads every catalog in order and returns the union of their
// themes. A theme whose ID was already seen, or is in exclude, is dropped,
// so the first catalog listing an ID wins. Any failing URL fails the fetch.
func (hc *HTTPClient) Fetch(ctx context.Context, urls []string, exclude model.ThemeIDSet) ([]model.Theme, error) {
	seen := make(model.ThemeIDSet)
	var themes []model.Theme
	for _, u := range urls {
		records, err := hc.FetchURL(ctx, u)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			t := rec.Theme()
			if exclude.Contains(t.ID()) || seen.Contains(t.ID()) {
				continue
			}
			seen[t.ID()] = struct{}{}
			themes = append(themes, t)
		}
		logger.Debug("Fetched catalog", logger.Fields{"url": u, "records": len(records)})
	}
	return themes, nil
}

// FetchURL downloads and decodes a single catalog.
func (hc *HTTPClient) FetchURL(ctx context.Context, catalogURL string) ([]model.CatalogRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, catalogURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCatalogFetch, "invalid catalog URL %s: %v", catalogURL, err)
	}

	req.Header.Set("User-Agent", hc.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", catalogURL, errors.ErrCatalogFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrCatalogFetch, "%s: unexpected status code: %d", catalogURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: failed to read response body: %w", catalogURL, errors.ErrCatalogFetch, err)
	}

	var records []model.CatalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %w: malformed catalog: %w", catalogURL, errors.ErrCatalogFetch, err)
	}
	return records, nil
}
