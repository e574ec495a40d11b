package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPCountsFetcher reads the three aggregate count endpoints. Only counts
// travel over the wire; the presenter never needs individual records.
type HTTPCountsFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPCountsFetcher(baseURL string) *HTTPCountsFetcher {
	return &HTTPCountsFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *HTTPCountsFetcher) FetchCounts(ctx context.Context) (Counts, error) {
	posts, err := f.fetchCount(ctx, "/api/posts/count")
	if err != nil {
		return Counts{}, err
	}
	aduan, err := f.fetchCount(ctx, "/api/aduan/count")
	if err != nil {
		return Counts{}, err
	}
	payments, err := f.fetchCount(ctx, "/api/payments/awaiting/count")
	if err != nil {
		return Counts{}, err
	}
	return Counts{Posts: posts, Aduan: aduan, PaymentsAwaiting: payments}, nil
}

func (f *HTTPCountsFetcher) fetchCount(ctx context.Context, path string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Count, nil
}
