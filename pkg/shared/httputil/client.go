package httputil

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GetJSON sends a GET request with the given query parameters and headers.
// The response body and status code are returned even for non-2xx statuses
// so callers can map specific statuses (401 vs everything else) to their own
// error types. The returned error is non-nil only for transport-level
// failures where no response was received.
func GetJSON(ctx context.Context, baseURL string, params url.Values, headers map[string]string, timeoutSecs int) ([]byte, int, error) {
	requestURL := baseURL
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}
	client := &http.Client{Timeout: time.Duration(timeoutSecs) * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}
