/* http.go
 * Contains the shared HTTP helpers used by the Battlefy and Overbuff clients. Every request is a single attempt,
 * bounded by the client timeout and the caller's context
 * Authors: Zachary Bower
 */

package external

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is used when a client is created with a zero timeout
const DefaultTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// joinURL appends path to base, tolerating a trailing slash on base
func joinURL(base string, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// fetch performs a GET request against url and returns the raw body
// Preconditions: Receives context, http client, url and optional headers to apply to the request
// Postconditions: Returns the response body, or a NetworkError if the request failed or did not return 200
func fetch(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	for k, v := range headers {
		request.Header.Set(k, v)
	}
	request.Header.Set("Accept-Encoding", "gzip")

	response, err := client.Do(request)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("unexpected status code %d", response.StatusCode)}
	}

	// We asked for gzip ourselves, so the transport leaves decompression to us
	var reader io.Reader = response.Body
	if response.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, &NetworkError{URL: url, Err: fmt.Errorf("failed to create gzip reader: %w", err)}
		}
		defer gz.Close()
		reader = gz
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}

// getJSON fetches url and decodes the body into T
func getJSON[T any](ctx context.Context, client *http.Client, url string) (T, error) {
	var result T

	body, err := fetch(ctx, client, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, &DecodeError{URL: url, Err: err}
	}
	return result, nil
}
