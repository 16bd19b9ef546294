// Package downloader fetches remote podspec content.
package downloader

import (
	"fmt"
	"io"
	"net/http"
)

// Fetch retrieves the content behind a resolved spec URL. It returns the
// content bytes or an error when the request fails or the status is not
// 200 OK.
func Fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch podspec from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch podspec from %s: received status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read podspec body from %s: %w", url, err)
	}
	return body, nil
}
