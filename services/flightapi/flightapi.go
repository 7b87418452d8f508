package flightapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches the raw arrivals document from the third-party flight API.
// The response body is returned undecoded: the upstream envelope is not
// contractually fixed, so shape probing happens downstream.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDocument performs one GET against the arrivals endpoint. No retry;
// the operator re-triggers the sync on failure.
func (c *Client) FetchDocument() (json.RawMessage, error) {
	resp, err := c.http.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("error fetching flight data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading flight data: %w", err)
	}
	return body, nil
}
