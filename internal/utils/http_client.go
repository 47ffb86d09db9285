package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. Every request
// made through it inherits the timeout and asks for a JSON response.
// A non-positive timeout leaves the resty default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/entities")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	cli := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}

	return &HTTPClient{Client: cli}
}
