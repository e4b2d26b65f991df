package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:17580", 5*time.Second)
//	resp, err := client.R().Get("/api/ping")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client with baseURL and a per-request timeout.
// Retries are disabled: a fetch session issues exactly one request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
