package petsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ImageFetcher returns the URL of a random dog image.
// This interface is implemented by *ImageClient and can be used for testing.
type ImageFetcher interface {
	RandomImage(ctx context.Context) (string, error)
}

// Ensure ImageClient implements ImageFetcher at compile time.
var _ ImageFetcher = (*ImageClient)(nil)

// ImageClient talks to the dog.ceo random image API and warms image URLs.
type ImageClient struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string

	mu     sync.Mutex
	warmed map[string]bool
}

const (
	DefaultImageAPI  = "https://dog.ceo/api/breeds/image/random"
	defaultUserAgent = "pawsmatch/0.1"
	requestTimeout   = 5 * time.Second
)

// NewImageClient builds a client for the given random image endpoint. An
// empty endpoint uses DefaultImageAPI.
func NewImageClient(endpoint string) (*ImageClient, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &ImageClient{
		endpoint: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		warmed:    make(map[string]bool),
	}, nil
}

// RandomImage asks the API for one random image URL.
func (c *ImageClient) RandomImage(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload ImageResponse
	if err := c.getJSON(ctx, c.endpoint.String(), &payload); err != nil {
		return "", err
	}
	return payload.URL()
}

// Warm downloads imageURL and discards the body so a later display request
// hits a warm cache. Successful URLs are remembered and not fetched again.
func (c *ImageClient) Warm(ctx context.Context, imageURL string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return fmt.Errorf("image url is empty")
	}
	if c.Warmed(imageURL) {
		return nil
	}

	resp, err := c.get(ctx, imageURL, "image/*")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	c.mu.Lock()
	c.warmed[imageURL] = true
	c.mu.Unlock()
	return nil
}

// Warmed reports whether imageURL has been fetched successfully before.
func (c *ImageClient) Warmed(imageURL string) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warmed[strings.TrimSpace(imageURL)]
}

func (c *ImageClient) getJSON(ctx context.Context, rawURL string, dest any) error {
	resp, err := c.get(ctx, rawURL, "application/json")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *ImageClient) get(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode >= 400 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("get %s returned status %d", rawURL, resp.StatusCode)
	}
	return resp, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultImageAPI
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse image api %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse image api %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
