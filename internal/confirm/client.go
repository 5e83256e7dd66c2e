// Package confirm sends the outbound create-registration request that
// confirms a form registration with the remote endpoint.
package confirm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
)

// DefaultURL is a public echo endpoint that accepts any JSON post.
const DefaultURL = "https://jsonplaceholder.typicode.com/posts"

// ErrRejected is returned when the endpoint answers with a non-2xx status.
var ErrRejected = errors.New("registration rejected by remote endpoint")

// ErrTransport is returned when no response could be obtained.
var ErrTransport = errors.New("registration request failed")

// Client posts registrations as JSON.
type Client struct {
	http *http.Client
	url  string
}

// NewClient returns a Client for url. A nil http.Client means http.DefaultClient.
func NewClient(client *http.Client, url string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultURL
	}
	return &Client{http: client, url: url}
}

// CreateRegistration posts p and classifies the outcome.
func (c *Client) CreateRegistration(ctx context.Context, p model.RegistrationPayload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}
