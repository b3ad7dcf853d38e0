package platformsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the platform's public endpoints and creates Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client with a timeout that covers the verifier's
// simulated latency.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SignInWithWorldID exchanges a World ID proof for a session. The new session
// has user type "pending".
func (c *Client) SignInWithWorldID(ctx context.Context, proof WorldIDProof) (*Session, error) {
	body, err := json.Marshal(proof)
	if err != nil {
		return nil, fmt.Errorf("failed to encode proof: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/worldid", bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return nil, err
	}

	var out SignInResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return c.NewSessionFromToken(out.AccessToken, out.ExpiresIn), nil
}

// NewSessionFromToken wraps a bearer token obtained earlier.
func (c *Client) NewSessionFromToken(accessToken string, expiresIn int) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
		expiresAt:   time.Now().Add(time.Duration(expiresIn) * time.Second),
	}
}
