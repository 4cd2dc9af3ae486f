package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a minimal Vault KV v2 client used to fetch service credentials
// at startup.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Vault client for the given server address and token.
func NewClient(addr, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(addr, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// kvReadResponse is the KV v2 read envelope: data.data holds the key/value pairs.
type kvReadResponse struct {
	Data struct {
		Data map[string]string `json:"data"`
	} `json:"data"`
}

// Read fetches all key/value pairs at the given KV v2 path,
// e.g. "secret/data/openai".
func (c *Client) Read(ctx context.Context, path string) (map[string]string, error) {
	url := fmt.Sprintf("%s/v1/%s", c.baseURL, strings.TrimLeft(path, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to create request: %w", err)
	}
	req.Header.Set("X-Vault-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to call server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vault: read %s returned %d: %s", path, resp.StatusCode, string(raw))
	}

	var result kvReadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("vault: failed to decode response: %w", err)
	}

	return result.Data.Data, nil
}

// GetSecret fetches a single named value from the given KV v2 path.
func (c *Client) GetSecret(ctx context.Context, path, key string) (string, error) {
	data, err := c.Read(ctx, path)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok || value == "" {
		return "", fmt.Errorf("vault: key %q not found at %s", key, path)
	}
	return value, nil
}
