package defillama

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
)

// DeFiLlama 协议条目，tvl和chains可能缺失
type Protocol struct {
	Name   string   `json:"name"`
	Tvl    *float64 `json:"tvl,omitempty"`
	Chains []string `json:"chains,omitempty"`
}

// DeFiLlama 协议列表客户端
type Client struct {
	protocolsURL string
	httpClient   *http.Client
}

func NewClient(rawUrl string) (*Client, error) {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil || parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", rawUrl)
	}

	return &Client{
		protocolsURL: parsedUrl.String(),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Protocols 拉取全部协议及其TVL
func (c *Client) Protocols(ctx context.Context) ([]Protocol, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.protocolsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("defillama protocols request failed: %s", resp.Status)
	}

	byteData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var protocols []Protocol
	if err := json.Unmarshal(byteData, &protocols); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return protocols, nil
}
