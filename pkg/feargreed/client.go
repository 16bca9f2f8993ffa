package feargreed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
)

// alternative.me 恐慌贪婪指数响应
type IndexResponse struct {
	Data []IndexPoint `json:"data,omitempty"`
}

type IndexPoint struct {
	Value               string `json:"value"`
	ValueClassification string `json:"value_classification"`
	Timestamp           string `json:"timestamp"`
}

// Latest 返回最新一条指数，缺失时返回false
func (r *IndexResponse) Latest() (IndexPoint, bool) {
	if r == nil || len(r.Data) == 0 {
		return IndexPoint{}, false
	}
	return r.Data[0], true
}

type Client struct {
	indexURL   string
	httpClient *http.Client
}

func NewClient(rawUrl string) (*Client, error) {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil || parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", rawUrl)
	}

	return &Client{
		indexURL:   parsedUrl.String(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Index 拉取恐慌贪婪指数
func (c *Client) Index(ctx context.Context) (*IndexResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.indexURL, nil)
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
		return nil, fmt.Errorf("fear & greed request failed: %s", resp.Status)
	}

	byteData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var index IndexResponse
	if err := json.Unmarshal(byteData, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &index, nil
}
