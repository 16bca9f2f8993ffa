package coingecko

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
)

// CoinGecko 公开接口客户端，不需要api key
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(rawUrl string) (*Client, error) {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil || parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", rawUrl)
	}
	if len(parsedUrl.Path) > 0 && parsedUrl.Path[len(parsedUrl.Path)-1:] == "/" {
		parsedUrl.Path = parsedUrl.Path[:len(parsedUrl.Path)-1]
	}

	return &Client{
		baseURL:    parsedUrl.String(),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Markets 拉取市值前100的币种行情
// priceChange 允许 "24h" 或 "24h,7d,30d"；category 为空表示全部生态
func (c *Client) Markets(ctx context.Context, priceChange string, category string) ([]MarketEntry, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", "100")
	params.Set("page", "1")
	params.Set("sparkline", "true")
	params.Set("price_change_percentage", priceChange)
	if category != "" {
		params.Set("category", category)
	}

	var entries []MarketEntry
	if err := c.doRequestWithContext(ctx, "/coins/markets", params, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Global 拉取全局统计（BTC市值占比、活跃币种数）
func (c *Client) Global(ctx context.Context) (*GlobalStats, error) {
	var stats GlobalStats
	if err := c.doRequestWithContext(ctx, "/global", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// BitcoinMarketChart 拉取BTC指定天数的历史价格
func (c *Client) BitcoinMarketChart(ctx context.Context, days string) (*MarketChart, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", days)

	var chart MarketChart
	if err := c.doRequestWithContext(ctx, "/coins/bitcoin/market_chart", params, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

func (c *Client) doRequestWithContext(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqUrl := c.baseURL + endpoint
	if len(params) > 0 {
		reqUrl += "?" + params.Encode()
	}

	// 引入重试循环和指数退避，CoinGecko公开接口限频严格
	const maxRetries = 3
	const backoffBase = 2 * time.Second
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {

		// 检查 Context 是否已被取消
		if ctx.Err() != nil {
			return ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
		if err != nil {
			return fmt.Errorf("failed to create new request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("failed to execute request (network error): %w", err)
			goto Retry
		}

		if resp.StatusCode == http.StatusOK {
			byteData, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("failed to read response body: %w", err)
			}
			if err := json.Unmarshal(byteData, result); err != nil {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
			return nil
		}

		// 429 需要退避重试
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("received 429 Too Many Requests on attempt %d", attempt+1)
			goto Retry
		}

		// 其他非 OK 错误通常不可恢复
		resp.Body.Close()
		return fmt.Errorf("coingecko request failed: %s", resp.Status)

	Retry:
		if attempt == maxRetries-1 {
			return fmt.Errorf("coingecko request failed after %d retries. Last error: %w", maxRetries, lastErr)
		}

		waitTime := backoffBase * time.Duration(1<<attempt)
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("unexpected exit from retry loop")
}
