package gasrpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// 支持的链，key与前端展示约定一致
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkBnb      Network = "bnb"
	NetworkPolygon  Network = "polygon"
)

// Snapshot 单条链的一次gas采样
type Snapshot struct {
	Network Network `json:"network"`
	AvgGwei float64 `json:"avgGwei"`
}

// 通过各链 JSON-RPC 的 eth_gasPrice 查询当前gas价格
type Client struct {
	endpoints  map[Network]string
	httpClient *http.Client
}

// NewClient endpoints 为空的链会被跳过
func NewClient(endpoints map[Network]string) *Client {
	eps := make(map[Network]string, len(endpoints))
	for network, endpoint := range endpoints {
		if endpoint != "" {
			eps[network] = endpoint
		}
	}
	return &Client{
		endpoints:  eps,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Networks 返回配置了节点的链列表
func (c *Client) Networks() []Network {
	// 固定顺序，方便前端稳定展示
	all := []Network{NetworkEthereum, NetworkBnb, NetworkPolygon}
	networks := make([]Network, 0, len(c.endpoints))
	for _, n := range all {
		if _, ok := c.endpoints[n]; ok {
			networks = append(networks, n)
		}
	}
	return networks
}

type rpcRequest struct {
	Jsonrpc string        `json:"jsonrpc"`
	Id      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	Result string `json:"result,omitempty"`
}

// GasPrice 查询单条链的平均gas价格（换算为gwei）
func (c *Client) GasPrice(ctx context.Context, network Network) (Snapshot, error) {
	endpoint, ok := c.endpoints[network]
	if !ok {
		return Snapshot{}, fmt.Errorf("no rpc endpoint configured for network %s", network)
	}

	reqBody, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		Id:      1,
		Method:  "eth_gasPrice",
		Params:  []interface{}{},
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s gas rpc request failed: %w", network, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("%s gas rpc request failed: %s", network, resp.Status)
	}

	byteData, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(byteData, &rpcResp); err != nil {
		return Snapshot{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if rpcResp.Result == "" {
		return Snapshot{}, fmt.Errorf("%s gas rpc missing result", network)
	}

	wei, err := strconv.ParseUint(strings.TrimPrefix(rpcResp.Result, "0x"), 16, 64)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s gas rpc invalid hex result %q: %w", network, rpcResp.Result, err)
	}

	return Snapshot{
		Network: network,
		AvgGwei: float64(wei) / 1e9,
	}, nil
}
