package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 配置加载（外部行情源、redis、日志等）

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

// RedisConfig is used to configure redis
type RedisConfig struct {
	Addr         string `yaml:"address"`
	Password     string `yaml:"password"`
	Db           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool-size"`
	MinIdleConns int    `yaml:"min-idle-conns"`
	IdleTimeout  int    `yaml:"idle-timeout"`
}

// RpcConfig 各链的 JSON-RPC 节点地址，用于查询 gas price
type RpcConfig struct {
	Ethereum string `yaml:"ethereum"`
	Bnb      string `yaml:"bnb"`
	Polygon  string `yaml:"polygon"`
}

// ExternalConfig 外部公开行情数据源
type ExternalConfig struct {
	CoingeckoBaseUrl      string    `yaml:"coingecko-base-url"`
	DefillamaProtocolsUrl string    `yaml:"defillama-protocols-url"`
	FearGreedUrl          string    `yaml:"fear-greed-url"`
	Rpc                   RpcConfig `yaml:"rpc"`
}

// CacheTTLConfig 各数据源的缓存有效期（秒），对应前端的刷新节奏
type CacheTTLConfig struct {
	Overview  int `yaml:"overview"`
	Chart     int `yaml:"chart"`
	Gas       int `yaml:"gas"`
	Trending  int `yaml:"trending"`
	FearGreed int `yaml:"fear-greed"`
}

// StoreConfig 跟单配置的本地存储文件
type StoreConfig struct {
	Path string `yaml:"path"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Log      LogConfig      `yaml:"log"`
	Redis    RedisConfig    `yaml:"redis"`
	External ExternalConfig `yaml:"external"`
	Cache    CacheTTLConfig `yaml:"cache"`
	Store    StoreConfig    `yaml:"store"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	applyDefaults(&AppConfig)
	return nil
}

// 填充未配置项的默认值
func applyDefaults(c *Config) {
	if c.Listen == "" {
		c.Listen = ":12190"
	}
	if c.MaxPingCount == 0 {
		c.MaxPingCount = 10
	}
	if c.External.CoingeckoBaseUrl == "" {
		c.External.CoingeckoBaseUrl = "https://api.coingecko.com/api/v3"
	}
	if c.External.DefillamaProtocolsUrl == "" {
		c.External.DefillamaProtocolsUrl = "https://api.llama.fi/protocols"
	}
	if c.External.FearGreedUrl == "" {
		c.External.FearGreedUrl = "https://api.alternative.me/fng/"
	}
	if c.Cache.Overview == 0 {
		c.Cache.Overview = 60
	}
	if c.Cache.Chart == 0 {
		c.Cache.Chart = 60
	}
	if c.Cache.Gas == 0 {
		c.Cache.Gas = 60
	}
	if c.Cache.Trending == 0 {
		c.Cache.Trending = 300
	}
	if c.Cache.FearGreed == 0 {
		c.Cache.FearGreed = 300
	}
	if c.Store.Path == "" {
		c.Store.Path = "data/copy-trading.json"
	}
}
