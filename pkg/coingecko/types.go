package coingecko

// CoinGecko /coins/markets 返回的行情条目
// 涨跌幅等字段可能缺失，统一用指针表示可空
type MarketEntry struct {
	ID                 string     `json:"id"`
	Symbol             string     `json:"symbol"`
	Name               string     `json:"name"`
	Image              string     `json:"image"`
	CurrentPrice       float64    `json:"current_price"`
	MarketCap          float64    `json:"market_cap"`
	MarketCapRank      int        `json:"market_cap_rank"`
	TotalVolume        float64    `json:"total_volume"`
	PriceChangePct24h  *float64   `json:"price_change_percentage_24h"`
	PriceChangePct7d   *float64   `json:"price_change_percentage_7d_in_currency"`
	PriceChangePct30d  *float64   `json:"price_change_percentage_30d_in_currency"`
	MarketCapChange24h *float64   `json:"market_cap_change_24h"`
	Sparkline7d        *Sparkline `json:"sparkline_in_7d,omitempty"`
	LastUpdated        string     `json:"last_updated,omitempty"`
}

type Sparkline struct {
	Price []float64 `json:"price"`
}

// CoinGecko /global 返回的全局统计
type GlobalStats struct {
	Data *GlobalData `json:"data,omitempty"`
}

type GlobalData struct {
	ActiveCryptocurrencies *int               `json:"active_cryptocurrencies,omitempty"`
	MarketCapPercentage    map[string]float64 `json:"market_cap_percentage,omitempty"`
}

// BtcDominance 返回BTC市值占比，缺失时返回false
func (g *GlobalStats) BtcDominance() (float64, bool) {
	if g == nil || g.Data == nil || g.Data.MarketCapPercentage == nil {
		return 0, false
	}
	v, ok := g.Data.MarketCapPercentage["btc"]
	return v, ok
}

// ActiveCount 返回收录的币种总数，缺失时返回false
func (g *GlobalStats) ActiveCount() (int, bool) {
	if g == nil || g.Data == nil || g.Data.ActiveCryptocurrencies == nil {
		return 0, false
	}
	return *g.Data.ActiveCryptocurrencies, true
}

// CoinGecko /coins/bitcoin/market_chart 返回的历史价格序列
// prices 的每一项是 [毫秒时间戳, 价格]
type MarketChart struct {
	Prices [][2]float64 `json:"prices"`
}
