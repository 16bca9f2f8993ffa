package model

// 市场总览相关的展示模型，全部由原始行情推导，随用随算

// 图表的时间范围
type ChartRange string

const (
	ChartRange1h ChartRange = "1h"
	ChartRange1d ChartRange = "1d"
	ChartRange7d ChartRange = "7d"
	ChartRange1m ChartRange = "1m"
	ChartRange3m ChartRange = "3m"
)

// Valid 校验范围参数
func (r ChartRange) Valid() bool {
	switch r {
	case ChartRange1h, ChartRange1d, ChartRange7d, ChartRange1m, ChartRange3m:
		return true
	}
	return false
}

// Days CoinGecko market_chart 接口的天数参数
func (r ChartRange) Days() string {
	switch r {
	case ChartRange1h, ChartRange1d:
		return "1"
	case ChartRange7d:
		return "7"
	case ChartRange1m:
		return "30"
	case ChartRange3m:
		return "90"
	}
	return "1"
}

// MarketRow 跑马灯/涨跌榜里的一行
type MarketRow struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
	Change string `json:"change"`
}

// ChartPoint 图表中的一个点，时间升序
type ChartPoint struct {
	Time       string  `json:"time"`
	Price      float64 `json:"price"`
	PriceLabel string  `json:"priceLabel"` // 悬浮提示用的紧凑写法
	Timestamp  int64   `json:"timestamp,omitempty"` // 毫秒
}

// TrendingProtocolItem 热门DeFi协议展示行
type TrendingProtocolItem struct {
	Rank  string `json:"rank"` // 两位补零，如 "01"
	Name  string `json:"name"`
	Chain string `json:"chain"`
	Tvl   string `json:"tvl"`
}

// GasRow 单条链的gas展示行
type GasRow struct {
	Name  string `json:"name"`
	Value string `json:"value"` // 如 "12.4 Gwei"
	Low   string `json:"low"`
	Avg   string `json:"avg"`
	Fast  string `json:"fast"`
}

// MarketOverviewViewModel 市场总览页的完整展示模型
type MarketOverviewViewModel struct {
	TickerItems []MarketRow  `json:"tickerItems"`
	TopGainers  []MarketRow  `json:"topGainers"`
	TopLosers   []MarketRow  `json:"topLosers"`
	ChartData   []ChartPoint `json:"chartData"`

	BtcPriceLabel     string `json:"btcPriceLabel"`
	BtcChangeLabel    string `json:"btcChangeLabel"`
	BtcChangePositive bool   `json:"btcChangePositive"`
	BtcMarketCapLabel string `json:"btcMarketCapLabel"`
	BtcVolumeLabel    string `json:"btcVolumeLabel"`
	BtcDominanceLabel string `json:"btcDominanceLabel"`
	GreedLabel        string `json:"greedLabel"`

	TooltipTimeLabel  string `json:"tooltipTimeLabel"`
	TooltipPriceLabel string `json:"tooltipPriceLabel"`

	// 数据源为空时置true，前端据此提示展示的是占位数据
	IsUsingFallbackData bool `json:"isUsingFallbackData"`
}

// MarketChartReq 图表接口请求
type MarketChartReq struct {
	Range string `json:"range" form:"range" binding:"required,oneof=1h 1d 7d 1m 3m"`
}

// FearGreedRes 恐慌贪婪指数响应
// 上游的value是字符串，score是转好的数值方便前端画仪表盘
type FearGreedRes struct {
	Value          string `json:"value"`
	Score          int    `json:"score"`
	Classification string `json:"classification"`
	Timestamp      string `json:"timestamp"`
	Label          string `json:"label"` // 如 "72 (Greed)"
}
