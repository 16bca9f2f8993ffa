package market

import "nextrade/internal/model"

// 上游完全拿不到数据时的占位行情，保证页面不空白
// 数值是写死的快照，配合 isUsingFallbackData 提示前端

var fallbackTicker = []model.MarketRow{
	{Symbol: "BTC", Price: "$64,230.50", Change: "+2.4%"},
	{Symbol: "ETH", Price: "$3,450.12", Change: "-0.8%"},
	{Symbol: "SOL", Price: "$145.80", Change: "+5.2%"},
	{Symbol: "BNB", Price: "$590.20", Change: "+1.1%"},
	{Symbol: "ADA", Price: "$0.45", Change: "-1.5%"},
	{Symbol: "XRP", Price: "$0.62", Change: "+0.5%"},
	{Symbol: "DOGE", Price: "$0.16", Change: "+8.4%"},
	{Symbol: "DOT", Price: "$7.20", Change: "-2.1%"},
}

var fallbackGainers = []model.MarketRow{
	{Symbol: "PEPE", Price: "$0.000008", Change: "+18.4%"},
	{Symbol: "RNDR", Price: "$10.24", Change: "+12.1%"},
	{Symbol: "NEAR", Price: "$7.85", Change: "+9.5%"},
	{Symbol: "FET", Price: "$2.40", Change: "+8.2%"},
	{Symbol: "AGIX", Price: "$0.98", Change: "+7.9%"},
}

var fallbackLosers = []model.MarketRow{
	{Symbol: "WIF", Price: "$3.10", Change: "-8.4%"},
	{Symbol: "OP", Price: "$2.34", Change: "-5.1%"},
	{Symbol: "ARB", Price: "$1.12", Change: "-4.5%"},
	{Symbol: "LDO", Price: "$2.05", Change: "-3.8%"},
	{Symbol: "TIA", Price: "$10.45", Change: "-3.2%"},
}

// BTC数据缺失时的兜底数值
const (
	fallbackBtcPrice     = 64230.5
	fallbackBtcChange    = 2.4
	fallbackBtcMarketCap = 1.24e12
	fallbackBtcVolume    = 45.2e9
	fallbackBtcDominance = 52.4
)

func cloneRows(rows []model.MarketRow) []model.MarketRow {
	out := make([]model.MarketRow, len(rows))
	copy(out, rows)
	return out
}
