package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"

	// redis缓存key
	MarketOverviewKey    = "market:overview"
	MarketChartKeyPrefix = "market:chart:"
	GasOverviewKey       = "market:gas"
	TrendingProtocolsKey = "market:trending"
	FearGreedKey         = "market:feargreed"
	LeaderboardKeyPrefix = "leaderboard:markets:"
)

// 跟单配置在本地存储中的固定key（与前端localStorage同名）
const CopyTradingStorageKey = "nextrade:copy-trading"
