package model

// CopyTradeConfig 一条跟单配置，wallet 即排行榜的伪地址，作为唯一key
type CopyTradeConfig struct {
	Wallet          string  `json:"wallet"`
	Symbol          string  `json:"symbol"`
	Chain           string  `json:"chain"`
	AllocationUsd   float64 `json:"allocationUsd"`
	MaxPositionSize float64 `json:"maxPositionSize"`
	StopLoss        float64 `json:"stopLoss"`
	CopiedAt        string  `json:"copiedAt"` // ISO8601 UTC
}

// CopyTradeSaveReq 保存跟单配置的请求体
// 金额、仓位、止损都必须大于0，否则整体拒绝
type CopyTradeSaveReq struct {
	Wallet          string  `json:"wallet" binding:"required"`
	Symbol          string  `json:"symbol" binding:"required"`
	Chain           string  `json:"chain" binding:"required,oneof=all ethereum arbitrum base solana"`
	AllocationUsd   float64 `json:"allocationUsd" binding:"required,gt=0"`
	MaxPositionSize float64 `json:"maxPositionSize" binding:"required,gt=0"`
	StopLoss        float64 `json:"stopLoss" binding:"required,gt=0"`
}

// CopyTradeListRes 跟单配置列表响应
type CopyTradeListRes struct {
	Total int               `json:"total"`
	List  []CopyTradeConfig `json:"list"`
}
