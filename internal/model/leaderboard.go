package model

import "nextrade/pkg/coingecko"

// 排行榜的时间维度
type LeaderboardTimeframe string

const (
	TimeframeAll LeaderboardTimeframe = "all"
	Timeframe30d LeaderboardTimeframe = "30d"
	Timeframe7d  LeaderboardTimeframe = "7d"
	Timeframe24h LeaderboardTimeframe = "24h"
)

func (t LeaderboardTimeframe) Valid() bool {
	switch t {
	case TimeframeAll, Timeframe30d, Timeframe7d, Timeframe24h:
		return true
	}
	return false
}

// 排行榜的链过滤维度，映射到CoinGecko的生态分类
type LeaderboardChain string

const (
	ChainAll      LeaderboardChain = "all"
	ChainEthereum LeaderboardChain = "ethereum"
	ChainArbitrum LeaderboardChain = "arbitrum"
	ChainBase     LeaderboardChain = "base"
	ChainSolana   LeaderboardChain = "solana"
)

func (c LeaderboardChain) Valid() bool {
	switch c {
	case ChainAll, ChainEthereum, ChainArbitrum, ChainBase, ChainSolana:
		return true
	}
	return false
}

// Category CoinGecko /coins/markets 的 category 参数，all 返回空
func (c LeaderboardChain) Category() string {
	switch c {
	case ChainEthereum:
		return "ethereum-ecosystem"
	case ChainArbitrum:
		return "arbitrum-ecosystem"
	case ChainBase:
		return "base-ecosystem"
	case ChainSolana:
		return "solana-ecosystem"
	}
	return ""
}

// LeaderboardPayload 排行榜推导的输入：行情列表+可缺失的全局统计
type LeaderboardPayload struct {
	Markets []coingecko.MarketEntry `json:"markets"`
	Global  *coingecko.GlobalStats  `json:"global"`
}

// LeaderboardRow 排行榜中的一行
// wallet 是由币种id确定性推导的伪地址，与跟单配置的key一致
type LeaderboardRow struct {
	Rank          int     `json:"rank"`
	Wallet        string  `json:"wallet"`
	Tier          string  `json:"tier,omitempty"` // 仅第一名携带
	Avatar        string  `json:"avatar"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"currentPrice"`
	WinRate       int     `json:"winRate"`
	TotalPnl      string  `json:"totalPnl"`
	TotalPnlValue float64 `json:"totalPnlValue"`
	Pnl30d        string  `json:"pnl30d"`
	Pnl30dValue   float64 `json:"pnl30dValue"`
	Pnl30dUp      bool    `json:"pnl30dPositive"`
	Volume        string  `json:"volume"`
	VolumeValue   float64 `json:"volumeValue"`
	Trades        string  `json:"trades"`
}

// LeaderboardStats 排行榜顶部的汇总，统计的是全部输入而非前100
type LeaderboardStats struct {
	TotalVolumeTraded string `json:"totalVolumeTraded"`
	TotalTraders      string `json:"totalTraders"`
	TotalPnlGenerated string `json:"totalPnlGenerated"`
	TotalPnlPositive  bool   `json:"totalPnlPositive"`
}

type LeaderboardViewModel struct {
	Rows  []LeaderboardRow `json:"rows"`
	Stats LeaderboardStats `json:"stats"`
}

// LeaderboardListReq 排行榜接口请求
type LeaderboardListReq struct {
	Timeframe string `json:"timeframe" form:"timeframe"`
	Chain     string `json:"chain" form:"chain"`
}
