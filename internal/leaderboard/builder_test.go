package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
)

func fp(v float64) *float64 { return &v }

func TestPseudoWallet(t *testing.T) {
	// 固定向量，哈希实现改动时必须能察觉
	cases := map[string]string{
		"bitcoin":  "0x55...427d",
		"ethereum": "0x99...78a0",
		"solana":   "0x22...2651",
		"dogecoin": "0x9b...8641",
	}
	for id, want := range cases {
		assert.Equal(t, want, PseudoWallet(id), id)
	}

	// 确定性：同一id重复计算结果一致
	assert.Equal(t, PseudoWallet("cardano"), PseudoWallet("cardano"))
}

func TestDeriveWinRateBounds(t *testing.T) {
	// 极端行情下胜率也要落在[20,95]
	hot := &coingecko.MarketEntry{
		PriceChangePct24h: fp(500),
		PriceChangePct7d:  fp(800),
		PriceChangePct30d: fp(1200),
	}
	assert.Equal(t, 95, deriveWinRate(hot))

	cold := &coingecko.MarketEntry{
		PriceChangePct24h: fp(-90),
		PriceChangePct7d:  fp(-95),
		PriceChangePct30d: fp(-99),
	}
	assert.Equal(t, 35, deriveWinRate(cold)) // 45 + 0 + (-10)
}

func TestDeriveWinRateAllMissing(t *testing.T) {
	// 三个涨跌幅全缺失时回落到基准分
	assert.Equal(t, 45, deriveWinRate(&coingecko.MarketEntry{}))
}

func TestSortMarketsByTimeframe(t *testing.T) {
	markets := []coingecko.MarketEntry{
		{ID: "a", MarketCapRank: 2, PriceChangePct24h: fp(1)},
		{ID: "b", MarketCapRank: 0, PriceChangePct24h: nil},
		{ID: "c", MarketCapRank: 1, PriceChangePct24h: fp(9)},
	}

	by24h := SortMarkets(markets, model.Timeframe24h)
	assert.Equal(t, []string{"c", "a", "b"}, ids(by24h))

	// all 按市值排名升序，无排名的沉底
	byAll := SortMarkets(markets, model.TimeframeAll)
	assert.Equal(t, []string{"c", "a", "b"}, ids(byAll))

	// 入参不被改动
	assert.Equal(t, "a", markets[0].ID)
}

func TestSortMarketsStable(t *testing.T) {
	markets := []coingecko.MarketEntry{
		{ID: "x", PriceChangePct7d: fp(5)},
		{ID: "y", PriceChangePct7d: fp(5)},
		{ID: "z", PriceChangePct7d: fp(5)},
	}
	sorted := SortMarkets(markets, model.Timeframe7d)
	assert.Equal(t, []string{"x", "y", "z"}, ids(sorted))
}

func ids(markets []coingecko.MarketEntry) []string {
	out := make([]string, 0, len(markets))
	for i := range markets {
		out = append(out, markets[i].ID)
	}
	return out
}

func TestBuildViewModel(t *testing.T) {
	markets := []coingecko.MarketEntry{
		{
			ID:                 "bitcoin",
			Symbol:             "btc",
			Name:               "Bitcoin",
			Image:              "https://img.test/btc.png",
			CurrentPrice:       50000,
			MarketCap:          1000000000,
			MarketCapRank:      1,
			TotalVolume:        25000000000,
			PriceChangePct24h:  fp(5),
			PriceChangePct7d:   fp(10),
			PriceChangePct30d:  fp(20),
			MarketCapChange24h: fp(1500000),
		},
		{
			ID:                 "ethereum",
			Symbol:             "eth",
			Name:               "Ethereum",
			CurrentPrice:       3000,
			MarketCap:          500000000,
			MarketCapRank:      2,
			TotalVolume:        12000000000,
			PriceChangePct24h:  fp(-2),
			PriceChangePct30d:  fp(-10),
			MarketCapChange24h: fp(-800000),
		},
	}
	active := 12000
	payload := &model.LeaderboardPayload{
		Markets: markets,
		Global: &coingecko.GlobalStats{
			Data: &coingecko.GlobalData{ActiveCryptocurrencies: &active},
		},
	}

	vm := BuildViewModel(payload, model.TimeframeAll)
	require.Len(t, vm.Rows, 2)

	first := vm.Rows[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "0x55...427d", first.Wallet)
	assert.Equal(t, "BTC Bitcoin", first.Tier)
	assert.Equal(t, "BTC", first.Symbol)
	assert.Equal(t, 1500000.0, first.TotalPnlValue)
	assert.Equal(t, "+$1.5M", first.TotalPnl)
	// 30d盈亏 = 市值 * 30d% / 100
	assert.Equal(t, 200000000.0, first.Pnl30dValue)
	assert.True(t, first.Pnl30dUp)
	assert.Equal(t, "$25B", first.Volume)

	second := vm.Rows[1]
	assert.Equal(t, 2, second.Rank)
	assert.Empty(t, second.Tier)
	assert.False(t, second.Pnl30dUp)

	// rank 连续且从1开始
	for i, row := range vm.Rows {
		assert.Equal(t, i+1, row.Rank)
	}

	stats := vm.Stats
	assert.Equal(t, "$37B", stats.TotalVolumeTraded)
	assert.Equal(t, "12,000", stats.TotalTraders)
	assert.Equal(t, "+$700K", stats.TotalPnlGenerated)
	assert.True(t, stats.TotalPnlPositive)
}

func TestBuildStatsWithoutGlobal(t *testing.T) {
	payload := &model.LeaderboardPayload{
		Markets: []coingecko.MarketEntry{{TotalVolume: 100}, {TotalVolume: 200}},
	}
	stats := buildStats(payload)
	assert.Equal(t, "2", stats.TotalTraders)
	assert.Equal(t, "$300", stats.TotalVolumeTraded)
}

func TestBuildRowsCap(t *testing.T) {
	markets := make([]coingecko.MarketEntry, 150)
	for i := range markets {
		markets[i] = coingecko.MarketEntry{
			ID:            "coin",
			MarketCapRank: i + 1,
			CurrentPrice:  1,
		}
	}
	rows := buildRows(markets, model.TimeframeAll)
	assert.Len(t, rows, 100)
}
