package leaderboard

import (
	"math"
	"sort"
	"strings"

	"nextrade/internal/format"
	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
)

const maxRows = 100

// performanceValue 币种在指定时间维度下的排序依据
// all 用市值排名取负，排名缺失的沉底
func performanceValue(coin *coingecko.MarketEntry, timeframe model.LeaderboardTimeframe) float64 {
	pick := func(p *float64) float64 {
		if p == nil {
			return math.Inf(-1)
		}
		return *p
	}

	switch timeframe {
	case model.Timeframe30d:
		return pick(coin.PriceChangePct30d)
	case model.Timeframe7d:
		return pick(coin.PriceChangePct7d)
	case model.Timeframe24h:
		return pick(coin.PriceChangePct24h)
	}

	if coin.MarketCapRank > 0 {
		return -float64(coin.MarketCapRank)
	}
	return math.Inf(-1)
}

// SortMarkets 按时间维度的表现降序排序，不改动入参
// 相同表现保持上游返回顺序
func SortMarkets(markets []coingecko.MarketEntry, timeframe model.LeaderboardTimeframe) []coingecko.MarketEntry {
	sorted := make([]coingecko.MarketEntry, len(markets))
	copy(sorted, markets)

	sort.SliceStable(sorted, func(i, j int) bool {
		return performanceValue(&sorted[i], timeframe) > performanceValue(&sorted[j], timeframe)
	})
	return sorted
}

// deriveWinRate 用三个涨跌幅估算胜率，缺失则不计入
// 动量截断在[-10,30]，结果截断在[20,95]
func deriveWinRate(coin *coingecko.MarketEntry) int {
	var points []float64
	for _, p := range []*float64{coin.PriceChangePct24h, coin.PriceChangePct7d, coin.PriceChangePct30d} {
		if p != nil {
			points = append(points, *p)
		}
	}

	positives := 0
	momentum := 0.0
	if len(points) > 0 {
		sum := 0.0
		for _, v := range points {
			sum += v
			if v > 0 {
				positives++
			}
		}
		momentum = sum / float64(len(points))
	}
	momentum = math.Max(-10, math.Min(momentum, 30))

	score := 45 + float64(positives)*15 + momentum
	return int(math.Max(20, math.Min(95, math.Round(score))))
}

// estimateTrades 用成交额除以价格粗估交易笔数
func estimateTrades(coin *coingecko.MarketEntry) string {
	currentPrice := coin.CurrentPrice
	if currentPrice == 0 {
		currentPrice = 1
	}
	return format.Count(coin.TotalVolume / math.Max(currentPrice, 0.0001))
}

func buildRows(markets []coingecko.MarketEntry, timeframe model.LeaderboardTimeframe) []model.LeaderboardRow {
	sorted := SortMarkets(markets, timeframe)
	if len(sorted) > maxRows {
		sorted = sorted[:maxRows]
	}

	rows := make([]model.LeaderboardRow, 0, len(sorted))
	for i := range sorted {
		coin := &sorted[i]

		dailyChange := 0.0
		if coin.MarketCapChange24h != nil {
			dailyChange = *coin.MarketCapChange24h
		}
		monthlyPct := 0.0
		if coin.PriceChangePct30d != nil {
			monthlyPct = *coin.PriceChangePct30d
		}
		monthlyPnl := coin.MarketCap * (monthlyPct / 100)

		row := model.LeaderboardRow{
			Rank:          i + 1,
			Wallet:        PseudoWallet(coin.ID),
			Avatar:        coin.Image,
			Symbol:        strings.ToUpper(coin.Symbol),
			Name:          coin.Name,
			CurrentPrice:  coin.CurrentPrice,
			WinRate:       deriveWinRate(coin),
			TotalPnl:      format.SignedCurrency(dailyChange),
			TotalPnlValue: dailyChange,
			Pnl30d:        format.SignedCurrency(monthlyPnl),
			Pnl30dValue:   monthlyPnl,
			Pnl30dUp:      monthlyPnl >= 0,
			Volume:        format.CompactCurrency(coin.TotalVolume),
			VolumeValue:   coin.TotalVolume,
			Trades:        estimateTrades(coin),
		}
		if i == 0 {
			row.Tier = strings.ToUpper(coin.Symbol) + " " + coin.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// buildStats 汇总口径是全部输入行情，不止展示的前100
func buildStats(payload *model.LeaderboardPayload) model.LeaderboardStats {
	totalVolume := 0.0
	totalDailyPnl := 0.0
	for i := range payload.Markets {
		m := &payload.Markets[i]
		totalVolume += m.TotalVolume
		if m.MarketCapChange24h != nil {
			totalDailyPnl += *m.MarketCapChange24h
		}
	}

	totalTraders := len(payload.Markets)
	if n, ok := payload.Global.ActiveCount(); ok && n > 0 {
		totalTraders = n
	}

	return model.LeaderboardStats{
		TotalVolumeTraded: format.CompactCurrency(totalVolume),
		TotalTraders:      format.Count(float64(totalTraders)),
		TotalPnlGenerated: format.SignedCurrency(totalDailyPnl),
		TotalPnlPositive:  totalDailyPnl >= 0,
	}
}

// BuildViewModel 把行情快照推导成排行榜视图
func BuildViewModel(payload *model.LeaderboardPayload, timeframe model.LeaderboardTimeframe) *model.LeaderboardViewModel {
	return &model.LeaderboardViewModel{
		Rows:  buildRows(payload.Markets, timeframe),
		Stats: buildStats(payload),
	}
}
