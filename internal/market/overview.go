package market

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"nextrade/internal/format"
	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
	"nextrade/pkg/feargreed"
)

// OverviewPayload 总览推导的全部输入，任一项都允许缺失
type OverviewPayload struct {
	Markets   []coingecko.MarketEntry
	Global    *coingecko.GlobalStats
	FearGreed *feargreed.IndexPoint
}

func mapRow(coin *coingecko.MarketEntry) model.MarketRow {
	return model.MarketRow{
		Symbol: strings.ToUpper(coin.Symbol),
		Price:  format.Price(coin.CurrentPrice),
		Change: format.PctPtr(coin.PriceChangePct24h),
	}
}

// buildSparklineChart 取7日sparkline的最后24个点当作小时线
// 时间轴从 last_updated 往回按小时推
func buildSparklineChart(btc *coingecko.MarketEntry) []model.ChartPoint {
	if btc == nil || btc.Sparkline7d == nil || len(btc.Sparkline7d.Price) == 0 {
		return []model.ChartPoint{}
	}

	prices := btc.Sparkline7d.Price
	if len(prices) > 24 {
		prices = prices[len(prices)-24:]
	}

	endTime := time.Now()
	if btc.LastUpdated != "" {
		if ts, err := time.Parse(time.RFC3339, btc.LastUpdated); err == nil {
			endTime = ts
		}
	}
	startTime := endTime.Add(-time.Duration(len(prices)-1) * time.Hour)

	points := make([]model.ChartPoint, 0, len(prices))
	for i, price := range prices {
		at := startTime.Add(time.Duration(i) * time.Hour)
		points = append(points, model.ChartPoint{
			Time:       at.UTC().Format("15:04"),
			Price:      price,
			PriceLabel: format.HoverPrice(&price),
			Timestamp:  at.UnixMilli(),
		})
	}
	return points
}

// greedLabel 恐慌贪婪标签，外部指数有值就用外部的
// 否则按BTC 24h涨跌幅粗略映射
func greedLabel(fg *feargreed.IndexPoint, btcChange float64) string {
	if fg != nil && fg.Value != "" {
		return fg.Value + " (" + fg.ValueClassification + ")"
	}
	switch {
	case btcChange > 3:
		return "76 (Greed)"
	case btcChange > 0:
		return "72 (Greed)"
	default:
		return "43 (Fear)"
	}
}

// BuildOverview 把行情快照推导成市场总览视图
// 行情列表为空时整体回落到占位数据并置 isUsingFallbackData
func BuildOverview(payload *OverviewPayload) *model.MarketOverviewViewModel {
	var ranked []coingecko.MarketEntry
	if payload != nil {
		for i := range payload.Markets {
			if !math.IsNaN(payload.Markets[i].CurrentPrice) && !math.IsInf(payload.Markets[i].CurrentPrice, 0) {
				ranked = append(ranked, payload.Markets[i])
			}
		}
	}

	tickerItems := cloneRows(fallbackTicker)
	if len(ranked) > 0 {
		n := len(ranked)
		if n > 8 {
			n = 8
		}
		tickerItems = make([]model.MarketRow, 0, n)
		for i := 0; i < n; i++ {
			tickerItems = append(tickerItems, mapRow(&ranked[i]))
		}
	}

	var movers []coingecko.MarketEntry
	for i := range ranked {
		if ranked[i].PriceChangePct24h != nil {
			movers = append(movers, ranked[i])
		}
	}
	sort.SliceStable(movers, func(i, j int) bool {
		return *movers[i].PriceChangePct24h > *movers[j].PriceChangePct24h
	})

	topGainers := cloneRows(fallbackGainers)
	topLosers := cloneRows(fallbackLosers)
	if len(movers) > 0 {
		gn := len(movers)
		if gn > 5 {
			gn = 5
		}
		topGainers = make([]model.MarketRow, 0, gn)
		for i := 0; i < gn; i++ {
			topGainers = append(topGainers, mapRow(&movers[i]))
		}

		// 跌幅榜取尾部5个再倒序，跌得最狠的排最前
		start := len(movers) - 5
		if start < 0 {
			start = 0
		}
		topLosers = make([]model.MarketRow, 0, len(movers)-start)
		for i := len(movers) - 1; i >= start; i-- {
			topLosers = append(topLosers, mapRow(&movers[i]))
		}
	}

	var btc *coingecko.MarketEntry
	for i := range ranked {
		if ranked[i].ID == "bitcoin" {
			btc = &ranked[i]
			break
		}
	}
	if btc == nil {
		for i := range ranked {
			if strings.ToLower(ranked[i].Symbol) == "btc" {
				btc = &ranked[i]
				break
			}
		}
	}

	chartData := buildSparklineChart(btc)

	btcPrice := fallbackBtcPrice
	btcChange := fallbackBtcChange
	btcMarketCap := fallbackBtcMarketCap
	btcVolume := fallbackBtcVolume
	if btc != nil {
		btcPrice = btc.CurrentPrice
		if btc.PriceChangePct24h != nil {
			btcChange = *btc.PriceChangePct24h
		}
		btcMarketCap = btc.MarketCap
		btcVolume = btc.TotalVolume
	}

	btcDominance := fallbackBtcDominance
	if payload != nil {
		if v, ok := payload.Global.BtcDominance(); ok {
			btcDominance = v
		}
	}

	tooltipTime := "Live"
	tooltipPrice := format.Currency(btcPrice)
	if len(chartData) > 0 {
		last := chartData[len(chartData)-1]
		tooltipTime = "Today, " + last.Time
		tooltipPrice = format.Currency(last.Price)
	}

	var fg *feargreed.IndexPoint
	if payload != nil {
		fg = payload.FearGreed
	}

	return &model.MarketOverviewViewModel{
		TickerItems:         tickerItems,
		TopGainers:          topGainers,
		TopLosers:           topLosers,
		ChartData:           chartData,
		BtcPriceLabel:       format.Currency(btcPrice),
		BtcChangeLabel:      format.Pct(btcChange),
		BtcChangePositive:   btcChange >= 0,
		BtcMarketCapLabel:   format.CompactCurrency(btcMarketCap),
		BtcVolumeLabel:      format.CompactCurrency(btcVolume),
		BtcDominanceLabel:   strconv.FormatFloat(btcDominance, 'f', 1, 64) + "%",
		GreedLabel:          greedLabel(fg, btcChange),
		TooltipTimeLabel:    tooltipTime,
		TooltipPriceLabel:   tooltipPrice,
		IsUsingFallbackData: len(ranked) == 0,
	}
}
