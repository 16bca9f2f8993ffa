package market

import (
	"time"

	"nextrade/internal/format"
	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
)

// 每个时间范围的采样点预算，点太多前端渲染卡
var samplingLimit = map[model.ChartRange]int{
	model.ChartRange1h: 12,
	model.ChartRange1d: 24,
	model.ChartRange7d: 42,
	model.ChartRange1m: 60,
	model.ChartRange3m: 72,
}

// BuildChartPoints 把 market_chart 的原始序列裁剪成指定范围的图表点
// 1h先过滤到最近60分钟再采样，输出保持时间升序
func BuildChartPoints(data *coingecko.MarketChart, chartRange model.ChartRange, now time.Time) []model.ChartPoint {
	if data == nil || len(data.Prices) == 0 {
		return []model.ChartPoint{}
	}

	points := data.Prices
	if chartRange == model.ChartRange1h {
		oneHourAgo := now.Add(-time.Hour).UnixMilli()
		filtered := make([][2]float64, 0, len(points))
		for _, p := range points {
			if int64(p[0]) >= oneHourAgo {
				filtered = append(filtered, p)
			}
		}
		points = filtered
	}

	limit := samplingLimit[chartRange]
	if limit > 0 && len(points) > limit {
		step := (len(points) + limit - 1) / limit
		sampled := make([][2]float64, 0, limit)
		for i := 0; i < len(points); i += step {
			sampled = append(sampled, points[i])
		}
		points = sampled
	}

	out := make([]model.ChartPoint, 0, len(points))
	for _, p := range points {
		ts := int64(p[0])
		at := time.UnixMilli(ts).UTC()

		var label string
		if chartRange == model.ChartRange1h || chartRange == model.ChartRange1d {
			label = at.Format("15:04")
		} else {
			label = at.Format("Jan 2")
		}

		out = append(out, model.ChartPoint{
			Time:       label,
			Price:      p[1],
			PriceLabel: format.HoverPrice(&p[1]),
			Timestamp:  ts,
		})
	}
	return out
}
