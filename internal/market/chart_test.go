package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
)

func chartOf(n int, start time.Time, step time.Duration) *coingecko.MarketChart {
	prices := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * step).UnixMilli()
		prices = append(prices, [2]float64{float64(ts), 50000 + float64(i)})
	}
	return &coingecko.MarketChart{Prices: prices}
}

func TestBuildChartPointsEmpty(t *testing.T) {
	assert.Empty(t, BuildChartPoints(nil, model.ChartRange1d, time.Now()))
	assert.Empty(t, BuildChartPoints(&coingecko.MarketChart{}, model.ChartRange1d, time.Now()))
}

func TestBuildChartPointsDownsample(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	chart := chartOf(100, now.Add(-24*time.Hour), 15*time.Minute)

	points := BuildChartPoints(chart, model.ChartRange1d, now)

	// 100个点，预算24：步长ceil(100/24)=5，输出20个
	require.Len(t, points, 20)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Timestamp, points[i].Timestamp)
	}
	// 1d用时分标签
	assert.Regexp(t, `^\d{2}:\d{2}$`, points[0].Time)
	// 悬浮价格用紧凑写法
	assert.Equal(t, "$50K", points[0].PriceLabel)
}

func TestBuildChartPointsUnderBudget(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	chart := chartOf(10, now.Add(-10*time.Hour), time.Hour)

	points := BuildChartPoints(chart, model.ChartRange1d, now)
	assert.Len(t, points, 10)
}

func TestBuildChartPointsOneHourFilter(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	// 2小时的数据每5分钟一个点，1h范围只留最近60分钟的
	chart := chartOf(25, now.Add(-2*time.Hour), 5*time.Minute)

	points := BuildChartPoints(chart, model.ChartRange1h, now)

	oneHourAgo := now.Add(-time.Hour).UnixMilli()
	require.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), 12)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Timestamp, oneHourAgo)
	}
}

func TestBuildChartPointsMonthDayLabel(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	chart := chartOf(30, now.Add(-30*24*time.Hour), 24*time.Hour)

	points := BuildChartPoints(chart, model.ChartRange1m, now)
	require.NotEmpty(t, points)
	assert.Equal(t, "Aug 2", points[0].Time)
}
