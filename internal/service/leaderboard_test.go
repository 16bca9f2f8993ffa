package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/conf"
	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
	"nextrade/pkg/errors"
	"nextrade/pkg/errors/ecode"
)

func TestLeaderboardListGet(t *testing.T) {
	svc := NewLeaderboardService(&stubMarkets{
		markets: []coingecko.MarketEntry{
			{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", TotalVolume: 1500000000, PriceChangePct24h: fp(3)},
			{ID: "ethereum", Symbol: "eth", Name: "Ethereum", TotalVolume: 500000000, PriceChangePct24h: fp(1)},
		},
		globalErr: errors.WithCode(ecode.UpstreamErr, "down"),
	}, nil, conf.CacheTTLConfig{})

	vm, err := svc.ListGet(context.Background(), model.Timeframe24h, model.ChainAll)
	require.NoError(t, err)
	require.Len(t, vm.Rows, 2)
	assert.Equal(t, "BTC", vm.Rows[0].Symbol)
	assert.Equal(t, "BTC Bitcoin", vm.Rows[0].Tier)
	// global拉取失败时traders数退化成行情条数
	assert.Equal(t, "2", vm.Stats.TotalTraders)
	assert.Equal(t, "$2B", vm.Stats.TotalVolumeTraded)
}

func TestLeaderboardListGetMarketsFailure(t *testing.T) {
	svc := NewLeaderboardService(&stubMarkets{
		marketsErr: errors.WithCode(ecode.UpstreamErr, "down"),
	}, nil, conf.CacheTTLConfig{})

	_, err := svc.ListGet(context.Background(), model.TimeframeAll, model.ChainAll)
	require.Error(t, err)
	code, _ := errors.DecodeErr(err)
	assert.Equal(t, ecode.UpstreamErr, code)
}
