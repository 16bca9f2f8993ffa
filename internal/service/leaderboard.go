package service

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"

	"nextrade/conf"
	"nextrade/internal/consts"
	"nextrade/internal/leaderboard"
	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
	"nextrade/pkg/errors"
	"nextrade/pkg/errors/ecode"
	"nextrade/pkg/logger"
)

// LeaderboardFetcher 排行榜需要的上游数据
type LeaderboardFetcher interface {
	Markets(ctx context.Context, priceChange string, category string) ([]coingecko.MarketEntry, error)
	Global(ctx context.Context) (*coingecko.GlobalStats, error)
}

// LeaderboardService 排行榜聚合服务
// 行情是必需的，拉不到就报错；全局统计失败只降级
type LeaderboardService struct {
	fetcher LeaderboardFetcher
	rc      *redis.Client
	ttl     conf.CacheTTLConfig
}

func NewLeaderboardService(fetcher LeaderboardFetcher, rc *redis.Client, ttl conf.CacheTTLConfig) *LeaderboardService {
	return &LeaderboardService{fetcher: fetcher, rc: rc, ttl: ttl}
}

// ListGet 按时间维度和链过滤出排行榜视图
func (s *LeaderboardService) ListGet(ctx context.Context, timeframe model.LeaderboardTimeframe, chain model.LeaderboardChain) (*model.LeaderboardViewModel, error) {
	key := consts.LeaderboardKeyPrefix + string(timeframe) + ":" + string(chain)

	var cached model.LeaderboardViewModel
	if cacheGetJSON(ctx, s.rc, key, &cached) {
		return &cached, nil
	}

	payload := &model.LeaderboardPayload{}

	var wg sync.WaitGroup
	var marketsErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		markets, err := s.fetcher.Markets(ctx, "24h,7d,30d", chain.Category())
		if err != nil {
			marketsErr = err
			return
		}
		payload.Markets = markets
	}()
	go func() {
		defer wg.Done()
		global, err := s.fetcher.Global(ctx)
		if err != nil {
			logger.Warnf("coingecko global 拉取失败，traders数退化成行情条数: %v", err)
			return
		}
		payload.Global = global
	}()
	wg.Wait()

	if marketsErr != nil {
		return nil, errors.Wrap(marketsErr, ecode.UpstreamErr, "coingecko leaderboard markets request failed")
	}

	vm := leaderboard.BuildViewModel(payload, timeframe)
	cacheSetJSON(ctx, s.rc, key, vm, s.ttl.Overview)
	return vm, nil
}
