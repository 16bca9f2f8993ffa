package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cast"
	"go.uber.org/multierr"

	"nextrade/conf"
	"nextrade/internal/consts"
	"nextrade/internal/market"
	"nextrade/internal/model"
	"nextrade/pkg/coingecko"
	"nextrade/pkg/defillama"
	"nextrade/pkg/errors"
	"nextrade/pkg/errors/ecode"
	"nextrade/pkg/feargreed"
	"nextrade/pkg/gasrpc"
	"nextrade/pkg/logger"
)

// 各上游的取数接口，方便测试时替换
type MarketFetcher interface {
	Markets(ctx context.Context, priceChange string, category string) ([]coingecko.MarketEntry, error)
	Global(ctx context.Context) (*coingecko.GlobalStats, error)
	BitcoinMarketChart(ctx context.Context, days string) (*coingecko.MarketChart, error)
}

type ProtocolFetcher interface {
	Protocols(ctx context.Context) ([]defillama.Protocol, error)
}

type FearGreedFetcher interface {
	Index(ctx context.Context) (*feargreed.IndexResponse, error)
}

type GasFetcher interface {
	Networks() []gasrpc.Network
	GasPrice(ctx context.Context, network gasrpc.Network) (gasrpc.Snapshot, error)
}

// MarketService 市场总览相关的聚合服务
// 上游失败按各自的降级策略处理，结果进redis短缓存
type MarketService struct {
	markets   MarketFetcher
	protocols ProtocolFetcher
	fearGreed FearGreedFetcher
	gas       GasFetcher
	rc        *redis.Client
	ttl       conf.CacheTTLConfig
}

func NewMarketService(mf MarketFetcher, pf ProtocolFetcher, ff FearGreedFetcher, gf GasFetcher, rc *redis.Client, ttl conf.CacheTTLConfig) *MarketService {
	return &MarketService{
		markets:   mf,
		protocols: pf,
		fearGreed: ff,
		gas:       gf,
		rc:        rc,
		ttl:       ttl,
	}
}

// OverviewGet 市场总览，行情/全局/恐慌指数并行拉取
// 行情拉不到时返回占位视图而不是报错，全局和指数失败只降级
func (s *MarketService) OverviewGet(ctx context.Context) (*model.MarketOverviewViewModel, error) {
	var cached model.MarketOverviewViewModel
	if cacheGetJSON(ctx, s.rc, consts.MarketOverviewKey, &cached) {
		return &cached, nil
	}

	payload := &market.OverviewPayload{}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		markets, err := s.markets.Markets(ctx, "24h", "")
		if err != nil {
			logger.Errorf("coingecko markets 拉取失败，走占位数据: %v", err)
			return
		}
		payload.Markets = markets
	}()
	go func() {
		defer wg.Done()
		global, err := s.markets.Global(ctx)
		if err != nil {
			logger.Warnf("coingecko global 拉取失败，占比走默认值: %v", err)
			return
		}
		payload.Global = global
	}()
	go func() {
		defer wg.Done()
		index, err := s.fearGreed.Index(ctx)
		if err != nil {
			logger.Warnf("fear&greed 拉取失败，标签走本地推算: %v", err)
			return
		}
		if point, ok := index.Latest(); ok {
			payload.FearGreed = &point
		}
	}()
	wg.Wait()

	vm := market.BuildOverview(payload)

	// 占位数据不进缓存，下一次请求还有机会拿到真数据
	if !vm.IsUsingFallbackData {
		cacheSetJSON(ctx, s.rc, consts.MarketOverviewKey, vm, s.ttl.Overview)
	}
	return vm, nil
}

// ChartGet BTC历史价格图表，按range分别缓存
func (s *MarketService) ChartGet(ctx context.Context, chartRange model.ChartRange) ([]model.ChartPoint, error) {
	key := consts.MarketChartKeyPrefix + string(chartRange)

	var cached []model.ChartPoint
	if cacheGetJSON(ctx, s.rc, key, &cached) {
		return cached, nil
	}

	data, err := s.markets.BitcoinMarketChart(ctx, chartRange.Days())
	if err != nil {
		return nil, errors.Wrap(err, ecode.UpstreamErr, "coingecko market_chart request failed")
	}

	points := market.BuildChartPoints(data, chartRange, time.Now())
	cacheSetJSON(ctx, s.rc, key, points, s.ttl.Chart)
	return points, nil
}

// GasGet 三条链并行查gas，部分失败只出成功的行
// 全部失败才算错误
func (s *MarketService) GasGet(ctx context.Context) ([]model.GasRow, error) {
	var cached []model.GasRow
	if cacheGetJSON(ctx, s.rc, consts.GasOverviewKey, &cached) {
		return cached, nil
	}

	networks := s.gas.Networks()
	snapshots := make([]gasrpc.Snapshot, len(networks))
	errs := make([]error, len(networks))

	var wg sync.WaitGroup
	for i, network := range networks {
		wg.Add(1)
		go func(i int, network gasrpc.Network) {
			defer wg.Done()
			snapshots[i], errs[i] = s.gas.GasPrice(ctx, network)
		}(i, network)
	}
	wg.Wait()

	ok := make([]gasrpc.Snapshot, 0, len(networks))
	var failed error
	for i := range networks {
		if errs[i] != nil {
			failed = multierr.Append(failed, errs[i])
			continue
		}
		ok = append(ok, snapshots[i])
	}

	if failed != nil {
		logger.Warnf("部分gas rpc查询失败: %v", failed)
	}

	// 全部失败也只返回空列表，不报错；空结果不进缓存，恢复后立即可见
	rows := market.BuildGasRows(ok)
	if len(rows) > 0 {
		cacheSetJSON(ctx, s.rc, consts.GasOverviewKey, rows, s.ttl.Gas)
	}
	return rows, nil
}

// TrendingGet 按TVL的头部DeFi协议
func (s *MarketService) TrendingGet(ctx context.Context) ([]model.TrendingProtocolItem, error) {
	var cached []model.TrendingProtocolItem
	if cacheGetJSON(ctx, s.rc, consts.TrendingProtocolsKey, &cached) {
		return cached, nil
	}

	protocols, err := s.protocols.Protocols(ctx)
	if err != nil {
		return nil, errors.Wrap(err, ecode.UpstreamErr, "defillama protocols request failed")
	}

	items := market.BuildTrendingProtocols(protocols)
	cacheSetJSON(ctx, s.rc, consts.TrendingProtocolsKey, items, s.ttl.Trending)
	return items, nil
}

// FearGreedGet 恐慌贪婪指数最新一条
func (s *MarketService) FearGreedGet(ctx context.Context) (*model.FearGreedRes, error) {
	var cached model.FearGreedRes
	if cacheGetJSON(ctx, s.rc, consts.FearGreedKey, &cached) {
		return &cached, nil
	}

	index, err := s.fearGreed.Index(ctx)
	if err != nil {
		return nil, errors.Wrap(err, ecode.UpstreamErr, "fear&greed request failed")
	}
	point, found := index.Latest()
	if !found {
		return nil, errors.WithCode(ecode.UpstreamErr, "fear&greed response has no data")
	}

	res := &model.FearGreedRes{
		Value:          point.Value,
		Score:          cast.ToInt(point.Value),
		Classification: point.ValueClassification,
		Timestamp:      point.Timestamp,
		Label:          point.Value + " (" + point.ValueClassification + ")",
	}
	cacheSetJSON(ctx, s.rc, consts.FearGreedKey, res, s.ttl.FearGreed)
	return res, nil
}
