package main

import (
	"nextrade/conf"
	"nextrade/internal/copytrading"
	copyhandler "nextrade/internal/handler/copytrading"
	"nextrade/internal/handler/leaderboard"
	"nextrade/internal/handler/market"
	"nextrade/internal/router"
	"nextrade/internal/service"
	"nextrade/pkg/cache"
	"nextrade/pkg/coingecko"
	"nextrade/pkg/defillama"
	"nextrade/pkg/feargreed"
	"nextrade/pkg/gasrpc"
	"nextrade/pkg/logger"
)

// InitRouter 组装上游客户端、服务和handler
// 返回路由和用于shutdown的清理函数
func InitRouter() (Router, func()) {
	appCfg := conf.AppConfig

	cg, err := coingecko.NewClient(appCfg.External.CoingeckoBaseUrl)
	if err != nil {
		logger.Fatalf("coingecko client init failed: %v", err)
	}
	llama, err := defillama.NewClient(appCfg.External.DefillamaProtocolsUrl)
	if err != nil {
		logger.Fatalf("defillama client init failed: %v", err)
	}
	fng, err := feargreed.NewClient(appCfg.External.FearGreedUrl)
	if err != nil {
		logger.Fatalf("fear&greed client init failed: %v", err)
	}
	gas := gasrpc.NewClient(map[gasrpc.Network]string{
		gasrpc.NetworkEthereum: appCfg.External.Rpc.Ethereum,
		gasrpc.NetworkBnb:      appCfg.External.Rpc.Bnb,
		gasrpc.NetworkPolygon:  appCfg.External.Rpc.Polygon,
	})

	store, err := copytrading.NewStore(appCfg.Store.Path)
	if err != nil {
		logger.Fatalf("copytrading store init failed: %v", err)
	}

	rc := cache.GetRedisClient()

	marketService := service.NewMarketService(cg, llama, fng, gas, rc, appCfg.Cache)
	leaderboardService := service.NewLeaderboardService(cg, rc, appCfg.Cache)
	copyService := service.NewCopyTradingService(store)

	mh := market.NewMarketHandler(marketService)
	lh := leaderboard.NewLeaderboardHandler(leaderboardService)
	ch := copyhandler.NewCopyTradingHandler(copyService)

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Errorf("copytrading store close failed: %v", err)
		}
	}

	return router.NewApiRouter(mh, lh, ch), cleanup
}
