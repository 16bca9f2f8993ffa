package router

import (
	"github.com/gin-gonic/gin"

	"nextrade/internal/handler/copytrading"
	"nextrade/internal/handler/leaderboard"
	"nextrade/internal/handler/market"
	"nextrade/internal/handler/ping"
	"nextrade/internal/middleware"
)

type ApiRouter struct {
	marketHandler      *market.MarketHandler
	leaderboardHandler *leaderboard.LeaderboardHandler
	copyHandler        *copytrading.CopyTradingHandler
}

func NewApiRouter(mh *market.MarketHandler, lh *leaderboard.LeaderboardHandler, ch *copytrading.CopyTradingHandler) *ApiRouter {
	return &ApiRouter{marketHandler: mh, leaderboardHandler: lh, copyHandler: ch}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.Use(middleware.RequestId(), middleware.Options(), middleware.Secure(), middleware.Logger)

	g.GET("/ping", ping.Ping())

	base := g.Group("/api/v1")

	m := base.Group("/market", middleware.NoCache())
	{
		// 市场总览
		m.GET("/overview", api.marketHandler.OverviewGet())
		// BTC价格图表
		m.GET("/chart", api.marketHandler.ChartGet())
		// 各链gas
		m.GET("/gas", api.marketHandler.GasGet())
		// 热门DeFi协议
		m.GET("/trending", api.marketHandler.TrendingGet())
		// 恐慌贪婪指数
		m.GET("/feargreed", api.marketHandler.FearGreedGet())
	}

	l := base.Group("/leaderboard", middleware.NoCache())
	{
		l.GET("/list", api.leaderboardHandler.ListGet())
	}

	c := base.Group("/copytrading")
	{
		c.GET("/list", api.copyHandler.ListGet())
		c.POST("/save", middleware.AntiDuplicateMiddleware(), api.copyHandler.Save())
		// 配置变更的实时推送
		c.GET("/ws", api.copyHandler.ServeWS)
	}
}
