package market

import (
	"github.com/gin-gonic/gin"

	"nextrade/internal/model"
	"nextrade/internal/service"
	"nextrade/pkg/errors"
	"nextrade/pkg/errors/ecode"
	"nextrade/pkg/response"
	"nextrade/pkg/validator"
)

type MarketHandler struct {
	marketService *service.MarketService
}

func NewMarketHandler(marketService *service.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// OverviewGet 市场总览视图，上游不可用时返回占位数据
func (mh *MarketHandler) OverviewGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := mh.marketService.OverviewGet(ctx)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.UpstreamErr, "market overview failed"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// ChartGet BTC价格图表，range必填
func (mh *MarketHandler) ChartGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.MarketChartReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, validator.Translate(err)), nil)
			return
		}
		res, err := mh.marketService.ChartGet(ctx, model.ChartRange(req.Range))
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// GasGet 各链gas概览
func (mh *MarketHandler) GasGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := mh.marketService.GasGet(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// TrendingGet 按TVL的头部DeFi协议
func (mh *MarketHandler) TrendingGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := mh.marketService.TrendingGet(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// FearGreedGet 恐慌贪婪指数
func (mh *MarketHandler) FearGreedGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := mh.marketService.FearGreedGet(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
