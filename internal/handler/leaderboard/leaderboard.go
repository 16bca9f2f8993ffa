package leaderboard

import (
	"github.com/gin-gonic/gin"

	"nextrade/internal/model"
	"nextrade/internal/service"
	"nextrade/pkg/errors"
	"nextrade/pkg/errors/ecode"
	"nextrade/pkg/response"
	"nextrade/pkg/validator"
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// ListGet 排行榜，timeframe和chain都可省略
// 省略时默认 all/all
func (lh *LeaderboardHandler) ListGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.LeaderboardListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, validator.Translate(err)), nil)
			return
		}

		timeframe := model.LeaderboardTimeframe(req.Timeframe)
		if req.Timeframe == "" {
			timeframe = model.TimeframeAll
		}
		chain := model.LeaderboardChain(req.Chain)
		if req.Chain == "" {
			chain = model.ChainAll
		}
		if !timeframe.Valid() || !chain.Valid() {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "invalid timeframe or chain"), nil)
			return
		}

		res, err := lh.leaderboardService.ListGet(ctx, timeframe, chain)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
