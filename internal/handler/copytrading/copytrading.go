package copytrading

import (
	"github.com/gin-gonic/gin"

	"nextrade/internal/model"
	"nextrade/internal/service"
	"nextrade/pkg/errors"
	"nextrade/pkg/errors/ecode"
	"nextrade/pkg/response"
	"nextrade/pkg/validator"
)

type CopyTradingHandler struct {
	copyService *service.CopyTradingService
	gateway     *Gateway
}

func NewCopyTradingHandler(copyService *service.CopyTradingService) *CopyTradingHandler {
	return &CopyTradingHandler{
		copyService: copyService,
		gateway:     NewGateway(copyService),
	}
}

// ListGet 全部跟单配置
func (ch *CopyTradingHandler) ListGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := ch.copyService.ListGet(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// Save 保存一条跟单配置，金额/仓位/止损必须大于0
func (ch *CopyTradingHandler) Save() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.CopyTradeSaveReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, validator.Translate(err)), nil)
			return
		}

		res, err := ch.copyService.Save(ctx, &req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// ServeWS 跟单配置的实时推送连接
func (ch *CopyTradingHandler) ServeWS(ctx *gin.Context) {
	ch.gateway.ServeWS(ctx)
}
