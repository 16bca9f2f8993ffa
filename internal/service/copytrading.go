package service

import (
	"context"
	"time"

	"nextrade/internal/copytrading"
	"nextrade/internal/model"
	"nextrade/pkg/errors"
	"nextrade/pkg/errors/ecode"
)

// CopyTradingService 跟单配置的读写，落在本地文件store上
type CopyTradingService struct {
	store *copytrading.Store
}

func NewCopyTradingService(store *copytrading.Store) *CopyTradingService {
	return &CopyTradingService{store: store}
}

// ListGet 全部跟单配置，最新保存的在最前
func (s *CopyTradingService) ListGet(ctx context.Context) (*model.CopyTradeListRes, error) {
	configs := s.store.Read()
	return &model.CopyTradeListRes{
		Total: len(configs),
		List:  configs,
	}, nil
}

// Save 保存一条跟单配置，wallet已存在时原位覆盖
// copiedAt由服务端生成，统一UTC
func (s *CopyTradingService) Save(ctx context.Context, req *model.CopyTradeSaveReq) (*model.CopyTradeConfig, error) {
	config := model.CopyTradeConfig{
		Wallet:          req.Wallet,
		Symbol:          req.Symbol,
		Chain:           req.Chain,
		AllocationUsd:   req.AllocationUsd,
		MaxPositionSize: req.MaxPositionSize,
		StopLoss:        req.StopLoss,
		CopiedAt:        time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := s.store.Upsert(config); err != nil {
		return nil, errors.Wrap(err, ecode.StoreErr, "save copy trade config failed")
	}
	return &config, nil
}

// Subscribe 透传store的变更订阅，给ws网关用
func (s *CopyTradingService) Subscribe(fn func()) uint64 {
	return s.store.Subscribe(fn)
}

func (s *CopyTradingService) Unsubscribe(id uint64) {
	s.store.Unsubscribe(id)
}
