package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/internal/copytrading"
	"nextrade/internal/model"
)

func newCopyTradingService(t *testing.T) *CopyTradingService {
	t.Helper()
	store, err := copytrading.NewStore(filepath.Join(t.TempDir(), "copy-trading.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewCopyTradingService(store)
}

func TestCopyTradingSaveAndList(t *testing.T) {
	svc := newCopyTradingService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, &model.CopyTradeSaveReq{
		Wallet:          "0x55...427d",
		Symbol:          "BTC",
		Chain:           "ethereum",
		AllocationUsd:   1000,
		MaxPositionSize: 250,
		StopLoss:        10,
	})
	require.NoError(t, err)

	// copiedAt由服务端生成，UTC RFC3339
	copiedAt, err := time.Parse(time.RFC3339, saved.CopiedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), copiedAt, 5*time.Second)

	res, err := svc.ListGet(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "0x55...427d", res.List[0].Wallet)
	assert.Equal(t, 1000.0, res.List[0].AllocationUsd)
}

func TestCopyTradingSaveReplacesExistingWallet(t *testing.T) {
	svc := newCopyTradingService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, &model.CopyTradeSaveReq{
		Wallet: "0x99...78a0", Symbol: "ETH", Chain: "ethereum",
		AllocationUsd: 500, MaxPositionSize: 100, StopLoss: 5,
	})
	require.NoError(t, err)
	_, err = svc.Save(ctx, &model.CopyTradeSaveReq{
		Wallet: "0x99...78a0", Symbol: "ETH", Chain: "ethereum",
		AllocationUsd: 800, MaxPositionSize: 100, StopLoss: 5,
	})
	require.NoError(t, err)

	res, err := svc.ListGet(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, 800.0, res.List[0].AllocationUsd)
}
