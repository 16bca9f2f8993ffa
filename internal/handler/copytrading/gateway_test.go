package copytrading

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/internal/consts"
	copystore "nextrade/internal/copytrading"
	"nextrade/internal/model"
	"nextrade/internal/service"
)

func newTestGateway(t *testing.T) (*Gateway, *service.CopyTradingService) {
	t.Helper()
	store, err := copystore.NewStore(filepath.Join(t.TempDir(), "copy-trading.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	svc := service.NewCopyTradingService(store)
	return NewGateway(svc), svc
}

func newTestClient() *ClientConn {
	return &ClientConn{Send: make(chan []byte, 16)}
}

func TestGatewayBroadcastOnSave(t *testing.T) {
	g, svc := newTestGateway(t)
	client := newTestClient()
	g.addClient(client)
	defer g.removeClient(client)

	_, err := svc.Save(context.Background(), &model.CopyTradeSaveReq{
		Wallet: "0x55...427d", Symbol: "BTC", Chain: "ethereum",
		AllocationUsd: 1000, MaxPositionSize: 250, StopLoss: 10,
	})
	require.NoError(t, err)

	select {
	case data := <-client.Send:
		var msg pushMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "copytrading_update", msg.Action)
		assert.Equal(t, consts.CopyTradingStorageKey, msg.Key)
	case <-time.After(2 * time.Second):
		t.Fatal("no broadcast after save")
	}
}

func TestGatewayInitialPushAfterDisconnect(t *testing.T) {
	g, _ := newTestGateway(t)
	client := newTestClient()
	g.addClient(client)

	// 连接注册后立刻断开，初始推送不能再写已关闭的Send
	g.removeClient(client)
	require.NotPanics(t, func() {
		g.sendInitialConfigs(client)
	})
}

func TestGatewayInitialPush(t *testing.T) {
	g, _ := newTestGateway(t)
	client := newTestClient()
	g.addClient(client)
	defer g.removeClient(client)

	g.sendInitialConfigs(client)

	select {
	case data := <-client.Send:
		var msg pushMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "copytrading_update", msg.Action)
	default:
		t.Fatal("no initial push queued")
	}
}
