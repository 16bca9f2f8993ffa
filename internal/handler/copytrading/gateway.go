package copytrading

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"nextrade/internal/consts"
	"nextrade/internal/service"
	"nextrade/pkg/logger"
)

// Gateway 负责跟单配置的websocket分发
// store一有变更就把最新列表广播给所有连接，等价于浏览器多开页面间的storage事件
type Gateway struct {
	copyService *service.CopyTradingService
	mu          sync.RWMutex

	// 仅维护所有活跃的连接
	clients map[*ClientConn]struct{}

	upgrader websocket.Upgrader
}

type ClientConn struct {
	Conn      *websocket.Conn
	Send      chan []byte // 异步发送通道
	closeOnce sync.Once
}

func NewGateway(copyService *service.CopyTradingService) *Gateway {
	g := &Gateway{
		copyService: copyService,
		clients:     make(map[*ClientConn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	// store变更时广播最新列表
	copyService.Subscribe(g.broadcastConfigs)
	return g
}

// 推送消息体，key与前端localStorage的存储key保持一致
type pushMessage struct {
	Action string      `json:"action"`
	Key    string      `json:"key"`
	Data   interface{} `json:"data"`
}

func (g *Gateway) buildConfigsMessage() ([]byte, error) {
	res, err := g.copyService.ListGet(context.Background())
	if err != nil {
		return nil, err
	}
	return json.Marshal(pushMessage{
		Action: "copytrading_update",
		Key:    consts.CopyTradingStorageKey,
		Data:   res,
	})
}

func (g *Gateway) broadcastConfigs() {
	data, err := g.buildConfigsMessage()
	if err != nil {
		logger.Errorf("copytrading gateway marshal failed: %v", err)
		return
	}

	g.mu.RLock()
	for client := range g.clients {
		select {
		case client.Send <- data:
		default:
			// 队列满则丢弃，保证广播不阻塞
		}
	}
	g.mu.RUnlock()
}

// ServeWS 处理连接建立和断开
func (g *Gateway) ServeWS(c *gin.Context) {
	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("copytrading ws upgrade error: %v", err)
		return
	}

	client := &ClientConn{
		Conn: conn,
		Send: make(chan []byte, 16),
	}

	g.addClient(client)

	// 连接成功后立即排队一次当前状态，客户端不需要主动请求
	// 在readPump之前入队，此时Send一定未关闭
	g.sendInitialConfigs(client)

	defer g.removeClient(client)

	// 不断从 Send channel 取消息写入websocket
	go client.writePump()
	// 阻塞读取，客户端断开时退出
	client.readPump()
}

func (g *Gateway) addClient(client *ClientConn) {
	g.mu.Lock()
	g.clients[client] = struct{}{}
	g.mu.Unlock()
}

// removeClient 先摘除再关闭
// 广播和初始推送都在读锁内发送，摘除后不会再有人往Send写
func (g *Gateway) removeClient(client *ClientConn) {
	g.mu.Lock()
	delete(g.clients, client)
	g.mu.Unlock()
	client.Close()
}

func (g *Gateway) sendInitialConfigs(client *ClientConn) {
	data, err := g.buildConfigsMessage()
	if err != nil {
		logger.Errorf("copytrading gateway marshal failed: %v", err)
		return
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.clients[client]; !ok {
		// 已断开，Send可能已关闭
		return
	}
	select {
	case client.Send <- data:
	default:
	}
}

// Close 关闭连接和发送通道，只执行一次
func (c *ClientConn) Close() {
	c.closeOnce.Do(func() {
		if c.Conn != nil {
			c.Conn.Close()
		}
		close(c.Send)
	})
}

func (c *ClientConn) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("copytrading ws write error: %v", err)
			break
		}
	}
}

// readPump 只用于感知断开，收到的消息直接丢弃
func (c *ClientConn) readPump() {
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			logger.Debugf("copytrading ws client disconnected: %v", err)
			return
		}
	}
}
