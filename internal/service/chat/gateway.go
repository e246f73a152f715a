package chat

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"outspecs_server/internal/dto/request"
	"outspecs_server/pkg/constants"
	"outspecs_server/pkg/errorx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 前后端分离部署，放行跨域握手
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// UserConn 一条 WebSocket 客户端连接
// 下行通道的投递和关闭都在 mu 内进行，closed 置位后不再投递
type UserConn struct {
	Conn   *websocket.Conn
	UserID uint

	mu       sync.Mutex
	sendBack chan []byte // 推送给前端的下行消息
	closed   bool
}

func newUserConn(conn *websocket.Conn, userID uint) *UserConn {
	return &UserConn{
		Conn:     conn,
		UserID:   userID,
		sendBack: make(chan []byte, constants.CHANNEL_SIZE),
	}
}

func (c *UserConn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	_ = c.Conn.Close()
	close(c.sendBack)
}

// trySend 向下行通道投递一条消息
// 连接已关闭或通道已满时返回 false，不阻塞调用方
func (c *UserConn) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.sendBack <- payload:
		return true
	default:
		return false
	}
}

// wsError WebSocket 下行错误消息
type wsError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Gateway 管理 WebSocket 连接并做实时消息分发
// 同一用户重复连接时新连接顶掉旧连接
type Gateway struct {
	svc     *chatService
	clients sync.Map // userID -> *UserConn
}

// NewGateway 创建 WebSocket 网关
func NewGateway(svc *chatService) *Gateway {
	return &Gateway{svc: svc}
}

// HandleConnection 升级 WebSocket 连接并启动读写协程
func (g *Gateway) HandleConnection(c *gin.Context, userID uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("websocket 升级失败", zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	client := newUserConn(conn, userID)
	g.register(client)
	go g.readLoop(client)
	go g.writeLoop(client)
	zap.L().Info("websocket 连接建立", zap.Uint("user_id", userID))
}

func (g *Gateway) register(client *UserConn) {
	if prev, loaded := g.clients.LoadAndDelete(client.UserID); loaded {
		prev.(*UserConn).close()
	}
	g.clients.Store(client.UserID, client)
}

func (g *Gateway) unregister(client *UserConn) {
	if cur, ok := g.clients.Load(client.UserID); ok && cur == client {
		g.clients.Delete(client.UserID)
	}
	client.close()
}

// Disconnect 主动断开用户连接，登出时调用
func (g *Gateway) Disconnect(userID uint) {
	if cur, loaded := g.clients.LoadAndDelete(userID); loaded {
		cur.(*UserConn).close()
	}
}

// PushToUser 向在线用户推送下行消息，用户不在线时返回 false
func (g *Gateway) PushToUser(userID uint, payload []byte) bool {
	value, ok := g.clients.Load(userID)
	if !ok {
		return false
	}
	client := value.(*UserConn)
	if !client.trySend(payload) {
		zap.L().Warn("下行通道不可用，消息丢弃", zap.Uint("user_id", userID))
		return false
	}
	return true
}

// readLoop 读取上行消息并落库转发
func (g *Gateway) readLoop(client *UserConn) {
	defer g.unregister(client)
	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			zap.L().Info("websocket 连接断开", zap.Uint("user_id", client.UserID), zap.Error(err))
			return
		}
		var req request.ChatMessageRequest
		if err = json.Unmarshal(raw, &req); err != nil {
			g.pushError(client, errorx.New(errorx.CodeInvalidParam, "消息格式不正确"))
			continue
		}
		message, err := g.svc.SendMessage(req.ChatRoomID, client.UserID, req.Content)
		if err != nil {
			g.pushError(client, err)
			continue
		}
		payload, err := json.Marshal(message)
		if err != nil {
			zap.L().Error("下行消息序列化失败", zap.Error(err))
			continue
		}
		// 推给发送方做回执，对方在线时一并实时送达
		g.PushToUser(client.UserID, payload)
		if peerID, perr := g.svc.GetPeerID(req.ChatRoomID, client.UserID); perr == nil {
			g.PushToUser(peerID, payload)
		}
	}
}

// writeLoop 将下行消息写入 WebSocket
func (g *Gateway) writeLoop(client *UserConn) {
	for payload := range client.sendBack {
		if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Error("websocket 写入失败", zap.Uint("user_id", client.UserID), zap.Error(err))
			return
		}
	}
}

func (g *Gateway) pushError(client *UserConn, err error) {
	payload, merr := json.Marshal(wsError{Code: errorx.GetCode(err), Msg: err.Error()})
	if merr != nil {
		return
	}
	g.PushToUser(client.UserID, payload)
}
