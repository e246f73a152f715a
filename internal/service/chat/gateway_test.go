package chat

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/model"
)

// 推送、断开、重连并发进行时不得出现向已关闭通道写入的崩溃
func TestGatewayPushDuringDisconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositories()
	userID := createUser(t, repos, "alice", model.RoleUser)

	gateway := NewGateway(NewChatService(repos))
	engine := gin.New()
	engine.GET("/ws", func(c *gin.Context) {
		gateway.HandleConnection(c, userID)
	})
	server := httptest.NewServer(engine)
	defer server.Close()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload := []byte(`{"content":"ping"}`)
			for {
				select {
				case <-stop:
					return
				default:
					gateway.PushToUser(userID, payload)
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		if resp != nil {
			_ = resp.Body.Close()
		}
		gateway.Disconnect(userID)
		_ = conn.Close()
	}

	close(stop)
	wg.Wait()
}

// 同一用户重复连接时旧连接被顶掉，推送只走新连接
func TestGatewayReconnectDisplacesOldConn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositories()
	userID := createUser(t, repos, "alice", model.RoleUser)

	gateway := NewGateway(NewChatService(repos))
	engine := gin.New()
	engine.GET("/ws", func(c *gin.Context) {
		gateway.HandleConnection(c, userID)
	})
	server := httptest.NewServer(engine)
	defer server.Close()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	old, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	defer old.Close()

	fresh, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	defer fresh.Close()

	// 旧连接被服务端关闭后新连接才完成注册
	require.NoError(t, old.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = old.ReadMessage()
	require.Error(t, err)

	require.Eventually(t, func() bool {
		return gateway.PushToUser(userID, []byte(`{"content":"hi"}`))
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, fresh.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := fresh.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(raw), "hi")

	gateway.Disconnect(userID)
	require.False(t, gateway.PushToUser(userID, []byte(`{"content":"gone"}`)))
}
