// Package alan 封装外部 AI 助手（Alan）的 HTTP 调用
// 限定超时时间，失败时返回网关错误码，不影响进程稳定性
package alan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"outspecs_server/internal/config"
	"outspecs_server/pkg/errorx"
)

// Asker AI 问答接口
// Service 层依赖此接口，测试时可替换为桩实现
type Asker interface {
	// Ask 发送问题并返回回答文本
	Ask(ctx context.Context, question string) (string, error)
}

// Client Alan API 客户端
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
}

// NewClient 根据配置创建 Alan 客户端
func NewClient(cfg *config.AlanConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// askRespond Alan API 应答体
type askRespond struct {
	Action struct {
		Name  string `json:"name"`
		Speak string `json:"speak"`
	} `json:"action"`
	Content string `json:"content"`
}

// Ask 发送问题并返回回答文本
// GET {base}/question?content=...&client_id=...
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	endpoint := fmt.Sprintf("%s/question?content=%s&client_id=%s",
		c.baseURL, url.QueryEscape(question), url.QueryEscape(c.clientID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeGatewayError, "构造AI请求")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeGatewayError, "调用AI服务")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorx.Newf(errorx.CodeGatewayError, "AI服务返回异常状态 %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeGatewayError, "读取AI响应")
	}

	var parsed askRespond
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errorx.Wrap(err, errorx.CodeGatewayError, "解析AI响应")
	}
	if parsed.Content == "" {
		return "", errorx.New(errorx.CodeGatewayError, "AI响应为空")
	}
	return parsed.Content, nil
}
