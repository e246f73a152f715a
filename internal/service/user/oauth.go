package user

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"outspecs_server/internal/config"
	"outspecs_server/pkg/errorx"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthProvider 第三方登录抽象，换取授权码对应的用户身份
type OAuthProvider interface {
	// FetchUser 用授权码换取第三方用户信息
	FetchUser(ctx context.Context, code string) (providerID, email, name string, err error)
}

type googleProvider struct {
	conf *oauth2.Config
}

// NewGoogleProvider 创建 Google OAuth2 登录提供方
func NewGoogleProvider(cfg *config.OAuthConfig) OAuthProvider {
	return &googleProvider{
		conf: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *googleProvider) FetchUser(ctx context.Context, code string) (string, string, string, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return "", "", "", errorx.Wrap(err, errorx.CodeGatewayError, "google 授权码换取 token 失败")
	}
	client := p.conf.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return "", "", "", errorx.Wrap(err, errorx.CodeGatewayError, "google 用户信息请求失败")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", "", errorx.Newf(errorx.CodeGatewayError, "google 用户信息请求状态异常: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", "", errorx.Wrap(err, errorx.CodeGatewayError, "google 用户信息读取失败")
	}
	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err = json.Unmarshal(body, &info); err != nil {
		return "", "", "", errorx.Wrap(err, errorx.CodeGatewayError, "google 用户信息解析失败")
	}
	if info.ID == "" {
		return "", "", "", errorx.New(errorx.CodeGatewayError, "google 用户信息缺少 id")
	}
	return fmt.Sprintf("google_%s", info.ID), info.Email, info.Name, nil
}
