package user

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/infrastructure/storage"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/constants"
	"outspecs_server/pkg/errorx"
	"outspecs_server/pkg/util/jwt"
)

func init() {
	jwt.Init("test-secret", 15, 168)
}

// fakeOAuthProvider 固定返回一组第三方用户信息
type fakeOAuthProvider struct {
	providerID string
	email      string
	name       string
	err        error
}

func (p *fakeOAuthProvider) FetchUser(_ context.Context, _ string) (string, string, string, error) {
	return p.providerID, p.email, p.name, p.err
}

func newService(provider OAuthProvider) *userService {
	repos := memory.NewRepositories()
	return NewUserService(repos, nil, NewMemoryTokenStore(), provider, "chatbot-secret")
}

func registerReq(username, nickname string) *request.RegisterRequest {
	return &request.RegisterRequest{Username: username, Password: "password123", Nickname: nickname}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	reg, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)
	require.NotZero(t, reg.UserID)

	result, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "alice", result.Username)
	require.Equal(t, "小A", result.Nickname)
	require.Equal(t, model.RoleUser, result.Role)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)

	claims, err := jwt.ParseToken(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, reg.UserID, claims.UserID)
}

func TestRegisterDuplicates(t *testing.T) {
	svc := newService(nil)

	_, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)

	_, err = svc.Register(registerReq("alice", "别的昵称"))
	require.Equal(t, errorx.CodeUserExist, errorx.GetCode(err))

	_, err = svc.Register(registerReq("bob", "小A"))
	require.Equal(t, errorx.CodeAlreadyExists, errorx.GetCode(err))
}

func TestRegisterReservedChatbotUsername(t *testing.T) {
	svc := newService(nil)

	_, err := svc.Register(registerReq(constants.CHATBOT_USERNAME, "冒充机器人"))
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestLoginFailures(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, &request.LoginRequest{Username: "ghost", Password: "password123"})
	require.Equal(t, errorx.CodeUserNotExist, errorx.GetCode(err))

	reg, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "wrongpass"})
	require.Equal(t, errorx.CodeInvalidPassword, errorx.GetCode(err))

	// 被封禁的账号不能登录
	require.NoError(t, svc.UpdateUserStatus(reg.UserID, model.UserStatusSuspended))
	_, err = svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "password123"})
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestRefreshTokenRotation(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	_, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)
	login, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)

	// 旧刷新令牌已被轮换作废
	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	require.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))

	// 新令牌仍然可用
	_, err = svc.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	_, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)
	login, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, login.AccessToken)
	require.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	reg, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)
	login, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.UserID))
	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	require.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))
}

func TestOAuthLoginRegistersOnce(t *testing.T) {
	provider := &fakeOAuthProvider{providerID: "google_123", email: "alice@example.com", name: "Alice"}
	svc := newService(provider)
	ctx := context.Background()

	first, err := svc.OAuthLogin(ctx, "auth-code")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", first.Username)

	second, err := svc.OAuthLogin(ctx, "auth-code")
	require.NoError(t, err)
	require.Equal(t, first.UserID, second.UserID)
}

func TestOAuthLoginProviderError(t *testing.T) {
	provider := &fakeOAuthProvider{err: errorx.New(errorx.CodeGatewayError, "上游授权失败")}
	svc := newService(provider)

	_, err := svc.OAuthLogin(context.Background(), "bad-code")
	require.Equal(t, errorx.CodeGatewayError, errorx.GetCode(err))
}

func TestChangePassword(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	reg, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)

	err = svc.ChangePassword(reg.UserID, &request.ChangePasswordRequest{
		OldPassword: "wrongpass", NewPassword: "newpassword",
	})
	require.Equal(t, errorx.CodeInvalidPassword, errorx.GetCode(err))

	require.NoError(t, svc.ChangePassword(reg.UserID, &request.ChangePasswordRequest{
		OldPassword: "password123", NewPassword: "newpassword",
	}))
	_, err = svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "newpassword"})
	require.NoError(t, err)
}

func TestChangePasswordBlockedForOAuthUser(t *testing.T) {
	provider := &fakeOAuthProvider{providerID: "google_123", email: "alice@example.com", name: "Alice"}
	svc := newService(provider)
	ctx := context.Background()

	login, err := svc.OAuthLogin(ctx, "auth-code")
	require.NoError(t, err)

	err = svc.ChangePassword(login.UserID, &request.ChangePasswordRequest{
		OldPassword: "whatever1", NewPassword: "newpassword",
	})
	require.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

func TestUploadProfileImageRejectsNonImage(t *testing.T) {
	repos := memory.NewRepositories()
	store := storage.NewMemoryStorage()
	svc := NewUserService(repos, store, NewMemoryTokenStore(), nil, "chatbot-secret")
	ctx := context.Background()

	reg, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)

	_, err = svc.UploadProfileImage(ctx, reg.UserID, strings.NewReader("<html>not an image</html>"))
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	png := append([]byte("\x89PNG\r\n\x1a\n"), "avatar"...)
	url, err := svc.UploadProfileImage(ctx, reg.UserID, bytes.NewReader(png))
	require.NoError(t, err)
	require.NotEmpty(t, url)
}

func TestDeleteUser(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	reg, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)
	login, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, reg.UserID))

	_, err = svc.GetProfile(reg.UserID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	_, err = svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "password123"})
	require.Error(t, err)
	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	require.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))
}

func TestGetOrCreateChatbotUserIdempotent(t *testing.T) {
	svc := newService(nil)

	first, err := svc.GetOrCreateChatbotUser()
	require.NoError(t, err)
	require.Equal(t, constants.CHATBOT_USERNAME, first.Username)
	require.Equal(t, model.RoleChatbot, first.Role)

	second, err := svc.GetOrCreateChatbotUser()
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestAdminOperations(t *testing.T) {
	svc := newService(nil)

	reg, err := svc.Register(registerReq("alice", "小A"))
	require.NoError(t, err)

	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(svc.UpdateUserStatus(reg.UserID, "FROZEN")))
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(svc.UpdateUserRole(reg.UserID, "SUPERUSER")))

	require.NoError(t, svc.UpdateUserRole(reg.UserID, model.RoleEntUser))
	require.NoError(t, svc.UpdateUserStatus(reg.UserID, model.UserStatusSuspended))

	list, err := svc.GetUserList(1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), list.Total)
	require.Len(t, list.Users, 1)
	require.Equal(t, model.RoleEntUser, list.Users[0].Role)
	require.Equal(t, model.UserStatusSuspended, list.Users[0].Status)
}
