// Package user 实现账号注册登录、第三方登录、资料维护与管理端用户操作
package user

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/infrastructure/storage"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/constants"
	"outspecs_server/pkg/errorx"
	"outspecs_server/pkg/util/jwt"
	"outspecs_server/pkg/util/random"
)

type userService struct {
	repos         *repository.Repositories
	storage       storage.ObjectStorage
	tokenStore    TokenStore
	oauthProvider OAuthProvider
	chatbotPwd    string
}

// NewUserService 创建用户服务
// oauthProvider 为 nil 时第三方登录不可用，tokenStore 不可为 nil
func NewUserService(repos *repository.Repositories, store storage.ObjectStorage, tokenStore TokenStore, oauthProvider OAuthProvider, chatbotPassword string) *userService {
	return &userService{
		repos:         repos,
		storage:       store,
		tokenStore:    tokenStore,
		oauthProvider: oauthProvider,
		chatbotPwd:    chatbotPassword,
	}
}

// Register 表单注册，同时创建用户资料
// 机器人账号名为系统预留，不允许注册占用
func (s *userService) Register(req *request.RegisterRequest) (*respond.RegisterRespond, error) {
	if req.Username == constants.CHATBOT_USERNAME {
		return nil, errorx.New(errorx.CodeInvalidParam, "该用户名不可用")
	}
	if _, err := s.repos.User.FindByUsername(req.Username); err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "用户名已存在")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}
	if _, err := s.repos.Profile.FindByNickname(req.Nickname); err == nil {
		return nil, errorx.New(errorx.CodeAlreadyExists, "昵称已被占用")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}

	user := &model.User{
		Username:    req.Username,
		RawPassword: req.Password,
		Role:        model.RoleUser,
		Status:      model.UserStatusActive,
		AIRateLimit: constants.DEFAULT_AI_RATE_LIMIT,
	}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.User.Create(user); err != nil {
			return err
		}
		return tx.Profile.Create(&model.Profile{
			UserID:   user.ID,
			Nickname: req.Nickname,
		})
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("用户注册成功", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return &respond.RegisterRespond{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: req.Nickname,
	}, nil
}

// Login 用户名密码登录，签发访问令牌和刷新令牌
func (s *userService) Login(ctx context.Context, req *request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByUsername(req.Username)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		return nil, err
	}
	if user.Status != model.UserStatusActive {
		return nil, errorx.New(errorx.CodeForbidden, "账号不可用")
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "用户名或密码错误")
	}
	return s.issueTokens(ctx, user)
}

// OAuthLogin 第三方授权码登录，首次登录自动注册
func (s *userService) OAuthLogin(ctx context.Context, code string) (*respond.LoginRespond, error) {
	if s.oauthProvider == nil {
		return nil, errorx.New(errorx.CodeServerBusy, "第三方登录未启用")
	}
	providerID, email, name, err := s.oauthProvider.FetchUser(ctx, code)
	if err != nil {
		return nil, err
	}
	user, err := s.repos.User.FindByProviderID(providerID)
	if err != nil {
		if errorx.GetCode(err) != errorx.CodeNotFound {
			return nil, err
		}
		user, err = s.registerOAuthUser(providerID, email, name)
		if err != nil {
			return nil, err
		}
	}
	if user.Status != model.UserStatusActive {
		return nil, errorx.New(errorx.CodeForbidden, "账号不可用")
	}
	return s.issueTokens(ctx, user)
}

// registerOAuthUser 按第三方身份创建本地账号
// 昵称冲突时追加随机数字后缀重试
func (s *userService) registerOAuthUser(providerID, email, name string) (*model.User, error) {
	username := providerID
	if email != "" {
		username = email
	}
	nickname := name
	if nickname == "" {
		nickname = "user" + random.GetRandomInt(8)
	}
	user := &model.User{
		Username:    username,
		Role:        model.RoleUser,
		ProviderID:  providerID,
		Status:      model.UserStatusActive,
		AIRateLimit: constants.DEFAULT_AI_RATE_LIMIT,
	}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.User.Create(user); err != nil {
			return err
		}
		candidate := nickname
		for i := 0; i < 3; i++ {
			if _, err := tx.Profile.FindByNickname(candidate); err != nil {
				if errorx.GetCode(err) == errorx.CodeNotFound {
					break
				}
				return err
			}
			candidate = fmt.Sprintf("%s_%s", nickname, random.GetRandomInt(4))
		}
		return tx.Profile.Create(&model.Profile{
			UserID:   user.ID,
			Nickname: candidate,
		})
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("第三方用户首次登录注册", zap.Uint("user_id", user.ID), zap.String("provider_id", providerID))
	return user, nil
}

func (s *userService) issueTokens(ctx context.Context, user *model.User) (*respond.LoginRespond, error) {
	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "生成访问令牌失败")
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "生成刷新令牌失败")
	}
	ttl := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err = s.tokenStore.SaveRefreshToken(ctx, user.ID, tokenID, ttl); err != nil {
		return nil, err
	}
	nickname := ""
	if profile, perr := s.repos.Profile.FindByUserID(user.ID); perr == nil {
		nickname = profile.Nickname
	}
	return &respond.LoginRespond{
		UserID:       user.ID,
		Username:     user.Username,
		Nickname:     nickname,
		Role:         user.Role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken 校验刷新令牌后轮换签发新的令牌对，旧刷新令牌同时作废
func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*respond.TokenRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "刷新令牌无效")
	}
	if claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "刷新令牌无效")
	}
	storedID, err := s.tokenStore.GetRefreshToken(ctx, claims.UserID)
	if err != nil && errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}
	if storedID == "" || storedID != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "刷新令牌已失效")
	}
	user, err := s.repos.User.FindByID(claims.UserID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "用户不存在")
	}
	if user.Status != model.UserStatusActive {
		return nil, errorx.New(errorx.CodeForbidden, "账号不可用")
	}
	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "生成访问令牌失败")
	}
	newRefreshToken, tokenID, err := jwt.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "生成刷新令牌失败")
	}
	ttl := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err = s.tokenStore.SaveRefreshToken(ctx, user.ID, tokenID, ttl); err != nil {
		return nil, err
	}
	return &respond.TokenRespond{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout 作废用户的刷新令牌
func (s *userService) Logout(ctx context.Context, userID uint) error {
	return s.tokenStore.DeleteRefreshToken(ctx, userID)
}

// ChangePassword 修改密码，第三方登录账号无本地密码不允许修改
func (s *userService) ChangePassword(userID uint, req *request.ChangePasswordRequest) error {
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return err
	}
	if user.IsOAuthUser() {
		return errorx.New(errorx.CodeInvalidState, "第三方登录账号不能修改密码")
	}
	if !user.CheckPassword(req.OldPassword) {
		return errorx.New(errorx.CodeInvalidPassword, "原密码错误")
	}
	user.RawPassword = req.NewPassword
	return s.repos.User.Update(user)
}

// GetProfile 获取用户资料，附带粉丝数
func (s *userService) GetProfile(userID uint) (*respond.ProfileRespond, error) {
	profile, err := s.repos.Profile.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.repos.Reaction.Count(model.TargetUser, userID, model.ReactionFollow)
	if err != nil {
		return nil, err
	}
	return &respond.ProfileRespond{
		UserID:             profile.UserID,
		Nickname:           profile.Nickname,
		Stacks:             profile.Stacks,
		Experience:         profile.Experience,
		SelfIntro:          profile.SelfIntro,
		AllowCompanyAccess: profile.AllowCompanyAccess,
		ImageURL:           profile.ImageURL,
		FollowerCount:      followers,
	}, nil
}

// UpdateProfile 更新用户资料，昵称保持全局唯一
func (s *userService) UpdateProfile(userID uint, req *request.UpdateProfileRequest) error {
	profile, err := s.repos.Profile.FindByUserID(userID)
	if err != nil {
		return err
	}
	if req.Nickname != profile.Nickname {
		if other, ferr := s.repos.Profile.FindByNickname(req.Nickname); ferr == nil && other.UserID != userID {
			return errorx.New(errorx.CodeAlreadyExists, "昵称已被占用")
		} else if ferr != nil && errorx.GetCode(ferr) != errorx.CodeNotFound {
			return ferr
		}
	}
	profile.Nickname = req.Nickname
	profile.Stacks = req.Stacks
	profile.Experience = req.Experience
	profile.SelfIntro = req.SelfIntro
	profile.AllowCompanyAccess = req.AllowCompanyAccess
	return s.repos.Profile.Update(profile)
}

// UploadProfileImage 上传头像并替换旧图，旧对象删除失败不影响结果
func (s *userService) UploadProfileImage(ctx context.Context, userID uint, file io.Reader) (string, error) {
	profile, err := s.repos.Profile.FindByUserID(userID)
	if err != nil {
		return "", err
	}
	if s.storage == nil {
		return "", errorx.New(errorx.CodeServerBusy, "对象存储未启用")
	}
	checked, err := storage.ValidateImage(file)
	if err != nil {
		return "", err
	}
	url, key, err := s.storage.Upload(ctx, checked)
	if err != nil {
		return "", err
	}
	oldKey := profile.StorageKey
	profile.ImageURL = url
	profile.StorageKey = key
	if err = s.repos.Profile.Update(profile); err != nil {
		if derr := s.storage.Delete(ctx, key); derr != nil {
			zap.L().Warn("头像补偿删除失败", zap.String("key", key), zap.Error(derr))
		}
		return "", err
	}
	if oldKey != "" {
		if derr := s.storage.Delete(ctx, oldKey); derr != nil {
			zap.L().Warn("旧头像删除失败", zap.String("key", oldKey), zap.Error(derr))
		}
	}
	return url, nil
}

// DeleteUser 注销账号，软删除用户并清理资料和头像
func (s *userService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return err
	}
	var imageKey string
	if profile, perr := s.repos.Profile.FindByUserID(userID); perr == nil {
		imageKey = profile.StorageKey
	}
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Profile.DeleteByUserID(userID); err != nil && errorx.GetCode(err) != errorx.CodeNotFound {
			return err
		}
		if err := tx.User.UpdateStatus(userID, model.UserStatusDeleted); err != nil {
			return err
		}
		return tx.User.SoftDelete(userID)
	})
	if err != nil {
		return err
	}
	if derr := s.tokenStore.DeleteRefreshToken(ctx, userID); derr != nil {
		zap.L().Warn("注销时作废刷新令牌失败", zap.Uint("user_id", userID), zap.Error(derr))
	}
	if imageKey != "" && s.storage != nil {
		if derr := s.storage.Delete(ctx, imageKey); derr != nil {
			zap.L().Warn("注销时删除头像失败", zap.String("key", imageKey), zap.Error(derr))
		}
	}
	zap.L().Info("用户注销", zap.Uint("user_id", userID), zap.String("username", user.Username))
	return nil
}

// GetOrCreateChatbotUser 获取机器人账号，不存在时创建
func (s *userService) GetOrCreateChatbotUser() (*model.User, error) {
	user, err := s.repos.User.FindByUsername(constants.CHATBOT_USERNAME)
	if err == nil {
		return user, nil
	}
	if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}
	user = &model.User{
		Username:    constants.CHATBOT_USERNAME,
		RawPassword: s.chatbotPwd,
		Role:        model.RoleChatbot,
		Status:      model.UserStatusActive,
	}
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.User.Create(user); err != nil {
			return err
		}
		return tx.Profile.Create(&model.Profile{
			UserID:   user.ID,
			Nickname: "AI助手",
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserStatus 管理端更新账号状态
func (s *userService) UpdateUserStatus(userID uint, status string) error {
	switch status {
	case model.UserStatusActive, model.UserStatusSuspended, model.UserStatusDeleted:
	default:
		return errorx.New(errorx.CodeInvalidParam, "未知的账号状态")
	}
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return err
	}
	return s.repos.User.UpdateStatus(userID, status)
}

// UpdateUserRole 管理端更新用户角色
func (s *userService) UpdateUserRole(userID uint, role string) error {
	switch role {
	case model.RoleUser, model.RoleEntUser, model.RoleAdmin:
	default:
		return errorx.New(errorx.CodeInvalidParam, "未知的用户角色")
	}
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return err
	}
	return s.repos.User.UpdateRole(userID, role)
}

// GetUserList 管理端分页查询用户
func (s *userService) GetUserList(page, pageSize int) (*respond.UserListRespond, error) {
	users, total, err := s.repos.User.GetUserList(page, pageSize)
	if err != nil {
		return nil, err
	}
	items := make([]respond.UserRespond, 0, len(users))
	for _, u := range users {
		items = append(items, respond.UserRespond{
			ID:          u.ID,
			Username:    u.Username,
			Role:        u.Role,
			Status:      u.Status,
			AIRateLimit: u.AIRateLimit,
			CreatedAt:   u.CreatedAt.Format(time.DateTime),
		})
	}
	return &respond.UserListRespond{Users: items, Total: total}, nil
}
