// Package model 定义数据库实体模型
// 本文件定义用户模型和用户资料模型
package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 用户角色
const (
	RoleUser    = "USER"    // 普通用户
	RoleEntUser = "ENTUSER" // 企业用户，可发布招聘帖
	RoleAdmin   = "ADMIN"   // 管理员
	RoleChatbot = "CHATBOT" // 聊天机器人内部账号
)

// 用户状态
const (
	UserStatusActive    = "ACTIVE"    // 正常
	UserStatusSuspended = "SUSPENDED" // 被封禁
	UserStatusDeleted   = "DELETED"   // 已注销
)

// User 用户模型
// 对应数据库 users 表
type User struct {
	gorm.Model

	// Username 登录用户名，全局唯一
	Username string `gorm:"column:username;uniqueIndex;type:varchar(50);not null;comment:用户名"`

	// Password 密码（已哈希）
	// 存储 bcrypt 哈希后的密码，OAuth 用户为空
	Password string `gorm:"column:password;type:varchar(100);comment:密码"`

	// Role 用户角色：USER / ENTUSER / ADMIN / CHATBOT
	Role string `gorm:"column:role;type:varchar(10);not null;default:USER;comment:角色"`

	// ProviderID OAuth 提供方返回的用户标识，表单注册用户为空
	ProviderID string `gorm:"column:provider_id;index;type:varchar(100);comment:OAuth提供方用户id"`

	// Status 账号状态：ACTIVE / SUSPENDED / DELETED
	Status string `gorm:"column:status;index;type:varchar(10);not null;default:ACTIVE;comment:状态"`

	// AIRateLimit 剩余 AI 提问次数
	AIRateLimit int `gorm:"column:ai_rate_limit;not null;default:10;comment:AI剩余调用次数"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收前端传来的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 将 RawPassword 明文密码加密后存入 Password 字段，调用方无需手动加密
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword 校验明文密码与存储的哈希是否匹配
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}

// IsOAuthUser 判断是否为 OAuth 登录用户
// OAuth 用户没有本地密码，不允许修改密码
func (u *User) IsOAuthUser() bool {
	return u.ProviderID != ""
}

// Profile 用户资料模型
// 与 User 一对一，user_id 即主键
type Profile struct {
	// UserID 所属用户 id，主键
	UserID uint `gorm:"column:user_id;primaryKey;comment:用户id"`

	// Nickname 昵称，全局唯一
	Nickname string `gorm:"column:nickname;uniqueIndex;type:varchar(30);not null;comment:昵称"`

	// Stacks 技术栈，逗号分隔
	Stacks string `gorm:"column:stacks;type:varchar(255);comment:技术栈"`

	// Experience 开发经验年限
	Experience int `gorm:"column:experience;comment:经验年限"`

	// SelfIntro 自我介绍
	SelfIntro string `gorm:"column:self_intro;type:varchar(500);comment:自我介绍"`

	// AllowCompanyAccess 是否允许企业用户查看资料
	AllowCompanyAccess bool `gorm:"column:allow_company_access;not null;default:false;comment:是否对企业可见"`

	// ImageURL 头像访问地址
	ImageURL string `gorm:"column:image_url;type:varchar(255);comment:头像url"`

	// StorageKey 头像在对象存储中的 key，删除头像时使用
	StorageKey string `gorm:"column:storage_key;type:varchar(255);comment:对象存储key"`
}

func (Profile) TableName() string {
	return "profiles"
}
