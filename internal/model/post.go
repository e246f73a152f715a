// 本文件定义帖子主体模型和帖子图片模型
package model

import "gorm.io/gorm"

// PostType 帖子类型
type PostType string

const (
	PostTypeQnA     PostType = "QNA"     // 问答
	PostTypeFree    PostType = "FREE"    // 自由讨论
	PostTypeTeam    PostType = "TEAM"    // 组队招募
	PostTypePlay    PostType = "PLAY"    // 线下活动
	PostTypeAIPlay  PostType = "AIPLAY"  // AI 推荐的活动
	PostTypeRecruit PostType = "RECRUIT" // 企业招聘
)

// IsValid 判断是否为已知帖子类型
func (t PostType) IsValid() bool {
	switch t {
	case PostTypeQnA, PostTypeFree, PostTypeTeam, PostTypePlay, PostTypeAIPlay, PostTypeRecruit:
		return true
	}
	return false
}

// Post 帖子模型
// 对应数据库 posts 表，类型相关的扩展数据存放在各自的明细表中
type Post struct {
	gorm.Model

	// UserID 发帖人 id
	UserID uint `gorm:"column:user_id;index;not null;comment:发帖人id"`

	// Type 帖子类型：QNA / FREE / TEAM / PLAY / AIPLAY / RECRUIT
	Type PostType `gorm:"column:type;index;type:varchar(10);not null;comment:帖子类型"`

	// Title 标题
	Title string `gorm:"column:title;type:varchar(100);not null;comment:标题"`

	// Content 正文
	Content string `gorm:"column:content;type:text;not null;comment:正文"`

	// ViewCount 浏览量，热点计数先写 redis 再回写
	ViewCount int64 `gorm:"column:view_count;not null;default:0;comment:浏览量"`
}

func (Post) TableName() string {
	return "posts"
}

// Image 帖子图片模型
// 一个帖子可挂多张图片，文件本体存放在对象存储
type Image struct {
	gorm.Model

	// PostID 所属帖子 id
	PostID uint `gorm:"column:post_id;index;not null;comment:帖子id"`

	// ImageURL 图片访问地址
	ImageURL string `gorm:"column:image_url;type:varchar(255);not null;comment:图片url"`

	// StorageKey 图片在对象存储中的 key，删除帖子时据此清理文件
	StorageKey string `gorm:"column:storage_key;type:varchar(255);not null;comment:对象存储key"`
}

func (Image) TableName() string {
	return "images"
}
