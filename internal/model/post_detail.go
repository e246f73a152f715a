// 本文件定义帖子类型明细模型
// 每种帖子类型最多对应一行明细，post_id 即主键
package model

// 组队帖状态
const (
	TeamStatusOpen   = "OPEN"   // 招募中
	TeamStatusClosed = "CLOSED" // 已满员关闭
)

// PostTeamInfo 组队帖明细
type PostTeamInfo struct {
	// PostID 所属帖子 id，主键
	PostID uint `gorm:"column:post_id;primaryKey;comment:帖子id"`

	// Status 招募状态：OPEN / CLOSED
	Status string `gorm:"column:status;type:varchar(10);not null;default:OPEN;comment:招募状态"`

	// Capacity 招募人数上限
	Capacity int `gorm:"column:capacity;not null;comment:招募人数"`
}

func (PostTeamInfo) TableName() string {
	return "posts_team_information"
}

// PostQnA 问答帖明细
type PostQnA struct {
	PostID uint `gorm:"column:post_id;primaryKey;comment:帖子id"`

	// AnswerComplete 提问者是否已采纳答案
	AnswerComplete bool `gorm:"column:answer_complete;not null;default:false;comment:是否已解决"`
}

func (PostQnA) TableName() string {
	return "posts_qna"
}

// PostJob 招聘帖明细
type PostJob struct {
	PostID uint `gorm:"column:post_id;primaryKey;comment:帖子id"`

	// TechStack 岗位要求的技术栈
	TechStack string `gorm:"column:tech_stack;type:varchar(255);comment:技术栈"`

	// CareerYears 要求的工作年限
	CareerYears int `gorm:"column:career_years;comment:工作年限"`
}

func (PostJob) TableName() string {
	return "posts_job"
}

// PostHangout 活动帖明细
type PostHangout struct {
	PostID uint `gorm:"column:post_id;primaryKey;comment:帖子id"`

	// PlaceName 活动地点
	PlaceName string `gorm:"column:place_name;type:varchar(100);comment:活动地点"`
}

func (PostHangout) TableName() string {
	return "posts_hangout"
}

// PostTag 帖子标签
// 标签统一存放在本表，一个帖子可有多行
type PostTag struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement"`

	// PostID 所属帖子 id
	PostID uint `gorm:"column:post_id;index;not null;comment:帖子id"`

	// Tag 标签内容
	Tag string `gorm:"column:tag;type:varchar(30);not null;comment:标签"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
