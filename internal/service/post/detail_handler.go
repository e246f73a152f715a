// detail_handler.go
// 帖子类型明细的策略分发
// 每种明细（标签、问答、组队、招聘、活动）各有一个 Handler，
// 创建和更新帖子时遍历 Handler 列表，对 Supports 命中的逐个调用 Apply。
// QNA 同时命中标签 Handler 和问答 Handler。
package post

import (
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

// DetailHandler 帖子明细处理策略
type DetailHandler interface {
	// Supports 判断是否处理该帖子类型
	Supports(postType model.PostType) bool
	// Apply 写入明细数据，先清后写，可重复调用
	Apply(repos *repository.Repositories, post *model.Post, detail *request.PostDetail) error
	// Clear 清除明细数据
	Clear(repos *repository.Repositories, postID uint) error
}

// defaultDetailHandlers 返回全部明细 Handler
func defaultDetailHandlers() []DetailHandler {
	return []DetailHandler{
		&tagHandler{},
		&qnaHandler{},
		&teamHandler{},
		&jobHandler{},
		&hangoutHandler{},
	}
}

// tagHandler 标签明细，问答帖和自由讨论帖使用
type tagHandler struct{}

func (h *tagHandler) Supports(postType model.PostType) bool {
	return postType == model.PostTypeQnA || postType == model.PostTypeFree
}

func (h *tagHandler) Apply(repos *repository.Repositories, post *model.Post, detail *request.PostDetail) error {
	return repos.PostDetail.ReplaceTags(post.ID, detail.Tags)
}

func (h *tagHandler) Clear(repos *repository.Repositories, postID uint) error {
	return repos.PostDetail.DeleteTags(postID)
}

// qnaHandler 问答明细
type qnaHandler struct{}

func (h *qnaHandler) Supports(postType model.PostType) bool {
	return postType == model.PostTypeQnA
}

func (h *qnaHandler) Apply(repos *repository.Repositories, post *model.Post, detail *request.PostDetail) error {
	return repos.PostDetail.SaveQnA(&model.PostQnA{PostID: post.ID})
}

func (h *qnaHandler) Clear(repos *repository.Repositories, postID uint) error {
	return repos.PostDetail.DeleteQnA(postID)
}

// teamHandler 组队明细
type teamHandler struct{}

func (h *teamHandler) Supports(postType model.PostType) bool {
	return postType == model.PostTypeTeam
}

func (h *teamHandler) Apply(repos *repository.Repositories, post *model.Post, detail *request.PostDetail) error {
	if detail.Capacity < 1 {
		return errorx.New(errorx.CodeInvalidParam, "招募人数必须大于0")
	}
	return repos.PostDetail.SaveTeamInfo(&model.PostTeamInfo{
		PostID:   post.ID,
		Status:   model.TeamStatusOpen,
		Capacity: detail.Capacity,
	})
}

func (h *teamHandler) Clear(repos *repository.Repositories, postID uint) error {
	return repos.PostDetail.DeleteTeamInfo(postID)
}

// jobHandler 招聘明细
type jobHandler struct{}

func (h *jobHandler) Supports(postType model.PostType) bool {
	return postType == model.PostTypeRecruit
}

func (h *jobHandler) Apply(repos *repository.Repositories, post *model.Post, detail *request.PostDetail) error {
	return repos.PostDetail.SaveJob(&model.PostJob{
		PostID:      post.ID,
		TechStack:   detail.TechStack,
		CareerYears: detail.CareerYears,
	})
}

func (h *jobHandler) Clear(repos *repository.Repositories, postID uint) error {
	return repos.PostDetail.DeleteJob(postID)
}

// hangoutHandler 活动明细，线下活动帖和 AI 推荐帖使用
type hangoutHandler struct{}

func (h *hangoutHandler) Supports(postType model.PostType) bool {
	return postType == model.PostTypePlay || postType == model.PostTypeAIPlay
}

func (h *hangoutHandler) Apply(repos *repository.Repositories, post *model.Post, detail *request.PostDetail) error {
	return repos.PostDetail.SaveHangout(&model.PostHangout{
		PostID:    post.ID,
		PlaceName: detail.PlaceName,
	})
}

func (h *hangoutHandler) Clear(repos *repository.Repositories, postID uint) error {
	return repos.PostDetail.DeleteHangout(postID)
}
