// Package reaction 实现点赞/收藏/关注/举报的业务逻辑
// 行为与目标类型有固定搭配，命中点赞和关注时向目标所有者投递通知
package reaction

import (
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

// Notifier 通知投递接口，由通知 Service 实现
type Notifier interface {
	Notify(senderID, receiverID uint, notifyType model.NotificationType, targetID uint)
}

// reactionService 用户行为业务逻辑实现
type reactionService struct {
	repos    *repository.Repositories
	notifier Notifier
}

// NewReactionService 构造函数
// notifier 传 nil 时不投递通知
func NewReactionService(repos *repository.Repositories, notifier Notifier) *reactionService {
	return &reactionService{repos: repos, notifier: notifier}
}

// validCombination 校验行为类型与目标类型的搭配
// LIKE: 帖子或评论；BOOKMARK/REPORT: 帖子；FOLLOW: 用户
func validCombination(targetType model.TargetType, reactionType model.ReactionType) bool {
	switch reactionType {
	case model.ReactionLike:
		return targetType == model.TargetPost || targetType == model.TargetComment
	case model.ReactionBookmark, model.ReactionReport:
		return targetType == model.TargetPost
	case model.ReactionFollow:
		return targetType == model.TargetUser
	}
	return false
}

// resolveTargetOwner 校验目标存在并返回目标所有者的用户 id
func (s *reactionService) resolveTargetOwner(targetType model.TargetType, targetID uint) (uint, error) {
	switch targetType {
	case model.TargetPost:
		post, err := s.repos.Post.FindByID(targetID)
		if err != nil {
			return 0, err
		}
		return post.UserID, nil
	case model.TargetComment:
		comment, err := s.repos.Comment.FindByID(targetID)
		if err != nil {
			return 0, err
		}
		return comment.UserID, nil
	case model.TargetUser:
		user, err := s.repos.User.FindByID(targetID)
		if err != nil {
			return 0, err
		}
		return user.ID, nil
	}
	return 0, errorx.Newf(errorx.CodeInvalidParam, "未知目标类型 %s", targetType)
}

// AddReaction 创建行为记录
// 不允许对自己的内容发起行为，同一四元组只能存在一条记录
func (s *reactionService) AddReaction(userID uint, targetTypeStr string, targetID uint, reactionTypeStr string) error {
	targetType := model.TargetType(targetTypeStr)
	reactionType := model.ReactionType(reactionTypeStr)
	if !targetType.IsValid() || !reactionType.IsValid() || !validCombination(targetType, reactionType) {
		return errorx.Newf(errorx.CodeInvalidParam, "非法行为组合 %s/%s", targetTypeStr, reactionTypeStr)
	}

	if _, err := s.repos.User.FindByID(userID); err != nil {
		return err
	}
	ownerID, err := s.resolveTargetOwner(targetType, targetID)
	if err != nil {
		return err
	}
	if ownerID == userID {
		return errorx.New(errorx.CodeInvalidParam, "不能对自己的内容发起该操作")
	}

	if _, err := s.repos.Reaction.FindByTuple(userID, targetType, targetID, reactionType); err == nil {
		return errorx.New(errorx.CodeAlreadyExists, "已经存在相同的操作记录")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return err
	}

	if err := s.repos.Reaction.Create(&model.Reaction{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		Type:       reactionType,
	}); err != nil {
		return err
	}

	s.fanOutNotification(userID, ownerID, targetType, targetID, reactionType)
	return nil
}

// fanOutNotification 按行为类型投递通知
// 收藏和举报不通知
func (s *reactionService) fanOutNotification(userID, ownerID uint, targetType model.TargetType, targetID uint, reactionType model.ReactionType) {
	if s.notifier == nil {
		return
	}
	switch {
	case reactionType == model.ReactionFollow:
		s.notifier.Notify(userID, ownerID, model.NotifyFollow, userID)
	case reactionType == model.ReactionLike && targetType == model.TargetPost:
		s.notifier.Notify(userID, ownerID, model.NotifyLikePost, targetID)
	case reactionType == model.ReactionLike && targetType == model.TargetComment:
		s.notifier.Notify(userID, ownerID, model.NotifyLikeComment, targetID)
	}
}

// DeleteReaction 删除行为记录
func (s *reactionService) DeleteReaction(userID uint, targetTypeStr string, targetID uint, reactionTypeStr string) error {
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return err
	}
	reaction, err := s.repos.Reaction.FindByTuple(userID,
		model.TargetType(targetTypeStr), targetID, model.ReactionType(reactionTypeStr))
	if err != nil {
		return err
	}
	return s.repos.Reaction.Delete(reaction.ID)
}

// IsReactionExists 判断行为记录是否存在
func (s *reactionService) IsReactionExists(userID uint, targetTypeStr string, targetID uint, reactionTypeStr string) (bool, error) {
	_, err := s.repos.Reaction.FindByTuple(userID,
		model.TargetType(targetTypeStr), targetID, model.ReactionType(reactionTypeStr))
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CountReactions 统计目标收到的某类行为数量，空结果返回 0
func (s *reactionService) CountReactions(targetTypeStr string, targetID uint, reactionTypeStr string) (int64, error) {
	targetType := model.TargetType(targetTypeStr)
	reactionType := model.ReactionType(reactionTypeStr)
	if !targetType.IsValid() || !reactionType.IsValid() {
		return 0, errorx.Newf(errorx.CodeInvalidParam, "非法行为组合 %s/%s", targetTypeStr, reactionTypeStr)
	}
	return s.repos.Reaction.Count(targetType, targetID, reactionType)
}

// GetBookmarkedPosts 查询用户收藏的帖子
func (s *reactionService) GetBookmarkedPosts(userID uint) ([]respond.PostSummaryRespond, error) {
	return s.postsByReaction(userID, model.ReactionBookmark)
}

// GetLikedPosts 查询用户点赞的帖子
func (s *reactionService) GetLikedPosts(userID uint) ([]respond.PostSummaryRespond, error) {
	return s.postsByReaction(userID, model.ReactionLike)
}

func (s *reactionService) postsByReaction(userID uint, reactionType model.ReactionType) ([]respond.PostSummaryRespond, error) {
	reactions, err := s.repos.Reaction.ListByUserAndType(userID, model.TargetPost, reactionType)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(reactions))
	for _, reaction := range reactions {
		ids = append(ids, reaction.TargetID)
	}
	posts, err := s.repos.Post.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	summaries := make([]respond.PostSummaryRespond, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, respond.PostSummaryRespond{
			ID:        post.ID,
			UserID:    post.UserID,
			Type:      string(post.Type),
			Title:     post.Title,
			ViewCount: post.ViewCount,
			CreatedAt: post.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return summaries, nil
}

// GetFollowedUsers 查询用户关注的用户 id 列表
func (s *reactionService) GetFollowedUsers(userID uint) ([]uint, error) {
	reactions, err := s.repos.Reaction.ListByUserAndType(userID, model.TargetUser, model.ReactionFollow)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(reactions))
	for _, reaction := range reactions {
		ids = append(ids, reaction.TargetID)
	}
	return ids, nil
}

// GetReportedPosts 查询被举报的帖子（管理端）
func (s *reactionService) GetReportedPosts() ([]respond.PostSummaryRespond, error) {
	reactions, err := s.repos.Reaction.ListByType(model.TargetPost, model.ReactionReport)
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(reactions))
	for _, reaction := range reactions {
		if !seen[reaction.TargetID] {
			seen[reaction.TargetID] = true
			ids = append(ids, reaction.TargetID)
		}
	}
	posts, err := s.repos.Post.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	summaries := make([]respond.PostSummaryRespond, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, respond.PostSummaryRespond{
			ID:        post.ID,
			UserID:    post.UserID,
			Type:      string(post.Type),
			Title:     post.Title,
			ViewCount: post.ViewCount,
			CreatedAt: post.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return summaries, nil
}
