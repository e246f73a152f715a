// Package comment 实现评论的业务逻辑
// 三种评论类型：回答（问答帖）、评论（其他帖）、回复（挂在评论下），
// 回复不允许再嵌套回复
package comment

import (
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

// commentService 评论业务逻辑实现
type commentService struct {
	repos *repository.Repositories
}

// NewCommentService 构造函数
func NewCommentService(repos *repository.Repositories) *commentService {
	return &commentService{repos: repos}
}

// CreateComment 创建评论
// ANSWER/COMMENT 的父级是帖子，REPLY 的父级是评论；
// 回复的目标不能还是回复
func (s *commentService) CreateComment(userID uint, commentTypeStr string, parentID uint, content string) (uint, error) {
	commentType := model.CommentType(commentTypeStr)
	if !commentType.IsValid() {
		return 0, errorx.Newf(errorx.CodeInvalidParam, "未知评论类型 %s", commentTypeStr)
	}
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return 0, err
	}

	switch commentType {
	case model.CommentTypeAnswer, model.CommentTypeComment:
		if _, err := s.repos.Post.FindByID(parentID); err != nil {
			return 0, err
		}
	case model.CommentTypeReply:
		parent, err := s.repos.Comment.FindByID(parentID)
		if err != nil {
			return 0, err
		}
		if parent.Type == model.CommentTypeReply {
			return 0, errorx.New(errorx.CodeInvalidParam, "不能回复一条回复")
		}
	}

	comment := &model.Comment{
		UserID:   userID,
		Type:     commentType,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.repos.Comment.Create(comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// DeleteComment 删除评论
// 回答只能由管理员删除，其余类型作者或管理员可删；
// 删除时级联清理子级回复
func (s *commentService) DeleteComment(userID, commentID uint) error {
	comment, err := s.repos.Comment.FindByID(commentID)
	if err != nil {
		return err
	}
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return err
	}

	isAdmin := user.Role == model.RoleAdmin
	if comment.Type == model.CommentTypeAnswer {
		if !isAdmin {
			return errorx.New(errorx.CodeForbidden, "回答只能由管理员删除")
		}
	} else if comment.UserID != userID && !isAdmin {
		return errorx.New(errorx.CodeForbidden, "只有作者或管理员可以删除评论")
	}

	return s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if comment.Type != model.CommentTypeReply {
			replies, err := txRepos.Comment.FindByTypeAndParent(model.CommentTypeReply, commentID)
			if err != nil {
				return err
			}
			for _, reply := range replies {
				if err := txRepos.Comment.Delete(reply.ID); err != nil {
					return err
				}
			}
		}
		return txRepos.Comment.Delete(commentID)
	})
}

// UpdateComment 更新评论内容，仅作者本人可操作
func (s *commentService) UpdateComment(userID, commentID uint, content string) error {
	comment, err := s.repos.Comment.FindByID(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return errorx.New(errorx.CodeForbidden, "只有作者可以修改评论")
	}
	return s.repos.Comment.UpdateContent(commentID, content)
}

// GetCommentsByPost 获取帖子下的评论树
// 问答帖取回答，其余取评论，各自挂上回复
func (s *commentService) GetCommentsByPost(postID uint) ([]respond.CommentRespond, error) {
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		return nil, err
	}
	rootType := model.CommentTypeComment
	if post.Type == model.PostTypeQnA {
		rootType = model.CommentTypeAnswer
	}

	roots, err := s.repos.Comment.FindByTypeAndParent(rootType, postID)
	if err != nil {
		return nil, err
	}

	result := make([]respond.CommentRespond, 0, len(roots))
	for _, root := range roots {
		node := toRespond(root)
		replies, err := s.repos.Comment.FindByTypeAndParent(model.CommentTypeReply, root.ID)
		if err != nil {
			return nil, err
		}
		for _, reply := range replies {
			node.Replies = append(node.Replies, toRespond(reply))
		}
		result = append(result, node)
	}
	return result, nil
}

func toRespond(comment model.Comment) respond.CommentRespond {
	return respond.CommentRespond{
		ID:        comment.ID,
		UserID:    comment.UserID,
		Type:      string(comment.Type),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
