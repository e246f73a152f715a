// Package alan 实现 AI 助手问答服务，对接外部 Alan 接口并消耗用户 AI 额度
package alan

import (
	"context"

	"go.uber.org/zap"

	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/infrastructure/alan"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/constants"
	"outspecs_server/pkg/errorx"
)

const (
	// QuestionTypeRecommend 推荐玩乐：回答落库为 AIPLAY 帖子
	QuestionTypeRecommend = "RECOMMEND"
	// QuestionTypeQuestion 普通问答：回答写入机器人私聊会话
	QuestionTypeQuestion = "QUESTION"
)

// ChatbotProvider 提供聊天机器人账号
type ChatbotProvider interface {
	GetOrCreateChatbotUser() (*model.User, error)
}

// Messenger 把问答写入私聊会话
type Messenger interface {
	GetOrCreateRoom(userID, targetID uint) (*respond.ChatRoomRespond, error)
	SendMessage(roomID, senderID uint, content string) (*respond.ChatMessageRespond, error)
}

type alanService struct {
	repos     *repository.Repositories
	asker     alan.Asker
	chatbot   ChatbotProvider
	messenger Messenger
}

// NewAlanService 创建 AI 助手服务
func NewAlanService(repos *repository.Repositories, asker alan.Asker, chatbot ChatbotProvider, messenger Messenger) *alanService {
	return &alanService{
		repos:     repos,
		asker:     asker,
		chatbot:   chatbot,
		messenger: messenger,
	}
}

// Question 向 AI 助手提问
// 每次提问消耗一点 AI 额度，额度耗尽后拒绝
func (s *alanService) Question(ctx context.Context, userID uint, questionType, question string) (*respond.AIAnswerRespond, error) {
	if question == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "提问内容不能为空")
	}
	if len(question) > constants.AI_QUESTION_MAX_LEN {
		return nil, errorx.New(errorx.CodeInvalidParam, "提问内容过长")
	}
	if questionType != QuestionTypeRecommend && questionType != QuestionTypeQuestion {
		return nil, errorx.New(errorx.CodeInvalidParam, "未知的提问类型")
	}
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return nil, err
	}
	ok, err := s.repos.User.DecrementAIQuota(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errorx.New(errorx.CodeInvalidState, "AI 使用额度已耗尽")
	}

	answer, err := s.asker.Ask(ctx, question)
	if err != nil {
		// 额度已扣但外部调用失败，补偿性归还
		if rerr := s.refundQuota(userID); rerr != nil {
			zap.L().Warn("AI 额度归还失败", zap.Uint("user_id", userID), zap.Error(rerr))
		}
		return nil, err
	}

	resp := &respond.AIAnswerRespond{Answer: answer}
	switch questionType {
	case QuestionTypeRecommend:
		postID, err := s.saveAsPost(userID, question, answer)
		if err != nil {
			return nil, err
		}
		resp.PostID = postID
	case QuestionTypeQuestion:
		roomID, err := s.saveAsChat(userID, question, answer)
		if err != nil {
			return nil, err
		}
		resp.ChatRoomID = roomID
	}
	if user, uerr := s.repos.User.FindByID(userID); uerr == nil {
		resp.Remaining = user.AIRateLimit
	}
	return resp, nil
}

// GetRemainingQuota 查询用户剩余 AI 额度
func (s *alanService) GetRemainingQuota(userID uint) (int, error) {
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return 0, err
	}
	return user.AIRateLimit, nil
}

// saveAsPost 把推荐结果落库为一篇 AIPLAY 帖子
func (s *alanService) saveAsPost(userID uint, question, answer string) (uint, error) {
	post := &model.Post{
		UserID:  userID,
		Type:    model.PostTypeAIPlay,
		Title:   truncate(question, 100),
		Content: answer,
	}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Post.Create(post); err != nil {
			return err
		}
		return tx.PostDetail.SaveHangout(&model.PostHangout{PostID: post.ID})
	})
	if err != nil {
		return 0, err
	}
	return post.ID, nil
}

// saveAsChat 把问答写入用户与机器人的私聊会话
func (s *alanService) saveAsChat(userID uint, question, answer string) (uint, error) {
	bot, err := s.chatbot.GetOrCreateChatbotUser()
	if err != nil {
		return 0, err
	}
	room, err := s.messenger.GetOrCreateRoom(userID, bot.ID)
	if err != nil {
		return 0, err
	}
	if _, err = s.messenger.SendMessage(room.ID, userID, question); err != nil {
		return 0, err
	}
	if _, err = s.messenger.SendMessage(room.ID, bot.ID, answer); err != nil {
		return 0, err
	}
	return room.ID, nil
}

func (s *alanService) refundQuota(userID uint) error {
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return err
	}
	user.AIRateLimit++
	return s.repos.User.Update(user)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
