package alan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"
	"outspecs_server/internal/service/chat"
	"outspecs_server/pkg/constants"
	"outspecs_server/pkg/errorx"
	"outspecs_server/pkg/util/snowflake"
)

func init() {
	snowflake.Init(2)
}

// fakeAsker 固定回答或固定失败
type fakeAsker struct {
	answer string
	err    error
}

func (a *fakeAsker) Ask(_ context.Context, _ string) (string, error) {
	return a.answer, a.err
}

// fakeChatbot 直接返回预置的机器人账号
type fakeChatbot struct {
	bot *model.User
}

func (c *fakeChatbot) GetOrCreateChatbotUser() (*model.User, error) {
	return c.bot, nil
}

func createUser(t *testing.T, repos *repository.Repositories, username string, quota int) uint {
	t.Helper()
	user := &model.User{
		Username:    username,
		RawPassword: "password123",
		Role:        model.RoleUser,
		Status:      model.UserStatusActive,
		AIRateLimit: quota,
	}
	require.NoError(t, repos.User.Create(user))
	require.NoError(t, repos.Profile.Create(&model.Profile{UserID: user.ID, Nickname: username + "_nick"}))
	return user.ID
}

func createChatbot(t *testing.T, repos *repository.Repositories) *model.User {
	t.Helper()
	bot := &model.User{
		Username:    constants.CHATBOT_USERNAME,
		RawPassword: "password123",
		Role:        model.RoleChatbot,
		Status:      model.UserStatusActive,
	}
	require.NoError(t, repos.User.Create(bot))
	require.NoError(t, repos.Profile.Create(&model.Profile{UserID: bot.ID, Nickname: "AI助手"}))
	return bot
}

func TestQuestionValidation(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewAlanService(repos, &fakeAsker{answer: "回答"}, nil, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "alice", 5)

	_, err := svc.Question(ctx, userID, QuestionTypeQuestion, "")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	long := make([]byte, constants.AI_QUESTION_MAX_LEN+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.Question(ctx, userID, QuestionTypeQuestion, string(long))
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	_, err = svc.Question(ctx, userID, "CHAT", "问题")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	// 校验失败不扣额度
	remaining, err := svc.GetRemainingQuota(userID)
	require.NoError(t, err)
	require.Equal(t, 5, remaining)
}

func TestQuestionQuotaExhausted(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewAlanService(repos, &fakeAsker{answer: "回答"}, nil, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "alice", 0)

	_, err := svc.Question(ctx, userID, QuestionTypeRecommend, "推荐点什么")
	require.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

func TestQuestionRecommendSavesPost(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewAlanService(repos, &fakeAsker{answer: "去江边骑行"}, nil, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "alice", 3)

	resp, err := svc.Question(ctx, userID, QuestionTypeRecommend, "周末去哪玩")
	require.NoError(t, err)
	require.Equal(t, "去江边骑行", resp.Answer)
	require.NotZero(t, resp.PostID)
	require.Equal(t, 2, resp.Remaining)

	post, err := repos.Post.FindByID(resp.PostID)
	require.NoError(t, err)
	require.Equal(t, model.PostTypeAIPlay, post.Type)
	require.Equal(t, "周末去哪玩", post.Title)
	require.Equal(t, "去江边骑行", post.Content)

	_, err = repos.PostDetail.GetHangout(resp.PostID)
	require.NoError(t, err)
}

func TestQuestionChatSavesConversation(t *testing.T) {
	repos := memory.NewRepositories()
	bot := createChatbot(t, repos)
	chatSvc := chat.NewChatService(repos)
	svc := NewAlanService(repos, &fakeAsker{answer: "可以用事务解决"}, &fakeChatbot{bot: bot}, chatSvc)
	ctx := context.Background()

	userID := createUser(t, repos, "alice", 3)

	resp, err := svc.Question(ctx, userID, QuestionTypeQuestion, "并发写怎么处理")
	require.NoError(t, err)
	require.NotZero(t, resp.ChatRoomID)

	messages, err := repos.ChatMessage.ListByRoom(resp.ChatRoomID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, userID, messages[0].SenderID)
	require.Equal(t, "并发写怎么处理", messages[0].Content)
	require.Equal(t, bot.ID, messages[1].SenderID)
	require.Equal(t, "可以用事务解决", messages[1].Content)

	// 追问复用同一个机器人会话
	again, err := svc.Question(ctx, userID, QuestionTypeQuestion, "再讲讲锁")
	require.NoError(t, err)
	require.Equal(t, resp.ChatRoomID, again.ChatRoomID)
}

func TestQuestionRefundsQuotaOnAskFailure(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewAlanService(repos, &fakeAsker{err: errors.New("上游超时")}, nil, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "alice", 3)

	_, err := svc.Question(ctx, userID, QuestionTypeRecommend, "推荐点什么")
	require.Error(t, err)

	remaining, err := svc.GetRemainingQuota(userID)
	require.NoError(t, err)
	require.Equal(t, 3, remaining)
}
