package reaction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

// recordingNotifier 记录收到的通知投递，断言用
type recordingNotifier struct {
	types []model.NotificationType
}

func (n *recordingNotifier) Notify(_, _ uint, notifyType model.NotificationType, _ uint) {
	n.types = append(n.types, notifyType)
}

func createUser(t *testing.T, repos *repository.Repositories, username string) uint {
	t.Helper()
	user := &model.User{
		Username:    username,
		RawPassword: "password123",
		Role:        model.RoleUser,
		Status:      model.UserStatusActive,
	}
	require.NoError(t, repos.User.Create(user))
	require.NoError(t, repos.Profile.Create(&model.Profile{UserID: user.ID, Nickname: username + "_nick"}))
	return user.ID
}

func createPost(t *testing.T, repos *repository.Repositories, ownerID uint) uint {
	t.Helper()
	post := &model.Post{UserID: ownerID, Type: model.PostTypeFree, Title: "标题", Content: "内容"}
	require.NoError(t, repos.Post.Create(post))
	return post.ID
}

// 同一用户对同一目标重复点赞应返回已存在
func TestAddReactionDuplicate(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReactionService(repos, nil)

	author := createUser(t, repos, "author")
	liker := createUser(t, repos, "liker")
	postID := createPost(t, repos, author)

	require.NoError(t, svc.AddReaction(liker, "POST", postID, "LIKE"))

	err := svc.AddReaction(liker, "POST", postID, "LIKE")
	require.Equal(t, errorx.CodeAlreadyExists, errorx.GetCode(err))

	count, err := svc.CountReactions("POST", postID, "LIKE")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestAddReactionInvalidCombination(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReactionService(repos, nil)

	author := createUser(t, repos, "author")
	liker := createUser(t, repos, "liker")
	postID := createPost(t, repos, author)

	// 收藏用户、关注帖子都是非法搭配
	err := svc.AddReaction(liker, "USER", author, "BOOKMARK")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	err = svc.AddReaction(liker, "POST", postID, "FOLLOW")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestAddReactionSelfTarget(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReactionService(repos, nil)

	author := createUser(t, repos, "author")
	postID := createPost(t, repos, author)

	err := svc.AddReaction(author, "POST", postID, "LIKE")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestAddReactionNotifications(t *testing.T) {
	repos := memory.NewRepositories()
	notifier := &recordingNotifier{}
	svc := NewReactionService(repos, notifier)

	author := createUser(t, repos, "author")
	fan := createUser(t, repos, "fan")
	postID := createPost(t, repos, author)

	require.NoError(t, svc.AddReaction(fan, "POST", postID, "LIKE"))
	require.NoError(t, svc.AddReaction(fan, "USER", author, "FOLLOW"))
	// 收藏不投递通知
	require.NoError(t, svc.AddReaction(fan, "POST", postID, "BOOKMARK"))

	require.Equal(t, []model.NotificationType{model.NotifyLikePost, model.NotifyFollow}, notifier.types)
}

func TestDeleteReaction(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReactionService(repos, nil)

	author := createUser(t, repos, "author")
	liker := createUser(t, repos, "liker")
	postID := createPost(t, repos, author)

	require.NoError(t, svc.AddReaction(liker, "POST", postID, "LIKE"))
	require.NoError(t, svc.DeleteReaction(liker, "POST", postID, "LIKE"))

	exists, err := svc.IsReactionExists(liker, "POST", postID, "LIKE")
	require.NoError(t, err)
	require.False(t, exists)

	// 再次取消时记录已不存在
	err = svc.DeleteReaction(liker, "POST", postID, "LIKE")
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestGetBookmarkedPosts(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReactionService(repos, nil)

	author := createUser(t, repos, "author")
	reader := createUser(t, repos, "reader")
	post1 := createPost(t, repos, author)
	post2 := createPost(t, repos, author)

	require.NoError(t, svc.AddReaction(reader, "POST", post1, "BOOKMARK"))
	require.NoError(t, svc.AddReaction(reader, "POST", post2, "BOOKMARK"))

	posts, err := svc.GetBookmarkedPosts(reader)
	require.NoError(t, err)
	require.Len(t, posts, 2)
}

func TestGetFollowedUsers(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReactionService(repos, nil)

	fan := createUser(t, repos, "fan")
	idol1 := createUser(t, repos, "idol1")
	idol2 := createUser(t, repos, "idol2")

	require.NoError(t, svc.AddReaction(fan, "USER", idol1, "FOLLOW"))
	require.NoError(t, svc.AddReaction(fan, "USER", idol2, "FOLLOW"))

	ids, err := svc.GetFollowedUsers(fan)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint{idol1, idol2}, ids)
}

func TestGetReportedPostsDeduplicated(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReactionService(repos, nil)

	author := createUser(t, repos, "author")
	reporter1 := createUser(t, repos, "reporter1")
	reporter2 := createUser(t, repos, "reporter2")
	postID := createPost(t, repos, author)

	require.NoError(t, svc.AddReaction(reporter1, "POST", postID, "REPORT"))
	require.NoError(t, svc.AddReaction(reporter2, "POST", postID, "REPORT"))

	posts, err := svc.GetReportedPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
}
