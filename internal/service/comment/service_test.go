package comment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

func createUser(t *testing.T, repos *repository.Repositories, username string, role string) uint {
	t.Helper()
	user := &model.User{
		Username:    username,
		RawPassword: "password123",
		Role:        role,
		Status:      model.UserStatusActive,
	}
	require.NoError(t, repos.User.Create(user))
	require.NoError(t, repos.Profile.Create(&model.Profile{UserID: user.ID, Nickname: username + "_nick"}))
	return user.ID
}

func createPost(t *testing.T, repos *repository.Repositories, ownerID uint, postType model.PostType) uint {
	t.Helper()
	post := &model.Post{UserID: ownerID, Type: postType, Title: "标题", Content: "内容"}
	require.NoError(t, repos.Post.Create(post))
	return post.ID
}

func TestCreateCommentAndReply(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	author := createUser(t, repos, "author", model.RoleUser)
	reader := createUser(t, repos, "reader", model.RoleUser)
	postID := createPost(t, repos, author, model.PostTypeFree)

	commentID, err := svc.CreateComment(reader, "COMMENT", postID, "写得好")
	require.NoError(t, err)

	_, err = svc.CreateComment(author, "REPLY", commentID, "谢谢")
	require.NoError(t, err)

	roots, err := svc.GetCommentsByPost(postID)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Replies, 1)
	require.Equal(t, "谢谢", roots[0].Replies[0].Content)
}

func TestCreateReplyOnReplyRejected(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	author := createUser(t, repos, "author", model.RoleUser)
	postID := createPost(t, repos, author, model.PostTypeFree)

	commentID, err := svc.CreateComment(author, "COMMENT", postID, "一楼")
	require.NoError(t, err)
	replyID, err := svc.CreateComment(author, "REPLY", commentID, "二楼")
	require.NoError(t, err)

	_, err = svc.CreateComment(author, "REPLY", replyID, "三楼")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestCreateCommentInvalid(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	author := createUser(t, repos, "author", model.RoleUser)
	postID := createPost(t, repos, author, model.PostTypeFree)

	_, err := svc.CreateComment(author, "SHOUT", postID, "内容")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	// 父级帖子不存在
	_, err = svc.CreateComment(author, "COMMENT", 9999, "内容")
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestDeleteAnswerAdminOnly(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	asker := createUser(t, repos, "asker", model.RoleUser)
	answerer := createUser(t, repos, "answerer", model.RoleUser)
	admin := createUser(t, repos, "admin", model.RoleAdmin)
	postID := createPost(t, repos, asker, model.PostTypeQnA)

	answerID, err := svc.CreateComment(answerer, "ANSWER", postID, "这样解决")
	require.NoError(t, err)

	err = svc.DeleteComment(answerer, answerID)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	require.NoError(t, svc.DeleteComment(admin, answerID))
	_, err = repos.Comment.FindByID(answerID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestDeleteCommentCascadesReplies(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	author := createUser(t, repos, "author", model.RoleUser)
	postID := createPost(t, repos, author, model.PostTypeFree)

	commentID, err := svc.CreateComment(author, "COMMENT", postID, "一楼")
	require.NoError(t, err)
	replyID, err := svc.CreateComment(author, "REPLY", commentID, "二楼")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(author, commentID))
	_, err = repos.Comment.FindByID(replyID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestDeleteCommentAuthorOrAdmin(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	author := createUser(t, repos, "author", model.RoleUser)
	stranger := createUser(t, repos, "stranger", model.RoleUser)
	postID := createPost(t, repos, author, model.PostTypeFree)

	commentID, err := svc.CreateComment(author, "COMMENT", postID, "内容")
	require.NoError(t, err)

	err = svc.DeleteComment(stranger, commentID)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestUpdateCommentOnlyAuthor(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	author := createUser(t, repos, "author", model.RoleUser)
	stranger := createUser(t, repos, "stranger", model.RoleUser)
	postID := createPost(t, repos, author, model.PostTypeFree)

	commentID, err := svc.CreateComment(author, "COMMENT", postID, "原内容")
	require.NoError(t, err)

	err = svc.UpdateComment(stranger, commentID, "篡改")
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	require.NoError(t, svc.UpdateComment(author, commentID, "新内容"))
	comment, err := repos.Comment.FindByID(commentID)
	require.NoError(t, err)
	require.Equal(t, "新内容", comment.Content)
}

func TestGetCommentsQnAUsesAnswers(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewCommentService(repos)

	asker := createUser(t, repos, "asker", model.RoleUser)
	postID := createPost(t, repos, asker, model.PostTypeQnA)

	_, err := svc.CreateComment(asker, "ANSWER", postID, "回答")
	require.NoError(t, err)
	// 普通评论不会出现在问答帖的评论树里
	_, err = svc.CreateComment(asker, "COMMENT", postID, "普通评论")
	require.NoError(t, err)

	roots, err := svc.GetCommentsByPost(postID)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, "ANSWER", roots[0].Type)
}
