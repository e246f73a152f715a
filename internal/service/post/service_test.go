package post

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/infrastructure/storage"
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

// pngReader 返回带 PNG 文件头的图片内容
func pngReader(payload string) io.Reader {
	return bytes.NewReader(append([]byte("\x89PNG\r\n\x1a\n"), payload...))
}

func TestCreateTeamPostRoundTrip(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "leader", model.RoleUser)
	req := request.CreatePostRequest{
		Type:    "TEAM",
		Title:   "找队友做项目",
		Content: "三人小队再招三人",
		Detail:  request.PostDetail{Capacity: 3},
	}
	postID, err := svc.CreatePost(ctx, userID, req, nil)
	require.NoError(t, err)

	result, err := svc.GetPostByID(ctx, postID)
	require.NoError(t, err)
	require.Equal(t, "TEAM", result.Type)
	require.Equal(t, 3, result.Detail.Capacity)
	require.Equal(t, model.TeamStatusOpen, result.Detail.Status)

	info, err := repos.PostDetail.GetTeamInfo(postID)
	require.NoError(t, err)
	require.Equal(t, 3, info.Capacity)
}

func TestCreatePostInvalid(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "writer", model.RoleUser)

	_, err := svc.CreatePost(ctx, userID, request.CreatePostRequest{
		Type: "UNKNOWN", Title: "标题", Content: "内容",
	}, nil)
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	// 标题只有空白等同于空
	_, err = svc.CreatePost(ctx, userID, request.CreatePostRequest{
		Type: "FREE", Title: "   ", Content: "内容",
	}, nil)
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	_, err = svc.CreatePost(ctx, userID, request.CreatePostRequest{
		Type: "TEAM", Title: "标题", Content: "内容",
		Detail: request.PostDetail{Capacity: 0},
	}, nil)
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestCreateRecruitPostRequiresEnterpriseUser(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	normal := createUser(t, repos, "normal", model.RoleUser)
	enterprise := createUser(t, repos, "enterprise", model.RoleEntUser)

	req := request.CreatePostRequest{
		Type: "RECRUIT", Title: "招后端工程师", Content: "岗位描述",
		Detail: request.PostDetail{TechStack: "Go, MySQL", CareerYears: 3},
	}
	_, err := svc.CreatePost(ctx, normal, req, nil)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	postID, err := svc.CreatePost(ctx, enterprise, req, nil)
	require.NoError(t, err)

	job, err := repos.PostDetail.GetJob(postID)
	require.NoError(t, err)
	require.Equal(t, "Go, MySQL", job.TechStack)
}

func TestCreatePostWithImages(t *testing.T) {
	repos := memory.NewRepositories()
	store := storage.NewMemoryStorage()
	svc := NewPostService(repos, store, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "photographer", model.RoleUser)
	files := []io.Reader{pngReader("img-a"), pngReader("img-b")}
	postID, err := svc.CreatePost(ctx, userID, request.CreatePostRequest{
		Type: "FREE", Title: "组图", Content: "看图说话",
	}, files)
	require.NoError(t, err)

	images, err := repos.Image.FindByPostID(postID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	for _, image := range images {
		require.True(t, store.Exists(image.StorageKey))
	}
}

func TestCreatePostRejectsNonImageFile(t *testing.T) {
	repos := memory.NewRepositories()
	store := storage.NewMemoryStorage()
	svc := NewPostService(repos, store, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "uploader", model.RoleUser)
	// 伪装成图片上传的脚本文件，按文件头识破
	files := []io.Reader{pngReader("ok"), bytes.NewReader([]byte("#!/bin/sh\nrm -rf /"))}
	_, err := svc.CreatePost(ctx, userID, request.CreatePostRequest{
		Type: "FREE", Title: "混入非图片", Content: "内容",
	}, files)
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	// 已上传的第一张被补偿删除，存储中不残留对象
	require.Len(t, store.DeletedKeys(), 1)
}

func TestUpdatePostChangeTypeClearsOldDetail(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	userID := createUser(t, repos, "leader", model.RoleUser)
	postID, err := svc.CreatePost(ctx, userID, request.CreatePostRequest{
		Type: "TEAM", Title: "组队", Content: "招人",
		Detail: request.PostDetail{Capacity: 4},
	}, nil)
	require.NoError(t, err)

	err = svc.UpdatePost(ctx, postID, userID, request.UpdatePostRequest{
		Type: "FREE", Title: "改成闲聊", Content: "不组队了",
	}, nil)
	require.NoError(t, err)

	// 组队明细行不应残留
	_, err = repos.PostDetail.GetTeamInfo(postID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	post, err := repos.Post.FindByID(postID)
	require.NoError(t, err)
	require.Equal(t, model.PostTypeFree, post.Type)
}

func TestUpdatePostOnlyAuthor(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	author := createUser(t, repos, "author", model.RoleUser)
	other := createUser(t, repos, "other", model.RoleUser)
	postID, err := svc.CreatePost(ctx, author, request.CreatePostRequest{
		Type: "FREE", Title: "标题", Content: "内容",
	}, nil)
	require.NoError(t, err)

	err = svc.UpdatePost(ctx, postID, other, request.UpdatePostRequest{
		Type: "FREE", Title: "改标题", Content: "改内容",
	}, nil)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestDeleteQnAPostAdminOnly(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	author := createUser(t, repos, "asker", model.RoleUser)
	admin := createUser(t, repos, "admin", model.RoleAdmin)
	postID, err := svc.CreatePost(ctx, author, request.CreatePostRequest{
		Type: "QNA", Title: "问题", Content: "怎么办",
		Detail: request.PostDetail{Tags: []string{"go"}},
	}, nil)
	require.NoError(t, err)

	// 作者本人也删不了问答帖
	err = svc.DeletePost(ctx, postID, author)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	require.NoError(t, svc.DeletePost(ctx, postID, admin))
	_, err = repos.Post.FindByID(postID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestDeletePostCascadesComments(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	author := createUser(t, repos, "author", model.RoleUser)
	postID, err := svc.CreatePost(ctx, author, request.CreatePostRequest{
		Type: "FREE", Title: "标题", Content: "内容",
	}, nil)
	require.NoError(t, err)

	comment := &model.Comment{UserID: author, Type: model.CommentTypeComment, ParentID: postID, Content: "沙发"}
	require.NoError(t, repos.Comment.Create(comment))
	reply := &model.Comment{UserID: author, Type: model.CommentTypeReply, ParentID: comment.ID, Content: "自顶"}
	require.NoError(t, repos.Comment.Create(reply))

	require.NoError(t, svc.DeletePost(ctx, postID, author))

	_, err = repos.Comment.FindByID(comment.ID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	_, err = repos.Comment.FindByID(reply.ID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestDeleteQnAPostCascadesAnswers(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	asker := createUser(t, repos, "asker", model.RoleUser)
	answerer := createUser(t, repos, "answerer", model.RoleUser)
	admin := createUser(t, repos, "admin", model.RoleAdmin)
	postID, err := svc.CreatePost(ctx, asker, request.CreatePostRequest{
		Type: "QNA", Title: "问题", Content: "怎么办",
	}, nil)
	require.NoError(t, err)

	answer := &model.Comment{UserID: answerer, Type: model.CommentTypeAnswer, ParentID: postID, Content: "这样解决"}
	require.NoError(t, repos.Comment.Create(answer))
	reply := &model.Comment{UserID: asker, Type: model.CommentTypeReply, ParentID: answer.ID, Content: "试过了不行"}
	require.NoError(t, repos.Comment.Create(reply))

	require.NoError(t, svc.DeletePost(ctx, postID, admin))

	_, err = repos.Comment.FindByID(answer.ID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	_, err = repos.Comment.FindByID(reply.ID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	_, err = repos.PostDetail.GetQnA(postID)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestDeletePostRemovesStoredImages(t *testing.T) {
	repos := memory.NewRepositories()
	store := storage.NewMemoryStorage()
	svc := NewPostService(repos, store, nil)
	ctx := context.Background()

	author := createUser(t, repos, "author", model.RoleUser)
	postID, err := svc.CreatePost(ctx, author, request.CreatePostRequest{
		Type: "FREE", Title: "图帖", Content: "内容",
	}, []io.Reader{pngReader("img")})
	require.NoError(t, err)

	images, err := repos.Image.FindByPostID(postID)
	require.NoError(t, err)
	require.Len(t, images, 1)

	require.NoError(t, svc.DeletePost(ctx, postID, author))
	require.Contains(t, store.DeletedKeys(), images[0].StorageKey)
}

func TestToggleAnswerComplete(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	asker := createUser(t, repos, "asker", model.RoleUser)
	other := createUser(t, repos, "other", model.RoleUser)
	postID, err := svc.CreatePost(ctx, asker, request.CreatePostRequest{
		Type: "QNA", Title: "问题", Content: "怎么办",
	}, nil)
	require.NoError(t, err)

	err = svc.ToggleAnswerComplete(postID, other)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	require.NoError(t, svc.ToggleAnswerComplete(postID, asker))
	qna, err := repos.PostDetail.GetQnA(postID)
	require.NoError(t, err)
	require.True(t, qna.AnswerComplete)

	require.NoError(t, svc.ToggleAnswerComplete(postID, asker))
	qna, err = repos.PostDetail.GetQnA(postID)
	require.NoError(t, err)
	require.False(t, qna.AnswerComplete)
}

func TestCreateAIPlayPostLogsExhaustedQuota(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	// createUser 不设额度，AIRateLimit 为 0
	userID := createUser(t, repos, "drained", model.RoleUser)
	postID, err := svc.CreatePost(ctx, userID, request.CreatePostRequest{
		Type: "AIPLAY", Title: "AI 推荐", Content: "内容",
	}, nil)
	require.NoError(t, err)
	require.NotZero(t, postID)

	require.Equal(t, 1, logs.FilterMessage("AI额度已耗尽，未扣减").Len())
}

func TestListPostsByType(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewPostService(repos, nil, nil)
	ctx := context.Background()

	author := createUser(t, repos, "author", model.RoleUser)
	for i := 0; i < 3; i++ {
		_, err := svc.CreatePost(ctx, author, request.CreatePostRequest{
			Type: "FREE", Title: "标题", Content: "内容",
		}, nil)
		require.NoError(t, err)
	}
	_, err := svc.CreatePost(ctx, author, request.CreatePostRequest{
		Type: "QNA", Title: "问题", Content: "内容",
	}, nil)
	require.NoError(t, err)

	list, err := svc.ListPostsByType("FREE", 1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), list.Total)
	require.Len(t, list.Posts, 2)
}
