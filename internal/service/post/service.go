// Package post 实现帖子的业务逻辑
// 帖子主体加类型明细的组合结构，图片存对象存储，浏览量走 Redis 计数
package post

import (
	"context"
	"io"
	"strings"

	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/infrastructure/storage"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"

	"go.uber.org/zap"
)

// postService 帖子业务逻辑实现
type postService struct {
	repos       *repository.Repositories
	storage     storage.ObjectStorage
	viewCounter ViewCounter
	handlers    []DetailHandler
}

// NewPostService 构造函数
// viewCounter 传 nil 时浏览量直接写库
func NewPostService(repos *repository.Repositories, store storage.ObjectStorage, viewCounter ViewCounter) *postService {
	return &postService{
		repos:       repos,
		storage:     store,
		viewCounter: viewCounter,
		handlers:    defaultDetailHandlers(),
	}
}

// uploadImages 上传全部图片，逐张校验文件头为图片格式
// 任何一张失败时补偿删除已上传的对象，保证不残留孤儿文件
func (s *postService) uploadImages(ctx context.Context, files []io.Reader) ([]model.Image, error) {
	images := make([]model.Image, 0, len(files))
	for _, file := range files {
		checked, err := storage.ValidateImage(file)
		if err != nil {
			s.deleteObjects(ctx, images)
			return nil, err
		}
		url, key, err := s.storage.Upload(ctx, checked)
		if err != nil {
			s.deleteObjects(ctx, images)
			return nil, err
		}
		images = append(images, model.Image{ImageURL: url, StorageKey: key})
	}
	return images, nil
}

// deleteObjects 尽力删除对象存储中的文件，失败只记录日志
func (s *postService) deleteObjects(ctx context.Context, images []model.Image) {
	for _, image := range images {
		if err := s.storage.Delete(ctx, image.StorageKey); err != nil {
			zap.L().Warn("删除存储对象失败", zap.String("key", image.StorageKey), zap.Error(err))
		}
	}
}

// applyDetails 对命中的明细 Handler 逐个调用 Apply
func (s *postService) applyDetails(repos *repository.Repositories, post *model.Post, detail *request.PostDetail) error {
	for _, handler := range s.handlers {
		if !handler.Supports(post.Type) {
			continue
		}
		if err := handler.Apply(repos, post, detail); err != nil {
			return err
		}
	}
	return nil
}

// clearAllDetails 清除帖子全部明细数据，与当前类型无关
// 帖子改类型时调用，保证不留旧类型的孤儿明细行
func (s *postService) clearAllDetails(repos *repository.Repositories, postID uint) error {
	for _, handler := range s.handlers {
		if err := handler.Clear(repos, postID); err != nil {
			return err
		}
	}
	return nil
}

// CreatePost 创建帖子
// 图片先上传对象存储，帖子主体和明细在一个事务内落库，
// 落库失败时补偿删除已上传的对象
func (s *postService) CreatePost(ctx context.Context, userID uint, req request.CreatePostRequest, files []io.Reader) (uint, error) {
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return 0, err
	}

	postType := model.PostType(req.Type)
	if !postType.IsValid() {
		return 0, errorx.Newf(errorx.CodeInvalidParam, "未知帖子类型 %s", req.Type)
	}
	if postType == model.PostTypeRecruit && user.Role != model.RoleEntUser {
		return 0, errorx.New(errorx.CodeForbidden, "只有企业用户可以发布招聘帖")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return 0, errorx.New(errorx.CodeInvalidParam, "标题和正文不能为空")
	}

	images, err := s.uploadImages(ctx, files)
	if err != nil {
		return 0, err
	}

	post := &model.Post{
		UserID:  userID,
		Type:    postType,
		Title:   req.Title,
		Content: req.Content,
	}
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Post.Create(post); err != nil {
			return err
		}
		for i := range images {
			images[i].PostID = post.ID
		}
		if err := txRepos.Image.CreateBatch(images); err != nil {
			return err
		}
		return s.applyDetails(txRepos, post, &req.Detail)
	})
	if err != nil {
		s.deleteObjects(ctx, images)
		return 0, err
	}

	// AI 推荐帖消耗一次 AI 额度，扣减失败不影响发帖结果
	if postType == model.PostTypeAIPlay {
		ok, err := s.repos.User.DecrementAIQuota(userID)
		if err != nil {
			zap.L().Warn("扣减AI额度失败", zap.Uint("user_id", userID), zap.Error(err))
		} else if !ok {
			zap.L().Warn("AI额度已耗尽，未扣减", zap.Uint("user_id", userID))
		}
	}
	return post.ID, nil
}

// UpdatePost 更新帖子，仅作者本人可操作
// 允许改类型：先清除全部旧明细再按新类型写入，
// 传入新图片时替换旧图片（旧对象落库成功后删除）
func (s *postService) UpdatePost(ctx context.Context, postID, userID uint, req request.UpdatePostRequest, files []io.Reader) error {
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return errorx.New(errorx.CodeForbidden, "只有作者可以修改帖子")
	}

	postType := model.PostType(req.Type)
	if !postType.IsValid() {
		return errorx.Newf(errorx.CodeInvalidParam, "未知帖子类型 %s", req.Type)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return errorx.New(errorx.CodeInvalidParam, "标题和正文不能为空")
	}

	var oldImages []model.Image
	if len(files) > 0 {
		oldImages, err = s.repos.Image.FindByPostID(postID)
		if err != nil {
			return err
		}
	}

	newImages, err := s.uploadImages(ctx, files)
	if err != nil {
		return err
	}

	post.Type = postType
	post.Title = req.Title
	post.Content = req.Content
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Post.Update(post); err != nil {
			return err
		}
		if err := s.clearAllDetails(txRepos, postID); err != nil {
			return err
		}
		if err := s.applyDetails(txRepos, post, &req.Detail); err != nil {
			return err
		}
		if len(newImages) > 0 {
			if err := txRepos.Image.DeleteByPostID(postID); err != nil {
				return err
			}
			for i := range newImages {
				newImages[i].PostID = postID
			}
			if err := txRepos.Image.CreateBatch(newImages); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.deleteObjects(ctx, newImages)
		return err
	}

	s.deleteObjects(ctx, oldImages)
	return nil
}

// DeletePost 删除帖子
// 问答帖只有管理员可删，其余类型作者或管理员可删；
// 级联顺序：评论树 -> 明细/标签/图片/帖子（同一事务）-> 存储对象（尽力）
func (s *postService) DeletePost(ctx context.Context, postID, userID uint) error {
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		return err
	}
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return err
	}

	isAdmin := user.Role == model.RoleAdmin
	if post.Type == model.PostTypeQnA {
		if !isAdmin {
			return errorx.New(errorx.CodeForbidden, "问答帖只能由管理员删除")
		}
	} else if post.UserID != userID && !isAdmin {
		return errorx.New(errorx.CodeForbidden, "只有作者或管理员可以删除帖子")
	}

	images, err := s.repos.Image.FindByPostID(postID)
	if err != nil {
		return err
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := s.deleteCommentTree(txRepos, post); err != nil {
			return err
		}
		if err := s.clearAllDetails(txRepos, postID); err != nil {
			return err
		}
		if err := txRepos.Image.DeleteByPostID(postID); err != nil {
			return err
		}
		return txRepos.Post.Delete(postID)
	})
	if err != nil {
		return err
	}

	s.deleteObjects(ctx, images)
	return nil
}

// deleteCommentTree 删除帖子下的评论树
// 问答帖删回答树，其余类型删评论树，回复一并删除
func (s *postService) deleteCommentTree(repos *repository.Repositories, post *model.Post) error {
	rootType := model.CommentTypeComment
	if post.Type == model.PostTypeQnA {
		rootType = model.CommentTypeAnswer
	}
	roots, err := repos.Comment.FindByTypeAndParent(rootType, post.ID)
	if err != nil {
		return err
	}
	for _, root := range roots {
		replies, err := repos.Comment.FindByTypeAndParent(model.CommentTypeReply, root.ID)
		if err != nil {
			return err
		}
		for _, reply := range replies {
			if err := repos.Comment.Delete(reply.ID); err != nil {
				return err
			}
		}
		if err := repos.Comment.Delete(root.ID); err != nil {
			return err
		}
	}
	return nil
}

// ToggleAnswerComplete 切换问答帖的已解决标记，仅提问者本人可操作
// 没有问答明细行时静默跳过
func (s *postService) ToggleAnswerComplete(postID, userID uint) error {
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		return err
	}
	if post.Type != model.PostTypeQnA {
		return errorx.New(errorx.CodeInvalidParam, "只有问答帖可以标记已解决")
	}
	if post.UserID != userID {
		return errorx.New(errorx.CodeForbidden, "只有提问者可以标记已解决")
	}

	qna, err := s.repos.PostDetail.GetQnA(postID)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil
		}
		return err
	}
	qna.AnswerComplete = !qna.AnswerComplete
	return s.repos.PostDetail.SaveQnA(qna)
}

// GetPostByID 获取帖子详情，附带明细、图片、标签和点赞/收藏计数
// 每次查看浏览量加一
func (s *postService) GetPostByID(ctx context.Context, postID uint) (*respond.PostRespond, error) {
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		return nil, err
	}

	viewCount := s.bumpViewCount(ctx, post)

	result := &respond.PostRespond{
		ID:        post.ID,
		UserID:    post.UserID,
		Type:      string(post.Type),
		Title:     post.Title,
		Content:   post.Content,
		ViewCount: viewCount,
		CreatedAt: post.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: post.UpdatedAt.Format("2006-01-02 15:04:05"),
		Images:    []string{},
	}

	if profile, err := s.repos.Profile.FindByUserID(post.UserID); err == nil {
		result.Nickname = profile.Nickname
	}

	images, err := s.repos.Image.FindByPostID(postID)
	if err != nil {
		return nil, err
	}
	for _, image := range images {
		result.Images = append(result.Images, image.ImageURL)
	}

	if result.LikeCount, err = s.repos.Reaction.Count(model.TargetPost, postID, model.ReactionLike); err != nil {
		return nil, err
	}
	if result.BookmarkCount, err = s.repos.Reaction.Count(model.TargetPost, postID, model.ReactionBookmark); err != nil {
		return nil, err
	}

	if err := s.fillDetail(post, &result.Detail); err != nil {
		return nil, err
	}
	return result, nil
}

// bumpViewCount 浏览量加一
// 配置了计数器时走 Redis 累积，增量定期回写；否则直接写库
func (s *postService) bumpViewCount(ctx context.Context, post *model.Post) int64 {
	if s.viewCounter == nil {
		if err := s.repos.Post.AddViewCount(post.ID, 1); err != nil {
			zap.L().Warn("更新浏览量失败", zap.Uint("post_id", post.ID), zap.Error(err))
			return post.ViewCount
		}
		return post.ViewCount + 1
	}

	pending, err := s.viewCounter.Incr(ctx, post.ID)
	if err != nil {
		zap.L().Warn("浏览量计数失败", zap.Uint("post_id", post.ID), zap.Error(err))
		return post.ViewCount
	}
	// 累积到一定量再回写数据库，减少热点写
	if pending >= viewFlushThreshold {
		if taken, err := s.viewCounter.Take(ctx, post.ID); err == nil && taken > 0 {
			if err := s.repos.Post.AddViewCount(post.ID, taken); err != nil {
				zap.L().Warn("回写浏览量失败", zap.Uint("post_id", post.ID), zap.Error(err))
			}
		}
	}
	return post.ViewCount + pending
}

// fillDetail 按帖子类型填充明细字段
func (s *postService) fillDetail(post *model.Post, detail *respond.PostDetailRespond) error {
	switch post.Type {
	case model.PostTypeQnA:
		qna, err := s.repos.PostDetail.GetQnA(post.ID)
		if err == nil {
			detail.AnswerComplete = qna.AnswerComplete
		} else if errorx.GetCode(err) != errorx.CodeNotFound {
			return err
		}
		return s.fillTags(post.ID, detail)
	case model.PostTypeFree:
		return s.fillTags(post.ID, detail)
	case model.PostTypeTeam:
		info, err := s.repos.PostDetail.GetTeamInfo(post.ID)
		if err == nil {
			detail.Status = info.Status
			detail.Capacity = info.Capacity
		} else if errorx.GetCode(err) != errorx.CodeNotFound {
			return err
		}
	case model.PostTypeRecruit:
		job, err := s.repos.PostDetail.GetJob(post.ID)
		if err == nil {
			detail.TechStack = job.TechStack
			detail.CareerYears = job.CareerYears
		} else if errorx.GetCode(err) != errorx.CodeNotFound {
			return err
		}
	case model.PostTypePlay, model.PostTypeAIPlay:
		hangout, err := s.repos.PostDetail.GetHangout(post.ID)
		if err == nil {
			detail.PlaceName = hangout.PlaceName
		} else if errorx.GetCode(err) != errorx.CodeNotFound {
			return err
		}
	}
	return nil
}

// fillTags 填充帖子标签
func (s *postService) fillTags(postID uint, detail *respond.PostDetailRespond) error {
	tags, err := s.repos.PostDetail.GetTags(postID)
	if err != nil {
		return err
	}
	detail.Tags = make([]string, 0, len(tags))
	for _, tag := range tags {
		detail.Tags = append(detail.Tags, tag.Tag)
	}
	return nil
}

// ListPostsByType 按类型分页查询帖子
func (s *postService) ListPostsByType(postTypeStr string, page, pageSize int) (*respond.PostListRespond, error) {
	postType := model.PostType(postTypeStr)
	if !postType.IsValid() {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "未知帖子类型 %s", postTypeStr)
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	posts, total, err := s.repos.Post.ListByType(postType, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &respond.PostListRespond{Posts: toSummaries(posts), Total: total}, nil
}

// ListPostsByUser 查询用户发布的全部帖子
func (s *postService) ListPostsByUser(userID uint) ([]respond.PostSummaryRespond, error) {
	posts, err := s.repos.Post.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toSummaries(posts), nil
}

func toSummaries(posts []model.Post) []respond.PostSummaryRespond {
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
	return summaries
}
