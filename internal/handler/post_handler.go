// 本文件处理帖子相关的 API 请求
package handler

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
	"outspecs_server/pkg/constants"
	"outspecs_server/pkg/errorx"
)

// PostHandler 帖子请求处理器
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler 创建帖子处理器实例
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// bindPostForm 解析发帖请求
// multipart 表单时 data 字段携带 JSON 参数，images 字段携带图片
// 纯 JSON 请求时图片为空
func bindPostForm(c *gin.Context, req any) ([]io.Reader, []io.Closer, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(req); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	}

	data := c.PostForm("data")
	if data == "" {
		return nil, nil, errorx.New(errorx.CodeInvalidParam, "缺少 data 字段")
	}
	if err := json.Unmarshal([]byte(data), req); err != nil {
		return nil, nil, errorx.Wrap(err, errorx.CodeInvalidParam, "data 字段不是合法 JSON")
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, nil, err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, errorx.Wrap(err, errorx.CodeInvalidParam, "表单解析失败")
	}
	var (
		files   []io.Reader
		closers []io.Closer
	)
	for _, fileHeader := range form.File["images"] {
		if fileHeader.Size > constants.IMAGE_MAX_SIZE {
			closeAll(closers)
			return nil, nil, errorx.New(errorx.CodeInvalidParam, "图片大小超出限制")
		}
		file, err := fileHeader.Open()
		if err != nil {
			closeAll(closers)
			return nil, nil, errorx.Wrap(err, errorx.CodeInvalidParam, "图片读取失败")
		}
		files = append(files, file)
		closers = append(closers, file)
	}
	return files, closers, nil
}

func closeAll(closers []io.Closer) {
	for _, closer := range closers {
		_ = closer.Close()
	}
}

// CreatePost 发帖
// POST /post
// multipart 表单: data=request.CreatePostRequest JSON, images=图片文件
// 响应: { post_id: uint }
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req request.CreatePostRequest
	files, closers, err := bindPostForm(c, &req)
	if err != nil {
		HandleParamError(c, err)
		return
	}
	defer closeAll(closers)

	postID, err := h.postSvc.CreatePost(c.Request.Context(), currentUserID(c), req, files)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"post_id": postID})
}

// UpdatePost 修改帖子，仅作者可操作
// PUT /post/:id
// multipart 表单同 CreatePost，新图片会替换旧图片
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdatePostRequest
	files, closers, err := bindPostForm(c, &req)
	if err != nil {
		HandleParamError(c, err)
		return
	}
	defer closeAll(closers)

	if err = h.postSvc.UpdatePost(c.Request.Context(), postID, currentUserID(c), req, files); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeletePost 删除帖子
// DELETE /post/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.postSvc.DeletePost(c.Request.Context(), postID, currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetPost 查看帖子详情，浏览量加一
// GET /post/:id
// 响应: respond.PostRespond
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.postSvc.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListPosts 按类型分页查询帖子
// GET /post?type=QNA&page=1&page_size=10
// 响应: respond.PostListRespond
func (h *PostHandler) ListPosts(c *gin.Context) {
	postType := c.Query("type")
	page, pageSize := parsePageQuery(c)
	data, err := h.postSvc.ListPostsByType(postType, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListMyPosts 查看自己发布的帖子
// GET /user/posts
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	data, err := h.postSvc.ListPostsByUser(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ToggleAnswerComplete 问答帖切换采纳完成状态
// PUT /post/:id/answer-complete
func (h *PostHandler) ToggleAnswerComplete(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.postSvc.ToggleAnswerComplete(postID, currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
