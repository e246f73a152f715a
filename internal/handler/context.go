package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"outspecs_server/internal/infrastructure/middleware"
	"outspecs_server/pkg/errorx"
)

// currentUserID 读取认证中间件写入的当前用户 id
func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.CtxUserIDKey)
}

// parseUintParam 解析路径参数为 uint
func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errorx.Newf(errorx.CodeInvalidParam, "路径参数 %s 不合法", name)
	}
	return uint(value), nil
}

// parsePageQuery 解析分页查询参数，缺省为第 1 页每页 10 条
func parsePageQuery(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return
}
