// Package storage 提供对象存储的封装
// 帖子图片和用户头像的文件本体都存放在对象存储，数据库只记录 url 和 key
package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"outspecs_server/pkg/errorx"
)

// ObjectStorage 对象存储接口
// 抽象上传和删除操作，便于测试时替换为内存实现
type ObjectStorage interface {
	// Upload 上传文件，返回访问 url 和存储 key
	// key 用于后续删除文件
	Upload(ctx context.Context, file io.Reader) (url string, key string, err error)
	// Delete 根据存储 key 删除文件
	Delete(ctx context.Context, key string) error
}

// sniffLen 文件头嗅探长度，http.DetectContentType 最多消费 512 字节
const sniffLen = 512

// ValidateImage 嗅探文件头，只放行图片格式
// 返回把已嗅探字节接回原始流的 Reader，非图片返回 CodeInvalidParam
func ValidateImage(file io.Reader) (io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errorx.Wrap(err, errorx.CodeInvalidParam, "图片读取失败")
	}
	head = head[:n]
	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "不支持的文件类型 %s", contentType)
	}
	return io.MultiReader(bytes.NewReader(head), file), nil
}
