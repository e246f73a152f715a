// 本文件实现基于 Cloudinary 的对象存储
package storage

import (
	"context"
	"io"

	"outspecs_server/internal/config"
	"outspecs_server/pkg/errorx"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// cloudinaryStorage Cloudinary 对象存储实现
type cloudinaryStorage struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage 根据配置创建 Cloudinary 存储实例
func NewCloudinaryStorage(cfg *config.StorageConfig) (ObjectStorage, error) {
	client, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "初始化对象存储")
	}
	return &cloudinaryStorage{client: client, folder: cfg.Folder}, nil
}

// Upload 上传文件，public id 使用随机 uuid，避免文件名冲突
func (s *cloudinaryStorage) Upload(ctx context.Context, file io.Reader) (string, string, error) {
	publicID := uuid.NewString()
	result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   s.folder,
	})
	if err != nil {
		return "", "", errorx.Wrap(err, errorx.CodeServerBusy, "上传文件")
	}
	return result.SecureURL, result.PublicID, nil
}

// Delete 根据存储 key 删除文件
func (s *cloudinaryStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: key})
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "删除文件 key=%s", key)
	}
	return nil
}
