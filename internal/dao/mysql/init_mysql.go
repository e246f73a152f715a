// Package mysql 负责数据库连接初始化和表结构迁移
package mysql

import (
	"fmt"

	"outspecs_server/internal/config"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 初始化 MySQL 连接并完成表结构迁移
// 返回 Repository 聚合供 Service 层使用
func Init(cfg *config.MysqlConfig) (*repository.Repositories, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DatabaseName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	zap.L().Info("mysql connected", zap.String("host", cfg.Host), zap.Int("port", cfg.Port))
	return repository.NewRepositories(db), nil
}

// autoMigrate 迁移全部实体表
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Post{},
		&model.PostTeamInfo{},
		&model.PostQnA{},
		&model.PostJob{},
		&model.PostHangout{},
		&model.PostTag{},
		&model.Image{},
		&model.Comment{},
		&model.Participation{},
		&model.Reaction{},
		&model.Notification{},
		&model.ChatRoom{},
		&model.ChatMessage{},
	)
}
