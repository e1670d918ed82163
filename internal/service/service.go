package service

import (
	"go.uber.org/zap"

	"planning-board/backend/config"
	"planning-board/backend/internal/repository"
	"planning-board/backend/pkg/redis"
)

// Service 所有业务服务的聚合入口
type Service struct {
	Board  *BoardService
	Record *RecordService
	Import *ImportService
}

// NewService 创建 Service 聚合
// cache 允许为 nil：Redis 不可用时各服务自行降级为直查数据库
func NewService(repo *repository.Repository, cache *redis.Client, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		Board:  NewBoardService(repo, cache, logger),
		Record: NewRecordService(repo, logger),
		Import: NewImportService(repo, cache, &cfg.Upload, logger),
	}
}
