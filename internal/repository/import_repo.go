package repository

import (
	"context"

	"gorm.io/gorm"

	"planning-board/backend/internal/model"
)

// ImportRecordRepository 导入审计记录数据访问接口
// 审计表仅追加，不提供删除
type ImportRecordRepository interface {
	Create(ctx context.Context, record *model.ImportRecord) error
	GetByID(ctx context.Context, id string) (*model.ImportRecord, error)
	List(ctx context.Context, offset, limit int) ([]model.ImportRecord, int64, error)
	MarkProcessed(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type importRecordRepo struct {
	db *gorm.DB
}

func NewImportRecordRepo(db *gorm.DB) ImportRecordRepository {
	return &importRecordRepo{db: db}
}

func (r *importRecordRepo) Create(ctx context.Context, record *model.ImportRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *importRecordRepo) GetByID(ctx context.Context, id string) (*model.ImportRecord, error) {
	var record model.ImportRecord
	err := r.db.WithContext(ctx).
		Where("import_record_id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *importRecordRepo) List(ctx context.Context, offset, limit int) ([]model.ImportRecord, int64, error) {
	var records []model.ImportRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ImportRecord{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("uploaded_at DESC").
		Find(&records).Error
	return records, total, err
}

func (r *importRecordRepo) MarkProcessed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.ImportRecord{}).
		Where("import_record_id = ?", id).
		Update("processed", true).Error
}

func (r *importRecordRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.ImportRecord{}).Count(&total).Error
	return total, err
}
