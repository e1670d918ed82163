package repository

import (
	"context"

	"gorm.io/gorm"

	"planning-board/backend/internal/model"
)

// BoardRepository 看板数据访问接口
type BoardRepository interface {
	Create(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id string) (*model.Board, error)
	// GetDetail 带全部子记录族的看板详情
	GetDetail(ctx context.Context, id string) (*model.Board, error)
	List(ctx context.Context, offset, limit int) ([]model.Board, int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type boardRepo struct {
	db *gorm.DB
}

func NewBoardRepo(db *gorm.DB) BoardRepository {
	return &boardRepo{db: db}
}

func (r *boardRepo) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepo) GetByID(ctx context.Context, id string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Where("board_id = ?", id).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepo) GetDetail(ctx context.Context, id string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Preload("ShiftLines").
		Preload("FuturePlans").
		Preload("CriticalParts").
		Preload("CategorizedPlans").
		Preload("CustomerPlans").
		Preload("MiscItems").
		Preload("ImportRecords").
		Where("board_id = ?", id).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepo) List(ctx context.Context, offset, limit int) ([]model.Board, int64, error) {
	var boards []model.Board
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Board{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&boards).Error
	return boards, total, err
}

func (r *boardRepo) ListRecent(ctx context.Context, limit int) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&boards).Error
	return boards, err
}

func (r *boardRepo) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).
		Model(board).
		Where("board_id = ?", board.BoardID).
		Updates(map[string]interface{}{
			"title":          board.Title,
			"meeting_time":   board.MeetingTime,
			"reference_date": board.ReferenceDate,
			"next_date":      board.NextDate,
			"following_date": board.FollowingDate,
		}).Error
}

func (r *boardRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", id).
		Delete(&model.Board{}).Error
}

func (r *boardRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Board{}).Count(&total).Error
	return total, err
}
