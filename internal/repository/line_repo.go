package repository

import (
	"context"

	"gorm.io/gorm"

	"planning-board/backend/internal/model"
)

// ShiftLineRepository 产线班次记录数据访问接口
type ShiftLineRepository interface {
	Create(ctx context.Context, line *model.ShiftLine) error
	GetByID(ctx context.Context, id string) (*model.ShiftLine, error)
	ListByBoard(ctx context.Context, boardID string) ([]model.ShiftLine, error)
	Update(ctx context.Context, line *model.ShiftLine) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// FuturePlanRepository 前瞻计划数据访问接口
type FuturePlanRepository interface {
	Create(ctx context.Context, plan *model.FuturePlan) error
	GetByID(ctx context.Context, id string) (*model.FuturePlan, error)
	ListByBoard(ctx context.Context, boardID string) ([]model.FuturePlan, error)
	Update(ctx context.Context, plan *model.FuturePlan) error
	Delete(ctx context.Context, id string) error
}

// ── ShiftLine Repository 实现 ──

type shiftLineRepo struct {
	db *gorm.DB
}

func NewShiftLineRepo(db *gorm.DB) ShiftLineRepository {
	return &shiftLineRepo{db: db}
}

func (r *shiftLineRepo) Create(ctx context.Context, line *model.ShiftLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *shiftLineRepo) GetByID(ctx context.Context, id string) (*model.ShiftLine, error) {
	var line model.ShiftLine
	err := r.db.WithContext(ctx).
		Where("shift_line_id = ?", id).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *shiftLineRepo) ListByBoard(ctx context.Context, boardID string) ([]model.ShiftLine, error) {
	var lines []model.ShiftLine
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *shiftLineRepo) Update(ctx context.Context, line *model.ShiftLine) error {
	return r.db.WithContext(ctx).
		Model(line).
		Where("shift_line_id = ?", line.ShiftLineID).
		Updates(map[string]interface{}{
			"line_label":          line.LineLabel,
			"a_shift_model":       line.AShiftModel,
			"a_shift_plan":        line.AShiftPlan,
			"a_shift_actual":      line.AShiftActual,
			"a_shift_plan_change": line.AShiftPlanChange,
			"a_shift_time":        line.AShiftTime,
			"a_shift_remarks":     line.AShiftRemarks,
			"b_shift_model":       line.BShiftModel,
			"b_shift_plan":        line.BShiftPlan,
			"b_shift_actual":      line.BShiftActual,
			"b_shift_plan_change": line.BShiftPlanChange,
			"b_shift_time":        line.BShiftTime,
			"b_shift_remarks":     line.BShiftRemarks,
			"c_shift_model":       line.CShiftModel,
			"c_shift_plan":        line.CShiftPlan,
			"c_shift_actual":      line.CShiftActual,
			"c_shift_plan_change": line.CShiftPlanChange,
			"c_shift_remarks":     line.CShiftRemarks,
		}).Error
}

func (r *shiftLineRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("shift_line_id = ?", id).
		Delete(&model.ShiftLine{}).Error
}

func (r *shiftLineRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.ShiftLine{}).Count(&total).Error
	return total, err
}

// ── FuturePlan Repository 实现 ──

type futurePlanRepo struct {
	db *gorm.DB
}

func NewFuturePlanRepo(db *gorm.DB) FuturePlanRepository {
	return &futurePlanRepo{db: db}
}

func (r *futurePlanRepo) Create(ctx context.Context, plan *model.FuturePlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *futurePlanRepo) GetByID(ctx context.Context, id string) (*model.FuturePlan, error) {
	var plan model.FuturePlan
	err := r.db.WithContext(ctx).
		Where("future_plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *futurePlanRepo) ListByBoard(ctx context.Context, boardID string) ([]model.FuturePlan, error) {
	var plans []model.FuturePlan
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("horizon ASC, created_at ASC").
		Find(&plans).Error
	return plans, err
}

func (r *futurePlanRepo) Update(ctx context.Context, plan *model.FuturePlan) error {
	return r.db.WithContext(ctx).
		Model(plan).
		Where("future_plan_id = ?", plan.FuturePlanID).
		Updates(map[string]interface{}{
			"horizon": plan.Horizon,
			"model":   plan.Model,
			"a_shift": plan.AShift,
			"b_shift": plan.BShift,
			"c_shift": plan.CShift,
			"remarks": plan.Remarks,
		}).Error
}

func (r *futurePlanRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("future_plan_id = ?", id).
		Delete(&model.FuturePlan{}).Error
}
