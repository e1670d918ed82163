package repository

import (
	"context"

	"gorm.io/gorm"

	"planning-board/backend/internal/model"
)

// CriticalPartRepository 关键零件数据访问接口
type CriticalPartRepository interface {
	Create(ctx context.Context, part *model.CriticalPart) error
	GetByID(ctx context.Context, id string) (*model.CriticalPart, error)
	ListByBoard(ctx context.Context, boardID string) ([]model.CriticalPart, error)
	Update(ctx context.Context, part *model.CriticalPart) error
	Delete(ctx context.Context, id string) error
}

// CategorizedPlanRepository 类别别零件计划数据访问接口
type CategorizedPlanRepository interface {
	Create(ctx context.Context, plan *model.CategorizedPartPlan) error
	GetByID(ctx context.Context, id string) (*model.CategorizedPartPlan, error)
	ListByBoard(ctx context.Context, boardID string) ([]model.CategorizedPartPlan, error)
	Update(ctx context.Context, plan *model.CategorizedPartPlan) error
	Delete(ctx context.Context, id string) error
}

// CustomerPlanRepository 客户别零件计划数据访问接口
type CustomerPlanRepository interface {
	Create(ctx context.Context, plan *model.CustomerPartPlan) error
	GetByID(ctx context.Context, id string) (*model.CustomerPartPlan, error)
	ListByBoard(ctx context.Context, boardID string) ([]model.CustomerPartPlan, error)
	Update(ctx context.Context, plan *model.CustomerPartPlan) error
	Delete(ctx context.Context, id string) error
}

// MiscItemRepository 其他信息条目数据访问接口
type MiscItemRepository interface {
	Create(ctx context.Context, item *model.MiscItem) error
	GetByID(ctx context.Context, id string) (*model.MiscItem, error)
	ListByBoard(ctx context.Context, boardID string) ([]model.MiscItem, error)
	Update(ctx context.Context, item *model.MiscItem) error
	Delete(ctx context.Context, id string) error
}

// ── CriticalPart Repository 实现 ──

type criticalPartRepo struct {
	db *gorm.DB
}

func NewCriticalPartRepo(db *gorm.DB) CriticalPartRepository {
	return &criticalPartRepo{db: db}
}

func (r *criticalPartRepo) Create(ctx context.Context, part *model.CriticalPart) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *criticalPartRepo) GetByID(ctx context.Context, id string) (*model.CriticalPart, error) {
	var part model.CriticalPart
	err := r.db.WithContext(ctx).
		Where("critical_part_id = ?", id).
		First(&part).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *criticalPartRepo) ListByBoard(ctx context.Context, boardID string) ([]model.CriticalPart, error) {
	var parts []model.CriticalPart
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&parts).Error
	return parts, err
}

func (r *criticalPartRepo) Update(ctx context.Context, part *model.CriticalPart) error {
	return r.db.WithContext(ctx).
		Model(part).
		Where("critical_part_id = ?", part.CriticalPartID).
		Updates(map[string]interface{}{
			"part_name":      part.PartName,
			"supplier":       part.Supplier,
			"plan_qty":       part.PlanQty,
			"receiving_time": part.ReceivingTime,
			"remarks":        part.Remarks,
		}).Error
}

func (r *criticalPartRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("critical_part_id = ?", id).
		Delete(&model.CriticalPart{}).Error
}

// ── CategorizedPlan Repository 实现 ──

type categorizedPlanRepo struct {
	db *gorm.DB
}

func NewCategorizedPlanRepo(db *gorm.DB) CategorizedPlanRepository {
	return &categorizedPlanRepo{db: db}
}

func (r *categorizedPlanRepo) Create(ctx context.Context, plan *model.CategorizedPartPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *categorizedPlanRepo) GetByID(ctx context.Context, id string) (*model.CategorizedPartPlan, error) {
	var plan model.CategorizedPartPlan
	err := r.db.WithContext(ctx).
		Where("categorized_plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *categorizedPlanRepo) ListByBoard(ctx context.Context, boardID string) ([]model.CategorizedPartPlan, error) {
	var plans []model.CategorizedPartPlan
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("plan_type ASC, created_at ASC").
		Find(&plans).Error
	return plans, err
}

func (r *categorizedPlanRepo) Update(ctx context.Context, plan *model.CategorizedPartPlan) error {
	return r.db.WithContext(ctx).
		Model(plan).
		Where("categorized_plan_id = ?", plan.CategorizedPlanID).
		Updates(map[string]interface{}{
			"plan_type":   plan.PlanType,
			"part_name":   plan.PartName,
			"part_number": plan.PartNumber,
			"plan_qty":    plan.PlanQty,
			"remarks":     plan.Remarks,
		}).Error
}

func (r *categorizedPlanRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("categorized_plan_id = ?", id).
		Delete(&model.CategorizedPartPlan{}).Error
}

// ── CustomerPlan Repository 实现 ──

type customerPlanRepo struct {
	db *gorm.DB
}

func NewCustomerPlanRepo(db *gorm.DB) CustomerPlanRepository {
	return &customerPlanRepo{db: db}
}

func (r *customerPlanRepo) Create(ctx context.Context, plan *model.CustomerPartPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *customerPlanRepo) GetByID(ctx context.Context, id string) (*model.CustomerPartPlan, error) {
	var plan model.CustomerPartPlan
	err := r.db.WithContext(ctx).
		Where("customer_plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *customerPlanRepo) ListByBoard(ctx context.Context, boardID string) ([]model.CustomerPartPlan, error) {
	var plans []model.CustomerPartPlan
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("customer ASC, created_at ASC").
		Find(&plans).Error
	return plans, err
}

func (r *customerPlanRepo) Update(ctx context.Context, plan *model.CustomerPartPlan) error {
	return r.db.WithContext(ctx).
		Model(plan).
		Where("customer_plan_id = ?", plan.CustomerPlanID).
		Updates(map[string]interface{}{
			"customer":    plan.Customer,
			"part_name":   plan.PartName,
			"part_number": plan.PartNumber,
			"plan_qty":    plan.PlanQty,
			"remarks":     plan.Remarks,
		}).Error
}

func (r *customerPlanRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("customer_plan_id = ?", id).
		Delete(&model.CustomerPartPlan{}).Error
}

// ── MiscItem Repository 实现 ──

type miscItemRepo struct {
	db *gorm.DB
}

func NewMiscItemRepo(db *gorm.DB) MiscItemRepository {
	return &miscItemRepo{db: db}
}

func (r *miscItemRepo) Create(ctx context.Context, item *model.MiscItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *miscItemRepo) GetByID(ctx context.Context, id string) (*model.MiscItem, error) {
	var item model.MiscItem
	err := r.db.WithContext(ctx).
		Where("misc_item_id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *miscItemRepo) ListByBoard(ctx context.Context, boardID string) ([]model.MiscItem, error) {
	var items []model.MiscItem
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("target_date ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *miscItemRepo) Update(ctx context.Context, item *model.MiscItem) error {
	return r.db.WithContext(ctx).
		Model(item).
		Where("misc_item_id = ?", item.MiscItemID).
		Updates(map[string]interface{}{
			"part_name":   item.PartName,
			"qty":         item.Qty,
			"target_date": item.TargetDate,
			"remarks":     item.Remarks,
		}).Error
}

func (r *miscItemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("misc_item_id = ?", id).
		Delete(&model.MiscItem{}).Error
}
