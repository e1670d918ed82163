package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"planning-board/backend/internal/dto"
	"planning-board/backend/internal/model"
	"planning-board/backend/internal/repository"
)

// ── 子记录服务错误 ──
var (
	ErrRecordNotFound = errors.New("记录不存在")
)

// RecordService 看板子记录服务
// 六个记录族（产线班次/前瞻计划/关键零件/类别别/客户别/其他信息）
// 的手工增删改走这里；导入路径的批量写入走 SheetExtractor。
type RecordService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecordService 创建子记录服务
func NewRecordService(repo *repository.Repository, logger *zap.Logger) *RecordService {
	return &RecordService{repo: repo, logger: logger}
}

// ensureBoard 创建子记录前校验归属看板存在
func (s *RecordService) ensureBoard(ctx context.Context, boardID string) error {
	_, err := s.repo.Board.GetByID(ctx, boardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBoardNotFound
	}
	if err != nil {
		return fmt.Errorf("查询看板失败: %w", err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// ── 产线三班次 ──

func (s *RecordService) CreateShiftLine(ctx context.Context, req *dto.CreateShiftLineRequest) (*model.ShiftLine, error) {
	if err := s.ensureBoard(ctx, req.BoardID); err != nil {
		return nil, err
	}
	line := &model.ShiftLine{BoardID: req.BoardID}
	applyShiftLine(line, req.LineLabel, req.AShift, req.BShift, req.CShift)
	if err := s.repo.ShiftLine.Create(ctx, line); err != nil {
		return nil, fmt.Errorf("创建产线记录失败: %w", err)
	}
	return line, nil
}

func (s *RecordService) UpdateShiftLine(ctx context.Context, id string, req *dto.UpdateShiftLineRequest) (*model.ShiftLine, error) {
	line, err := s.repo.ShiftLine.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	applyShiftLine(line, req.LineLabel, req.AShift, req.BShift, req.CShift)
	if err := s.repo.ShiftLine.Update(ctx, line); err != nil {
		return nil, fmt.Errorf("更新产线记录失败: %w", err)
	}
	return line, nil
}

func (s *RecordService) DeleteShiftLine(ctx context.Context, id string) error {
	if _, err := s.repo.ShiftLine.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.ShiftLine.Delete(ctx, id)
}

// applyShiftLine DTO → 模型字段映射（C 班时间列忽略）
func applyShiftLine(line *model.ShiftLine, label string, a, b, c dto.ShiftSlotPayload) {
	line.LineLabel = label

	line.AShiftModel = a.Model
	line.AShiftPlan = a.Plan
	line.AShiftActual = a.Actual
	line.AShiftPlanChange = a.PlanChange
	line.AShiftTime = a.Time
	line.AShiftRemarks = a.Remarks

	line.BShiftModel = b.Model
	line.BShiftPlan = b.Plan
	line.BShiftActual = b.Actual
	line.BShiftPlanChange = b.PlanChange
	line.BShiftTime = b.Time
	line.BShiftRemarks = b.Remarks

	line.CShiftModel = c.Model
	line.CShiftPlan = c.Plan
	line.CShiftActual = c.Actual
	line.CShiftPlanChange = c.PlanChange
	line.CShiftRemarks = c.Remarks
}

// ── 前瞻计划 ──

func (s *RecordService) CreateFuturePlan(ctx context.Context, req *dto.CreateFuturePlanRequest) (*model.FuturePlan, error) {
	if err := s.ensureBoard(ctx, req.BoardID); err != nil {
		return nil, err
	}
	plan := &model.FuturePlan{
		BoardID: req.BoardID,
		Horizon: req.Horizon,
		Model:   req.Model,
		AShift:  req.AShift,
		BShift:  req.BShift,
		CShift:  req.CShift,
		Remarks: req.Remarks,
	}
	if err := s.repo.FuturePlan.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("创建前瞻计划失败: %w", err)
	}
	return plan, nil
}

func (s *RecordService) UpdateFuturePlan(ctx context.Context, id string, req *dto.UpdateFuturePlanRequest) (*model.FuturePlan, error) {
	plan, err := s.repo.FuturePlan.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	plan.Horizon = req.Horizon
	plan.Model = req.Model
	plan.AShift = req.AShift
	plan.BShift = req.BShift
	plan.CShift = req.CShift
	plan.Remarks = req.Remarks
	if err := s.repo.FuturePlan.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("更新前瞻计划失败: %w", err)
	}
	return plan, nil
}

func (s *RecordService) DeleteFuturePlan(ctx context.Context, id string) error {
	if _, err := s.repo.FuturePlan.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.FuturePlan.Delete(ctx, id)
}

// ── 关键零件 ──

func (s *RecordService) CreateCriticalPart(ctx context.Context, req *dto.CreateCriticalPartRequest) (*model.CriticalPart, error) {
	if err := s.ensureBoard(ctx, req.BoardID); err != nil {
		return nil, err
	}
	receiving, err := parseReceivingTime(req.ReceivingTime)
	if err != nil {
		return nil, err
	}
	part := &model.CriticalPart{
		BoardID:       req.BoardID,
		PartName:      req.PartName,
		Supplier:      req.Supplier,
		PlanQty:       req.PlanQty,
		ReceivingTime: receiving,
		Remarks:       req.Remarks,
	}
	if err := s.repo.CriticalPart.Create(ctx, part); err != nil {
		return nil, fmt.Errorf("创建关键零件记录失败: %w", err)
	}
	return part, nil
}

func (s *RecordService) UpdateCriticalPart(ctx context.Context, id string, req *dto.UpdateCriticalPartRequest) (*model.CriticalPart, error) {
	part, err := s.repo.CriticalPart.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	receiving, err := parseReceivingTime(req.ReceivingTime)
	if err != nil {
		return nil, err
	}
	part.PartName = req.PartName
	part.Supplier = req.Supplier
	part.PlanQty = req.PlanQty
	part.ReceivingTime = receiving
	part.Remarks = req.Remarks
	if err := s.repo.CriticalPart.Update(ctx, part); err != nil {
		return nil, fmt.Errorf("更新关键零件记录失败: %w", err)
	}
	return part, nil
}

func (s *RecordService) DeleteCriticalPart(ctx context.Context, id string) error {
	if _, err := s.repo.CriticalPart.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.CriticalPart.Delete(ctx, id)
}

// parseReceivingTime 到货时间走大屏显示格式（日/月/年 时:分，工厂时区）
func parseReceivingTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DisplayDateTimeLayout, *s, plantLocation())
	if err != nil {
		return nil, ErrBadDate
	}
	return &t, nil
}

// ── 类别别零件计划 ──

func (s *RecordService) CreateCategorizedPlan(ctx context.Context, req *dto.CreateCategorizedPlanRequest) (*model.CategorizedPartPlan, error) {
	if err := s.ensureBoard(ctx, req.BoardID); err != nil {
		return nil, err
	}
	plan := &model.CategorizedPartPlan{
		BoardID:    req.BoardID,
		PlanType:   req.PlanType,
		PartName:   req.PartName,
		PartNumber: req.PartNumber,
		PlanQty:    req.PlanQty,
		Remarks:    req.Remarks,
	}
	if err := s.repo.CategorizedPlan.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("创建类别别计划失败: %w", err)
	}
	return plan, nil
}

func (s *RecordService) UpdateCategorizedPlan(ctx context.Context, id string, req *dto.UpdateCategorizedPlanRequest) (*model.CategorizedPartPlan, error) {
	plan, err := s.repo.CategorizedPlan.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	plan.PlanType = req.PlanType
	plan.PartName = req.PartName
	plan.PartNumber = req.PartNumber
	plan.PlanQty = req.PlanQty
	plan.Remarks = req.Remarks
	if err := s.repo.CategorizedPlan.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("更新类别别计划失败: %w", err)
	}
	return plan, nil
}

func (s *RecordService) DeleteCategorizedPlan(ctx context.Context, id string) error {
	if _, err := s.repo.CategorizedPlan.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.CategorizedPlan.Delete(ctx, id)
}

// ── 客户别零件计划 ──

func (s *RecordService) CreateCustomerPlan(ctx context.Context, req *dto.CreateCustomerPlanRequest) (*model.CustomerPartPlan, error) {
	if err := s.ensureBoard(ctx, req.BoardID); err != nil {
		return nil, err
	}
	plan := &model.CustomerPartPlan{
		BoardID:    req.BoardID,
		Customer:   req.Customer,
		PartName:   req.PartName,
		PartNumber: req.PartNumber,
		PlanQty:    req.PlanQty,
		Remarks:    req.Remarks,
	}
	if err := s.repo.CustomerPlan.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("创建客户别计划失败: %w", err)
	}
	return plan, nil
}

func (s *RecordService) UpdateCustomerPlan(ctx context.Context, id string, req *dto.UpdateCustomerPlanRequest) (*model.CustomerPartPlan, error) {
	plan, err := s.repo.CustomerPlan.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	plan.Customer = req.Customer
	plan.PartName = req.PartName
	plan.PartNumber = req.PartNumber
	plan.PlanQty = req.PlanQty
	plan.Remarks = req.Remarks
	if err := s.repo.CustomerPlan.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("更新客户别计划失败: %w", err)
	}
	return plan, nil
}

func (s *RecordService) DeleteCustomerPlan(ctx context.Context, id string) error {
	if _, err := s.repo.CustomerPlan.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.CustomerPlan.Delete(ctx, id)
}

// ── 其他信息条目 ──

func (s *RecordService) CreateMiscItem(ctx context.Context, req *dto.CreateMiscItemRequest) (*model.MiscItem, error) {
	if err := s.ensureBoard(ctx, req.BoardID); err != nil {
		return nil, err
	}
	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		return nil, ErrBadDate
	}
	item := &model.MiscItem{
		BoardID:    req.BoardID,
		PartName:   req.PartName,
		Qty:        req.Qty,
		TargetDate: targetDate,
		Remarks:    req.Remarks,
	}
	if err := s.repo.MiscItem.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("创建其他信息条目失败: %w", err)
	}
	return item, nil
}

func (s *RecordService) UpdateMiscItem(ctx context.Context, id string, req *dto.UpdateMiscItemRequest) (*model.MiscItem, error) {
	item, err := s.repo.MiscItem.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		return nil, ErrBadDate
	}
	item.PartName = req.PartName
	item.Qty = req.Qty
	item.TargetDate = targetDate
	item.Remarks = req.Remarks
	if err := s.repo.MiscItem.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("更新其他信息条目失败: %w", err)
	}
	return item, nil
}

func (s *RecordService) DeleteMiscItem(ctx context.Context, id string) error {
	if _, err := s.repo.MiscItem.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.MiscItem.Delete(ctx, id)
}
