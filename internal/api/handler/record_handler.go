package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"planning-board/backend/internal/dto"
	"planning-board/backend/internal/service"
	"planning-board/backend/pkg/response"
)

// RecordHandler 看板子记录 HTTP 处理器
// 六个记录族共用同一套路由模式：POST 创建 / PUT 更新 / DELETE 删除
type RecordHandler struct {
	recordSvc *service.RecordService
}

// NewRecordHandler 创建 RecordHandler
func NewRecordHandler(recordSvc *service.RecordService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc}
}

// ── 产线三班次 ──

// CreateShiftLine POST /api/v1/shift-lines
func (h *RecordHandler) CreateShiftLine(c *gin.Context) {
	var req dto.CreateShiftLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	line, err := h.recordSvc.CreateShiftLine(c.Request.Context(), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.Created(c, line)
}

// UpdateShiftLine PUT /api/v1/shift-lines/:id
func (h *RecordHandler) UpdateShiftLine(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	var req dto.UpdateShiftLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	line, err := h.recordSvc.UpdateShiftLine(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.OK(c, line)
}

// DeleteShiftLine DELETE /api/v1/shift-lines/:id
func (h *RecordHandler) DeleteShiftLine(c *gin.Context) {
	h.deleteByID(c, h.recordSvc.DeleteShiftLine)
}

// ── 前瞻计划 ──

// CreateFuturePlan POST /api/v1/future-plans
func (h *RecordHandler) CreateFuturePlan(c *gin.Context) {
	var req dto.CreateFuturePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.recordSvc.CreateFuturePlan(c.Request.Context(), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.Created(c, plan)
}

// UpdateFuturePlan PUT /api/v1/future-plans/:id
func (h *RecordHandler) UpdateFuturePlan(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	var req dto.UpdateFuturePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.recordSvc.UpdateFuturePlan(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.OK(c, plan)
}

// DeleteFuturePlan DELETE /api/v1/future-plans/:id
func (h *RecordHandler) DeleteFuturePlan(c *gin.Context) {
	h.deleteByID(c, h.recordSvc.DeleteFuturePlan)
}

// ── 关键零件 ──

// CreateCriticalPart POST /api/v1/critical-parts
func (h *RecordHandler) CreateCriticalPart(c *gin.Context) {
	var req dto.CreateCriticalPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	part, err := h.recordSvc.CreateCriticalPart(c.Request.Context(), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.Created(c, part)
}

// UpdateCriticalPart PUT /api/v1/critical-parts/:id
func (h *RecordHandler) UpdateCriticalPart(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	var req dto.UpdateCriticalPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	part, err := h.recordSvc.UpdateCriticalPart(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.OK(c, part)
}

// DeleteCriticalPart DELETE /api/v1/critical-parts/:id
func (h *RecordHandler) DeleteCriticalPart(c *gin.Context) {
	h.deleteByID(c, h.recordSvc.DeleteCriticalPart)
}

// ── 类别别零件计划 ──

// CreateCategorizedPlan POST /api/v1/categorized-plans
func (h *RecordHandler) CreateCategorizedPlan(c *gin.Context) {
	var req dto.CreateCategorizedPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.recordSvc.CreateCategorizedPlan(c.Request.Context(), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.Created(c, plan)
}

// UpdateCategorizedPlan PUT /api/v1/categorized-plans/:id
func (h *RecordHandler) UpdateCategorizedPlan(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	var req dto.UpdateCategorizedPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.recordSvc.UpdateCategorizedPlan(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.OK(c, plan)
}

// DeleteCategorizedPlan DELETE /api/v1/categorized-plans/:id
func (h *RecordHandler) DeleteCategorizedPlan(c *gin.Context) {
	h.deleteByID(c, h.recordSvc.DeleteCategorizedPlan)
}

// ── 客户别零件计划 ──

// CreateCustomerPlan POST /api/v1/customer-plans
func (h *RecordHandler) CreateCustomerPlan(c *gin.Context) {
	var req dto.CreateCustomerPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.recordSvc.CreateCustomerPlan(c.Request.Context(), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.Created(c, plan)
}

// UpdateCustomerPlan PUT /api/v1/customer-plans/:id
func (h *RecordHandler) UpdateCustomerPlan(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	var req dto.UpdateCustomerPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.recordSvc.UpdateCustomerPlan(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.OK(c, plan)
}

// DeleteCustomerPlan DELETE /api/v1/customer-plans/:id
func (h *RecordHandler) DeleteCustomerPlan(c *gin.Context) {
	h.deleteByID(c, h.recordSvc.DeleteCustomerPlan)
}

// ── 其他信息条目 ──

// CreateMiscItem POST /api/v1/misc-items
func (h *RecordHandler) CreateMiscItem(c *gin.Context) {
	var req dto.CreateMiscItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	item, err := h.recordSvc.CreateMiscItem(c.Request.Context(), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateMiscItem PUT /api/v1/misc-items/:id
func (h *RecordHandler) UpdateMiscItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	var req dto.UpdateMiscItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	item, err := h.recordSvc.UpdateMiscItem(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.OK(c, item)
}

// DeleteMiscItem DELETE /api/v1/misc-items/:id
func (h *RecordHandler) DeleteMiscItem(c *gin.Context) {
	h.deleteByID(c, h.recordSvc.DeleteMiscItem)
}

// deleteByID 删除类接口的公共骨架
func (h *RecordHandler) deleteByID(c *gin.Context, del func(ctx context.Context, id string) error) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		h.handleRecordError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleRecordError 统一处理子记录模块业务错误
func (h *RecordHandler) handleRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		response.NotFound(c, 11001, "看板不存在")
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 12001, "记录不存在")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 11002, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
