package dto

// ── 看板子记录请求 DTO ──
//
// 六个记录族共用"创建带 board_id、更新不带"的约定；
// 手工录入允许数量留空（与导入路径的 0 缺省不同）。

// ShiftSlotPayload 单个班次槽位
type ShiftSlotPayload struct {
	Model      string  `json:"model"`
	Plan       *int    `json:"plan" binding:"omitempty,min=0"`
	Actual     *int    `json:"actual" binding:"omitempty,min=0"`
	PlanChange *int    `json:"plan_change"`
	Time       *string `json:"time" binding:"omitempty,len=5"` // C 班忽略
	Remarks    string  `json:"remarks"`
}

// CreateShiftLineRequest 创建产线三班次记录
type CreateShiftLineRequest struct {
	BoardID   string           `json:"board_id" binding:"required,uuid"`
	LineLabel string           `json:"line_label" binding:"required,max=100"`
	AShift    ShiftSlotPayload `json:"a_shift"`
	BShift    ShiftSlotPayload `json:"b_shift"`
	CShift    ShiftSlotPayload `json:"c_shift"`
}

// UpdateShiftLineRequest 更新产线三班次记录
type UpdateShiftLineRequest struct {
	LineLabel string           `json:"line_label" binding:"required,max=100"`
	AShift    ShiftSlotPayload `json:"a_shift"`
	BShift    ShiftSlotPayload `json:"b_shift"`
	CShift    ShiftSlotPayload `json:"c_shift"`
}

// CreateFuturePlanRequest 创建前瞻计划
type CreateFuturePlanRequest struct {
	BoardID string `json:"board_id" binding:"required,uuid"`
	Horizon string `json:"horizon" binding:"required,oneof=next following"`
	Model   string `json:"model" binding:"required,max=100"`
	AShift  *int   `json:"a_shift" binding:"omitempty,min=0"`
	BShift  *int   `json:"b_shift" binding:"omitempty,min=0"`
	CShift  *int   `json:"c_shift" binding:"omitempty,min=0"`
	Remarks string `json:"remarks"`
}

// UpdateFuturePlanRequest 更新前瞻计划
type UpdateFuturePlanRequest struct {
	Horizon string `json:"horizon" binding:"required,oneof=next following"`
	Model   string `json:"model" binding:"required,max=100"`
	AShift  *int   `json:"a_shift" binding:"omitempty,min=0"`
	BShift  *int   `json:"b_shift" binding:"omitempty,min=0"`
	CShift  *int   `json:"c_shift" binding:"omitempty,min=0"`
	Remarks string `json:"remarks"`
}

// CreateCriticalPartRequest 创建关键零件记录
type CreateCriticalPartRequest struct {
	BoardID       string  `json:"board_id" binding:"required,uuid"`
	PartName      string  `json:"part_name" binding:"required,max=100"`
	Supplier      string  `json:"supplier" binding:"max=100"`
	PlanQty       int     `json:"plan_qty" binding:"min=0"`
	ReceivingTime *string `json:"receiving_time" binding:"omitempty"` // "02/01/2006 15:04"
	Remarks       string  `json:"remarks"`
}

// UpdateCriticalPartRequest 更新关键零件记录
type UpdateCriticalPartRequest struct {
	PartName      string  `json:"part_name" binding:"required,max=100"`
	Supplier      string  `json:"supplier" binding:"max=100"`
	PlanQty       int     `json:"plan_qty" binding:"min=0"`
	ReceivingTime *string `json:"receiving_time" binding:"omitempty"`
	Remarks       string  `json:"remarks"`
}

// CreateCategorizedPlanRequest 创建类别别零件计划
type CreateCategorizedPlanRequest struct {
	BoardID    string `json:"board_id" binding:"required,uuid"`
	PlanType   string `json:"plan_type" binding:"required,oneof=FCIN IU"`
	PartName   string `json:"part_name" binding:"required,max=100"`
	PartNumber string `json:"part_number" binding:"max=50"`
	PlanQty    int    `json:"plan_qty" binding:"min=0"`
	Remarks    string `json:"remarks"`
}

// UpdateCategorizedPlanRequest 更新类别别零件计划
type UpdateCategorizedPlanRequest struct {
	PlanType   string `json:"plan_type" binding:"required,oneof=FCIN IU"`
	PartName   string `json:"part_name" binding:"required,max=100"`
	PartNumber string `json:"part_number" binding:"max=50"`
	PlanQty    int    `json:"plan_qty" binding:"min=0"`
	Remarks    string `json:"remarks"`
}

// CreateCustomerPlanRequest 创建客户别零件计划
type CreateCustomerPlanRequest struct {
	BoardID    string `json:"board_id" binding:"required,uuid"`
	Customer   string `json:"customer" binding:"required,oneof=MSIL HMSI IYM HMCL"`
	PartName   string `json:"part_name" binding:"required,max=100"`
	PartNumber string `json:"part_number" binding:"max=50"`
	PlanQty    int    `json:"plan_qty" binding:"min=0"`
	Remarks    string `json:"remarks"`
}

// UpdateCustomerPlanRequest 更新客户别零件计划
type UpdateCustomerPlanRequest struct {
	Customer   string `json:"customer" binding:"required,oneof=MSIL HMSI IYM HMCL"`
	PartName   string `json:"part_name" binding:"required,max=100"`
	PartNumber string `json:"part_number" binding:"max=50"`
	PlanQty    int    `json:"plan_qty" binding:"min=0"`
	Remarks    string `json:"remarks"`
}

// CreateMiscItemRequest 创建其他信息条目
type CreateMiscItemRequest struct {
	BoardID    string `json:"board_id" binding:"required,uuid"`
	PartName   string `json:"part_name" binding:"required,max=100"`
	Qty        int    `json:"qty" binding:"min=0"`
	TargetDate string `json:"target_date" binding:"required,datetime=2006-01-02"`
	Remarks    string `json:"remarks"`
}

// UpdateMiscItemRequest 更新其他信息条目
type UpdateMiscItemRequest struct {
	PartName   string `json:"part_name" binding:"required,max=100"`
	Qty        int    `json:"qty" binding:"min=0"`
	TargetDate string `json:"target_date" binding:"required,datetime=2006-01-02"`
	Remarks    string `json:"remarks"`
}
