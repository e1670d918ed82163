package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Board           BoardRepository
	ShiftLine       ShiftLineRepository
	FuturePlan      FuturePlanRepository
	CriticalPart    CriticalPartRepository
	CategorizedPlan CategorizedPlanRepository
	CustomerPlan    CustomerPlanRepository
	MiscItem        MiscItemRepository
	ImportRecord    ImportRecordRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Board:           NewBoardRepo(db),
		ShiftLine:       NewShiftLineRepo(db),
		FuturePlan:      NewFuturePlanRepo(db),
		CriticalPart:    NewCriticalPartRepo(db),
		CategorizedPlan: NewCategorizedPlanRepo(db),
		CustomerPlan:    NewCustomerPlanRepo(db),
		MiscItem:        NewMiscItemRepo(db),
		ImportRecord:    NewImportRecordRepo(db),
	}
}
