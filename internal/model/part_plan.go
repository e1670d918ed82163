package model

import "time"

// CriticalPart 关键零件到货跟踪 — 对应 critical_parts
type CriticalPart struct {
	CriticalPartID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"critical_part_id"`
	BoardID        string     `gorm:"type:uuid;not null;index"                       json:"board_id"`
	PartName       string     `gorm:"type:varchar(100);not null"                     json:"part_name"`
	Supplier       string     `gorm:"type:varchar(100)"                              json:"supplier"`
	PlanQty        int        `gorm:"not null"                                       json:"plan_qty"`
	ReceivingTime  *time.Time `json:"receiving_time,omitempty"`
	Remarks        string     `gorm:"type:text" json:"remarks"`
	BaseModel
}

func (CriticalPart) TableName() string { return "critical_parts" }

// CategorizedPartPlan 类别别零件计划（AFM）— 对应 categorized_part_plans
type CategorizedPartPlan struct {
	CategorizedPlanID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"categorized_plan_id"`
	BoardID           string `gorm:"type:uuid;not null;index"                       json:"board_id"`
	PlanType          string `gorm:"type:varchar(10);not null"                      json:"plan_type"` // FCIN | IU
	PartName          string `gorm:"type:varchar(100);not null"                     json:"part_name"`
	PartNumber        string `gorm:"type:varchar(50)"                               json:"part_number"`
	PlanQty           int    `gorm:"not null"                                       json:"plan_qty"`
	Remarks           string `gorm:"type:text" json:"remarks"`
	BaseModel
}

func (CategorizedPartPlan) TableName() string { return "categorized_part_plans" }

// CategorizedPartPlan.PlanType 取值
const (
	PlanTypeFCIN = "FCIN"
	PlanTypeIU   = "IU"
)

// CustomerPartPlan 客户别零件计划（SPD）— 对应 customer_part_plans
type CustomerPartPlan struct {
	CustomerPlanID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"customer_plan_id"`
	BoardID        string `gorm:"type:uuid;not null;index"                       json:"board_id"`
	Customer       string `gorm:"type:varchar(20);not null"                      json:"customer"` // MSIL | HMSI | IYM | HMCL
	PartName       string `gorm:"type:varchar(100);not null"                     json:"part_name"`
	PartNumber     string `gorm:"type:varchar(50)"                               json:"part_number"`
	PlanQty        int    `gorm:"not null"                                       json:"plan_qty"`
	Remarks        string `gorm:"type:text" json:"remarks"`
	BaseModel
}

func (CustomerPartPlan) TableName() string { return "customer_part_plans" }

// Customers 已知客户代码（封闭集合，客户别计划只认这几家）
var Customers = []string{"MSIL", "HMSI", "IYM", "HMCL"}

// MiscItem 其他信息条目 — 对应 misc_items
type MiscItem struct {
	MiscItemID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"misc_item_id"`
	BoardID    string    `gorm:"type:uuid;not null;index"                       json:"board_id"`
	PartName   string    `gorm:"type:varchar(100);not null"                     json:"part_name"`
	Qty        int       `gorm:"not null"                                       json:"qty"`
	TargetDate time.Time `gorm:"type:date;not null"                             json:"target_date"`
	Remarks    string    `gorm:"type:text" json:"remarks"`
	BaseModel
}

func (MiscItem) TableName() string { return "misc_items" }
