package model

// ShiftLine 产线三班次记录 — 对应 shift_lines
//
// 一行代表一条产线在基准日 A/B/C 三个班次的机型、计划量、实绩量、
// 计划变更量、开始时间与备注。C 班无开始时间列（车间排班表如此）。
// 同一产线的多条数据行以 " - Entry N" 后缀区分，见导入逻辑。
type ShiftLine struct {
	ShiftLineID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_line_id"`
	BoardID     string `gorm:"type:uuid;not null;index"                       json:"board_id"`
	LineLabel   string `gorm:"type:varchar(100);not null"                     json:"line_label"`

	// A 班
	AShiftModel      string  `gorm:"type:varchar(100)" json:"a_shift_model"`
	AShiftPlan       *int    `json:"a_shift_plan,omitempty"`
	AShiftActual     *int    `json:"a_shift_actual,omitempty"`
	AShiftPlanChange *int    `json:"a_shift_plan_change,omitempty"`
	AShiftTime       *string `gorm:"type:varchar(5)" json:"a_shift_time,omitempty"` // "HH:MM"
	AShiftRemarks    string  `gorm:"type:text"       json:"a_shift_remarks"`

	// B 班
	BShiftModel      string  `gorm:"type:varchar(100)" json:"b_shift_model"`
	BShiftPlan       *int    `json:"b_shift_plan,omitempty"`
	BShiftActual     *int    `json:"b_shift_actual,omitempty"`
	BShiftPlanChange *int    `json:"b_shift_plan_change,omitempty"`
	BShiftTime       *string `gorm:"type:varchar(5)" json:"b_shift_time,omitempty"`
	BShiftRemarks    string  `gorm:"type:text"       json:"b_shift_remarks"`

	// C 班
	CShiftModel      string `gorm:"type:varchar(100)" json:"c_shift_model"`
	CShiftPlan       *int   `json:"c_shift_plan,omitempty"`
	CShiftActual     *int   `json:"c_shift_actual,omitempty"`
	CShiftPlanChange *int   `json:"c_shift_plan_change,omitempty"`
	CShiftRemarks    string `gorm:"type:text" json:"c_shift_remarks"`

	BaseModel
}

func (ShiftLine) TableName() string { return "shift_lines" }
