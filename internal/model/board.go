package model

import "time"

// DefaultBoardTitle 看板默认标题（沿用车间显示屏上的原始抬头）
const DefaultBoardTitle = "PRODUCTION PLANNING CONTROL DISPLAY BOARD"

// Board 计划看板聚合根 — 对应 boards
//
// 一张看板代表一次生产计划会议：基准日的各产线三班次实绩、
// 后两日的装配计划、关键零件到货跟踪、客户别/类别别零件计划等
// 全部子记录都归属于它，删除看板时级联删除。
type Board struct {
	BoardID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"        json:"board_id"`
	Title         string    `gorm:"type:varchar(200);not null;default:'PRODUCTION PLANNING CONTROL DISPLAY BOARD'" json:"title"`
	MeetingTime   *string   `gorm:"type:varchar(5)"                                       json:"meeting_time,omitempty"` // "HH:MM"
	ReferenceDate time.Time `gorm:"type:date;not null"                                    json:"reference_date"`
	NextDate      time.Time `gorm:"type:date;not null"                                    json:"next_date"`
	FollowingDate time.Time `gorm:"type:date;not null"                                    json:"following_date"`
	BaseModel

	// 关联（级联删除由外键 ON DELETE CASCADE 保证）
	ShiftLines       []ShiftLine           `gorm:"foreignKey:BoardID" json:"shift_lines,omitempty"`
	FuturePlans      []FuturePlan          `gorm:"foreignKey:BoardID" json:"future_plans,omitempty"`
	CriticalParts    []CriticalPart        `gorm:"foreignKey:BoardID" json:"critical_parts,omitempty"`
	CategorizedPlans []CategorizedPartPlan `gorm:"foreignKey:BoardID" json:"categorized_plans,omitempty"`
	CustomerPlans    []CustomerPartPlan    `gorm:"foreignKey:BoardID" json:"customer_plans,omitempty"`
	MiscItems        []MiscItem            `gorm:"foreignKey:BoardID" json:"misc_items,omitempty"`
	ImportRecords    []ImportRecord        `gorm:"foreignKey:BoardID" json:"import_records,omitempty"`
}

func (Board) TableName() string { return "boards" }
