package model

// FuturePlan 前瞻装配计划 — 对应 future_plans
//
// horizon 区分两张前瞻计划表：次日计划与后日计划。
// 与 ShiftLine 不同，前瞻计划按机型聚合，不绑定具体产线。
type FuturePlan struct {
	FuturePlanID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"future_plan_id"`
	BoardID      string `gorm:"type:uuid;not null;index"                       json:"board_id"`
	Horizon      string `gorm:"type:varchar(10);not null"                      json:"horizon"` // next | following
	Model        string `gorm:"type:varchar(100);not null"                     json:"model"`
	AShift       *int   `json:"a_shift,omitempty"`
	BShift       *int   `json:"b_shift,omitempty"`
	CShift       *int   `json:"c_shift,omitempty"`
	Remarks      string `gorm:"type:text" json:"remarks"`
	BaseModel
}

func (FuturePlan) TableName() string { return "future_plans" }

// FuturePlan.Horizon 取值
const (
	HorizonNext      = "next"
	HorizonFollowing = "following"
)
