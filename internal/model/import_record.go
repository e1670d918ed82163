package model

import "time"

// ImportRecord Excel 导入审计记录 — 对应 import_records
//
// 仅追加：一次上传对应一条记录，处理成功后置 processed=true，
// 此后不再修改（展示层视其为只读）。
type ImportRecord struct {
	ImportRecordID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"import_record_id"`
	BoardID        string    `gorm:"type:uuid;not null;index"                       json:"board_id"`
	FilePath       string    `gorm:"type:varchar(500);not null"                     json:"file_path"`
	UploadedBy     string    `gorm:"type:varchar(100)"                              json:"uploaded_by"`
	UploadedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"uploaded_at"`
	Processed      bool      `gorm:"not null;default:false"                         json:"processed"`
}

func (ImportRecord) TableName() string { return "import_records" }
