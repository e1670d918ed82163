package dto

// ── 导入请求/响应 DTO ──

// ImportQuery 导入记录列表分页参数
type ImportQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// ImportResponse 一次导入的响应
type ImportResponse struct {
	ImportRecordID string         `json:"import_record_id"`
	BoardID        string         `json:"board_id"`
	Processed      bool           `json:"processed"`
	Message        string         `json:"message"`
	Sections       map[string]int `json:"sections"`
}

// ImportRecordItem 导入记录列表项
type ImportRecordItem struct {
	ImportRecordID string `json:"import_record_id"`
	BoardID        string `json:"board_id"`
	FileName       string `json:"file_name"`
	UploadedBy     string `json:"uploaded_by"`
	UploadedAt     string `json:"uploaded_at"`
	Processed      bool   `json:"processed"`
}
