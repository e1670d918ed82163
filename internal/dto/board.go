package dto

// ── 看板请求/响应 DTO ──

// CreateBoardRequest 手工创建看板
// 日期一律 "2006-01-02"，时刻一律 "HH:MM"
type CreateBoardRequest struct {
	Title         string  `json:"title"`
	MeetingTime   *string `json:"meeting_time" binding:"omitempty,len=5"`
	ReferenceDate string  `json:"reference_date" binding:"omitempty,datetime=2006-01-02"`
	NextDate      string  `json:"next_date" binding:"omitempty,datetime=2006-01-02"`
	FollowingDate string  `json:"following_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateBoardRequest 更新看板元信息
type UpdateBoardRequest struct {
	Title         *string `json:"title"`
	MeetingTime   *string `json:"meeting_time" binding:"omitempty,len=5"`
	ReferenceDate *string `json:"reference_date" binding:"omitempty,datetime=2006-01-02"`
	NextDate      *string `json:"next_date" binding:"omitempty,datetime=2006-01-02"`
	FollowingDate *string `json:"following_date" binding:"omitempty,datetime=2006-01-02"`
}

// ListBoardsQuery 看板列表分页参数
type ListBoardsQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// DashboardStats 大屏统计响应
type DashboardStats struct {
	TotalBoards  int64          `json:"total_boards"`
	TotalLines   int64          `json:"total_lines"`
	TotalImports int64          `json:"total_imports"`
	RecentBoards []BoardSummary `json:"recent_boards"`
}

// BoardSummary 大屏与列表页的看板摘要
type BoardSummary struct {
	BoardID       string  `json:"board_id"`
	Title         string  `json:"title"`
	MeetingTime   *string `json:"meeting_time,omitempty"`
	ReferenceDate string  `json:"reference_date"`
	NextDate      string  `json:"next_date"`
	FollowingDate string  `json:"following_date"`
	CreatedAt     string  `json:"created_at"`
}
