package handler

import "planning-board/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Board  *BoardHandler
	Record *RecordHandler
	Import *ImportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Board:  NewBoardHandler(svc.Board),
		Record: NewRecordHandler(svc.Record),
		Import: NewImportHandler(svc.Import),
	}
}
