package handler

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"planning-board/backend/internal/dto"
	"planning-board/backend/internal/service"
	"planning-board/backend/pkg/response"
)

// ImportHandler 排产表导入 HTTP 处理器
type ImportHandler struct {
	importSvc *service.ImportService
}

// NewImportHandler 创建 ImportHandler
func NewImportHandler(importSvc *service.ImportService) *ImportHandler {
	return &ImportHandler{importSvc: importSvc}
}

// ImportWorkbook 上传并解析排产 Excel
// POST /api/v1/imports  (multipart/form-data)
//
// 表单字段：
//	file        — .xlsx 文件（必填）
//	board_id    — 追加到已有看板（选填，缺省新建）
//	uploaded_by — 上传人标识（选填）
func (h *ImportHandler) ImportWorkbook(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 13001, "未选择上传文件")
		return
	}

	boardID := c.PostForm("board_id")
	uploadedBy := c.PostForm("uploaded_by")

	outcome, err := h.importSvc.ImportWorkbook(c.Request.Context(), fh, boardID, uploadedBy)
	if err != nil {
		h.handleImportError(c, err)
		return
	}

	response.Created(c, dto.ImportResponse{
		ImportRecordID: outcome.Record.ImportRecordID,
		BoardID:        outcome.Board.BoardID,
		Processed:      outcome.Record.Processed,
		Message:        outcome.Extraction.Message,
		Sections:       outcome.Extraction.Sections,
	})
}

// ListImports 导入审计记录列表（按上传时间倒序）
// GET /api/v1/imports
func (h *ImportHandler) ListImports(c *gin.Context) {
	var q dto.ImportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, total, err := h.importSvc.ListImports(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]dto.ImportRecordItem, 0, len(records))
	for _, r := range records {
		items = append(items, dto.ImportRecordItem{
			ImportRecordID: r.ImportRecordID,
			BoardID:        r.BoardID,
			FileName:       filepath.Base(r.FilePath),
			UploadedBy:     r.UploadedBy,
			UploadedAt:     r.UploadedAt.Format(time.RFC3339),
			Processed:      r.Processed,
		})
	}

	response.OKPage(c, items, total, q.Page, q.PageSize)
}

// handleImportError 统一处理导入模块业务错误
func (h *ImportHandler) handleImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrImportFileEmpty):
		response.BadRequest(c, 13001, "未选择上传文件")
	case errors.Is(err, service.ErrImportFileTooLarge):
		response.BadRequest(c, 13002, "文件超过大小上限")
	case errors.Is(err, service.ErrImportFileType):
		response.BadRequest(c, 13003, "仅支持 .xlsx 格式")
	case errors.Is(err, service.ErrImportOpenFailed):
		response.BadRequest(c, 13004, "工作簿无法打开或已损坏")
	default:
		response.InternalError(c)
	}
}
