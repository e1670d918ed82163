package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"planning-board/backend/internal/dto"
	"planning-board/backend/internal/service"
	"planning-board/backend/pkg/response"
)

// BoardHandler 看板模块 HTTP 处理器
type BoardHandler struct {
	boardSvc *service.BoardService
}

// NewBoardHandler 创建 BoardHandler
func NewBoardHandler(boardSvc *service.BoardService) *BoardHandler {
	return &BoardHandler{boardSvc: boardSvc}
}

// ListBoards 获取看板列表（分页，按创建时间倒序）
// GET /api/v1/boards
func (h *BoardHandler) ListBoards(c *gin.Context) {
	var q dto.ListBoardsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	boards, total, err := h.boardSvc.ListBoards(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, boards, total, q.Page, q.PageSize)
}

// GetBoard 获取看板详情（带全部子记录族）
// GET /api/v1/boards/:id
func (h *BoardHandler) GetBoard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "看板ID不能为空")
		return
	}

	board, err := h.boardSvc.GetBoardDetail(c.Request.Context(), id)
	if err != nil {
		h.handleBoardError(c, err)
		return
	}

	response.OK(c, board)
}

// CreateBoard 手工创建看板
// POST /api/v1/boards
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	board, err := h.boardSvc.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		h.handleBoardError(c, err)
		return
	}

	response.Created(c, board)
}

// UpdateBoard 更新看板元信息
// PUT /api/v1/boards/:id
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "看板ID不能为空")
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	board, err := h.boardSvc.UpdateBoard(c.Request.Context(), id, &req)
	if err != nil {
		h.handleBoardError(c, err)
		return
	}

	response.OK(c, board)
}

// DeleteBoard 删除看板（子记录级联删除）
// DELETE /api/v1/boards/:id
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "看板ID不能为空")
		return
	}

	if err := h.boardSvc.DeleteBoard(c.Request.Context(), id); err != nil {
		h.handleBoardError(c, err)
		return
	}

	response.OK(c, nil)
}

// Dashboard 大屏统计
// GET /api/v1/dashboard
func (h *BoardHandler) Dashboard(c *gin.Context) {
	stats, err := h.boardSvc.Dashboard(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// handleBoardError 统一处理看板模块业务错误
func (h *BoardHandler) handleBoardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		response.NotFound(c, 11001, "看板不存在")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 11002, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
