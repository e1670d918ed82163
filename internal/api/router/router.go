package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planning-board/backend/config"
	"planning-board/backend/internal/api/handler"
	"planning-board/backend/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	// Excel 上传是最大的合法请求体，限制取上传上限加 1MB multipart 余量
	r.Use(middleware.BodyLimit(cfg.Upload.MaxSizeMB*1024*1024 + 1<<20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 看板模块
		boards := v1.Group("/boards")
		{
			boards.GET("", h.Board.ListBoards)
			boards.GET("/:id", h.Board.GetBoard)
			boards.POST("", h.Board.CreateBoard)
			boards.PUT("/:id", h.Board.UpdateBoard)
			boards.DELETE("/:id", h.Board.DeleteBoard)
		}

		// 大屏统计
		v1.GET("/dashboard", h.Board.Dashboard)

		// 产线三班次
		shiftLines := v1.Group("/shift-lines")
		{
			shiftLines.POST("", h.Record.CreateShiftLine)
			shiftLines.PUT("/:id", h.Record.UpdateShiftLine)
			shiftLines.DELETE("/:id", h.Record.DeleteShiftLine)
		}

		// 前瞻计划
		futurePlans := v1.Group("/future-plans")
		{
			futurePlans.POST("", h.Record.CreateFuturePlan)
			futurePlans.PUT("/:id", h.Record.UpdateFuturePlan)
			futurePlans.DELETE("/:id", h.Record.DeleteFuturePlan)
		}

		// 关键零件
		criticalParts := v1.Group("/critical-parts")
		{
			criticalParts.POST("", h.Record.CreateCriticalPart)
			criticalParts.PUT("/:id", h.Record.UpdateCriticalPart)
			criticalParts.DELETE("/:id", h.Record.DeleteCriticalPart)
		}

		// 类别别零件计划
		categorizedPlans := v1.Group("/categorized-plans")
		{
			categorizedPlans.POST("", h.Record.CreateCategorizedPlan)
			categorizedPlans.PUT("/:id", h.Record.UpdateCategorizedPlan)
			categorizedPlans.DELETE("/:id", h.Record.DeleteCategorizedPlan)
		}

		// 客户别零件计划
		customerPlans := v1.Group("/customer-plans")
		{
			customerPlans.POST("", h.Record.CreateCustomerPlan)
			customerPlans.PUT("/:id", h.Record.UpdateCustomerPlan)
			customerPlans.DELETE("/:id", h.Record.DeleteCustomerPlan)
		}

		// 其他信息条目
		miscItems := v1.Group("/misc-items")
		{
			miscItems.POST("", h.Record.CreateMiscItem)
			miscItems.PUT("/:id", h.Record.UpdateMiscItem)
			miscItems.DELETE("/:id", h.Record.DeleteMiscItem)
		}

		// 排产表导入
		imports := v1.Group("/imports")
		{
			imports.POST("", h.Import.ImportWorkbook)
			imports.GET("", h.Import.ListImports)
		}
	}

	return r
}
