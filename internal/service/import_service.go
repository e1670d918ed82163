package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planning-board/backend/config"
	"planning-board/backend/internal/model"
	"planning-board/backend/internal/repository"
	"planning-board/backend/pkg/redis"
)

// ── 导入服务错误 ──
var (
	ErrImportFileEmpty    = errors.New("未选择上传文件")
	ErrImportFileTooLarge = errors.New("文件超过大小上限")
	ErrImportFileType     = errors.New("仅支持 .xlsx 格式")
	ErrImportOpenFailed   = errors.New("工作簿无法打开或已损坏")
	ErrImportNotFound     = errors.New("导入记录不存在")
)

// ImportService Excel 导入服务
//
// 上传 → 落盘 → 建看板（缺省日期为今天/明天/后天）→ 记审计 →
// 解析落库 → 标记已处理。
//
// 失败语义分两级：工作簿打不开是硬失败，回滚本次新建的看板并
// 删除落盘文件；个别子段解析失败是软失败，解析器内部消化。
type ImportService struct {
	repo   *repository.Repository
	cache  *redis.Client // 可为 nil（Redis 不可用时降级）
	cfg    *config.UploadConfig
	logger *zap.Logger
}

// NewImportService 创建导入服务
func NewImportService(repo *repository.Repository, cache *redis.Client, cfg *config.UploadConfig, logger *zap.Logger) *ImportService {
	return &ImportService{repo: repo, cache: cache, cfg: cfg, logger: logger}
}

// ImportOutcome 一次导入的结果（审计记录 + 看板 + 解析明细）
type ImportOutcome struct {
	Record     *model.ImportRecord
	Board      *model.Board
	Extraction ExtractionResult
}

// ImportWorkbook 处理一次排产表上传
//
// boardID 为空时新建看板；非空时向已有看板追加导入 —
// 解析只追加不更新，重复导入同一看板会产生重复子记录，
// 这是既定语义，由前端在重复导入前提示用户。
func (s *ImportService) ImportWorkbook(ctx context.Context, fh *multipart.FileHeader, boardID, uploadedBy string) (*ImportOutcome, error) {
	if fh == nil {
		return nil, ErrImportFileEmpty
	}
	if fh.Size > s.cfg.MaxSizeMB*1024*1024 {
		return nil, ErrImportFileTooLarge
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return nil, ErrImportFileType
	}

	// ── 落盘 ──
	filePath, err := s.saveUpload(fh)
	if err != nil {
		return nil, fmt.Errorf("保存上传文件失败: %w", err)
	}

	// ── 定位或新建看板 ──
	var board *model.Board
	freshBoard := false
	if boardID != "" {
		board, err = s.repo.Board.GetByID(ctx, boardID)
		if err != nil {
			s.removeUpload(filePath)
			return nil, fmt.Errorf("查询看板失败: %w", err)
		}
	} else {
		board = s.newDefaultBoard()
		if err := s.repo.Board.Create(ctx, board); err != nil {
			s.removeUpload(filePath)
			return nil, fmt.Errorf("创建看板失败: %w", err)
		}
		freshBoard = true
	}

	// ── 审计记录 ──
	record := &model.ImportRecord{
		BoardID:    board.BoardID,
		FilePath:   filePath,
		UploadedBy: uploadedBy,
		UploadedAt: time.Now(),
	}
	if err := s.repo.ImportRecord.Create(ctx, record); err != nil {
		if freshBoard {
			s.rollbackBoard(ctx, board.BoardID)
		}
		s.removeUpload(filePath)
		return nil, fmt.Errorf("创建导入记录失败: %w", err)
	}

	// ── 打开工作簿（唯一的硬失败点） ──
	f, err := os.Open(filePath)
	if err != nil {
		if freshBoard {
			s.rollbackBoard(ctx, board.BoardID)
		}
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}
	grid, gridErr := OpenWorkbookGrid(f)
	f.Close()
	if gridErr != nil {
		s.logger.Error("工作簿打开失败",
			zap.String("file", filePath),
			zap.Error(gridErr),
		)
		if freshBoard {
			s.rollbackBoard(ctx, board.BoardID)
		}
		if !s.cfg.KeepOnFail {
			s.removeUpload(filePath)
		}
		return nil, ErrImportOpenFailed
	}

	// ── 解析落库 ──
	extractor := NewSheetExtractor(grid, board, s.repo, s.logger)
	result := extractor.Extract(ctx)

	if err := s.repo.ImportRecord.MarkProcessed(ctx, record.ImportRecordID); err != nil {
		// 解析已落库，标记失败只记日志
		s.logger.Warn("标记导入记录已处理失败",
			zap.String("import_record_id", record.ImportRecordID),
			zap.Error(err),
		)
	} else {
		record.Processed = true
	}

	s.invalidateDashboard(ctx)

	s.logger.Info("排产表导入完成",
		zap.String("board_id", board.BoardID),
		zap.String("file", filepath.Base(filePath)),
		zap.Any("sections", result.Sections),
	)

	return &ImportOutcome{Record: record, Board: board, Extraction: result}, nil
}

// ListImports 分页查询导入审计记录
func (s *ImportService) ListImports(ctx context.Context, page, pageSize int) ([]model.ImportRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.ImportRecord.List(ctx, (page-1)*pageSize, pageSize)
}

// newDefaultBoard 缺省看板：基准日今天、次日明天、后日后天（工厂时区）
// 解析阶段若从表内读到日期会覆盖这些缺省值
func (s *ImportService) newDefaultBoard() *model.Board {
	today := truncateToDate(time.Now().In(plantLocation()))
	return &model.Board{
		Title:         model.DefaultBoardTitle,
		ReferenceDate: today,
		NextDate:      today.AddDate(0, 0, 1),
		FollowingDate: today.AddDate(0, 0, 2),
	}
}

// saveUpload 落盘上传文件：上传目录 / 日期子目录 / uuid.xlsx
func (s *ImportService) saveUpload(fh *multipart.FileHeader) (string, error) {
	dir := filepath.Join(s.cfg.Dir, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, uuid.NewString()+".xlsx")

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

func (s *ImportService) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("清理上传文件失败", zap.String("file", path), zap.Error(err))
	}
}

// rollbackBoard 硬失败时回滚本次新建的看板（级联删除审计记录）
func (s *ImportService) rollbackBoard(ctx context.Context, boardID string) {
	if err := s.repo.Board.Delete(ctx, boardID); err != nil {
		s.logger.Error("回滚看板失败", zap.String("board_id", boardID), zap.Error(err))
	}
}

func (s *ImportService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDashboard(ctx); err != nil {
		s.logger.Warn("大屏统计缓存失效失败", zap.Error(err))
	}
}
