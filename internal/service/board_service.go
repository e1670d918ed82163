package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"planning-board/backend/internal/dto"
	"planning-board/backend/internal/model"
	"planning-board/backend/internal/repository"
	"planning-board/backend/pkg/redis"
)

// ── 看板服务错误 ──
var (
	ErrBoardNotFound = errors.New("看板不存在")
	ErrBadDate       = errors.New("日期格式无效")
)

const dateLayout = "2006-01-02"

// dashboardTTL 大屏统计缓存时长；大屏 10 秒轮询一次，30 秒内可容忍旧值
const dashboardTTL = 30 * time.Second

// BoardService 看板服务：看板 CRUD 与大屏统计
type BoardService struct {
	repo   *repository.Repository
	cache  *redis.Client // 可为 nil（Redis 不可用时直查数据库）
	logger *zap.Logger
}

// NewBoardService 创建看板服务
func NewBoardService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) *BoardService {
	return &BoardService{repo: repo, cache: cache, logger: logger}
}

// CreateBoard 手工创建看板
// 基准日缺省为今天（工厂时区），次日/后日缺省按基准日顺延
func (s *BoardService) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*model.Board, error) {
	var refDate time.Time
	var err error
	if req.ReferenceDate == "" {
		refDate = truncateToDate(time.Now().In(plantLocation()))
	} else if refDate, err = time.Parse(dateLayout, req.ReferenceDate); err != nil {
		return nil, ErrBadDate
	}

	board := &model.Board{
		Title:         model.DefaultBoardTitle,
		MeetingTime:   req.MeetingTime,
		ReferenceDate: refDate,
		NextDate:      refDate.AddDate(0, 0, 1),
		FollowingDate: refDate.AddDate(0, 0, 2),
	}
	if req.Title != "" {
		board.Title = req.Title
	}
	if req.NextDate != "" {
		if board.NextDate, err = time.Parse(dateLayout, req.NextDate); err != nil {
			return nil, ErrBadDate
		}
	}
	if req.FollowingDate != "" {
		if board.FollowingDate, err = time.Parse(dateLayout, req.FollowingDate); err != nil {
			return nil, ErrBadDate
		}
	}

	if err := s.repo.Board.Create(ctx, board); err != nil {
		return nil, fmt.Errorf("创建看板失败: %w", err)
	}
	s.invalidateDashboard(ctx)
	return board, nil
}

// GetBoard 查询看板（不带子记录）
func (s *BoardService) GetBoard(ctx context.Context, id string) (*model.Board, error) {
	board, err := s.repo.Board.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询看板失败: %w", err)
	}
	return board, nil
}

// GetBoardDetail 查询看板详情（带全部子记录族）
func (s *BoardService) GetBoardDetail(ctx context.Context, id string) (*model.Board, error) {
	board, err := s.repo.Board.GetDetail(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询看板详情失败: %w", err)
	}
	return board, nil
}

// ListBoards 分页查询看板
func (s *BoardService) ListBoards(ctx context.Context, page, pageSize int) ([]model.Board, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.Board.List(ctx, (page-1)*pageSize, pageSize)
}

// UpdateBoard 更新看板元信息（字段级部分更新）
func (s *BoardService) UpdateBoard(ctx context.Context, id string, req *dto.UpdateBoardRequest) (*model.Board, error) {
	board, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		board.Title = *req.Title
	}
	if req.MeetingTime != nil {
		board.MeetingTime = req.MeetingTime
	}
	if req.ReferenceDate != nil {
		if board.ReferenceDate, err = time.Parse(dateLayout, *req.ReferenceDate); err != nil {
			return nil, ErrBadDate
		}
	}
	if req.NextDate != nil {
		if board.NextDate, err = time.Parse(dateLayout, *req.NextDate); err != nil {
			return nil, ErrBadDate
		}
	}
	if req.FollowingDate != nil {
		if board.FollowingDate, err = time.Parse(dateLayout, *req.FollowingDate); err != nil {
			return nil, ErrBadDate
		}
	}

	if err := s.repo.Board.Update(ctx, board); err != nil {
		return nil, fmt.Errorf("更新看板失败: %w", err)
	}
	return board, nil
}

// DeleteBoard 删除看板（子记录随外键级联删除）
func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	if _, err := s.GetBoard(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Board.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除看板失败: %w", err)
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Dashboard 大屏统计：缓存命中直接返回，未命中查库回填
func (s *BoardService) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	if s.cache != nil {
		var cached dto.DashboardStats
		hit, err := s.cache.GetJSON(ctx, redis.DashboardStatsKey(), &cached)
		if err != nil {
			s.logger.Warn("大屏统计缓存读取失败", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	stats, err := s.buildDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, redis.DashboardStatsKey(), stats, dashboardTTL); err != nil {
			s.logger.Warn("大屏统计缓存写入失败", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *BoardService) buildDashboard(ctx context.Context) (*dto.DashboardStats, error) {
	totalBoards, err := s.repo.Board.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计看板数失败: %w", err)
	}
	totalLines, err := s.repo.ShiftLine.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计产线记录数失败: %w", err)
	}
	totalImports, err := s.repo.ImportRecord.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计导入次数失败: %w", err)
	}
	recent, err := s.repo.Board.ListRecent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("查询最近看板失败: %w", err)
	}

	stats := &dto.DashboardStats{
		TotalBoards:  totalBoards,
		TotalLines:   totalLines,
		TotalImports: totalImports,
		RecentBoards: make([]dto.BoardSummary, 0, len(recent)),
	}
	for _, b := range recent {
		stats.RecentBoards = append(stats.RecentBoards, dto.BoardSummary{
			BoardID:       b.BoardID,
			Title:         b.Title,
			MeetingTime:   b.MeetingTime,
			ReferenceDate: b.ReferenceDate.Format(dateLayout),
			NextDate:      b.NextDate.Format(dateLayout),
			FollowingDate: b.FollowingDate.Format(dateLayout),
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		})
	}
	return stats, nil
}

func (s *BoardService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDashboard(ctx); err != nil {
		s.logger.Warn("大屏统计缓存失效失败", zap.Error(err))
	}
}
