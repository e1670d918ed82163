package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"planning-board/backend/internal/dto"
	"planning-board/backend/internal/model"
)

// ── 测试辅助 ──

func setupBoardService(t *testing.T) (*BoardService, *mockRepos) {
	t.Helper()
	mocks := newMockRepository()
	svc := NewBoardService(mocks.aggregate(), nil, zap.NewNop())
	return svc, mocks
}

// ── CreateBoard ──

func TestBoardService_Create_DefaultsFilled(t *testing.T) {
	svc, _ := setupBoardService(t)

	board, err := svc.CreateBoard(context.Background(), &dto.CreateBoardRequest{
		ReferenceDate: "2026-03-10",
	})
	if err != nil {
		t.Fatalf("CreateBoard 应成功: %v", err)
	}
	if board.Title != model.DefaultBoardTitle {
		t.Errorf("标题缺省应为默认抬头，实际 %q", board.Title)
	}
	if board.NextDate.Format("2006-01-02") != "2026-03-11" {
		t.Errorf("次日应顺延一天，实际 %v", board.NextDate)
	}
	if board.FollowingDate.Format("2006-01-02") != "2026-03-12" {
		t.Errorf("后日应顺延两天，实际 %v", board.FollowingDate)
	}
}

func TestBoardService_Create_ReferenceDateDefaultsToday(t *testing.T) {
	svc, _ := setupBoardService(t)

	board, err := svc.CreateBoard(context.Background(), &dto.CreateBoardRequest{})
	if err != nil {
		t.Fatalf("CreateBoard 应成功: %v", err)
	}
	today := truncateToDate(time.Now().In(plantLocation()))
	if !board.ReferenceDate.Equal(today) {
		t.Errorf("基准日缺省应为今天 %v，实际 %v", today, board.ReferenceDate)
	}
}

func TestBoardService_Create_ExplicitDates(t *testing.T) {
	svc, _ := setupBoardService(t)

	mt := "08:45"
	board, err := svc.CreateBoard(context.Background(), &dto.CreateBoardRequest{
		Title:         "LINE REVIEW",
		MeetingTime:   &mt,
		ReferenceDate: "2026-03-10",
		NextDate:      "2026-03-12", // 跳过周日
		FollowingDate: "2026-03-13",
	})
	if err != nil {
		t.Fatalf("CreateBoard 应成功: %v", err)
	}
	if board.Title != "LINE REVIEW" {
		t.Errorf("标题应为 LINE REVIEW，实际 %q", board.Title)
	}
	if board.NextDate.Format("2006-01-02") != "2026-03-12" {
		t.Errorf("次日应取显式值，实际 %v", board.NextDate)
	}
	if board.MeetingTime == nil || *board.MeetingTime != "08:45" {
		t.Errorf("会议时间应为 08:45，实际 %v", board.MeetingTime)
	}
}

func TestBoardService_Create_BadDate(t *testing.T) {
	svc, _ := setupBoardService(t)

	_, err := svc.CreateBoard(context.Background(), &dto.CreateBoardRequest{
		ReferenceDate: "10/03/2026", // API 只收 ISO 格式
	})
	if !errors.Is(err, ErrBadDate) {
		t.Errorf("期望 ErrBadDate，实际: %v", err)
	}
}

// ── Get / Update / Delete ──

func TestBoardService_Get_NotFound(t *testing.T) {
	svc, _ := setupBoardService(t)

	if _, err := svc.GetBoard(context.Background(), "missing"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("期望 ErrBoardNotFound，实际: %v", err)
	}
	if _, err := svc.GetBoardDetail(context.Background(), "missing"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("期望 ErrBoardNotFound，实际: %v", err)
	}
}

func TestBoardService_Update_PartialFields(t *testing.T) {
	svc, _ := setupBoardService(t)

	board, _ := svc.CreateBoard(context.Background(), &dto.CreateBoardRequest{ReferenceDate: "2026-03-10"})

	title := "REVISED BOARD"
	updated, err := svc.UpdateBoard(context.Background(), board.BoardID, &dto.UpdateBoardRequest{
		Title: &title,
	})
	if err != nil {
		t.Fatalf("UpdateBoard 应成功: %v", err)
	}
	if updated.Title != "REVISED BOARD" {
		t.Errorf("标题应更新，实际 %q", updated.Title)
	}
	if updated.ReferenceDate.Format("2006-01-02") != "2026-03-10" {
		t.Errorf("未提交的字段不应改变，实际 %v", updated.ReferenceDate)
	}
}

func TestBoardService_Delete(t *testing.T) {
	svc, mocks := setupBoardService(t)

	board, _ := svc.CreateBoard(context.Background(), &dto.CreateBoardRequest{ReferenceDate: "2026-03-10"})

	if err := svc.DeleteBoard(context.Background(), board.BoardID); err != nil {
		t.Fatalf("DeleteBoard 应成功: %v", err)
	}
	if n, _ := mocks.boards.Count(context.Background()); n != 0 {
		t.Errorf("看板应已删除，实际剩余 %d", n)
	}
	if err := svc.DeleteBoard(context.Background(), board.BoardID); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("重复删除应返回 ErrBoardNotFound，实际: %v", err)
	}
}

// ── Dashboard ──

func TestBoardService_Dashboard_NoCache(t *testing.T) {
	svc, mocks := setupBoardService(t)

	board, _ := svc.CreateBoard(context.Background(), &dto.CreateBoardRequest{ReferenceDate: "2026-03-10"})
	_ = mocks.lines.Create(context.Background(), &model.ShiftLine{BoardID: board.BoardID, LineLabel: "FMD/FFD"})

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard 应成功: %v", err)
	}
	if stats.TotalBoards != 1 {
		t.Errorf("看板总数应为 1，实际 %d", stats.TotalBoards)
	}
	if stats.TotalLines != 1 {
		t.Errorf("产线记录总数应为 1，实际 %d", stats.TotalLines)
	}
	if len(stats.RecentBoards) != 1 {
		t.Errorf("最近看板应有 1 条，实际 %d", len(stats.RecentBoards))
	}
	if stats.RecentBoards[0].ReferenceDate != "2026-03-10" {
		t.Errorf("摘要基准日不符: %s", stats.RecentBoards[0].ReferenceDate)
	}
}
