package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"planning-board/backend/config"
)

// ── 测试辅助 ──

func setupImportService(t *testing.T) (*ImportService, *mockRepos) {
	t.Helper()
	mocks := newMockRepository()
	cfg := &config.UploadConfig{
		Dir:       t.TempDir(),
		MaxSizeMB: 10,
	}
	svc := NewImportService(mocks.aggregate(), nil, cfg, zap.NewNop())
	return svc, mocks
}

// buildWorkbook 在内存里构造一张最小可解析的排产表
func buildWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	set := func(cell, value string) {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			t.Fatalf("写入单元格 %s 失败: %v", cell, err)
		}
	}
	set("B2", "MEETING TIME:- 9:30 AM")
	set("C3", "DATE:-25/12/2025")
	// PULLEY ASSY LINE-1 窗口首行（行 7，A 班机型列 C）
	set("C7", "K1AB")
	set("D7", "300")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("序列化工作簿失败: %v", err)
	}
	return buf.Bytes()
}

// multipartFileHeader 把字节流包装成 multipart 上传头
func multipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("构造表单文件失败: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入表单文件失败: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/api/v1/imports", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("解析表单文件失败: %v", err)
	}
	return fh
}

// ── 导入流程 ──

func TestImportWorkbook_Success(t *testing.T) {
	svc, mocks := setupImportService(t)
	fh := multipartFileHeader(t, "plan.xlsx", buildWorkbook(t))

	outcome, err := svc.ImportWorkbook(context.Background(), fh, "", "planner01")
	if err != nil {
		t.Fatalf("导入应成功: %v", err)
	}

	if outcome.Board.BoardID == "" {
		t.Error("应新建看板")
	}
	if outcome.Board.ReferenceDate.Format("2006-01-02") != "2025-12-25" {
		t.Errorf("基准日应取自表内日期，实际 %v", outcome.Board.ReferenceDate)
	}
	if outcome.Board.MeetingTime == nil || *outcome.Board.MeetingTime != "09:30" {
		t.Errorf("会议时间应为 09:30，实际 %v", outcome.Board.MeetingTime)
	}
	if !outcome.Record.Processed {
		t.Error("导入记录应标记为已处理")
	}
	if outcome.Record.UploadedBy != "planner01" {
		t.Errorf("上传人应为 planner01，实际 %q", outcome.Record.UploadedBy)
	}
	if outcome.Extraction.Sections["shift_lines"] == 0 {
		t.Error("应至少落一条产线记录")
	}

	// 文件应落盘
	if _, err := os.Stat(outcome.Record.FilePath); err != nil {
		t.Errorf("上传文件应保留在磁盘: %v", err)
	}
	if filepath.Ext(outcome.Record.FilePath) != ".xlsx" {
		t.Errorf("落盘文件应为 .xlsx，实际 %s", outcome.Record.FilePath)
	}

	lines, _ := mocks.lines.ListByBoard(context.Background(), outcome.Board.BoardID)
	if len(lines) == 0 {
		t.Error("产线记录应落库")
	}
}

func TestImportWorkbook_AppendToExistingBoard(t *testing.T) {
	svc, mocks := setupImportService(t)

	// 先导入一次建板
	first, err := svc.ImportWorkbook(context.Background(), multipartFileHeader(t, "a.xlsx", buildWorkbook(t)), "", "")
	if err != nil {
		t.Fatalf("首次导入应成功: %v", err)
	}
	firstLines, _ := mocks.lines.ListByBoard(context.Background(), first.Board.BoardID)

	// 对同一看板重复导入：记录只追加，不去重
	second, err := svc.ImportWorkbook(context.Background(), multipartFileHeader(t, "b.xlsx", buildWorkbook(t)), first.Board.BoardID, "")
	if err != nil {
		t.Fatalf("重复导入应成功: %v", err)
	}
	if second.Board.BoardID != first.Board.BoardID {
		t.Errorf("应复用已有看板，实际新建了 %s", second.Board.BoardID)
	}

	boards, _ := mocks.boards.Count(context.Background())
	if boards != 1 {
		t.Errorf("看板数应仍为 1，实际 %d", boards)
	}
	secondLines, _ := mocks.lines.ListByBoard(context.Background(), first.Board.BoardID)
	if len(secondLines) != 2*len(firstLines) {
		t.Errorf("重复导入应追加产线记录：首次 %d 条，现在 %d 条", len(firstLines), len(secondLines))
	}
}

func TestImportWorkbook_RejectBadExtension(t *testing.T) {
	svc, _ := setupImportService(t)
	fh := multipartFileHeader(t, "plan.csv", []byte("a,b,c"))

	_, err := svc.ImportWorkbook(context.Background(), fh, "", "")
	if !errors.Is(err, ErrImportFileType) {
		t.Errorf("期望 ErrImportFileType，实际: %v", err)
	}
}

func TestImportWorkbook_RejectNilFile(t *testing.T) {
	svc, _ := setupImportService(t)
	if _, err := svc.ImportWorkbook(context.Background(), nil, "", ""); !errors.Is(err, ErrImportFileEmpty) {
		t.Errorf("期望 ErrImportFileEmpty，实际: %v", err)
	}
}

func TestImportWorkbook_CorruptFile_RollsBackBoard(t *testing.T) {
	svc, mocks := setupImportService(t)
	fh := multipartFileHeader(t, "broken.xlsx", []byte("this is not a zip archive"))

	_, err := svc.ImportWorkbook(context.Background(), fh, "", "")
	if !errors.Is(err, ErrImportOpenFailed) {
		t.Fatalf("期望 ErrImportOpenFailed，实际: %v", err)
	}

	boards, _ := mocks.boards.Count(context.Background())
	if boards != 0 {
		t.Errorf("硬失败应回滚新建的看板，实际残留 %d 块", boards)
	}
}

func TestImportWorkbook_TooLarge(t *testing.T) {
	mocks := newMockRepository()
	cfg := &config.UploadConfig{Dir: t.TempDir(), MaxSizeMB: 1}
	svc := NewImportService(mocks.aggregate(), nil, cfg, zap.NewNop())

	big := make([]byte, 2*1024*1024)
	fh := multipartFileHeader(t, "huge.xlsx", big)

	if _, err := svc.ImportWorkbook(context.Background(), fh, "", ""); !errors.Is(err, ErrImportFileTooLarge) {
		t.Errorf("期望 ErrImportFileTooLarge，实际: %v", err)
	}
}

// ── 导入记录列表 ──

func TestListImports_Pagination(t *testing.T) {
	svc, _ := setupImportService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.ImportWorkbook(context.Background(), multipartFileHeader(t, "p.xlsx", buildWorkbook(t)), "", ""); err != nil {
			t.Fatalf("准备导入记录失败: %v", err)
		}
	}

	records, total, err := svc.ListImports(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ListImports 应成功: %v", err)
	}
	if total != 3 {
		t.Errorf("总数应为 3，实际 %d", total)
	}
	if len(records) != 2 {
		t.Errorf("首页应返回 2 条，实际 %d", len(records))
	}
}

// ── 工作簿网格 ──

func TestOpenWorkbookGrid_RoundTrip(t *testing.T) {
	data := buildWorkbook(t)
	grid, err := OpenWorkbookGrid(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("打开工作簿应成功: %v", err)
	}

	if got := coerceString(grid.Cell(2, 2)); got != "MEETING TIME:- 9:30 AM" {
		t.Errorf("B2 读取不符: %q", got)
	}
	// 纯数字文本应按数值单元格处理
	if c := grid.Cell(7, 4); c.Kind != CellNumber || c.Num != 300 {
		t.Errorf("D7 应为数值 300，实际 %+v", c)
	}
	// 越界读取返回空单元格
	if c := grid.Cell(999, 999); c.Kind != CellEmpty {
		t.Errorf("越界读取应返回空单元格，实际 %+v", c)
	}
}

func TestOpenWorkbookGrid_NativeDateCells(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetCellValue(sheet, "C3", time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("写入日期单元格失败: %v", err)
	}
	if err := f.SetCellValue(sheet, "E5", time.Date(2025, 12, 26, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("写入日期时刻单元格失败: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("序列化工作簿失败: %v", err)
	}

	grid, err := OpenWorkbookGrid(&buf)
	if err != nil {
		t.Fatalf("打开工作簿应成功: %v", err)
	}

	// 原生日期格不应退化为 "12-26-25" 这类两位年份文本
	c := grid.Cell(3, 3)
	if c.Kind != CellDate {
		t.Fatalf("C3 应为日期单元格，实际 %+v", c)
	}
	if d := coerceDate(c); d == nil || d.Format("2006-01-02") != "2025-12-26" {
		t.Errorf("C3 日期应为 2025-12-26，实际 %v", d)
	}

	c = grid.Cell(5, 5)
	if c.Kind != CellDateTime {
		t.Fatalf("E5 应为日期时刻单元格，实际 %+v", c)
	}
	dt := coerceDateTime(c)
	if dt == nil {
		t.Fatal("E5 应能转换为日期时刻")
	}
	if dt.Format(DisplayDateTimeLayout) != "26/12/2025 10:00" {
		t.Errorf("E5 日期时刻不符: %v", dt)
	}
}

func TestOpenWorkbookGrid_Corrupt(t *testing.T) {
	if _, err := OpenWorkbookGrid(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Error("损坏的字节流应返回错误")
	}
}
