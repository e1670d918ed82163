package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ── 工作表网格抽象 ──────────────────────────────────────────
//
// 导入解析只关心"第 r 行第 c 列是什么值"，不关心文件格式细节。
// Grid 把工作簿抽象成 1 起始的二维单元格网格：
//   - 越界读取返回空单元格，永远不报错（车间模板行列数不固定）
//   - excelize 实现只读取计算后的值（values-only），不碰公式
//   - 测试用 MemGrid 直接构造带类型的单元格
// ─────────────────────────────────────────────────────────────

// CellKind 单元格值类型
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellTime     // 仅时刻（无日期）
	CellDate     // 仅日期（无时刻）
	CellDateTime // 日期+时刻
)

// Cell 单元格值（带类型标签的联合体）
type Cell struct {
	Kind CellKind
	Str  string    // CellString
	Num  float64   // CellNumber
	Time time.Time // CellTime / CellDate / CellDateTime
}

// Grid 1 起始的二维单元格网格
type Grid interface {
	// Cell 读取 (row, col) 单元格；越界返回空单元格
	Cell(row, col int) Cell
	// Bounds 返回网格的行列上界（用于关键字全表扫描）
	Bounds() (rows, cols int)
}

// ── excelize 实现 ──

type xlsxGrid struct {
	rows  [][]string      // GetRows 的快照，后续只做内存访问
	typed map[[2]int]Cell // 日期/时刻样式单元格的类型化覆盖
}

// OpenWorkbookGrid 以 values-only 模式打开工作簿的活动工作表
// 容器级打开失败（文件损坏、格式不对）是唯一向上传播的硬错误
func OpenWorkbookGrid(r io.Reader) (Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, fmt.Errorf("工作簿无有效工作表")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	g := &xlsxGrid{rows: rows, typed: make(map[[2]int]Cell)}
	g.overlayTimeCells(f, sheet)
	return g, nil
}

// overlayTimeCells 把日期/时刻样式的单元格还原为类型化值。
// GetRows 只给出按数字格式渲染后的文本（原生日期格会变成
// "12-26-25" 这类两位年份文本，无法可靠回析），所以这里按
// 单元格样式识别日期格，改取原始序列值换算成 time.Time。
func (g *xlsxGrid) overlayTimeCells(f *excelize.File, sheet string) {
	styleIsDate := make(map[int]bool)
	for ri, row := range g.rows {
		for ci, raw := range row {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				continue
			}
			styleID, err := f.GetCellStyle(sheet, axis)
			if err != nil {
				continue
			}
			dated, seen := styleIsDate[styleID]
			if !seen {
				dated = isDateStyle(f, styleID)
				styleIsDate[styleID] = dated
			}
			if !dated {
				continue
			}
			rawVal, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
			if err != nil {
				continue
			}
			serial, err := strconv.ParseFloat(strings.TrimSpace(rawVal), 64)
			if err != nil {
				continue // 日期样式但存的是文本，保留渲染文本
			}
			t, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				continue
			}
			cell := Cell{Kind: CellDateTime, Time: t}
			switch {
			case serial < 1: // 纯小数：只有时刻
				cell.Kind = CellTime
			case serial == float64(int64(serial)): // 整数：只有日期
				cell.Kind = CellDate
			}
			g.typed[[2]int{ri + 1, ci + 1}] = cell
		}
	}
}

// isDateStyle 判定样式是否为日期/时刻数字格式
// 内建编号 14-22（日期、时刻、日期时刻）与 45-47（时长），
// 自定义格式看是否含年/日/时占位符
func isDateStyle(f *excelize.File, styleID int) bool {
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if (style.NumFmt >= 14 && style.NumFmt <= 22) || (style.NumFmt >= 45 && style.NumFmt <= 47) {
		return true
	}
	if style.CustomNumFmt == nil {
		return false
	}
	return strings.ContainsAny(strings.ToLower(*style.CustomNumFmt), "ydh")
}

func (g *xlsxGrid) Cell(row, col int) Cell {
	if c, ok := g.typed[[2]int{row, col}]; ok {
		return c
	}
	if row < 1 || col < 1 || row > len(g.rows) {
		return Cell{}
	}
	r := g.rows[row-1]
	if col > len(r) {
		return Cell{}
	}
	raw := r[col-1]
	if strings.TrimSpace(raw) == "" {
		return Cell{}
	}
	// excelize 返回格式化后的文本；纯数字文本按数值单元格处理
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return Cell{Kind: CellNumber, Num: n}
	}
	return Cell{Kind: CellString, Str: raw}
}

func (g *xlsxGrid) Bounds() (int, int) {
	maxCol := 0
	for _, r := range g.rows {
		if len(r) > maxCol {
			maxCol = len(r)
		}
	}
	return len(g.rows), maxCol
}

// ── 内存实现（测试与小工具用） ──

// MemGrid 内存网格，按 (row, col) 直接放置带类型的单元格
type MemGrid struct {
	cells  map[[2]int]Cell
	maxRow int
	maxCol int
}

// NewMemGrid 创建空内存网格
func NewMemGrid() *MemGrid {
	return &MemGrid{cells: make(map[[2]int]Cell)}
}

func (g *MemGrid) set(row, col int, c Cell) {
	g.cells[[2]int{row, col}] = c
	if row > g.maxRow {
		g.maxRow = row
	}
	if col > g.maxCol {
		g.maxCol = col
	}
}

// SetString 放置文本单元格
func (g *MemGrid) SetString(row, col int, s string) {
	g.set(row, col, Cell{Kind: CellString, Str: s})
}

// SetNumber 放置数值单元格
func (g *MemGrid) SetNumber(row, col int, n float64) {
	g.set(row, col, Cell{Kind: CellNumber, Num: n})
}

// SetTime 放置时刻单元格
func (g *MemGrid) SetTime(row, col int, t time.Time) {
	g.set(row, col, Cell{Kind: CellTime, Time: t})
}

// SetDate 放置日期单元格
func (g *MemGrid) SetDate(row, col int, t time.Time) {
	g.set(row, col, Cell{Kind: CellDate, Time: t})
}

// SetDateTime 放置日期时刻单元格
func (g *MemGrid) SetDateTime(row, col int, t time.Time) {
	g.set(row, col, Cell{Kind: CellDateTime, Time: t})
}

func (g *MemGrid) Cell(row, col int) Cell {
	return g.cells[[2]int{row, col}]
}

func (g *MemGrid) Bounds() (int, int) {
	return g.maxRow, g.maxCol
}
