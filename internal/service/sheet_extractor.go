package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"planning-board/backend/internal/model"
	"planning-board/backend/internal/repository"
)

// ── 排产表解析器 ────────────────────────────────────────────
//
// 职责：把一张车间排产 Excel（行×列网格）解析为挂在 Board 下的
// 全部子记录。模板布局基本固定但有漂移，解析策略分两类：
//
//   - 固定坐标段（当日产线三班次）：每条产线有配置好的
//     (起始行, 行数) 窗口，逐行扫描判定"有效数据行"
//   - 关键字定位段（关键零件、类别别/客户别计划、其他信息）：
//     全表扫描找到关键字所在行，再按段配置的固定列偏移读取。
//     关键字只定位起始行，列偏移是按段身份写死的查表 —
//     客户段若不按惯例列序排布会错归属，这是模板的已知约定
//
// 错误隔离：格 > 段 > 顶层。单格转换失败退化为无值；
// 单段异常记日志后跳过，不影响其余段；只有工作簿打不开
// 这种容器级错误才向调用方返回失败。
//
// 重复导入语义：解析只追加、从不更新，对同一 Board 重跑会
// 产生重复子记录，幂等性由调用方把关。
// ─────────────────────────────────────────────────────────────

// ExtractionResult 解析结果
// Success 只反映顶层是否跑完；个别段静默失败时仍为 true，
// 具体每段落了多少条记录见 Sections 计数
type ExtractionResult struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Sections map[string]int `json:"sections"`
}

// ── 段配置（按车间模板写死的坐标） ──

// lineWindow 一条产线的固定行窗口
type lineWindow struct {
	label    string
	startRow int
	maxRows  int
}

// lineWindows 当日产线段：产线名与行窗口
var lineWindows = []lineWindow{
	{label: "CLUTCH ASSY LINE-3", startRow: 16, maxRows: 5},
	{label: "CLUTCH ASSY LINE-2", startRow: 10, maxRows: 5},
	{label: "PULLEY ASSY LINE-1", startRow: 7, maxRows: 2},
	{label: "FMD/FFD", startRow: 22, maxRows: 3},
	{label: "NEW BUSINESS", startRow: 26, maxRows: 5},
}

// 班次槽位列布局：A 班 C-H 列，B 班 I-N 列，C 班 O-S 列（无时间列）
const (
	aShiftModelCol = 3
	bShiftModelCol = 9
	cShiftModelCol = 15
)

// futurePlanConfig 前瞻计划段的列配置
type futurePlanConfig struct {
	horizon    string
	modelCol   int
	aShiftCol  int
	bShiftCol  int
	cShiftCol  int
	remarksCol int
	startRow   int
	endRow     int // 不含
}

var futurePlanConfigs = []futurePlanConfig{
	{horizon: model.HorizonNext, modelCol: 20, aShiftCol: 21, bShiftCol: 22, cShiftCol: 23, remarksCol: 24, startRow: 7, endRow: 30},
	{horizon: model.HorizonFollowing, modelCol: 25, aShiftCol: 26, bShiftCol: 27, cShiftCol: 28, remarksCol: 29, startRow: 7, endRow: 30},
}

// partColumns 零件类段的四列偏移（名称/件号/数量/备注）
type partColumns struct {
	part int
	num  int
	qty  int
	rem  int
}

// categorizedPlanColumns 类别别计划列查表（按计划类型写死）
var categorizedPlanColumns = map[string]partColumns{
	model.PlanTypeFCIN: {part: 7, num: 8, qty: 9, rem: 10},    // G-J
	model.PlanTypeIU:   {part: 11, num: 12, qty: 13, rem: 14}, // K-N
}

// customerPlanColumns 客户别计划列查表（按客户代码写死）
var customerPlanColumns = map[string]partColumns{
	"MSIL": {part: 15, num: 16, qty: 17, rem: 18}, // O-R
	"HMSI": {part: 18, num: 19, qty: 20, rem: 21}, // R-U
	"IYM":  {part: 21, num: 22, qty: 23, rem: 24}, // U-X
	"HMCL": {part: 24, num: 25, qty: 26, rem: 27}, // X-AA
}

// ── 表头噪声判定 ──

// shiftModelDenyList 产线段的表头文字（出现在机型列则该格视为噪声）
var shiftModelDenyList = map[string]bool{
	"MODEL": true, "SHIFT": true, "LINE": true, "NO.": true, "": true,
}

// futurePlanDenyList 前瞻计划段机型列的表头文字
var futurePlanDenyList = map[string]bool{
	"MODEL": true, "SHIFT": true, "REMARKS": true, "A": true, "B": true, "C": true,
	"PLAN": true, "ASSY": true, "DAY": true, "TOMORROW": true, "NEXT": true,
}

// criticalHeaderDenyList 关键零件段名称列的表头文字
var criticalHeaderDenyList = map[string]bool{
	"PART NAME": true, "PART": true, "NAME": true, "SUPPLIER": true,
	"QTY": true, "QUANTITY": true,
}

// partHeaderDenyList 类别别/客户别计划名称列的表头文字
var partHeaderDenyList = map[string]bool{
	"PART NAME": true, "PART": true, "NAME": true, "SUPPLIER": true,
}

// miscHeaderDenyList 其他信息段名称列的表头文字
var miscHeaderDenyList = map[string]bool{
	"PART NAME": true, "PART": true, "NAME": true,
}

// minPartNameLen 零件类段名称列的最小长度，短于它按噪声跳过
const minPartNameLen = 2

// SheetExtractor 排产表解析器
// 一次解析对应一张网格和一个 Board，子记录逐条流式落库
type SheetExtractor struct {
	grid   Grid
	board  *model.Board
	repo   *repository.Repository
	logger *zap.Logger

	sections map[string]int
}

// NewSheetExtractor 创建解析器
func NewSheetExtractor(grid Grid, board *model.Board, repo *repository.Repository, logger *zap.Logger) *SheetExtractor {
	return &SheetExtractor{
		grid:     grid,
		board:    board,
		repo:     repo,
		logger:   logger,
		sections: make(map[string]int),
	}
}

// Extract 执行全部子段的解析
// 各子段互相隔离：一段失败记日志后继续下一段，不影响返回值
func (e *SheetExtractor) Extract(ctx context.Context) ExtractionResult {
	e.runStage(ctx, "board_info", e.extractBoardInfo)
	e.runStage(ctx, "shift_lines", e.extractShiftLines)
	e.runStage(ctx, "future_plans", e.extractFuturePlans)
	e.runStage(ctx, "keyword_sections", e.extractKeywordSections)

	return ExtractionResult{
		Success:  true,
		Message:  "排产表解析完成",
		Sections: e.sections,
	}
}

// runStage 子段隔离边界：捕获 error 与 panic，只记日志
func (e *SheetExtractor) runStage(ctx context.Context, name string, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("解析子段异常中止",
				zap.String("stage", name),
				zap.Any("panic", r),
			)
		}
	}()

	if err := fn(ctx); err != nil {
		e.logger.Error("解析子段失败",
			zap.String("stage", name),
			zap.Error(err),
		)
	}
}

// ════════════════════════════════════════════════════════════
// 子段 1：看板元信息（会议时间 / 标题 / 三个日期）
// ════════════════════════════════════════════════════════════
//
// B2 会议时间、C2 标题、C3/T3/Y3 日期。
// 日期按"解析成功的顺序"依次赋给基准日/次日/后日 —
// 即中间某格解析失败时后续日期会整体前移。这是对模板
// 历史行为的如实保留，不是按格位赋值。

func (e *SheetExtractor) extractBoardInfo(ctx context.Context) error {
	// 会议时间：B2 中第一个合法 HH:MM 子串
	if clock := searchClock(coerceString(e.grid.Cell(2, 2))); clock != nil {
		e.board.MeetingTime = clock
	}

	// 标题：C2 非空则原样覆盖
	if title := coerceString(e.grid.Cell(2, 3)); title != "" {
		e.board.Title = title
	}

	// 日期：C3 / T3 / Y3，按解析成功顺序位置赋值
	dateCols := []int{3, 20, 25}
	var dates []time.Time
	for _, col := range dateCols {
		if d := coerceDate(e.grid.Cell(3, col)); d != nil {
			dates = append(dates, *d)
		}
	}
	if len(dates) >= 1 {
		e.board.ReferenceDate = dates[0]
	}
	if len(dates) >= 2 {
		e.board.NextDate = dates[1]
	}
	if len(dates) >= 3 {
		e.board.FollowingDate = dates[2]
	}

	if err := e.repo.Board.Update(ctx, e.board); err != nil {
		return fmt.Errorf("更新看板元信息失败: %w", err)
	}
	e.sections["board_info"] = 1
	return nil
}

// ════════════════════════════════════════════════════════════
// 子段 2：当日产线三班次（固定坐标段）
// ════════════════════════════════════════════════════════════

// shiftSlot 一个班次槽位的原始读取结果
type shiftSlot struct {
	model      string
	plan       *int
	actual     *int
	planChange *int
	startTime  *string // C 班无
	remarks    string
}

// shiftRow 一个数据行的三个班次槽位
type shiftRow struct {
	a, b, c shiftSlot
}

func (e *SheetExtractor) extractShiftLines(ctx context.Context) error {
	for _, win := range lineWindows {
		if err := e.extractLineWindow(ctx, win); err != nil {
			// 单条产线失败不拖垮其余产线
			e.logger.Warn("产线窗口解析失败",
				zap.String("line", win.label),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (e *SheetExtractor) extractLineWindow(ctx context.Context, win lineWindow) error {
	var entries []shiftRow
	for offset := 0; offset < win.maxRows; offset++ {
		row := e.readShiftRow(win.startRow + offset)
		if isMeaningfulShiftRow(row) {
			entries = append(entries, row)
		}
	}

	if len(entries) == 0 {
		// 零有效行也要占位一条空记录，保住产线在大屏上的位置
		line := &model.ShiftLine{
			BoardID:   e.board.BoardID,
			LineLabel: win.label,
		}
		if err := e.repo.ShiftLine.Create(ctx, line); err != nil {
			return fmt.Errorf("创建占位产线记录失败: %w", err)
		}
		e.sections["shift_lines"]++
		return nil
	}

	for i, entry := range entries {
		label := win.label
		if i > 0 {
			label = fmt.Sprintf("%s - Entry %d", win.label, i+1)
		}
		line := &model.ShiftLine{
			BoardID:   e.board.BoardID,
			LineLabel: label,

			AShiftModel:      entry.a.model,
			AShiftPlan:       entry.a.plan,
			AShiftActual:     entry.a.actual,
			AShiftPlanChange: entry.a.planChange,
			AShiftTime:       entry.a.startTime,
			AShiftRemarks:    entry.a.remarks,

			BShiftModel:      entry.b.model,
			BShiftPlan:       entry.b.plan,
			BShiftActual:     entry.b.actual,
			BShiftPlanChange: entry.b.planChange,
			BShiftTime:       entry.b.startTime,
			BShiftRemarks:    entry.b.remarks,

			CShiftModel:      entry.c.model,
			CShiftPlan:       entry.c.plan,
			CShiftActual:     entry.c.actual,
			CShiftPlanChange: entry.c.planChange,
			CShiftRemarks:    entry.c.remarks,
		}
		if err := e.repo.ShiftLine.Create(ctx, line); err != nil {
			return fmt.Errorf("创建产线记录失败 (%s): %w", label, err)
		}
		e.sections["shift_lines"]++
	}
	return nil
}

// readShiftRow 按班次槽位列布局读取一整行
func (e *SheetExtractor) readShiftRow(row int) shiftRow {
	return shiftRow{
		a: shiftSlot{
			model:      coerceString(e.grid.Cell(row, aShiftModelCol)),
			plan:       coerceInt(e.grid.Cell(row, aShiftModelCol+1)),
			actual:     coerceInt(e.grid.Cell(row, aShiftModelCol+2)),
			planChange: coerceInt(e.grid.Cell(row, aShiftModelCol+3)),
			startTime:  coerceClock(e.grid.Cell(row, aShiftModelCol+4)),
			remarks:    coerceString(e.grid.Cell(row, aShiftModelCol+5)),
		},
		b: shiftSlot{
			model:      coerceString(e.grid.Cell(row, bShiftModelCol)),
			plan:       coerceInt(e.grid.Cell(row, bShiftModelCol+1)),
			actual:     coerceInt(e.grid.Cell(row, bShiftModelCol+2)),
			planChange: coerceInt(e.grid.Cell(row, bShiftModelCol+3)),
			startTime:  coerceClock(e.grid.Cell(row, bShiftModelCol+4)),
			remarks:    coerceString(e.grid.Cell(row, bShiftModelCol+5)),
		},
		c: shiftSlot{
			model:      coerceString(e.grid.Cell(row, cShiftModelCol)),
			plan:       coerceInt(e.grid.Cell(row, cShiftModelCol+1)),
			actual:     coerceInt(e.grid.Cell(row, cShiftModelCol+2)),
			planChange: coerceInt(e.grid.Cell(row, cShiftModelCol+3)),
			remarks:    coerceString(e.grid.Cell(row, cShiftModelCol+4)),
		},
	}
}

// isMeaningfulShiftRow 数据行判定：
// 任一班次的机型列非空且不在表头噪声清单内（大小写不敏感）
func isMeaningfulShiftRow(row shiftRow) bool {
	for _, slot := range []shiftSlot{row.a, row.b, row.c} {
		m := strings.ToUpper(strings.TrimSpace(slot.model))
		if m != "" && !shiftModelDenyList[m] {
			return true
		}
	}
	return false
}

// ════════════════════════════════════════════════════════════
// 子段 3：前瞻装配计划（次日 / 后日，固定列）
// ════════════════════════════════════════════════════════════

func (e *SheetExtractor) extractFuturePlans(ctx context.Context) error {
	for _, cfg := range futurePlanConfigs {
		if err := e.extractFuturePlan(ctx, cfg); err != nil {
			e.logger.Warn("前瞻计划段解析失败",
				zap.String("horizon", cfg.horizon),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (e *SheetExtractor) extractFuturePlan(ctx context.Context, cfg futurePlanConfig) error {
	for row := cfg.startRow; row < cfg.endRow; row++ {
		name := coerceString(e.grid.Cell(row, cfg.modelCol))
		if len(name) <= 1 {
			continue
		}
		if futurePlanDenyList[strings.ToUpper(name)] {
			continue
		}

		// 导入路径数量缺省为 0（手工录入允许留空，导入不允许）
		aShift := intOrZero(e.grid.Cell(row, cfg.aShiftCol))
		bShift := intOrZero(e.grid.Cell(row, cfg.bShiftCol))
		cShift := intOrZero(e.grid.Cell(row, cfg.cShiftCol))

		plan := &model.FuturePlan{
			BoardID: e.board.BoardID,
			Horizon: cfg.horizon,
			Model:   name,
			AShift:  &aShift,
			BShift:  &bShift,
			CShift:  &cShift,
			Remarks: coerceString(e.grid.Cell(row, cfg.remarksCol)),
		}
		if err := e.repo.FuturePlan.Create(ctx, plan); err != nil {
			return fmt.Errorf("创建前瞻计划失败 (%s): %w", name, err)
		}
		e.sections["future_plans_"+cfg.horizon]++
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// 子段 4：关键字定位段
// ════════════════════════════════════════════════════════════
//
// 关键字在全表内找不到时整段跳过 — 不是错误，也不落默认值。

func (e *SheetExtractor) extractKeywordSections(ctx context.Context) error {
	if row, ok := e.findSectionRow("CRITICAL"); ok {
		e.runSection(ctx, "critical_parts", func(ctx context.Context) error {
			return e.extractCriticalParts(ctx, row)
		})
	}
	if row, ok := e.findSectionRow("FCIN"); ok {
		e.runSection(ctx, "categorized_FCIN", func(ctx context.Context) error {
			return e.extractCategorizedPlans(ctx, row, model.PlanTypeFCIN)
		})
	}
	if row, ok := e.findSectionRow("I/U"); ok {
		e.runSection(ctx, "categorized_IU", func(ctx context.Context) error {
			return e.extractCategorizedPlans(ctx, row, model.PlanTypeIU)
		})
	}
	for _, customer := range model.Customers {
		if row, ok := e.findSectionRow(customer); ok {
			cust := customer
			e.runSection(ctx, "customer_"+cust, func(ctx context.Context) error {
				return e.extractCustomerPlans(ctx, row, cust)
			})
		}
	}
	if row, ok := e.findSectionRow("OTHER"); ok {
		e.runSection(ctx, "misc_items", func(ctx context.Context) error {
			return e.extractMiscItems(ctx, row)
		})
	}
	return nil
}

// runSection 段级隔离：失败只记日志，继续其余段
func (e *SheetExtractor) runSection(ctx context.Context, name string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		e.logger.Warn("关键字段解析失败",
			zap.String("section", name),
			zap.Error(err),
		)
	}
}

// findSectionRow 全表行优先扫描，大小写不敏感子串匹配，首个命中行生效
func (e *SheetExtractor) findSectionRow(keyword string) (int, bool) {
	upper := strings.ToUpper(keyword)
	rows, cols := e.grid.Bounds()
	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			v := coerceString(e.grid.Cell(row, col))
			if v != "" && strings.Contains(strings.ToUpper(v), upper) {
				return row, true
			}
		}
	}
	return 0, false
}

// extractCriticalParts 关键零件段：表头行下 2 行起，扫 23 行
// 列布局 B-F：零件名 / 供应商 / 计划量 / 到货时间 / 备注
func (e *SheetExtractor) extractCriticalParts(ctx context.Context, headerRow int) error {
	for row := headerRow + 2; row < headerRow+25; row++ {
		name := coerceString(e.grid.Cell(row, 2))
		if name == "" || criticalHeaderDenyList[strings.ToUpper(name)] {
			continue
		}
		if len(name) <= minPartNameLen {
			continue
		}

		part := &model.CriticalPart{
			BoardID:       e.board.BoardID,
			PartName:      name,
			Supplier:      coerceString(e.grid.Cell(row, 3)),
			PlanQty:       intOrZero(e.grid.Cell(row, 4)),
			ReceivingTime: coerceDateTime(e.grid.Cell(row, 5)),
			Remarks:       coerceString(e.grid.Cell(row, 6)),
		}
		if err := e.repo.CriticalPart.Create(ctx, part); err != nil {
			return fmt.Errorf("创建关键零件记录失败 (%s): %w", name, err)
		}
		e.sections["critical_parts"]++
	}
	return nil
}

// extractCategorizedPlans 类别别计划段：表头行下 3 行起，扫 22 行
func (e *SheetExtractor) extractCategorizedPlans(ctx context.Context, headerRow int, planType string) error {
	cols := categorizedPlanColumns[planType]
	for row := headerRow + 3; row < headerRow+25; row++ {
		name := coerceString(e.grid.Cell(row, cols.part))
		if name == "" || partHeaderDenyList[strings.ToUpper(name)] {
			continue
		}
		if len(name) <= minPartNameLen {
			continue
		}

		plan := &model.CategorizedPartPlan{
			BoardID:    e.board.BoardID,
			PlanType:   planType,
			PartName:   name,
			PartNumber: coerceString(e.grid.Cell(row, cols.num)),
			PlanQty:    intOrZero(e.grid.Cell(row, cols.qty)),
			Remarks:    coerceString(e.grid.Cell(row, cols.rem)),
		}
		if err := e.repo.CategorizedPlan.Create(ctx, plan); err != nil {
			return fmt.Errorf("创建类别别计划失败 (%s): %w", name, err)
		}
		e.sections["categorized_"+planType]++
	}
	return nil
}

// extractCustomerPlans 客户别计划段：表头行下 2 行起，扫 28 行
// 列偏移按客户代码查表，与关键字实际出现的列无关
func (e *SheetExtractor) extractCustomerPlans(ctx context.Context, headerRow int, customer string) error {
	cols := customerPlanColumns[customer]
	for row := headerRow + 2; row < headerRow+30; row++ {
		name := coerceString(e.grid.Cell(row, cols.part))
		if name == "" || partHeaderDenyList[strings.ToUpper(name)] {
			continue
		}
		if len(name) <= minPartNameLen {
			continue
		}

		plan := &model.CustomerPartPlan{
			BoardID:    e.board.BoardID,
			Customer:   customer,
			PartName:   name,
			PartNumber: coerceString(e.grid.Cell(row, cols.num)),
			PlanQty:    intOrZero(e.grid.Cell(row, cols.qty)),
			Remarks:    coerceString(e.grid.Cell(row, cols.rem)),
		}
		if err := e.repo.CustomerPlan.Create(ctx, plan); err != nil {
			return fmt.Errorf("创建客户别计划失败 (%s/%s): %w", customer, name, err)
		}
		e.sections["customer_"+customer]++
	}
	return nil
}

// extractMiscItems 其他信息段：表头行下 2 行起，扫 23 行
// 列布局 AA-AD：名称 / 数量 / 目标日期 / 备注
// 目标日期是必填字段，单元格解析失败时落当天
func (e *SheetExtractor) extractMiscItems(ctx context.Context, headerRow int) error {
	for row := headerRow + 2; row < headerRow+25; row++ {
		name := coerceString(e.grid.Cell(row, 27))
		if name == "" || miscHeaderDenyList[strings.ToUpper(name)] {
			continue
		}
		if len(name) <= minPartNameLen {
			continue
		}

		targetDate := coerceDate(e.grid.Cell(row, 29))
		if targetDate == nil {
			today := truncateToDate(time.Now().In(plantLocation()))
			targetDate = &today
		}

		item := &model.MiscItem{
			BoardID:    e.board.BoardID,
			PartName:   name,
			Qty:        intOrZero(e.grid.Cell(row, 28)),
			TargetDate: *targetDate,
			Remarks:    coerceString(e.grid.Cell(row, 30)),
		}
		if err := e.repo.MiscItem.Create(ctx, item); err != nil {
			return fmt.Errorf("创建其他信息条目失败 (%s): %w", name, err)
		}
		e.sections["misc_items"]++
	}
	return nil
}
