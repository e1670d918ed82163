package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planning-board/backend/internal/model"
	"planning-board/backend/internal/repository"
)

// newMockRepository 构造全部族使用内存 Mock 的 Repository 聚合
func newMockRepository() *mockRepos {
	boards := newMockBoardRepo()
	lines := newMockShiftLineRepo()
	futures := newMockFuturePlanRepo()
	criticals := newMockCriticalPartRepo()
	categorized := newMockCategorizedPlanRepo()
	customers := newMockCustomerPlanRepo()
	miscs := newMockMiscItemRepo()
	imports := newMockImportRecordRepo()

	return &mockRepos{
		boards:      boards,
		lines:       lines,
		futures:     futures,
		criticals:   criticals,
		categorized: categorized,
		customers:   customers,
		miscs:       miscs,
		imports:     imports,
	}
}

type mockRepos struct {
	boards      *mockBoardRepo
	lines       *mockShiftLineRepo
	futures     *mockFuturePlanRepo
	criticals   *mockCriticalPartRepo
	categorized *mockCategorizedPlanRepo
	customers   *mockCustomerPlanRepo
	miscs       *mockMiscItemRepo
	imports     *mockImportRecordRepo
}

// aggregate 组装服务层依赖的 Repository 聚合
func (m *mockRepos) aggregate() *repository.Repository {
	return &repository.Repository{
		Board:           m.boards,
		ShiftLine:       m.lines,
		FuturePlan:      m.futures,
		CriticalPart:    m.criticals,
		CategorizedPlan: m.categorized,
		CustomerPlan:    m.customers,
		MiscItem:        m.miscs,
		ImportRecord:    m.imports,
	}
}

// ── Mock BoardRepository ──

type mockBoardRepo struct {
	boards map[string]*model.Board
	seq    int
}

func newMockBoardRepo() *mockBoardRepo {
	return &mockBoardRepo{boards: make(map[string]*model.Board)}
}

func (m *mockBoardRepo) Create(_ context.Context, board *model.Board) error {
	if board.BoardID == "" {
		m.seq++
		board.BoardID = fmt.Sprintf("board-%03d", m.seq)
	}
	m.boards[board.BoardID] = board
	return nil
}

func (m *mockBoardRepo) GetByID(_ context.Context, id string) (*model.Board, error) {
	if b, ok := m.boards[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoardRepo) GetDetail(ctx context.Context, id string) (*model.Board, error) {
	return m.GetByID(ctx, id)
}

func (m *mockBoardRepo) List(_ context.Context, offset, limit int) ([]model.Board, int64, error) {
	var result []model.Board
	for _, b := range m.boards {
		result = append(result, *b)
	}
	total := int64(len(result))
	if offset > len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockBoardRepo) ListRecent(_ context.Context, limit int) ([]model.Board, error) {
	var result []model.Board
	for _, b := range m.boards {
		if len(result) >= limit {
			break
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBoardRepo) Update(_ context.Context, board *model.Board) error {
	if _, ok := m.boards[board.BoardID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.boards[board.BoardID] = board
	return nil
}

func (m *mockBoardRepo) Delete(_ context.Context, id string) error {
	delete(m.boards, id)
	return nil
}

func (m *mockBoardRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.boards)), nil
}

// ── Mock ShiftLineRepository ──

type mockShiftLineRepo struct {
	lines map[string]*model.ShiftLine
	order []string // 保持创建顺序，便于断言
	seq   int
}

func newMockShiftLineRepo() *mockShiftLineRepo {
	return &mockShiftLineRepo{lines: make(map[string]*model.ShiftLine)}
}

func (m *mockShiftLineRepo) Create(_ context.Context, line *model.ShiftLine) error {
	if line.ShiftLineID == "" {
		m.seq++
		line.ShiftLineID = fmt.Sprintf("line-%03d", m.seq)
	}
	m.lines[line.ShiftLineID] = line
	m.order = append(m.order, line.ShiftLineID)
	return nil
}

func (m *mockShiftLineRepo) GetByID(_ context.Context, id string) (*model.ShiftLine, error) {
	if l, ok := m.lines[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftLineRepo) ListByBoard(_ context.Context, boardID string) ([]model.ShiftLine, error) {
	var result []model.ShiftLine
	for _, id := range m.order {
		if l, ok := m.lines[id]; ok && l.BoardID == boardID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockShiftLineRepo) Update(_ context.Context, line *model.ShiftLine) error {
	if _, ok := m.lines[line.ShiftLineID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.lines[line.ShiftLineID] = line
	return nil
}

func (m *mockShiftLineRepo) Delete(_ context.Context, id string) error {
	delete(m.lines, id)
	return nil
}

func (m *mockShiftLineRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.lines)), nil
}

// ── Mock FuturePlanRepository ──

type mockFuturePlanRepo struct {
	plans map[string]*model.FuturePlan
	order []string
	seq   int
}

func newMockFuturePlanRepo() *mockFuturePlanRepo {
	return &mockFuturePlanRepo{plans: make(map[string]*model.FuturePlan)}
}

func (m *mockFuturePlanRepo) Create(_ context.Context, plan *model.FuturePlan) error {
	if plan.FuturePlanID == "" {
		m.seq++
		plan.FuturePlanID = fmt.Sprintf("fp-%03d", m.seq)
	}
	m.plans[plan.FuturePlanID] = plan
	m.order = append(m.order, plan.FuturePlanID)
	return nil
}

func (m *mockFuturePlanRepo) GetByID(_ context.Context, id string) (*model.FuturePlan, error) {
	if p, ok := m.plans[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFuturePlanRepo) ListByBoard(_ context.Context, boardID string) ([]model.FuturePlan, error) {
	var result []model.FuturePlan
	for _, id := range m.order {
		if p, ok := m.plans[id]; ok && p.BoardID == boardID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockFuturePlanRepo) Update(_ context.Context, plan *model.FuturePlan) error {
	if _, ok := m.plans[plan.FuturePlanID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.plans[plan.FuturePlanID] = plan
	return nil
}

func (m *mockFuturePlanRepo) Delete(_ context.Context, id string) error {
	delete(m.plans, id)
	return nil
}

// ── Mock CriticalPartRepository ──

type mockCriticalPartRepo struct {
	parts map[string]*model.CriticalPart
	order []string
	seq   int
}

func newMockCriticalPartRepo() *mockCriticalPartRepo {
	return &mockCriticalPartRepo{parts: make(map[string]*model.CriticalPart)}
}

func (m *mockCriticalPartRepo) Create(_ context.Context, part *model.CriticalPart) error {
	if part.CriticalPartID == "" {
		m.seq++
		part.CriticalPartID = fmt.Sprintf("cp-%03d", m.seq)
	}
	m.parts[part.CriticalPartID] = part
	m.order = append(m.order, part.CriticalPartID)
	return nil
}

func (m *mockCriticalPartRepo) GetByID(_ context.Context, id string) (*model.CriticalPart, error) {
	if p, ok := m.parts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCriticalPartRepo) ListByBoard(_ context.Context, boardID string) ([]model.CriticalPart, error) {
	var result []model.CriticalPart
	for _, id := range m.order {
		if p, ok := m.parts[id]; ok && p.BoardID == boardID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockCriticalPartRepo) Update(_ context.Context, part *model.CriticalPart) error {
	if _, ok := m.parts[part.CriticalPartID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.parts[part.CriticalPartID] = part
	return nil
}

func (m *mockCriticalPartRepo) Delete(_ context.Context, id string) error {
	delete(m.parts, id)
	return nil
}

// ── Mock CategorizedPlanRepository ──

type mockCategorizedPlanRepo struct {
	plans map[string]*model.CategorizedPartPlan
	order []string
	seq   int
}

func newMockCategorizedPlanRepo() *mockCategorizedPlanRepo {
	return &mockCategorizedPlanRepo{plans: make(map[string]*model.CategorizedPartPlan)}
}

func (m *mockCategorizedPlanRepo) Create(_ context.Context, plan *model.CategorizedPartPlan) error {
	if plan.CategorizedPlanID == "" {
		m.seq++
		plan.CategorizedPlanID = fmt.Sprintf("cat-%03d", m.seq)
	}
	m.plans[plan.CategorizedPlanID] = plan
	m.order = append(m.order, plan.CategorizedPlanID)
	return nil
}

func (m *mockCategorizedPlanRepo) GetByID(_ context.Context, id string) (*model.CategorizedPartPlan, error) {
	if p, ok := m.plans[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategorizedPlanRepo) ListByBoard(_ context.Context, boardID string) ([]model.CategorizedPartPlan, error) {
	var result []model.CategorizedPartPlan
	for _, id := range m.order {
		if p, ok := m.plans[id]; ok && p.BoardID == boardID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockCategorizedPlanRepo) Update(_ context.Context, plan *model.CategorizedPartPlan) error {
	if _, ok := m.plans[plan.CategorizedPlanID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.plans[plan.CategorizedPlanID] = plan
	return nil
}

func (m *mockCategorizedPlanRepo) Delete(_ context.Context, id string) error {
	delete(m.plans, id)
	return nil
}

// ── Mock CustomerPlanRepository ──

type mockCustomerPlanRepo struct {
	plans map[string]*model.CustomerPartPlan
	order []string
	seq   int
}

func newMockCustomerPlanRepo() *mockCustomerPlanRepo {
	return &mockCustomerPlanRepo{plans: make(map[string]*model.CustomerPartPlan)}
}

func (m *mockCustomerPlanRepo) Create(_ context.Context, plan *model.CustomerPartPlan) error {
	if plan.CustomerPlanID == "" {
		m.seq++
		plan.CustomerPlanID = fmt.Sprintf("cust-%03d", m.seq)
	}
	m.plans[plan.CustomerPlanID] = plan
	m.order = append(m.order, plan.CustomerPlanID)
	return nil
}

func (m *mockCustomerPlanRepo) GetByID(_ context.Context, id string) (*model.CustomerPartPlan, error) {
	if p, ok := m.plans[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerPlanRepo) ListByBoard(_ context.Context, boardID string) ([]model.CustomerPartPlan, error) {
	var result []model.CustomerPartPlan
	for _, id := range m.order {
		if p, ok := m.plans[id]; ok && p.BoardID == boardID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockCustomerPlanRepo) Update(_ context.Context, plan *model.CustomerPartPlan) error {
	if _, ok := m.plans[plan.CustomerPlanID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.plans[plan.CustomerPlanID] = plan
	return nil
}

func (m *mockCustomerPlanRepo) Delete(_ context.Context, id string) error {
	delete(m.plans, id)
	return nil
}

// ── Mock MiscItemRepository ──

type mockMiscItemRepo struct {
	items map[string]*model.MiscItem
	order []string
	seq   int
}

func newMockMiscItemRepo() *mockMiscItemRepo {
	return &mockMiscItemRepo{items: make(map[string]*model.MiscItem)}
}

func (m *mockMiscItemRepo) Create(_ context.Context, item *model.MiscItem) error {
	if item.MiscItemID == "" {
		m.seq++
		item.MiscItemID = fmt.Sprintf("misc-%03d", m.seq)
	}
	m.items[item.MiscItemID] = item
	m.order = append(m.order, item.MiscItemID)
	return nil
}

func (m *mockMiscItemRepo) GetByID(_ context.Context, id string) (*model.MiscItem, error) {
	if i, ok := m.items[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMiscItemRepo) ListByBoard(_ context.Context, boardID string) ([]model.MiscItem, error) {
	var result []model.MiscItem
	for _, id := range m.order {
		if i, ok := m.items[id]; ok && i.BoardID == boardID {
			result = append(result, *i)
		}
	}
	return result, nil
}

func (m *mockMiscItemRepo) Update(_ context.Context, item *model.MiscItem) error {
	if _, ok := m.items[item.MiscItemID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[item.MiscItemID] = item
	return nil
}

func (m *mockMiscItemRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── Mock ImportRecordRepository ──

type mockImportRecordRepo struct {
	records map[string]*model.ImportRecord
	order   []string
	seq     int
}

func newMockImportRecordRepo() *mockImportRecordRepo {
	return &mockImportRecordRepo{records: make(map[string]*model.ImportRecord)}
}

func (m *mockImportRecordRepo) Create(_ context.Context, record *model.ImportRecord) error {
	if record.ImportRecordID == "" {
		m.seq++
		record.ImportRecordID = fmt.Sprintf("imp-%03d", m.seq)
	}
	m.records[record.ImportRecordID] = record
	m.order = append(m.order, record.ImportRecordID)
	return nil
}

func (m *mockImportRecordRepo) GetByID(_ context.Context, id string) (*model.ImportRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockImportRecordRepo) List(_ context.Context, offset, limit int) ([]model.ImportRecord, int64, error) {
	var result []model.ImportRecord
	for _, id := range m.order {
		result = append(result, *m.records[id])
	}
	total := int64(len(result))
	if offset > len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockImportRecordRepo) MarkProcessed(_ context.Context, id string) error {
	r, ok := m.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Processed = true
	return nil
}

func (m *mockImportRecordRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.records)), nil
}
