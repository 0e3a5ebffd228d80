package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"
	"minegocio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository doubles. They ignore the tx argument; runTx
// calls its body directly when the DB handle is nil.

// ── products ─────────────────────────────────────────────────────────────────

type productRepoStub struct {
	products   map[uuid.UUID]*model.Product
	referenced map[uuid.UUID]bool
}

var _ repository.ProductRepository = (*productRepoStub)(nil)

func newProductRepoStub() *productRepoStub {
	return &productRepoStub{
		products:   make(map[uuid.UUID]*model.Product),
		referenced: make(map[uuid.UUID]bool),
	}
}

func (s *productRepoStub) add(p *model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.products[p.ID] = p
	return p
}

func (s *productRepoStub) Create(_ context.Context, p *model.Product) error {
	s.add(p)
	return nil
}

func (s *productRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *productRepoStub) FindByCode(_ context.Context, code string) (*model.Product, error) {
	for _, p := range s.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *productRepoStub) CodeExists(_ context.Context, code string) (bool, error) {
	for _, p := range s.products {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *productRepoStub) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range s.products {
		if filter.Q == "" || strings.Contains(p.Name, filter.Q) || strings.Contains(p.Code, filter.Q) {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (s *productRepoStub) Update(_ context.Context, p *model.Product) error {
	s.products[p.ID] = p
	return nil
}

func (s *productRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.products, id)
	return nil
}

func (s *productRepoStub) ReferencedBySaleItems(_ context.Context, id uuid.UUID) (bool, error) {
	return s.referenced[id], nil
}

func (s *productRepoStub) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := s.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock += delta
	return nil
}

func (s *productRepoStub) DB() *gorm.DB { return nil }

// ── categories ───────────────────────────────────────────────────────────────

type categoryRepoStub struct {
	categories map[uuid.UUID]*model.Category
}

var _ repository.CategoryRepository = (*categoryRepoStub)(nil)

func newCategoryRepoStub() *categoryRepoStub {
	return &categoryRepoStub{categories: make(map[uuid.UUID]*model.Category)}
}

func (s *categoryRepoStub) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.categories[c.ID] = c
	return nil
}

func (s *categoryRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *categoryRepoStub) List(_ context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, c := range s.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (s *categoryRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.categories, id)
	return nil
}

func (s *categoryRepoStub) NameExists(_ context.Context, name string) (bool, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// ── sales ────────────────────────────────────────────────────────────────────

type saleRepoStub struct {
	sales []*model.Sale
}

var _ repository.SaleRepository = (*saleRepoStub)(nil)

func newSaleRepoStub() *saleRepoStub { return &saleRepoStub{} }

func (s *saleRepoStub) CreateTx(_ *gorm.DB, sale *model.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	s.sales = append(s.sales, sale)
	return nil
}

func (s *saleRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	for _, sale := range s.sales {
		if sale.ID == id {
			return sale, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *saleRepoStub) ListRecent(_ context.Context, limit int) ([]model.Sale, error) {
	var out []model.Sale
	for i := len(s.sales) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *s.sales[i])
	}
	return out, nil
}

func (s *saleRepoStub) TotalForPeriod(_ context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, sale := range s.sales {
		if inWindow(sale.CreatedAt, start, end) {
			total += sale.Total
		}
	}
	return total, nil
}

func (s *saleRepoStub) TopProducts(_ context.Context, start, end time.Time, limit int) ([]dto.TopProduct, error) {
	totals := make(map[string]*dto.TopProduct)
	for _, sale := range s.sales {
		if !inWindow(sale.CreatedAt, start, end) {
			continue
		}
		for _, item := range sale.Items {
			tp, ok := totals[item.ProductCode]
			if !ok {
				tp = &dto.TopProduct{Code: item.ProductCode, Name: item.ProductName}
				totals[item.ProductCode] = tp
			}
			tp.Units += int64(item.Qty)
			tp.Amount += int64(item.Qty) * item.Price
		}
	}
	out := make([]dto.TopProduct, 0, len(totals))
	for _, tp := range totals {
		out = append(out, *tp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Units > out[j].Units })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *saleRepoStub) PaymentsSummaryForPeriod(_ context.Context, start, end time.Time) ([]dto.MethodTotal, error) {
	totals := make(map[string]*dto.MethodTotal)
	var order []string
	for _, sale := range s.sales {
		if !inWindow(sale.CreatedAt, start, end) {
			continue
		}
		for _, p := range sale.Payments {
			mt, ok := totals[p.Method]
			if !ok {
				mt = &dto.MethodTotal{Method: p.Method}
				totals[p.Method] = mt
				order = append(order, p.Method)
			}
			mt.Total += p.Amount
			mt.Count++
		}
	}
	out := make([]dto.MethodTotal, 0, len(order))
	for _, m := range order {
		out = append(out, *totals[m])
	}
	return out, nil
}

func (s *saleRepoStub) DB() *gorm.DB { return nil }

// ── credits ──────────────────────────────────────────────────────────────────

type creditRepoStub struct {
	credits  map[uuid.UUID]*model.Credit
	payments map[uuid.UUID][]model.CreditPayment
}

var _ repository.CreditRepository = (*creditRepoStub)(nil)

func newCreditRepoStub() *creditRepoStub {
	return &creditRepoStub{
		credits:  make(map[uuid.UUID]*model.Credit),
		payments: make(map[uuid.UUID][]model.CreditPayment),
	}
}

func (s *creditRepoStub) Create(_ context.Context, c *model.Credit) error {
	return s.CreateTx(nil, c)
}

func (s *creditRepoStub) CreateTx(_ *gorm.DB, c *model.Credit) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.credits[c.ID] = c
	return nil
}

func (s *creditRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Credit, error) {
	c, ok := s.credits[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *creditRepoStub) List(_ context.Context, q string, onlyOpen bool) ([]model.Credit, error) {
	var out []model.Credit
	for _, c := range s.credits {
		if onlyOpen && c.Closed {
			continue
		}
		if q != "" && !creditMatches(c, q) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func creditMatches(c *model.Credit, q string) bool {
	if c.Customer != nil && strings.Contains(c.Customer.Name, q) {
		return true
	}
	if c.Reference != nil && strings.Contains(*c.Reference, q) {
		return true
	}
	return c.Description != nil && strings.Contains(*c.Description, q)
}

func (s *creditRepoStub) CreatePaymentTx(_ *gorm.DB, p *model.CreditPayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.payments[p.CreditID] = append(s.payments[p.CreditID], *p)
	return nil
}

func (s *creditRepoStub) DecrementBalanceTx(_ *gorm.DB, id uuid.UUID, amount int64) error {
	c, ok := s.credits[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Balance -= amount
	return nil
}

func (s *creditRepoStub) CloseIfSettledTx(_ *gorm.DB, id uuid.UUID) error {
	c, ok := s.credits[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if c.Balance <= 0 {
		c.Closed = true
	}
	return nil
}

// ListPayments returns most-recent-first, like the real repository.
func (s *creditRepoStub) ListPayments(_ context.Context, creditID uuid.UUID) ([]model.CreditPayment, error) {
	stored := s.payments[creditID]
	out := make([]model.CreditPayment, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}

func (s *creditRepoStub) OpenBalanceTotal(_ context.Context) (int64, error) {
	var total int64
	for _, c := range s.credits {
		if !c.Closed {
			total += c.Balance
		}
	}
	return total, nil
}

func (s *creditRepoStub) CreatedTotalForPeriod(_ context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, c := range s.credits {
		if inWindow(c.CreatedAt, start, end) {
			total += c.Amount
		}
	}
	return total, nil
}

func (s *creditRepoStub) DB() *gorm.DB { return nil }

// ── debts ────────────────────────────────────────────────────────────────────

type debtRepoStub struct {
	debts    map[uuid.UUID]*model.Debt
	payments map[uuid.UUID][]model.DebtPayment
}

var _ repository.DebtRepository = (*debtRepoStub)(nil)

func newDebtRepoStub() *debtRepoStub {
	return &debtRepoStub{
		debts:    make(map[uuid.UUID]*model.Debt),
		payments: make(map[uuid.UUID][]model.DebtPayment),
	}
}

func (s *debtRepoStub) Create(_ context.Context, d *model.Debt) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	s.debts[d.ID] = d
	return nil
}

func (s *debtRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Debt, error) {
	d, ok := s.debts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *debtRepoStub) List(_ context.Context, q string, onlyOpen bool) ([]model.Debt, error) {
	var out []model.Debt
	for _, d := range s.debts {
		if onlyOpen && d.Closed {
			continue
		}
		if q != "" && !debtMatches(d, q) {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func debtMatches(d *model.Debt, q string) bool {
	if strings.Contains(d.CreditorName, q) {
		return true
	}
	return d.Description != nil && strings.Contains(*d.Description, q)
}

func (s *debtRepoStub) CreatePaymentTx(_ *gorm.DB, p *model.DebtPayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.payments[p.DebtID] = append(s.payments[p.DebtID], *p)
	return nil
}

func (s *debtRepoStub) DecrementBalanceTx(_ *gorm.DB, id uuid.UUID, amount int64) error {
	d, ok := s.debts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Balance -= amount
	return nil
}

func (s *debtRepoStub) CloseIfSettledTx(_ *gorm.DB, id uuid.UUID) error {
	d, ok := s.debts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if d.Balance <= 0 {
		d.Closed = true
	}
	return nil
}

func (s *debtRepoStub) ListPayments(_ context.Context, debtID uuid.UUID) ([]model.DebtPayment, error) {
	stored := s.payments[debtID]
	out := make([]model.DebtPayment, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}

func (s *debtRepoStub) OpenBalanceTotal(_ context.Context) (int64, error) {
	var total int64
	for _, d := range s.debts {
		if !d.Closed {
			total += d.Balance
		}
	}
	return total, nil
}

func (s *debtRepoStub) CreatedTotalForPeriod(_ context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, d := range s.debts {
		if inWindow(d.CreatedAt, start, end) {
			total += d.Amount
		}
	}
	return total, nil
}

func (s *debtRepoStub) DB() *gorm.DB { return nil }

// ── customers ────────────────────────────────────────────────────────────────

type customerRepoStub struct {
	customers map[uuid.UUID]*model.Customer
}

var _ repository.CustomerRepository = (*customerRepoStub)(nil)

func newCustomerRepoStub() *customerRepoStub {
	return &customerRepoStub{customers: make(map[uuid.UUID]*model.Customer)}
}

func (s *customerRepoStub) add(name string) *model.Customer {
	c := &model.Customer{ID: uuid.New(), Name: name}
	s.customers[c.ID] = c
	return c
}

func (s *customerRepoStub) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.customers[c.ID] = c
	return nil
}

func (s *customerRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *customerRepoStub) List(_ context.Context, q string, limit int) ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range s.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (s *customerRepoStub) Update(_ context.Context, c *model.Customer) error {
	s.customers[c.ID] = c
	return nil
}

func (s *customerRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.customers, id)
	return nil
}

// ── cashflow ─────────────────────────────────────────────────────────────────

type cashflowRepoStub struct {
	outflows    []model.Outflow
	adjustments []model.Adjustment
	paidOrders  []model.PaidOrder
}

var _ repository.CashflowRepository = (*cashflowRepoStub)(nil)

func newCashflowRepoStub() *cashflowRepoStub { return &cashflowRepoStub{} }

func (s *cashflowRepoStub) CreateOutflow(_ context.Context, o *model.Outflow) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.outflows = append(s.outflows, *o)
	return nil
}

func (s *cashflowRepoStub) ListOutflows(_ context.Context, start, end time.Time) ([]model.Outflow, error) {
	var out []model.Outflow
	for _, o := range s.outflows {
		if inWindow(o.CreatedAt, start, end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *cashflowRepoStub) SumOutflows(_ context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, o := range s.outflows {
		if inWindow(o.CreatedAt, start, end) {
			total += o.Amount
		}
	}
	return total, nil
}

func (s *cashflowRepoStub) CreateAdjustment(_ context.Context, a *model.Adjustment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.adjustments = append(s.adjustments, *a)
	return nil
}

func (s *cashflowRepoStub) ListAdjustments(_ context.Context, start, end time.Time) ([]model.Adjustment, error) {
	var out []model.Adjustment
	for _, a := range s.adjustments {
		if inWindow(a.CreatedAt, start, end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *cashflowRepoStub) SumAdjustments(_ context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, a := range s.adjustments {
		if inWindow(a.CreatedAt, start, end) {
			total += a.Amount
		}
	}
	return total, nil
}

func (s *cashflowRepoStub) CreatePaidOrder(_ context.Context, p *model.PaidOrder) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.paidOrders = append(s.paidOrders, *p)
	return nil
}

func (s *cashflowRepoStub) DeletePaidOrder(_ context.Context, id uuid.UUID) error {
	for i, p := range s.paidOrders {
		if p.ID == id {
			s.paidOrders = append(s.paidOrders[:i], s.paidOrders[i+1:]...)
			break
		}
	}
	return nil
}

func (s *cashflowRepoStub) ListPaidOrders(_ context.Context, start, end time.Time) ([]model.PaidOrder, error) {
	var out []model.PaidOrder
	for _, p := range s.paidOrders {
		if inWindow(p.CreatedAt, start, end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *cashflowRepoStub) SumPaidOrders(_ context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, p := range s.paidOrders {
		if inWindow(p.CreatedAt, start, end) {
			total += p.Amount
		}
	}
	return total, nil
}

// ── closures ─────────────────────────────────────────────────────────────────

type closureRepoStub struct {
	closures []*model.CashClosure
}

var _ repository.ClosureRepository = (*closureRepoStub)(nil)

func newClosureRepoStub() *closureRepoStub { return &closureRepoStub{} }

func (s *closureRepoStub) Create(_ context.Context, c *model.CashClosure) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.closures = append(s.closures, c)
	return nil
}

func (s *closureRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.CashClosure, error) {
	for _, c := range s.closures {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *closureRepoStub) List(_ context.Context, limit int) ([]model.CashClosure, error) {
	var out []model.CashClosure
	for i := len(s.closures) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *s.closures[i])
	}
	return out, nil
}

func (s *closureRepoStub) Latest(_ context.Context) (*model.CashClosure, error) {
	if len(s.closures) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.closures[len(s.closures)-1], nil
}

// ── inventory log ────────────────────────────────────────────────────────────

type inventoryLogRepoStub struct {
	entries []model.InventoryLog
}

var _ repository.InventoryLogRepository = (*inventoryLogRepoStub)(nil)

func newInventoryLogRepoStub() *inventoryLogRepoStub { return &inventoryLogRepoStub{} }

func (s *inventoryLogRepoStub) Create(_ context.Context, e *model.InventoryLog) error {
	return s.CreateTx(nil, e)
}

func (s *inventoryLogRepoStub) CreateTx(_ *gorm.DB, e *model.InventoryLog) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.entries = append(s.entries, *e)
	return nil
}

func (s *inventoryLogRepoStub) ListForProduct(_ context.Context, productID uuid.UUID, limit int) ([]model.InventoryLog, error) {
	var out []model.InventoryLog
	for _, e := range s.entries {
		if e.ProductID != nil && *e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *inventoryLogRepoStub) ListRecent(_ context.Context, limit int) ([]model.InventoryLog, error) {
	return s.entries, nil
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
