package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"
	"minegocio/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SaleService finalizes carts into immutable sales. Validation runs
// before the transaction opens; once writes start they either all land
// or none do.
type SaleService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	credits   repository.CreditRepository
	customers repository.CustomerRepository
	cart      *CartService
	company   string
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	credits repository.CreditRepository,
	customers repository.CustomerRepository,
	cart *CartService,
	company string,
) *SaleService {
	return &SaleService{
		sales:     sales,
		products:  products,
		credits:   credits,
		customers: customers,
		cart:      cart,
		company:   company,
	}
}

// Checkout commits the register's cart as a sale.
//
// Payment evaluation: with exact_cash set, a synthetic cash line covers
// whatever the declared lines leave open. A remaining shortfall is then
// either rejected outright or converted into a customer credit,
// depending on on_shortfall. Overpayment is returned as change and
// never persisted.
//
// Stock is decremented for catalog lines only and may go negative; the
// response carries a warning per item that did.
func (s *SaleService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	lines := s.cart.snapshot(req.RegisterID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	for _, l := range lines {
		if l.qty < 0 {
			return nil, ErrInvalidQuantity
		}
		total += int64(l.qty) * l.price
	}

	// Resolve catalog products up front so a missing one aborts before
	// any write. Manual lines (no product id) skip this entirely.
	type stockPlan struct {
		id    uuid.UUID
		name  string
		qty   int
		after int
	}
	var plans []stockPlan
	var warnings []string
	for _, l := range lines {
		if l.productID == nil {
			continue
		}
		p, err := s.products.FindByID(ctx, *l.productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		after := p.Stock - l.qty
		plans = append(plans, stockPlan{id: p.ID, name: p.Name, qty: l.qty, after: after})
		if after < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: stock quedaria en %d", p.Name, after))
		}
	}

	payments := make([]dto.PaymentLine, len(req.Payments))
	copy(payments, req.Payments)

	var paid int64
	for _, p := range payments {
		paid += p.Amount
	}

	if req.ExactCash && paid < total {
		details := "Cobro exacto"
		payments = append(payments, dto.PaymentLine{
			Method:  "Efectivo",
			Amount:  total - paid,
			Details: &details,
		})
		paid = total
	}

	shortfall := total - paid
	var customerID *uuid.UUID
	if shortfall > 0 {
		if req.OnShortfall != dto.ShortfallCredit {
			return nil, ErrInsufficientPayment
		}
		cid := parseOptionalUUID(req.CustomerID)
		if cid == nil {
			return nil, ErrCustomerRequired
		}
		if _, err := s.customers.FindByID(ctx, *cid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, err
		}
		customerID = cid
	}

	sale := &model.Sale{
		ID:        uuid.New(),
		Total:     total,
		CreatedAt: time.Now(),
	}
	for _, l := range lines {
		item := model.SaleItem{
			ProductID:    l.productID,
			ProductCode:  l.code,
			ProductName:  l.name,
			CategoryID:   l.categoryID,
			CategoryName: l.categoryName,
			Qty:          l.qty,
			Price:        l.price,
		}
		sale.Items = append(sale.Items, item)
	}
	for _, p := range payments {
		sale.Payments = append(sale.Payments, model.SalePayment{
			Method:  p.Method,
			Amount:  p.Amount,
			Details: p.Details,
		})
	}

	var credit *model.Credit
	err := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		if err := s.sales.CreateTx(tx, sale); err != nil {
			return err
		}
		for _, plan := range plans {
			if err := s.products.UpdateStockTx(tx, plan.id, -plan.qty); err != nil {
				return err
			}
		}
		if shortfall > 0 {
			ref := sale.ID.String()
			desc := "Saldo de venta"
			credit = &model.Credit{
				ID:          uuid.New(),
				CustomerID:  *customerID,
				Reference:   &ref,
				Description: &desc,
				Amount:      shortfall,
				Balance:     shortfall,
			}
			if err := s.credits.CreateTx(tx, credit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear(req.RegisterID)

	change := paid - total
	if change < 0 {
		change = 0
	}

	resp := &dto.CheckoutResponse{
		SaleID:        sale.ID.String(),
		Total:         total,
		Paid:          paid,
		Change:        change,
		StockWarnings: warnings,
		Receipt:       s.buildReceipt(sale, paid, change),
	}
	if credit != nil {
		id := credit.ID.String()
		resp.CreditID = &id
		resp.CreditAmount = credit.Amount
	}

	log.Info().
		Str("sale_id", resp.SaleID).
		Int64("total", total).
		Int64("paid", paid).
		Int("items", len(sale.Items)).
		Msg("venta registrada")

	return resp, nil
}

// Get returns one sale with its items and payments.
func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	resp := saleToResponse(sale)
	return &resp, nil
}

func (s *SaleService) ListRecent(ctx context.Context, limit int) ([]dto.SaleResponse, error) {
	sales, err := s.sales.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, saleToResponse(&sales[i]))
	}
	return out, nil
}

// Receipt rebuilds the printable receipt for a stored sale.
func (s *SaleService) Receipt(ctx context.Context, id uuid.UUID) (*dto.Receipt, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	var paid int64
	for _, p := range sale.Payments {
		paid += p.Amount
	}
	change := paid - sale.Total
	if change < 0 {
		change = 0
	}
	r := s.buildReceipt(sale, paid, change)
	return &r, nil
}

func (s *SaleService) buildReceipt(sale *model.Sale, received, change int64) dto.Receipt {
	r := dto.Receipt{
		SaleID:      sale.ID.String(),
		CompanyName: s.company,
		CreatedAt:   sale.CreatedAt.Format(time.RFC3339),
		Total:       sale.Total,
	}
	for _, it := range sale.Items {
		r.Lines = append(r.Lines, dto.ReceiptLine{
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Qty:         it.Qty,
			Price:       it.Price,
			Subtotal:    int64(it.Qty) * it.Price,
		})
	}
	if received > 0 {
		r.Received = &received
		r.Change = &change
	}
	return r
}

func saleToResponse(sale *model.Sale) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:        sale.ID.String(),
		Total:     sale.Total,
		CreatedAt: sale.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductCode:  it.ProductCode,
			ProductName:  it.ProductName,
			CategoryName: it.CategoryName,
			Qty:          it.Qty,
			Price:        it.Price,
			Subtotal:     int64(it.Qty) * it.Price,
		})
	}
	for _, p := range sale.Payments {
		resp.Payments = append(resp.Payments, dto.SalePaymentResponse{
			Method:  p.Method,
			Amount:  p.Amount,
			Details: p.Details,
		})
	}
	return resp
}
