package service

import (
	"context"
	"errors"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"
	"minegocio/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LedgerService manages both sides of informal store credit: credits
// (customers owing the store) and debts (the store owing creditors).
// Both follow the same amortization rules: payments subtract from the
// balance unconditionally, the record closes once the balance reaches
// zero or below, and closed is sticky even if overpayment later drives
// the balance negative.
type LedgerService struct {
	credits   repository.CreditRepository
	debts     repository.DebtRepository
	customers repository.CustomerRepository
}

func NewLedgerService(
	credits repository.CreditRepository,
	debts repository.DebtRepository,
	customers repository.CustomerRepository,
) *LedgerService {
	return &LedgerService{credits: credits, debts: debts, customers: customers}
}

func (s *LedgerService) CreateCredit(ctx context.Context, req dto.CreateCreditRequest) (*dto.CreditResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	c := &model.Credit{
		CustomerID:  customerID,
		Reference:   req.Reference,
		Description: req.Description,
		Amount:      req.Amount,
		Balance:     req.Amount,
		DueDate:     parseOptionalDate(req.DueDate),
	}
	if err := s.credits.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Customer = customer

	log.Info().
		Str("credit_id", c.ID.String()).
		Str("customer", customer.Name).
		Int64("amount", c.Amount).
		Msg("fiado registrado")

	resp := creditToResponse(c)
	return &resp, nil
}

// AddCreditPayment applies a payment: insert the payment row, subtract
// the amount from the balance, and mark closed when settled. All three
// writes share one transaction.
func (s *LedgerService) AddCreditPayment(ctx context.Context, creditID uuid.UUID, req dto.LedgerPaymentRequest) (*dto.CreditResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}
	if _, err := s.credits.FindByID(ctx, creditID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}

	err := runTx(ctx, s.credits.DB(), func(tx *gorm.DB) error {
		payment := &model.CreditPayment{
			CreditID: creditID,
			Amount:   req.Amount,
			Method:   req.Method,
			Note:     req.Note,
		}
		if err := s.credits.CreatePaymentTx(tx, payment); err != nil {
			return err
		}
		if err := s.credits.DecrementBalanceTx(tx, creditID, req.Amount); err != nil {
			return err
		}
		return s.credits.CloseIfSettledTx(tx, creditID)
	})
	if err != nil {
		return nil, err
	}

	c, err := s.credits.FindByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	resp := creditToResponse(c)
	return &resp, nil
}

func (s *LedgerService) ListCredits(ctx context.Context, filter dto.LedgerFilter) ([]dto.CreditResponse, error) {
	credits, err := s.credits.List(ctx, filter.Q, !filter.All)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreditResponse, 0, len(credits))
	for i := range credits {
		out = append(out, creditToResponse(&credits[i]))
	}
	return out, nil
}

func (s *LedgerService) CreditPayments(ctx context.Context, creditID uuid.UUID) ([]dto.LedgerPaymentResponse, error) {
	if _, err := s.credits.FindByID(ctx, creditID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}
	payments, err := s.credits.ListPayments(ctx, creditID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.LedgerPaymentResponse{
			ID:        p.ID.String(),
			Amount:    p.Amount,
			Method:    p.Method,
			Note:      p.Note,
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *LedgerService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*dto.DebtResponse, error) {
	d := &model.Debt{
		CreditorName: req.CreditorName,
		Description:  req.Description,
		Amount:       req.Amount,
		Balance:      req.Amount,
		DueDate:      parseOptionalDate(req.DueDate),
	}
	if err := s.debts.Create(ctx, d); err != nil {
		return nil, err
	}

	log.Info().
		Str("debt_id", d.ID.String()).
		Str("creditor", d.CreditorName).
		Int64("amount", d.Amount).
		Msg("deuda registrada")

	resp := debtToResponse(d)
	return &resp, nil
}

func (s *LedgerService) AddDebtPayment(ctx context.Context, debtID uuid.UUID, req dto.LedgerPaymentRequest) (*dto.DebtResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}
	if _, err := s.debts.FindByID(ctx, debtID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, err
	}

	err := runTx(ctx, s.debts.DB(), func(tx *gorm.DB) error {
		payment := &model.DebtPayment{
			DebtID: debtID,
			Amount: req.Amount,
			Method: req.Method,
			Note:   req.Note,
		}
		if err := s.debts.CreatePaymentTx(tx, payment); err != nil {
			return err
		}
		if err := s.debts.DecrementBalanceTx(tx, debtID, req.Amount); err != nil {
			return err
		}
		return s.debts.CloseIfSettledTx(tx, debtID)
	})
	if err != nil {
		return nil, err
	}

	d, err := s.debts.FindByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	resp := debtToResponse(d)
	return &resp, nil
}

func (s *LedgerService) ListDebts(ctx context.Context, filter dto.LedgerFilter) ([]dto.DebtResponse, error) {
	debts, err := s.debts.List(ctx, filter.Q, !filter.All)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DebtResponse, 0, len(debts))
	for i := range debts {
		out = append(out, debtToResponse(&debts[i]))
	}
	return out, nil
}

func (s *LedgerService) DebtPayments(ctx context.Context, debtID uuid.UUID) ([]dto.LedgerPaymentResponse, error) {
	if _, err := s.debts.FindByID(ctx, debtID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, err
	}
	payments, err := s.debts.ListPayments(ctx, debtID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.LedgerPaymentResponse{
			ID:        p.ID.String(),
			Amount:    p.Amount,
			Method:    p.Method,
			Note:      p.Note,
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func creditToResponse(c *model.Credit) dto.CreditResponse {
	resp := dto.CreditResponse{
		ID:          c.ID.String(),
		CustomerID:  c.CustomerID.String(),
		Reference:   c.Reference,
		Description: c.Description,
		Amount:      c.Amount,
		Balance:     c.Balance,
		Closed:      c.Closed,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.Customer != nil {
		resp.CustomerName = c.Customer.Name
	}
	if c.DueDate != nil {
		d := c.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	return resp
}

func debtToResponse(d *model.Debt) dto.DebtResponse {
	resp := dto.DebtResponse{
		ID:           d.ID.String(),
		CreditorName: d.CreditorName,
		Description:  d.Description,
		Amount:       d.Amount,
		Balance:      d.Balance,
		Closed:       d.Closed,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
	if d.DueDate != nil {
		due := d.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
