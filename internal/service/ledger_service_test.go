package service

import (
	"context"
	"testing"

	"minegocio/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	svc       *LedgerService
	credits   *creditRepoStub
	debts     *debtRepoStub
	customers *customerRepoStub
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		credits:   newCreditRepoStub(),
		debts:     newDebtRepoStub(),
		customers: newCustomerRepoStub(),
	}
	f.svc = NewLedgerService(f.credits, f.debts, f.customers)
	return f
}

func TestCreditAmortizationUntilClosed(t *testing.T) {
	f := newLedgerFixture()
	customer := f.customers.add("Juan Perez")
	cid := customer.ID.String()

	credit, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{
		CustomerID: cid,
		Amount:     5000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), credit.Balance)
	assert.False(t, credit.Closed)

	id := uuid.MustParse(credit.ID)

	credit, err = f.svc.AddCreditPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 2000})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), credit.Balance)
	assert.False(t, credit.Closed)

	credit, err = f.svc.AddCreditPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 3000})
	require.NoError(t, err)
	assert.Equal(t, int64(0), credit.Balance)
	assert.True(t, credit.Closed)
}

func TestCreditOverpaymentKeepsClosed(t *testing.T) {
	f := newLedgerFixture()
	customer := f.customers.add("Juan Perez")

	credit, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{
		CustomerID: customer.ID.String(),
		Amount:     1000,
	})
	require.NoError(t, err)
	id := uuid.MustParse(credit.ID)

	credit, err = f.svc.AddCreditPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 1000})
	require.NoError(t, err)
	assert.True(t, credit.Closed)

	// Payments keep subtracting; closed never reverts
	credit, err = f.svc.AddCreditPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(-100), credit.Balance)
	assert.True(t, credit.Closed)
}

func TestCreateCreditUnknownCustomer(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{
		CustomerID: uuid.NewString(),
		Amount:     5000,
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreditPaymentInvalidAmount(t *testing.T) {
	f := newLedgerFixture()
	customer := f.customers.add("Juan Perez")

	credit, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{
		CustomerID: customer.ID.String(),
		Amount:     5000,
	})
	require.NoError(t, err)

	_, err = f.svc.AddCreditPayment(context.Background(), uuid.MustParse(credit.ID), dto.LedgerPaymentRequest{Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
}

func TestCreditPaymentUnknownCredit(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.svc.AddCreditPayment(context.Background(), uuid.New(), dto.LedgerPaymentRequest{Amount: 100})
	assert.ErrorIs(t, err, ErrCreditNotFound)
}

func TestListCreditsOnlyOpenByDefault(t *testing.T) {
	f := newLedgerFixture()
	customer := f.customers.add("Juan Perez")
	cid := customer.ID.String()

	open, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{CustomerID: cid, Amount: 5000})
	require.NoError(t, err)
	closed, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{CustomerID: cid, Amount: 1000})
	require.NoError(t, err)
	_, err = f.svc.AddCreditPayment(context.Background(), uuid.MustParse(closed.ID), dto.LedgerPaymentRequest{Amount: 1000})
	require.NoError(t, err)

	list, err := f.svc.ListCredits(context.Background(), dto.LedgerFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, open.ID, list[0].ID)

	all, err := f.svc.ListCredits(context.Background(), dto.LedgerFilter{All: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDebtAmortizationMirrorsCredits(t *testing.T) {
	f := newLedgerFixture()

	debt, err := f.svc.CreateDebt(context.Background(), dto.CreateDebtRequest{
		CreditorName: "Distribuidora Norte",
		Amount:       8000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8000), debt.Balance)
	id := uuid.MustParse(debt.ID)

	debt, err = f.svc.AddDebtPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 8000})
	require.NoError(t, err)
	assert.Equal(t, int64(0), debt.Balance)
	assert.True(t, debt.Closed)

	debt, err = f.svc.AddDebtPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(-500), debt.Balance)
	assert.True(t, debt.Closed)
}

func TestLedgerPaymentsAreListed(t *testing.T) {
	f := newLedgerFixture()
	customer := f.customers.add("Juan Perez")

	credit, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{
		CustomerID: customer.ID.String(),
		Amount:     5000,
	})
	require.NoError(t, err)
	id := uuid.MustParse(credit.ID)

	_, err = f.svc.AddCreditPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 2000})
	require.NoError(t, err)
	_, err = f.svc.AddCreditPayment(context.Background(), id, dto.LedgerPaymentRequest{Amount: 1000})
	require.NoError(t, err)

	payments, err := f.svc.CreditPayments(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	// Most recent payment first
	assert.Equal(t, int64(1000), payments[0].Amount)
	assert.Equal(t, int64(2000), payments[1].Amount)
}

func TestListCreditsFiltersReferenceAndDescription(t *testing.T) {
	f := newLedgerFixture()
	customer := f.customers.add("Juan Perez")
	cid := customer.ID.String()

	_, err := f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{
		CustomerID: cid,
		Amount:     5000,
		Reference:  strPtr("venta 7781"),
	})
	require.NoError(t, err)
	_, err = f.svc.CreateCredit(context.Background(), dto.CreateCreditRequest{
		CustomerID:  cid,
		Amount:      3000,
		Description: strPtr("fiado almuerzo"),
	})
	require.NoError(t, err)

	byRef, err := f.svc.ListCredits(context.Background(), dto.LedgerFilter{Q: "7781"})
	require.NoError(t, err)
	require.Len(t, byRef, 1)
	assert.Equal(t, int64(5000), byRef[0].Amount)

	byDesc, err := f.svc.ListCredits(context.Background(), dto.LedgerFilter{Q: "almuerzo"})
	require.NoError(t, err)
	require.Len(t, byDesc, 1)
	assert.Equal(t, int64(3000), byDesc[0].Amount)
}

func TestListDebtsFiltersDescription(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.svc.CreateDebt(context.Background(), dto.CreateDebtRequest{
		CreditorName: "Distribuidora Norte",
		Amount:       8000,
	})
	require.NoError(t, err)
	_, err = f.svc.CreateDebt(context.Background(), dto.CreateDebtRequest{
		CreditorName: "Frigorifico Sur",
		Amount:       2000,
		Description:  strPtr("factura gaseosas"),
	})
	require.NoError(t, err)

	list, err := f.svc.ListDebts(context.Background(), dto.LedgerFilter{Q: "gaseosas"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Frigorifico Sur", list[0].CreditorName)
}
