package service

import (
	"context"
	"testing"

	"minegocio/internal/dto"
	"minegocio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc       *SaleService
	carts     *CartService
	products  *productRepoStub
	sales     *saleRepoStub
	credits   *creditRepoStub
	customers *customerRepoStub
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		carts:     NewCartService(),
		products:  newProductRepoStub(),
		sales:     newSaleRepoStub(),
		credits:   newCreditRepoStub(),
		customers: newCustomerRepoStub(),
	}
	f.svc = NewSaleService(f.sales, f.products, f.credits, f.customers, f.carts, "Mi Negocio")
	return f
}

func (f *checkoutFixture) seedProduct(code, name string, price int64, stock int) *model.Product {
	return f.products.add(&model.Product{Code: code, Name: name, Price: price, Stock: stock})
}

func (f *checkoutFixture) addToCart(t *testing.T, p *model.Product, qty int) {
	t.Helper()
	id := p.ID.String()
	_, err := f.carts.Add("caja1", dto.CartAddRequest{
		ProductID: &id,
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price,
		Qty:       qty,
	})
	require.NoError(t, err)
}

func cash(amount int64) dto.PaymentLine {
	return dto.PaymentLine{Method: "Efectivo", Amount: amount}
}

func TestCheckoutHappyPath(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, p, 2)

	resp, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{cash(3000)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), resp.Total)
	assert.Equal(t, int64(3000), resp.Paid)
	assert.Equal(t, int64(0), resp.Change)
	assert.Empty(t, resp.StockWarnings)

	require.Len(t, f.sales.sales, 1)
	sale := f.sales.sales[0]
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Yerba", sale.Items[0].ProductName)
	assert.Equal(t, int64(1500), sale.Items[0].Price)
	require.Len(t, sale.Payments, 1)
	assert.Equal(t, "Efectivo", sale.Payments[0].Method)

	stored, _ := f.products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 8, stored.Stock)

	assert.Empty(t, f.carts.Get("caja1").Lines, "cart must be cleared after checkout")
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{cash(1000)},
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutInsufficientPaymentRejected(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, p, 2)

	_, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{cash(1000)},
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)

	// Nothing committed, cart untouched
	assert.Empty(t, f.sales.sales)
	stored, _ := f.products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 10, stored.Stock)
	assert.Len(t, f.carts.Get("caja1").Lines, 1)
}

func TestCheckoutShortfallToCredit(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, p, 2)
	customer := f.customers.add("Juan Perez")
	cid := customer.ID.String()

	resp, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID:  "caja1",
		Payments:    []dto.PaymentLine{cash(1000)},
		OnShortfall: dto.ShortfallCredit,
		CustomerID:  &cid,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CreditID)
	assert.Equal(t, int64(2000), resp.CreditAmount)
	require.Len(t, f.sales.sales, 1)

	require.Len(t, f.credits.credits, 1)
	for _, c := range f.credits.credits {
		assert.Equal(t, customer.ID, c.CustomerID)
		assert.Equal(t, int64(2000), c.Amount)
		assert.Equal(t, int64(2000), c.Balance)
		assert.False(t, c.Closed)
		require.NotNil(t, c.Reference)
		assert.Equal(t, resp.SaleID, *c.Reference, "credit must reference the sale")
	}
}

func TestCheckoutShortfallCreditRequiresCustomer(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, p, 2)

	_, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID:  "caja1",
		Payments:    []dto.PaymentLine{cash(1000)},
		OnShortfall: dto.ShortfallCredit,
	})
	assert.ErrorIs(t, err, ErrCustomerRequired)
	assert.Empty(t, f.sales.sales)
}

func TestCheckoutExactCash(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, p, 2)

	resp, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		ExactCash:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), resp.Paid)
	assert.Equal(t, int64(0), resp.Change)

	require.Len(t, f.sales.sales, 1)
	payments := f.sales.sales[0].Payments
	require.Len(t, payments, 1)
	assert.Equal(t, "Efectivo", payments[0].Method)
	assert.Equal(t, int64(3000), payments[0].Amount)
	require.NotNil(t, payments[0].Details)
	assert.Equal(t, "Cobro exacto", *payments[0].Details)
}

func TestCheckoutExactCashTopsUpPartialPayment(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, p, 2)

	resp, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{{Method: "Transferencia", Amount: 1000}},
		ExactCash:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), resp.Paid)

	payments := f.sales.sales[0].Payments
	require.Len(t, payments, 2)
	assert.Equal(t, "Efectivo", payments[1].Method)
	assert.Equal(t, int64(2000), payments[1].Amount)
}

func TestCheckoutOverpaymentChange(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, p, 2)

	resp, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{cash(5000)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), resp.Change)
	require.NotNil(t, resp.Receipt.Received)
	assert.Equal(t, int64(5000), *resp.Receipt.Received)
	require.NotNil(t, resp.Receipt.Change)
	assert.Equal(t, int64(2000), *resp.Receipt.Change)
}

func TestCheckoutNegativeStockWarns(t *testing.T) {
	f := newCheckoutFixture()
	p := f.seedProduct("A1", "Yerba", 1500, 1)
	f.addToCart(t, p, 3)

	resp, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{cash(4500)},
	})
	require.NoError(t, err)

	require.Len(t, resp.StockWarnings, 1)
	assert.Contains(t, resp.StockWarnings[0], "Yerba")

	stored, _ := f.products.FindByID(context.Background(), p.ID)
	assert.Equal(t, -2, stored.Stock, "stock is advisory and may go negative")
}

func TestCheckoutManualLineSkipsStock(t *testing.T) {
	f := newCheckoutFixture()
	_, err := f.carts.Add("caja1", dto.CartAddRequest{Code: "MANUAL", Name: "Varios", Price: 700, Qty: 2})
	require.NoError(t, err)

	resp, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{cash(1400)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1400), resp.Total)

	require.Len(t, f.sales.sales, 1)
	assert.Nil(t, f.sales.sales[0].Items[0].ProductID)
}

func TestCheckoutUnknownProductAborts(t *testing.T) {
	f := newCheckoutFixture()
	ghost := f.seedProduct("A1", "Yerba", 1500, 10)
	f.addToCart(t, ghost, 1)
	f.products.Delete(context.Background(), ghost.ID)

	_, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		RegisterID: "caja1",
		Payments:   []dto.PaymentLine{cash(1500)},
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, f.sales.sales)
}
