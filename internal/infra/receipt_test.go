package infra

import (
	"testing"

	"minegocio/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	cases := map[int64]string{
		0:        "$0,00",
		950:      "$9,50",
		150000:   "$1.500,00",
		12345678: "$123.456,78",
		-4200:    "-$42,00",
	}
	for minor, want := range cases {
		assert.Equal(t, want, FormatMoney(minor))
	}
}

func sampleReceipt() dto.Receipt {
	received := int64(500000)
	change := int64(50000)
	return dto.Receipt{
		SaleID:      "a2f1c9a0-0000-4000-8000-000000000000",
		CompanyName: "Mi Negocio",
		CreatedAt:   "2025-03-10T12:00:00Z",
		Lines: []dto.ReceiptLine{
			{ProductCode: "YER-500", ProductName: "Yerba 500g", Qty: 2, Price: 150000, Subtotal: 300000},
			{ProductCode: "AZU-1K", ProductName: "Azucar 1kg", Qty: 1, Price: 150000, Subtotal: 150000},
		},
		Total:    450000,
		Received: &received,
		Change:   &change,
	}
}

func TestRenderTextTicket(t *testing.T) {
	out := NewReceiptRenderer().RenderText(sampleReceipt())

	assert.Contains(t, out, "Mi Negocio")
	assert.Contains(t, out, "2x Yerba 500g")
	assert.Contains(t, out, "$4.500,00")
	assert.Contains(t, out, "RECIBIDO")
	assert.Contains(t, out, "VUELTO")
}

func TestRenderPDFProducesDocument(t *testing.T) {
	data, err := NewReceiptRenderer().RenderPDF(sampleReceipt())
	require.NoError(t, err)
	assert.True(t, len(data) > 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestClosureSummaryCSV(t *testing.T) {
	data, err := ClosureSummaryCSV(dto.ClosureSummary{
		Start:      "2025-03-10 00:00:00",
		End:        "2025-03-10 23:59:59",
		TotalSales: 110000,
		CashIn:     80000,
		NetCash:    63000,
		PaymentsByMethod: []dto.MethodTotal{
			{Method: "Efectivo", Total: 80000, Count: 2},
		},
	})
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "efectivo_esperado,63000")
	assert.Contains(t, out, "medio:Efectivo,80000")
}
