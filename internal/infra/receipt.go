package infra

import (
	"bytes"
	"fmt"
	"strings"

	"minegocio/internal/dto"

	"github.com/go-pdf/fpdf"
)

const receiptWidth = 40 // characters, 58mm thermal paper

// ReceiptRenderer produces the printable forms of a receipt. The same
// dto.Receipt feeds both the plain-text ticket and the PDF.
type ReceiptRenderer struct{}

func NewReceiptRenderer() *ReceiptRenderer { return &ReceiptRenderer{} }

// RenderText produces the thermal-printer ticket.
func (r *ReceiptRenderer) RenderText(receipt dto.Receipt) string {
	var b strings.Builder
	sep := strings.Repeat("-", receiptWidth)

	b.WriteString(center(receipt.CompanyName) + "\n")
	b.WriteString(center(receipt.CreatedAt) + "\n")
	b.WriteString(sep + "\n")

	for _, l := range receipt.Lines {
		b.WriteString(fmt.Sprintf("%dx %s\n", l.Qty, truncate(l.ProductName, receiptWidth-4)))
		amount := FormatMoney(l.Subtotal)
		b.WriteString(fmt.Sprintf("%*s\n", receiptWidth, amount))
	}

	b.WriteString(sep + "\n")
	b.WriteString(rightPair("TOTAL", FormatMoney(receipt.Total)) + "\n")
	if receipt.Received != nil {
		b.WriteString(rightPair("RECIBIDO", FormatMoney(*receipt.Received)) + "\n")
	}
	if receipt.Change != nil && *receipt.Change > 0 {
		b.WriteString(rightPair("VUELTO", FormatMoney(*receipt.Change)) + "\n")
	}
	b.WriteString(sep + "\n")
	b.WriteString(center("Gracias por su compra") + "\n")
	return b.String()
}

// RenderPDF produces an A4 receipt for archiving or reprint.
func (r *ReceiptRenderer) RenderPDF(receipt dto.Receipt) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Ticket %s", receipt.SaleID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, receipt.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, receipt.CreatedAt, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Ticket "+receipt.SaleID, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(20, 7, "Cant.", "B", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range receipt.Lines {
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", l.Qty), "", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, l.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, FormatMoney(l.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, FormatMoney(l.Subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(145, 8, "TOTAL", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, FormatMoney(receipt.Total), "T", 1, "R", false, 0, "")

	if receipt.Received != nil {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(145, 6, "Recibido", "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, FormatMoney(*receipt.Received), "", 1, "R", false, 0, "")
	}
	if receipt.Change != nil && *receipt.Change > 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(145, 6, "Vuelto", "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, FormatMoney(*receipt.Change), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatMoney renders minor units as "$1.234,56" (comma decimals, dot
// thousands).
func FormatMoney(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	units := minor / 100
	cents := minor % 100

	digits := fmt.Sprintf("%d", units)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := fmt.Sprintf("$%s,%02d", strings.Join(groups, "."), cents)
	if neg {
		return "-" + out
	}
	return out
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	pad := (receiptWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func rightPair(label, value string) string {
	space := receiptWidth - len(label) - len(value)
	if space < 1 {
		space = 1
	}
	return label + strings.Repeat(" ", space) + value
}
