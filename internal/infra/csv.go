package infra

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"minegocio/internal/dto"
)

// ClosureSummaryCSV flattens a closure summary for spreadsheet import.
// Amounts are exported in minor units so no precision is lost.
func ClosureSummaryCSV(s dto.ClosureSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"concepto", "monto"},
		{"desde", s.Start},
		{"hasta", s.End},
		{"ventas_totales", strconv.FormatInt(s.TotalSales, 10)},
		{"efectivo", strconv.FormatInt(s.CashIn, 10)},
		{"transferencias", strconv.FormatInt(s.TransferIn, 10)},
		{"otros_medios", strconv.FormatInt(s.OtherIn, 10)},
		{"encargos_pagados", strconv.FormatInt(s.PaidOrdersTotal, 10)},
		{"salidas", strconv.FormatInt(s.OutflowsTotal, 10)},
		{"ajustes", strconv.FormatInt(s.AdjustmentsTotal, 10)},
		{"gastos_totales", strconv.FormatInt(s.ExpensesTotal, 10)},
		{"fiados_otorgados", strconv.FormatInt(s.CreditsTotal, 10)},
		{"deudas_registradas", strconv.FormatInt(s.DebtsTotal, 10)},
		{"caja_inicial", strconv.FormatInt(s.OpeningCash, 10)},
		{"efectivo_esperado", strconv.FormatInt(s.NetCash, 10)},
	}
	for _, m := range s.PaymentsByMethod {
		rows = append(rows, []string{"medio:" + m.Method, strconv.FormatInt(m.Total, 10)})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
