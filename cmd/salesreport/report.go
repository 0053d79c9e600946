package main

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"ufcdash/internal/metrics"
	"ufcdash/internal/viewmodel"
)

// writeReport renders the analytics view as an A4 table: business header,
// per-product rows, totals footer.
func writeReport(view viewmodel.AnalyticsView, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Universal Fashion Center", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Sales Analytics by Product", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02 Jan 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	cols := []struct {
		w     float64
		title string
		align string
	}{
		{contentW * 0.32, "Product", "L"},
		{contentW * 0.12, "Qty", "C"},
		{contentW * 0.19, "Revenue (Kes)", "R"},
		{contentW * 0.18, "Cost (Kes)", "R"},
		{contentW * 0.19, "Profit (Kes)", "R"},
	}
	pdf.SetFont("Helvetica", "B", 9)
	for i, c := range cols {
		last := 0
		if i == len(cols)-1 {
			last = 1
		}
		pdf.CellFormat(c.w, 6, c.title, "B", last, c.align, false, 0, "")
	}

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	totalRevenue, totalCost := decimal.Zero, decimal.Zero
	for _, r := range view.Rows {
		name := r.Product
		if len(name) > 34 {
			name = name[:33] + "…"
		}
		pdf.CellFormat(cols[0].w, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].w, 6, fmt.Sprintf("%d", r.TotalQuantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(cols[2].w, 6, metrics.Display(r.TotalRevenue), "", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3].w, 6, metrics.Display(r.TotalCost), "", 0, "R", false, 0, "")
		pdf.CellFormat(cols[4].w, 6, metrics.Display(r.TotalProfit), "", 1, "R", false, 0, "")
		totalRevenue = totalRevenue.Add(r.TotalRevenue)
		totalCost = totalCost.Add(r.TotalCost)
	}
	if len(view.Rows) == 0 {
		pdf.CellFormat(contentW, 8, "No analytics data available", "", 1, "C", false, 0, "")
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	totalProfit := metrics.Profit(totalRevenue, totalCost)
	pdf.CellFormat(cols[0].w+cols[1].w, 7, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(cols[2].w, 7, metrics.Display(totalRevenue), "T", 0, "R", false, 0, "")
	pdf.CellFormat(cols[3].w, 7, metrics.Display(totalCost), "T", 0, "R", false, 0, "")
	pdf.CellFormat(cols[4].w, 7, metrics.Display(totalProfit), "T", 1, "R", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
