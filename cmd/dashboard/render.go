package main

// render.go — plain-text rendering of the view models. Presentation only:
// every number arriving here is already derived and ready to print.

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ufcdash/internal/metrics"
	"ufcdash/internal/model"
	"ufcdash/internal/viewmodel"
)

func renderDashboard(w io.Writer, v viewmodel.DashboardView) {
	fmt.Fprintln(w, "── Dashboard ──────────────────────────────")
	if v.Summary.Failed() {
		fmt.Fprintln(w, "summary unavailable — please try again")
	} else {
		s := v.Summary.Data
		fmt.Fprintf(w, "Total Sales    %d\n", s.TotalSales)
		fmt.Fprintf(w, "Total Revenue  Kes %s\n", metrics.Display(s.TotalRevenue))
		fmt.Fprintf(w, "Total Profit   Kes %s\n", metrics.Display(s.TotalProfit))
	}

	fmt.Fprintln(w, "\nRevenue Trend")
	renderSeries(w, v.RevenueSeries)
	if v.Trend.Failed() {
		fmt.Fprintln(w, "(trend unavailable — showing placeholder)")
	}
	fmt.Fprintln(w, "\nProfit Trend")
	renderSeries(w, v.ProfitSeries)

	fmt.Fprintln(w, "\nTop Products — Revenue")
	renderSeries(w, v.TopRevenue)
	fmt.Fprintln(w, "\nTop Products — Quantity Sold")
	renderSeries(w, v.TopQuantity)

	fmt.Fprintln(w, "\nLow Stock Alerts")
	if v.LowStock.Failed() {
		fmt.Fprintln(w, "low-stock data unavailable — please try again")
	} else {
		renderLowStock(w, v.LowStock.Data)
	}

	if !v.Summary.Failed() && len(v.Summary.Data.RecentSales) > 0 {
		fmt.Fprintln(w, "\nRecent Sales")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PRODUCT\tQTY\tTOTAL (Kes)\tPROFIT (Kes)\tDATE")
		for _, s := range v.Summary.Data.RecentSales {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
				s.Product, s.Quantity,
				metrics.Display(s.TotalRevenue()), metrics.Display(s.Profit()),
				s.Date.Format("2006-01-02"))
		}
		tw.Flush()
	}
}

func renderSeries(w io.Writer, s viewmodel.Series) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range s.Points {
		fmt.Fprintf(tw, "%s\t%s\n", p.Label, metrics.Display(p.Value))
	}
	tw.Flush()
}

func renderLowStock(w io.Writer, alerts []model.LowStockAlert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No low stock alerts")
		return
	}
	for _, a := range alerts {
		fmt.Fprintf(w, "%s: %d units (below threshold of %d)\n",
			a.Product, a.Stock, a.LowStockThreshold)
	}
}

func renderSales(w io.Writer, v viewmodel.SalesPage) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tQTY\tSELLING (Kes)\tBUYING (Kes)\tREVENUE (Kes)\tPROFIT (Kes)\tDATE")
	for _, r := range v.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Product, r.Quantity,
			metrics.Display(r.SellingPrice), metrics.Display(r.BuyingPrice),
			metrics.Display(r.TotalRevenue), metrics.Display(r.Profit),
			r.Date.Format("2006-01-02"))
	}
	tw.Flush()
	if len(v.Rows) == 0 {
		fmt.Fprintln(w, "No sales records found")
	}
	fmt.Fprintf(w, "Page %d of %d (%d records)\n", v.Page, v.TotalPages, v.Total)
}

func renderInventory(w io.Writer, v viewmodel.InventoryPage) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tSTOCK\tBUYING (Kes)\tTHRESHOLD\tSTATUS")
	for _, r := range v.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\n",
			r.Product, r.Stock, metrics.Display(r.BuyingPrice),
			r.LowStockThreshold, r.Status)
	}
	tw.Flush()
	if len(v.Rows) == 0 {
		fmt.Fprintln(w, "No inventory items found")
	}
	fmt.Fprintf(w, "Page %d of %d (%d items, sorted by %s %s)\n",
		v.Page, v.TotalPages, v.Total, v.Sort.Field, v.Sort.Order)
}

func renderAnalytics(w io.Writer, v viewmodel.AnalyticsView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tQTY\tREVENUE (Kes)\tCOST (Kes)\tPROFIT (Kes)")
	for _, r := range v.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			r.Product, r.TotalQuantity,
			metrics.Display(r.TotalRevenue), metrics.Display(r.TotalCost),
			metrics.Display(r.TotalProfit))
	}
	tw.Flush()
	if len(v.Rows) == 0 {
		fmt.Fprintln(w, "No analytics data available")
	}
}
