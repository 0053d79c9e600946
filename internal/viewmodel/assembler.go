// Package viewmodel assembles raw API shapes and live events into the
// read-only structures each screen renders. It is the only place snapshot
// data and push events meet, and the only place "zero because it failed" is
// told apart from "zero because it is empty".
package viewmodel

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"ufcdash/internal/apierror"
	"ufcdash/internal/dto"
	"ufcdash/internal/model"
)

// Fetcher is the slice of the API client the assembler needs.
type Fetcher interface {
	Summary(ctx context.Context, p dto.PeriodQuery) (*model.SalesSummary, error)
	Trend(ctx context.Context, p dto.PeriodQuery) ([]model.TrendPoint, error)
	LowStock(ctx context.Context) ([]model.LowStockAlert, error)
	ListSales(ctx context.Context, q dto.ListQuery) (*dto.SaleList, error)
	ListInventory(ctx context.Context, q dto.ListQuery) (*dto.InventoryList, error)
	Analytics(ctx context.Context, s dto.SortState) ([]model.AnalyticsRow, error)
}

// Section is a tagged fetch result. Failed sections keep their zero Data so
// the rest of the screen renders; Err carries the scoped notification.
type Section[T any] struct {
	Data T
	Err  error
}

func (s Section[T]) Failed() bool { return s.Err != nil }

type Assembler struct {
	api      Fetcher
	pageSize int
}

func NewAssembler(api Fetcher, pageSize int) *Assembler {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Assembler{api: api, pageSize: pageSize}
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

// DashboardView backs the main screen: summary cards, two trend charts, the
// top-products chart, recent sales and the low-stock list.
type DashboardView struct {
	Summary  Section[model.SalesSummary]
	Trend    Section[[]model.TrendPoint]
	LowStock Section[[]model.LowStockAlert]

	RevenueSeries Series
	ProfitSeries  Series
	TopRevenue    Series
	TopQuantity   Series
}

// Dashboard fetches summary, trend and the low-stock snapshot. The three
// fetches run together and fail independently: one widget's failure never
// blanks the others. Only an auth failure propagates as the returned error —
// it is session-wide by definition.
func (a *Assembler) Dashboard(ctx context.Context, period dto.PeriodQuery) (DashboardView, error) {
	var view DashboardView
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		s, err := a.api.Summary(ctx, period)
		if err != nil {
			view.Summary.Err = err
			return
		}
		view.Summary.Data = *s
	}()
	go func() {
		defer wg.Done()
		view.Trend.Data, view.Trend.Err = a.api.Trend(ctx, period)
	}()
	go func() {
		defer wg.Done()
		view.LowStock.Data, view.LowStock.Err = a.api.LowStock(ctx)
	}()
	wg.Wait()

	for _, err := range []error{view.Summary.Err, view.Trend.Err, view.LowStock.Err} {
		if err == nil {
			continue
		}
		if apierror.IsAuth(err) {
			return view, err
		}
		log.Warn().Err(err).Msg("dashboard section failed, rendering the rest")
	}

	view.RevenueSeries = trendSeries("Revenue (Kes)", period.Filter, view.Trend.Data,
		func(p model.TrendPoint) decimal.Decimal { return p.TotalRevenue })
	view.ProfitSeries = trendSeries("Profit (Kes)", period.Filter, view.Trend.Data,
		func(p model.TrendPoint) decimal.Decimal { return p.TotalProfit })
	view.TopRevenue = productSeries("Revenue (Kes)", view.Summary.Data.TopProducts,
		func(r model.AnalyticsRow) decimal.Decimal { return r.TotalRevenue })
	view.TopQuantity = productSeries("Quantity Sold", view.Summary.Data.TopProducts,
		func(r model.AnalyticsRow) decimal.Decimal { return decimal.NewFromInt(int64(r.TotalQuantity)) })
	return view, nil
}

// MergeLowStock reconciles the snapshot with the live event history. For a
// given product the most recently observed record wins: any live event
// postdates the snapshot fetch that produced the list, and within the stream
// the later arrival wins. The result is sorted by product for stable display.
func MergeLowStock(snapshot, events []model.LowStockAlert) []model.LowStockAlert {
	merged := make(map[string]model.LowStockAlert, len(snapshot)+len(events))
	for _, a := range snapshot {
		merged[a.Product] = a
	}
	for _, e := range events {
		merged[e.Product] = e
	}
	out := make([]model.LowStockAlert, 0, len(merged))
	for _, a := range merged {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out
}

// ─── Sales ───────────────────────────────────────────────────────────────────

// SaleRow is one rendered sales line with its derived money columns.
type SaleRow struct {
	model.SaleRecord
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	Profit       decimal.Decimal
}

type SalesPage struct {
	Rows       []SaleRow
	Page       int
	TotalPages int
	Total      int
}

// SalesPage fetches one page of sales. A page past the end of the (possibly
// just-shrunk) collection is clamped and refetched rather than rendered
// empty.
func (a *Assembler) SalesPage(ctx context.Context, q dto.ListQuery) (SalesPage, error) {
	q = q.Normalize(a.pageSize)
	list, err := a.api.ListSales(ctx, q)
	if err != nil {
		return SalesPage{}, err
	}
	if clamped := dto.ClampPage(q.Page, list.Total, q.Limit); clamped != q.Page && len(list.Data) == 0 {
		q.Page = clamped
		if list, err = a.api.ListSales(ctx, q); err != nil {
			return SalesPage{}, err
		}
	}

	rows := make([]SaleRow, 0, len(list.Data))
	for _, s := range list.Data {
		rows = append(rows, SaleRow{
			SaleRecord:   s,
			TotalRevenue: s.TotalRevenue(),
			TotalCost:    s.TotalCost(),
			Profit:       s.Profit(),
		})
	}
	return SalesPage{
		Rows:       rows,
		Page:       q.Page,
		TotalPages: dto.TotalPages(list.Total, q.Limit),
		Total:      list.Total,
	}, nil
}

// ─── Inventory ───────────────────────────────────────────────────────────────

// InventoryRow is one rendered inventory line with its derived status.
type InventoryRow struct {
	model.InventoryItem
	Status string
}

type InventoryPage struct {
	Rows       []InventoryRow
	Page       int
	TotalPages int
	Total      int
	Sort       dto.SortState
}

func (a *Assembler) InventoryPage(ctx context.Context, q dto.ListQuery) (InventoryPage, error) {
	q = q.Normalize(a.pageSize)
	list, err := a.api.ListInventory(ctx, q)
	if err != nil {
		return InventoryPage{}, err
	}
	if clamped := dto.ClampPage(q.Page, list.Total, q.Limit); clamped != q.Page && len(list.Data) == 0 {
		q.Page = clamped
		if list, err = a.api.ListInventory(ctx, q); err != nil {
			return InventoryPage{}, err
		}
	}

	rows := make([]InventoryRow, 0, len(list.Data))
	for _, item := range list.Data {
		rows = append(rows, InventoryRow{InventoryItem: item, Status: item.Status()})
	}
	return InventoryPage{
		Rows:       rows,
		Page:       q.Page,
		TotalPages: dto.TotalPages(list.Total, q.Limit),
		Total:      list.Total,
		Sort:       dto.SortState{Field: q.SortBy, Order: q.SortOrder},
	}, nil
}

// ─── Analytics ───────────────────────────────────────────────────────────────

type AnalyticsView struct {
	Rows          []model.AnalyticsRow
	RevenueSeries Series
	ProfitSeries  Series
	Sort          dto.SortState
}

func (a *Assembler) Analytics(ctx context.Context, s dto.SortState) (AnalyticsView, error) {
	rows, err := a.api.Analytics(ctx, s)
	if err != nil {
		return AnalyticsView{}, err
	}
	return AnalyticsView{
		Rows: rows,
		RevenueSeries: productSeries("Total Revenue (Kes)", rows,
			func(r model.AnalyticsRow) decimal.Decimal { return r.TotalRevenue }),
		ProfitSeries: productSeries("Profit (Kes)", rows,
			func(r model.AnalyticsRow) decimal.Decimal { return r.TotalProfit }),
		Sort: s,
	}, nil
}
