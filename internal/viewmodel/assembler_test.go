package viewmodel

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufcdash/internal/apierror"
	"ufcdash/internal/dto"
	"ufcdash/internal/model"
)

// ── Stub ──────────────────────────────────────────────────────────────────────

// stubFetcher is an in-memory Fetcher; per-endpoint errors simulate partial
// outages.
type stubFetcher struct {
	summary      model.SalesSummary
	trend        []model.TrendPoint
	lowStock     []model.LowStockAlert
	sales        []model.SaleRecord
	inventory    []model.InventoryItem
	analytics    []model.AnalyticsRow
	summaryErr   error
	trendErr     error
	lowStockErr  error
	listErr      error
	salesQueries []dto.ListQuery
}

func (f *stubFetcher) Summary(context.Context, dto.PeriodQuery) (*model.SalesSummary, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	s := f.summary
	return &s, nil
}

func (f *stubFetcher) Trend(context.Context, dto.PeriodQuery) ([]model.TrendPoint, error) {
	return f.trend, f.trendErr
}

func (f *stubFetcher) LowStock(context.Context) ([]model.LowStockAlert, error) {
	return f.lowStock, f.lowStockErr
}

func (f *stubFetcher) ListSales(_ context.Context, q dto.ListQuery) (*dto.SaleList, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.salesQueries = append(f.salesQueries, q)
	return &dto.SaleList{Data: pageOf(f.sales, q), Total: len(f.sales)}, nil
}

func (f *stubFetcher) ListInventory(_ context.Context, q dto.ListQuery) (*dto.InventoryList, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &dto.InventoryList{Data: pageOf(f.inventory, q), Total: len(f.inventory)}, nil
}

func (f *stubFetcher) Analytics(context.Context, dto.SortState) ([]model.AnalyticsRow, error) {
	return f.analytics, f.listErr
}

func pageOf[T any](all []T, q dto.ListQuery) []T {
	start := (q.Page - 1) * q.Limit
	if start >= len(all) {
		return nil
	}
	end := start + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

var _ Fetcher = (*stubFetcher)(nil)

// ── Dedup ─────────────────────────────────────────────────────────────────────

func TestMergeLowStockLiveEventWins(t *testing.T) {
	snapshot := []model.LowStockAlert{{Product: "A", Stock: 5, LowStockThreshold: 10}}
	events := []model.LowStockAlert{{Product: "A", Stock: 3, LowStockThreshold: 10}}

	merged := MergeLowStock(snapshot, events)
	require.Len(t, merged, 1)
	assert.Equal(t, "A", merged[0].Product)
	assert.Equal(t, 3, merged[0].Stock)
}

func TestMergeLowStockLaterEventWinsAndSorted(t *testing.T) {
	snapshot := []model.LowStockAlert{
		{Product: "Trousers", Stock: 8},
		{Product: "Dresses", Stock: 6},
	}
	events := []model.LowStockAlert{
		{Product: "Dresses", Stock: 4},
		{Product: "Boys Suits", Stock: 2},
		{Product: "Dresses", Stock: 1},
	}

	merged := MergeLowStock(snapshot, events)
	require.Len(t, merged, 3)
	assert.Equal(t, []string{"Boys Suits", "Dresses", "Trousers"},
		[]string{merged[0].Product, merged[1].Product, merged[2].Product})
	assert.Equal(t, 1, merged[1].Stock, "latest arrival for Dresses wins")
}

func TestMergeLowStockEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeLowStock(nil, nil))
	merged := MergeLowStock(nil, []model.LowStockAlert{{Product: "A", Stock: 1}})
	require.Len(t, merged, 1)
	assert.Equal(t, 1, merged[0].Stock)
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func TestDashboardSectionsFailIndependently(t *testing.T) {
	f := &stubFetcher{
		summary: model.SalesSummary{
			TotalSales:   12,
			TotalRevenue: decimal.NewFromInt(3400),
		},
		trendErr: apierror.Transient("api.Trend", "server error", nil),
	}
	a := NewAssembler(f, 10)

	view, err := a.Dashboard(context.Background(), dto.PeriodQuery{Filter: dto.PeriodDaily})
	require.NoError(t, err, "a transient section failure must not fail the view")

	assert.False(t, view.Summary.Failed())
	assert.Equal(t, 12, view.Summary.Data.TotalSales)
	assert.True(t, view.Trend.Failed(), "failed section keeps its scoped error")
	assert.False(t, view.LowStock.Failed())

	// the trend charts degrade to the placeholder, not an undefined axis
	assert.True(t, view.RevenueSeries.Empty())
	assert.True(t, view.ProfitSeries.Empty())
}

func TestDashboardAuthFailurePropagates(t *testing.T) {
	f := &stubFetcher{
		summaryErr: apierror.Auth("api.Summary", "session expired", nil),
	}
	a := NewAssembler(f, 10)

	_, err := a.Dashboard(context.Background(), dto.PeriodQuery{})
	require.Error(t, err)
	assert.Equal(t, apierror.KindAuth, apierror.KindOf(err))
}

func TestDashboardBuildsSeries(t *testing.T) {
	day := time.Date(2025, 9, 2, 9, 35, 0, 0, time.UTC)
	f := &stubFetcher{
		summary: model.SalesSummary{
			TopProducts: []model.AnalyticsRow{
				{Product: "Men Suits", TotalQuantity: 5, TotalRevenue: decimal.NewFromInt(2000)},
			},
		},
		trend: []model.TrendPoint{
			{Date: day, TotalRevenue: decimal.NewFromInt(1000), TotalProfit: decimal.NewFromInt(500)},
			{Date: day.Add(24 * time.Hour), TotalRevenue: decimal.NewFromInt(1500), TotalProfit: decimal.NewFromInt(700)},
		},
	}
	a := NewAssembler(f, 10)

	view, err := a.Dashboard(context.Background(), dto.PeriodQuery{Filter: dto.PeriodDaily})
	require.NoError(t, err)

	require.Len(t, view.RevenueSeries.Points, 2)
	assert.Equal(t, "Sep 02, 09:35", view.RevenueSeries.Points[0].Label)
	assert.True(t, view.RevenueSeries.Points[1].Value.Equal(decimal.NewFromInt(1500)))

	require.Len(t, view.TopRevenue.Points, 1)
	assert.Equal(t, "Men Suits", view.TopRevenue.Points[0].Label)
	assert.True(t, view.TopQuantity.Points[0].Value.Equal(decimal.NewFromInt(5)))
}

// ── Pages ─────────────────────────────────────────────────────────────────────

func someSales(n int) []model.SaleRecord {
	out := make([]model.SaleRecord, n)
	for i := range out {
		out[i] = model.SaleRecord{
			ID:           string(rune('a' + i)),
			Product:      "Dresses",
			Quantity:     2,
			SellingPrice: decimal.NewFromInt(30),
			BuyingPrice:  decimal.NewFromInt(10),
		}
	}
	return out
}

func TestSalesPageDerivesMoneyColumns(t *testing.T) {
	f := &stubFetcher{sales: someSales(3)}
	a := NewAssembler(f, 10)

	page, err := a.SalesPage(context.Background(), dto.ListQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Rows, 3)
	assert.Equal(t, "60.00", page.Rows[0].TotalRevenue.StringFixed(2))
	assert.Equal(t, "20.00", page.Rows[0].TotalCost.StringFixed(2))
	assert.Equal(t, "40.00", page.Rows[0].Profit.StringFixed(2))
	assert.Equal(t, 1, page.TotalPages)
}

func TestSalesPagePastTheEndIsClampedAndRefetched(t *testing.T) {
	f := &stubFetcher{sales: someSales(15)}
	a := NewAssembler(f, 10)

	page, err := a.SalesPage(context.Background(), dto.ListQuery{Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Rows, 5)
	require.Len(t, f.salesQueries, 2)
	assert.Equal(t, 2, f.salesQueries[1].Page)
}

func TestSalesPageErrorIsExplicit(t *testing.T) {
	f := &stubFetcher{listErr: apierror.Transient("api.ListSales", "server error", nil)}
	a := NewAssembler(f, 10)

	_, err := a.SalesPage(context.Background(), dto.ListQuery{Page: 1})
	require.Error(t, err, "a failed fetch must not masquerade as an empty list")
}

func TestInventoryPageDerivesStatus(t *testing.T) {
	f := &stubFetcher{inventory: []model.InventoryItem{
		{Product: "Dresses", Stock: 3, LowStockThreshold: 10},
		{Product: "Trousers", Stock: 30, LowStockThreshold: 10},
	}}
	a := NewAssembler(f, 10)

	page, err := a.InventoryPage(context.Background(), dto.ListQuery{Page: 1, SortBy: "stock"})
	require.NoError(t, err)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, model.StatusLow, page.Rows[0].Status)
	assert.Equal(t, model.StatusOK, page.Rows[1].Status)
	assert.Equal(t, dto.SortState{Field: "stock", Order: dto.SortAsc}, page.Sort)
}

func TestAnalyticsEmptyGetsPlaceholderSeries(t *testing.T) {
	a := NewAssembler(&stubFetcher{}, 10)
	view, err := a.Analytics(context.Background(), dto.SortState{Field: "totalRevenue", Order: dto.SortDesc})
	require.NoError(t, err)
	assert.Empty(t, view.Rows)
	assert.True(t, view.RevenueSeries.Empty())
	assert.True(t, view.ProfitSeries.Empty())
}
