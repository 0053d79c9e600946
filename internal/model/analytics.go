package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRow aggregates all sales of one product. Unique per product within
// a query; sortable on any numeric field, asc or desc.
type AnalyticsRow struct {
	Product       string          `json:"product"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
}

// TrendPoint is one bucket of the revenue/profit trend, ordered by date
// ascending. Granularity (daily/weekly/monthly) is a query parameter.
type TrendPoint struct {
	Date         time.Time       `json:"date"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
}

// SalesSummary backs the dashboard cards plus its two embedded lists.
type SalesSummary struct {
	TotalSales   int             `json:"totalSales"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	RecentSales  []SaleRecord    `json:"recentSales"`
	TopProducts  []AnalyticsRow  `json:"topProducts"`
}
