package api

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"ufcdash/internal/dto"
	"ufcdash/internal/model"
)

// ListSales fetches one page of sales. Search matches the product name
// case-insensitively server-side; the returned total reflects the filter.
func (c *Client) ListSales(ctx context.Context, q dto.ListQuery) (*dto.SaleList, error) {
	var out dto.SaleList
	if err := c.get(ctx, "api.ListSales", "/api/sales", q.Values(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordSale submits a new sale. A client-generated request id makes the POST
// safe to retry: the server deduplicates, so a timeout followed by a retry
// cannot record the sale twice.
func (c *Client) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*model.SaleRecord, error) {
	const op = "api.RecordSale"
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	var out model.SaleRecord
	if err := c.post(ctx, op, "/api/sales", req, &out, true, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary fetches the dashboard cards plus recent sales and top products for
// the selected period.
func (c *Client) Summary(ctx context.Context, p dto.PeriodQuery) (*model.SalesSummary, error) {
	var out model.SalesSummary
	if err := c.get(ctx, "api.Summary", "/api/sales/summary", p.Values(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Trend fetches the revenue/profit series, ordered by date ascending.
func (c *Client) Trend(ctx context.Context, p dto.PeriodQuery) ([]model.TrendPoint, error) {
	var out []model.TrendPoint
	if err := c.get(ctx, "api.Trend", "/api/sales/trend", p.Values(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Analytics fetches per-product aggregates sorted server-side.
func (c *Client) Analytics(ctx context.Context, sort dto.SortState) ([]model.AnalyticsRow, error) {
	v := url.Values{}
	if sort.Field != "" {
		order := sort.Order
		if order != dto.SortAsc && order != dto.SortDesc {
			order = dto.SortAsc
		}
		v.Set("sortBy", sort.Field)
		v.Set("sortOrder", order)
	}
	var out []model.AnalyticsRow
	if err := c.get(ctx, "api.Analytics", "/api/sales/analytics", v, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}
