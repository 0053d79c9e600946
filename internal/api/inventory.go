package api

import (
	"context"

	"ufcdash/internal/dto"
	"ufcdash/internal/model"
)

// ListInventory fetches one page of inventory, sorted and filtered
// server-side.
func (c *Client) ListInventory(ctx context.Context, q dto.ListQuery) (*dto.InventoryList, error) {
	var out dto.InventoryList
	if err := c.get(ctx, "api.ListInventory", "/api/inventory", q.Values(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertInventory creates or replaces the item keyed by product name. The
// upsert is idempotent, so the request participates in the retry policy.
func (c *Client) UpsertInventory(ctx context.Context, req dto.UpsertInventoryRequest) (*model.InventoryItem, error) {
	const op = "api.UpsertInventory"
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out model.InventoryItem
	if err := c.post(ctx, op, "/api/inventory", req, &out, true, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// LowStock fetches the point-in-time snapshot the live feed is reconciled
// against.
func (c *Client) LowStock(ctx context.Context) ([]model.LowStockAlert, error) {
	var out []model.LowStockAlert
	if err := c.get(ctx, "api.LowStock", "/api/inventory/low-stock", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}
