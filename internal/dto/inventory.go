package dto

import (
	"github.com/shopspring/decimal"

	"ufcdash/internal/apierror"
	"ufcdash/internal/model"
)

// UpsertInventoryRequest is the body of POST /api/inventory. The server
// upserts by product name, which makes a retried POST harmless.
type UpsertInventoryRequest struct {
	Product           string          `json:"product"           validate:"required"`
	Stock             int             `json:"stock"             validate:"min=0"`
	BuyingPrice       decimal.Decimal `json:"buyingPrice"`
	LowStockThreshold int             `json:"lowStockThreshold" validate:"min=0"`
}

func (r UpsertInventoryRequest) Validate() error {
	const op = "inventory.Upsert"
	if err := check(op, r); err != nil {
		return err
	}
	if r.BuyingPrice.IsNegative() {
		return apierror.Validation(op, map[string]string{"BuyingPrice": "min"})
	}
	return nil
}

// InventoryList is the {data, total} envelope of GET /api/inventory.
type InventoryList struct {
	Data  []model.InventoryItem `json:"data"`
	Total int                   `json:"total"`
}
