package model

import "github.com/shopspring/decimal"

// Stock status as rendered in the inventory table.
const (
	StatusLow = "low"
	StatusOK  = "ok"
)

// InventoryItem is one stocked product. Product is the unique key; writes go
// through an upsert keyed by it.
type InventoryItem struct {
	ID                string          `json:"_id"`
	Product           string          `json:"product"`
	Stock             int             `json:"stock"`
	BuyingPrice       decimal.Decimal `json:"buyingPrice"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// Status derives "low" iff stock has fallen to or below the threshold.
func (i InventoryItem) Status() string {
	if i.Stock <= i.LowStockThreshold {
		return StatusLow
	}
	return StatusOK
}

// LowStockAlert is the same logical fact whether it came from the low-stock
// snapshot or from the push channel: this product is at or below threshold.
// Two alerts for one product are deduplicated by recency at assembly time.
type LowStockAlert struct {
	Product           string `json:"product"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}
