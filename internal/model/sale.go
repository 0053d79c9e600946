package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord mirrors one sale as stored by the remote API. Records are
// immutable from the client's point of view: never mutated locally, only
// refetched.
type SaleRecord struct {
	ID           string          `json:"_id"`
	Product      string          `json:"product"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	BuyingPrice  decimal.Decimal `json:"buyingPrice"`
	// TotalPrice is the server-computed quantity × sellingPrice. Derived
	// values the server omits are recomputed client-side (see metrics).
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Date       time.Time       `json:"date"`
}

// TotalRevenue returns quantity × sellingPrice.
func (s SaleRecord) TotalRevenue() decimal.Decimal {
	return s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// TotalCost returns quantity × buyingPrice.
func (s SaleRecord) TotalCost() decimal.Decimal {
	return s.BuyingPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// Profit returns revenue minus cost, computed from unrounded intermediates.
func (s SaleRecord) Profit() decimal.Decimal {
	return s.TotalRevenue().Sub(s.TotalCost())
}
