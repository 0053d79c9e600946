package dto

import (
	"github.com/shopspring/decimal"

	"ufcdash/internal/apierror"
	"ufcdash/internal/model"
)

// ─── Requests ────────────────────────────────────────────────────────────────

// RecordSaleRequest is the body of POST /api/sales. RequestID is generated
// client-side so a retried POST cannot double-record the sale.
type RecordSaleRequest struct {
	Product      string          `json:"product"      validate:"required"`
	Quantity     int             `json:"quantity"     validate:"required,min=1"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	BuyingPrice  decimal.Decimal `json:"buyingPrice"`
	RequestID    string          `json:"requestId,omitempty"`
}

// Validate blocks submission before any network call: required fields via
// struct tags, sign constraints on the decimal prices by hand (validator has
// no view into decimal.Decimal internals).
func (r RecordSaleRequest) Validate() error {
	const op = "sales.Record"
	if err := check(op, r); err != nil {
		return err
	}
	fields := map[string]string{}
	if r.SellingPrice.IsNegative() {
		fields["SellingPrice"] = "min"
	}
	if r.BuyingPrice.IsNegative() {
		fields["BuyingPrice"] = "min"
	}
	if len(fields) > 0 {
		return apierror.Validation(op, fields)
	}
	return nil
}

// ─── Responses ───────────────────────────────────────────────────────────────

// SaleList is the {data, total} envelope of GET /api/sales. Total reflects the
// filtered collection, so page counts computed from it are correct.
type SaleList struct {
	Data  []model.SaleRecord `json:"data"`
	Total int                `json:"total"`
}
