package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ufcdash/internal/apierror"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
	assert.Equal(t, 1, TotalPages(100, 0)) // degenerate page size
}

func TestClampPageNeverOutOfRange(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 35, 10))
	assert.Equal(t, 1, ClampPage(-4, 35, 10))
	assert.Equal(t, 3, ClampPage(3, 35, 10))
	assert.Equal(t, 4, ClampPage(9, 35, 10))
	assert.Equal(t, 1, ClampPage(7, 0, 10))
}

func TestSortToggle(t *testing.T) {
	s := SortState{}

	s = s.Toggle("totalRevenue")
	assert.Equal(t, SortState{"totalRevenue", SortAsc}, s)

	s = s.Toggle("totalRevenue")
	assert.Equal(t, SortState{"totalRevenue", SortDesc}, s)

	s = s.Toggle("totalRevenue")
	assert.Equal(t, SortState{"totalRevenue", SortAsc}, s)

	// a different field resets to ascending even from desc
	s = s.Toggle("totalRevenue") // back to desc
	s = s.Toggle("totalProfit")
	assert.Equal(t, SortState{"totalProfit", SortAsc}, s)
}

func TestListQueryNormalizeAndValues(t *testing.T) {
	q := ListQuery{Page: 0, SortBy: "stock", SortOrder: "sideways"}.Normalize(10)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, SortAsc, q.SortOrder)

	v := q.Values()
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "10", v.Get("limit"))
	assert.Equal(t, "stock", v.Get("sortBy"))
	assert.Equal(t, "asc", v.Get("sortOrder"))
	assert.Empty(t, v.Get("search"))
}

func TestPeriodQueryFilterWins(t *testing.T) {
	v := PeriodQuery{Filter: PeriodWeekly, StartDate: "2025-01-01", EndDate: "2025-02-01"}.Values()
	assert.Equal(t, "weekly", v.Get("filter"))
	assert.Empty(t, v.Get("startDate"))

	v = PeriodQuery{StartDate: "2025-01-01", EndDate: "2025-02-01"}.Values()
	assert.Equal(t, "2025-01-01", v.Get("startDate"))
	assert.Equal(t, "2025-02-01", v.Get("endDate"))
}

func TestRecordSaleValidation(t *testing.T) {
	err := RecordSaleRequest{}.Validate()
	assert.Error(t, err)

	err = RecordSaleRequest{Product: "Men Suits", Quantity: 2}.Validate()
	assert.NoError(t, err)

	err = RecordSaleRequest{
		Product:      "Men Suits",
		Quantity:     2,
		SellingPrice: decimal.NewFromInt(-10),
	}.Validate()
	assert.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}
