package dto

import (
	"net/url"
	"strconv"
)

// Sort orders accepted by every list endpoint.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ─── List queries ────────────────────────────────────────────────────────────

// ListQuery parameterizes a paginated/sorted/filtered collection fetch.
// Search is a case-insensitive substring match applied server-side.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

// Normalize applies the defaults the UI assumes: page floored at 1, the
// configured page size, ascending order when a sort field is set.
func (q ListQuery) Normalize(defaultLimit int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.SortOrder != SortAsc && q.SortOrder != SortDesc {
		q.SortOrder = SortAsc
	}
	return q
}

// Values encodes the query for the wire. Zero-valued fields are omitted.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
		v.Set("sortOrder", q.SortOrder)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// TotalPages returns ceil(total / pageSize). A filtered-empty collection
// still has one (empty) page so pagination controls stay well-defined.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, TotalPages(total, pageSize)] so a stale
// pager can never issue a negative or out-of-range request.
func ClampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, pageSize); page > max {
		return max
	}
	return page
}

// ─── Sort state ──────────────────────────────────────────────────────────────

// SortState models the clickable column headers: clicking the active field
// flips asc→desc→asc, clicking a different field resets to asc.
type SortState struct {
	Field string
	Order string
}

func (s SortState) Toggle(field string) SortState {
	if s.Field == field && s.Order == SortAsc {
		return SortState{Field: field, Order: SortDesc}
	}
	return SortState{Field: field, Order: SortAsc}
}

// ─── Period queries ──────────────────────────────────────────────────────────

// Trend granularities. Granularity is a query parameter, not stored state.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// PeriodQuery selects the window for summary/trend endpoints: either a named
// filter or an explicit date range. Filter wins when both are set.
type PeriodQuery struct {
	Filter    string // daily | weekly | monthly
	StartDate string // YYYY-MM-DD
	EndDate   string
}

func (p PeriodQuery) Values() url.Values {
	v := url.Values{}
	if p.Filter != "" {
		v.Set("filter", p.Filter)
		return v
	}
	if p.StartDate != "" {
		v.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		v.Set("endDate", p.EndDate)
	}
	return v
}
