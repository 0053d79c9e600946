package viewmodel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ufcdash/internal/dto"
	"ufcdash/internal/model"
)

// Point is one chart-ready label/value pair.
type Point struct {
	Label string
	Value decimal.Decimal
}

// Series is the shape handed to any chart renderer. A series built from an
// empty collection carries a single placeholder point so the chart never
// renders against an undefined axis.
type Series struct {
	Name   string
	Points []Point
}

// Placeholder is the label of the point substituted for an empty series.
const Placeholder = "no data"

// Empty reports whether the series holds only the placeholder.
func (s Series) Empty() bool {
	return len(s.Points) == 1 && s.Points[0].Label == Placeholder
}

func placeholderSeries(name string) Series {
	return Series{Name: name, Points: []Point{{Label: Placeholder, Value: decimal.Zero}}}
}

// trendSeries projects one numeric field of the trend onto a series, with
// labels formatted for the selected granularity.
func trendSeries(name, filter string, points []model.TrendPoint, value func(model.TrendPoint) decimal.Decimal) Series {
	if len(points) == 0 {
		return placeholderSeries(name)
	}
	s := Series{Name: name, Points: make([]Point, 0, len(points))}
	for _, p := range points {
		s.Points = append(s.Points, Point{Label: trendLabel(p.Date, filter), Value: value(p)})
	}
	return s
}

// trendLabel mirrors how the dashboard titles its x-axis per granularity.
func trendLabel(t time.Time, filter string) string {
	switch filter {
	case dto.PeriodWeekly:
		return fmt.Sprintf("Week %d %s", (t.Day()+6)/7, t.Format("Jan 2006"))
	case dto.PeriodMonthly:
		return t.Format("January 2006")
	default:
		return t.Format("Jan 02, 15:04")
	}
}

// productSeries projects one numeric field of per-product aggregates.
func productSeries(name string, rows []model.AnalyticsRow, value func(model.AnalyticsRow) decimal.Decimal) Series {
	if len(rows) == 0 {
		return placeholderSeries(name)
	}
	s := Series{Name: name, Points: make([]Point, 0, len(rows))}
	for _, r := range rows {
		s.Points = append(s.Points, Point{Label: r.Product, Value: value(r)})
	}
	return s
}
