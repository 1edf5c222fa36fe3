package service

import (
	"context"
	"time"

	"github.com/jms-catering/api/internal/order"
	"github.com/shopspring/decimal"
)

// InsightsStore defines the repository methods needed for business insights.
type InsightsStore interface {
	List(ctx context.Context) ([]order.Order, error)
}

// MonthVolume is the order count for one calendar month.
type MonthVolume struct {
	Month string `json:"month"` // "2006-01"
	Label string `json:"label"` // "Jan"
	Count int    `json:"count"`
}

// Insights is the dashboard summary: lifetime and current-month order counts
// and revenue, plus order volume over the trailing six months. Revenue is the
// sum of estimated totals.
type Insights struct {
	TotalOrders  int             `json:"total_orders"`
	MonthOrders  int             `json:"month_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	MonthRevenue decimal.Decimal `json:"month_revenue"`
	Volume       []MonthVolume   `json:"volume"`
}

// InsightsService computes dashboard summaries over the order book.
type InsightsService struct {
	store InsightsStore
	now   func() time.Time
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(store InsightsStore) *InsightsService {
	return &InsightsService{store: store, now: time.Now}
}

// Summarize computes the insight summary as of now.
func (s *InsightsService) Summarize(ctx context.Context) (Insights, error) {
	orders, err := s.store.List(ctx)
	if err != nil {
		return Insights{}, err
	}

	now := s.now()
	thisMonth := monthOf(now)

	// Trailing six months, oldest first, current month last. Stepping from
	// the first of the month keeps AddDate from normalizing a month-end
	// date into the wrong month (Mar 31 minus one month is Mar 3).
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	months := make([]MonthVolume, 6)
	index := make(map[string]int, 6)
	for i := 0; i < 6; i++ {
		m := monthStart.AddDate(0, i-5, 0)
		key := monthOf(m)
		months[i] = MonthVolume{Month: key, Label: m.Format("Jan")}
		index[key] = i
	}

	out := Insights{
		TotalRevenue: decimal.Zero,
		MonthRevenue: decimal.Zero,
		Volume:       months,
	}
	for _, o := range orders {
		out.TotalOrders++
		out.TotalRevenue = out.TotalRevenue.Add(o.TotalEstimatedCost)

		key := monthOf(o.CreatedAt)
		if key == thisMonth {
			out.MonthOrders++
			out.MonthRevenue = out.MonthRevenue.Add(o.TotalEstimatedCost)
		}
		if i, ok := index[key]; ok {
			out.Volume[i].Count++
		}
	}
	return out, nil
}

func monthOf(t time.Time) string {
	return t.Format("2006-01")
}
