package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sevatrust/donation-engine/pkg/money"
)

// DashboardStats is recomputed from the full donation list on every read.
// There is intentionally no incremental or cached variant: a stale cache
// could diverge from the records it summarizes.
type DashboardStats struct {
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CompletedCount  int             `json:"completed_count"`
	PendingCount    int             `json:"pending_count"`
	ThisMonthAmount decimal.Decimal `json:"this_month_amount"`
}

// AggregateStats computes dashboard statistics over a snapshot of donation
// records. Paid records (completed/paid) contribute to the money totals and
// the completed count; pending records (pending/processing/created) only to
// the pending count; failed, cancelled, refunded and unknown statuses are
// excluded from everything.
//
// TotalAmount is the single source of truth for "money received" — any
// other paid-sum in the application must go through this function so two
// screens can never disagree. ThisMonthAmount covers the paid subset whose
// resolved payment time falls in now's calendar month and year.
//
// Malformed records degrade instead of aborting the whole set: a bad amount
// contributes zero via money.Normalize, a record with missing timestamps
// falls back to its creation time via ResolvePaymentTime. The input slice
// is never mutated.
func AggregateStats(donations []*Donation, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalAmount:     decimal.Zero,
		ThisMonthAmount: decimal.Zero,
	}

	for _, d := range donations {
		switch {
		case d.Status.IsPaid():
			amount := money.Normalize(d.Amount)
			stats.TotalAmount = stats.TotalAmount.Add(amount)
			stats.CompletedCount++

			paidAt := ResolvePaymentTime(d)
			if paidAt.Year() == now.Year() && paidAt.Month() == now.Month() {
				stats.ThisMonthAmount = stats.ThisMonthAmount.Add(amount)
			}
		case d.Status.IsPending():
			stats.PendingCount++
		}
	}

	return stats
}
