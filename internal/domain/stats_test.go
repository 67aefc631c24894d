package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func donationWith(status Status, amount float64, createdAt time.Time) *Donation {
	return &Donation{
		Status:    status,
		Amount:    decimal.NewFromFloat(amount),
		CreatedAt: createdAt,
	}
}

func TestAggregateStats_StatusPartitions(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	donations := []*Donation{
		donationWith(StatusCompleted, 100, now),
		donationWith(StatusCompleted, 50, now),
		donationWith(StatusPending, 30, now),
		donationWith(StatusFailed, 20, now),
		donationWith(StatusRefunded, 10, now),
	}

	stats := AggregateStats(donations, now)

	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(150)),
		"expected 150.00, got %v", stats.TotalAmount)
	assert.Equal(t, 2, stats.CompletedCount)
	assert.Equal(t, 1, stats.PendingCount)
}

func TestAggregateStats_ThisMonthFiltering(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	yearAgo := now.AddDate(-1, 0, 0)

	donations := []*Donation{
		donationWith(StatusCompleted, 100, now),
		donationWith(StatusCompleted, 100, yearAgo),
	}

	stats := AggregateStats(donations, now)

	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, stats.ThisMonthAmount.Equal(decimal.NewFromInt(100)),
		"only the current-month donation counts, got %v", stats.ThisMonthAmount)
}

func TestAggregateStats_ThisMonthUsesResolvedPaymentTime(t *testing.T) {
	now := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)
	createdLastMonth := time.Date(2024, 3, 28, 9, 0, 0, 0, time.UTC)
	capturedThisMonth := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	// Ordered in March, captured in April: the capture time decides the month.
	d := donationWith(StatusCompleted, 500, createdLastMonth)
	d.PaymentCapturedAt = &capturedThisMonth

	stats := AggregateStats([]*Donation{d}, now)

	assert.True(t, stats.ThisMonthAmount.Equal(decimal.NewFromInt(500)))
}

func TestAggregateStats_CaseInsensitiveStatuses(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	donations := []*Donation{
		donationWith("Completed", 100, now),
		donationWith("PAID", 25, now),
		donationWith("Pending", 30, now),
	}

	stats := AggregateStats(donations, now)

	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, 2, stats.CompletedCount)
	assert.Equal(t, 1, stats.PendingCount)
}

func TestAggregateStats_MalformedRecordDegrades(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	// Negative amount normalizes to zero; record still counts toward the
	// completed cardinality.
	bad := donationWith(StatusCompleted, -500, now)
	good := donationWith(StatusCompleted, 100, now)

	stats := AggregateStats([]*Donation{bad, good}, now)

	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 2, stats.CompletedCount)
}

func TestAggregateStats_EndToEndScenario(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	captured := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	first := &Donation{
		Status:            "Completed",
		Amount:            decimal.RequireFromString("1234.5"),
		PaymentCapturedAt: &captured,
	}
	second := &Donation{
		Status:    "pending",
		Amount:    decimal.Zero,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	stats := AggregateStats([]*Donation{first, second}, now)

	assert.True(t, stats.TotalAmount.Equal(decimal.RequireFromString("1234.5")))
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 1, stats.PendingCount)
	assert.True(t, stats.ThisMonthAmount.Equal(decimal.RequireFromString("1234.5")))

	// Same input, different clock: deterministic per snapshot.
	later := AggregateStats([]*Donation{first, second}, now.AddDate(1, 0, 0))
	assert.True(t, later.ThisMonthAmount.Equal(decimal.Zero))
	assert.True(t, later.TotalAmount.Equal(stats.TotalAmount))
}

func TestAggregateStats_EmptyList(t *testing.T) {
	stats := AggregateStats(nil, time.Now())

	assert.True(t, stats.TotalAmount.Equal(decimal.Zero))
	assert.Equal(t, 0, stats.CompletedCount)
	assert.Equal(t, 0, stats.PendingCount)
	assert.True(t, stats.ThisMonthAmount.Equal(decimal.Zero))
}
