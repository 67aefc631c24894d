package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePaymentTime_Priority(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 15, 10, 5, 0, 0, time.UTC)
	statusChanged := time.Date(2024, 3, 15, 10, 1, 0, 0, time.UTC)
	captured := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	d := &Donation{
		Status:            StatusCompleted,
		CreatedAt:         created,
		UpdatedAt:         updated,
		StatusChangedAt:   &statusChanged,
		PaymentCapturedAt: &captured,
	}

	// All fields present: gateway capture time wins.
	assert.Equal(t, captured, ResolvePaymentTime(d))

	// Then the locally observed status transition.
	d.PaymentCapturedAt = nil
	assert.Equal(t, statusChanged, ResolvePaymentTime(d))

	// Then the last-mutation time.
	d.StatusChangedAt = nil
	assert.Equal(t, updated, ResolvePaymentTime(d))

	// Finally creation time.
	d.UpdatedAt = time.Time{}
	assert.Equal(t, created, ResolvePaymentTime(d))
}

func TestResolvePaymentTime_ZeroCapturedAtSkipped(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	statusChanged := time.Date(2024, 3, 15, 10, 1, 0, 0, time.UTC)
	zero := time.Time{}

	d := &Donation{
		Status:            StatusPaid,
		CreatedAt:         created,
		StatusChangedAt:   &statusChanged,
		PaymentCapturedAt: &zero,
	}

	assert.Equal(t, statusChanged, ResolvePaymentTime(d))
}

func TestResolvePaymentTime_NonPaidAlwaysCreatedAt(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	captured := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusPending, StatusFailed, StatusCancelled, StatusRefunded, StatusUnknown} {
		d := &Donation{
			Status:            status,
			CreatedAt:         created,
			UpdatedAt:         updated,
			PaymentCapturedAt: &captured,
		}
		assert.Equal(t, created, ResolvePaymentTime(d),
			"status %q must resolve to creation time", status)
	}
}
