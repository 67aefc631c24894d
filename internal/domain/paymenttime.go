package domain

import "time"

// ResolvePaymentTime derives the single authoritative "when was this paid"
// timestamp for a donation. A record accumulates timestamps from several
// uncoordinated writers (order creation, webhook handler, manual edits), so
// the choice follows a fixed trust order:
//
//	paid record:   payment_captured_at > status_changed_at > updated_at > created_at
//	anything else: created_at
//
// A non-paid record has no meaningful payment time; creation time is the
// only defensible timestamp to show for it. The function never panics on
// absent optional fields.
func ResolvePaymentTime(d *Donation) time.Time {
	if d.Status.IsPaid() {
		if t := d.PaymentCapturedAt; t != nil && !t.IsZero() {
			return *t
		}
		if t := d.StatusChangedAt; t != nil && !t.IsZero() {
			return *t
		}
		if !d.UpdatedAt.IsZero() {
			return d.UpdatedAt
		}
	}
	return d.CreatedAt
}
