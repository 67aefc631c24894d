package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the closed set of payment states a donation can be in. Raw
// gateway/storage strings are parsed into a Status exactly once at the
// boundary; everything downstream switches on the enum instead of
// re-comparing strings.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCreated    Status = "created"
	StatusCompleted  Status = "completed"
	StatusPaid       Status = "paid"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps a raw status string onto the canonical enum,
// case-insensitively. Anything outside the known set becomes
// StatusUnknown, which is excluded from every aggregate.
func ParseStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending
	case StatusProcessing:
		return StatusProcessing
	case StatusCreated:
		return StatusCreated
	case StatusCompleted:
		return StatusCompleted
	case StatusPaid:
		return StatusPaid
	case StatusFailed:
		return StatusFailed
	case StatusCancelled:
		return StatusCancelled
	case StatusRefunded:
		return StatusRefunded
	default:
		return StatusUnknown
	}
}

// IsPaid reports whether the donation counts as money received.
func (s Status) IsPaid() bool {
	switch ParseStatus(string(s)) {
	case StatusCompleted, StatusPaid:
		return true
	}
	return false
}

// IsPending reports whether the donation is still in flight.
func (s Status) IsPending() bool {
	switch ParseStatus(string(s)) {
	case StatusPending, StatusProcessing, StatusCreated:
		return true
	}
	return false
}

// Donation represents one attempted or completed payment.
type Donation struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	OrderID           string          `json:"order_id" db:"order_id"`
	ProjectID         *uuid.UUID      `json:"project_id,omitempty" db:"project_id"`
	DonorName         string          `json:"donor_name" db:"donor_name"`
	DonorEmail        string          `json:"donor_email" db:"donor_email"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	AmountMinor       int64           `json:"amount_minor" db:"amount_minor"`
	Currency          string          `json:"currency" db:"currency"`
	Status            Status          `json:"status" db:"status"`
	GatewayPaymentID  string          `json:"gateway_payment_id,omitempty" db:"gateway_payment_id"`
	Message           string          `json:"message,omitempty" db:"message"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
	StatusChangedAt   *time.Time      `json:"status_changed_at,omitempty" db:"status_changed_at"`
	PaymentCapturedAt *time.Time      `json:"payment_captured_at,omitempty" db:"payment_captured_at"`
}

// DTOs for requests and responses

type CreateDonationRequest struct {
	DonorName  string `json:"donor_name" validate:"required"`
	DonorEmail string `json:"donor_email" validate:"required,email"`
	// Amount is deliberately untyped: clients send it as a JSON number or a
	// string and money.Normalize adapts either at the boundary.
	Amount    any    `json:"amount" validate:"required"`
	Currency  string `json:"currency"`
	ProjectID string `json:"project_id"`
	Message   string `json:"message"`
}

// CheckoutResponse is what the frontend hands to the hosted gateway
// checkout: the order reference and the exact minor-unit amount to charge.
type CheckoutResponse struct {
	DonationID  uuid.UUID `json:"donation_id"`
	OrderID     string    `json:"order_id"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
}

// DonationView decorates a donation with the derived values admin screens
// show: the canonical payment time and the formatted display amount.
type DonationView struct {
	*Donation
	PaymentTime   time.Time `json:"payment_time"`
	DisplayAmount string    `json:"display_amount"`
}
