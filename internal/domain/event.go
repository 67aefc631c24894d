package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrEventMissingOrderID = errors.New("payment event has no order id")

// PaymentEvent is the canonical shape of a gateway webhook delivery. The
// raw payloads are not consistent about field naming (order_id vs orderId,
// captured_at at the top level vs metadata.payment_captured_at), so all
// accepted spellings are folded into this one struct before any other code
// sees the event. Signature verification happens upstream of this package.
type PaymentEvent struct {
	EventID    string
	OrderID    string
	PaymentID  string
	Status     Status
	Amount     any
	CapturedAt *time.Time
}

// ParsePaymentEvent decodes a webhook body into the canonical event shape.
// Only a missing order id is an error — without it the event cannot be
// matched to a donation. Unparseable optional fields are dropped, not
// rejected.
func ParsePaymentEvent(body []byte) (*PaymentEvent, error) {
	var raw struct {
		EventID      string `json:"event_id"`
		EventIDAlt   string `json:"eventId"`
		OrderID      string `json:"order_id"`
		OrderIDAlt   string `json:"orderId"`
		PaymentID    string `json:"payment_id"`
		PaymentIDAlt string `json:"paymentId"`
		Status       string `json:"status"`
		Amount       any    `json:"amount"`
		CapturedAt   string `json:"captured_at"`
		Metadata     struct {
			PaymentCapturedAt string `json:"payment_captured_at"`
		} `json:"metadata"`
	}

	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	ev := &PaymentEvent{
		EventID:    firstNonEmpty(raw.EventID, raw.EventIDAlt),
		OrderID:    firstNonEmpty(raw.OrderID, raw.OrderIDAlt),
		PaymentID:  firstNonEmpty(raw.PaymentID, raw.PaymentIDAlt),
		Status:     ParseStatus(raw.Status),
		Amount:     raw.Amount,
		CapturedAt: parseEventTime(firstNonEmpty(raw.Metadata.PaymentCapturedAt, raw.CapturedAt)),
	}

	if ev.OrderID == "" {
		return nil, ErrEventMissingOrderID
	}

	return ev, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseEventTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
