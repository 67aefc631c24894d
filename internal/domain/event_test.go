package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentEvent_SnakeCase(t *testing.T) {
	body := []byte(`{
		"event_id": "evt_1",
		"order_id": "order_abc",
		"payment_id": "pay_9",
		"status": "Completed",
		"amount": "1234.5",
		"metadata": {"payment_captured_at": "2024-03-15T10:00:00Z"}
	}`)

	ev, err := ParsePaymentEvent(body)
	require.NoError(t, err)

	assert.Equal(t, "evt_1", ev.EventID)
	assert.Equal(t, "order_abc", ev.OrderID)
	assert.Equal(t, "pay_9", ev.PaymentID)
	assert.Equal(t, StatusCompleted, ev.Status)
	require.NotNil(t, ev.CapturedAt)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), *ev.CapturedAt)
}

func TestParsePaymentEvent_CamelCaseAlternates(t *testing.T) {
	body := []byte(`{
		"eventId": "evt_2",
		"orderId": "order_xyz",
		"paymentId": "pay_10",
		"status": "failed",
		"captured_at": "2024-03-16T08:30:00Z"
	}`)

	ev, err := ParsePaymentEvent(body)
	require.NoError(t, err)

	assert.Equal(t, "evt_2", ev.EventID)
	assert.Equal(t, "order_xyz", ev.OrderID)
	assert.Equal(t, "pay_10", ev.PaymentID)
	assert.Equal(t, StatusFailed, ev.Status)
	require.NotNil(t, ev.CapturedAt)
}

func TestParsePaymentEvent_MetadataWinsOverTopLevel(t *testing.T) {
	body := []byte(`{
		"order_id": "order_abc",
		"status": "paid",
		"captured_at": "2024-03-16T08:30:00Z",
		"metadata": {"payment_captured_at": "2024-03-15T10:00:00Z"}
	}`)

	ev, err := ParsePaymentEvent(body)
	require.NoError(t, err)
	require.NotNil(t, ev.CapturedAt)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), *ev.CapturedAt)
}

func TestParsePaymentEvent_BadOptionalFieldsDropped(t *testing.T) {
	body := []byte(`{
		"order_id": "order_abc",
		"status": "something-new",
		"metadata": {"payment_captured_at": "not a timestamp"}
	}`)

	ev, err := ParsePaymentEvent(body)
	require.NoError(t, err)

	assert.Equal(t, StatusUnknown, ev.Status)
	assert.Nil(t, ev.CapturedAt)
}

func TestParsePaymentEvent_MissingOrderID(t *testing.T) {
	_, err := ParsePaymentEvent([]byte(`{"status": "completed"}`))
	assert.ErrorIs(t, err, ErrEventMissingOrderID)
}

func TestParsePaymentEvent_InvalidJSON(t *testing.T) {
	_, err := ParsePaymentEvent([]byte(`{`))
	assert.Error(t, err)
}
