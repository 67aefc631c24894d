package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/sevatrust/donation-engine/internal/service"
	customError "github.com/sevatrust/donation-engine/pkg/errors"
	"github.com/sevatrust/donation-engine/pkg/response"
)

// webhookBodyLimit caps gateway payload size. Events are small; anything
// larger is not a payment event.
const webhookBodyLimit = 1 << 20

type WebhookHandler struct {
	service *service.DonationService
}

func NewWebhookHandler(service *service.DonationService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// HandlePaymentEvent ingests a gateway webhook delivery. Signature
// verification happens in the gateway-facing proxy before the request
// reaches this handler. Duplicate deliveries are acknowledged with 200 so
// the gateway stops retrying them.
func (h *WebhookHandler) HandlePaymentEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		response.BadRequest(w, "Could not read request body", err)
		return
	}

	donation, err := h.service.HandlePaymentEvent(r.Context(), body)
	if err != nil {
		if errors.Is(err, customError.ErrDuplicateEvent) {
			paymentEventsTotal.WithLabelValues("duplicate").Inc()
			response.Success(w, map[string]string{"status": "already processed"})
			return
		}
		paymentEventsTotal.WithLabelValues("rejected").Inc()
		writeServiceError(w, err)
		return
	}

	paymentEventsTotal.WithLabelValues(string(donation.Status)).Inc()
	response.Success(w, donation)
}
