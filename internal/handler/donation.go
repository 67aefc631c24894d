package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/sevatrust/donation-engine/internal/domain"
	"github.com/sevatrust/donation-engine/internal/service"
	customError "github.com/sevatrust/donation-engine/pkg/errors"
	"github.com/sevatrust/donation-engine/pkg/response"
)

type DonationHandler struct {
	service   *service.DonationService
	validator *validator.Validate
}

func NewDonationHandler(service *service.DonationService) *DonationHandler {
	return &DonationHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create registers a donation attempt and returns the checkout payload.
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	_, checkout, err := h.service.CreateDonation(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	donationsCreatedTotal.Inc()
	response.Created(w, checkout)
}

// List returns all donations decorated for the admin back office.
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListDonations(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, views)
}

// Get returns a single donation by id.
func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["donationId"])
	if err != nil {
		response.BadRequest(w, "Invalid donation id", err)
		return
	}

	view, err := h.service.GetDonation(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, view)
}

// Stats returns the recomputed dashboard statistics.
func (h *DonationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, stats)
}

// writeServiceError maps business error codes onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, "Internal server error", err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodeDonationNotFound, customError.ErrCodeProjectNotFound:
		response.NotFound(w, businessErr.Message)
	case customError.ErrCodeInvalidAmount, customError.ErrCodeAmountBelowMin, customError.ErrCodeInvalidEvent:
		response.BadRequest(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeProjectExists, customError.ErrCodeDuplicateEvent:
		response.Conflict(w, businessErr.Message, businessErr.Err)
	default:
		response.InternalServerError(w, businessErr.Message, businessErr.Err)
	}
}
