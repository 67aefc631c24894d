package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sevatrust/donation-engine/internal/config"
	"github.com/sevatrust/donation-engine/internal/domain"
	"github.com/sevatrust/donation-engine/internal/repository"
	customError "github.com/sevatrust/donation-engine/pkg/errors"
	"github.com/sevatrust/donation-engine/pkg/money"
)

type DonationService struct {
	donationRepo repository.DonationRepository
	events       repository.EventStore
	config       *config.Config
}

func NewDonationService(
	donationRepo repository.DonationRepository,
	events repository.EventStore,
	config *config.Config,
) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		events:       events,
		config:       config,
	}
}

// CreateDonation registers a donation attempt and returns the payload the
// frontend hands to the hosted gateway checkout.
func (s *DonationService) CreateDonation(ctx context.Context, request *domain.CreateDonationRequest) (*domain.Donation, *domain.CheckoutResponse, error) {
	// 1. Normalize the amount once at the boundary; everything downstream
	// sees the canonical 2-dp value.
	amount := money.Normalize(request.Amount)

	min := s.config.GetMinAmount()
	if amount.LessThan(min) {
		return nil, nil, customError.WrapAmountBelowMin(
			money.Format(amount, request.Currency),
			money.Format(min, request.Currency),
		)
	}

	currency := request.Currency
	if currency == "" {
		currency = s.config.Payment.Currency
	}

	// 2. Attribute to a project when one was named
	var projectID *uuid.UUID
	if request.ProjectID != "" {
		id, err := uuid.Parse(request.ProjectID)
		if err != nil {
			return nil, nil, customError.WrapProjectNotFound(request.ProjectID)
		}
		projectID = &id
	}

	// 3. Build the donation; the gateway receives the integer minor-unit
	// amount, never the float
	now := time.Now()
	donation := &domain.Donation{
		ID:          uuid.New(),
		OrderID:     "order_" + uuid.NewString(),
		ProjectID:   projectID,
		DonorName:   request.DonorName,
		DonorEmail:  request.DonorEmail,
		Amount:      amount,
		AmountMinor: money.ToMinorUnits(amount),
		Currency:    currency,
		Status:      domain.StatusCreated,
		Message:     request.Message,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	checkout := &domain.CheckoutResponse{
		DonationID:  donation.ID,
		OrderID:     donation.OrderID,
		AmountMinor: donation.AmountMinor,
		Currency:    donation.Currency,
	}

	return donation, checkout, nil
}

// GetDonation returns a single donation decorated with its resolved payment
// time and display amount.
func (s *DonationService) GetDonation(ctx context.Context, id uuid.UUID) (*domain.DonationView, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapDonationNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return s.view(donation), nil
}

// ListDonations returns all donations, newest first, decorated for display.
func (s *DonationService) ListDonations(ctx context.Context) ([]*domain.DonationView, error) {
	donations, err := s.donationRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	views := make([]*domain.DonationView, 0, len(donations))
	for _, d := range donations {
		views = append(views, s.view(d))
	}

	return views, nil
}

// HandlePaymentEvent applies a gateway webhook delivery to the matching
// donation. Deliveries are idempotent per event id; unknown statuses are
// recorded nowhere and leave the donation untouched.
func (s *DonationService) HandlePaymentEvent(ctx context.Context, body []byte) (*domain.Donation, error) {
	// 1. Fold the raw payload into the canonical event shape
	event, err := domain.ParsePaymentEvent(body)
	if err != nil {
		return nil, customError.WrapInvalidEvent(err)
	}

	// 2. Gateways redeliver; only the first delivery of an event id may act
	if event.EventID != "" {
		first, err := s.events.MarkProcessed(ctx, event.EventID, s.config.GetEventDedupeTTL())
		if err != nil {
			return nil, customError.WrapCacheError(err)
		}
		if !first {
			return nil, customError.WrapDuplicateEvent(event.EventID)
		}
	}

	donation, err := s.donationRepo.GetByOrderID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapDonationNotFound(event.OrderID)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	// 3. An unrecognized status is a classification gap, not a transition
	if event.Status == domain.StatusUnknown {
		log.Printf("ignoring payment event with unknown status for order %s", event.OrderID)
		return donation, nil
	}

	// 4. A bad amount in the event does not block the status transition,
	// but it is worth an audit trail before fail-to-zero hides it
	if event.Amount != nil {
		reported := money.Normalize(event.Amount)
		if !reported.Equal(donation.Amount) {
			log.Printf("payment event amount %s disagrees with donation %s for order %s",
				reported, donation.Amount, event.OrderID)
		}
	}

	// 5. Apply the transition and stamp the observation time
	now := time.Now()
	donation.Status = event.Status
	donation.StatusChangedAt = &now
	if event.PaymentID != "" {
		donation.GatewayPaymentID = event.PaymentID
	}
	if event.Status.IsPaid() && event.CapturedAt != nil {
		donation.PaymentCapturedAt = event.CapturedAt
	}

	if err := s.donationRepo.UpdatePaymentState(ctx, donation); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return donation, nil
}

// GetDashboardStats recomputes the dashboard figures from the full donation
// list. No caching: a stale total that disagrees with the records underneath
// is worse than the extra read.
func (s *DonationService) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	donations, err := s.donationRepo.List(ctx)
	if err != nil {
		return domain.DashboardStats{}, customError.WrapDatabaseError(err)
	}

	return domain.AggregateStats(donations, time.Now()), nil
}

// ExpireStalePending cancels donations that never left the created/pending
// states within the configured age, keeping the pending count honest.
func (s *DonationService) ExpireStalePending(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.config.GetStalePendingAge())

	expired, err := s.donationRepo.ExpireStale(ctx, cutoff)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return expired, nil
}

func (s *DonationService) view(d *domain.Donation) *domain.DonationView {
	return &domain.DonationView{
		Donation:      d,
		PaymentTime:   domain.ResolvePaymentTime(d),
		DisplayAmount: money.Format(d.Amount, d.Currency),
	}
}
