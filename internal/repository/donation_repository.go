package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sevatrust/donation-engine/internal/domain"
)

type donationRepository struct {
	db *sqlx.DB
}

func NewDonationRepository(db *sqlx.DB) DonationRepository {
	return &donationRepository{db: db}
}

const donationColumns = `
	id, order_id, project_id, donor_name, donor_email, amount, amount_minor,
	currency, status, gateway_payment_id, message, created_at, updated_at,
	status_changed_at, payment_captured_at
`

func (r *donationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	query := `
		INSERT INTO donations (id, order_id, project_id, donor_name, donor_email, amount, amount_minor, currency, status, gateway_payment_id, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		donation.ID,
		donation.OrderID,
		donation.ProjectID,
		donation.DonorName,
		donation.DonorEmail,
		donation.Amount,
		donation.AmountMinor,
		donation.Currency,
		donation.Status,
		donation.GatewayPaymentID,
		donation.Message,
		donation.CreatedAt,
		donation.UpdatedAt,
	)

	return err
}

func (r *donationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`

	var donation domain.Donation
	if err := r.db.GetContext(ctx, &donation, query, id); err != nil {
		return nil, err
	}

	return &donation, nil
}

func (r *donationRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE order_id = $1`

	var donation domain.Donation
	if err := r.db.GetContext(ctx, &donation, query, orderID); err != nil {
		return nil, err
	}

	return &donation, nil
}

func (r *donationRepository) List(ctx context.Context) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations ORDER BY created_at DESC`

	var donations []*domain.Donation
	if err := r.db.SelectContext(ctx, &donations, query); err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE project_id = $1 ORDER BY created_at DESC`

	var donations []*domain.Donation
	if err := r.db.SelectContext(ctx, &donations, query, projectID); err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationRepository) UpdatePaymentState(ctx context.Context, donation *domain.Donation) error {
	query := `
		UPDATE donations
		SET status = $2, gateway_payment_id = $3, status_changed_at = $4, payment_captured_at = $5, updated_at = $6
		WHERE order_id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		donation.OrderID,
		donation.Status,
		donation.GatewayPaymentID,
		donation.StatusChangedAt,
		donation.PaymentCapturedAt,
		time.Now(),
	)

	return err
}

func (r *donationRepository) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE donations
		SET status = $1, status_changed_at = $2, updated_at = $2
		WHERE status IN ($3, $4, $5) AND created_at < $6
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		domain.StatusCancelled,
		now,
		domain.StatusCreated,
		domain.StatusPending,
		domain.StatusProcessing,
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
