package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sevatrust/donation-engine/internal/domain"
)

// DonationRepository defines the interface for donation data operations
type DonationRepository interface {
	// Create persists a new donation
	Create(ctx context.Context, donation *domain.Donation) error

	// GetByID retrieves a donation by its id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error)

	// GetByOrderID retrieves a donation by its gateway order reference
	GetByOrderID(ctx context.Context, orderID string) (*domain.Donation, error)

	// List retrieves all donations, newest first
	List(ctx context.Context) ([]*domain.Donation, error)

	// ListByProject retrieves all donations attributed to a project
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Donation, error)

	// UpdatePaymentState writes the status and payment timestamps after a
	// gateway event
	UpdatePaymentState(ctx context.Context, donation *domain.Donation) error

	// ExpireStale cancels unpaid donations created before the cutoff and
	// returns how many were affected
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	// Create persists a new project
	Create(ctx context.Context, project *domain.Project) error

	// GetBySlug retrieves a project by its slug
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)

	// List retrieves all projects
	List(ctx context.Context) ([]*domain.Project, error)
}

// EventStore records which gateway webhook events have already been
// processed. Gateways redeliver events, so every delivery is checked here
// before it can mutate a donation.
type EventStore interface {
	// MarkProcessed records the event id and reports whether this delivery
	// was the first one
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}
