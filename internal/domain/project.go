package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
)

// Project is a fundraising cause donations can be attributed to.
type Project struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Slug        string          `json:"slug" db:"slug"`
	Description string          `json:"description" db:"description"`
	GoalAmount  decimal.Decimal `json:"goal_amount" db:"goal_amount"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	GoalAmount  any    `json:"goal_amount"`
}

// ProjectView adds the figures the public project page shows. RaisedAmount
// comes from the same paid-set aggregation as the dashboard so the two can
// never disagree.
type ProjectView struct {
	*Project
	RaisedAmount decimal.Decimal `json:"raised_amount"`
	DonorCount   int             `json:"donor_count"`
}
