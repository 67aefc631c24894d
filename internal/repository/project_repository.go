package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sevatrust/donation-engine/internal/domain"
)

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, title, slug, description, goal_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Slug,
		project.Description,
		project.GoalAmount,
		project.Status,
		project.CreatedAt,
		project.UpdatedAt,
	)

	return err
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	query := `
		SELECT id, title, slug, description, goal_amount, status, created_at, updated_at
		FROM projects
		WHERE slug = $1
	`

	var project domain.Project
	if err := r.db.GetContext(ctx, &project, query, slug); err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	query := `
		SELECT id, title, slug, description, goal_amount, status, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	var projects []*domain.Project
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, err
	}

	return projects, nil
}
