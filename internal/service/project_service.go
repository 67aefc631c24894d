package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/sevatrust/donation-engine/internal/config"
	"github.com/sevatrust/donation-engine/internal/domain"
	"github.com/sevatrust/donation-engine/internal/repository"
	customError "github.com/sevatrust/donation-engine/pkg/errors"
	"github.com/sevatrust/donation-engine/pkg/money"
)

type ProjectService struct {
	projectRepo  repository.ProjectRepository
	donationRepo repository.DonationRepository
	config       *config.Config
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	donationRepo repository.DonationRepository,
	config *config.Config,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		donationRepo: donationRepo,
		config:       config,
	}
}

// CreateProject registers a fundraising project. The slug is derived from
// the title and doubles as the public URL segment.
func (s *ProjectService) CreateProject(ctx context.Context, request *domain.CreateProjectRequest) (*domain.Project, error) {
	projectSlug := slug.Make(request.Title)

	existing, err := s.projectRepo.GetBySlug(ctx, projectSlug)
	if err == nil && existing != nil {
		return nil, customError.WrapProjectExists(projectSlug)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	now := time.Now()
	project := &domain.Project{
		ID:          uuid.New(),
		Title:       request.Title,
		Slug:        projectSlug,
		Description: request.Description,
		GoalAmount:  money.Normalize(request.GoalAmount),
		Status:      domain.ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return project, nil
}

// GetProject returns a project with its raised amount and donor count. The
// figures come from the same paid-set aggregation the dashboard uses, so a
// project page can never show a total the dashboard would dispute.
func (s *ProjectService) GetProject(ctx context.Context, projectSlug string) (*domain.ProjectView, error) {
	project, err := s.projectRepo.GetBySlug(ctx, projectSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapProjectNotFound(projectSlug)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	donations, err := s.donationRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	stats := domain.AggregateStats(donations, time.Now())

	return &domain.ProjectView{
		Project:      project,
		RaisedAmount: stats.TotalAmount,
		DonorCount:   stats.CompletedCount,
	}, nil
}

// ListProjects returns all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return projects, nil
}
