package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sevatrust/donation-engine/internal/domain"
	customError "github.com/sevatrust/donation-engine/pkg/errors"
	"github.com/sevatrust/donation-engine/tests/mocks"
)

func TestCreateProject_Success(t *testing.T) {
	mockProjects := &mocks.MockProjectRepository{}
	mockDonations := &mocks.MockDonationRepository{}

	svc := NewProjectService(mockProjects, mockDonations, testConfig())

	mockProjects.On("GetBySlug", mock.Anything, "clean-water-for-villages").Return(nil, sql.ErrNoRows)
	mockProjects.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Slug == "clean-water-for-villages" &&
			p.Status == domain.ProjectStatusActive &&
			p.GoalAmount.Equal(decimal.NewFromInt(500000))
	})).Return(nil)

	project, err := svc.CreateProject(context.Background(), &domain.CreateProjectRequest{
		Title:      "Clean Water for Villages",
		GoalAmount: "500000",
	})

	require.NoError(t, err)
	assert.Equal(t, "clean-water-for-villages", project.Slug)

	mockProjects.AssertExpectations(t)
}

func TestCreateProject_DuplicateSlug(t *testing.T) {
	mockProjects := &mocks.MockProjectRepository{}

	svc := NewProjectService(mockProjects, &mocks.MockDonationRepository{}, testConfig())

	mockProjects.On("GetBySlug", mock.Anything, "clean-water-for-villages").
		Return(&domain.Project{Slug: "clean-water-for-villages"}, nil)

	_, err := svc.CreateProject(context.Background(), &domain.CreateProjectRequest{
		Title: "Clean Water for Villages",
	})

	assert.ErrorIs(t, err, customError.ErrProjectExists)
	mockProjects.AssertNotCalled(t, "Create")
}

func TestGetProject_RaisedFromPaidSetOnly(t *testing.T) {
	mockProjects := &mocks.MockProjectRepository{}
	mockDonations := &mocks.MockDonationRepository{}

	svc := NewProjectService(mockProjects, mockDonations, testConfig())

	projectID := uuid.New()
	project := &domain.Project{
		ID:   projectID,
		Slug: "clean-water-for-villages",
	}

	now := time.Now()
	donations := []*domain.Donation{
		{Status: domain.StatusCompleted, Amount: decimal.NewFromInt(1000), CreatedAt: now},
		{Status: domain.StatusPaid, Amount: decimal.NewFromInt(250), CreatedAt: now},
		{Status: domain.StatusPending, Amount: decimal.NewFromInt(5000), CreatedAt: now},
		{Status: domain.StatusRefunded, Amount: decimal.NewFromInt(750), CreatedAt: now},
	}

	mockProjects.On("GetBySlug", mock.Anything, "clean-water-for-villages").Return(project, nil)
	mockDonations.On("ListByProject", mock.Anything, projectID).Return(donations, nil)

	view, err := svc.GetProject(context.Background(), "clean-water-for-villages")

	require.NoError(t, err)
	assert.True(t, view.RaisedAmount.Equal(decimal.NewFromInt(1250)),
		"pending and refunded must not count, got %v", view.RaisedAmount)
	assert.Equal(t, 2, view.DonorCount)
}

func TestGetProject_NotFound(t *testing.T) {
	mockProjects := &mocks.MockProjectRepository{}

	svc := NewProjectService(mockProjects, &mocks.MockDonationRepository{}, testConfig())

	mockProjects.On("GetBySlug", mock.Anything, "nope").Return(nil, sql.ErrNoRows)

	_, err := svc.GetProject(context.Background(), "nope")

	assert.ErrorIs(t, err, customError.ErrProjectNotFound)
}
