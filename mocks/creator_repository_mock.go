package mocks

import (
	"context"

	"github.com/Abdulwakil1/Creatorverse/models"

	"github.com/stretchr/testify/mock"
)

// CreatorRepositoryMock is a testify/mock for repositories.CreatorRepository.
// The service layer is unit-tested with it without touching a DB.
type CreatorRepositoryMock struct{ mock.Mock }

func (m *CreatorRepositoryMock) Create(ctx context.Context, c *models.Creator) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CreatorRepositoryMock) FindByID(ctx context.Context, id uint) (*models.Creator, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CreatorRepositoryMock) Update(ctx context.Context, c *models.Creator) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CreatorRepositoryMock) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CreatorRepositoryMock) List(ctx context.Context) ([]models.Creator, error) {
	args := m.Called(ctx)
	var items []models.Creator
	if v := args.Get(0); v != nil {
		items = v.([]models.Creator)
	}
	return items, args.Error(1)
}
