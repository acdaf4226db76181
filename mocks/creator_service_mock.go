package mocks

import (
	"context"

	"github.com/Abdulwakil1/Creatorverse/models"
	"github.com/Abdulwakil1/Creatorverse/utils/redislog"

	"github.com/stretchr/testify/mock"
)

// CreatorServiceMock is a testify/mock for services.CreatorService.
// Handlers and routes are tested against it without real business logic.
type CreatorServiceMock struct{ mock.Mock }

func (m *CreatorServiceMock) CreateCreator(ctx context.Context, req models.CreateCreatorRequest) (*models.Creator, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CreatorServiceMock) GetCreator(ctx context.Context, id uint) (*models.Creator, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CreatorServiceMock) ViewCreator(ctx context.Context, id uint) (*models.CreatorView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.CreatorView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CreatorServiceMock) UpdateCreator(ctx context.Context, id uint, req models.UpdateCreatorRequest) (*models.Creator, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CreatorServiceMock) DeleteCreator(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CreatorServiceMock) ListCreators(ctx context.Context) ([]models.Creator, error) {
	args := m.Called(ctx)
	var items []models.Creator
	if v := args.Get(0); v != nil {
		items = v.([]models.Creator)
	}
	return items, args.Error(1)
}

func (m *CreatorServiceMock) ListCreatorViews(ctx context.Context) (*models.CreatorList, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*models.CreatorList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CreatorServiceMock) RecentActivity(ctx context.Context, n int64) ([]redislog.Entry, error) {
	args := m.Called(ctx, n)
	var out []redislog.Entry
	if v := args.Get(0); v != nil {
		out = v.([]redislog.Entry)
	}
	return out, args.Error(1)
}
