// Package mocks holds testify mocks shared by package tests.
package mocks

import (
	"context"

	"items-api/internal/models"
	"items-api/internal/storage"
	"items-api/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock type for the storage.ItemRepository interface
type MockItemRepository struct {
	mock.Mock
}

// Ensure mock implements the interface
var _ storage.ItemRepository = (*MockItemRepository)(nil)

func (m *MockItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	// Handle case where nil is returned for the slice explicitly
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, req *dto.CreateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, id int64, req *dto.UpdateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
