package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kasir/internal/models"
	"kasir/internal/repositories"
	"kasir/internal/services"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)
	ctx := context.Background()

	mockRepo.On("FindByName", mock.Anything, "Drinks").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, &models.Category{Name: "Drinks"}).Return(nil).Once()
	category, err := service.CreateCategory(ctx, "Drinks ")
	require.NoError(t, err)
	assert.Equal(t, "Drinks", category.Name)

	mockRepo.On("FindByName", mock.Anything, "drinks").Return(&models.Category{ID: 1, Name: "Drinks"}, nil).Once()
	_, err = service.CreateCategory(ctx, "drinks")
	assert.ErrorIs(t, err, services.ErrDuplicate)

	_, err = service.CreateCategory(ctx, "  ")
	var validationErr *services.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)
	ctx := context.Background()

	mockRepo.On("FindByName", mock.Anything, "Beverages").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Update", mock.Anything, &models.Category{ID: 1, Name: "Beverages"}).Return(nil).Once()
	_, err := service.UpdateCategory(ctx, 1, "Beverages")
	assert.NoError(t, err)

	mockRepo.On("FindByName", mock.Anything, "Snacks").Return(&models.Category{ID: 2, Name: "Snacks"}, nil).Once()
	_, err = service.UpdateCategory(ctx, 1, "Snacks")
	assert.ErrorIs(t, err, services.ErrDuplicate)

	mockRepo.On("FindByName", mock.Anything, "Cakes").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Update", mock.Anything, &models.Category{ID: 9, Name: "Cakes"}).Return(repositories.ErrNotFound).Once()
	_, err = service.UpdateCategory(ctx, 9, "Cakes")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Category{ID: 1}, nil).Once()
	mockRepo.On("CountProducts", mock.Anything, uint(1)).Return(int64(4), nil).Once()
	err := service.DeleteCategory(ctx, 1)
	assert.ErrorIs(t, err, services.ErrInUse)
	assert.Contains(t, err.Error(), "4 product(s)")

	mockRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.Category{ID: 2}, nil).Once()
	mockRepo.On("CountProducts", mock.Anything, uint(2)).Return(int64(0), nil).Once()
	mockRepo.On("Delete", mock.Anything, uint(2)).Return(nil).Once()
	assert.NoError(t, service.DeleteCategory(ctx, 2))

	mockRepo.On("GetByID", mock.Anything, uint(3)).Return(nil, repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.DeleteCategory(ctx, 3), services.ErrNotFound)

	mockRepo.On("GetAll", mock.Anything).Return(nil, errors.New("db down")).Once()
	_, err = service.ListCategories(ctx)
	var storeErr *services.StoreError
	assert.True(t, errors.As(err, &storeErr))
	mockRepo.AssertExpectations(t)
}
