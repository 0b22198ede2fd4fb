package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recommendations/backend/internal/models"
	"github.com/pageza/recommendations/backend/internal/service"
)

// MockRecommendationService is a mock implementation of the recommendation service
type MockRecommendationService struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockRecommendationService) Create(ctx context.Context, r *models.Recommendation) error {
	return m.Called(ctx, r).Error(0)
}

// Update mocks the Update method
func (m *MockRecommendationService) Update(ctx context.Context, r *models.Recommendation) error {
	return m.Called(ctx, r).Error(0)
}

// Delete mocks the Delete method
func (m *MockRecommendationService) Delete(ctx context.Context, r *models.Recommendation) error {
	return m.Called(ctx, r).Error(0)
}

// DeleteAll mocks the DeleteAll method
func (m *MockRecommendationService) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Like mocks the Like method
func (m *MockRecommendationService) Like(ctx context.Context, id uint) (*models.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

// All mocks the All method
func (m *MockRecommendationService) All(ctx context.Context) ([]*models.Recommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recommendation), args.Error(1)
}

// Find mocks the Find method
func (m *MockRecommendationService) Find(ctx context.Context, id uint) (*models.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

// FindOr404 mocks the FindOr404 method
func (m *MockRecommendationService) FindOr404(ctx context.Context, id uint) (*models.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

// FindByName mocks the FindByName method
func (m *MockRecommendationService) FindByName(ctx context.Context, name string) *service.RecommendationQuery {
	return m.Called(ctx, name).Get(0).(*service.RecommendationQuery)
}

// FindByType mocks the FindByType method
func (m *MockRecommendationService) FindByType(ctx context.Context, t models.RecommendationType) *service.RecommendationQuery {
	return m.Called(ctx, t).Get(0).(*service.RecommendationQuery)
}

// Query mocks the Query method
func (m *MockRecommendationService) Query(ctx context.Context) *service.RecommendationQuery {
	return m.Called(ctx).Get(0).(*service.RecommendationQuery)
}

var _ service.IRecommendationService = (*MockRecommendationService)(nil)
