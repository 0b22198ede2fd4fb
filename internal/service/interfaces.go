package service

import (
	"context"

	"github.com/pageza/recommendations/backend/internal/models"
)

// IRecommendationService defines the interface for recommendation operations
type IRecommendationService interface {
	Create(ctx context.Context, r *models.Recommendation) error
	Update(ctx context.Context, r *models.Recommendation) error
	Delete(ctx context.Context, r *models.Recommendation) error
	DeleteAll(ctx context.Context) error
	Like(ctx context.Context, id uint) (*models.Recommendation, error)

	All(ctx context.Context) ([]*models.Recommendation, error)
	Find(ctx context.Context, id uint) (*models.Recommendation, error)
	FindOr404(ctx context.Context, id uint) (*models.Recommendation, error)
	FindByName(ctx context.Context, name string) *RecommendationQuery
	FindByType(ctx context.Context, t models.RecommendationType) *RecommendationQuery
	Query(ctx context.Context) *RecommendationQuery
}
