package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recommendations/backend/internal/logging"
	"github.com/pageza/recommendations/backend/internal/models"
)

// RecommendationService persists and queries recommendations through an
// injected store handle.
type RecommendationService struct {
	db *gorm.DB
}

// Ensure RecommendationService implements IRecommendationService
var _ IRecommendationService = (*RecommendationService)(nil)

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

// Create inserts r as a new row and assigns it a fresh id. Any id already
// set on r is discarded.
func (s *RecommendationService) Create(ctx context.Context, r *models.Recommendation) error {
	logging.Ctx(ctx).Info().Str("name", r.Name).Msg("Creating recommendation")
	r.ID = 0
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create recommendation: %w", err)
	}
	return nil
}

// Update writes every field of r to the row with r's id.
func (s *RecommendationService) Update(ctx context.Context, r *models.Recommendation) error {
	logging.Ctx(ctx).Info().Str("name", r.Name).Uint("id", r.ID).Msg("Saving recommendation")
	if r.ID == 0 {
		return &models.DataValidationError{Field: "id", Message: "Update called with empty ID field"}
	}

	result := s.db.WithContext(ctx).Model(r).Select("*").Omit("id").Updates(r)
	if result.Error != nil {
		return fmt.Errorf("failed to update recommendation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", models.ErrNotFound, r.ID)
	}
	return nil
}

// Delete removes the row with r's id. Deleting a missing row is not an error.
func (s *RecommendationService) Delete(ctx context.Context, r *models.Recommendation) error {
	logging.Ctx(ctx).Info().Str("name", r.Name).Uint("id", r.ID).Msg("Deleting recommendation")
	if r.ID == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Delete(&models.Recommendation{}, r.ID).Error; err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}
	return nil
}

// DeleteAll removes every recommendation.
func (s *RecommendationService) DeleteAll(ctx context.Context) error {
	logging.Ctx(ctx).Info().Msg("Deleting all recommendations")
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Recommendation{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete recommendations: %w", err)
	}
	return nil
}

// Like increments the like counter of the recommendation with the given id
// in the store and returns the updated row.
func (s *RecommendationService) Like(ctx context.Context, id uint) (*models.Recommendation, error) {
	logging.Ctx(ctx).Info().Uint("id", id).Msg("Liking recommendation")
	result := s.db.WithContext(ctx).
		Model(&models.Recommendation{}).
		Where("id = ?", id).
		UpdateColumn("number_of_likes", gorm.Expr("number_of_likes + ?", 1))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to like recommendation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: id %d", models.ErrNotFound, id)
	}
	return s.FindOr404(ctx, id)
}

// All returns every stored recommendation ordered by id.
func (s *RecommendationService) All(ctx context.Context) ([]*models.Recommendation, error) {
	logging.Ctx(ctx).Info().Msg("Processing all recommendations")
	recommendations := make([]*models.Recommendation, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&recommendations).Error; err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	if recommendations == nil {
		recommendations = []*models.Recommendation{}
	}
	return recommendations, nil
}

// Find returns the recommendation with the given id, or nil when there is
// none.
func (s *RecommendationService) Find(ctx context.Context, id uint) (*models.Recommendation, error) {
	logging.Ctx(ctx).Info().Uint("id", id).Msg("Processing lookup")
	var r models.Recommendation
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}
	return &r, nil
}

// FindOr404 is like Find but returns ErrNotFound when there is no match.
func (s *RecommendationService) FindOr404(ctx context.Context, id uint) (*models.Recommendation, error) {
	r, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: id %d", models.ErrNotFound, id)
	}
	return r, nil
}

// FindByName returns a query over the recommendations whose name equals
// name exactly.
func (s *RecommendationService) FindByName(ctx context.Context, name string) *RecommendationQuery {
	logging.Ctx(ctx).Info().Str("name", name).Msg("Processing name query")
	return newRecommendationQuery(s.db.WithContext(ctx)).Where("name = ?", name)
}

// FindByType returns a query over the recommendations of type t. An empty t
// selects the default type.
func (s *RecommendationService) FindByType(ctx context.Context, t models.RecommendationType) *RecommendationQuery {
	if t == "" {
		t = models.DefaultRecommendationType
	}
	logging.Ctx(ctx).Info().Str("type", t.String()).Msg("Processing type query")
	q := newRecommendationQuery(s.db.WithContext(ctx))
	if !t.Valid() {
		return q.fail(&models.DataValidationError{Field: "type", Message: "Invalid attribute: " + t.String()})
	}
	return q.Where("type = ?", t)
}

// Query returns an unfiltered query over all recommendations.
func (s *RecommendationService) Query(ctx context.Context) *RecommendationQuery {
	return newRecommendationQuery(s.db.WithContext(ctx))
}
