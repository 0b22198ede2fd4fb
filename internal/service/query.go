package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recommendations/backend/internal/models"
)

const eachBatchSize = 100

// RecommendationQuery is a lazily evaluated set of recommendations. Building
// or refining a query does not touch the store; Count, At, Items and Each do.
// A query is safe to reuse and to refine more than once.
type RecommendationQuery struct {
	db  *gorm.DB
	err error
}

func newRecommendationQuery(db *gorm.DB) *RecommendationQuery {
	return &RecommendationQuery{db: db.Model(&models.Recommendation{}).Session(&gorm.Session{})}
}

func (q *RecommendationQuery) fail(err error) *RecommendationQuery {
	return &RecommendationQuery{db: q.db, err: err}
}

// Where narrows the query with an additional condition.
func (q *RecommendationQuery) Where(query interface{}, args ...interface{}) *RecommendationQuery {
	if q.err != nil {
		return q
	}
	return &RecommendationQuery{db: q.db.Where(query, args...).Session(&gorm.Session{})}
}

// Count returns the number of matching recommendations.
func (q *RecommendationQuery) Count() (int64, error) {
	if q.err != nil {
		return 0, q.err
	}
	var n int64
	if err := q.db.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count recommendations: %w", err)
	}
	return n, nil
}

// At returns the i-th match in id order.
func (q *RecommendationQuery) At(i int) (*models.Recommendation, error) {
	if q.err != nil {
		return nil, q.err
	}
	if i < 0 {
		return nil, fmt.Errorf("%w: index %d", models.ErrNotFound, i)
	}
	var r models.Recommendation
	err := q.db.Order("id").Offset(i).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: index %d", models.ErrNotFound, i)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}
	return &r, nil
}

// Items materializes every match in id order.
func (q *RecommendationQuery) Items() ([]*models.Recommendation, error) {
	if q.err != nil {
		return nil, q.err
	}
	items := make([]*models.Recommendation, 0)
	if err := q.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	if items == nil {
		items = []*models.Recommendation{}
	}
	return items, nil
}

// Each calls fn for every match, loading rows in batches. Iteration stops at
// the first error returned by fn.
func (q *RecommendationQuery) Each(fn func(*models.Recommendation) error) error {
	if q.err != nil {
		return q.err
	}
	var batch []*models.Recommendation
	err := q.db.FindInBatches(&batch, eachBatchSize, func(tx *gorm.DB, _ int) error {
		for _, r := range batch {
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	}).Error
	if err != nil {
		return fmt.Errorf("failed to iterate recommendations: %w", err)
	}
	return nil
}
