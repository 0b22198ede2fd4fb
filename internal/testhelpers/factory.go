package testhelpers

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/recommendations/backend/internal/models"
)

// RecommendationFactory builds fake recommendations with unique names and
// sequential ids for the recommended product.
type RecommendationFactory struct {
	mu  sync.Mutex
	seq int
	rnd *rand.Rand
}

// NewRecommendationFactory creates a factory with a time-based seed.
func NewRecommendationFactory() *RecommendationFactory {
	return &RecommendationFactory{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Build returns a new, not yet created, recommendation.
func (f *RecommendationFactory) Build() *models.Recommendation {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	types := models.RecommendationTypes()
	return &models.Recommendation{
		Name:               "product-" + uuid.NewString()[:8],
		RecommendationID:   f.seq,
		RecommendationName: "product-" + uuid.NewString()[:8],
		Type:               types[f.rnd.Intn(len(types))],
		NumberOfLikes:      f.rnd.Intn(1000),
	}
}

// BuildBatch returns n recommendations.
func (f *RecommendationFactory) BuildBatch(n int) []*models.Recommendation {
	out := make([]*models.Recommendation, n)
	for i := range out {
		out[i] = f.Build()
	}
	return out
}
