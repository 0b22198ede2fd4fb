package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recommendations/backend/internal/models"
	"github.com/pageza/recommendations/backend/internal/testhelpers"
)

func TestRecommendationLifecyclePostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewRecommendationService(db)
	f := testhelpers.NewRecommendationFactory()
	ctx := context.Background()

	recs := f.BuildBatch(5)
	for _, r := range recs {
		require.NoError(t, svc.Create(ctx, r))
		assert.NotZero(t, r.ID)
	}

	found, err := svc.FindOr404(ctx, recs[2].ID)
	require.NoError(t, err)
	assert.Equal(t, recs[2].Serialize(), found.Serialize())

	found.NumberOfLikes++
	require.NoError(t, svc.Update(ctx, found))

	count, err := svc.FindByType(ctx, recs[0].Type).Count()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(1))

	untyped := &models.Recommendation{Name: "untyped"}
	require.NoError(t, svc.Create(ctx, untyped))
	var ordinal int
	require.NoError(t, db.Raw("SELECT type FROM recommendations WHERE id = ?", untyped.ID).Scan(&ordinal).Error)
	assert.Equal(t, 1, ordinal)

	require.NoError(t, svc.Delete(ctx, found))
	gone, err := svc.Find(ctx, found.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
