package cache

import (
	"context"
	"testing"
	"time"

	"thozhahub/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (ResultCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewResultCache(client), mr
}

func sampleResult() *model.QuestionnaireResult {
	return &model.QuestionnaireResult{
		UserID:   "user-1",
		Kind:     model.KindAdaptive,
		Category: model.CategoryStrategist,
		Scores: map[model.Category]int{
			model.CategoryStrategist: 12,
			model.CategoryExplorer:   4,
		},
		Traits: map[model.Trait]int{
			model.TraitBigPicture: 6,
		},
		CompletedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestResultCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleResult()))

	got, err := c.Get(ctx, "user-1", model.KindAdaptive)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.CategoryStrategist, got.Category)
	assert.Equal(t, 12, got.Scores[model.CategoryStrategist])
	assert.Equal(t, 6, got.Traits[model.TraitBigPicture])
}

func TestResultCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "nobody", model.KindAdaptive)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResultCacheKindIsolation(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleResult()))

	got, err := c.Get(ctx, "user-1", model.KindLegacy)
	require.NoError(t, err)
	assert.Nil(t, got, "adaptive result must not satisfy legacy lookup")
}

func TestResultCacheDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleResult()))
	require.NoError(t, c.Delete(ctx, "user-1", model.KindAdaptive))

	got, err := c.Get(ctx, "user-1", model.KindAdaptive)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResultCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleResult()))
	mr.FastForward(resultTTL + time.Second)

	got, err := c.Get(ctx, "user-1", model.KindAdaptive)
	require.NoError(t, err)
	assert.Nil(t, got)
}
