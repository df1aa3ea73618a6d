package cache

import (
	"context"
	"encoding/json"
	"time"

	"thozhahub/internal/model"

	"github.com/redis/go-redis/v9"
)

const resultTTL = 10 * time.Minute

// ResultCache keeps the latest questionnaire result per user and kind so
// repeat result fetches skip MongoDB.
type ResultCache interface {
	Set(ctx context.Context, result *model.QuestionnaireResult) error
	Get(ctx context.Context, userID string, kind model.QuestionnaireKind) (*model.QuestionnaireResult, error)
	Delete(ctx context.Context, userID string, kind model.QuestionnaireKind) error
}

type resultCache struct {
	client *redis.Client
}

func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
	}
}

func resultKey(userID string, kind model.QuestionnaireKind) string {
	return "result:" + userID + ":" + string(kind)
}

func (c *resultCache) Set(ctx context.Context, result *model.QuestionnaireResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultKey(result.UserID, result.Kind), data, resultTTL).Err()
}

// Get returns (nil, nil) on a cache miss.
func (c *resultCache) Get(ctx context.Context, userID string, kind model.QuestionnaireKind) (*model.QuestionnaireResult, error) {
	data, err := c.client.Get(ctx, resultKey(userID, kind)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.QuestionnaireResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *resultCache) Delete(ctx context.Context, userID string, kind model.QuestionnaireKind) error {
	return c.client.Del(ctx, resultKey(userID, kind)).Err()
}
