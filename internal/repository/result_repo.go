package repository

import (
	"context"
	"time"

	"thozhahub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepo handles MongoDB operations for questionnaire results
type ResultRepo interface {
	Create(ctx context.Context, result *model.QuestionnaireResult) (string, error)
	GetLatest(ctx context.Context, userID string, kind model.QuestionnaireKind) (*model.QuestionnaireResult, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new questionnaire result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("questionnaire_results"),
	}
}

func (r *resultRepo) Create(ctx context.Context, result *model.QuestionnaireResult) (string, error) {
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}

	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

// GetLatest returns the most recent result for the user. An empty kind
// matches either questionnaire kind.
func (r *resultRepo) GetLatest(ctx context.Context, userID string, kind model.QuestionnaireKind) (*model.QuestionnaireResult, error) {
	filter := bson.M{"userId": userID}
	if kind != "" {
		filter["kind"] = kind
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	var result model.QuestionnaireResult
	err := r.collection.FindOne(ctx, filter, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
