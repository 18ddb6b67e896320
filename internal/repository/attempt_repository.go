package repository

import (
	"context"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

func (r *AttemptRepository) Insert(ctx context.Context, attempt *models.Attempt) (primitive.ObjectID, error) {
	if attempt.ID.IsZero() {
		attempt.ID = primitive.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, attempt)
	return attempt.ID, err
}

// FindByQuiz returns all attempts for a quiz, newest first.
func (r *AttemptRepository) FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Attempt, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": quizID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, cur.Err()
}
