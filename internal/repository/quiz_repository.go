package repository

import (
	"context"
	"errors"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

// FindByOwner lists an owner's quizzes newest-first, projected down to the
// summary fields.
func (r *QuizRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.QuizSummary, error) {
	opts := options.Find().
		SetProjection(bson.M{"title": 1, "description": 1, "created_at": 1, "owner_id": 1}).
		SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.QuizSummary
	for cur.Next(ctx) {
		var q models.QuizSummary
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

// FindByID returns (nil, nil) when the quiz does not exist.
func (r *QuizRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Insert(ctx context.Context, quiz *models.Quiz) (primitive.ObjectID, error) {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, quiz)
	return quiz.ID, err
}

// Update applies the given fields and reports whether a document matched.
func (r *QuizRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the quiz document and reports whether anything was deleted.
// Cascading question deletion is the service's job.
func (r *QuizRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
