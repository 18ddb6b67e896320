package repository

import (
	"context"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return nil, err
	}
	return decodeQuestions(ctx, cur)
}

// FindByQuizOrdered returns a quiz's questions sorted by _id ascending. The
// scorer matches submitted answers against questions in this order.
func (r *QuestionRepository) FindByQuizOrdered(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": quizID}, opts)
	if err != nil {
		return nil, err
	}
	return decodeQuestions(ctx, cur)
}

func decodeQuestions(ctx context.Context, cur *mongo.Cursor) ([]models.Question, error) {
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) Insert(ctx context.Context, question *models.Question) (primitive.ObjectID, error) {
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, question)
	return question.ID, err
}

func (r *QuestionRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// DeleteByQuiz removes every question under a quiz and returns the count.
func (r *QuestionRepository) DeleteByQuiz(ctx context.Context, quizID primitive.ObjectID) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
