package service

import (
	"context"
	"time"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionStore interface {
	FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error)
	FindByQuizOrdered(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error)
	Insert(ctx context.Context, question *models.Question) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByQuiz(ctx context.Context, quizID primitive.ObjectID) (int64, error)
}

type QuestionService struct {
	Questions QuestionStore
}

func NewQuestionService(questions QuestionStore) *QuestionService {
	return &QuestionService{Questions: questions}
}

func (s *QuestionService) ListByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error) {
	return s.Questions.FindByQuiz(ctx, quizID)
}

func (s *QuestionService) Create(ctx context.Context, quizID primitive.ObjectID, text string, options []string, answerIndex int) (primitive.ObjectID, error) {
	if answerIndex >= len(options) {
		return primitive.NilObjectID, ErrAnswerIndexRange
	}
	now := time.Now().UTC()
	question := &models.Question{
		QuizID:      quizID,
		Text:        text,
		Options:     options,
		AnswerIndex: answerIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.Questions.Insert(ctx, question)
}

// QuestionPatch is a partial question update. A provided AnswerIndex is not
// revalidated against the stored options, matching the create-time-only
// bounds check.
type QuestionPatch struct {
	Text        *string
	Options     []string
	AnswerIndex *int
}

func (s *QuestionService) Update(ctx context.Context, id primitive.ObjectID, patch QuestionPatch) error {
	update := bson.M{"updated_at": time.Now().UTC()}
	if patch.Text != nil {
		update["text"] = *patch.Text
	}
	if patch.Options != nil {
		update["options"] = patch.Options
	}
	if patch.AnswerIndex != nil {
		update["answer_index"] = *patch.AnswerIndex
	}
	matched, err := s.Questions.Update(ctx, id, update)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

func (s *QuestionService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.Questions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
