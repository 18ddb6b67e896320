package service

import (
	"context"
	"fmt"
	"time"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizStore interface {
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.QuizSummary, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error)
	Insert(ctx context.Context, quiz *models.Quiz) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type QuizService struct {
	Quizzes   QuizStore
	Questions QuestionStore
}

func NewQuizService(quizzes QuizStore, questions QuestionStore) *QuizService {
	return &QuizService{Quizzes: quizzes, Questions: questions}
}

func (s *QuizService) List(ctx context.Context, ownerID primitive.ObjectID) ([]models.QuizSummary, error) {
	return s.Quizzes.FindByOwner(ctx, ownerID)
}

func (s *QuizService) Create(ctx context.Context, ownerID primitive.ObjectID, title, description string) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	quiz := &models.Quiz{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.Quizzes.Insert(ctx, quiz)
}

func (s *QuizService) Get(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	quiz, err := s.Quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrNotFound
	}
	return quiz, nil
}

// QuizPatch carries the optional fields of a quiz update; nil means leave
// the stored value alone.
type QuizPatch struct {
	Title       *string
	Description *string
}

func (s *QuizService) Update(ctx context.Context, id primitive.ObjectID, patch QuizPatch) error {
	update := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		update["title"] = *patch.Title
	}
	if patch.Description != nil {
		update["description"] = *patch.Description
	}
	matched, err := s.Quizzes.Update(ctx, id, update)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// Delete removes the quiz and then its questions. The two steps are not a
// transaction: a crash in between leaves orphaned questions behind.
func (s *QuizService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.Quizzes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	if _, err := s.Questions.DeleteByQuiz(ctx, id); err != nil {
		return fmt.Errorf("cascade delete questions: %w", err)
	}
	return nil
}
