package service

import (
	"context"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store fakes so service tests run without a MongoDB instance.

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return user.ID, nil
}

type fakeQuizStore struct {
	quizzes []*models.Quiz
	updates []bson.M
}

func (f *fakeQuizStore) FindByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.QuizSummary, error) {
	var out []models.QuizSummary
	for _, q := range f.quizzes {
		if q.OwnerID == ownerID {
			out = append(out, models.QuizSummary{
				ID:          q.ID,
				Title:       q.Title,
				Description: q.Description,
				OwnerID:     q.OwnerID,
				CreatedAt:   q.CreatedAt,
			})
		}
	}
	return out, nil
}

func (f *fakeQuizStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	for _, q := range f.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizStore) Insert(_ context.Context, quiz *models.Quiz) (primitive.ObjectID, error) {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	f.quizzes = append(f.quizzes, quiz)
	return quiz.ID, nil
}

func (f *fakeQuizStore) Update(_ context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	f.updates = append(f.updates, update)
	for _, q := range f.quizzes {
		if q.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQuizStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, q := range f.quizzes {
		if q.ID == id {
			f.quizzes = append(f.quizzes[:i], f.quizzes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeQuestionStore struct {
	questions []models.Question
	updates   []bson.M
}

func (f *fakeQuestionStore) FindByQuiz(_ context.Context, quizID primitive.ObjectID) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) FindByQuizOrdered(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error) {
	return f.FindByQuiz(ctx, quizID)
}

func (f *fakeQuestionStore) Insert(_ context.Context, question *models.Question) (primitive.ObjectID, error) {
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
	}
	f.questions = append(f.questions, *question)
	return question.ID, nil
}

func (f *fakeQuestionStore) Update(_ context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	f.updates = append(f.updates, update)
	for _, q := range f.questions {
		if q.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQuestionStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQuestionStore) DeleteByQuiz(_ context.Context, quizID primitive.ObjectID) (int64, error) {
	var kept []models.Question
	var removed int64
	for _, q := range f.questions {
		if q.QuizID == quizID {
			removed++
			continue
		}
		kept = append(kept, q)
	}
	f.questions = kept
	return removed, nil
}

type fakeAttemptStore struct {
	attempts []models.Attempt
}

func (f *fakeAttemptStore) Insert(_ context.Context, attempt *models.Attempt) (primitive.ObjectID, error) {
	if attempt.ID.IsZero() {
		attempt.ID = primitive.NewObjectID()
	}
	f.attempts = append(f.attempts, *attempt)
	return attempt.ID, nil
}

func (f *fakeAttemptStore) FindByQuiz(_ context.Context, quizID primitive.ObjectID) ([]models.Attempt, error) {
	var out []models.Attempt
	for _, a := range f.attempts {
		if a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out, nil
}
