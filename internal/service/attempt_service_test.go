package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedQuestions(store *fakeQuestionStore, quizID primitive.ObjectID, answerKeys ...int) {
	for _, key := range answerKeys {
		store.questions = append(store.questions, models.Question{
			ID:          primitive.NewObjectID(),
			QuizID:      quizID,
			Text:        "question",
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: key,
		})
	}
}

func TestSubmitScoring(t *testing.T) {
	cases := []struct {
		name           string
		answerKeys     []int
		answers        []int
		wantCorrect    int
		wantTotal      int
		wantPercentage int
	}{
		{"all correct", []int{0, 1, 2}, []int{0, 1, 2}, 3, 3, 100},
		{"all wrong", []int{0, 1, 2}, []int{1, 2, 0}, 0, 3, 0},
		{"fewer answers than questions", []int{0, 1, 2}, []int{0, 1}, 2, 3, 67},
		{"extra answers ignored", []int{0, 1}, []int{0, 1, 3, 2}, 2, 2, 100},
		// 1/8 = 12.5%, rounds half up to 13
		{"rounds half up", []int{0, 0, 0, 0, 0, 0, 0, 0}, []int{0}, 1, 8, 13},
		{"one of three", []int{0, 1, 2}, []int{0}, 1, 3, 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quizID := primitive.NewObjectID()
			questions := &fakeQuestionStore{}
			seedQuestions(questions, quizID, tc.answerKeys...)
			attempts := &fakeAttemptStore{}
			svc := NewAttemptService(questions, attempts)

			score, err := svc.Submit(context.Background(), quizID, tc.answers, "")
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if score.Correct != tc.wantCorrect {
				t.Errorf("correct: expected %d, got %d", tc.wantCorrect, score.Correct)
			}
			if score.Total != tc.wantTotal {
				t.Errorf("total: expected %d, got %d", tc.wantTotal, score.Total)
			}
			if score.Percentage != tc.wantPercentage {
				t.Errorf("percentage: expected %d, got %d", tc.wantPercentage, score.Percentage)
			}
		})
	}
}

func TestSubmitPersistsAttempt(t *testing.T) {
	quizID := primitive.NewObjectID()
	questions := &fakeQuestionStore{}
	seedQuestions(questions, quizID, 0, 1)
	attempts := &fakeAttemptStore{}
	svc := NewAttemptService(questions, attempts)

	if _, err := svc.Submit(context.Background(), quizID, []int{0, 0}, "bob@example.com"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(attempts.attempts) != 1 {
		t.Fatalf("expected 1 persisted attempt, got %d", len(attempts.attempts))
	}
	got := attempts.attempts[0]
	if got.Email != "bob@example.com" {
		t.Errorf("expected email bob@example.com, got %q", got.Email)
	}
	if got.Correct != 1 || got.Total != 2 || got.Percentage != 50 {
		t.Errorf("persisted %d/%d (%d%%), expected 1/2 (50%%)", got.Correct, got.Total, got.Percentage)
	}
}

func TestSubmitAnonymousDefault(t *testing.T) {
	quizID := primitive.NewObjectID()
	questions := &fakeQuestionStore{}
	seedQuestions(questions, quizID, 0)
	attempts := &fakeAttemptStore{}
	svc := NewAttemptService(questions, attempts)

	if _, err := svc.Submit(context.Background(), quizID, []int{0}, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attempts.attempts[0].Email != models.AnonymousEmail {
		t.Errorf("expected email %q, got %q", models.AnonymousEmail, attempts.attempts[0].Email)
	}
}

func TestSubmitNoQuestions(t *testing.T) {
	svc := NewAttemptService(&fakeQuestionStore{}, &fakeAttemptStore{})

	_, err := svc.Submit(context.Background(), primitive.NewObjectID(), []int{0}, "")
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	svc := NewAttemptService(&fakeQuestionStore{}, &fakeAttemptStore{})

	summary, err := svc.Summarize(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.TotalAttempts != 0 || summary.UniqueParticipants != 0 || summary.AverageScore != 0 {
		t.Errorf("expected zeroed summary, got %+v", summary)
	}
	if summary.Attempts == nil || len(summary.Attempts) != 0 {
		t.Errorf("expected empty attempts slice, got %v", summary.Attempts)
	}
}

func TestSummarize(t *testing.T) {
	quizID := primitive.NewObjectID()
	now := time.Now().UTC()
	attempts := &fakeAttemptStore{attempts: []models.Attempt{
		{QuizID: quizID, Email: "a@example.com", Total: 4, Correct: 4, Percentage: 100, CreatedAt: now},
		{QuizID: quizID, Email: "a@example.com", Total: 4, Correct: 2, Percentage: 50, CreatedAt: now},
		{QuizID: quizID, Email: "b@example.com", Total: 4, Correct: 3, Percentage: 75, CreatedAt: now},
		{QuizID: quizID, Email: models.AnonymousEmail, Total: 4, Correct: 1, Percentage: 26, CreatedAt: now},
	}}
	svc := NewAttemptService(&fakeQuestionStore{}, attempts)

	summary, err := svc.Summarize(context.Background(), quizID)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.TotalAttempts != 4 {
		t.Errorf("expected 4 attempts, got %d", summary.TotalAttempts)
	}
	// anonymous is excluded from participant counting
	if summary.UniqueParticipants != 2 {
		t.Errorf("expected 2 unique participants, got %d", summary.UniqueParticipants)
	}
	// (100+50+75+26)/4 = 62.75, rounded to 63
	if summary.AverageScore != 63 {
		t.Errorf("expected average 63, got %d", summary.AverageScore)
	}
	if len(summary.Attempts) != 4 {
		t.Fatalf("expected 4 attempt rows, got %d", len(summary.Attempts))
	}
	if summary.Attempts[2].Score != 3 || summary.Attempts[2].Total != 4 {
		t.Errorf("row 2: expected score 3/4, got %d/%d", summary.Attempts[2].Score, summary.Attempts[2].Total)
	}
}
