package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttemptStore interface {
	Insert(ctx context.Context, attempt *models.Attempt) (primitive.ObjectID, error)
	FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Attempt, error)
}

type AttemptService struct {
	Questions QuestionStore
	Attempts  AttemptStore
}

func NewAttemptService(questions QuestionStore, attempts AttemptStore) *AttemptService {
	return &AttemptService{Questions: questions, Attempts: attempts}
}

// Score is what a submission gets back. Percentage is rounded half-up.
type Score struct {
	Total      int `json:"total"`
	Correct    int `json:"correct"`
	Percentage int `json:"percentage"`
}

// Submit grades answers positionally against the quiz's questions in _id
// order. Extra answers beyond the question count are ignored; missing ones
// count as wrong. The attempt record is persisted before returning.
func (s *AttemptService) Submit(ctx context.Context, quizID primitive.ObjectID, answers []int, email string) (*Score, error) {
	questions, err := s.Questions.FindByQuizOrdered(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	correct := 0
	for i := 0; i < len(answers) && i < len(questions); i++ {
		if answers[i] == questions[i].AnswerIndex {
			correct++
		}
	}
	total := len(questions)
	percentage := int(math.Round(float64(correct) / float64(total) * 100))

	if email == "" {
		email = models.AnonymousEmail
	}
	attempt := &models.Attempt{
		QuizID:     quizID,
		Email:      email,
		Total:      total,
		Correct:    correct,
		Percentage: percentage,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.Attempts.Insert(ctx, attempt); err != nil {
		return nil, fmt.Errorf("insert attempt: %w", err)
	}

	return &Score{Total: total, Correct: correct, Percentage: percentage}, nil
}

// AttemptSummary is one row of the analytics payload. Score is the correct
// count, keeping the key the frontend already consumes.
type AttemptSummary struct {
	Email      string    `json:"email"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Analytics struct {
	TotalAttempts      int              `json:"totalAttempts"`
	UniqueParticipants int              `json:"uniqueParticipants"`
	AverageScore       int              `json:"averageScore"`
	Attempts           []AttemptSummary `json:"attempts"`
}

// Summarize aggregates every attempt for a quiz, newest first. No
// pagination: the payload grows with the attempt count.
func (s *AttemptService) Summarize(ctx context.Context, quizID primitive.ObjectID) (*Analytics, error) {
	attempts, err := s.Attempts.FindByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	summary := &Analytics{
		TotalAttempts: len(attempts),
		Attempts:      make([]AttemptSummary, 0, len(attempts)),
	}

	sum := 0
	participants := make(map[string]struct{})
	for _, a := range attempts {
		sum += a.Percentage
		if a.Email != "" && a.Email != models.AnonymousEmail {
			participants[a.Email] = struct{}{}
		}
		summary.Attempts = append(summary.Attempts, AttemptSummary{
			Email:      a.Email,
			Score:      a.Correct,
			Total:      a.Total,
			Percentage: a.Percentage,
			CreatedAt:  a.CreatedAt,
		})
	}
	summary.UniqueParticipants = len(participants)
	if len(attempts) > 0 {
		summary.AverageScore = int(math.Round(float64(sum) / float64(len(attempts))))
	}

	return summary, nil
}
