package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnonymousEmail marks attempts submitted without a respondent email.
const AnonymousEmail = "anonymous"

// Attempt is written once per submission and never updated. Attempts survive
// quiz deletion (no cascade), so QuizID may reference a deleted quiz.
type Attempt struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuizID     primitive.ObjectID `bson:"quiz_id" json:"quizId"`
	Email      string             `bson:"email" json:"email"`
	Total      int                `bson:"total" json:"total"`
	Correct    int                `bson:"correct" json:"correct"`
	Percentage int                `bson:"percentage" json:"percentage"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
