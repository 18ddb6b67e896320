package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question belongs to exactly one quiz. AnswerIndex is zero-based into
// Options and must be in range when the question is created.
type Question struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuizID      primitive.ObjectID `bson:"quiz_id" json:"quizId"`
	Text        string             `bson:"text" json:"text"`
	Options     []string           `bson:"options" json:"options"`
	AnswerIndex int                `bson:"answer_index" json:"answerIndex"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
