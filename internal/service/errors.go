package service

import "errors"

// Sentinel errors for the failure cases handlers translate into status
// codes. Anything else that bubbles out of a service is an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoQuestions        = errors.New("quiz has no questions")
	ErrAnswerIndexRange   = errors.New("answerIndex out of range")
)
