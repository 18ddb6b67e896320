package service

import (
	"context"
	"fmt"
	"time"

	"quiz-backend/internal/auth"
	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the subset of the user repository the auth service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
}

type AuthService struct {
	Users  UserStore
	Secret string
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{Users: users, Secret: secret}
}

// Register stores a new user with a bcrypt-hashed password and returns a
// signed token for the fresh account.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.Users.Insert(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}

	return auth.Sign(s.Secret, id.Hex(), email)
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password both come back as ErrInvalidCredentials so responses do not
// leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return auth.Sign(s.Secret, user.ID.Hex(), user.Email)
}
