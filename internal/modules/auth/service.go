package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"roomsched/internal/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service issues operator tokens. There is no user registry; a single
// bcrypt-hashed operator password is configured through the environment.
type Service struct {
	passwordHash string
	role         string
	tokens       *jwt.Service
}

func NewService(passwordHash, role string, tokens *jwt.Service) *Service {
	return &Service{
		passwordHash: passwordHash,
		role:         role,
		tokens:       tokens,
	}
}

func (s *Service) IssueToken(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateToken("operator", s.role)
}
