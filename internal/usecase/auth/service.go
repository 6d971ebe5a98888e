package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/auth"
)

// Service authenticates the single operator allowed to drive the tracker.
type Service struct {
	enabled        bool
	username       string
	passwordHash   string
	jwtSvc         *auth.JWTService
	passwordHasher *auth.PasswordHasher
}

type Config struct {
	Enabled      bool
	Username     string
	PasswordHash string
}

func NewService(cfg Config, jwtSvc *auth.JWTService, passwordHasher *auth.PasswordHasher) *Service {
	return &Service{
		enabled:        cfg.Enabled,
		username:       cfg.Username,
		passwordHash:   cfg.PasswordHash,
		jwtSvc:         jwtSvc,
		passwordHasher: passwordHasher,
	}
}

type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

type LoginInput struct {
	Username string
	Password string
}

func (s *Service) Enabled() bool {
	return s.enabled
}

func (s *Service) Login(_ context.Context, input LoginInput) (*Token, error) {
	if !s.enabled {
		return nil, domain.ErrAuthDisabled
	}

	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.passwordHasher.Compare(s.passwordHash, input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(s.username)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}

	return &Token{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

// Authenticate validates a bearer token and returns its subject.
func (s *Service) Authenticate(token string) (string, error) {
	subject, err := s.jwtSvc.ValidateAccessToken(token)
	if err != nil {
		return "", err
	}
	if subject != s.username {
		return "", domain.ErrUnauthorized
	}
	return subject, nil
}
