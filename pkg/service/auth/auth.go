// Package auth verifies credentials and issues the bearer tokens accepted
// by the protected routes.
package auth

import (
	"context"
	"log/slog"

	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Strategy is one way of proving identity. JWTStrategy is the only one
// wired today.
type Strategy interface {
	Authenticate(ctx context.Context, identity, password string) (*dto.UserRead, error)
	Issue(u *dto.UserRead) (string, error)
	UserID(token *jwt.Token) (uuid.UUID, error)
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(strategy Strategy, logger *slog.Logger) *Service {
	return &Service{strategy: strategy, logger: logger}
}

// NewWithJWT builds a Service backed by stored bcrypt hashes and HS256 tokens.
func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(NewJWTStrategy(uow, cfg), logger)
}

// Login checks identity, a username or an email, against password.
// Unknown identities and wrong passwords both yield user.ErrUserUnauthorized.
func (s *Service) Login(
	ctx context.Context,
	identity, password string,
) (*dto.UserRead, error) {
	u, err := s.strategy.Authenticate(ctx, identity, password)
	if err != nil {
		s.logger.Warn("Login rejected", "identity", identity, "error", err)
		return nil, err
	}
	s.logger.Info("Login successful", "userID", u.ID)
	return u, nil
}

func (s *Service) GenerateToken(
	_ context.Context,
	u *dto.UserRead,
) (string, error) {
	token, err := s.strategy.Issue(u)
	if err != nil {
		s.logger.Error("Token signing failed", "userID", u.ID, "error", err)
		return "", err
	}
	return token, nil
}

// GetCurrentUserId reads the user id from a token the middleware already
// verified.
func (s *Service) GetCurrentUserId(token *jwt.Token) (uuid.UUID, error) {
	id, err := s.strategy.UserID(token)
	if err != nil {
		s.logger.Debug("Token carries no usable user id", "error", err)
		return uuid.Nil, err
	}
	return id, nil
}
