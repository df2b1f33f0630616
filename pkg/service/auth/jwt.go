package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/domain/user"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	repouser "github.com/amirasaad/pocketpilot/pkg/repository/user"
	"github.com/amirasaad/pocketpilot/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash is compared against for unknown identities so both failure
// paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// JWTStrategy signs HS256 tokens carrying user_id, sub, username, iat and exp.
type JWTStrategy struct {
	uow repository.UnitOfWork
	cfg *config.Jwt
	now func() time.Time
}

func NewJWTStrategy(uow repository.UnitOfWork, cfg *config.Jwt) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, now: time.Now}
}

// WithClock sets the time source for iat and exp.
func (s *JWTStrategy) WithClock(now func() time.Time) *JWTStrategy {
	s.now = now
	return s
}

func (s *JWTStrategy) Issue(u *dto.UserRead) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":  u.ID.String(),
		"sub":      u.ID.String(),
		"username": u.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.Expiry).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTStrategy) Authenticate(
	ctx context.Context,
	identity, password string,
) (*dto.UserRead, error) {
	identity = strings.TrimSpace(identity)
	var found *dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[repouser.Repository](uow)
		if err != nil {
			return err
		}
		lookup := repo.GetByUsername
		if utils.IsEmail(identity) {
			lookup = repo.GetByEmail
		}
		found, err = lookup(ctx, identity)
		return err
	})
	if err != nil {
		return nil, err
	}

	hash := dummyHash
	if found != nil {
		hash = found.HashedPassword
	}
	if !utils.CheckPasswordHash(password, hash) || found == nil {
		return nil, user.ErrUserUnauthorized
	}
	return found, nil
}

// UserID prefers the user_id claim and falls back to sub.
func (s *JWTStrategy) UserID(token *jwt.Token) (uuid.UUID, error) {
	if token == nil {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	raw, _ := claims["user_id"].(string)
	if raw == "" {
		raw, _ = claims.GetSubject()
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	return id, nil
}
