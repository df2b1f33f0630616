// Package user provides business logic for account signup and profile management.
package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/amirasaad/pocketpilot/pkg/domain/user"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	userrepo "github.com/amirasaad/pocketpilot/pkg/repository/user"
	"github.com/amirasaad/pocketpilot/pkg/utils"
	"github.com/google/uuid"
)

// ProfileUpdate carries the optional profile fields. Nil or empty values
// leave the stored value untouched, except ProfilePhoto which may be cleared.
type ProfileUpdate struct {
	Language     string
	Theme        string
	Email        string
	Password     string
	ProfilePhoto *string
}

// Service provides signup and profile operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// Signup creates a new account. A taken username or email yields
// user.ErrUserExists.
func (s *Service) Signup(
	ctx context.Context,
	username, email, password string,
) (u *user.User, err error) {
	log := s.logger.With("context", "Signup", "username", username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		taken, err := repo.ExistsByUsername(ctx, strings.TrimSpace(username))
		if err != nil {
			return err
		}
		if !taken {
			taken, err = repo.ExistsByEmail(ctx, strings.TrimSpace(email))
			if err != nil {
				return err
			}
		}
		if taken {
			return user.ErrUserExists
		}
		u, err = user.New(username, email, password)
		if err != nil {
			return err
		}
		err = repo.Create(ctx, &dto.UserCreate{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			Password:     u.Password,
			Theme:        u.Preferences.Theme,
			Language:     u.Preferences.Language,
			ProfilePhoto: u.ProfilePhoto,
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return user.ErrUserExists
		}
		return err
	})
	if err != nil {
		log.Warn("Signup failed", "error", err)
		return nil, err
	}
	log.Info("User created", "userID", u.ID)
	return u, nil
}

// GetUser returns the profile of userID or user.ErrUserNotFound.
func (s *Service) GetUser(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.UserRead, error) {
	repo, err := repository.Get[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	u, err := repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies the non-empty fields of update. A new email must not
// belong to another account and a new password is re-hashed.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update ProfileUpdate,
) error {
	log := s.logger.With("context", "UpdateProfile", "userID", userID)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if current == nil {
			return user.ErrUserNotFound
		}

		var uu dto.UserUpdate
		if update.Language != "" {
			uu.Language = &update.Language
		}
		if update.Theme != "" {
			uu.Theme = &update.Theme
		}
		if email := strings.TrimSpace(update.Email); email != "" && email != current.Email {
			other, err := repo.GetByEmail(ctx, email)
			if err != nil {
				return err
			}
			if other != nil && other.ID != userID {
				return user.ErrEmailTaken
			}
			uu.Email = &email
		}
		if update.Password != "" {
			hashed, err := utils.HashPassword(update.Password)
			if err != nil {
				return err
			}
			uu.Password = &hashed
		}
		uu.ProfilePhoto = update.ProfilePhoto

		err = repo.Update(ctx, userID, &uu)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return user.ErrEmailTaken
		}
		return err
	})
	if err != nil {
		log.Warn("Profile update failed", "error", err)
		return err
	}
	log.Info("Profile updated")
	return nil
}
