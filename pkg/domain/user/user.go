package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/amirasaad/pocketpilot/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)
	// ErrUserUnauthorized is returned when credentials or tokens are invalid.
	ErrUserUnauthorized = fmt.Errorf("user unauthorized: %w", domain.ErrUnauthorized)
	// ErrUserExists is returned when the username or email is already taken.
	ErrUserExists = fmt.Errorf("username or email already exists: %w", domain.ErrValidation)
	// ErrEmailTaken is returned when a profile update collides with another account.
	ErrEmailTaken = fmt.Errorf("email already in use: %w", domain.ErrValidation)
)

const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
)

// Preferences are the client display settings kept with the account.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// User represents a user in the system.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	Password     string      `json:"-"`
	ProfilePhoto string      `json:"profile_photo"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created"`
	UpdatedAt    time.Time   `json:"updated"`
}

// New creates a new User with a hashed password and default preferences.
func New(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, errors.Join(domain.ErrValidation, errors.New("username cannot be empty"))
	}
	if email == "" {
		return nil, errors.Join(domain.ErrValidation, errors.New("email cannot be empty"))
	}
	if password == "" {
		return nil, errors.Join(domain.ErrValidation, errors.New("password cannot be empty"))
	}
	hashedPassword, err := utils.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, errors.Join(domain.ErrValidation, err)
	}
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Preferences: Preferences{
			Theme:    DefaultTheme,
			Language: DefaultLanguage,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
