package user

import (
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/google/uuid"
)

// Profile is the public view of a user.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfilePhoto string    `json:"profile_photo"`
	Language     string    `json:"language"`
	Theme        string    `json:"theme"`
}

// ToProfile maps a stored user to its public view.
func ToProfile(u *dto.UserRead) Profile {
	return Profile{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		ProfilePhoto: u.ProfilePhoto,
		Language:     u.Language,
		Theme:        u.Theme,
	}
}

// UpdateProfileInput represents the request body for a profile update.
// Empty fields are left unchanged.
type UpdateProfileInput struct {
	Language     string  `json:"language" validate:"omitempty,oneof=en te hi"`
	Theme        string  `json:"theme" validate:"omitempty,oneof=light dark"`
	Email        string  `json:"email" validate:"omitempty,email,max=254"`
	Password     string  `json:"password" validate:"omitempty,min=6,max=72"`
	ProfilePhoto *string `json:"profile_photo"`
}

// UpdateProfileResponse is returned after a profile update.
type UpdateProfileResponse struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}
