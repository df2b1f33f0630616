package auth

import userweb "github.com/amirasaad/pocketpilot/webapi/user"

// SignupInput represents the request body for creating an account.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginInput represents the request body for user authentication. Identity
// may be a username or an email; Username is accepted for older clients.
type LoginInput struct {
	Identity string `json:"identity" validate:"required_without=Username"`
	Username string `json:"username" validate:"required_without=Identity"`
	Password string `json:"password" validate:"required"`
}

func (in LoginInput) identity() string {
	if in.Identity != "" {
		return in.Identity
	}
	return in.Username
}

// SignupResponse is returned after a successful signup.
type SignupResponse struct {
	Message string          `json:"message"`
	User    userweb.Profile `json:"user"`
}

// LoginResponse carries the bearer token and the user's profile.
type LoginResponse struct {
	Token string          `json:"token"`
	User  userweb.Profile `json:"user"`
}
