package user

import (
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/middleware"
	authsvc "github.com/amirasaad/pocketpilot/pkg/service/auth"
	usersvc "github.com/amirasaad/pocketpilot/pkg/service/user"
	"github.com/amirasaad/pocketpilot/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	r fiber.Router,
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	protected := []fiber.Handler{
		middleware.JwtProtected(cfg.Auth.Jwt),
		common.ResolveUser(authSvc),
	}
	r.Get("/auth/profile", append(protected, GetProfile(userSvc))...)
	r.Put("/auth/profile", append(protected, UpdateProfile(userSvc))...)
}

// GetProfile returns the authenticated user's profile.
func GetProfile(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		u, err := userSvc.GetUser(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(ToProfile(u))
	}
}

// UpdateProfile applies language, theme, email, password and photo changes.
func UpdateProfile(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateProfileInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		err = userSvc.UpdateProfile(c.Context(), userID, usersvc.ProfileUpdate{
			Language:     input.Language,
			Theme:        input.Theme,
			Email:        input.Email,
			Password:     input.Password,
			ProfilePhoto: input.ProfilePhoto,
		})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		u, err := userSvc.GetUser(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(UpdateProfileResponse{Message: "Profile updated", User: ToProfile(u)})
	}
}
