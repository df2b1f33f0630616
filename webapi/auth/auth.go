package auth

import (
	"errors"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	authsvc "github.com/amirasaad/pocketpilot/pkg/service/auth"
	usersvc "github.com/amirasaad/pocketpilot/pkg/service/user"
	"github.com/amirasaad/pocketpilot/webapi/common"
	userweb "github.com/amirasaad/pocketpilot/webapi/user"
	"github.com/gofiber/fiber/v2"
)

func Routes(r fiber.Router, authSvc *authsvc.Service, userSvc *usersvc.Service) {
	r.Post("/auth/signup", Signup(userSvc))
	r.Post("/auth/login", Login(authSvc))
}

// Signup creates an account. A taken username or email answers 400.
func Signup(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if input == nil {
			return err // error response already written
		}
		u, err := userSvc.Signup(c.Context(), input.Username, input.Email, input.Password)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		profile, err := userSvc.GetUser(c.Context(), u.ID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(SignupResponse{
			Message: "Account created successfully",
			User:    userweb.ToProfile(profile),
		})
	}
}

// Login authenticates by username or email and returns a JWT with the
// user's profile.
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // error response already written
		}
		u, err := authSvc.Login(c.Context(), input.identity(), input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
			}
			return common.ErrorJSON(c, err)
		}
		token, err := authSvc.GenerateToken(c.Context(), u)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(LoginResponse{Token: token, User: userweb.ToProfile(u)})
	}
}
