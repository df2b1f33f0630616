// Package goals serves savings goals.
package goals

import (
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/middleware"
	authsvc "github.com/amirasaad/pocketpilot/pkg/service/auth"
	goalsvc "github.com/amirasaad/pocketpilot/pkg/service/goal"
	"github.com/amirasaad/pocketpilot/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// GoalInput represents the request body for a new goal.
type GoalInput struct {
	Name         string           `json:"name" validate:"required,max=100"`
	TargetAmount *decimal.Decimal `json:"target_amount" validate:"required"`
	Months       int              `json:"months" validate:"required,min=1,max=600"`
}

func Routes(
	r fiber.Router,
	goalSvc *goalsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	g := r.Group("/goals",
		middleware.JwtProtected(cfg.Auth.Jwt),
		common.ResolveUser(authSvc),
	)
	g.Post("/", CreateGoal(goalSvc))
	g.Get("/", ListGoals(goalSvc))
}

// CreateGoal stores a savings goal.
func CreateGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[GoalInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		g, err := goalSvc.Create(c.Context(), userID, input.Name, *input.TargetAmount, input.Months)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(common.MessageResponse{
			ID:      g.ID,
			Message: "Goal created successfully",
		})
	}
}

// ListGoals returns the user's goals newest first with the savings rates.
func ListGoals(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		goals, err := goalSvc.List(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(goals)
	}
}

