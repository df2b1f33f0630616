package finance

import (
	budgetsvc "github.com/amirasaad/pocketpilot/pkg/service/budget"
	voicesvc "github.com/amirasaad/pocketpilot/pkg/service/voice"
	"github.com/amirasaad/pocketpilot/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func planRequest(userID uuid.UUID, in *BudgetPlanInput) budgetsvc.PlanRequest {
	return budgetsvc.PlanRequest{
		UserID:      userID,
		TotalBudget: *in.TotalBudget,
		Days:        in.Days,
		DomainIDs:   in.Domains,
		Month:       in.Month,
		Year:        in.Year,
	}
}

// PreviewBudgetPlan computes a plan without saving it.
func PreviewBudgetPlan(budgetSvc *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[BudgetPlanInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		plan, err := budgetSvc.Preview(c.Context(), planRequest(userID, input))
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(toBudgetPlanView(plan, false))
	}
}

// CreateBudgetPlan computes and stores a plan.
func CreateBudgetPlan(budgetSvc *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[BudgetPlanInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		plan, err := budgetSvc.Create(c.Context(), planRequest(userID, input))
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(toBudgetPlanView(plan, true))
	}
}

// LatestBudgetPlan returns the newest stored plan or 404.
func LatestBudgetPlan(budgetSvc *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		plan, err := budgetSvc.Latest(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(toBudgetPlanView(plan, true))
	}
}

// ParseVoicePlan reads amount and duration from text and returns the plan
// draft. Unclear text answers 422 with the clarification prompt.
func ParseVoicePlan(voiceSvc *voicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TextInput](c)
		if input == nil {
			return err // error response already written
		}
		draft, err := voiceSvc.ParsePlan(input.Text)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(VoicePlanView{
			OriginalText:   draft.OriginalText,
			ParsedAmount:   draft.ParsedAmount,
			ParsedDuration: draft.ParsedDuration,
			GeneratedPlan:  draft.GeneratedPlan,
		})
	}
}

// CreateVoicePlan stores a voice plan. The generated figures are
// recomputed from parsedAmount and parsedDuration.
func CreateVoicePlan(voiceSvc *voicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[VoicePlanInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		plan, err := voiceSvc.CreatePlan(
			c.Context(),
			userID,
			input.OriginalText,
			*input.ParsedAmount,
			input.ParsedDuration,
		)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(toVoicePlanView(plan))
	}
}

// ListVoicePlans returns the user's voice plans newest first.
func ListVoicePlans(voiceSvc *voicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		plans, err := voiceSvc.ListPlans(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		out := make([]VoicePlanView, 0, len(plans))
		for _, p := range plans {
			out = append(out, toVoicePlanView(p))
		}
		return c.JSON(out)
	}
}

// LatestVoicePlan returns the newest voice plan or 404.
func LatestVoicePlan(voiceSvc *voicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		plan, err := voiceSvc.LatestPlan(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(toVoicePlanView(plan))
	}
}
