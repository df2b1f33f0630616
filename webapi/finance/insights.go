package finance

import (
	"github.com/amirasaad/pocketpilot/pkg/service/ledger"
	savingssvc "github.com/amirasaad/pocketpilot/pkg/service/savings"
	"github.com/amirasaad/pocketpilot/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Summary returns income and expense totals with the per-domain breakdown.
func Summary(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		sum, err := ledgerSvc.Summary(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(sum)
	}
}

// DailyPerformance classifies today's net savings against the latest goal
// and stores the day's status.
func DailyPerformance(savingsSvc *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		ev, err := savingsSvc.Evaluate(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(PerformanceView{
			Status:       ev.Status,
			GoalPerDay:   ev.GoalPerDay,
			IncomePerDay: ev.IncomePerDay,
			Tooltip:      ev.Tooltip,
		})
	}
}

// DailyHistory lists stored daily statuses for ?year, default this year.
func DailyHistory(savingsSvc *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		year, err := common.QueryInt(c, "year")
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		history, err := savingsSvc.History(c.Context(), userID, year)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(history)
	}
}
