// Package finance serves domains, the transaction ledger, summaries,
// daily savings status, budget and voice plans and the voice dialogue.
package finance

import (
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	"github.com/amirasaad/pocketpilot/pkg/middleware"
	authsvc "github.com/amirasaad/pocketpilot/pkg/service/auth"
	budgetsvc "github.com/amirasaad/pocketpilot/pkg/service/budget"
	"github.com/amirasaad/pocketpilot/pkg/service/ledger"
	savingssvc "github.com/amirasaad/pocketpilot/pkg/service/savings"
	voicesvc "github.com/amirasaad/pocketpilot/pkg/service/voice"
	"github.com/amirasaad/pocketpilot/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Services groups the services behind the finance routes.
type Services struct {
	Ledger  *ledger.Service
	Budget  *budgetsvc.Service
	Savings *savingssvc.Service
	Voice   *voicesvc.Service
}

func Routes(
	r fiber.Router,
	svc Services,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	g := r.Group("/finance",
		middleware.JwtProtected(cfg.Auth.Jwt),
		common.ResolveUser(authSvc),
	)

	g.Get("/domains", ListDomains(svc.Budget))
	g.Post("/domains", CreateDomain(svc.Budget))

	g.Post("/transactions", CreateTransaction(svc.Ledger))
	g.Post("/transactions/sms", CreateSMSTransaction(svc.Ledger))
	g.Get("/transactions", ListTransactions(svc.Ledger))
	g.Post("/sms/parse", ParseSMS(svc.Ledger))

	g.Get("/summary", Summary(svc.Ledger))
	g.Get("/daily-performance", DailyPerformance(svc.Savings))
	g.Get("/daily-history", DailyHistory(svc.Savings))

	g.Post("/budget-plan", CreateBudgetPlan(svc.Budget))
	g.Post("/budget-plan/preview", PreviewBudgetPlan(svc.Budget))
	g.Get("/budget-plan/latest", LatestBudgetPlan(svc.Budget))

	g.Post("/voice-plan/parse", ParseVoicePlan(svc.Voice))
	g.Post("/voice-plan", CreateVoicePlan(svc.Voice))
	g.Get("/voice-plan", ListVoicePlans(svc.Voice))
	g.Get("/voice-plan/latest", LatestVoicePlan(svc.Voice))

	g.Post("/voice/command", VoiceCommand(svc.Voice))
	g.Delete("/voice/session", ResetVoiceSession(svc.Voice))
}

// ListDomains returns the user's spending domains.
func ListDomains(budgetSvc *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		domains, err := budgetSvc.ListDomains(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		out := make([]DomainView, 0, len(domains))
		for _, d := range domains {
			out = append(out, DomainView{ID: d.ID, Name: d.Name, ExpectedAmount: d.ExpectedAmount})
		}
		return c.JSON(out)
	}
}

// CreateDomain adds a spending domain.
func CreateDomain(budgetSvc *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DomainInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		d, err := budgetSvc.CreateDomain(c.Context(), userID, input.Name, *input.ExpectedAmount)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).
			JSON(DomainView{ID: d.ID, Name: d.Name, ExpectedAmount: d.ExpectedAmount})
	}
}

// CreateTransaction records a manual, voice or sms entry. Source defaults
// to manual.
func CreateTransaction(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		domainID, err := common.OptionalUUID("domain_id", input.DomainID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		goalID, err := common.OptionalUUID("goal_id", input.GoalID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		tx, err := ledgerSvc.Record(c.Context(), ledger.Entry{
			UserID:      userID,
			Amount:      *input.Amount,
			Type:        transaction.Type(input.Type),
			Source:      transaction.Source(input.Source),
			DomainID:    domainID,
			GoalID:      goalID,
			Description: input.Description,
		})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).
			JSON(TransactionCreated{ID: tx.ID, Message: "Transaction added"})
	}
}

// CreateSMSTransaction records an entry confirmed from the SMS simulator.
// The same amount and type within the duplicate window answers 409.
func CreateSMSTransaction(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SMSTransactionInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		domainID, err := common.OptionalUUID("domain_id", input.DomainID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		tx, err := ledgerSvc.RecordSMS(c.Context(), userID, *input.Amount, transaction.Type(input.Type), domainID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		view := fromTransaction(tx)
		return c.Status(fiber.StatusCreated).JSON(TransactionCreated{
			ID:          tx.ID,
			Message:     "SMS Transaction saved successfully",
			Transaction: &view,
		})
	}
}

// ListTransactions returns the user's entries newest first. Optional month
// and year query parameters select a UTC calendar month or year.
func ListTransactions(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		month, err := common.QueryInt(c, "month")
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		year, err := common.QueryInt(c, "year")
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		txs, err := ledgerSvc.List(c.Context(), userID, ledger.Period{Month: month, Year: year})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		out := make([]TransactionView, 0, len(txs))
		for _, t := range txs {
			out = append(out, toTransactionView(t))
		}
		return c.JSON(out)
	}
}

// ParseSMS extracts amount, type and domain from an SMS without saving.
func ParseSMS(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TextInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		parsed, err := ledgerSvc.ParseSMS(c.Context(), userID, input.Text)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(parsed)
	}
}
