package finance

import (
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain/budget"
	"github.com/amirasaad/pocketpilot/pkg/domain/savings"
	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	"github.com/amirasaad/pocketpilot/pkg/domain/voice"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainInput represents the request body for a new spending domain.
type DomainInput struct {
	Name           string           `json:"name" validate:"required,max=100"`
	ExpectedAmount *decimal.Decimal `json:"expected_amount" validate:"required"`
}

// DomainView is a spending domain with its expected monthly amount.
type DomainView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
}

// TransactionInput represents the request body for a manual transaction.
type TransactionInput struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Type        string           `json:"type" validate:"required,oneof=income expense"`
	DomainID    string           `json:"domain_id" validate:"omitempty,uuid"`
	GoalID      string           `json:"goal_id" validate:"omitempty,uuid"`
	Description string           `json:"description" validate:"max=255"`
	Source      string           `json:"source" validate:"omitempty,oneof=manual voice sms"`
}

// SMSTransactionInput represents a transaction confirmed from an SMS.
type SMSTransactionInput struct {
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Type     string           `json:"type" validate:"required,oneof=income expense"`
	DomainID string           `json:"domain_id" validate:"omitempty,uuid"`
}

// TextInput carries free text to parse.
type TextInput struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// TransactionCreated is returned after a transaction is stored.
type TransactionCreated struct {
	ID          uuid.UUID        `json:"id"`
	Message     string           `json:"message"`
	Transaction *TransactionView `json:"transaction,omitempty"`
}

// TransactionView is one ledger row as listed to clients.
type TransactionView struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	DomainID    *uuid.UUID      `json:"domain_id"`
	DomainName  string          `json:"domain_name,omitempty"`
	GoalID      *uuid.UUID      `json:"goal_id,omitempty"`
}

// noDomain is shown for entries without a domain.
const noDomain = "-"

func toTransactionView(t *dto.TransactionRead) TransactionView {
	name := t.DomainName
	if t.DomainID == nil || name == "" {
		name = noDomain
	}
	return TransactionView{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Date:        t.Date,
		Source:      t.Source,
		Description: t.Description,
		DomainID:    t.DomainID,
		DomainName:  name,
		GoalID:      t.GoalID,
	}
}

// fromTransaction maps a freshly recorded entry. The domain name is only
// known for listed entries.
func fromTransaction(tx *transaction.Transaction) TransactionView {
	v := TransactionView{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Date:        tx.Date,
		Source:      string(tx.Source),
		Description: tx.Description,
		DomainID:    tx.DomainID,
		GoalID:      tx.GoalID,
	}
	if tx.DomainID == nil {
		v.DomainName = noDomain
	}
	return v
}

// PerformanceView is the outcome of today's savings evaluation.
type PerformanceView struct {
	Status       savings.Status  `json:"status"`
	GoalPerDay   decimal.Decimal `json:"goal_per_day"`
	IncomePerDay decimal.Decimal `json:"income_per_day"`
	Tooltip      string          `json:"tooltip"`
}

// BudgetPlanInput asks for a plan over the selected domains. Month and
// year pick the lookback month for historical spend.
type BudgetPlanInput struct {
	TotalBudget *decimal.Decimal `json:"totalBudget" validate:"required"`
	Days        int              `json:"days" validate:"required,min=1,max=3660"`
	Domains     []uuid.UUID      `json:"domains" validate:"required,min=1"`
	Month       int              `json:"month" validate:"omitempty,min=1,max=12"`
	Year        int              `json:"year" validate:"omitempty,min=1970,max=9999"`
}

// BudgetPlanView is a generated budget plan. Previews carry no id.
type BudgetPlanView struct {
	ID            *uuid.UUID          `json:"id,omitempty"`
	TotalBudget   decimal.Decimal     `json:"totalBudget"`
	Days          int                 `json:"days"`
	Domains       []uuid.UUID         `json:"domains"`
	PlanBreakdown []budget.Allocation `json:"planBreakdown"`
	Fallback      bool                `json:"fallback"`
	CreatedAt     *time.Time          `json:"createdAt,omitempty"`
}

func toBudgetPlanView(p *budget.Plan, saved bool) BudgetPlanView {
	v := BudgetPlanView{
		TotalBudget:   p.TotalBudget,
		Days:          p.Days,
		Domains:       p.DomainIDs,
		PlanBreakdown: p.Breakdown,
		Fallback:      p.Fallback,
	}
	if saved {
		id, createdAt := p.ID, p.CreatedAt
		v.ID, v.CreatedAt = &id, &createdAt
	}
	return v
}

// VoicePlanInput represents a voice plan to store. The generated figures
// are recomputed on the server.
type VoicePlanInput struct {
	OriginalText   string           `json:"originalText" validate:"required,max=1000"`
	ParsedAmount   *decimal.Decimal `json:"parsedAmount" validate:"required"`
	ParsedDuration int              `json:"parsedDuration" validate:"required,min=1,max=3660"`
}

// VoicePlanView is a voice plan as returned to clients. Drafts carry no id.
type VoicePlanView struct {
	ID             *uuid.UUID          `json:"id,omitempty"`
	OriginalText   string              `json:"originalText"`
	ParsedAmount   decimal.Decimal     `json:"parsedAmount"`
	ParsedDuration int                 `json:"parsedDuration"`
	GeneratedPlan  voice.GeneratedPlan `json:"generatedPlan"`
	CreatedAt      *time.Time          `json:"createdAt,omitempty"`
}

func toVoicePlanView(p *voice.Plan) VoicePlanView {
	id, createdAt := p.ID, p.CreatedAt
	return VoicePlanView{
		ID:             &id,
		OriginalText:   p.OriginalText,
		ParsedAmount:   p.ParsedAmount,
		ParsedDuration: p.ParsedDuration,
		GeneratedPlan:  p.GeneratedPlan,
		CreatedAt:      &createdAt,
	}
}

// VoiceReply is the dialogue's answer to one utterance.
type VoiceReply struct {
	Stage         voice.Stage `json:"stage"`
	Prompt        string      `json:"prompt"`
	Language      string      `json:"language"`
	TransactionID *uuid.UUID  `json:"transaction_id,omitempty"`
	Ignored       bool        `json:"ignored,omitempty"`
}
