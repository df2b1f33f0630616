package voice

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/amirasaad/pocketpilot/pkg/domain/voice"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/parser"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	voicerepo "github.com/amirasaad/pocketpilot/pkg/repository/voiceplan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft is a parsed but unsaved voice plan.
type Draft struct {
	OriginalText   string
	ParsedAmount   decimal.Decimal
	ParsedDuration int
	GeneratedPlan  voice.GeneratedPlan
}

// ParsePlan reads an amount and a duration from text and generates the plan.
// Missing values surface as parser.ErrNeedsClarification.
func (s *Service) ParsePlan(text string) (*Draft, error) {
	d, err := parser.ParseDuration(text)
	if err != nil {
		if errors.Is(err, parser.ErrNeedsClarification) {
			s.metrics.ClarificationNeeded("voice_plan")
		}
		return nil, err
	}
	plan, err := voice.GeneratePlan(d.Amount, d.Days)
	if err != nil {
		return nil, err
	}
	return &Draft{
		OriginalText:   text,
		ParsedAmount:   d.Amount,
		ParsedDuration: d.Days,
		GeneratedPlan:  plan,
	}, nil
}

// CreatePlan stores a plan. The generated figures are recomputed from amount
// and days.
func (s *Service) CreatePlan(
	ctx context.Context,
	userID uuid.UUID,
	text string,
	amount decimal.Decimal,
	days int,
) (*voice.Plan, error) {
	plan, err := voice.NewPlan(userID, text, amount, days)
	if err != nil {
		return nil, err
	}
	plan.CreatedAt = s.now().UTC()
	encoded, err := json.Marshal(plan.GeneratedPlan)
	if err != nil {
		return nil, err
	}
	repo, err := repository.Get[voicerepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, &dto.VoicePlanCreate{
		ID:             plan.ID,
		UserID:         plan.UserID,
		OriginalText:   plan.OriginalText,
		ParsedAmount:   plan.ParsedAmount,
		ParsedDuration: plan.ParsedDuration,
		GeneratedPlan:  encoded,
		CreatedAt:      plan.CreatedAt,
	}); err != nil {
		s.logger.Error("Voice plan create failed", "userID", userID, "error", err)
		return nil, err
	}
	s.logger.Info("Voice plan created", "userID", userID, "planID", plan.ID)
	return plan, nil
}

// ListPlans returns the user's plans newest first.
func (s *Service) ListPlans(ctx context.Context, userID uuid.UUID) ([]*voice.Plan, error) {
	repo, err := repository.Get[voicerepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	rows, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*voice.Plan, 0, len(rows))
	for _, r := range rows {
		p, err := fromRead(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// LatestPlan returns the newest plan or voice.ErrPlanNotFound.
func (s *Service) LatestPlan(ctx context.Context, userID uuid.UUID) (*voice.Plan, error) {
	repo, err := repository.Get[voicerepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	r, err := repo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, voice.ErrPlanNotFound
	}
	return fromRead(r)
}

func fromRead(r *dto.VoicePlanRead) (*voice.Plan, error) {
	p := &voice.Plan{
		ID:             r.ID,
		UserID:         r.UserID,
		OriginalText:   r.OriginalText,
		ParsedAmount:   r.ParsedAmount,
		ParsedDuration: r.ParsedDuration,
		CreatedAt:      r.CreatedAt,
	}
	if err := json.Unmarshal(r.GeneratedPlan, &p.GeneratedPlan); err != nil {
		return nil, err
	}
	return p, nil
}
