package voice

import (
	"context"
	"fmt"

	"github.com/amirasaad/pocketpilot/pkg/domain/savings"
	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	"github.com/amirasaad/pocketpilot/pkg/domain/voice"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	budgetrepo "github.com/amirasaad/pocketpilot/pkg/repository/budget"
	goalrepo "github.com/amirasaad/pocketpilot/pkg/repository/goal"
	txrepo "github.com/amirasaad/pocketpilot/pkg/repository/transaction"
	userrepo "github.com/amirasaad/pocketpilot/pkg/repository/user"
	"github.com/amirasaad/pocketpilot/pkg/service/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reply is what the dialogue says back after one utterance.
type Reply struct {
	Stage         voice.Stage
	Prompt        string
	Language      string
	TransactionID *uuid.UUID
	Ignored       bool
}

// Command feeds one utterance into the user's dialogue. When every slot is
// filled the transaction is recorded through the ledger with source voice.
func (s *Service) Command(ctx context.Context, userID uuid.UUID, text string) (*Reply, error) {
	log := s.logger.With("context", "VoiceCommand", "userID", userID)

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load voice session: %w", err)
	}
	if session == nil {
		fresh := voice.NewSession()
		session = &fresh
	}
	dc, err := s.dialogueContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, outcome := voice.Step(*session, text, dc)
	if outcome.Ignored {
		return &Reply{Stage: next.Stage, Language: next.Language, Ignored: true}, nil
	}
	reply := &Reply{Stage: next.Stage, Prompt: outcome.Prompt, Language: next.Language}
	if done := outcome.Completed; done != nil {
		tx, err := s.ledger.Record(ctx, ledger.Entry{
			UserID:      userID,
			Amount:      done.Amount,
			Type:        transaction.Type(done.Type),
			Source:      transaction.SourceVoice,
			DomainID:    done.DomainID,
			GoalID:      done.GoalID,
			Description: done.Description,
		})
		if err != nil {
			// the stored session keeps its filled slots so the user can retry
			log.Warn("Voice transaction not recorded", "error", err)
			return nil, err
		}
		reply.TransactionID = &tx.ID
		if err := s.sessions.Save(ctx, userID, next); err != nil {
			log.Error("Voice session not reset after recording", "transactionID", tx.ID, "error", err)
		}
	} else if err := s.sessions.Save(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("save voice session: %w", err)
	}
	s.metrics.DialogueTurn(string(next.Stage))
	log.Debug("Voice command handled", "stage", reply.Stage)
	return reply, nil
}

// Reset drops the user's dialogue session.
func (s *Service) Reset(ctx context.Context, userID uuid.UUID) error {
	return s.sessions.Delete(ctx, userID)
}

// dialogueContext loads the names the user can refer to, with this month's
// spend per domain for budget feedback.
func (s *Service) dialogueContext(ctx context.Context, userID uuid.UUID) (voice.Context, error) {
	now := s.now().UTC()
	dc := voice.Context{Now: now}

	users, err := repository.Get[userrepo.Repository](s.uow)
	if err != nil {
		return dc, err
	}
	if u, err := users.Get(ctx, userID); err != nil {
		return dc, err
	} else if u != nil {
		dc.Language = u.Language
	}

	domains, err := repository.Get[budgetrepo.DomainRepository](s.uow)
	if err != nil {
		return dc, err
	}
	owned, err := domains.ListByUser(ctx, userID)
	if err != nil {
		return dc, err
	}
	ledgerRepo, err := repository.Get[txrepo.Repository](s.uow)
	if err != nil {
		return dc, err
	}
	from, to := savings.MonthBounds(now.Year(), now.Month())
	totals, err := ledgerRepo.ExpenseTotalsByDomain(ctx, dto.TransactionFilter{UserID: userID, From: from, To: to})
	if err != nil {
		return dc, err
	}
	spent := make(map[uuid.UUID]decimal.Decimal, len(totals))
	for _, t := range totals {
		spent[t.DomainID] = t.Total
	}
	for _, d := range owned {
		dc.Domains = append(dc.Domains, voice.Option{
			ID:       d.ID,
			Name:     d.Name,
			Expected: d.ExpectedAmount,
			Spent:    spent[d.ID],
		})
	}

	goals, err := repository.Get[goalrepo.Repository](s.uow)
	if err != nil {
		return dc, err
	}
	userGoals, err := goals.ListByUser(ctx, userID)
	if err != nil {
		return dc, err
	}
	for _, g := range userGoals {
		dc.Goals = append(dc.Goals, voice.Option{ID: g.ID, Name: g.Name})
	}
	return dc, nil
}
