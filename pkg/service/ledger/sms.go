package ledger

import (
	"context"
	"errors"

	"github.com/amirasaad/pocketpilot/pkg/parser"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	budgetrepo "github.com/amirasaad/pocketpilot/pkg/repository/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParsedSMS is a bank message turned into a draft transaction.
type ParsedSMS struct {
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
	DomainID *uuid.UUID      `json:"domain_id,omitempty"`
}

// ParseSMS extracts a draft transaction from text, matching the user's
// domain names. Nothing is stored.
func (s *Service) ParseSMS(ctx context.Context, userID uuid.UUID, text string) (*ParsedSMS, error) {
	domainRepo, err := repository.Get[budgetrepo.DomainRepository](s.uow)
	if err != nil {
		return nil, err
	}
	domains, err := domainRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = d.Name
	}

	sms, err := parser.ParseSMS(text, names)
	if err != nil {
		if errors.Is(err, parser.ErrNeedsClarification) {
			s.metrics.ClarificationNeeded("sms")
		}
		return nil, err
	}
	out := &ParsedSMS{Amount: sms.Amount, Type: sms.Type}
	if sms.DomainIndex >= 0 {
		id := domains[sms.DomainIndex].ID
		out.DomainID = &id
	}
	return out, nil
}
