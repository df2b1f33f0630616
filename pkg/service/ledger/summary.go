package ledger

import (
	"context"

	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	budgetrepo "github.com/amirasaad/pocketpilot/pkg/repository/budget"
	txrepo "github.com/amirasaad/pocketpilot/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DomainBreakdown is the spend position of one domain.
type DomainBreakdown struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	ExpectedAmount  decimal.Decimal `json:"expected_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

// Summary is the user's overall position.
type Summary struct {
	TotalIncome     decimal.Decimal   `json:"total_income"`
	TotalExpense    decimal.Decimal   `json:"total_expense"`
	CurrentBalance  decimal.Decimal   `json:"current_balance"`
	DomainBreakdown []DomainBreakdown `json:"domain_breakdown"`
}

// Summary recomputes totals and per-domain spend from the whole ledger.
// The three reads run concurrently.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	ledger, err := repository.Get[txrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	domainRepo, err := repository.Get[budgetrepo.DomainRepository](s.uow)
	if err != nil {
		return nil, err
	}

	filter := dto.TransactionFilter{UserID: userID}
	var (
		typeTotals   []dto.TypeTotal
		domainTotals []dto.DomainTotal
		domains      []*dto.DomainRead
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		typeTotals, err = ledger.TotalsByType(gctx, filter)
		return
	})
	g.Go(func() (err error) {
		domainTotals, err = ledger.ExpenseTotalsByDomain(gctx, filter)
		return
	})
	g.Go(func() (err error) {
		domains, err = domainRepo.ListByUser(gctx, userID)
		return
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Summary failed", "userID", userID, "error", err)
		return nil, err
	}

	return buildSummary(typeTotals, domainTotals, domains), nil
}

func buildSummary(types []dto.TypeTotal, spent []dto.DomainTotal, domains []*dto.DomainRead) *Summary {
	out := &Summary{
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
		DomainBreakdown: make([]DomainBreakdown, 0, len(domains)),
	}
	for _, t := range types {
		switch transaction.Type(t.Type) {
		case transaction.TypeIncome:
			out.TotalIncome = t.Total
		case transaction.TypeExpense:
			out.TotalExpense = t.Total
		}
	}
	out.CurrentBalance = out.TotalIncome.Sub(out.TotalExpense)

	byDomain := make(map[uuid.UUID]decimal.Decimal, len(spent))
	for _, d := range spent {
		byDomain[d.DomainID] = d.Total
	}
	for _, d := range domains {
		used := byDomain[d.ID]
		out.DomainBreakdown = append(out.DomainBreakdown, DomainBreakdown{
			ID:              d.ID,
			Name:            d.Name,
			ExpectedAmount:  d.ExpectedAmount,
			SpentAmount:     used,
			RemainingAmount: d.ExpectedAmount.Sub(used),
		})
	}
	return out
}
