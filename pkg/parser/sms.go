package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const promptSMSAmount = "Detected a financial SMS, but couldn't find the exact amount."

var (
	smsIncomeRe  = regexp.MustCompile(`(?i)(credit|receive|income|salary|refund|credited|received)`)
	smsExpenseRe = regexp.MustCompile(`(?i)(debit|withdraw|spent|payment|pay|debited|withdrawn)`)

	// Tried in order; the first capturing match wins.
	smsAmountRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*(\d[\d,]*(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(?:rs|inr)`),
		regexp.MustCompile(`(?i)(?:debited|credited|withdrawn|spent|received|payment|transaction|rs)(?:\s+by|\s+of|\s+for)?\s*(?:rs\.?|inr|₹)?\s*(\d[\d,]*(?:\.\d+)?)`),
	}
	smsAnyNumberRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
)

// SMS is the structured content of a bank message.
type SMS struct {
	Amount decimal.Decimal
	Type   string
	// DomainIndex indexes the names passed to ParseSMS, or is -1.
	DomainIndex int
}

// ParseSMS extracts amount, type and domain from a bank SMS. domainNames
// are matched case-insensitively against the text.
func ParseSMS(text string, domainNames []string) (SMS, error) {
	isIncome := smsIncomeRe.MatchString(text)
	isExpense := smsExpenseRe.MatchString(text)
	if !isIncome && !isExpense {
		return SMS{}, ErrNotFinancial
	}

	raw := ""
	for _, re := range smsAmountRes {
		if m := re.FindStringSubmatch(text); m != nil {
			raw = m[1]
			break
		}
	}
	if raw == "" {
		raw = smsAnyNumberRe.FindString(text)
	}
	amount, ok := parseNumber(raw)
	if raw == "" || !ok || !amount.IsPositive() {
		return SMS{}, clarify(SlotAmount, promptSMSAmount)
	}

	typ := "expense"
	if isIncome {
		typ = "income"
	}
	return SMS{
		Amount:      amount,
		Type:        typ,
		DomainIndex: MatchName(strings.ToLower(text), domainNames),
	}, nil
}
