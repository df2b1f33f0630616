package parser_test

import (
	"testing"

	"github.com/amirasaad/pocketpilot/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		text   string
		amount string
		days   int
	}{
		{"amount and days", "20000 for 30 days", "20000", 30},
		{"months multiply", "5000 for 2 months", "5000", 60},
		{"a month", "I have 5000 for a month", "5000", 30},
		{"order independent", "for 15 days I have 9000 rupees", "9000", 15},
		{"hindi units", "10000 hai 20 din", "10000", 20},
		{"telugu months", "12000 rendu nelalu 2", "12000", 60},
		{"thousands separator", "I have 20,000 rupees for 30 days", "20000", 30},
		{"day unit wins over month word", "I have 20000 for 30 days this month", "20000", 30},
		{"next month is not a unit", "20000 for 15 days starting next month", "20000", 15},
		{"monthly and dinner are not units", "spend 3000 over 10 days for dinner and a monthly bill", "3000", 10},
		{"month count binds to its unit", "3 months with 9000", "9000", 90},
		{"amount below month count", "2 months 50", "50", 60},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := parser.ParseDuration(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.amount, got.Amount.String())
			assert.Equal(t, tc.days, got.Days)
		})
	}
}

func TestParseDurationNeedsClarification(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		slot string
	}{
		{"missing duration", "I have 5000", parser.SlotDuration},
		{"only days", "for 30 days", parser.SlotAmount},
		{"nothing", "hello there", parser.SlotAmount},
		{"large day count", "500 days", parser.SlotDuration},
		{"today is not a day unit", "I have 50 to spend today", parser.SlotDuration},
		{"monthly is not a month", "3000 monthly", parser.SlotDuration},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.ParseDuration(tc.text)
			require.ErrorIs(t, err, parser.ErrNeedsClarification)
			var ce *parser.ClarificationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.slot, ce.Slot)
			assert.NotEmpty(t, ce.Prompt)
		})
	}
}

func TestParseSMS(t *testing.T) {
	t.Parallel()
	domains := []string{"Food", "Fuel"}
	tests := []struct {
		name   string
		text   string
		amount string
		typ    string
		domain int
	}{
		{"marker before", "Your A/c XX1234 is debited by Rs. 1,250.50 at FOOD court", "1250.5", "expense", 0},
		{"rupee sign", "₹300 spent on fuel", "300", "expense", 1},
		{"marker after", "Salary of 45000 INR credited to your account", "45000", "income", -1},
		{"verb before", "Amount debited 799 for order", "799", "expense", -1},
		{"credit wins", "Refund credited Rs 120 after debit reversal", "120", "income", -1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := parser.ParseSMS(tc.text, domains)
			require.NoError(t, err)
			assert.Equal(t, tc.amount, got.Amount.String())
			assert.Equal(t, tc.typ, got.Type)
			assert.Equal(t, tc.domain, got.DomainIndex)
		})
	}
}

func TestParseSMSRejects(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseSMS("Your OTP is 482913", nil)
	require.ErrorIs(t, err, parser.ErrNotFinancial)
	require.ErrorIs(t, err, parser.ErrNeedsClarification)

	_, err = parser.ParseSMS("Your account was debited", nil)
	var ce *parser.ClarificationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, parser.SlotAmount, ce.Slot)

	_, err = parser.ParseSMS("Rs 0 debited", nil)
	require.ErrorIs(t, err, parser.ErrNeedsClarification)
}

func TestParseCommand(t *testing.T) {
	t.Parallel()
	cmd := parser.ParseCommand("spent 200 on food")
	assert.True(t, cmd.HasAmount)
	assert.Equal(t, "200", cmd.Amount.String())
	assert.Equal(t, "expense", cmd.Type)
	assert.Equal(t, parser.LangEnglish, cmd.Language)

	cmd = parser.ParseCommand("I earned 1500 today")
	assert.Equal(t, "income", cmd.Type)

	cmd = parser.ParseCommand("500 खर्च")
	assert.Equal(t, "expense", cmd.Type)
	assert.Equal(t, parser.LangHindi, cmd.Language)

	cmd = parser.ParseCommand("ఆదాయం 800")
	assert.Equal(t, "income", cmd.Type)
	assert.Equal(t, parser.LangTelugu, cmd.Language)

	cmd = parser.ParseCommand("food")
	assert.False(t, cmd.HasAmount)
	assert.Empty(t, cmd.Type)
}

func TestKeywordsMatchWholeWords(t *testing.T) {
	t.Parallel()
	assert.Empty(t, parser.DetectType("what is the total"))
	assert.Equal(t, "expense", parser.DetectType("sent 40 to Ravi"))
	assert.True(t, parser.IsInterrupt("please Cancel that"))
	assert.False(t, parser.IsInterrupt("spent 50 at the bus stand"))
	assert.False(t, parser.IsInterrupt("spent 40 on transport at the bus stop"))
	assert.True(t, parser.IsInterrupt("stop"))
	assert.True(t, parser.IsInterrupt("ok, reset everything"))
	assert.True(t, parser.IsGeneralBalance("general balance"))
	assert.Equal(t, 1, parser.MatchName("for my Bike fund", []string{"Laptop", "bike"}))
	assert.Equal(t, -1, parser.MatchName("rent", []string{"Food"}))
}
